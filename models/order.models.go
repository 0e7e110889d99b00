package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses as shown in the storefront and the admin panel. The status
// field is free text in the database; these are the values the UI uses.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Food Processing"
	StatusDelivered  = "Delivered"
)

// OrderItem is a snapshot of a food item at order time
type OrderItem struct {
	Name     string  `bson:"name" json:"name" validate:"required"`
	Price    float64 `bson:"price" json:"price" validate:"required,gt=0"`
	Quantity int64   `bson:"quantity" json:"quantity" validate:"required,gt=0"`
}

// Order represents a customer's order
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       string             `bson:"user_id" json:"userId"`
	Items        []OrderItem        `bson:"items" json:"items"`
	Amount       float64            `bson:"amount" json:"amount"`
	Address      map[string]string  `bson:"address" json:"address"`
	DeliveryTime string             `bson:"delivery_time" json:"deliveryTime"`
	Status       string             `bson:"status" json:"status"`
	Payment      bool               `bson:"payment" json:"payment"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

// PlaceOrderRequest is the body for both the card and cash-on-delivery
// place endpoints. Amount includes the delivery surcharge, so it must cover
// the item total but may exceed it.
type PlaceOrderRequest struct {
	Items        []OrderItem       `json:"items" validate:"required,min=1,dive"`
	Amount       float64           `json:"amount" validate:"required,gt=0"`
	Address      map[string]string `json:"address"`
	DeliveryTime string            `json:"deliveryTime" validate:"required"`
}

// StatusUpdateRequest is the admin body for overwriting an order's status
type StatusUpdateRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// VerifyRequest carries the outcome reported by the checkout redirect
// target. Success arrives as the literal string "true" or "false"; only the
// exact value "true" confirms the payment.
type VerifyRequest struct {
	OrderID string `json:"orderId"`
	Success string `json:"success"`
}
