package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the system. The shopping cart lives on the
// user document as a food-id -> quantity mapping and is emptied as a side
// effect of placing an order.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Role     string             `bson:"role" json:"role"` // "user" or "admin"
	CartData map[string]int64   `bson:"cart_data" json:"cartData"`
}
