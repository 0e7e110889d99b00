// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"

	"go-food-ordering/config"
	"go-food-ordering/gateway"
	"go-food-ordering/middleware"
	"go-food-ordering/models"
	"go-food-ordering/stores"
	"go-food-ordering/utils"
)

// deliveryChargeLabel is the synthetic checkout line added on top of the
// ordered items.
const deliveryChargeLabel = "Delivery Charge"

// OrderController orchestrates order placement, payment verification and
// the admin-facing order operations.
type OrderController struct {
	Orders         stores.OrderStore
	Users          stores.UserStore
	Gateway        gateway.Provider
	Email          *utils.EmailService
	FrontendURL    string
	Currency       string
	DeliveryCharge float64
	validate       *validatorv10.Validate
}

// NewOrderController creates a new OrderController
func NewOrderController(orders stores.OrderStore, users stores.UserStore, provider gateway.Provider, email *utils.EmailService, cfg config.Config) *OrderController {
	return &OrderController{
		Orders:         orders,
		Users:          users,
		Gateway:        provider,
		Email:          email,
		FrontendURL:    cfg.FrontendURL,
		Currency:       cfg.Currency,
		DeliveryCharge: cfg.DeliveryCharge,
		validate:       newOrderValidator(),
	}
}

// PlaceOrder handles the card-payment flow: it persists the order unpaid,
// clears the caller's cart, and returns the hosted checkout redirect URL.
// The three side effects run in that sequence with no compensating rollback;
// a failed session call leaves the order behind for the stale-order sweep.
func (oc *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req, ok := oc.decodePlaceOrder(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order := models.Order{
		UserID:       claims.UserID,
		Items:        req.Items,
		Amount:       req.Amount,
		Address:      req.Address,
		DeliveryTime: req.DeliveryTime,
		Status:       models.StatusPending,
		Payment:      false,
		CreatedAt:    time.Now(),
	}
	orderID, err := oc.Orders.Insert(ctx, order)
	if err != nil {
		log.Printf("failed to create order: %v", err)
		writeError(w, http.StatusInternalServerError, "Error processing order")
		return
	}

	if err := oc.Users.ClearCart(ctx, claims.UserID); err != nil {
		log.Printf("failed to clear cart for user %s: %v", claims.UserID, err)
		writeError(w, http.StatusInternalServerError, "Error processing order")
		return
	}

	lineItems := make([]gateway.LineItem, 0, len(req.Items)+1)
	for _, item := range req.Items {
		lineItems = append(lineItems, gateway.LineItem{
			Name:       item.Name,
			UnitAmount: toCents(item.Price),
			Quantity:   item.Quantity,
		})
	}
	lineItems = append(lineItems, gateway.LineItem{
		Name:       deliveryChargeLabel,
		UnitAmount: toCents(oc.DeliveryCharge),
		Quantity:   1,
	})

	successURL := fmt.Sprintf("%s/verify?success=true&orderId=%s", oc.FrontendURL, orderID)
	cancelURL := fmt.Sprintf("%s/verify?success=false&orderId=%s", oc.FrontendURL, orderID)
	session, err := oc.Gateway.CreateCheckoutSession(ctx, lineItems, oc.Currency, successURL, cancelURL)
	if err != nil {
		log.Printf("failed to create checkout session for order %s: %v", orderID, err)
		writeError(w, http.StatusInternalServerError, "Error processing order")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "session_url": session.URL})
}

// PlaceOrderCod handles the cash-on-delivery flow: the order is saved as
// paid immediately and no gateway is involved.
func (oc *OrderController) PlaceOrderCod(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req, ok := oc.decodePlaceOrder(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order := models.Order{
		UserID:       claims.UserID,
		Items:        req.Items,
		Amount:       req.Amount,
		Address:      req.Address,
		DeliveryTime: req.DeliveryTime,
		Status:       models.StatusPending,
		Payment:      true,
		CreatedAt:    time.Now(),
	}
	if _, err := oc.Orders.Insert(ctx, order); err != nil {
		log.Printf("failed to create COD order: %v", err)
		writeError(w, http.StatusInternalServerError, "Error processing COD order")
		return
	}

	if err := oc.Users.ClearCart(ctx, claims.UserID); err != nil {
		log.Printf("failed to clear cart for user %s: %v", claims.UserID, err)
		writeError(w, http.StatusInternalServerError, "Error processing COD order")
		return
	}

	go func(email string, order models.Order) {
		if err := oc.Email.SendOrderPlacedEmail(email, order); err != nil {
			log.Printf("failed to send email to %s: %v", email, err)
		}
	}(claims.Email, order)

	writeMessage(w, "Order placed successfully.")
}

// VerifyOrder reconciles the outcome reported by the checkout redirect
// target: success confirms the payment, anything else deletes the order.
// A second call on a deleted order answers with a lenient not-found.
func (oc *OrderController) VerifyOrder(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.OrderID == "" {
		writeError(w, http.StatusBadRequest, "Order ID is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if req.Success == "true" {
		order, err := oc.Orders.MarkPaid(ctx, req.OrderID)
		if errors.Is(err, stores.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Order not found.")
			return
		}
		if err != nil {
			log.Printf("failed to verify order %s: %v", req.OrderID, err)
			writeError(w, http.StatusInternalServerError, "Error verifying order")
			return
		}

		go oc.notifyPaymentVerified(*order)
		writeMessage(w, "Order payment verified.")
		return
	}

	err := oc.Orders.Delete(ctx, req.OrderID)
	if errors.Is(err, stores.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Order not found.")
		return
	}
	if err != nil {
		log.Printf("failed to delete order %s: %v", req.OrderID, err)
		writeError(w, http.StatusInternalServerError, "Error verifying order")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "message": "Order payment failed, order deleted."})
}

// ListOrders retrieves all orders for the admin panel
func (oc *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, err := oc.Orders.List(ctx)
	if err != nil {
		log.Printf("failed to list orders: %v", err)
		writeError(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	writeData(w, orders)
}

// UserOrders retrieves the authenticated caller's orders
func (oc *OrderController) UserOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, err := oc.Orders.ListByUser(ctx, claims.UserID)
	if err != nil {
		log.Printf("failed to list orders for user %s: %v", claims.UserID, err)
		writeError(w, http.StatusInternalServerError, "Error fetching user orders")
		return
	}
	writeData(w, orders)
}

// UpdateStatus overwrites an order's status. Transitions are not validated;
// the admin panel may move an order backwards.
func (oc *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req models.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.OrderID == "" || req.Status == "" {
		writeError(w, http.StatusBadRequest, "Order ID and status are required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := oc.Orders.UpdateStatus(ctx, req.OrderID, req.Status)
	if errors.Is(err, stores.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Order not found.")
		return
	}
	if err != nil {
		log.Printf("failed to update status for order %s: %v", req.OrderID, err)
		writeError(w, http.StatusInternalServerError, "Error updating order status")
		return
	}
	writeMessage(w, "Order status updated.")
}

// decodePlaceOrder parses and validates a place-order body, answering the
// client error itself when the body is rejected.
func (oc *OrderController) decodePlaceOrder(w http.ResponseWriter, r *http.Request) (models.PlaceOrderRequest, bool) {
	var req models.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return req, false
	}
	if err := oc.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields.")
		return req, false
	}
	return req, true
}

func (oc *OrderController) notifyPaymentVerified(order models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := oc.Users.FindByID(ctx, order.UserID)
	if err != nil {
		log.Printf("failed to look up user %s for notification: %v", order.UserID, err)
		return
	}
	if err := oc.Email.SendPaymentVerifiedEmail(user.Email, order); err != nil {
		log.Printf("failed to send email to %s: %v", user.Email, err)
	}
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
