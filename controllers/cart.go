package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go-food-ordering/middleware"
	"go-food-ordering/models"
	"go-food-ordering/stores"
	"go-food-ordering/utils"
)

// CartController handles cart-related requests. The cart itself is the
// cartData mapping on the user document.
type CartController struct {
	Users stores.UserStore
}

// NewCartController creates a new CartController
func NewCartController(users stores.UserStore) *CartController {
	return &CartController{Users: users}
}

type cartRequest struct {
	ItemID string `json:"itemId"`
}

// AddToCart increments the quantity of a food item in the caller's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims, user, ok := cc.resolveUser(w, r)
	if !ok {
		return
	}

	req, ok := decodeCartRequest(w, r)
	if !ok {
		return
	}

	if user.CartData == nil {
		user.CartData = map[string]int64{}
	}
	user.CartData[req.ItemID]++

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := cc.Users.UpdateCart(ctx, claims.UserID, user.CartData); err != nil {
		log.Printf("failed to update cart for user %s: %v", claims.UserID, err)
		writeError(w, http.StatusInternalServerError, "Error updating cart")
		return
	}

	writeMessage(w, "Added to cart.")
}

// RemoveFromCart decrements the quantity of a food item, dropping the entry
// once it reaches zero
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	claims, user, ok := cc.resolveUser(w, r)
	if !ok {
		return
	}

	req, ok := decodeCartRequest(w, r)
	if !ok {
		return
	}

	if user.CartData[req.ItemID] > 0 {
		user.CartData[req.ItemID]--
		if user.CartData[req.ItemID] == 0 {
			delete(user.CartData, req.ItemID)
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := cc.Users.UpdateCart(ctx, claims.UserID, user.CartData); err != nil {
		log.Printf("failed to update cart for user %s: %v", claims.UserID, err)
		writeError(w, http.StatusInternalServerError, "Error updating cart")
		return
	}

	writeMessage(w, "Removed from cart.")
}

// GetCart returns the caller's cart mapping
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	_, user, ok := cc.resolveUser(w, r)
	if !ok {
		return
	}
	if user.CartData == nil {
		user.CartData = map[string]int64{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "cartData": user.CartData})
}

func (cc *CartController) resolveUser(w http.ResponseWriter, r *http.Request) (*utils.Claims, *models.User, bool) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := cc.Users.FindByID(ctx, claims.UserID)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found.")
		return nil, nil, false
	}
	return claims, user, true
}

func decodeCartRequest(w http.ResponseWriter, r *http.Request) (cartRequest, bool) {
	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return req, false
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "Item ID is required.")
		return req, false
	}
	return req, true
}
