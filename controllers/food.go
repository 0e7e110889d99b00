package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"go-food-ordering/models"
	"go-food-ordering/stores"
)

// FoodController handles menu-related requests
type FoodController struct {
	Foods stores.FoodStore
}

// NewFoodController creates a new FoodController
func NewFoodController(foods stores.FoodStore) *FoodController {
	return &FoodController{Foods: foods}
}

// ListFoods returns the full menu
func (fc *FoodController) ListFoods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	foods, err := fc.Foods.List(ctx)
	if err != nil {
		log.Printf("failed to list foods: %v", err)
		writeError(w, http.StatusInternalServerError, "Error fetching foods")
		return
	}
	writeData(w, foods)
}

// AddFood adds a new menu item (admin only)
func (fc *FoodController) AddFood(w http.ResponseWriter, r *http.Request) {
	var food models.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if food.Name == "" || food.Price <= 0 {
		writeError(w, http.StatusBadRequest, "Name and a positive price are required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := fc.Foods.Insert(ctx, food); err != nil {
		log.Printf("failed to insert food: %v", err)
		writeError(w, http.StatusInternalServerError, "Error adding food")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "message": "Food added."})
}

// RemoveFood deletes a menu item (admin only)
func (fc *FoodController) RemoveFood(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := fc.Foods.Delete(ctx, id)
	if errors.Is(err, stores.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Food not found.")
		return
	}
	if err != nil {
		log.Printf("failed to delete food %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Error removing food")
		return
	}
	writeMessage(w, "Food removed.")
}
