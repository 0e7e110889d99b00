package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"go-food-ordering/config"
	"go-food-ordering/middleware"
	"go-food-ordering/models"
	"go-food-ordering/stores"
	"go-food-ordering/utils"
)

// UserController handles user-related requests
type UserController struct {
	Users     stores.UserStore
	jwtSecret []byte
}

// NewUserController creates a new UserController
func NewUserController(users stores.UserStore, cfg config.Config) *UserController {
	return &UserController{
		Users:     users,
		jwtSecret: []byte(cfg.JWTSecret),
	}
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Name, email and password are required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err := uc.Users.FindByEmail(ctx, req.Email)
	if err == nil {
		writeError(w, http.StatusBadRequest, "User already exists.")
		return
	}
	if !errors.Is(err, stores.ErrNotFound) {
		log.Printf("failed to check existing user: %v", err)
		writeError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     "user",
		CartData: map[string]int64{},
	}
	if _, err := uc.Users.Insert(ctx, user); err != nil {
		log.Printf("failed to insert user: %v", err)
		writeError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "message": "User registered successfully."})
}

// Login handles user authentication
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Users.FindByEmail(ctx, creds.Email)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	token, err := utils.GenerateJWT(uc.jwtSecret, user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "token": token})
}

// GetProfile retrieves the authenticated user's profile
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Users.FindByID(ctx, claims.UserID)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found.")
		return
	}

	user.Password = ""
	writeData(w, user)
}
