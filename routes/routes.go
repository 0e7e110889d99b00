// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"go-food-ordering/controllers"
	"go-food-ordering/middleware"
)

// RegisterRoutes sets up all the routes for the application. Public routes
// and the admin subrouter are registered before the protected catch-all so
// the prefix matcher does not shadow them.
func RegisterRoutes(router *mux.Router, auth mux.MiddlewareFunc, userController *controllers.UserController, foodController *controllers.FoodController, cartController *controllers.CartController, orderController *controllers.OrderController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/foods", foodController.ListFoods).Methods("GET")
	router.HandleFunc("/orders", orderController.ListOrders).Methods("GET")
	router.HandleFunc("/orders/verify", orderController.VerifyOrder).Methods("POST")

	// Admin routes
	admin := router.PathPrefix("/foods").Subrouter()
	admin.Use(auth)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("", foodController.AddFood).Methods("POST")
	admin.HandleFunc("/{id}", foodController.RemoveFood).Methods("DELETE")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(auth)
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/cart", cartController.GetCart).Methods("POST")
	protected.HandleFunc("/cart/add", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart/remove", cartController.RemoveFromCart).Methods("POST")
	protected.HandleFunc("/orders/mine", orderController.UserOrders).Methods("POST")
	protected.HandleFunc("/orders/place", orderController.PlaceOrder).Methods("POST")
	protected.HandleFunc("/orders/place-cod", orderController.PlaceOrderCod).Methods("POST")
	protected.HandleFunc("/orders/status", orderController.UpdateStatus).Methods("POST")
}
