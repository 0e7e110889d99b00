// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"go-food-ordering/config"
	"go-food-ordering/controllers"
	"go-food-ordering/gateway"
	"go-food-ordering/jobs"
	"go-food-ordering/middleware"
	"go-food-ordering/routes"
	"go-food-ordering/stores"
	"go-food-ordering/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Connect to MongoDB
	client, err := utils.ConnectDB(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Fatal(err)
		}
	}()

	db := client.Database(cfg.Database)
	orderStore := stores.NewMongoOrderStore(db)
	userStore := stores.NewMongoUserStore(db)
	foodStore := stores.NewMongoFoodStore(db)

	emailService := utils.NewEmailService(cfg.PostmarkAPIToken, cfg.EmailSender)
	provider := gateway.NewStripeProvider(cfg.StripeSecretKey)

	// Initialize controllers
	userController := controllers.NewUserController(userStore, cfg)
	foodController := controllers.NewFoodController(foodStore)
	cartController := controllers.NewCartController(userStore)
	orderController := controllers.NewOrderController(orderStore, userStore, provider, emailService, cfg)

	// Set up the router
	router := mux.NewRouter()
	auth := middleware.NewAuthMiddleware([]byte(cfg.JWTSecret))
	routes.RegisterRoutes(router, auth, userController, foodController, cartController, orderController)

	// Optional stale-order sweep
	if cfg.SweepInterval > 0 {
		sweeper := &jobs.Sweeper{
			Orders:   orderStore,
			Interval: time.Duration(cfg.SweepInterval) * time.Minute,
			MaxAge:   time.Duration(cfg.SweepMaxAge) * time.Minute,
		}
		go sweeper.Run(context.Background())
	}

	// Start the server
	fmt.Printf("Server is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
