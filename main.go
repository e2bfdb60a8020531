// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"go-laundry/config"
	"go-laundry/controllers"
	"go-laundry/middleware"
	"go-laundry/repositories"
	"go-laundry/routes"
	"go-laundry/utils"
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

	// Connect to MongoDB. The server still starts without it so the /test
	// endpoint can report what is wrong.
	var db *mongo.Database
	client, err := utils.ConnectDB(cfg.MongoURI)
	if err != nil {
		log.Printf("MongoDB unavailable: %v", err)
	} else {
		db = client.Database(cfg.DatabaseName)
		defer func() {
			if err := client.Disconnect(context.TODO()); err != nil {
				log.Fatal(err)
			}
		}()
	}

	var accounts repositories.AccountRepository
	var orders repositories.OrderRepository
	if db != nil {
		accounts = repositories.NewMongoAccountRepository(db)
		orders = repositories.NewMongoOrderRepository(db)
	}

	tokens := utils.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL)

	emailService := utils.NewEmailService(cfg.SendGridAPIKey, cfg.EmailSender)
	if emailService == nil {
		log.Println("SendGrid not configured, order notifications disabled")
	}

	// Initialize controllers
	systemController := controllers.NewSystemController(db)
	authController := controllers.NewAuthController(accounts, tokens)
	orderController := controllers.NewOrderController(orders, emailService, cfg.NotifyEmail)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.Metrics)
	routes.RegisterRoutes(router, tokens, systemController, authController, orderController)

	// CORS wraps the router so preflight requests are answered even for
	// method/path combinations mux would otherwise reject.
	handler := middleware.CORS(router)

	// Start the server
	fmt.Printf("Server is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(cfg.Addr(), handler))
}
