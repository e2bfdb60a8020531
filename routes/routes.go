// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"go-laundry/controllers"
	"go-laundry/middleware"
	"go-laundry/utils"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, tokens *utils.TokenManager, systemController *controllers.SystemController, authController *controllers.AuthController, orderController *controllers.OrderController) {
	// Health and diagnostics
	router.HandleFunc("/", systemController.Root).Methods("GET")
	router.HandleFunc("/api/hello", systemController.Hello).Methods("GET")
	router.HandleFunc("/test", systemController.Test).Methods("GET")
	router.Handle("/metrics", middleware.MetricsHandler()).Methods("GET")

	// Auth routes
	router.HandleFunc("/auth/register", authController.Register).Methods("POST")
	router.HandleFunc("/auth/login", authController.Login).Methods("POST")
	router.Handle("/auth/me", middleware.Auth(tokens)(http.HandlerFunc(authController.Me))).Methods("GET")

	// Order routes. These are deliberately unauthenticated: the dashboard
	// frontend does not send tokens yet.
	router.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	router.HandleFunc("/orders", orderController.ListOrders).Methods("GET")
}
