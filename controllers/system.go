package controllers

import (
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SystemController serves the health and diagnostics endpoints.
type SystemController struct {
	DB *mongo.Database
}

func NewSystemController(db *mongo.Database) *SystemController {
	return &SystemController{DB: db}
}

func (sc *SystemController) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Laundry backend is running"})
}

func (sc *SystemController) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from the backend API"})
}

// diagnostics is what an operator needs when the frontend reports the API
// "down": is the process up, is the store reachable, is the env set.
type diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Test reports store connectivity. Always 200; the flags carry the state.
func (sc *SystemController) Test(w http.ResponseWriter, r *http.Request) {
	diag := diagnostics{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      envFlag("DATABASE_URL"),
		DatabaseName:     envFlag("DATABASE_NAME"),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if sc.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := sc.DB.Client().Ping(ctx, readpref.Primary()); err != nil {
			diag.Database = "error: " + err.Error()
		} else {
			diag.Database = "connected"
			diag.ConnectionStatus = "connected"

			if names, err := sc.DB.ListCollectionNames(ctx, bson.M{}); err == nil {
				if len(names) > 10 {
					names = names[:10]
				}
				diag.Collections = names
			}
		}
	}

	writeJSON(w, http.StatusOK, diag)
}

func envFlag(key string) string {
	if os.Getenv(key) == "" {
		return "not set"
	}
	return "set"
}
