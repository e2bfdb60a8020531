package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order represents a laundry order
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CustomerName string             `bson:"customer_name" json:"customer_name"`
	Phone        string             `bson:"phone" json:"phone"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	ServiceType  string             `bson:"service_type" json:"service_type"` // e.g. "Wash & Fold", "Dry Clean"
	WeightKg     float64            `bson:"weight_kg" json:"weight_kg"`
	Price        *float64           `bson:"price,omitempty" json:"price,omitempty"`
	Status       string             `bson:"status" json:"status"` // "received", "washing", "drying", "ready", "delivered"
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
