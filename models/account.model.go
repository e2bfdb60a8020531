package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account represents a registered business account
type Account struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	Role           string             `bson:"role" json:"role"` // "owner", "staff" or "admin"
	IsActive       bool               `bson:"is_active" json:"is_active"`
}
