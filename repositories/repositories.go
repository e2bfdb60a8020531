package repositories

import (
	"context"
	"errors"

	"go-laundry/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// AccountRepository handles persistence for Account documents.
type AccountRepository interface {
	// FindByEmail does an exact-match lookup; ErrNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	// FindByID looks up an account by its hex identifier.
	FindByID(ctx context.Context, id string) (*models.Account, error)
	// Insert stores the account and returns the generated identifier.
	Insert(ctx context.Context, account *models.Account) (string, error)
}

// OrderRepository handles persistence for Order documents.
type OrderRepository interface {
	// Insert stores the order and returns the generated identifier.
	Insert(ctx context.Context, order *models.Order) (string, error)
	// List returns up to limit orders in the store's default ordering.
	List(ctx context.Context, limit int64) ([]models.Order, error)
}
