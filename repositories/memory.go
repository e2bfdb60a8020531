package repositories

// Map-backed repositories used by handler tests in place of a live Mongo.

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-laundry/models"
)

// MemoryAccountRepository is an in-memory AccountRepository.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts []models.Account

	// Err, when set, is returned by every call to simulate store failure.
	Err error
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{}
}

func (r *MemoryAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.accounts {
		if r.accounts[i].Email == email {
			account := r.accounts[i]
			return &account, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryAccountRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.accounts {
		if r.accounts[i].ID.Hex() == id {
			account := r.accounts[i]
			return &account, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryAccountRepository) Insert(ctx context.Context, account *models.Account) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return "", r.Err
	}
	account.ID = primitive.NewObjectID()
	r.accounts = append(r.accounts, *account)
	return account.ID.Hex(), nil
}

// MemoryOrderRepository is an in-memory OrderRepository.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order

	// Err, when set, is returned by every call to simulate store failure.
	Err error
	// LastLimit records the limit passed to the most recent List call.
	LastLimit int64
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Insert(ctx context.Context, order *models.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return "", r.Err
	}
	order.ID = primitive.NewObjectID()
	r.orders = append(r.orders, *order)
	return order.ID.Hex(), nil
}

func (r *MemoryOrderRepository) List(ctx context.Context, limit int64) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.LastLimit = limit
	if r.Err != nil {
		return nil, r.Err
	}
	n := int64(len(r.orders))
	if limit < n {
		n = limit
	}
	out := make([]models.Order, n)
	copy(out, r.orders[:n])
	return out, nil
}

// Len reports how many orders have been stored.
func (r *MemoryOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
