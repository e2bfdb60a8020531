package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-laundry/repositories"
)

func TestCreateOrderForcesReceivedStatus(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()
	oc := NewOrderController(repo, nil, "")

	rec := doJSON(t, oc.CreateOrder, "POST", "/orders", map[string]interface{}{
		"customer_name": "Ravi",
		"phone":         "+265991234567",
		"service_type":  "Wash & Fold",
		"weight_kg":     3.5,
		// A caller-supplied status must be ignored.
		"status": "delivered",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "created", body.Status)

	orders, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "received", orders[0].Status)
	assert.Equal(t, body.ID, orders[0].ID.Hex())
	assert.False(t, orders[0].CreatedAt.IsZero())
	assert.Nil(t, orders[0].Price)
}

func TestCreateOrderRejectsNegativeWeight(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()
	oc := NewOrderController(repo, nil, "")

	rec := doJSON(t, oc.CreateOrder, "POST", "/orders", map[string]interface{}{
		"customer_name": "Ravi",
		"phone":         "+265991234567",
		"service_type":  "Wash & Fold",
		"weight_kg":     -1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Validation rejects the request before it reaches the store.
	assert.Equal(t, 0, repo.Len())

	var body struct {
		Detail map[string]string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Detail, "weight_kg")
}

func TestCreateOrderRequiredFields(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()
	oc := NewOrderController(repo, nil, "")

	rec := doJSON(t, oc.CreateOrder, "POST", "/orders", map[string]interface{}{
		"weight_kg": 2.0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Detail map[string]string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Detail, "customer_name")
	assert.Contains(t, body.Detail, "phone")
	assert.Contains(t, body.Detail, "service_type")
}

func TestCreateOrderStoreFailure(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()
	repo.Err = errors.New("connection reset")
	oc := NewOrderController(repo, nil, "")

	rec := doJSON(t, oc.CreateOrder, "POST", "/orders", map[string]interface{}{
		"customer_name": "Ravi",
		"phone":         "+265991234567",
		"service_type":  "Wash & Fold",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func seedOrders(t *testing.T, oc *OrderController, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		rec := doJSON(t, oc.CreateOrder, "POST", "/orders", map[string]interface{}{
			"customer_name": fmt.Sprintf("Customer %d", i),
			"phone":         fmt.Sprintf("+26599000000%d", i),
			"service_type":  "Dry Clean",
			"weight_kg":     1.0,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestListOrdersHonorsLimit(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()
	oc := NewOrderController(repo, nil, "")
	seedOrders(t, oc, 5)

	rec := doJSON(t, oc.ListOrders, "GET", "/orders?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []map[string]interface{} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 2)

	for _, item := range body.Items {
		id, ok := item["id"].(string)
		assert.True(t, ok)
		assert.Len(t, id, 24) // ObjectID hex
		// The raw store identifier must not leak.
		assert.NotContains(t, item, "_id")
		assert.NotContains(t, item, "ID")
	}
}

func TestListOrdersDefaultAndCappedLimit(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()
	oc := NewOrderController(repo, nil, "")
	seedOrders(t, oc, 3)

	rec := doJSON(t, oc.ListOrders, "GET", "/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(50), repo.LastLimit)

	rec = doJSON(t, oc.ListOrders, "GET", "/orders?limit=9999", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(500), repo.LastLimit)
}

func TestListOrdersRejectsBadLimit(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()
	oc := NewOrderController(repo, nil, "")

	for _, limit := range []string{"abc", "-1", "1.5"} {
		rec := doJSON(t, oc.ListOrders, "GET", "/orders?limit="+limit, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit %q", limit)
	}
}

func TestOrderHandlersWithoutStore(t *testing.T) {
	oc := NewOrderController(nil, nil, "")

	rec := doJSON(t, oc.ListOrders, "GET", "/orders", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Database not configured"}`, rec.Body.String())
}
