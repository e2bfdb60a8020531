// controllers/order.go
package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"go-laundry/models"
	"go-laundry/repositories"
	"go-laundry/utils"
)

const (
	defaultListLimit = 50
	// The list endpoint is unauthenticated; an unbounded limit would let
	// anyone dump the whole collection in one call.
	maxListLimit = 500
)

// OrderController handles order creation and listing.
type OrderController struct {
	Orders       repositories.OrderRepository
	EmailService *utils.EmailService
	NotifyEmail  string
}

func NewOrderController(orders repositories.OrderRepository, emailService *utils.EmailService, notifyEmail string) *OrderController {
	return &OrderController{
		Orders:       orders,
		EmailService: emailService,
		NotifyEmail:  notifyEmail,
	}
}

type createOrderRequest struct {
	CustomerName string   `json:"customer_name"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	ServiceType  string   `json:"service_type"`
	WeightKg     float64  `json:"weight_kg"`
	Price        *float64 `json:"price"`
}

func (r createOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CustomerName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Phone, validation.Required, validation.Length(1, 30)),
		validation.Field(&r.ServiceType, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.WeightKg, validation.Min(0.0)),
		validation.Field(&r.Price, validation.Min(0.0)),
	)
}

// CreateOrder persists a new order. The status is server-assigned; whatever
// the caller sent for it is ignored.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if oc.Orders == nil {
		writeError(w, http.StatusInternalServerError, "Database not configured")
		return
	}

	var payload createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := payload.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	order := models.Order{
		CustomerName: payload.CustomerName,
		Phone:        payload.Phone,
		Address:      payload.Address,
		ServiceType:  payload.ServiceType,
		WeightKg:     payload.WeightKg,
		Price:        payload.Price,
		Status:       "received",
		CreatedAt:    time.Now().UTC(),
	}
	id, err := oc.Orders.Insert(r.Context(), &order)
	if err != nil {
		log.Printf("create order: insert failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Best-effort notification; a mail failure must not fail the order.
	if oc.EmailService != nil && oc.NotifyEmail != "" {
		go func() {
			if err := oc.EmailService.SendOrderReceivedEmail(oc.NotifyEmail, id, order); err != nil {
				log.Printf("order notification failed: %v", err)
			}
		}()
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": "created"})
}

// orderItem renders an order with its identifier as a public "id" string.
type orderItem struct {
	ID string `json:"id"`
	models.Order
}

// ListOrders returns up to ?limit=N orders (default 50, capped at 500).
func (oc *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	if oc.Orders == nil {
		writeError(w, http.StatusInternalServerError, "Database not configured")
		return
	}

	limit := int64(defaultListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items := []orderItem{}
	if limit > 0 {
		orders, err := oc.Orders.List(r.Context(), limit)
		if err != nil {
			log.Printf("list orders: query failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		for _, order := range orders {
			items = append(items, orderItem{ID: order.ID.Hex(), Order: order})
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
