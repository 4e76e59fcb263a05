package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is one purchased line item referencing a product and an individual
type Order struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ProductID    uuid.UUID `json:"product_id" db:"product_id"`
	IndividualID uuid.UUID `json:"individual_id" db:"individual_id"`
	Quantity     int       `json:"quantity" db:"quantity"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Address      string    `json:"address" db:"address"`
	City         string    `json:"city" db:"city"`
	Zip          string    `json:"zip" db:"zip"`
	Country      string    `json:"country" db:"country"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// CartItem is one line of the client-side cart submitted at checkout
type CartItem struct {
	ProductID    string `json:"product_id" binding:"required"`
	IndividualID string `json:"individual_id" binding:"required"`
	Quantity     int    `json:"quantity"`
}

// ShippingInfo is the checkout shipping block
type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// CheckoutRequest is the checkout request body
type CheckoutRequest struct {
	Items    []CartItem   `json:"items"`
	Shipping ShippingInfo `json:"shipping"`
}

// OrderListResponse is an order row joined with product and individual names
type OrderListResponse struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	IndividualID   uuid.UUID `json:"individual_id"`
	IndividualName *string   `json:"individual_name,omitempty"`
	Quantity       int       `json:"quantity"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrderStats is the per-individual order aggregate
type OrderStats struct {
	Ordered   int `json:"ordered"`
	Delivered int `json:"delivered"`
}
