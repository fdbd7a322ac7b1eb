package entity

import (
	"time"
)

// Order is created upstream at checkout; this service only reads it back
// for confirmation screens and order history.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id,omitempty"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at,omitempty"`
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type BillingDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Notes   string `json:"notes,omitempty"`
}
