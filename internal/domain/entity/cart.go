package entity

import (
	"time"
)

// CartItem is a (product, quantity) line item. Line items are unique by
// product ID; quantity is always >= 1 once stored.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// CartToast describes the most recent addition, shown to the visitor until
// it is dismissed or expires.
type CartToast struct {
	Product    Product   `json:"product"`
	Quantity   int       `json:"quantity"`
	ItemCount  int       `json:"item_count"`
	TotalPrice float64   `json:"total_price"`
	ShownAt    time.Time `json:"shown_at"`
}
