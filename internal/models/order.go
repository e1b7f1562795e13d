package models

import "time"

const OrderStatusProcessing = "Processing"

// Order is an immutable record of a checkout. Items is a snapshot of the cart
// at the moment the order was placed.
type Order struct {
	ID        string     `json:"id"`
	Items     []CartLine `json:"items"`
	Subtotal  int64      `json:"subtotal"`
	Shipping  int64      `json:"shipping"`
	Total     int64      `json:"total"`
	Status    string     `json:"status"`
	Delivery  string     `json:"delivery,omitempty"`
	Payment   string     `json:"payment,omitempty"`
	Address   string     `json:"address,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
