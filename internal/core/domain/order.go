package domain

import "time"

// OrderStatusPaid is the only status a demo order ever carries.
const OrderStatusPaid = "paid"

// Order is an immutable record of a completed purchase. ID is the payment
// transaction id, Items is the cart snapshot taken at purchase time.
type Order struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	Status    string     `json:"status"`
}
