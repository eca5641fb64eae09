package model

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order represents a customer order. Items maps product IDs to requested
// quantities. Quantities are stored as given; zero or negative values pass
// through billing arithmetic unchanged.
type Order struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Status    OrderStatus      `json:"status"`
	Items     map[string]int64 `json:"items"`
	CreatedAt time.Time        `json:"created_at"`
}

// IsActive reports whether the order is awaiting payment.
func (o *Order) IsActive() bool {
	return o.Status == OrderStatusActive
}
