package model

import "time"

// Product represents a catalog entry. UnitPrice is stored in the smallest
// currency unit; fractional amounts are not supported.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
}
