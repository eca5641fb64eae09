// Package model defines domain entities for the application.
package model

import "time"

// User represents a billing recipient. Read-only for this service.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
