package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adriagold/billnotice/internal/model"
)

// ErrNoActiveOrder is returned when the user has no order awaiting payment.
// This is a valid terminal outcome for a billing request, not a failure.
var ErrNoActiveOrder = errors.New("no active order")

// GetActiveOrder retrieves the user's single active order. When more than one
// order is active, the oldest one wins; the explicit created_at ordering keeps
// the tie-break deterministic instead of depending on query plan order.
func (r *Repository) GetActiveOrder(ctx context.Context, userID string) (*model.Order, error) {
	query := `
		SELECT id, user_id, status, items, created_at
		FROM orders
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at, id
		LIMIT 1
	`

	var order model.Order
	err := r.pool.QueryRow(ctx, query, userID, model.OrderStatusActive).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.Items,
		&order.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveOrder
		}
		return nil, fmt.Errorf("failed to get active order: %w", err)
	}

	return &order, nil
}
