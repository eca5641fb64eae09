package repository

import (
	"context"
	"fmt"

	"github.com/adriagold/billnotice/internal/model"
)

// ListProducts retrieves the entire product catalog. The catalog is read once
// per billing request instead of one lookup per line item; this is acceptable
// only because the catalog is small.
func (r *Repository) ListProducts(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, price, created_at
		FROM products
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitPrice, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}
