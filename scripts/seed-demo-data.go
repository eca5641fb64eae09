// Command seed-demo-data loads a small demo data set (one user, two products,
// one active order) so the billing endpoint can be exercised locally.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/adriagold/billnotice/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		userID      = flag.String("user-id", "demo-user", "User ID to seed")
		email       = flag.String("email", "demo@adriagold.local", "User email")
		name        = flag.String("name", "Demo Customer", "User display name")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := seed(ctx, pool, *userID, *name, *email); err != nil {
		fmt.Fprintln(os.Stderr, "seed demo data:", err)
		os.Exit(1)
	}

	fmt.Printf("seeded user %s with one active order\n", *userID)
}

func seed(ctx context.Context, pool *pgxpool.Pool, userID, name, email string) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, name, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email
	`, userID, name, email)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	products := []model.Product{
		{ID: "vanilla-1l", Name: "Vanilla ice cream 1l", UnitPrice: 100},
		{ID: "pistachio-1l", Name: "Pistachio ice cream 1l", UnitPrice: 250},
	}
	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, price)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price
		`, p.ID, p.Name, p.UnitPrice)
		if err != nil {
			return fmt.Errorf("insert product %s: %w", p.ID, err)
		}
	}

	items := map[string]int64{
		"vanilla-1l":   2,
		"pistachio-1l": 1,
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO orders (id, user_id, status, items)
		VALUES ($1, $2, $3, $4)
	`, ulid.Make().String(), userID, model.OrderStatusActive, items)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}
