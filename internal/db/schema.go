package db

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		password TEXT NOT NULL,
		display_name TEXT NOT NULL DEFAULT '',
		payment_handle TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price_cents BIGINT NOT NULL CHECK (price_cents >= 0),
		category TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		user_id TEXT NOT NULL,
		item_id TEXT NOT NULL,
		quantity INT NOT NULL CHECK (quantity >= 1),
		PRIMARY KEY (user_id, item_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('placed', 'claimed', 'fulfilled', 'declined', 'cancelled')),
		delivery_location TEXT NOT NULL,
		total_items INT NOT NULL,
		claimed_by TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS orders_status_idx ON orders (status)`,
	`CREATE INDEX IF NOT EXISTS orders_user_idx ON orders (user_id)`,
	`CREATE INDEX IF NOT EXISTS orders_claimed_by_idx ON orders (claimed_by)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id BIGINT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
		item_id TEXT NOT NULL,
		name TEXT NOT NULL,
		price_cents BIGINT NOT NULL,
		quantity INT NOT NULL CHECK (quantity >= 1),
		PRIMARY KEY (order_id, item_id)
	)`,
	`CREATE TABLE IF NOT EXISTS timeline_steps (
		order_id BIGINT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
		position INT NOT NULL,
		name TEXT NOT NULL,
		checked BOOLEAN NOT NULL DEFAULT FALSE,
		PRIMARY KEY (order_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS outbox_tasks (
		id UUID PRIMARY KEY,
		status TEXT NOT NULL,
		payload JSONB NOT NULL,
		topic TEXT NOT NULL,
		attempts INT NOT NULL DEFAULT 0,
		last_error TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		completed_at TIMESTAMPTZ
	)`,
}

// InitSchema creates the tables the service needs if they are missing.
func InitSchema(ctx context.Context, database *Database) error {
	for _, stmt := range schemaStatements {
		if _, err := database.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
