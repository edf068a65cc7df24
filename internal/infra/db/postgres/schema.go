package postgres

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS stock (
		id BIGSERIAL PRIMARY KEY,
		item_type TEXT NOT NULL,
		item_name TEXT NOT NULL,
		unit_price DOUBLE PRECISION NOT NULL,
		quantity_in_stock INTEGER NOT NULL DEFAULT 0,
		category TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS quotations (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id),
		type TEXT NOT NULL,
		data JSONB,
		total DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE SEQUENCE IF NOT EXISTS quotation_number_seq START 1`,
}

// InitSchema creates the tables and the quote-number sequence if they do not
// exist yet.
func InitSchema(ctx context.Context, db *DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
