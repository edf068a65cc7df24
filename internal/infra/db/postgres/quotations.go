package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"zuccess/go_backend/internal/domain/quotation"
)

// QuotationStore is the append-only quotation log.
type QuotationStore struct {
	db *DB
}

func NewQuotationStore(db *DB) *QuotationStore { return &QuotationStore{db: db} }

func (s *QuotationStore) Append(ctx context.Context, rec quotation.Record) error {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("marshal quotation: %w", err)
	}
	var userID any
	if rec.UserID != 0 {
		userID = rec.UserID
	}
	_, err = s.db.Pool.Exec(ctx,
		`INSERT INTO quotations (user_id, type, data, total) VALUES ($1, $2, $3, $4)`,
		userID, string(rec.Kind), data, rec.Total)
	if err != nil {
		return fmt.Errorf("append quotation: %w", err)
	}
	return nil
}

// SaveWithDecrements appends the record and decrements stock for the given
// catalog lines in a single transaction: either every decrement lands and the
// record is written, or nothing happens.
func (s *QuotationStore) SaveWithDecrements(ctx context.Context, rec quotation.Record, decs []quotation.StockDecrement) error {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("marshal quotation: %w", err)
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, d := range decs {
		if d.Qty <= 0 {
			continue
		}
		if _, err := tx.Exec(ctx,
			`UPDATE stock SET quantity_in_stock = GREATEST(quantity_in_stock - $1, 0) WHERE id = $2`,
			d.Qty, d.ItemID); err != nil {
			return fmt.Errorf("decrement stock %d: %w", d.ItemID, err)
		}
	}

	var userID any
	if rec.UserID != 0 {
		userID = rec.UserID
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO quotations (user_id, type, data, total) VALUES ($1, $2, $3, $4)`,
		userID, string(rec.Kind), data, rec.Total); err != nil {
		return fmt.Errorf("append quotation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// NextNumber allocates the next value of the quote-number sequence.
func (s *QuotationStore) NextNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.Pool.QueryRow(ctx, `SELECT nextval('quotation_number_seq')`).Scan(&n); err != nil {
		return 0, fmt.Errorf("next quote number: %w", err)
	}
	return n, nil
}
