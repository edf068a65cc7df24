package postgres

import (
	"context"
	"fmt"

	"zuccess/go_backend/internal/domain/quotation"
)

// StockStore reads the catalog and applies decrements on save. Listing is
// ordered the way the storefront shows it: by category, then item name.
type StockStore struct {
	db *DB
}

func NewStockStore(db *DB) *StockStore { return &StockStore{db: db} }

func (s *StockStore) List(ctx context.Context, category string) ([]quotation.StockItem, error) {
	query := `SELECT id, item_type, item_name, unit_price, quantity_in_stock, category
		FROM stock ORDER BY category, item_name`
	args := []any{}
	if category != "" {
		query = `SELECT id, item_type, item_name, unit_price, quantity_in_stock, category
			FROM stock WHERE category = $1 ORDER BY item_name`
		args = append(args, category)
	}

	rows, err := s.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var items []quotation.StockItem
	for rows.Next() {
		var it quotation.StockItem
		if err := rows.Scan(&it.ID, &it.ItemType, &it.Name, &it.UnitPrice, &it.QuantityInStock, &it.Category); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Decrement lowers the available quantity of one item, clamped at zero.
func (s *StockStore) Decrement(ctx context.Context, itemID int64, qty int) error {
	if qty <= 0 {
		return nil
	}
	_, err := s.db.Pool.Exec(ctx,
		`UPDATE stock SET quantity_in_stock = GREATEST(quantity_in_stock - $1, 0) WHERE id = $2`,
		qty, itemID)
	if err != nil {
		return fmt.Errorf("decrement stock %d: %w", itemID, err)
	}
	return nil
}
