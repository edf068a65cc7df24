package quotation

// LineItem is one priced row of a quotation. Synthetic rows (tax,
// installation) carry their amount in both UnitPrice and Subtotal with an
// implicit Qty of 1; catalog and service rows keep Subtotal == Qty*UnitPrice.
type LineItem struct {
	ID        int64   `json:"id,omitempty"`
	Name      string  `json:"name"`
	Qty       float64 `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

// Quotation is the shared output of all pricing strategies. Line order is
// entry order; the tax line comes after the substantive lines and the
// installation line, when present, after the tax line. A Quotation is never
// patched in place: regenerating recomputes it from scratch.
type Quotation struct {
	Lines []LineItem `json:"lines"`
	Total float64    `json:"total"`
}

// StockItem mirrors one row of the stock table. The calculator treats it as
// read-only; only the store mutates QuantityInStock, and only on save.
type StockItem struct {
	ID              int64   `json:"id"`
	ItemType        string  `json:"item_type"`
	Name            string  `json:"item_name"`
	UnitPrice       float64 `json:"unit_price"`
	QuantityInStock int     `json:"quantity_in_stock"`
	Category        string  `json:"category"`
}

// Record is what the append-only quotation log stores.
type Record struct {
	UserID int64
	Kind   Mode
	Data   Quotation
	Total  float64
}

// StockDecrement is one stock mutation performed when a catalog quotation is
// saved. Qty is the effective (clamped) quantity of the corresponding line.
type StockDecrement struct {
	ItemID int64
	Qty    int
}
