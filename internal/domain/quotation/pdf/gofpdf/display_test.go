package gofpdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zuccess/go_backend/internal/domain/quotation"
)

func TestFormatNum(t *testing.T) {
	assert.Equal(t, "1,126.00", formatNum(1126))
	assert.Equal(t, "0.00", formatNum(0))
	assert.Equal(t, "86.96", formatNum(100/1.15))
	assert.Equal(t, "1,234,567.89", formatNum(1234567.891))
}

func TestDisplayRowsExcludesTaxLine(t *testing.T) {
	rows := displayRows([]quotation.LineItem{
		{Name: "Smart Switch", Qty: 2, UnitPrice: 190, Subtotal: 380},
		{Name: "Tax (15%)", Qty: 1, UnitPrice: 57, Subtotal: 57},
	}, quotation.TaxRate)

	require.Len(t, rows, 1)
	assert.Equal(t, "Smart Switch", rows[0].name)
	assert.Equal(t, "380.00", rows[0].amount)
}

func TestDisplayRowsInstallationShownNetOfTax(t *testing.T) {
	rows := displayRows([]quotation.LineItem{
		{Name: "Installation & Programming (15%)", Qty: 1, UnitPrice: 100, Subtotal: 100},
	}, quotation.TaxRate)

	require.Len(t, rows, 1)
	assert.Equal(t, "Installation & Programming", rows[0].name)
	assert.Equal(t, "86.96", rows[0].rate)
	assert.Equal(t, "86.96", rows[0].amount)
}

func TestDisplayRowsStripPercentSuffix(t *testing.T) {
	rows := displayRows([]quotation.LineItem{
		{Name: "Seasonal Discount Package (10%)", Qty: 1, UnitPrice: 50, Subtotal: 50},
	}, quotation.TaxRate)

	assert.Equal(t, "Seasonal Discount Package", rows[0].name)
}

func TestDisplayRowsRenumbersAfterExclusion(t *testing.T) {
	rows := displayRows([]quotation.LineItem{
		{Name: "Tax (15%)", Subtotal: 0},
		{Name: "Motion Sensor", Qty: 1, UnitPrice: 35, Subtotal: 35},
	}, quotation.TaxRate)

	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].num)
}

func TestDisplayRowsPlaceholderWhenEmpty(t *testing.T) {
	for _, lines := range [][]quotation.LineItem{
		nil,
		{{Name: "Tax (15%)", Qty: 1, UnitPrice: 0, Subtotal: 0}},
	} {
		rows := displayRows(lines, quotation.TaxRate)
		require.Len(t, rows, 1)
		assert.Equal(t, tableRow{num: "1", name: "No items", qty: "0.00", rate: "0.00", amount: "0.00"}, rows[0])
	}
}

func TestSummarizeMatchesStoredTotal(t *testing.T) {
	// The summary block is recomputed independently from the lines; for
	// calculator output it must land on the stored total.
	cases := map[string]quotation.Quotation{
		"catalog": quotation.ComputeCatalog([]quotation.CatalogSelection{
			{Item: quotation.StockItem{ID: 1, UnitPrice: 190, QuantityInStock: 100}, RequestedQty: 2},
			{Item: quotation.StockItem{ID: 2, UnitPrice: 45.5, QuantityInStock: 8}, RequestedQty: 99},
		}, quotation.Options{}),
		"catalog+install": quotation.ComputeCatalog([]quotation.CatalogSelection{
			{Item: quotation.StockItem{ID: 1, UnitPrice: 320, QuantityInStock: 10}, RequestedQty: 3},
		}, quotation.Options{IncludeInstallation: true}),
		"services": quotation.ComputeServices([]quotation.ServiceEntry{
			{Name: "Voice assistant integration", UnitPrice: 150, Qty: 1},
			{Name: "Analytics dashboard", UnitPrice: 280, Qty: 2},
		}, quotation.Options{IncludeInstallation: true}),
		"rooms": quotation.ComputeRooms(quotation.RoomCounts{Bedrooms: 3, Windows: 2, Floors: 1},
			quotation.ReferencePricesFromStock(nil), quotation.Options{}),
		"empty": quotation.ComputeServices(nil, quotation.Options{}),
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			_, total := summarize(q.Lines, quotation.TaxRate)
			assert.InDelta(t, q.Total, total, 0.01)
		})
	}
}

func TestIsTaxLine(t *testing.T) {
	assert.True(t, isTaxLine("Tax (15%)"))
	assert.True(t, isTaxLine("ضريبة القيمة المضافة"))
	assert.False(t, isTaxLine("Smart Switch"))
}

func TestIsInstallationLine(t *testing.T) {
	assert.True(t, isInstallationLine("Installation & Programming (15%)"))
	assert.True(t, isInstallationLine("Panel programming works"))
	assert.False(t, isInstallationLine("Door/Window Sensor"))
}
