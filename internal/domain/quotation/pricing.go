package quotation

import (
	"fmt"
	"math"
	"strings"
)

const (
	TaxRate          = 0.15
	InstallationRate = 0.15
)

// Rates carries the surcharge percentages so tests and callers can vary them
// without shared package state.
type Rates struct {
	Tax          float64
	Installation float64
}

func DefaultRates() Rates {
	return Rates{Tax: TaxRate, Installation: InstallationRate}
}

type Options struct {
	IncludeInstallation bool
	// Rates overrides the default surcharges; the zero value means defaults.
	Rates Rates
}

// Mode tags the pricing strategy of an Input. The values match the quotation
// types recorded in the log.
type Mode string

const (
	ModeCatalog  Mode = "smart-home"
	ModeServices Mode = "ai"
	ModeRooms    Mode = "rough"
)

// Input is the tagged union fed to Compute. Only the fields of the tagged
// variant are consulted.
type Input struct {
	Mode     Mode
	Catalog  []CatalogSelection
	Services []ServiceEntry
	Rooms    RoomCounts
	// Stock supplies the reference prices for ModeRooms.
	Stock []StockItem
}

// CatalogSelection is one picked stock item with the quantity the user asked
// for, before clamping.
type CatalogSelection struct {
	Item         StockItem
	RequestedQty float64
}

// ServiceEntry is one free-form priced row; no catalog lookup, no clamping.
type ServiceEntry struct {
	Name        string
	Description string
	UnitPrice   float64
	Qty         float64
}

// Compute dispatches on the input mode and returns the priced quotation.
// All strategies are pure: identical input yields identical output.
func Compute(in Input, opts Options) (Quotation, error) {
	switch in.Mode {
	case ModeCatalog:
		return ComputeCatalog(in.Catalog, opts), nil
	case ModeServices:
		return ComputeServices(in.Services, opts), nil
	case ModeRooms:
		return ComputeRooms(in.Rooms, ReferencePricesFromStock(in.Stock), opts), nil
	default:
		return Quotation{}, fmt.Errorf("unknown quotation mode %q", in.Mode)
	}
}

// ComputeCatalog prices an ordered list of stock selections. Requests beyond
// available stock are clamped, never rejected; rows that clamp to zero are
// dropped entirely.
func ComputeCatalog(selections []CatalogSelection, opts Options) Quotation {
	var lines []LineItem
	var sub float64
	for _, sel := range selections {
		qty := sanitize(sel.RequestedQty)
		if avail := float64(sel.Item.QuantityInStock); qty > avail {
			qty = avail
		}
		if qty <= 0 {
			continue
		}
		price := sanitize(sel.Item.UnitPrice)
		line := qty * price
		sub += line
		lines = append(lines, LineItem{
			ID:        sel.Item.ID,
			Name:      sel.Item.Name,
			Qty:       qty,
			UnitPrice: price,
			Subtotal:  line,
		})
	}
	return finalize(lines, sub, opts)
}

// ComputeServices prices free-form service rows. Zero-quantity and zero-price
// rows are kept so the quotation mirrors what was entered.
func ComputeServices(entries []ServiceEntry, opts Options) Quotation {
	var lines []LineItem
	var sub float64
	for _, e := range entries {
		qty := sanitize(e.Qty)
		price := sanitize(e.UnitPrice)
		line := qty * price
		sub += line
		lines = append(lines, LineItem{
			Name:      serviceName(e),
			Qty:       qty,
			UnitPrice: price,
			Subtotal:  line,
		})
	}
	return finalize(lines, sub, opts)
}

// finalize appends the tax line, the optional installation line, and settles
// the total. Both surcharges are computed from the pre-tax subtotal; the
// total is rounded once, at the point tax is added.
func finalize(lines []LineItem, sub float64, opts Options) Quotation {
	rates := opts.Rates
	if rates == (Rates{}) {
		rates = DefaultRates()
	}
	tax := sub * rates.Tax
	lines = append(lines, LineItem{
		Name:      fmt.Sprintf("Tax (%.0f%%)", rates.Tax*100),
		Qty:       1,
		UnitPrice: tax,
		Subtotal:  tax,
	})
	total := round2(sub * (1 + rates.Tax))
	if opts.IncludeInstallation {
		inst := sub * rates.Installation
		lines = append(lines, LineItem{
			Name:      fmt.Sprintf("Installation & Programming (%.0f%%)", rates.Installation*100),
			Qty:       1,
			UnitPrice: inst,
			Subtotal:  inst,
		})
		total += inst
	}
	return Quotation{Lines: lines, Total: total}
}

func serviceName(e ServiceEntry) string {
	desc := strings.TrimSpace(e.Description)
	if desc == "" {
		return e.Name
	}
	return e.Name + " — " + truncate(desc, 80)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sanitize coerces NaN, infinities, and negative values to 0 so bad input
// clamps instead of poisoning the totals.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
