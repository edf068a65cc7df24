package quotation

import "fmt"

// Stock categories consulted by the room estimator.
const (
	CategorySwitches  = "switches"
	CategoryAC        = "ac"
	CategorySensors   = "sensors"
	CategoryCurtains  = "curtains"
	CategoryDoorLocks = "door_locks"
	CategoryScreens   = "screens"
)

// RoomCounts is the questionnaire input: how many of each architectural unit
// the property has. Negative counts are treated as zero.
type RoomCounts struct {
	Floors      int `json:"floors"`
	Bedrooms    int `json:"bedrooms"`
	Bathrooms   int `json:"bathrooms"`
	LivingRooms int `json:"living_rooms"`
	Corridors   int `json:"corridors"`
	Windows     int `json:"windows"`
	Doors       int `json:"doors"`
}

// ReferencePrices holds one unit price per device class, used to cost the
// per-room equipment bundles.
type ReferencePrices struct {
	Switch       float64
	AC           float64
	MotionSensor float64
	Curtain      float64
	DoorLock     float64
	DisplayPanel float64
}

// Fallbacks when a catalog category is empty.
var defaultReferencePrices = ReferencePrices{
	Switch:       190,
	AC:           556,
	MotionSensor: 120,
	Curtain:      350,
	DoorLock:     450,
	DisplayPanel: 890,
}

// ReferencePricesFromStock derives the per-class prices from the live
// catalog. Switches, AC units, door locks and display panels use the most
// expensive item of their category; motion sensors and curtains use the
// first listed item. The selection rule differs per class on purpose.
func ReferencePricesFromStock(stock []StockItem) ReferencePrices {
	p := defaultReferencePrices
	if v, ok := maxInCategory(stock, CategorySwitches); ok {
		p.Switch = v
	}
	if v, ok := maxInCategory(stock, CategoryAC); ok {
		p.AC = v
	}
	if v, ok := firstInCategory(stock, CategorySensors); ok {
		p.MotionSensor = v
	}
	if v, ok := firstInCategory(stock, CategoryCurtains); ok {
		p.Curtain = v
	}
	if v, ok := maxInCategory(stock, CategoryDoorLocks); ok {
		p.DoorLock = v
	}
	if v, ok := maxInCategory(stock, CategoryScreens); ok {
		p.DisplayPanel = v
	}
	return p
}

func maxInCategory(stock []StockItem, category string) (float64, bool) {
	var best float64
	found := false
	for _, it := range stock {
		if it.Category != category {
			continue
		}
		if !found || it.UnitPrice > best {
			best = it.UnitPrice
		}
		found = true
	}
	return best, found
}

func firstInCategory(stock []StockItem, category string) (float64, bool) {
	for _, it := range stock {
		if it.Category == category {
			return it.UnitPrice, true
		}
	}
	return 0, false
}

// roomBundles fixes the equipment composition per architectural unit and the
// order lines are emitted in.
var roomBundles = []struct {
	label string
	count func(RoomCounts) int
	cost  func(ReferencePrices) float64
}{
	{
		label: "Floor (1 display panel)",
		count: func(r RoomCounts) int { return r.Floors },
		cost:  func(p ReferencePrices) float64 { return p.DisplayPanel },
	},
	{
		label: "Bedroom (3 switches + 1 AC)",
		count: func(r RoomCounts) int { return r.Bedrooms },
		cost:  func(p ReferencePrices) float64 { return 3*p.Switch + p.AC },
	},
	{
		label: "Bathroom (1 switch + 1 motion sensor)",
		count: func(r RoomCounts) int { return r.Bathrooms },
		cost:  func(p ReferencePrices) float64 { return p.Switch + p.MotionSensor },
	},
	{
		label: "Living room (4 switches + 1 AC)",
		count: func(r RoomCounts) int { return r.LivingRooms },
		cost:  func(p ReferencePrices) float64 { return 4*p.Switch + p.AC },
	},
	{
		label: "Corridor (1 switch + 1 motion sensor)",
		count: func(r RoomCounts) int { return r.Corridors },
		cost:  func(p ReferencePrices) float64 { return p.Switch + p.MotionSensor },
	},
	{
		label: "Window (1 curtain)",
		count: func(r RoomCounts) int { return r.Windows },
		cost:  func(p ReferencePrices) float64 { return p.Curtain },
	},
	{
		label: "Door (1 door lock)",
		count: func(r RoomCounts) int { return r.Doors },
		cost:  func(p ReferencePrices) float64 { return p.DoorLock },
	},
}

// ComputeRooms prices the questionnaire: one line per non-zero room count,
// whose unit price is the cost of that room's equipment bundle.
func ComputeRooms(rc RoomCounts, prices ReferencePrices, opts Options) Quotation {
	var lines []LineItem
	var sub float64
	for _, b := range roomBundles {
		count := b.count(rc)
		if count <= 0 {
			continue
		}
		unit := sanitize(b.cost(prices))
		line := float64(count) * unit
		sub += line
		lines = append(lines, LineItem{
			Name:      fmt.Sprintf("%d × %s", count, b.label),
			Qty:       float64(count),
			UnitPrice: unit,
			Subtotal:  line,
		})
	}
	return finalize(lines, sub, opts)
}
