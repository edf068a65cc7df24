package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferencePricesFromStock(t *testing.T) {
	stock := []StockItem{
		{Category: CategorySwitches, UnitPrice: 45},
		{Category: CategorySwitches, UnitPrice: 190},
		{Category: CategorySwitches, UnitPrice: 65},
		{Category: CategoryAC, UnitPrice: 556},
		{Category: CategoryAC, UnitPrice: 420},
		{Category: CategorySensors, UnitPrice: 35},
		{Category: CategorySensors, UnitPrice: 99},
		{Category: CategoryDoorLocks, UnitPrice: 300},
		{Category: CategoryDoorLocks, UnitPrice: 480},
		{Category: CategoryScreens, UnitPrice: 320},
	}

	p := ReferencePricesFromStock(stock)

	// Max of category for switches, AC, door locks, display panels.
	assert.Equal(t, 190.0, p.Switch)
	assert.Equal(t, 556.0, p.AC)
	assert.Equal(t, 480.0, p.DoorLock)
	assert.Equal(t, 320.0, p.DisplayPanel)
	// First listed item for motion sensors; curtains fall back to the default.
	assert.Equal(t, 35.0, p.MotionSensor)
	assert.Equal(t, defaultReferencePrices.Curtain, p.Curtain)
}

func TestReferencePricesEmptyStockFallsBack(t *testing.T) {
	assert.Equal(t, defaultReferencePrices, ReferencePricesFromStock(nil))
}

func TestComputeRoomsBedroomExample(t *testing.T) {
	prices := ReferencePrices{Switch: 190, AC: 556, MotionSensor: 35, Curtain: 250, DoorLock: 480, DisplayPanel: 320}
	q := ComputeRooms(RoomCounts{Bedrooms: 1}, prices, Options{})

	require.Len(t, q.Lines, 2)
	assert.Equal(t, "1 × Bedroom (3 switches + 1 AC)", q.Lines[0].Name)
	assert.InDelta(t, 1126.0, q.Lines[0].UnitPrice, 1e-9)
	assert.InDelta(t, 1126.0, q.Lines[0].Subtotal, 1e-9)
	assert.InDelta(t, 168.9, q.Lines[1].Subtotal, 1e-9)
	assert.InDelta(t, 1294.9, q.Total, 1e-9)
}

func TestComputeRoomsBundleCompositions(t *testing.T) {
	// Distinctive powers of ten make each bundle's composition visible in
	// its unit price.
	prices := ReferencePrices{Switch: 1, AC: 10, MotionSensor: 100, Curtain: 1000, DoorLock: 10000, DisplayPanel: 100000}
	q := ComputeRooms(RoomCounts{
		Floors: 1, Bedrooms: 1, Bathrooms: 1, LivingRooms: 1, Corridors: 1, Windows: 1, Doors: 1,
	}, prices, Options{})

	require.Len(t, q.Lines, 8) // 7 bundles + tax
	want := []struct {
		name string
		unit float64
	}{
		{"1 × Floor (1 display panel)", 100000},
		{"1 × Bedroom (3 switches + 1 AC)", 13},
		{"1 × Bathroom (1 switch + 1 motion sensor)", 101},
		{"1 × Living room (4 switches + 1 AC)", 14},
		{"1 × Corridor (1 switch + 1 motion sensor)", 101},
		{"1 × Window (1 curtain)", 1000},
		{"1 × Door (1 door lock)", 10000},
	}
	for i, w := range want {
		assert.Equal(t, w.name, q.Lines[i].Name)
		assert.InDelta(t, w.unit, q.Lines[i].UnitPrice, 1e-9)
	}
}

func TestComputeRoomsZeroCountsEmitNoLines(t *testing.T) {
	q := ComputeRooms(RoomCounts{Bedrooms: 2}, defaultReferencePrices, Options{})
	require.Len(t, q.Lines, 2)
	assert.Equal(t, 2.0, q.Lines[0].Qty)
}

func TestComputeRoomsNegativeCountsIgnored(t *testing.T) {
	q := ComputeRooms(RoomCounts{Bedrooms: -5, Doors: 1}, defaultReferencePrices, Options{})
	require.Len(t, q.Lines, 2)
	assert.Equal(t, "1 × Door (1 door lock)", q.Lines[0].Name)
}

func TestComputeRoomsMultipleCounts(t *testing.T) {
	prices := ReferencePrices{Switch: 190, AC: 556}
	q := ComputeRooms(RoomCounts{Bedrooms: 3}, prices, Options{})
	assert.InDelta(t, 3*1126.0, q.Lines[0].Subtotal, 1e-9)
	assert.Equal(t, "3 × Bedroom (3 switches + 1 AC)", q.Lines[0].Name)
}
