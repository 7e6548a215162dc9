package catalog

import (
	"testing"

	"lionscars-service/internal/domain/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil)

	assert.Zero(t, s.Count)
	assert.Zero(t, s.TotalValue)
	assert.Zero(t, s.AvgDays)
	assert.Zero(t, s.AvgPrice)
	assert.Equal(t, "0.0", s.ConversionRate)
}

func TestAggregate_SoldExcludedFromValue(t *testing.T) {
	stock := []vehicle.Vehicle{
		{Price: 10000000, EstCommission: 200000, StockDays: 10, Views: 100, Leads: 5, Status: vehicle.StatusAvailable},
		{Price: 20000000, EstCommission: 400000, StockDays: 40, Views: 50, Leads: 20, Status: vehicle.StatusSold},
		{Price: 30000000, EstCommission: 600000, StockDays: 22, Views: 10, Leads: 2, Status: vehicle.StatusReserved},
	}

	s := Aggregate(stock)

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 2, s.Available)
	assert.Equal(t, 1, s.Sold)
	assert.Equal(t, s.Count, s.Available+s.Sold)

	// Sold inventory contributes nothing to value or commission.
	assert.Equal(t, int64(40000000), s.TotalValue)
	assert.Equal(t, int64(800000), s.TotalComission)

	// Days average runs over every vehicle, sold included: (10+40+22)/3 = 24.
	assert.Equal(t, 24, s.AvgDays)

	assert.Equal(t, int64(160), s.TotalViews)
	assert.Equal(t, int64(27), s.Leads)

	// Average price is value over available units only.
	assert.InDelta(t, 20000000.0, s.AvgPrice, 0.001)
	assert.Equal(t, "33.3", s.ConversionRate)
}

func TestAggregate_AvgDaysRounds(t *testing.T) {
	stock := []vehicle.Vehicle{
		{StockDays: 1, Status: vehicle.StatusAvailable},
		{StockDays: 2, Status: vehicle.StatusAvailable},
	}
	// 1.5 rounds to 2.
	assert.Equal(t, 2, Aggregate(stock).AvgDays)
}

func TestBrandDistribution_SortAndTies(t *testing.T) {
	stock := []vehicle.Vehicle{
		{Brand: "Mazda"},
		{Brand: "Toyota"},
		{Brand: "Ford"},
		{Brand: "Toyota"},
		{Brand: "Ford"},
		{Brand: "Toyota"},
	}

	got := BrandDistribution(stock)
	require.Len(t, got, 3)
	assert.Equal(t, BrandCount{Name: "Toyota", Count: 3}, got[0])
	assert.Equal(t, BrandCount{Name: "Ford", Count: 2}, got[1])
	assert.Equal(t, BrandCount{Name: "Mazda", Count: 1}, got[2])
}

func TestBrandDistribution_TiesKeepFirstAppearance(t *testing.T) {
	stock := []vehicle.Vehicle{
		{Brand: "Kia"}, {Brand: "Chevrolet"}, {Brand: "Kia"}, {Brand: "Chevrolet"},
	}

	got := BrandDistribution(stock)
	require.Len(t, got, 2)
	assert.Equal(t, "Kia", got[0].Name)
	assert.Equal(t, "Chevrolet", got[1].Name)
}

func TestAgingBuckets(t *testing.T) {
	stock := []vehicle.Vehicle{
		{StockDays: 0}, {StockDays: 30}, {StockDays: 31},
		{StockDays: 60}, {StockDays: 61}, {StockDays: 120},
	}

	got := AgingBuckets(stock)
	require.Len(t, got, 3)

	assert.Equal(t, "0-30 días", got[0].Label)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, "#10b981", got[0].Color)

	assert.Equal(t, "31-60 días", got[1].Label)
	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, "#E8B923", got[1].Color)

	assert.Equal(t, "60+ días", got[2].Label)
	assert.Equal(t, 2, got[2].Count)
	assert.Equal(t, "#ef4444", got[2].Color)
}

func TestAgingBuckets_AlwaysThreeBuckets(t *testing.T) {
	got := AgingBuckets(nil)
	require.Len(t, got, 3)
	for _, b := range got {
		assert.Zero(t, b.Count)
	}
}

func TestTopPerformers_RatioThenViews(t *testing.T) {
	stock := []vehicle.Vehicle{
		{ID: 1, Views: 10, Leads: 5},  // ratio 0.5
		{ID: 2, Views: 50, Leads: 20}, // ratio 0.4
		{ID: 3, Views: 100, Leads: 20}, // ratio 0.2
		{ID: 4, Views: 0, Leads: 99},  // no views, excluded
	}

	got := TopPerformers(stock)
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(3), got[2].ID)
}

func TestTopPerformers_TieBrokenByViews(t *testing.T) {
	stock := []vehicle.Vehicle{
		{ID: 1, Views: 10, Leads: 2},
		{ID: 2, Views: 100, Leads: 20}, // same 0.2 ratio, more views
	}

	got := TopPerformers(stock)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}

func TestTopPerformers_CapsAtFive(t *testing.T) {
	stock := make([]vehicle.Vehicle, 8)
	for i := range stock {
		stock[i] = vehicle.Vehicle{ID: int64(i + 1), Views: 10, Leads: int64(i)}
	}

	got := TopPerformers(stock)
	require.Len(t, got, 5)
	assert.Equal(t, int64(8), got[0].ID)
}

func TestNeedsAttention(t *testing.T) {
	stock := []vehicle.Vehicle{
		{ID: 1, StockDays: 25, Status: vehicle.StatusAvailable},
		{ID: 2, StockDays: 20, Status: vehicle.StatusAvailable}, // boundary, excluded
		{ID: 3, StockDays: 90, Status: vehicle.StatusSold},      // not available
		{ID: 4, StockDays: 45, Status: vehicle.StatusAvailable},
	}

	got := NeedsAttention(stock)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)
}

func TestNeedsAttention_CapsAtFive(t *testing.T) {
	stock := make([]vehicle.Vehicle, 9)
	for i := range stock {
		stock[i] = vehicle.Vehicle{ID: int64(i + 1), StockDays: 30, Status: vehicle.StatusAvailable}
	}

	got := NeedsAttention(stock)
	require.Len(t, got, 5)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(5), got[4].ID)
}

func TestBuildDashboard(t *testing.T) {
	stock := []vehicle.Vehicle{
		{ID: 1, Brand: "Toyota", Price: 10000000, Views: 10, Leads: 4, StockDays: 35, Status: vehicle.StatusAvailable},
		{ID: 2, Brand: "Ford", Price: 20000000, Views: 5, Leads: 1, StockDays: 5, Status: vehicle.StatusSold},
	}

	d := BuildDashboard(stock)

	assert.Equal(t, 2, d.Count)
	assert.Len(t, d.Brands, 2)
	assert.Len(t, d.Aging, 3)
	require.Len(t, d.TopPerformers, 2)
	assert.Equal(t, int64(1), d.TopPerformers[0].ID)
	require.Len(t, d.NeedsAttention, 1)
	assert.Equal(t, int64(1), d.NeedsAttention[0].ID)
}
