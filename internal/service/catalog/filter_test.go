package catalog

import (
	"testing"

	"lionscars-service/internal/domain/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func sampleStock() []vehicle.Vehicle {
	return []vehicle.Vehicle{
		{
			ID: 1, Brand: "Toyota", Model: "Corolla", Year: 2019, Price: 12500000,
			Mileage: 48000, Owners: 1, Fuel: "Bencina", Transmission: "Automática",
			Drivetrain: "4x2", SaleType: vehicle.SaleTypeOwnStock, Seller: "Pedro",
			Financing: true, AirConditioning: true, Tires: "Nuevos",
			Status: vehicle.StatusAvailable,
		},
		{
			ID: 2, Brand: "Ford", Model: "Ranger", Year: 2021, Price: 21900000,
			Mileage: 32000, Owners: 2, Fuel: "Diésel", Transmission: "Manual",
			Drivetrain: "4x4", SaleType: vehicle.SaleTypeConsigned, Seller: "Ana",
			Financing: false, AirConditioning: true, Tires: "Medio uso",
			Status: vehicle.StatusAvailable,
		},
		{
			ID: 3, Brand: "Toyota", Model: "RAV4", Year: 2022, Price: 24500000,
			Mileage: 15000, Owners: 1, Fuel: "Bencina", Transmission: "Automática",
			Drivetrain: "4x4", SaleType: vehicle.SaleTypeOwnStock, Seller: "Pedro",
			Financing: true, AirConditioning: true, Tires: "Nuevos",
			Status: vehicle.StatusSold,
		},
	}
}

func TestFilterVehicles_IdentityCriteria(t *testing.T) {
	stock := sampleStock()

	got := FilterVehicles(stock, "", "", vehicle.Criteria{})
	require.Len(t, got, len(stock))
	for i := range stock {
		assert.Equal(t, stock[i].ID, got[i].ID, "order must match the snapshot")
	}
}

func TestFilterVehicles_SelectorIdentityValues(t *testing.T) {
	stock := sampleStock()

	c := vehicle.Criteria{
		Brand:           "Todas",
		Fuel:            "Todos",
		Transmission:    "Todas",
		SaleType:        "Todos",
		Financing:       vehicle.TriAll,
		AirConditioning: vehicle.TriAll,
	}
	got := FilterVehicles(stock, "", "Todos", c)
	assert.Len(t, got, len(stock))
}

func TestFilterVehicles_BrandAndRanges(t *testing.T) {
	stock := sampleStock()

	got := FilterVehicles(stock, "", "", vehicle.Criteria{Brand: "Toyota"})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	got = FilterVehicles(stock, "", "", vehicle.Criteria{
		Brand:    "Toyota",
		YearMin:  intPtr(2020),
		PriceMax: int64Ptr(25000000),
	})
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestFilterVehicles_RangeBoundsAreInclusive(t *testing.T) {
	stock := sampleStock()

	got := FilterVehicles(stock, "", "", vehicle.Criteria{
		YearMin: intPtr(2019), YearMax: intPtr(2019),
	})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got = FilterVehicles(stock, "", "", vehicle.Criteria{
		KmMin: int64Ptr(32000), KmMax: int64Ptr(32000),
	})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFilterVehicles_TriState(t *testing.T) {
	stock := sampleStock()

	got := FilterVehicles(stock, "", "", vehicle.Criteria{Financing: vehicle.TriYes})
	require.Len(t, got, 2)

	got = FilterVehicles(stock, "", "", vehicle.Criteria{Financing: vehicle.TriNo})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	got = FilterVehicles(stock, "", "", vehicle.Criteria{AirConditioning: vehicle.TriNo})
	assert.Empty(t, got)
}

func TestFilterVehicles_MaxOwners(t *testing.T) {
	stock := sampleStock()

	got := FilterVehicles(stock, "", "", vehicle.Criteria{MaxOwners: intPtr(1)})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestFilterVehicles_Search(t *testing.T) {
	stock := sampleStock()

	got := FilterVehicles(stock, "ranger", "", vehicle.Criteria{})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	// Year digits participate in the free-text match.
	got = FilterVehicles(stock, "2021", "", vehicle.Criteria{})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	got = FilterVehicles(stock, "  TOYOTA  ", "", vehicle.Criteria{})
	assert.Len(t, got, 2)
}

func TestFilterVehicles_Seller(t *testing.T) {
	stock := sampleStock()

	got := FilterVehicles(stock, "", "Ana", vehicle.Criteria{})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFilterVehicles_CriteriaCompose(t *testing.T) {
	stock := sampleStock()

	// Each added criterion can only shrink the result set.
	c := vehicle.Criteria{}
	prev := len(FilterVehicles(stock, "", "", c))

	c.Brand = "Toyota"
	n := len(FilterVehicles(stock, "", "", c))
	assert.LessOrEqual(t, n, prev)
	prev = n

	c.Transmission = "Automática"
	n = len(FilterVehicles(stock, "", "", c))
	assert.LessOrEqual(t, n, prev)
	prev = n

	c.SaleType = string(vehicle.SaleTypeConsigned)
	n = len(FilterVehicles(stock, "", "", c))
	assert.LessOrEqual(t, n, prev)
	assert.Zero(t, n)
}

func TestFilterVehicles_DoesNotMutateInput(t *testing.T) {
	stock := sampleStock()
	FilterVehicles(stock, "toyota", "Pedro", vehicle.Criteria{Brand: "Toyota"})
	assert.Equal(t, sampleStock(), stock)
}
