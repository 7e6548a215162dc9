package catalog

import (
	"strconv"
	"strings"

	"lionscars-service/internal/domain/vehicle"
)

// FilterVehicles returns the vehicles satisfying every active criterion, in
// the order they appear in stock. It never mutates its input; identical
// inputs yield identical output.
func FilterVehicles(stock []vehicle.Vehicle, search, seller string, c vehicle.Criteria) []vehicle.Vehicle {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]vehicle.Vehicle, 0, len(stock))
	for i := range stock {
		v := &stock[i]
		if !matchesSeller(v, seller) {
			continue
		}
		if !matchesSearch(v, term) {
			continue
		}
		if !matchesCriteria(v, c) {
			continue
		}
		out = append(out, stock[i])
	}
	return out
}

// anySelector reports whether a select-style criterion is unset. The
// storefront sends "Todos"/"Todas" as the identity option.
func anySelector(s string) bool {
	return s == "" || s == "Todos" || s == "Todas"
}

func matchesSeller(v *vehicle.Vehicle, seller string) bool {
	return anySelector(seller) || v.Seller == seller
}

// matchesSearch does a case-insensitive substring match against brand, model
// and the model year; a vehicle matches if any of them contains the term.
func matchesSearch(v *vehicle.Vehicle, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Brand), term) ||
		strings.Contains(strings.ToLower(v.Model), term) ||
		strings.Contains(strconv.Itoa(v.Year), term)
}

func matchesCriteria(v *vehicle.Vehicle, c vehicle.Criteria) bool {
	if !anySelector(c.Brand) && v.Brand != c.Brand {
		return false
	}
	if c.YearMin != nil && v.Year < *c.YearMin {
		return false
	}
	if c.YearMax != nil && v.Year > *c.YearMax {
		return false
	}
	if c.PriceMin != nil && v.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && v.Price > *c.PriceMax {
		return false
	}
	if c.KmMin != nil && v.Mileage < *c.KmMin {
		return false
	}
	if c.KmMax != nil && v.Mileage > *c.KmMax {
		return false
	}
	if !anySelector(c.Fuel) && v.Fuel != c.Fuel {
		return false
	}
	if !anySelector(c.Transmission) && v.Transmission != c.Transmission {
		return false
	}
	if !anySelector(c.Drivetrain) && v.Drivetrain != c.Drivetrain {
		return false
	}
	if !anySelector(c.SaleType) && string(v.SaleType) != c.SaleType {
		return false
	}
	if !c.Financing.Matches(v.Financing) {
		return false
	}
	if c.MaxOwners != nil && v.Owners > *c.MaxOwners {
		return false
	}
	if !c.AirConditioning.Matches(v.AirConditioning) {
		return false
	}
	if !anySelector(c.Tires) && v.Tires != c.Tires {
		return false
	}
	return true
}
