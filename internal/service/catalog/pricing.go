package catalog

import (
	"time"

	"lionscars-service/internal/domain/vehicle"
)

const priceDateLayout = "2006-01-02"

// SeedHistory starts a vehicle's price history with its listing price.
func SeedHistory(price int64, now time.Time) []vehicle.PriceRecord {
	return []vehicle.PriceRecord{{Date: now.Format(priceDateLayout), Price: price}}
}

// TrackPrice appends a record when price differs from the most recent entry.
// Writing the same price again is a no-op, and history is never truncated or
// reordered.
func TrackPrice(history []vehicle.PriceRecord, price int64, now time.Time) []vehicle.PriceRecord {
	if len(history) == 0 {
		return SeedHistory(price, now)
	}
	if history[len(history)-1].Price == price {
		return history
	}
	return append(history, vehicle.PriceRecord{Date: now.Format(priceDateLayout), Price: price})
}
