package catalog

import (
	"fmt"
	"math"
	"sort"

	"lionscars-service/internal/domain/vehicle"
)

// Stats are the scalar dashboard metrics. Sold units are excluded from
// inventory value and commission; averages run over the whole list.
type Stats struct {
	TotalValue     int64   `json:"totalValue"`
	AvgDays        int     `json:"avgDays"`
	Leads          int64   `json:"leads"`
	Count          int     `json:"count"`
	TotalComission int64   `json:"totalComission"`
	Available      int     `json:"available"`
	Sold           int     `json:"sold"`
	TotalViews     int64   `json:"totalViews"`
	AvgPrice       float64 `json:"avgPrice"`
	ConversionRate string  `json:"conversionRate"`
}

// BrandCount is one slice of the brand distribution chart.
type BrandCount struct {
	Name  string `json:"name"`
	Count int    `json:"value"`
}

// AgingBucket partitions stock by days listed. Color is presentation only.
type AgingBucket struct {
	Label string `json:"name"`
	Count int    `json:"cantidad"`
	Color string `json:"fill"`
}

// DashboardStats is the full aggregator output served to the console.
type DashboardStats struct {
	Stats
	Brands         []BrandCount      `json:"brands"`
	Aging          []AgingBucket     `json:"aging"`
	TopPerformers  []vehicle.Vehicle `json:"topPerformers"`
	NeedsAttention []vehicle.Vehicle `json:"needsAttention"`
}

// Aggregate computes the scalar metrics over a stock snapshot. An empty list
// produces zeros, never a division error.
func Aggregate(stock []vehicle.Vehicle) Stats {
	s := Stats{Count: len(stock)}
	var dayTotal int64
	for i := range stock {
		v := &stock[i]
		if v.Status == vehicle.StatusSold {
			s.Sold++
		} else {
			s.Available++
			s.TotalValue += v.Price
			s.TotalComission += v.EstCommission
		}
		dayTotal += int64(v.StockDays)
		s.Leads += v.Leads
		s.TotalViews += v.Views
	}
	s.AvgDays = int(math.Round(float64(dayTotal) / float64(max(s.Count, 1))))
	s.AvgPrice = float64(s.TotalValue) / float64(max(s.Available, 1))
	s.ConversionRate = fmt.Sprintf("%.1f", 100*float64(s.Sold)/float64(max(s.Count, 1)))
	return s
}

// BrandDistribution counts vehicles per brand, sorted descending by count.
// Ties keep the order brands first appear in the snapshot.
func BrandDistribution(stock []vehicle.Vehicle) []BrandCount {
	index := make(map[string]int, len(stock))
	out := make([]BrandCount, 0, len(stock))
	for i := range stock {
		brand := stock[i].Brand
		if pos, ok := index[brand]; ok {
			out[pos].Count++
			continue
		}
		index[brand] = len(out)
		out = append(out, BrandCount{Name: brand, Count: 1})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })
	return out
}

// AgingBuckets partitions the whole snapshot into 0-30 / 31-60 / 60+ days.
func AgingBuckets(stock []vehicle.Vehicle) []AgingBucket {
	buckets := []AgingBucket{
		{Label: "0-30 días", Color: "#10b981"},
		{Label: "31-60 días", Color: "#E8B923"},
		{Label: "60+ días", Color: "#ef4444"},
	}
	for i := range stock {
		switch days := stock[i].StockDays; {
		case days <= 30:
			buckets[0].Count++
		case days <= 60:
			buckets[1].Count++
		default:
			buckets[2].Count++
		}
	}
	return buckets
}

// TopPerformers ranks vehicles with at least one view by leads/views ratio,
// ties broken by raw view count, and returns the best five.
func TopPerformers(stock []vehicle.Vehicle) []vehicle.Vehicle {
	ranked := make([]vehicle.Vehicle, 0, len(stock))
	for i := range stock {
		if stock[i].Views > 0 {
			ranked = append(ranked, stock[i])
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		ra := float64(ranked[a].Leads) / float64(ranked[a].Views)
		rb := float64(ranked[b].Leads) / float64(ranked[b].Views)
		if ra != rb {
			return ra > rb
		}
		return ranked[a].Views > ranked[b].Views
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked
}

// NeedsAttention lists available vehicles sitting more than 20 days, up to
// five, in snapshot order.
func NeedsAttention(stock []vehicle.Vehicle) []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, 0, 5)
	for i := range stock {
		if stock[i].Status == vehicle.StatusAvailable && stock[i].StockDays > 20 {
			out = append(out, stock[i])
			if len(out) == 5 {
				break
			}
		}
	}
	return out
}

// BuildDashboard assembles the full aggregator output for one snapshot.
func BuildDashboard(stock []vehicle.Vehicle) DashboardStats {
	return DashboardStats{
		Stats:          Aggregate(stock),
		Brands:         BrandDistribution(stock),
		Aging:          AgingBuckets(stock),
		TopPerformers:  TopPerformers(stock),
		NeedsAttention: NeedsAttention(stock),
	}
}
