package metrics

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// Overview is the headline scalar set shown above the performance table
type Overview struct {
	TotalRevenue float64      `json:"total_revenue"`
	TotalSpend   float64      `json:"total_spend"`
	TotalOrders  int          `json:"total_orders"`
	OverallROAS  float64      `json:"overall_roas"`
	PostCount    int          `json:"post_count"`
	MeanROAS     float64      `json:"mean_roas"`
	MedianROAS   float64      `json:"median_roas"`
	MeanEngage   float64      `json:"mean_engagement_rate"`
	ROASShape    ShapeMarkers `json:"roas_shape"`
}

// Summarize computes the campaign overview for a (possibly filtered) set of
// performance rows. An empty set yields an all-zero overview.
func Summarize(rows []PerformanceRow) Overview {
	ov := Overview{PostCount: len(rows)}
	if len(rows) == 0 {
		return ov
	}

	roasVals := make([]float64, 0, len(rows))
	engageVals := make([]float64, 0, len(rows))
	for _, r := range rows {
		ov.TotalRevenue += r.Revenue
		ov.TotalSpend += r.TotalPayout
		ov.TotalOrders += r.Orders
		roasVals = append(roasVals, r.ROAS)
		engageVals = append(engageVals, r.EngagementRate)
	}
	ov.OverallROAS = SafeRatio(ov.TotalRevenue, ov.TotalSpend)

	// Distribution summaries; errors only occur on empty input, which is
	// excluded above
	if m, err := stats.Mean(roasVals); err == nil {
		ov.MeanROAS = m
	}
	if m, err := stats.Median(roasVals); err == nil {
		ov.MedianROAS = m
	}
	if m, err := stats.Mean(engageVals); err == nil {
		ov.MeanEngage = m
	}
	ov.ROASShape = AnalyzeShape(roasVals)

	return ov
}

// GroupedROAS is one entity's summed revenue, spend, and resulting ROAS
type GroupedROAS struct {
	Key     string  `json:"key"`
	Revenue float64 `json:"revenue"`
	Spend   float64 `json:"spend"`
	ROAS    float64 `json:"roas"`
}

// GroupROAS sums revenue and payout per key and derives per-group ROAS.
// Groups are returned in descending ROAS order; ties keep the order in which
// keys were first encountered, which downstream consumers rely on for stable
// top-N selection.
func GroupROAS(rows []PerformanceRow, keyFn func(PerformanceRow) string) []GroupedROAS {
	byKey := make(map[string]*GroupedROAS)
	var order []string

	for _, r := range rows {
		key := keyFn(r)
		g, ok := byKey[key]
		if !ok {
			g = &GroupedROAS{Key: key}
			byKey[key] = g
			order = append(order, key)
		}
		g.Revenue += r.Revenue
		g.Spend += r.TotalPayout
	}

	out := make([]GroupedROAS, 0, len(order))
	for _, key := range order {
		g := byKey[key]
		g.ROAS = SafeRatio(g.Revenue, g.Spend)
		out = append(out, *g)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ROAS > out[j].ROAS })
	return out
}

// ByBrand groups performance rows by brand
func ByBrand(rows []PerformanceRow) []GroupedROAS {
	return GroupROAS(rows, func(r PerformanceRow) string { return r.Brand })
}

// ByPlatform groups performance rows by platform
func ByPlatform(rows []PerformanceRow) []GroupedROAS {
	return GroupROAS(rows, func(r PerformanceRow) string { return r.Platform })
}

// ByProduct groups performance rows by product
func ByProduct(rows []PerformanceRow) []GroupedROAS {
	return GroupROAS(rows, func(r PerformanceRow) string { return r.Product })
}
