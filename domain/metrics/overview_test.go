package metrics

import (
	"testing"
)

func TestSummarize_Empty(t *testing.T) {
	ov := Summarize(nil)
	if ov.PostCount != 0 || ov.TotalRevenue != 0 || ov.OverallROAS != 0 {
		t.Errorf("empty rows must yield a zero overview, got %+v", ov)
	}
}

func TestSummarize_Totals(t *testing.T) {
	rows := []PerformanceRow{
		{Revenue: 2000, TotalPayout: 1000, Orders: 2, ROAS: 2.0, EngagementRate: 0.06},
		{Revenue: 1000, TotalPayout: 1000, Orders: 1, ROAS: 1.0, EngagementRate: 0.02},
	}

	ov := Summarize(rows)

	if ov.TotalRevenue != 3000 || ov.TotalSpend != 2000 || ov.TotalOrders != 3 {
		t.Errorf("totals wrong: %+v", ov)
	}
	if ov.OverallROAS != 1.5 {
		t.Errorf("OverallROAS = %v, want 1.5", ov.OverallROAS)
	}
	if ov.MeanROAS != 1.5 || ov.MedianROAS != 1.5 {
		t.Errorf("mean/median ROAS wrong: %v / %v", ov.MeanROAS, ov.MedianROAS)
	}
	if ov.MeanEngage != 0.04 {
		t.Errorf("MeanEngage = %v, want 0.04", ov.MeanEngage)
	}
	if ov.PostCount != 2 {
		t.Errorf("PostCount = %d, want 2", ov.PostCount)
	}
}

func TestGroupROAS_SortedDescending(t *testing.T) {
	rows := []PerformanceRow{
		{Brand: "MuscleBlaze", Revenue: 1000, TotalPayout: 1000},
		{Brand: "HKVitals", Revenue: 3000, TotalPayout: 1000},
		{Brand: "Gritzo", Revenue: 2000, TotalPayout: 1000},
	}

	groups := ByBrand(rows)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	want := []string{"HKVitals", "Gritzo", "MuscleBlaze"}
	for i, key := range want {
		if groups[i].Key != key {
			t.Errorf("groups[%d].Key = %s, want %s", i, groups[i].Key, key)
		}
	}
}

func TestGroupROAS_TiesKeepFirstEncounteredOrder(t *testing.T) {
	rows := []PerformanceRow{
		{Platform: "Twitter", Revenue: 1000, TotalPayout: 500},
		{Platform: "Instagram", Revenue: 2000, TotalPayout: 1000},
	}

	groups := ByPlatform(rows)
	if groups[0].Key != "Twitter" || groups[1].Key != "Instagram" {
		t.Errorf("tied ROAS must keep first-encountered order, got %v then %v",
			groups[0].Key, groups[1].Key)
	}
}

func TestGroupROAS_SumsAcrossRows(t *testing.T) {
	rows := []PerformanceRow{
		{Product: "Whey Protein", Revenue: 1500, TotalPayout: 500},
		{Product: "Whey Protein", Revenue: 500, TotalPayout: 500},
	}

	groups := ByProduct(rows)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if g.Revenue != 2000 || g.Spend != 1000 || g.ROAS != 2.0 {
		t.Errorf("group sums wrong: %+v", g)
	}
}

func TestGroupROAS_PartitionPreservesTotals(t *testing.T) {
	rows := []PerformanceRow{
		{Brand: "MuscleBlaze", Revenue: 1000, TotalPayout: 400},
		{Brand: "HKVitals", Revenue: 3000, TotalPayout: 900},
		{Brand: "MuscleBlaze", Revenue: 2000, TotalPayout: 600},
	}

	var wantRevenue, wantSpend float64
	for _, r := range rows {
		wantRevenue += r.Revenue
		wantSpend += r.TotalPayout
	}

	var gotRevenue, gotSpend float64
	for _, g := range ByBrand(rows) {
		gotRevenue += g.Revenue
		gotSpend += g.Spend
	}

	if gotRevenue != wantRevenue || gotSpend != wantSpend {
		t.Errorf("grouping lost volume: revenue %v/%v, spend %v/%v",
			gotRevenue, wantRevenue, gotSpend, wantSpend)
	}
}
