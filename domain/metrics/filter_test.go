package metrics

import (
	"testing"
	"time"

	"roasdash/domain/campaign"
)

func filterFixture() ([]PerformanceRow, []campaign.Influencer) {
	rows := []PerformanceRow{
		{PostID: "POST_001", InfluencerID: "INF_001", Brand: "MuscleBlaze", Platform: "Instagram",
			Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{PostID: "POST_002", InfluencerID: "INF_002", Brand: "HKVitals", Platform: "YouTube",
			Date: time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)},
		{PostID: "POST_003", InfluencerID: "INF_003", Brand: "MuscleBlaze", Platform: "YouTube",
			Date: time.Date(2025, 7, 30, 0, 0, 0, 0, time.UTC)},
	}
	influencers := []campaign.Influencer{
		{ID: "INF_001", Tier: campaign.TierMicro},
		{ID: "INF_002", Tier: campaign.TierMega},
	}
	return rows, influencers
}

func postIDs(rows []PerformanceRow) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.PostID
	}
	return ids
}

func TestFilter_ZeroMatchesEverything(t *testing.T) {
	rows, influencers := filterFixture()

	out := Filter{}.Apply(rows, influencers)
	if len(out) != len(rows) {
		t.Errorf("zero filter kept %d of %d rows", len(out), len(rows))
	}

	// The returned slice must be a copy
	out[0].Brand = "changed"
	if rows[0].Brand == "changed" {
		t.Error("Apply must not alias the input slice")
	}
}

func TestFilter_ByBrandAndPlatform(t *testing.T) {
	rows, influencers := filterFixture()

	out := Filter{Brand: "MuscleBlaze", Platform: "YouTube"}.Apply(rows, influencers)
	if got := postIDs(out); len(got) != 1 || got[0] != "POST_003" {
		t.Errorf("criteria must AND together, got %v", got)
	}
}

func TestFilter_ByTierResolvesThroughInfluencers(t *testing.T) {
	rows, influencers := filterFixture()

	out := Filter{Tier: campaign.TierMega}.Apply(rows, influencers)
	if got := postIDs(out); len(got) != 1 || got[0] != "POST_002" {
		t.Errorf("tier filter got %v, want [POST_002]", got)
	}

	// INF_003 has no influencer record; it must never match a tier filter
	out = Filter{Tier: campaign.TierMicro}.Apply(rows, influencers)
	if got := postIDs(out); len(got) != 1 || got[0] != "POST_001" {
		t.Errorf("unknown influencer matched tier filter: %v", got)
	}
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	rows, influencers := filterFixture()

	f := Filter{
		From: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
	}
	out := f.Apply(rows, influencers)
	if got := postIDs(out); len(got) != 2 || got[0] != "POST_001" || got[1] != "POST_002" {
		t.Errorf("date range got %v, want boundary dates included", got)
	}
}

func TestFilter_NoMatches(t *testing.T) {
	rows, influencers := filterFixture()

	out := Filter{Brand: "NoSuchBrand"}.Apply(rows, influencers)
	if len(out) != 0 {
		t.Errorf("expected no rows, got %v", postIDs(out))
	}
}
