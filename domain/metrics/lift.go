package metrics

import (
	"roasdash/domain/campaign"
	"roasdash/domain/core"
)

// LiftResult holds the test-vs-control comparison scalars
type LiftResult struct {
	IncrementalROAS float64 `json:"incremental_roas"`
	IncrementalLift float64 `json:"incremental_lift"`
	TestRevenue     float64 `json:"test_revenue"`
	ControlRevenue  float64 `json:"control_revenue"`
	TestSpend       float64 `json:"test_spend"`
}

// IncrementalROAS computes test-vs-control revenue lift and incremental ROAS
// from the tracking and payout tables alone, independent of the per-post
// aggregation. Both ratios resolve to exactly 0 when their denominator is 0.
func IncrementalROAS(tracking []campaign.TrackingEvent, payouts []campaign.Payout) LiftResult {
	var result LiftResult

	// Partition revenue by campaign type and collect test influencers
	testInfluencers := make(map[core.InfluencerID]struct{})
	for _, ev := range tracking {
		switch ev.CampaignType {
		case campaign.CampaignTest:
			result.TestRevenue += ev.Revenue
			testInfluencers[ev.InfluencerID] = struct{}{}
		case campaign.CampaignControl:
			result.ControlRevenue += ev.Revenue
		}
	}

	// Test spend: each test influencer's payout counted once regardless of
	// how many test events they produced
	for _, p := range payouts {
		if _, ok := testInfluencers[p.InfluencerID]; ok {
			result.TestSpend += p.TotalPayout
		}
	}

	if result.ControlRevenue > 0 {
		result.IncrementalLift = result.TestRevenue/result.ControlRevenue - 1
	}
	if result.TestSpend > 0 {
		result.IncrementalROAS = (result.TestRevenue - result.ControlRevenue) / result.TestSpend
	}
	return result
}
