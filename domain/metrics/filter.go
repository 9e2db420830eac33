package metrics

import (
	"time"

	"roasdash/domain/campaign"
	"roasdash/domain/core"
)

// Filter narrows the performance table to a read-only view. Zero-valued
// fields match everything, so the zero Filter is a passthrough.
type Filter struct {
	Brand    string        `json:"brand,omitempty"`
	Platform string        `json:"platform,omitempty"`
	Tier     campaign.Tier `json:"tier,omitempty"`
	From     time.Time     `json:"from,omitempty"`
	To       time.Time     `json:"to,omitempty"`
}

// IsZero reports whether the filter matches all rows
func (f Filter) IsZero() bool {
	return f.Brand == "" && f.Platform == "" && f.Tier == "" && f.From.IsZero() && f.To.IsZero()
}

// Apply returns the rows matching the filter. The tier criterion resolves
// through the influencer table; rows whose influencer is unknown never match
// a tier filter. The input slice is not modified.
func (f Filter) Apply(rows []PerformanceRow, influencers []campaign.Influencer) []PerformanceRow {
	if f.IsZero() {
		out := make([]PerformanceRow, len(rows))
		copy(out, rows)
		return out
	}

	var tierByInf map[core.InfluencerID]campaign.Tier
	if f.Tier != "" {
		tierByInf = make(map[core.InfluencerID]campaign.Tier, len(influencers))
		for _, inf := range influencers {
			tierByInf[inf.ID] = inf.Tier
		}
	}

	out := make([]PerformanceRow, 0, len(rows))
	for _, r := range rows {
		if f.Brand != "" && r.Brand != f.Brand {
			continue
		}
		if f.Platform != "" && r.Platform != f.Platform {
			continue
		}
		if f.Tier != "" && tierByInf[r.InfluencerID] != f.Tier {
			continue
		}
		if !f.From.IsZero() && r.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && r.Date.After(f.To) {
			continue
		}
		out = append(out, r)
	}
	return out
}
