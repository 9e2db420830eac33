package metrics

import (
	"time"

	"roasdash/domain/campaign"
	"roasdash/domain/core"
)

// PerformanceRow is one post enriched with its influencer's attributed
// revenue, orders, payout, and the derived ratios.
//
// Revenue and orders are attributed per-influencer, not per-post: every post
// by the same influencer carries that influencer's full tracked totals. This
// mirrors the upstream reporting contract the chart and insight consumers
// depend on; see DESIGN.md before changing it.
type PerformanceRow struct {
	PostID         string               `json:"post_id"`
	InfluencerID   core.InfluencerID    `json:"influencer_id"`
	Platform       string               `json:"platform"`
	Brand          string               `json:"brand"`
	Product        string               `json:"product"`
	CampaignType   campaign.CampaignType `json:"campaign_type"`
	Date           time.Time            `json:"date"`
	Reach          int                  `json:"reach"`
	Likes          int                  `json:"likes"`
	Comments       int                  `json:"comments"`
	Shares         int                  `json:"shares"`
	Revenue        float64              `json:"revenue"`
	Orders         int                  `json:"orders"`
	TotalPayout    float64              `json:"total_payout"`
	ROAS           float64              `json:"roas"`
	CPO            float64              `json:"cpo"`
	EngagementRate float64              `json:"engagement_rate"`
}

// influencerTotals is the tracking table grouped by influencer
type influencerTotals struct {
	revenue      float64
	orders       int
	campaignType campaign.CampaignType
}

// Aggregate left-joins posts against per-influencer tracking totals and
// payouts, producing one performance row per post. Influencers with no
// tracking or payout rows get zeros, never missing values. All ratio
// denominators of zero resolve to a defined zero result.
func Aggregate(posts []campaign.Post, tracking []campaign.TrackingEvent, payouts []campaign.Payout) []PerformanceRow {
	totals := make(map[core.InfluencerID]influencerTotals)
	for _, ev := range tracking {
		t := totals[ev.InfluencerID]
		t.revenue += ev.Revenue
		t.orders += ev.Orders
		if t.campaignType == "" {
			t.campaignType = ev.CampaignType
		}
		totals[ev.InfluencerID] = t
	}

	payoutByInf := make(map[core.InfluencerID]float64, len(payouts))
	for _, p := range payouts {
		payoutByInf[p.InfluencerID] = p.TotalPayout
	}

	rows := make([]PerformanceRow, 0, len(posts))
	for _, post := range posts {
		t := totals[post.InfluencerID]
		payout := payoutByInf[post.InfluencerID]

		row := PerformanceRow{
			PostID:       post.PostID,
			InfluencerID: post.InfluencerID,
			Platform:     post.Platform,
			Brand:        post.Brand,
			Product:      post.Product,
			CampaignType: post.CampaignType,
			Date:         post.Date,
			Reach:        post.Reach,
			Likes:        post.Likes,
			Comments:     post.Comments,
			Shares:       post.Shares,
			Revenue:      t.revenue,
			Orders:       t.orders,
			TotalPayout:  payout,
		}

		row.ROAS = SafeRatio(row.Revenue, row.TotalPayout)
		row.CPO = SafeRatio(row.TotalPayout, float64(row.Orders))
		row.EngagementRate = SafeRatio(float64(row.Likes+row.Comments+row.Shares), float64(row.Reach))

		rows = append(rows, row)
	}
	return rows
}

// SafeRatio divides num by den, resolving a zero denominator to exactly 0
// rather than NaN or Inf.
func SafeRatio(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	return 0
}
