package campaign

import (
	"time"

	"roasdash/domain/core"
)

// Tier is the influencer size bracket derived from follower count.
// It is never read from input files; DeriveTier is the single source of truth.
type Tier string

const (
	TierMicro Tier = "Micro"
	TierMacro Tier = "Macro"
	TierMega  Tier = "Mega"
)

// DeriveTier maps a follower count onto its tier band
func DeriveTier(followerCount int) Tier {
	switch {
	case followerCount < 100_000:
		return TierMicro
	case followerCount < 500_000:
		return TierMacro
	default:
		return TierMega
	}
}

// CampaignType labels traffic as treatment or baseline for lift measurement
type CampaignType string

const (
	CampaignTest    CampaignType = "Test"
	CampaignControl CampaignType = "Control"
)

// IsValid reports whether the label is one of the two closed values
func (c CampaignType) IsValid() bool {
	return c == CampaignTest || c == CampaignControl
}

// PayoutBasis is how an influencer is compensated
type PayoutBasis string

const (
	BasisPerPost  PayoutBasis = "post"
	BasisPerOrder PayoutBasis = "order"
)

// Influencer is one creator profile
type Influencer struct {
	ID            core.InfluencerID `json:"influencer_id"`
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	Gender        string            `json:"gender"`
	FollowerCount int               `json:"follower_count"`
	Platform      string            `json:"platform"`
	Tier          Tier              `json:"tier"`
}

// Post is one sponsored social post
type Post struct {
	PostID       string            `json:"post_id"`
	InfluencerID core.InfluencerID `json:"influencer_id"`
	Platform     string            `json:"platform"`
	Brand        string            `json:"brand"`
	Product      string            `json:"product"`
	CampaignType CampaignType      `json:"campaign_type"`
	Date         time.Time         `json:"date"`
	URL          string            `json:"url,omitempty"`
	Caption      string            `json:"caption,omitempty"`
	Reach        int               `json:"reach"`
	Likes        int               `json:"likes"`
	Comments     int               `json:"comments"`
	Shares       int               `json:"shares"`
}

// TrackingEvent is one attributed order. Revenue is per-event and additive.
type TrackingEvent struct {
	TrackingID   string            `json:"tracking_id"`
	Source       string            `json:"source,omitempty"`
	Campaign     string            `json:"campaign"`
	InfluencerID core.InfluencerID `json:"influencer_id"`
	UserID       string            `json:"user_id,omitempty"`
	Brand        string            `json:"brand,omitempty"`
	Product      string            `json:"product,omitempty"`
	Date         time.Time         `json:"date"`
	Orders       int               `json:"orders"`
	Revenue      float64           `json:"revenue"`
	Platform     string            `json:"platform,omitempty"`
	CampaignType CampaignType      `json:"campaign_type"`
}

// Payout is the compensation owed to one influencer
type Payout struct {
	InfluencerID core.InfluencerID `json:"influencer_id"`
	Basis        PayoutBasis       `json:"basis"`
	Rate         float64           `json:"rate"`
	Orders       int               `json:"orders"`
	TotalPayout  float64           `json:"total_payout"`
	PostsCount   int               `json:"posts_count"`
}

// Dataset bundles the four tables owned by one session
type Dataset struct {
	Influencers []Influencer    `json:"influencers"`
	Posts       []Post          `json:"posts"`
	Tracking    []TrackingEvent `json:"tracking"`
	Payouts     []Payout        `json:"payouts"`
}

// IsEmpty reports whether no table has any rows
func (d Dataset) IsEmpty() bool {
	return len(d.Influencers) == 0 && len(d.Posts) == 0 &&
		len(d.Tracking) == 0 && len(d.Payouts) == 0
}

// InfluencerIndex builds an ID lookup for join operations
func (d Dataset) InfluencerIndex() map[core.InfluencerID]Influencer {
	idx := make(map[core.InfluencerID]Influencer, len(d.Influencers))
	for _, inf := range d.Influencers {
		idx[inf.ID] = inf
	}
	return idx
}

// Copy returns a deep-enough copy for a read-only session view.
// Records are value types, so copying the slices is sufficient isolation.
func (d Dataset) Copy() Dataset {
	out := Dataset{
		Influencers: make([]Influencer, len(d.Influencers)),
		Posts:       make([]Post, len(d.Posts)),
		Tracking:    make([]TrackingEvent, len(d.Tracking)),
		Payouts:     make([]Payout, len(d.Payouts)),
	}
	copy(out.Influencers, d.Influencers)
	copy(out.Posts, d.Posts)
	copy(out.Tracking, d.Tracking)
	copy(out.Payouts, d.Payouts)
	return out
}
