package campaign

import "roasdash/domain/core"

// DatasetKind is the closed set of the four input tables.
// Every switch over DatasetKind must handle all four variants.
type DatasetKind string

const (
	KindInfluencers DatasetKind = "influencers"
	KindPosts       DatasetKind = "posts"
	KindTracking    DatasetKind = "tracking_data"
	KindPayouts     DatasetKind = "payouts"
)

// AllKinds lists the dataset kinds in upload-tab order
func AllKinds() []DatasetKind {
	return []DatasetKind{KindInfluencers, KindPosts, KindTracking, KindPayouts}
}

// ParseDatasetKind validates a string against the closed kind set
func ParseDatasetKind(s string) (DatasetKind, error) {
	switch DatasetKind(s) {
	case KindInfluencers, KindPosts, KindTracking, KindPayouts:
		return DatasetKind(s), nil
	default:
		return "", core.ErrUnknownDatasetKind
	}
}

// String returns the wire name of the kind
func (k DatasetKind) String() string { return string(k) }

// RequiredColumns returns the column contract a table of this kind must satisfy
func (k DatasetKind) RequiredColumns() []string {
	switch k {
	case KindInfluencers:
		return []string{"influencer_id", "name", "category", "gender", "follower_count", "platform", "tier"}
	case KindPosts:
		return []string{"influencer_id", "platform", "date", "reach", "likes", "comments", "brand", "product", "campaign_type"}
	case KindTracking:
		return []string{"influencer_id", "campaign", "orders", "revenue", "date", "campaign_type"}
	case KindPayouts:
		return []string{"influencer_id", "basis", "rate", "total_payout"}
	default:
		return nil
	}
}

// NumericColumns returns the columns coerced to numbers during cleaning
func (k DatasetKind) NumericColumns() []string {
	switch k {
	case KindInfluencers:
		return []string{"follower_count"}
	case KindPosts:
		return []string{"reach", "likes", "comments"}
	case KindTracking:
		return []string{"orders", "revenue"}
	case KindPayouts:
		return []string{"rate", "total_payout"}
	default:
		return nil
	}
}

// DateColumns returns the columns coerced to dates during cleaning
func (k DatasetKind) DateColumns() []string {
	switch k {
	case KindInfluencers, KindPayouts:
		return nil
	case KindPosts, KindTracking:
		return []string{"date"}
	default:
		return nil
	}
}
