package ingestion

import (
	"fmt"

	"roasdash/domain/campaign"
	"roasdash/domain/core"
)

// Decode turns a cleaned table into its typed record set inside the dataset.
// Tables must have passed ValidateSchema and Clean for the same kind;
// decoding is total over such tables.
func Decode(d *campaign.Dataset, t Table, kind campaign.DatasetKind) {
	switch kind {
	case campaign.KindInfluencers:
		d.Influencers = decodeInfluencers(t)
	case campaign.KindPosts:
		d.Posts = decodePosts(t)
	case campaign.KindTracking:
		d.Tracking = decodeTracking(t)
	case campaign.KindPayouts:
		d.Payouts = decodePayouts(t)
	}
}

func decodeInfluencers(t Table) []campaign.Influencer {
	out := make([]campaign.Influencer, 0, t.Len())
	for _, row := range t.Rows {
		followers := row.Get("follower_count").AsInt()
		out = append(out, campaign.Influencer{
			ID:            core.InfluencerID(row.Get("influencer_id").String()),
			Name:          row.Get("name").AsString(),
			Category:      row.Get("category").AsString(),
			Gender:        row.Get("gender").AsString(),
			FollowerCount: followers,
			Platform:      row.Get("platform").AsString(),
			// Tier is derived, never trusted from the file
			Tier: campaign.DeriveTier(followers),
		})
	}
	return out
}

func decodePosts(t Table) []campaign.Post {
	out := make([]campaign.Post, 0, t.Len())
	for i, row := range t.Rows {
		postID := row.Get("post_id").AsString()
		if postID == "" {
			// post_id is synthetic when the upload does not carry one
			postID = fmt.Sprintf("POST_%03d", i+1)
		}
		out = append(out, campaign.Post{
			PostID:       postID,
			InfluencerID: core.InfluencerID(row.Get("influencer_id").String()),
			Platform:     row.Get("platform").AsString(),
			Brand:        row.Get("brand").AsString(),
			Product:      row.Get("product").AsString(),
			CampaignType: campaign.CampaignType(row.Get("campaign_type").AsString()),
			Date:         row.Get("date").AsTime(),
			URL:          row.Get("url").AsString(),
			Caption:      row.Get("caption").AsString(),
			Reach:        row.Get("reach").AsInt(),
			Likes:        row.Get("likes").AsInt(),
			Comments:     row.Get("comments").AsInt(),
			Shares:       CoerceNumeric(row.Get("shares")).AsInt(),
		})
	}
	return out
}

func decodeTracking(t Table) []campaign.TrackingEvent {
	out := make([]campaign.TrackingEvent, 0, t.Len())
	for i, row := range t.Rows {
		trackingID := row.Get("tracking_id").AsString()
		if trackingID == "" {
			trackingID = fmt.Sprintf("TRK_%04d", i+1)
		}
		out = append(out, campaign.TrackingEvent{
			TrackingID:   trackingID,
			Source:       row.Get("source").AsString(),
			Campaign:     row.Get("campaign").AsString(),
			InfluencerID: core.InfluencerID(row.Get("influencer_id").String()),
			UserID:       row.Get("user_id").AsString(),
			Brand:        row.Get("brand").AsString(),
			Product:      row.Get("product").AsString(),
			Date:         row.Get("date").AsTime(),
			Orders:       row.Get("orders").AsInt(),
			Revenue:      row.Get("revenue").AsFloat64(),
			Platform:     row.Get("platform").AsString(),
			CampaignType: campaign.CampaignType(row.Get("campaign_type").AsString()),
		})
	}
	return out
}

func decodePayouts(t Table) []campaign.Payout {
	out := make([]campaign.Payout, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, campaign.Payout{
			InfluencerID: core.InfluencerID(row.Get("influencer_id").String()),
			Basis:        campaign.PayoutBasis(row.Get("basis").AsString()),
			Rate:         row.Get("rate").AsFloat64(),
			Orders:       CoerceNumeric(row.Get("orders")).AsInt(),
			TotalPayout:  row.Get("total_payout").AsFloat64(),
			PostsCount:   CoerceNumeric(row.Get("posts_count")).AsInt(),
		})
	}
	return out
}
