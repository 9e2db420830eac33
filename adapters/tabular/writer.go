package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"roasdash/domain/campaign"
)

// WriteDataset serializes one table of the dataset as CSV with the full
// column set the sample generator produces. Used by the samplegen tool and
// the demo-data download endpoints.
func WriteDataset(w io.Writer, d campaign.Dataset, kind campaign.DatasetKind) error {
	cw := csv.NewWriter(w)

	switch kind {
	case campaign.KindInfluencers:
		if err := cw.Write([]string{"influencer_id", "name", "category", "gender", "follower_count", "platform", "tier"}); err != nil {
			return err
		}
		for _, inf := range d.Influencers {
			rec := []string{
				string(inf.ID), inf.Name, inf.Category, inf.Gender,
				strconv.Itoa(inf.FollowerCount), inf.Platform, string(inf.Tier),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	case campaign.KindPosts:
		if err := cw.Write([]string{"post_id", "influencer_id", "platform", "date", "reach", "likes", "comments", "shares", "brand", "product", "campaign_type", "url", "caption"}); err != nil {
			return err
		}
		for _, p := range d.Posts {
			rec := []string{
				p.PostID, string(p.InfluencerID), p.Platform, p.Date.Format("2006-01-02"),
				strconv.Itoa(p.Reach), strconv.Itoa(p.Likes), strconv.Itoa(p.Comments), strconv.Itoa(p.Shares),
				p.Brand, p.Product, string(p.CampaignType), p.URL, p.Caption,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	case campaign.KindTracking:
		if err := cw.Write([]string{"tracking_id", "source", "campaign", "influencer_id", "user_id", "brand", "product", "date", "orders", "revenue", "platform", "campaign_type"}); err != nil {
			return err
		}
		for _, ev := range d.Tracking {
			rec := []string{
				ev.TrackingID, ev.Source, ev.Campaign, string(ev.InfluencerID), ev.UserID,
				ev.Brand, ev.Product, ev.Date.Format("2006-01-02"),
				strconv.Itoa(ev.Orders), strconv.FormatFloat(ev.Revenue, 'f', 2, 64),
				ev.Platform, string(ev.CampaignType),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	case campaign.KindPayouts:
		if err := cw.Write([]string{"influencer_id", "basis", "rate", "orders", "total_payout", "posts_count"}); err != nil {
			return err
		}
		for _, p := range d.Payouts {
			rec := []string{
				string(p.InfluencerID), string(p.Basis),
				strconv.FormatFloat(p.Rate, 'f', 2, 64), strconv.Itoa(p.Orders),
				strconv.FormatFloat(p.TotalPayout, 'f', 2, 64), strconv.Itoa(p.PostsCount),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown dataset kind: %s", kind)
	}

	cw.Flush()
	return cw.Error()
}
