package sample

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"roasdash/domain/campaign"
	"roasdash/domain/core"
)

// GeneratorConfig configures the synthetic campaign data generator
type GeneratorConfig struct {
	InfluencerCount int       `json:"influencer_count"`
	PostCount       int       `json:"post_count"`
	TrackingSamples int       `json:"tracking_samples"`
	BaseDate        time.Time `json:"base_date"`
	Seed            int64     `json:"seed"`
}

// DefaultConfig returns the sizing used for the demo dashboard.
// BaseDate is fixed so identical seeds reproduce identical tables
// bit-for-bit across runs.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		InfluencerCount: 50,
		PostCount:       200,
		TrackingSamples: 500,
		BaseDate:        time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		Seed:            42,
	}
}

var (
	brands = []string{"MuscleBlaze", "HKVitals", "Gritzo"}

	productsByBrand = map[string][]string{
		"MuscleBlaze": {"Whey Protein", "Creatine", "Mass Gainer", "BCAA"},
		"HKVitals":    {"Multivitamin", "Omega-3", "Vitamin D", "Calcium"},
		"Gritzo":      {"Kids Protein", "Kids Multivitamin", "Growth Formula"},
	}

	platforms  = []string{"Instagram", "YouTube", "Twitter", "TikTok"}
	categories = []string{"Fitness", "Nutrition", "Lifestyle", "Health", "Sports"}
	genders    = []string{"Male", "Female", "Other"}
)

// Generator produces a self-consistent synthetic campaign dataset
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewGenerator creates a generator with its own seeded RNG stream
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate builds the four linked tables. Influencers come first so every
// post, tracking event, and payout references an existing influencer_id.
func (g *Generator) Generate() campaign.Dataset {
	influencers := g.generateInfluencers()
	posts := g.generatePosts(influencers)
	tracking := g.generateTracking(posts)
	payouts := g.generatePayouts(influencers, posts, tracking)

	return campaign.Dataset{
		Influencers: influencers,
		Posts:       posts,
		Tracking:    tracking,
		Payouts:     payouts,
	}
}

func (g *Generator) generateInfluencers() []campaign.Influencer {
	out := make([]campaign.Influencer, 0, g.config.InfluencerCount)
	for i := 0; i < g.config.InfluencerCount; i++ {
		followers := 10_000 + g.rng.Intn(1_990_001) // 10k..2M inclusive
		out = append(out, campaign.Influencer{
			ID:            core.InfluencerID(fmt.Sprintf("INF_%03d", i+1)),
			Name:          fmt.Sprintf("Influencer_%d", i+1),
			Category:      categories[g.rng.Intn(len(categories))],
			Gender:        genders[g.rng.Intn(len(genders))],
			FollowerCount: followers,
			Platform:      platforms[g.rng.Intn(len(platforms))],
			Tier:          campaign.DeriveTier(followers),
		})
	}
	return out
}

func (g *Generator) generatePosts(influencers []campaign.Influencer) []campaign.Post {
	out := make([]campaign.Post, 0, g.config.PostCount)
	for i := 0; i < g.config.PostCount; i++ {
		inf := influencers[g.rng.Intn(len(influencers))]
		brand := brands[g.rng.Intn(len(brands))]
		products := productsByBrand[brand]
		product := products[g.rng.Intn(len(products))]

		campaignType := campaign.CampaignTest
		if g.rng.Float64() <= 0.2 {
			campaignType = campaign.CampaignControl
		}

		// Reach is a 10-30% fraction of the audience, never above it
		reach := float64(inf.FollowerCount) * g.uniform(0.1, 0.3)
		if reach > float64(inf.FollowerCount) {
			reach = float64(inf.FollowerCount)
		}

		out = append(out, campaign.Post{
			PostID:       fmt.Sprintf("POST_%03d", i+1),
			InfluencerID: inf.ID,
			Platform:     inf.Platform,
			Brand:        brand,
			Product:      product,
			CampaignType: campaignType,
			Date:         g.config.BaseDate.AddDate(0, 0, -(1 + g.rng.Intn(90))),
			URL:          fmt.Sprintf("https://%s.com/post/%d", strings.ToLower(inf.Platform), i+1),
			Caption:      fmt.Sprintf("Check out this amazing %s from %s! #sponsored", product, brand),
			Reach:        int(reach),
			Likes:        int(reach * g.uniform(0.02, 0.08)),
			Comments:     int(reach * g.uniform(0.005, 0.02)),
			Shares:       int(reach * g.uniform(0.001, 0.01)),
		})
	}
	return out
}

func (g *Generator) generateTracking(posts []campaign.Post) []campaign.TrackingEvent {
	var out []campaign.TrackingEvent
	for i := 0; i < g.config.TrackingSamples; i++ {
		post := posts[g.rng.Intn(len(posts))]

		conversionRate := g.uniform(0.001, 0.005)
		orders := int(float64(post.Reach) * conversionRate)
		if orders < 1 {
			orders = 1
		}

		// One tracking record per order; revenue is additive per event
		for o := 0; o < orders; o++ {
			out = append(out, campaign.TrackingEvent{
				TrackingID:   fmt.Sprintf("TRK_%04d", len(out)+1),
				Source:       "influencer",
				Campaign:     fmt.Sprintf("%s_%s_campaign", post.Brand, post.Product),
				InfluencerID: post.InfluencerID,
				UserID:       fmt.Sprintf("USER_%04d", 1000+g.rng.Intn(9000)),
				Brand:        post.Brand,
				Product:      post.Product,
				Date:         post.Date.AddDate(0, 0, g.rng.Intn(8)),
				Orders:       1,
				Revenue:      g.uniform(500, 3000),
				Platform:     post.Platform,
				CampaignType: post.CampaignType,
			})
		}
	}
	return out
}

func (g *Generator) generatePayouts(influencers []campaign.Influencer, posts []campaign.Post, tracking []campaign.TrackingEvent) []campaign.Payout {
	postCounts := make(map[core.InfluencerID]int, len(influencers))
	for _, p := range posts {
		postCounts[p.InfluencerID]++
	}
	orderCounts := make(map[core.InfluencerID]int, len(influencers))
	for _, ev := range tracking {
		orderCounts[ev.InfluencerID]++
	}

	out := make([]campaign.Payout, 0, len(influencers))
	for _, inf := range influencers {
		basis := campaign.BasisPerPost
		if g.rng.Intn(2) == 1 {
			basis = campaign.BasisPerOrder
		}

		var rate, total float64
		if basis == campaign.BasisPerPost {
			// Post rates scale with audience tier
			switch inf.Tier {
			case campaign.TierMicro:
				rate = g.uniform(5_000, 15_000)
			case campaign.TierMacro:
				rate = g.uniform(15_000, 50_000)
			default:
				rate = g.uniform(50_000, 150_000)
			}
			total = rate * float64(postCounts[inf.ID])
		} else {
			rate = g.uniform(100, 500)
			total = rate * float64(orderCounts[inf.ID])
		}

		out = append(out, campaign.Payout{
			InfluencerID: inf.ID,
			Basis:        basis,
			Rate:         rate,
			Orders:       orderCounts[inf.ID],
			TotalPayout:  total,
			PostsCount:   postCounts[inf.ID],
		})
	}
	return out
}

// uniform draws from [min, max)
func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}
