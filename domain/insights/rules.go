package insights

import (
	"fmt"

	"roasdash/domain/campaign"
	"roasdash/domain/core"
	"roasdash/domain/metrics"
)

// Context carries everything a rule may inspect: the filtered performance
// table plus the influencer profiles for tier resolution.
type Context struct {
	Rows        []metrics.PerformanceRow
	Influencers []campaign.Influencer
}

// Rule is one independent predicate + formatter pair. Evaluate returns the
// finding text and whether the rule fired; rules never see each other's
// results.
type Rule interface {
	Name() string
	Evaluate(ctx Context) (string, bool)
}

// tierRule compares ROAS across influencer tiers. It fires only when at
// least two tiers are present and the best tier out-earns the worst by more
// than 1.5x.
type tierRule struct{}

func (tierRule) Name() string { return "tier_comparison" }

func (tierRule) Evaluate(ctx Context) (string, bool) {
	tierByInf := make(map[core.InfluencerID]campaign.Tier, len(ctx.Influencers))
	for _, inf := range ctx.Influencers {
		tierByInf[inf.ID] = inf.Tier
	}

	// Rows whose influencer is unknown carry no tier and are excluded from
	// the tier grouping
	joined := make([]metrics.PerformanceRow, 0, len(ctx.Rows))
	for _, r := range ctx.Rows {
		if _, ok := tierByInf[r.InfluencerID]; ok {
			joined = append(joined, r)
		}
	}

	groups := metrics.GroupROAS(joined, func(r metrics.PerformanceRow) string {
		return string(tierByInf[r.InfluencerID])
	})
	if len(groups) < 2 {
		return "", false
	}

	best, worst := groups[0], groups[len(groups)-1]
	if best.ROAS <= worst.ROAS*1.5 {
		return "", false
	}

	return fmt.Sprintf(
		"**Performance Optimization:** %s-influencers show %.2fx ROAS vs %.2fx for %s-influencers. "+
			"Recommend reallocating budget to the %s-tier for optimal ROI.",
		best.Key, best.ROAS, worst.ROAS, worst.Key, best.Key,
	), true
}

// platformRule reports the top platform by ROAS when more than one platform
// is present.
type platformRule struct{}

func (platformRule) Name() string { return "platform_intelligence" }

func (platformRule) Evaluate(ctx Context) (string, bool) {
	groups := metrics.ByPlatform(ctx.Rows)
	if len(groups) < 2 {
		return "", false
	}

	top := groups[0]
	return fmt.Sprintf(
		"**Platform Intelligence:** **%s** is the highest performing platform with a ROAS of %.2fx. "+
			"Consider increasing budget allocation to this platform to maximize returns.",
		top.Key, top.ROAS,
	), true
}

// productRule reports the top product by ROAS when more than one product is
// present.
type productRule struct{}

func (productRule) Name() string { return "product_strategy" }

func (productRule) Evaluate(ctx Context) (string, bool) {
	groups := metrics.ByProduct(ctx.Rows)
	if len(groups) < 2 {
		return "", false
	}

	top := groups[0]
	return fmt.Sprintf(
		"**Product Strategy:** **%s** campaigns demonstrate the highest ROAS at %.2fx. "+
			"Focus marketing efforts on this product for optimal ROI.",
		top.Key, top.ROAS,
	), true
}
