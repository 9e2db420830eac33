package tabular

import "roasdash/domain/campaign"

// Template CSVs are static user guidance matching the required schemas.
// They are served verbatim, never computed.
const (
	influencersTemplate = `influencer_id,name,category,gender,follower_count,platform,tier
INF_001,John Doe,Fitness,Male,50000,Instagram,Micro
INF_002,Jane Smith,Nutrition,Female,100000,YouTube,Macro
`

	postsTemplate = `influencer_id,platform,date,reach,likes,comments,brand,product,campaign_type
INF_001,Instagram,2025-07-01,10000,500,50,MuscleBlaze,Whey Protein,Test
INF_002,YouTube,2025-07-02,25000,1250,125,HKVitals,Multivitamin,Control
`

	trackingTemplate = `influencer_id,campaign,orders,revenue,date,campaign_type
INF_001,MB_Whey,10,15000,2025-07-01,Test
INF_002,HKV_Multi,15,22500,2025-07-02,Control
`

	payoutsTemplate = `influencer_id,basis,rate,total_payout
INF_001,post,5000,15000
INF_002,order,200,3000
`
)

// Template returns the example CSV for a dataset kind, or false for an
// unknown kind.
func Template(kind campaign.DatasetKind) (string, bool) {
	switch kind {
	case campaign.KindInfluencers:
		return influencersTemplate, true
	case campaign.KindPosts:
		return postsTemplate, true
	case campaign.KindTracking:
		return trackingTemplate, true
	case campaign.KindPayouts:
		return payoutsTemplate, true
	default:
		return "", false
	}
}
