package app

import (
	"io"

	"roasdash/adapters/tabular"
	"roasdash/domain/campaign"
	"roasdash/domain/core"
	"roasdash/domain/ingestion"
	"roasdash/domain/insights"
	"roasdash/domain/metrics"
	"roasdash/internal"
	"roasdash/internal/errors"
	"roasdash/internal/session"
)

// DashboardService runs the attribution pipeline for a session: ingest on
// upload, recompute on every filter change. Each computation is stateless
// and idempotent for identical inputs.
type DashboardService struct {
	store     *session.Store
	generator *insights.Generator
	logger    *internal.Logger
}

// NewDashboardService wires the pipeline against a session store
func NewDashboardService(store *session.Store, logger *internal.Logger) *DashboardService {
	return &DashboardService{
		store:     store,
		generator: insights.NewGenerator(),
		logger:    logger,
	}
}

// Store exposes the underlying session store for session resolution
func (s *DashboardService) Store() *session.Store {
	return s.store
}

// IngestTable validates and cleans an uploaded table, then stores it in the
// session. A malformed file or failed schema check leaves the session
// untouched; the dataset simply stays absent.
func (s *DashboardService) IngestTable(sess *session.Session, kind campaign.DatasetKind, filename string, src io.Reader) (ingestion.CoercionReport, error) {
	table, err := tabular.NewReader(filename).Read(src)
	if err != nil {
		s.logger.Warn("upload for %s unreadable: %v", kind, err)
		return ingestion.CoercionReport{}, errors.FileUnreadable(kind.String(), err)
	}

	result := ingestion.ValidateSchema(table, kind)
	if !result.OK {
		s.logger.Warn("schema validation failed for %s: %s", kind, result.Message)
		return ingestion.CoercionReport{}, errors.SchemaInvalid(kind.String(), result.Message)
	}

	cleaned, report := ingestion.Clean(table, kind)
	sess.SetTable(kind, cleaned, report)
	s.logger.Info("ingested %s: %d rows in, %d kept, %d dropped",
		kind, report.RowsIn, report.RowsKept, report.Dropped())
	return report, nil
}

// Snapshot is the complete displayable result set for one filter state.
// It is always fully populated, possibly with zeros, never partial.
type Snapshot struct {
	Rows         []metrics.PerformanceRow `json:"rows"`
	Overview     metrics.Overview         `json:"overview"`
	Lift         metrics.LiftResult       `json:"lift"`
	Insights     []string                 `json:"insights"`
	BrandROAS    []metrics.GroupedROAS    `json:"brand_roas"`
	PlatformROAS []metrics.GroupedROAS    `json:"platform_roas"`
	SampleData   bool                     `json:"sample_data"`
}

// Compute runs the full pipeline for the session under the given filter.
// The lift calculation intentionally runs on unfiltered tracking and payout
// tables; only the per-post view and its derived aggregates are filtered.
func (s *DashboardService) Compute(sess *session.Session, filter metrics.Filter) Snapshot {
	data := s.store.Dataset(sess)

	performance := metrics.Aggregate(data.Posts, data.Tracking, data.Payouts)
	filtered := filter.Apply(performance, data.Influencers)

	return Snapshot{
		Rows:     filtered,
		Overview: metrics.Summarize(filtered),
		Lift:     metrics.IncrementalROAS(data.Tracking, data.Payouts),
		Insights: s.generator.Generate(insights.Context{
			Rows:        filtered,
			Influencers: data.Influencers,
		}),
		BrandROAS:    metrics.ByBrand(filtered),
		PlatformROAS: metrics.ByPlatform(filtered),
		SampleData:   !sess.Loaded(),
	}
}

// DetailedRow is a performance row joined with its influencer profile for
// the detailed campaign table.
type DetailedRow struct {
	metrics.PerformanceRow
	Name          string        `json:"name"`
	Category      string        `json:"category"`
	Tier          campaign.Tier `json:"tier"`
	FollowerCount int           `json:"follower_count"`
}

// DetailedView joins performance rows with influencer profiles. Rows whose
// influencer is unknown are kept with empty profile fields rather than
// dropped, so totals stay consistent with the snapshot.
func DetailedView(rows []metrics.PerformanceRow, influencers []campaign.Influencer) []DetailedRow {
	byID := make(map[core.InfluencerID]campaign.Influencer, len(influencers))
	for _, inf := range influencers {
		byID[inf.ID] = inf
	}

	out := make([]DetailedRow, 0, len(rows))
	for _, r := range rows {
		d := DetailedRow{PerformanceRow: r}
		if inf, ok := byID[r.InfluencerID]; ok {
			d.Name = inf.Name
			d.Category = inf.Category
			d.Tier = inf.Tier
			d.FollowerCount = inf.FollowerCount
		}
		out = append(out, d)
	}
	return out
}
