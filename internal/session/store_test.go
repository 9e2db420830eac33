package session

import (
	"testing"

	"roasdash/adapters/sample"
	"roasdash/domain/campaign"
	"roasdash/domain/core"
	"roasdash/domain/ingestion"
)

func testStore() *Store {
	cfg := sample.DefaultConfig()
	cfg.InfluencerCount = 5
	cfg.PostCount = 10
	cfg.TrackingSamples = 20
	return NewStore(cfg)
}

func influencerTable() ingestion.Table {
	return ingestion.Table{
		Columns: []string{"influencer_id", "name", "category", "gender", "follower_count", "platform", "tier"},
		Rows: []ingestion.Record{{
			"influencer_id":  ingestion.NewStringValue("INF_001"),
			"name":           ingestion.NewStringValue("Asha"),
			"category":       ingestion.NewStringValue("Fitness"),
			"gender":         ingestion.NewStringValue("Female"),
			"follower_count": ingestion.NewNumericValue(50_000),
			"platform":       ingestion.NewStringValue("Instagram"),
			"tier":           ingestion.NewStringValue("Micro"),
		}},
	}
}

func TestStore_GetUnknownSession(t *testing.T) {
	st := testStore()

	if _, err := st.Get("no-such-id"); !core.IsNotFoundError(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestStore_GetOrCreate(t *testing.T) {
	st := testStore()

	created := st.GetOrCreate("")
	if created == nil || created.ID == "" {
		t.Fatal("empty ID must create a session")
	}

	same := st.GetOrCreate(created.ID)
	if same.ID != created.ID {
		t.Error("known ID must resolve to the existing session")
	}

	fresh := st.GetOrCreate("unknown-id")
	if fresh.ID == created.ID {
		t.Error("unknown ID must create a fresh session")
	}
}

func TestStore_Drop(t *testing.T) {
	st := testStore()
	s := st.Create()

	st.Drop(s.ID)
	if _, err := st.Get(s.ID); err == nil {
		t.Error("dropped session must not resolve")
	}
}

func TestDataset_SampleSubstitutionUntilUpload(t *testing.T) {
	st := testStore()
	s := st.Create()

	if s.Loaded() {
		t.Fatal("fresh session must have no uploads")
	}

	d := st.Dataset(s)
	if d.IsEmpty() {
		t.Fatal("empty session must fall back to sample data")
	}
	if len(d.Influencers) != 5 {
		t.Errorf("sample sizing not honored: %d influencers", len(d.Influencers))
	}

	report := ingestion.CoercionReport{Kind: campaign.KindInfluencers, RowsIn: 1, RowsKept: 1}
	s.SetTable(campaign.KindInfluencers, influencerTable(), report)

	if !s.Loaded() || !s.KindLoaded(campaign.KindInfluencers) {
		t.Fatal("upload must mark the session loaded")
	}

	d = st.Dataset(s)
	if len(d.Influencers) != 1 || d.Influencers[0].ID != "INF_001" {
		t.Errorf("loaded session must serve its own tables, got %d influencers", len(d.Influencers))
	}
	// Kinds that were never uploaded stay empty rather than mixing with sample
	if len(d.Posts) != 0 {
		t.Errorf("unloaded kinds must be empty, got %d posts", len(d.Posts))
	}
}

func TestDataset_ReturnsIsolatedCopies(t *testing.T) {
	st := testStore()
	s := st.Create()

	first := st.Dataset(s)
	first.Influencers[0].Name = "mutated"

	second := st.Dataset(s)
	if second.Influencers[0].Name == "mutated" {
		t.Error("callers must not share dataset memory")
	}
}

func TestSampleData_Memoized(t *testing.T) {
	st := testStore()

	first := st.SampleData()
	second := st.SampleData()

	if len(first.Influencers) != len(second.Influencers) {
		t.Fatal("memoized sample changed size between calls")
	}
	for i := range first.Influencers {
		if first.Influencers[i] != second.Influencers[i] {
			t.Fatal("memoized sample changed content between calls")
		}
	}
}

func TestSession_ReportRetrieval(t *testing.T) {
	st := testStore()
	s := st.Create()

	if _, ok := s.Report(campaign.KindInfluencers); ok {
		t.Error("fresh session must have no reports")
	}

	report := ingestion.CoercionReport{Kind: campaign.KindInfluencers, RowsIn: 3, RowsKept: 1, DroppedMissing: 2}
	s.SetTable(campaign.KindInfluencers, influencerTable(), report)

	got, ok := s.Report(campaign.KindInfluencers)
	if !ok || got != report {
		t.Errorf("Report = %+v, %v", got, ok)
	}
}
