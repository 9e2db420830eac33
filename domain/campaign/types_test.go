package campaign

import "testing"

func TestDeriveTier_Bands(t *testing.T) {
	cases := []struct {
		followers int
		want      Tier
	}{
		{0, TierMicro},
		{50_000, TierMicro},
		{99_999, TierMicro},
		{100_000, TierMacro},
		{499_999, TierMacro},
		{500_000, TierMega},
		{2_000_000, TierMega},
	}

	for _, c := range cases {
		if got := DeriveTier(c.followers); got != c.want {
			t.Errorf("DeriveTier(%d) = %s, want %s", c.followers, got, c.want)
		}
	}
}

func TestParseDatasetKind(t *testing.T) {
	for _, kind := range AllKinds() {
		parsed, err := ParseDatasetKind(string(kind))
		if err != nil {
			t.Fatalf("ParseDatasetKind(%s) returned error: %v", kind, err)
		}
		if parsed != kind {
			t.Errorf("ParseDatasetKind(%s) = %s", kind, parsed)
		}
	}

	if _, err := ParseDatasetKind("orders"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestRequiredColumns_AllKindsCovered(t *testing.T) {
	for _, kind := range AllKinds() {
		if len(kind.RequiredColumns()) == 0 {
			t.Errorf("kind %s has no required columns", kind)
		}
	}
}

func TestCampaignType_IsValid(t *testing.T) {
	if !CampaignTest.IsValid() || !CampaignControl.IsValid() {
		t.Error("closed enum values must be valid")
	}
	if CampaignType("Holdout").IsValid() {
		t.Error("unknown label must be invalid")
	}
}

func TestDataset_Copy_Isolated(t *testing.T) {
	d := Dataset{
		Influencers: []Influencer{{ID: "INF_001", Name: "A", FollowerCount: 1000, Tier: TierMicro}},
	}

	cp := d.Copy()
	cp.Influencers[0].Name = "B"

	if d.Influencers[0].Name != "A" {
		t.Error("copy must not alias the original tables")
	}
}
