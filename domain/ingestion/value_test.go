package ingestion

import (
	"testing"
	"time"
)

func TestNewStringValue_BlankIsMissing(t *testing.T) {
	for _, s := range []string{"", "   ", "\t"} {
		if v := NewStringValue(s); !v.IsMissing {
			t.Errorf("NewStringValue(%q) must be missing", s)
		}
	}
	if v := NewStringValue(" INF_001 "); v.AsString() != "INF_001" {
		t.Errorf("expected trimmed string, got %q", v.AsString())
	}
}

func TestCoerceNumeric(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		missing bool
	}{
		{"2000", 2000, false},
		{"2000.50", 2000.5, false},
		{"₹1,500", 1500, false},
		{"$99", 99, false},
		{"abc", 0, true},
		{"12abc", 0, true},
	}

	for _, c := range cases {
		got := CoerceNumeric(NewStringValue(c.in))
		if got.IsMissing != c.missing {
			t.Errorf("CoerceNumeric(%q) missing = %v, want %v", c.in, got.IsMissing, c.missing)
			continue
		}
		if !c.missing && got.AsFloat64() != c.want {
			t.Errorf("CoerceNumeric(%q) = %v, want %v", c.in, got.AsFloat64(), c.want)
		}
	}

	// Already-numeric values pass through untouched
	n := NewNumericValue(42)
	if got := CoerceNumeric(n); !got.Equal(n) {
		t.Error("numeric values must pass through coercion unchanged")
	}
}

func TestCoerceDate(t *testing.T) {
	got := CoerceDate(NewStringValue("2025-07-15"))
	if got.IsMissing {
		t.Fatal("ISO date failed to coerce")
	}
	want := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	if !got.AsTime().Equal(want) {
		t.Errorf("coerced to %v, want %v", got.AsTime(), want)
	}

	if got := CoerceDate(NewStringValue("yesterday")); !got.IsMissing {
		t.Error("unparseable date must become missing")
	}

	d := NewDateValue(want)
	if got := CoerceDate(d); !got.Equal(d) {
		t.Error("date values must pass through coercion unchanged")
	}
}
