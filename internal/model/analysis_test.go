package model

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestCharClassSet tests set membership and rendering.
func TestCharClassSet(t *testing.T) {
	t.Parallel()

	t.Run("empty set renders none", func(t *testing.T) {
		t.Parallel()
		var s CharClassSet
		if s.String() != "none" {
			t.Errorf("expected 'none', got %q", s.String())
		}
		if s.Len() != 0 {
			t.Errorf("expected 0 classes, got %d", s.Len())
		}
	})

	t.Run("classes are listed in display order", func(t *testing.T) {
		t.Parallel()
		s := CharClassSet(0).Add(ClassSymbol).Add(ClassLower).Add(ClassDigit)
		if s.String() != "lower,digit,symbol" {
			t.Errorf("expected 'lower,digit,symbol', got %q", s.String())
		}
		if s.Has(ClassUpper) {
			t.Error("did not expect upper")
		}
		if s.Len() != 3 {
			t.Errorf("expected 3 classes, got %d", s.Len())
		}
	})

	t.Run("adding twice is idempotent", func(t *testing.T) {
		t.Parallel()
		s := CharClassSet(0).Add(ClassUpper).Add(ClassUpper)
		if s.Len() != 1 {
			t.Errorf("expected 1 class, got %d", s.Len())
		}
	})

	t.Run("parse round trips String", func(t *testing.T) {
		t.Parallel()
		s := CharClassSet(0).Add(ClassUpper).Add(ClassDigit)
		if got := ParseCharClassSet(s.String()); got != s {
			t.Errorf("expected %v, got %v", s, got)
		}
		if got := ParseCharClassSet("none"); got != 0 {
			t.Errorf("expected empty set, got %v", got)
		}
	})
}

// TestAnalysisResultVerdict tests which strength level wins.
func TestAnalysisResultVerdict(t *testing.T) {
	t.Parallel()

	score := 1

	t.Run("entropy rating without external score", func(t *testing.T) {
		t.Parallel()
		r := &AnalysisResult{Rating: StrengthStrong}
		if r.HasExternalScore() {
			t.Error("expected no external score")
		}
		if r.Verdict() != StrengthStrong {
			t.Errorf("expected STRONG, got %v", r.Verdict())
		}
	})

	t.Run("external score overrides rating", func(t *testing.T) {
		t.Parallel()
		r := &AnalysisResult{Rating: StrengthStrong, ExternalScore: &score}
		if r.Verdict() != StrengthWeak {
			t.Errorf("expected WEAK, got %v", r.Verdict())
		}
	})

	t.Run("common password is always very weak", func(t *testing.T) {
		t.Parallel()
		r := &AnalysisResult{Rating: StrengthVeryStrong, Common: true}
		if r.Verdict() != StrengthVeryWeak {
			t.Errorf("expected VERY WEAK, got %v", r.Verdict())
		}
	})

	t.Run("external score is omitted from JSON when nil", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(&AnalysisResult{Length: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(string(data), "external_score") {
			t.Errorf("expected no external_score field, got %s", data)
		}
	})
}

// TestYearRange tests range validity and size.
func TestYearRange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		yr    YearRange
		valid bool
		size  int
	}{
		{"single year", YearRange{Start: 2024, End: 2024}, true, 1},
		{"decade", YearRange{Start: 2010, End: 2019}, true, 10},
		{"reversed", YearRange{Start: 2025, End: 2020}, false, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.yr.Valid() != tc.valid {
				t.Errorf("Valid() = %v, expected %v", tc.yr.Valid(), tc.valid)
			}
			if tc.yr.Len() != tc.size {
				t.Errorf("Len() = %d, expected %d", tc.yr.Len(), tc.size)
			}
		})
	}

	if (YearRange{Start: 1999, End: 2001}).String() != "1999-2001" {
		t.Error("unexpected String() output")
	}
}
