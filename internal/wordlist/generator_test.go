package wordlist

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/nao1215/pwtool/internal/model"
)

// assertNoDuplicates fails the test if words contains a repeated entry.
func assertNoDuplicates(t *testing.T, words []string) {
	t.Helper()

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if seen[w] {
			t.Errorf("duplicate entry %q", w)
		}
		seen[w] = true
	}
}

// TestGenerate tests the full per-hint pipeline.
func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("single hint with one year and no suffixes", func(t *testing.T) {
		t.Parallel()

		g := NewGenerator(
			WithYears(model.YearRange{Start: 2024, End: 2024}),
			WithSuffixes(nil),
		)
		words, err := g.Generate([]string{"word"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, want := range []string{"word", "Word", "WORD", "w0rd", "word2024", "2024word"} {
			if !contains(words, want) {
				t.Errorf("expected %q in output %q", want, words)
			}
		}
		assertNoDuplicates(t, words)
	})

	t.Run("default suffixes are applied", func(t *testing.T) {
		t.Parallel()

		words, err := NewGenerator().Generate([]string{"cat"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"cat", "cat!", "cat123", "cat@123", "Cat!", "C47123"} {
			if !contains(words, want) {
				t.Errorf("expected %q in output", want)
			}
		}
	})

	t.Run("no year range skips year augmentation", func(t *testing.T) {
		t.Parallel()

		words, err := NewGenerator(WithSuffixes(nil)).Generate([]string{"word"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := []string{"word", "WORD", "Word", "w0rd", "W0RD", "W0rd"}
		if !reflect.DeepEqual(words, expected) {
			t.Errorf("got %q, expected %q", words, expected)
		}
	})

	t.Run("leet can be disabled", func(t *testing.T) {
		t.Parallel()

		words, err := NewGenerator(WithLeet(false), WithSuffixes(nil)).Generate([]string{"word"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contains(words, "w0rd") {
			t.Error("did not expect leet variant")
		}
	})

	t.Run("overlapping hints are deduplicated", func(t *testing.T) {
		t.Parallel()

		words, err := NewGenerator().Generate([]string{"Word", "word", "WORD"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertNoDuplicates(t, words)
		if words[0] != "Word" {
			t.Errorf("expected first-seen order starting with 'Word', got %q", words[0])
		}
	})

	t.Run("output is deterministic", func(t *testing.T) {
		t.Parallel()

		build := func() []string {
			g := NewGenerator(
				WithYears(model.YearRange{Start: 1990, End: 2000}),
				WithShortYears(true),
				WithMaxCombine(2),
			)
			words, err := g.Generate([]string{"alice", "rex", "1990"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			return words
		}

		first, second := build(), build()
		if !reflect.DeepEqual(first, second) {
			t.Error("expected identical output for identical input")
		}
		assertNoDuplicates(t, first)
	})
}

// TestGenerateErrors tests input validation.
func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		gen      *Generator
		hints    []string
		expected error
	}{
		{"nil hints", NewGenerator(), nil, ErrNoHints},
		{"blank hints", NewGenerator(), []string{"", "  ", "\t"}, ErrNoHints},
		{
			"reversed year range",
			NewGenerator(WithYears(model.YearRange{Start: 2025, End: 2020})),
			[]string{"word"},
			ErrInvalidYearRange,
		},
		{
			"negative year",
			NewGenerator(WithYears(model.YearRange{Start: -5, End: 2020})),
			[]string{"word"},
			ErrInvalidYearRange,
		},
		{
			"year range over the limit",
			NewGenerator(WithYears(model.YearRange{Start: 0, End: 3000000}), WithMaxResults(10)),
			[]string{"word"},
			ErrYearRangeTooLarge,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.gen.Generate(tc.hints)
			if !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
			if !errors.Is(err, model.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

// TestGenerateSupplements tests combination, common passwords and limits.
func TestGenerateSupplements(t *testing.T) {
	t.Parallel()

	t.Run("combine concatenates distinct hints in both orders", func(t *testing.T) {
		t.Parallel()
		words, err := NewGenerator(WithMaxCombine(2), WithSuffixes(nil), WithLeet(false)).
			Generate([]string{"john", "smith"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"johnsmith", "smithjohn", "Johnsmith"} {
			if !contains(words, want) {
				t.Errorf("expected %q in output", want)
			}
		}
		if contains(words, "johnjohn") {
			t.Error("did not expect a hint combined with itself")
		}
	})

	t.Run("common passwords are added as hints", func(t *testing.T) {
		t.Parallel()
		words, err := NewGenerator(WithCommonPasswords(true), WithSuffixes(nil)).
			Generate([]string{"zebra"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"zebra", "qwerty", "QWERTY", "p455w0rd"} {
			if !contains(words, want) {
				t.Errorf("expected %q in output", want)
			}
		}
	})

	t.Run("max results truncates in first-seen order", func(t *testing.T) {
		t.Parallel()
		all, err := NewGenerator().Generate([]string{"alpha", "beta"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		capped, err := NewGenerator(WithMaxResults(5)).Generate([]string{"alpha", "beta"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(capped, all[:5]) {
			t.Errorf("got %q, expected %q", capped, all[:5])
		}
	})

	t.Run("describe lists enabled options", func(t *testing.T) {
		t.Parallel()
		g := NewGenerator(WithYears(model.YearRange{Start: 2000, End: 2001}), WithMaxCombine(3))
		desc := g.Describe()
		for _, want := range []string{"leet=true", "years=2000-2001", "combine=3"} {
			if !strings.Contains(desc, want) {
				t.Errorf("expected %q in %q", want, desc)
			}
		}
	})
}

func TestNormalizeHints(t *testing.T) {
	t.Parallel()

	// "e" followed by a combining acute accent normalizes to "é".
	got := NormalizeHints([]string{" rex ", "", "cafe\u0301", "caf\u00e9", "rex"})
	expected := []string{"rex", "caf\u00e9"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("got %q, expected %q", got, expected)
	}
}

func TestCombine(t *testing.T) {
	t.Parallel()

	t.Run("pairs in index order", func(t *testing.T) {
		t.Parallel()
		got := slices.Collect(combine([]string{"a", "b", "c"}, 2))
		expected := []string{"ab", "ac", "ba", "bc", "ca", "cb"}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("got %q, expected %q", got, expected)
		}
	})

	t.Run("single hint has no combinations", func(t *testing.T) {
		t.Parallel()
		if got := slices.Collect(combine([]string{"a"}, 3)); len(got) != 0 {
			t.Errorf("expected no combinations for a single hint, got %q", got)
		}
	})

	t.Run("stops when the consumer stops", func(t *testing.T) {
		t.Parallel()
		hints := make([]string, 12)
		for i := range hints {
			hints[i] = fmt.Sprintf("h%d", i)
		}

		calls := 0
		for range combine(hints, len(hints)) {
			calls++
			if calls == 3 {
				break
			}
		}
		if calls != 3 {
			t.Errorf("expected 3 combinations, got %d", calls)
		}
	})
}

// TestGenerateResultCap tests that a small result cap bounds the work done.
func TestGenerateResultCap(t *testing.T) {
	t.Parallel()

	t.Run("deep combination stops at the cap", func(t *testing.T) {
		t.Parallel()
		// Digit hints have a single case variant, so the cap is reached
		// inside the combinations. 12 hints at full depth are hundreds of
		// millions of permutations; this only finishes if combination is lazy.
		hints := make([]string, 12)
		for i := range hints {
			hints[i] = fmt.Sprintf("%d", 10+i)
		}

		words, err := NewGenerator(
			WithMaxCombine(len(hints)), WithLeet(false), WithSuffixes(nil), WithMaxResults(20),
		).Generate(hints)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(words) != 20 {
			t.Fatalf("expected 20 entries, got %d", len(words))
		}
		if !reflect.DeepEqual(words[:12], hints) {
			t.Errorf("expected the plain hints first, got %q", words[:12])
		}
		if words[12] != "1011" {
			t.Errorf("expected first combination %q, got %q", "1011", words[12])
		}
		assertNoDuplicates(t, words)
	})

	t.Run("combinations come after every plain hint", func(t *testing.T) {
		t.Parallel()
		words, err := NewGenerator(
			WithMaxCombine(2), WithLeet(false), WithSuffixes(nil),
		).Generate([]string{"ab", "cd"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if words[0] != "ab" {
			t.Errorf("expected first entry %q, got %q", "ab", words[0])
		}
		if !contains(words, "abcd") || !contains(words, "cdab") {
			t.Errorf("expected both concatenations in %q", words)
		}
		if slices.Index(words, "abcd") < slices.Index(words, "CD") {
			t.Errorf("expected combinations after the plain hints, got %q", words)
		}
	})

	t.Run("widest allowed year range respects the cap", func(t *testing.T) {
		t.Parallel()
		yr := model.YearRange{Start: 2024 - MaxYears + 1, End: 2024}
		words, err := NewGenerator(WithYears(yr), WithShortYears(true), WithMaxResults(5)).Generate([]string{"rex"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(words) != 5 {
			t.Errorf("expected 5 entries, got %d", len(words))
		}
	})
}

// contains reports whether words includes want.
func contains(words []string, want string) bool {
	for _, w := range words {
		if w == want {
			return true
		}
	}
	return false
}
