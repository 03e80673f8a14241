package wordlist

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Stage is one transformation in the per-hint chain.
// Apply receives the variants produced so far and returns the new variant
// list, which must include its input unless the stage documents otherwise.
type Stage interface {
	// Apply transforms the variants. It must be deterministic.
	Apply(variants []string) []string

	// Name returns the stage's name for logging purposes.
	Name() string
}

// CaseStage emits each variant as-is, lowercased, uppercased and capitalized.
// Casers from x/text hold state, so a CaseStage is not safe for concurrent use.
type CaseStage struct {
	lower cases.Caser
	upper cases.Caser
}

// NewCaseStage creates a CaseStage using language-neutral case mappings.
func NewCaseStage() *CaseStage {
	return &CaseStage{
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
	}
}

// Name returns the stage name.
func (s *CaseStage) Name() string {
	return "case"
}

// Apply returns the case variants of every input, without duplicates.
func (s *CaseStage) Apply(variants []string) []string {
	out := make([]string, 0, len(variants)*4)
	for _, v := range variants {
		out = append(out,
			v,
			s.lower.String(v),
			s.upper.String(v),
			s.capitalize(v),
		)
	}
	return dedupe(out)
}

// capitalize uppercases the first character and lowercases the rest.
func (s *CaseStage) capitalize(v string) string {
	if v == "" {
		return v
	}
	first, size := utf8.DecodeRuneInString(v)
	return s.upper.String(string(first)) + s.lower.String(v[size:])
}

// LeetStage adds one leetspeak variant per input.
// All substitutable characters are replaced at once; partial substitutions
// are not generated.
type LeetStage struct{}

// NewLeetStage creates a LeetStage.
func NewLeetStage() *LeetStage {
	return &LeetStage{}
}

// Name returns the stage name.
func (s *LeetStage) Name() string {
	return "leet"
}

// Apply returns the inputs followed by the leet variants that differ
// from their source.
func (s *LeetStage) Apply(variants []string) []string {
	out := make([]string, 0, len(variants)*2)
	out = append(out, variants...)
	for _, v := range variants {
		if l := Leet(v); l != v {
			out = append(out, l)
		}
	}
	return dedupe(out)
}

// Leet applies the substitution table to every matching character.
func Leet(v string) string {
	return strings.Map(func(r rune) rune {
		if sub, ok := leetTable[unicode.ToLower(r)]; ok {
			return sub
		}
		return r
	}, v)
}

// YearStage appends and prepends every year in an inclusive range.
type YearStage struct {
	start, end int

	// short also emits two-digit years ("24" for 2024).
	short bool
}

// NewYearStage creates a YearStage for [start, end].
func NewYearStage(start, end int, short bool) *YearStage {
	return &YearStage{start: start, end: end, short: short}
}

// Name returns the stage name.
func (s *YearStage) Name() string {
	return "years"
}

// Apply returns the inputs followed by variant+year and year+variant
// for every input and year.
func (s *YearStage) Apply(variants []string) []string {
	years := s.yearStrings()
	out := make([]string, 0, len(variants)*(1+2*len(years)))
	out = append(out, variants...)
	for _, v := range variants {
		for _, y := range years {
			out = append(out, v+y, y+v)
		}
	}
	return dedupe(out)
}

// yearStrings renders the range, long forms first for each year.
func (s *YearStage) yearStrings() []string {
	years := make([]string, 0, s.end-s.start+1)
	for y := s.start; y <= s.end; y++ {
		years = append(years, strconv.Itoa(y))
		if s.short {
			years = append(years, fmt.Sprintf("%02d", y%100))
		}
	}
	return years
}

// SuffixStage emits each variant un-suffixed and with every suffix appended.
type SuffixStage struct {
	suffixes []string
}

// NewSuffixStage creates a SuffixStage. Empty suffixes are ignored.
func NewSuffixStage(suffixes []string) *SuffixStage {
	kept := make([]string, 0, len(suffixes))
	for _, sfx := range suffixes {
		if sfx != "" {
			kept = append(kept, sfx)
		}
	}
	return &SuffixStage{suffixes: dedupe(kept)}
}

// Name returns the stage name.
func (s *SuffixStage) Name() string {
	return "suffix"
}

// Apply returns every variant followed by its suffixed forms.
func (s *SuffixStage) Apply(variants []string) []string {
	out := make([]string, 0, len(variants)*(1+len(s.suffixes)))
	for _, v := range variants {
		out = append(out, v)
		for _, sfx := range s.suffixes {
			out = append(out, v+sfx)
		}
	}
	return dedupe(out)
}
