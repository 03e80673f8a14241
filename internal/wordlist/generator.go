package wordlist

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/nao1215/pwtool/internal/model"
	"github.com/nao1215/pwtool/internal/strength"
)

// Generator expands hints into a deduplicated candidate list.
// A Generator is not safe for concurrent use.
type Generator struct {
	// years enables the year stage when non-nil.
	years *model.YearRange

	// suffixes feed the suffix stage. An empty list still emits the
	// un-suffixed variants.
	suffixes []string

	// leet enables the leetspeak stage.
	leet bool

	// shortYears adds two-digit years to the year stage.
	shortYears bool

	// includeCommon appends the built-in common passwords as extra hints.
	includeCommon bool

	// maxCombine is the largest number of distinct hints concatenated into
	// one extra hint. 1 disables combination.
	maxCombine int

	// maxResults caps the output. 0 means unlimited.
	maxResults int

	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithYears enables year augmentation over the inclusive range.
func WithYears(yr model.YearRange) Option {
	return func(g *Generator) {
		g.years = &yr
	}
}

// WithSuffixes replaces the default suffix list. nil or empty disables
// suffixed variants.
func WithSuffixes(suffixes []string) Option {
	return func(g *Generator) {
		g.suffixes = suffixes
	}
}

// WithLeet enables or disables the leetspeak stage.
func WithLeet(enabled bool) Option {
	return func(g *Generator) {
		g.leet = enabled
	}
}

// WithShortYears adds two-digit years alongside four-digit ones.
func WithShortYears(enabled bool) Option {
	return func(g *Generator) {
		g.shortYears = enabled
	}
}

// WithCommonPasswords appends the built-in common password list as hints.
func WithCommonPasswords(enabled bool) Option {
	return func(g *Generator) {
		g.includeCommon = enabled
	}
}

// WithMaxCombine concatenates permutations of up to n distinct hints.
// Values below 2 disable combination.
func WithMaxCombine(n int) Option {
	return func(g *Generator) {
		g.maxCombine = n
	}
}

// WithMaxResults caps the number of generated entries. 0 means unlimited.
func WithMaxResults(n int) Option {
	return func(g *Generator) {
		if n >= 0 {
			g.maxResults = n
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a Generator. By default leetspeak is on, the default
// suffixes are used, and years are off.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		suffixes:   DefaultSuffixes(),
		leet:       true,
		maxCombine: 1,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = slog.Default()
	}

	return g
}

// Validate checks the generator options without generating anything.
func (g *Generator) Validate() error {
	if g.years != nil {
		if !g.years.Valid() || g.years.Start < 0 {
			return fmt.Errorf("%w: got %s", ErrInvalidYearRange, g.years)
		}
		if g.years.Len() > MaxYears {
			return fmt.Errorf("%w: got %d years", ErrYearRangeTooLarge, g.years.Len())
		}
	}
	return nil
}

// Stages returns the stage chain applied to each hint.
func (g *Generator) Stages() []Stage {
	stages := []Stage{NewCaseStage()}
	if g.leet {
		stages = append(stages, NewLeetStage())
	}
	if g.years != nil {
		stages = append(stages, NewYearStage(g.years.Start, g.years.End, g.shortYears))
	}
	stages = append(stages, NewSuffixStage(g.suffixes))
	return stages
}

// Generate expands the hints and returns the ordered, deduplicated result.
// It returns ErrNoHints when no hint is left after normalization.
//
// Seeds are produced lazily, so a result cap also stops the combination of
// hints as soon as enough entries exist.
func (g *Generator) Generate(hints []string) ([]string, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	base := NormalizeHints(hints)
	if len(base) == 0 {
		return nil, ErrNoHints
	}

	stages := g.Stages()
	out := newOrderedSet(g.maxResults)
	seen := make(map[string]struct{}, len(base))
	processed := 0

	for seed := range g.seeds(base) {
		if out.full() {
			g.logger.Debug("result limit reached, stopping",
				"max_results", g.maxResults,
				"seeds_processed", processed,
			)
			break
		}
		if _, ok := seen[seed]; ok {
			continue
		}
		seen[seed] = struct{}{}
		processed++

		variants := []string{seed}
		for _, stage := range stages {
			variants = stage.Apply(variants)
		}
		out.addAll(variants)
	}

	g.logger.Debug("wordlist generated",
		"stages", stageNames(stages),
		"hint_count", len(base),
		"seed_count", processed,
		"entry_count", out.len(),
	)

	return out.list(), nil
}

// seeds yields the hints, then their combinations, then the common
// passwords. Duplicates are left to the caller.
func (g *Generator) seeds(hints []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, h := range hints {
			if !yield(h) {
				return
			}
		}
		if g.maxCombine > 1 {
			for c := range combine(hints, g.maxCombine) {
				if !yield(c) {
					return
				}
			}
		}
		if g.includeCommon {
			for _, c := range strength.CommonPasswords() {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// stageNames returns the names of stages in order.
func stageNames(stages []Stage) []string {
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.Name()
	}
	return names
}

// Describe returns a short summary of the options, for history records.
func (g *Generator) Describe() string {
	parts := []string{fmt.Sprintf("leet=%t", g.leet)}
	if g.years != nil {
		parts = append(parts, "years="+g.years.String())
	}
	if g.shortYears {
		parts = append(parts, "short-years")
	}
	parts = append(parts, fmt.Sprintf("suffixes=%d", len(g.suffixes)))
	if g.maxCombine > 1 {
		parts = append(parts, fmt.Sprintf("combine=%d", g.maxCombine))
	}
	if g.includeCommon {
		parts = append(parts, "common")
	}
	if g.maxResults > 0 {
		parts = append(parts, fmt.Sprintf("max=%d", g.maxResults))
	}
	return strings.Join(parts, " ")
}

// NormalizeHints trims, NFC-normalizes and deduplicates hints, dropping
// blank ones. Order is preserved.
func NormalizeHints(hints []string) []string {
	out := make([]string, 0, len(hints))
	for _, h := range hints {
		h = norm.NFC.String(strings.TrimSpace(h))
		if h != "" {
			out = append(out, h)
		}
	}
	return dedupe(out)
}

// combine yields the concatenations of every ordered selection of 2..n
// distinct hints, shortest first, in index order. Nothing is built ahead
// of the consumer.
func combine(hints []string, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		limit := min(n, len(hints))
		used := make([]bool, len(hints))

		var build func(prefix string, depth, size int) bool
		build = func(prefix string, depth, size int) bool {
			if depth == size {
				return yield(prefix)
			}
			for i, h := range hints {
				if used[i] {
					continue
				}
				used[i] = true
				ok := build(prefix+h, depth+1, size)
				used[i] = false
				if !ok {
					return false
				}
			}
			return true
		}

		for size := 2; size <= limit; size++ {
			if !build("", 0, size) {
				return
			}
		}
	}
}
