package strength

import (
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/nao1215/pwtool/internal/model"
)

// Analyzer computes AnalysisResults.
// An Analyzer holds no per-call state and is safe for concurrent use as long
// as its Scorer is.
type Analyzer struct {
	// scorer is the optional external scorer. nil disables it.
	scorer Scorer

	// minEntropy enables the policy check when positive.
	minEntropy float64

	// logger must never receive the password itself.
	logger *slog.Logger

	// now is replaceable for tests.
	now func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithScorer sets the external scorer. Passing nil disables external scoring.
func WithScorer(s Scorer) Option {
	return func(a *Analyzer) {
		a.scorer = s
	}
}

// WithMinEntropy enables the minimum entropy policy check.
// Values <= 0 disable it.
func WithMinEntropy(bits float64) Option {
	return func(a *Analyzer) {
		a.minEntropy = bits
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// withClock overrides the time source.
func withClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// NewAnalyzer creates an Analyzer. Without options it reports entropy only.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		now: time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// Analyze returns the analysis of one password.
//
// An empty password returns ErrEmptyPassword. External scorer failures never
// fail the analysis: ExternalScore stays nil and a warning is recorded.
func (a *Analyzer) Analyze(password string) (*model.AnalysisResult, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	length := utf8.RuneCountInString(password)
	classes := ClassifyRunes(password)
	charset := CharsetSize(classes)
	bits := Entropy(length, charset)
	rating := model.RatingFromEntropy(bits)

	result := &model.AnalysisResult{
		Length:      length,
		CharsetSize: charset,
		EntropyBits: bits,
		Classes:     classes,
		ClassNames:  classes.Names(),
		Rating:      rating,
		RatingText:  rating.String(),
		Common:      IsCommonPassword(password),
		AnalyzedAt:  a.now(),
	}

	if result.Common {
		result.Warnings = append(result.Warnings, "password appears in the common password list")
	}

	if a.scorer != nil {
		est, err := a.safeScore(password)
		if err != nil {
			a.logger.Debug("external scorer unavailable, using entropy only",
				"error", err,
			)
			result.Warnings = append(result.Warnings, "external scorer unavailable; entropy-only result")
		} else {
			score := est.Score
			result.ExternalScore = &score
			if est.CrackTimeDisplay != "" {
				result.External = est
			}
		}
	}

	if a.minEntropy > 0 {
		result.Policy = CheckPolicy(password, a.minEntropy)
	}

	a.logger.Debug("password analyzed",
		"length", result.Length,
		"charset_size", result.CharsetSize,
		"entropy_bits", result.EntropyBits,
		"classes", classes.String(),
		"external", result.HasExternalScore(),
	)

	return result, nil
}

// safeScore calls the scorer, converting panics and out-of-range scores
// into errors wrapping model.ErrExternalUnavailable. Plain Scorers yield an
// estimate carrying only the score.
func (a *Analyzer) safeScore(password string) (est *model.ExternalEstimate, err error) {
	defer func() {
		if r := recover(); r != nil {
			est = nil
			err = fmt.Errorf("%w: scorer panicked: %v", model.ErrExternalUnavailable, r)
		}
	}()

	if e, ok := a.scorer.(Estimator); ok {
		est, err = e.Estimate(password)
	} else {
		var score int
		score, err = a.scorer.Score(password)
		est = &model.ExternalEstimate{Score: score}
	}
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, fmt.Errorf("%w: scorer returned no estimate", model.ErrExternalUnavailable)
	}
	if !model.Strength(est.Score).Valid() {
		return nil, fmt.Errorf("%w: got %d", ErrScoreOutOfRange, est.Score)
	}
	return est, nil
}
