package config

import (
	"errors"
	"fmt"

	"github.com/nao1215/pwtool/internal/model"
	"github.com/nao1215/pwtool/internal/wordlist"
)

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration. All of them wrap
// model.ErrInvalidInput so callers can treat them uniformly.
var (
	// ErrNoAction is returned when neither analysis nor generation was requested.
	ErrNoAction = fmt.Errorf("%w: nothing to do: provide a password to analyze or hints to generate from", model.ErrInvalidInput)

	// ErrNoPassword is returned when analysis was requested without a password.
	ErrNoPassword = fmt.Errorf("%w: password must not be empty", model.ErrInvalidInput)

	// ErrConflictingPasswordSources is returned when more than one password source is given.
	ErrConflictingPasswordSources = fmt.Errorf("%w: conflicting password sources: use only one of an argument, --stdin or --list", model.ErrInvalidInput)

	// ErrNoHints is returned when generation was requested but every hint is blank.
	ErrNoHints = fmt.Errorf("%w: at least one non-empty hint is required", model.ErrInvalidInput)

	// ErrNoOutput is returned when hints are given without an output path.
	ErrNoOutput = fmt.Errorf("%w: an output path is required when hints are given", model.ErrInvalidInput)

	// ErrInvalidYearRange is returned when the start year is after the end
	// year or a bound is negative.
	ErrInvalidYearRange = fmt.Errorf("%w: invalid year range: start must not be after end", model.ErrInvalidInput)

	// ErrYearRangeTooLarge is returned when the year range covers more than
	// wordlist.MaxYears years.
	ErrYearRangeTooLarge = fmt.Errorf("%w: invalid year range: at most %d years are allowed", model.ErrInvalidInput, wordlist.MaxYears)

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = fmt.Errorf("%w: conflicting report formats: --json and --markdown cannot be used together", model.ErrInvalidInput)

	// ErrInvalidMinEntropy is returned when the minimum entropy is negative.
	ErrInvalidMinEntropy = fmt.Errorf("%w: invalid min entropy: must be non-negative", model.ErrInvalidInput)

	// ErrInvalidMaxResults is returned when the result cap is negative.
	ErrInvalidMaxResults = fmt.Errorf("%w: invalid max results: must be non-negative", model.ErrInvalidInput)

	// ErrInvalidMaxCombine is returned when the combination depth is outside
	// 1..MaxCombineDepth.
	ErrInvalidMaxCombine = fmt.Errorf("%w: invalid combine depth: must be between 1 and %d", model.ErrInvalidInput, MaxCombineDepth)

	// ErrInvalidConcurrency is returned when the batch concurrency is not positive.
	ErrInvalidConcurrency = fmt.Errorf("%w: invalid concurrency: must be positive", model.ErrInvalidInput)
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")
