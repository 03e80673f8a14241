package config

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"

	"github.com/nao1215/pwtool/internal/model"
	"github.com/nao1215/pwtool/internal/wordlist"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "pwtool"

	// DefaultMinEntropy of 0 disables the policy check.
	DefaultMinEntropy = 0.0

	// DefaultMaxCombine of 1 means hints are never concatenated.
	DefaultMaxCombine = 1

	// MaxCombineDepth is the largest accepted combine depth. Permutations grow
	// factorially with the depth.
	MaxCombineDepth = 4

	// DefaultMaxResults of 0 means the wordlist is not capped.
	DefaultMaxResults = 0
)

// DefaultConcurrency is the number of passwords analyzed in parallel
// during batch analysis.
var DefaultConcurrency = runtime.NumCPU()

// Config holds all configuration options for pwtool.
// It is populated once from the config file and CLI flags, validated, and
// then passed to the components that need it.
type Config struct {
	// === Analysis ===

	// AnalyzeRequested is true when the user asked for password analysis.
	AnalyzeRequested bool

	// Password is the single password to analyze.
	Password string

	// PasswordListFile is a file with one password per line for batch analysis.
	PasswordListFile string

	// ReadStdin reads the password from standard input.
	ReadStdin bool

	// UseExternalScorer enables the zxcvbn scorer.
	UseExternalScorer bool

	// UserInputs are extra words the external scorer treats as guessable.
	UserInputs []string

	// MinEntropy enables the policy check when positive.
	MinEntropy float64

	// Concurrency bounds parallel batch analysis.
	Concurrency int

	// === Generation ===

	// GenerateRequested is true when hints were supplied, even if empty.
	GenerateRequested bool

	// Hints are the wordlist seeds.
	Hints []string

	// Years enables year augmentation when non-nil.
	Years *model.YearRange

	// Suffixes replace the default suffix list.
	Suffixes []string

	// Leet enables the leetspeak stage.
	Leet bool

	// ShortYears adds two-digit years.
	ShortYears bool

	// IncludeCommon adds the built-in common passwords as hints.
	IncludeCommon bool

	// MaxCombine is the maximum number of hints concatenated together.
	MaxCombine int

	// MaxResults caps the wordlist. 0 means unlimited.
	MaxResults int

	// OutputPath is the wordlist file.
	OutputPath string

	// === Reports ===

	// JSONReport enables JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile writes the analysis report to a file instead of stdout.
	ReportFile string

	// === Misc ===

	// Verbose enables debug logging.
	Verbose bool

	// LogJSON writes log records as JSON lines instead of text.
	LogJSON bool

	// SaveToDB records run metadata in the history database.
	SaveToDB bool

	// DBDir is the directory of the history database.
	DBDir string

	// ConfigFilePath is the explicit config file path, if any.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		UseExternalScorer: true,
		MinEntropy:        DefaultMinEntropy,
		Concurrency:       DefaultConcurrency,
		Suffixes:          wordlist.DefaultSuffixes(),
		Leet:              true,
		MaxCombine:        DefaultMaxCombine,
		MaxResults:        DefaultMaxResults,
		DBDir:             XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for pwtool.
// On Linux: ~/.local/share/pwtool
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for pwtool.
// On Linux: ~/.config/pwtool
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found, so it runs once after flag parsing and
// before any component starts. No file is touched before it passes.
func (c *Config) Validate() error {
	if !c.AnalyzeRequested && !c.GenerateRequested {
		return ErrNoAction
	}

	if c.AnalyzeRequested {
		sources := 0
		for _, set := range []bool{c.Password != "", c.PasswordListFile != "", c.ReadStdin} {
			if set {
				sources++
			}
		}
		if sources == 0 {
			return ErrNoPassword
		}
		if sources > 1 {
			return ErrConflictingPasswordSources
		}
	}

	if c.GenerateRequested {
		if !hasNonBlank(c.Hints) {
			return ErrNoHints
		}
		if c.OutputPath == "" {
			return ErrNoOutput
		}
	}

	if c.Years != nil {
		if !c.Years.Valid() || c.Years.Start < 0 {
			return ErrInvalidYearRange
		}
		if c.Years.Len() > wordlist.MaxYears {
			return ErrYearRangeTooLarge
		}
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MinEntropy < 0 {
		return ErrInvalidMinEntropy
	}

	if c.MaxResults < 0 {
		return ErrInvalidMaxResults
	}

	if c.MaxCombine < 1 || c.MaxCombine > MaxCombineDepth {
		return ErrInvalidMaxCombine
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	return nil
}

// hasNonBlank reports whether any string has non-space content.
func hasNonBlank(ss []string) bool {
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}
