package config

import "github.com/nao1215/pwtool/internal/model"

// File represents the structure of the .pwtool configuration file.
// Every field is optional; unset fields keep the built-in defaults.
// Command-line flags override values from the file.
//
// Example:
//
//	analyze:
//	  external: true
//	  min_entropy: 60
//	  user_inputs: ["alice", "acme"]
//	generate:
//	  suffixes: ["!", "123", "2024"]
//	  years:
//	    start: 2015
//	    end: 2025
//	  leet: true
type File struct {
	// Analyze holds defaults for password analysis.
	Analyze AnalyzeSection `yaml:"analyze"`

	// Generate holds defaults for wordlist generation.
	Generate GenerateSection `yaml:"generate"`
}

// AnalyzeSection holds analysis defaults.
type AnalyzeSection struct {
	// External enables or disables the zxcvbn scorer.
	External *bool `yaml:"external,omitempty"`

	// MinEntropy enables the policy check when positive.
	MinEntropy *float64 `yaml:"min_entropy,omitempty"`

	// UserInputs are extra words the scorer treats as guessable.
	UserInputs []string `yaml:"user_inputs,omitempty"`

	// Concurrency bounds batch analysis.
	Concurrency *int `yaml:"concurrency,omitempty"`
}

// GenerateSection holds generation defaults.
type GenerateSection struct {
	// Suffixes replaces the built-in suffix list. An empty list disables
	// suffixes; an absent key keeps the defaults.
	Suffixes *[]string `yaml:"suffixes,omitempty"`

	// Years sets a default year range.
	Years *model.YearRange `yaml:"years,omitempty"`

	// Leet enables or disables leetspeak.
	Leet *bool `yaml:"leet,omitempty"`

	// ShortYears adds two-digit years.
	ShortYears *bool `yaml:"short_years,omitempty"`

	// Common adds the built-in common passwords as hints.
	Common *bool `yaml:"common,omitempty"`

	// Combine is the maximum number of hints concatenated together.
	Combine *int `yaml:"combine,omitempty"`

	// MaxResults caps the wordlist.
	MaxResults *int `yaml:"max_results,omitempty"`
}

// Apply copies every value set in the file into the config.
// A nil File is a no-op.
func (f *File) Apply(c *Config) {
	if f == nil {
		return
	}

	a := f.Analyze
	if a.External != nil {
		c.UseExternalScorer = *a.External
	}
	if a.MinEntropy != nil {
		c.MinEntropy = *a.MinEntropy
	}
	if len(a.UserInputs) > 0 {
		c.UserInputs = append([]string(nil), a.UserInputs...)
	}
	if a.Concurrency != nil {
		c.Concurrency = *a.Concurrency
	}

	g := f.Generate
	if g.Suffixes != nil {
		c.Suffixes = append([]string{}, (*g.Suffixes)...)
	}
	if g.Years != nil {
		yr := *g.Years
		c.Years = &yr
	}
	if g.Leet != nil {
		c.Leet = *g.Leet
	}
	if g.ShortYears != nil {
		c.ShortYears = *g.ShortYears
	}
	if g.Common != nil {
		c.IncludeCommon = *g.Common
	}
	if g.Combine != nil {
		c.MaxCombine = *g.Combine
	}
	if g.MaxResults != nil {
		c.MaxResults = *g.MaxResults
	}
}
