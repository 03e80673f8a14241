package model

import (
	"strings"
	"time"
)

// CharClass is one of the character classes detected in a password.
type CharClass uint8

const (
	// ClassLower is any lowercase letter.
	ClassLower CharClass = 1 << iota
	// ClassUpper is any uppercase letter.
	ClassUpper
	// ClassDigit is any decimal digit.
	ClassDigit
	// ClassSymbol is anything outside the other three classes.
	ClassSymbol
)

// AllClasses lists every class in display order.
var AllClasses = []CharClass{ClassLower, ClassUpper, ClassDigit, ClassSymbol}

// String returns the class name.
func (c CharClass) String() string {
	switch c {
	case ClassLower:
		return "lower"
	case ClassUpper:
		return "upper"
	case ClassDigit:
		return "digit"
	case ClassSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// CharClassSet is a bit set of CharClass values.
type CharClassSet uint8

// Add returns a copy of the set with c included.
func (s CharClassSet) Add(c CharClass) CharClassSet {
	return s | CharClassSet(c)
}

// Has reports whether c is in the set.
func (s CharClassSet) Has(c CharClass) bool {
	return s&CharClassSet(c) != 0
}

// Len returns the number of classes in the set.
func (s CharClassSet) Len() int {
	n := 0
	for _, c := range AllClasses {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// List returns the classes in the set in display order.
func (s CharClassSet) List() []CharClass {
	classes := make([]CharClass, 0, len(AllClasses))
	for _, c := range AllClasses {
		if s.Has(c) {
			classes = append(classes, c)
		}
	}
	return classes
}

// Names returns the class names in display order.
func (s CharClassSet) Names() []string {
	list := s.List()
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.String()
	}
	return names
}

// String returns the class names joined by commas, or "none".
func (s CharClassSet) String() string {
	if s == 0 {
		return "none"
	}
	return strings.Join(s.Names(), ",")
}

// ParseCharClassSet parses the output of CharClassSet.String.
// Unknown names are ignored.
func ParseCharClassSet(s string) CharClassSet {
	var set CharClassSet
	for _, name := range strings.Split(s, ",") {
		for _, c := range AllClasses {
			if strings.TrimSpace(name) == c.String() {
				set = set.Add(c)
			}
		}
	}
	return set
}

// PolicyResult is the outcome of checking a password against a minimum
// entropy policy.
type PolicyResult struct {
	// MinEntropy is the required entropy in bits.
	MinEntropy float64 `json:"min_entropy"`

	// Passed is true when the password meets the policy.
	Passed bool `json:"passed"`

	// Message is the validator's advice when the policy is not met.
	Message string `json:"message,omitempty"`
}

// ExternalEstimate is the detail reported by a pattern-aware scorer.
type ExternalEstimate struct {
	// Score is the 0-4 verdict, the same value as AnalysisResult.ExternalScore.
	Score int `json:"score"`

	// EntropyBits is the scorer's pattern-aware entropy, usually far below
	// the class-based upper bound.
	EntropyBits float64 `json:"entropy_bits"`

	// CrackTimeSeconds is the estimated offline cracking time.
	CrackTimeSeconds float64 `json:"crack_time_seconds"`

	// CrackTimeDisplay is CrackTimeSeconds in words, such as "3 hours".
	CrackTimeDisplay string `json:"crack_time_display"`
}

// AnalysisResult is the outcome of analyzing one password.
// It is built once by the analyzer and never modified afterwards.
type AnalysisResult struct {
	// Length is the number of characters (Unicode code points).
	Length int `json:"length"`

	// CharsetSize is the sum of the alphabet sizes of the detected classes.
	// It is never below 1.
	CharsetSize int `json:"charset_size"`

	// EntropyBits is Length * log2(CharsetSize). This is a theoretical
	// upper bound, not a measure of guessability.
	EntropyBits float64 `json:"entropy_bits"`

	// Classes is the set of character classes present.
	Classes CharClassSet `json:"-"`

	// ClassNames mirrors Classes for serialization.
	ClassNames []string `json:"classes"`

	// ExternalScore is the external scorer's verdict (0-4).
	// It is nil when no scorer is configured or the scorer failed.
	ExternalScore *int `json:"external_score,omitempty"`

	// External holds the scorer's own figures when it reports them.
	External *ExternalEstimate `json:"external,omitempty"`

	// Rating is a coarse level derived from EntropyBits alone.
	Rating Strength `json:"rating"`

	// RatingText is the human-readable Rating.
	RatingText string `json:"rating_text"`

	// Common is true when the password is on the built-in common list.
	Common bool `json:"common"`

	// Policy is set only when a minimum entropy policy was configured.
	Policy *PolicyResult `json:"policy,omitempty"`

	// Warnings lists non-fatal problems, such as an unavailable scorer.
	Warnings []string `json:"warnings,omitempty"`

	// AnalyzedAt is when the analysis ran.
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// HasExternalScore reports whether an external score was merged.
func (r *AnalysisResult) HasExternalScore() bool {
	return r.ExternalScore != nil
}

// Verdict returns the most trustworthy strength level available.
// The external score wins when present because it accounts for patterns that
// the entropy estimate ignores. A common password is always very weak.
func (r *AnalysisResult) Verdict() Strength {
	if r.Common {
		return StrengthVeryWeak
	}
	if r.ExternalScore != nil {
		return Strength(*r.ExternalScore)
	}
	return r.Rating
}

// EntropyCaveat explains the limits of the entropy estimate.
// Reports print it next to every entropy value.
const EntropyCaveat = "Entropy is a theoretical upper bound from length and character classes; " +
	"it overestimates patterned passwords such as \"Password1!\"."

// BatchItem is one entry of a batch analysis.
// Label identifies the entry without revealing the password.
type BatchItem struct {
	// Label is a position-based identifier, such as "line 3".
	Label string `json:"label"`

	// Result is nil when Error is set.
	Result *AnalysisResult `json:"result,omitempty"`

	// Error is the reason the entry could not be analyzed.
	Error string `json:"error,omitempty"`
}
