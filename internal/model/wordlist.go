package model

import (
	"fmt"
	"time"
)

// YearRange is an inclusive range of years used for augmentation.
type YearRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Valid reports whether Start is not after End.
func (y YearRange) Valid() bool {
	return y.Start <= y.End
}

// Len returns the number of years in the range, or 0 when invalid.
func (y YearRange) Len() int {
	if !y.Valid() {
		return 0
	}
	return y.End - y.Start + 1
}

// String returns "start-end".
func (y YearRange) String() string {
	return fmt.Sprintf("%d-%d", y.Start, y.End)
}

// GenerationSummary describes a completed wordlist generation run.
// It records counts and options only, never the hints or candidates.
type GenerationSummary struct {
	// HintCount is the number of usable hints after normalization.
	HintCount int `json:"hint_count"`

	// EntryCount is the number of lines written.
	EntryCount int `json:"entry_count"`

	// OutputPath is where the wordlist was written.
	OutputPath string `json:"output_path"`

	// Options is a short human-readable description of the options used.
	Options string `json:"options"`

	// GeneratedAt is when the run finished.
	GeneratedAt time.Time `json:"generated_at"`
}
