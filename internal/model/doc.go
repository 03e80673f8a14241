// Package model defines the core data structures shared by pwtool.
//
// This package contains the following main types:
//   - AnalysisResult: The outcome of analyzing a single password
//   - CharClassSet: The character classes detected in a password
//   - Strength: A coarse 0-4 strength level with advice
//   - YearRange: The inclusive year bound used by wordlist generation
//   - GenerationSummary: Metadata about one wordlist generation run
//
// None of these types ever carry the analyzed password itself. Results are
// safe to render, serialize, and store.
package model
