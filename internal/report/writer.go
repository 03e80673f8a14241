package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/pwtool/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs a single analysis result.
	// Returns the number of bytes written and any error encountered.
	Write(result *model.AnalysisResult) (int, error)

	// WriteBatch outputs the results of a batch analysis, in input order.
	WriteBatch(items []model.BatchItem) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// externalScoreText renders the external score, or why there is none.
func externalScoreText(result *model.AnalysisResult) string {
	if result.ExternalScore == nil {
		return "unavailable"
	}
	score := *result.ExternalScore
	return fmt.Sprintf("%d/4 (%s)", score, model.Strength(score).String())
}

// policyText renders the policy outcome.
func policyText(p *model.PolicyResult) string {
	if p == nil {
		return "not configured"
	}
	if p.Passed {
		return fmt.Sprintf("PASS (min %.0f bits)", p.MinEntropy)
	}
	return fmt.Sprintf("FAIL (min %.0f bits): %s", p.MinEntropy, p.Message)
}

// entropyText renders entropy with two decimals.
func entropyText(bits float64) string {
	return fmt.Sprintf("%.2f bits", bits)
}

// classesText renders the detected classes for display.
func classesText(classes model.CharClassSet) string {
	if classes == 0 {
		return "none"
	}
	return strings.Join(classes.Names(), ", ")
}

// externalDetailRows returns label/value pairs for the scorer's own figures,
// or nothing when the scorer reported none.
func externalDetailRows(result *model.AnalysisResult) [][2]string {
	if result.External == nil {
		return nil
	}
	return [][2]string{
		{"Pattern entropy", entropyText(result.External.EntropyBits)},
		{"Crack time", result.External.CrackTimeDisplay},
	}
}
