package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/pwtool/internal/model"
)

// SimpleWriter outputs plain-text reports without ANSI colors.
type SimpleWriter struct {
	baseWriter

	// verbose adds the strength level summary and advice.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs one result in human-readable format.
func (w *SimpleWriter) Write(result *model.AnalysisResult) (int, error) {
	var sb strings.Builder
	w.writeResult(&sb, result)
	w.writeCaveat(&sb)
	return w.output.Write([]byte(sb.String()))
}

// WriteBatch outputs a compact table, one line per entry.
func (w *SimpleWriter) WriteBatch(items []model.BatchItem) (int, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-12s %6s %8s %12s  %-11s %-8s\n",
		"ENTRY", "LENGTH", "CHARSET", "ENTROPY", "VERDICT", "EXTERNAL"))
	sb.WriteString(strings.Repeat("-", 64))
	sb.WriteString("\n")

	failed := 0
	for _, item := range items {
		if item.Result == nil {
			failed++
			sb.WriteString(fmt.Sprintf("%-12s ERROR: %s\n", item.Label, item.Error))
			continue
		}
		r := item.Result
		external := "-"
		if r.ExternalScore != nil {
			external = fmt.Sprintf("%d/4", *r.ExternalScore)
		}
		sb.WriteString(fmt.Sprintf("%-12s %6d %8d %12s  %-11s %-8s\n",
			item.Label, r.Length, r.CharsetSize, entropyText(r.EntropyBits), r.Verdict().String(), external))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%d analyzed, %d failed\n", len(items)-failed, failed))
	w.writeCaveat(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeResult writes the per-password section.
func (w *SimpleWriter) writeResult(sb *strings.Builder, r *model.AnalysisResult) {
	sb.WriteString("Password analysis\n")
	sb.WriteString(strings.Repeat("-", 40))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("  Length:          %d\n", r.Length))
	sb.WriteString(fmt.Sprintf("  Charset size:    %d\n", r.CharsetSize))
	sb.WriteString(fmt.Sprintf("  Entropy:         %s\n", entropyText(r.EntropyBits)))
	sb.WriteString(fmt.Sprintf("  Classes:         %s\n", classesText(r.Classes)))
	sb.WriteString(fmt.Sprintf("  Entropy rating:  %s\n", r.Rating.String()))
	sb.WriteString(fmt.Sprintf("  External score:  %s\n", externalScoreText(r)))
	for _, row := range externalDetailRows(r) {
		sb.WriteString(fmt.Sprintf("  %-17s%s\n", row[0]+":", row[1]))
	}
	if r.Policy != nil {
		sb.WriteString(fmt.Sprintf("  Policy:          %s\n", policyText(r.Policy)))
	}
	if r.Common {
		sb.WriteString("  Common password: yes\n")
	}
	sb.WriteString(fmt.Sprintf("  Verdict:         %s\n", r.Verdict().String()))

	if w.verbose {
		info := model.GetStrengthInfo(r.Verdict())
		sb.WriteString(fmt.Sprintf("                   %s\n", info.Summary))
		sb.WriteString(fmt.Sprintf("                   %s\n", info.Advice))
	}

	for _, warning := range r.Warnings {
		sb.WriteString(fmt.Sprintf("  [!] %s\n", warning))
	}
}

// writeCaveat writes the entropy caveat footer.
func (w *SimpleWriter) writeCaveat(sb *strings.Builder) {
	sb.WriteString("\nNote: ")
	sb.WriteString(model.EntropyCaveat)
	sb.WriteString("\n")
}
