package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/nao1215/pwtool/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// It uses the nao1215/markdown builder for tables and alerts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs one result in Markdown format.
func (w *MarkdownWriter) Write(result *model.AnalysisResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Analysis")
	md.PlainText("")

	rows := [][]string{
		{"Length", strconv.Itoa(result.Length)},
		{"Charset size", strconv.Itoa(result.CharsetSize)},
		{"Entropy", entropyText(result.EntropyBits)},
		{"Classes", classesText(result.Classes)},
		{"Entropy rating", result.Rating.String()},
		{"External score", externalScoreText(result)},
	}
	for _, row := range externalDetailRows(result) {
		rows = append(rows, []string{row[0], row[1]})
	}
	if result.Policy != nil {
		rows = append(rows, []string{"Policy", policyText(result.Policy)})
	}
	if result.Common {
		rows = append(rows, []string{"Common password", "yes"})
	}
	rows = append(rows, []string{"Verdict", "**" + result.Verdict().String() + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeAlert(md, result)

	if len(result.Warnings) > 0 {
		md.H2("Warnings")
		md.PlainText("")
		md.BulletList(result.Warnings...)
		md.PlainText("")
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteBatch outputs batch results as a single table.
func (w *MarkdownWriter) WriteBatch(items []model.BatchItem) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Batch Password Analysis")
	md.PlainText("")

	rows := make([][]string, len(items))
	weak := 0
	for i, item := range items {
		if item.Result == nil {
			rows[i] = []string{item.Label, "-", "-", "-", "error: " + item.Error}
			continue
		}
		r := item.Result
		if r.Verdict() <= model.StrengthWeak {
			weak++
		}
		rows[i] = []string{
			item.Label,
			strconv.Itoa(r.Length),
			entropyText(r.EntropyBits),
			externalScoreText(r),
			r.Verdict().String(),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Entry", "Length", "Entropy", "External", "Verdict"},
		Rows:   rows,
	})
	md.PlainText("")

	if weak > 0 {
		md.Warningf("%d of %d password(s) are weak or very weak.", weak, len(items))
	} else {
		md.Tip("No weak passwords found.")
	}
	md.PlainText("")

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeAlert writes a GFM alert matching the verdict.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *model.AnalysisResult) {
	verdict := result.Verdict()
	info := model.GetStrengthInfo(verdict)
	text := fmt.Sprintf("%s %s", info.Summary, info.Advice)

	switch verdict {
	case model.StrengthVeryWeak:
		md.Cautionf("%s", text)
	case model.StrengthWeak:
		md.Warningf("%s", text)
	case model.StrengthFair:
		md.Importantf("%s", text)
	default:
		md.Tip(text)
	}
	md.PlainText("")
}

// writeFooter writes the caveat and the generator line.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.Note(model.EntropyCaveat)
	md.PlainText("")
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [pwtool](https://github.com/nao1215/pwtool)*")
}
