package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/pwtool/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport wraps a single result with its caveat.
type JSONReport struct {
	Result *model.AnalysisResult `json:"result"`
	Note   string                `json:"note"`
}

// JSONBatchReport wraps batch results with summary counts.
type JSONBatchReport struct {
	Items    []model.BatchItem `json:"items"`
	Analyzed int               `json:"analyzed"`
	Failed   int               `json:"failed"`
	Note     string            `json:"note"`
}

// Write outputs one result in JSON format.
func (w *JSONWriter) Write(result *model.AnalysisResult) (int, error) {
	return w.writeJSON(&JSONReport{
		Result: result,
		Note:   model.EntropyCaveat,
	})
}

// WriteBatch outputs batch results in JSON format.
func (w *JSONWriter) WriteBatch(items []model.BatchItem) (int, error) {
	report := &JSONBatchReport{
		Items: items,
		Note:  model.EntropyCaveat,
	}
	if report.Items == nil {
		report.Items = []model.BatchItem{}
	}
	for _, item := range items {
		if item.Result == nil {
			report.Failed++
		} else {
			report.Analyzed++
		}
	}
	return w.writeJSON(report)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, "", w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
