// Package report renders password analysis results.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for sharing
//
// No writer ever receives the password itself; results carry only derived
// metrics.
package report
