package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwtool/internal/database"
)

// defaultHistoryLimit is the number of rows shown per table.
const defaultHistoryLimit = 20

// historyTimeLayout formats timestamps in the history listing.
const historyTimeLayout = "2006-01-02 15:04:05"

// NewHistoryCmd creates the history command.
// This command lists runs recorded with --save.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved analysis and generation runs",
		Long: `History lists the runs recorded with --save.

Only derived metrics are stored: length, charset size, entropy, classes and
scores for analyses, and hint count, entry count and output path for
wordlists. Passwords, hints and candidates are never written.

Examples:
  # Show the latest runs
  pwtool history

  # Show everything as JSON
  pwtool history --limit 0 --json`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", defaultHistoryLimit,
		"Maximum number of rows per table (0 shows all)")
	cmd.Flags().BoolP("json", "j", false, "Output JSON")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: $XDG_DATA_HOME/pwtool)")

	return cmd
}

// historyOutput is the JSON form of the history listing.
type historyOutput struct {
	Analyses    []database.AnalysisRecord   `json:"analyses"`
	Generations []database.GenerationRecord `json:"generations"`
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	cfg, err := newBaseConfig(cmd)
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = cfg.DBDir
	}

	out := cmd.OutOrStdout()

	if _, err := os.Stat(filepath.Join(dbDir, database.FileName)); errors.Is(err, os.ErrNotExist) {
		if asJSON {
			return writeHistoryJSON(out, &historyOutput{})
		}
		fmt.Fprintln(out, "No history recorded yet. Use --save with analyze or generate to record runs.")
		return nil
	}

	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false
	db, err := database.Open(dbDir, opts)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	analyses, err := db.ListAnalyses(ctx, limit)
	if err != nil {
		return err
	}
	generations, err := db.ListGenerations(ctx, limit)
	if err != nil {
		return err
	}

	result := &historyOutput{Analyses: analyses, Generations: generations}
	if asJSON {
		return writeHistoryJSON(out, result)
	}
	writeHistoryText(out, result)
	return nil
}

// writeHistoryJSON writes the listing as indented JSON.
func writeHistoryJSON(w io.Writer, h *historyOutput) error {
	if h.Analyses == nil {
		h.Analyses = []database.AnalysisRecord{}
	}
	if h.Generations == nil {
		h.Generations = []database.GenerationRecord{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(h)
}

// writeHistoryText writes the listing as two fixed-width tables.
func writeHistoryText(w io.Writer, h *historyOutput) {
	fmt.Fprintf(w, "Analyses (%d):\n\n", len(h.Analyses))
	if len(h.Analyses) == 0 {
		fmt.Fprintln(w, "  none")
	} else {
		fmt.Fprintf(w, "  %-6s  %-19s  %6s  %7s  %12s  %-8s  %-11s\n",
			"ID", "Date", "Length", "Charset", "Entropy", "External", "Rating")
		for _, a := range h.Analyses {
			external := "-"
			if a.ExternalScore != nil {
				external = fmt.Sprintf("%d/4", *a.ExternalScore)
			}
			fmt.Fprintf(w, "  %-6d  %-19s  %6d  %7d  %7.2f bits  %-8s  %-11s\n",
				a.ID, a.AnalyzedAt.Local().Format(historyTimeLayout),
				a.Length, a.CharsetSize, a.EntropyBits, external, a.Rating)
		}
	}

	fmt.Fprintf(w, "\nWordlists (%d):\n\n", len(h.Generations))
	if len(h.Generations) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	fmt.Fprintf(w, "  %-6s  %-19s  %5s  %8s  %s\n", "ID", "Date", "Hints", "Entries", "Output")
	for _, g := range h.Generations {
		fmt.Fprintf(w, "  %-6d  %-19s  %5d  %8d  %s\n",
			g.ID, g.GeneratedAt.Local().Format(historyTimeLayout),
			g.HintCount, g.EntryCount, g.OutputPath)
		if g.Options != "" {
			fmt.Fprintf(w, "          %s\n", g.Options)
		}
	}
}
