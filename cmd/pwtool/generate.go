package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwtool/internal/config"
	"github.com/nao1215/pwtool/internal/model"
	"github.com/nao1215/pwtool/internal/wordlist"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a candidate wordlist from personal hints",
		Long: `Generate expands hints such as names, pets and places into a deduplicated
candidate wordlist for authorized password audits.

Each hint goes through a fixed pipeline:
  1. case variants (as-is, lower, UPPER, Capitalized)
  2. leet substitution (a->4 e->3 i->1 o->0 s->5 t->7)
  3. years appended and prepended (with --years)
  4. suffixes appended (default: ! 123 @123 1 !! #)

Identical inputs always produce byte-identical files.

Examples:
  # Basic wordlist
  pwtool generate --hints alice,rex --out words.txt

  # With a year range and custom suffixes
  pwtool generate --hints rex --years 1990 2000 --suffix '!' --suffix 99 --out words.txt

  # Combine pairs of hints and cap the list size
  pwtool generate --hints alice,rex,paris --combine 2 --max-results 10000 --out words.txt`,
		Args: yearsEndArg,
		RunE: runGenerateCmd,
	}

	// Input flags
	cmd.Flags().StringSlice("hints", nil, "Comma-separated hints")
	cmd.Flags().String("years", "", "Year range START,END, \"START END\" or a single year")
	cmd.Flags().StringP("out", "o", "", "Wordlist output path")

	// Variant flags
	cmd.Flags().StringArray("suffix", nil,
		"Suffix to append (repeatable; replaces the default suffixes)")
	cmd.Flags().Bool("no-suffix", false, "Do not append any suffix")
	cmd.Flags().Bool("no-leet", false, "Skip leet substitution")
	cmd.Flags().Bool("short-years", false, "Also emit two-digit years")
	cmd.Flags().Bool("common", false, "Add the built-in common password list as hints")
	cmd.Flags().Int("combine", config.DefaultMaxCombine,
		fmt.Sprintf("Concatenate up to N distinct hints (1 disables combining, at most %d)", config.MaxCombineDepth))
	cmd.Flags().Int("max-results", config.DefaultMaxResults,
		"Truncate the wordlist to N entries (0 means unlimited)")

	// History flags
	cmd.Flags().Bool("save", false,
		"Record the run summary (never the hints or candidates) in the history database")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: $XDG_DATA_HOME/pwtool)")

	cmd.MarkFlagsMutuallyExclusive("suffix", "no-suffix")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildGenerateConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	return runGenerate(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
}

// buildGenerateConfig creates a Config from the generate command's flags.
// Flags override config file values only when they were given.
func buildGenerateConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := newBaseConfig(cmd)
	if err != nil {
		return nil, err
	}
	cfg.GenerateRequested = true

	flags := cmd.Flags()

	if cfg.Hints, err = flags.GetStringSlice("hints"); err != nil {
		return nil, err
	}
	if err := applyYearsFlag(cmd, cfg, args); err != nil {
		return nil, err
	}
	if cfg.OutputPath, err = flags.GetString("out"); err != nil {
		return nil, err
	}

	if flags.Changed("suffix") {
		if cfg.Suffixes, err = flags.GetStringArray("suffix"); err != nil {
			return nil, err
		}
	}
	noSuffix, err := flags.GetBool("no-suffix")
	if err != nil {
		return nil, err
	}
	if noSuffix {
		cfg.Suffixes = []string{}
	}

	noLeet, err := flags.GetBool("no-leet")
	if err != nil {
		return nil, err
	}
	if noLeet {
		cfg.Leet = false
	}

	if flags.Changed("short-years") {
		if cfg.ShortYears, err = flags.GetBool("short-years"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("common") {
		if cfg.IncludeCommon, err = flags.GetBool("common"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("combine") {
		if cfg.MaxCombine, err = flags.GetInt("combine"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-results") {
		if cfg.MaxResults, err = flags.GetInt("max-results"); err != nil {
			return nil, err
		}
	}

	if cfg.SaveToDB, err = flags.GetBool("save"); err != nil {
		return nil, err
	}
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		cfg.DBDir = dbDir
	}

	return cfg, nil
}

// newGenerator builds the generator described by cfg.
func newGenerator(cfg *config.Config, logger *slog.Logger) *wordlist.Generator {
	opts := []wordlist.Option{
		wordlist.WithSuffixes(cfg.Suffixes),
		wordlist.WithLeet(cfg.Leet),
		wordlist.WithShortYears(cfg.ShortYears),
		wordlist.WithCommonPasswords(cfg.IncludeCommon),
		wordlist.WithMaxCombine(cfg.MaxCombine),
		wordlist.WithMaxResults(cfg.MaxResults),
		wordlist.WithLogger(logger),
	}
	if cfg.Years != nil {
		opts = append(opts, wordlist.WithYears(*cfg.Years))
	}
	return wordlist.NewGenerator(opts...)
}

// runGenerate builds the wordlist and writes it to cfg.OutputPath.
// Generation errors are returned before the output file is touched.
func runGenerate(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	gen := newGenerator(cfg, logger)

	words, err := gen.Generate(cfg.Hints)
	if err != nil {
		return err
	}

	if err := wordlist.WriteFile(cfg.OutputPath, words); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %d entries to %s\n", len(words), cfg.OutputPath)

	db, err := openHistory(cfg, logger)
	if err != nil {
		return err
	}
	if db == nil {
		return nil
	}
	defer db.Close()

	summary := &model.GenerationSummary{
		HintCount:   len(wordlist.NormalizeHints(cfg.Hints)),
		EntryCount:  len(words),
		OutputPath:  cfg.OutputPath,
		Options:     gen.Describe(),
		GeneratedAt: time.Now(),
	}
	if _, err := db.SaveGeneration(ctx, summary); err != nil {
		logger.Error("failed to save generation", "error", err)
	}

	return nil
}
