package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nao1215/pwtool/internal/batch"
	"github.com/nao1215/pwtool/internal/config"
	"github.com/nao1215/pwtool/internal/database"
	"github.com/nao1215/pwtool/internal/model"
	"github.com/nao1215/pwtool/internal/report"
	"github.com/nao1215/pwtool/internal/strength"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Estimate the strength of a password",
		Long: `Analyze reports length, character classes, charset size and an entropy
estimate for a password, merged with a pattern-aware 0-4 score.

Passing a password as an argument leaves it in your shell history and the
process list. Prefer --stdin, which prompts without echo on a terminal.

Entropy is a theoretical upper bound; it overestimates patterned passwords
such as "Password1!". The pattern-aware score is the better verdict.

Examples:
  # Prompt for a password without echo
  pwtool analyze --stdin

  # Read a password from a pipe
  printf '%s\n' 'Tr0ub4dor&3' | pwtool analyze --stdin

  # Analyze a list, one password per line
  pwtool analyze --list passwords.txt --markdown -o report.md

  # Entropy only, with a 60-bit policy
  pwtool analyze --no-external --min-entropy 60 'correct horse'`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyzeCmd,
	}

	// Input flags
	cmd.Flags().Bool("stdin", false,
		"Read the password from standard input (no-echo prompt on a terminal)")
	cmd.Flags().StringP("list", "l", "",
		"Analyze every password in a file, one per line")

	// Analysis flags
	cmd.Flags().Bool("no-external", false,
		"Skip the pattern-aware scorer and report entropy only")
	cmd.Flags().Float64("min-entropy", config.DefaultMinEntropy,
		"Minimum entropy policy in bits (0 disables the check)")
	cmd.Flags().StringSlice("user-input", nil,
		"Words the scorer should treat as guessable (names, company)")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of passwords analyzed in parallel with --list")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().Bool("save", false,
		"Record the analysis metadata (never the password) in the history database")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: $XDG_DATA_HOME/pwtool)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildAnalyzeConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	return runAnalyze(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
}

// buildAnalyzeConfig creates a Config from the analyze command's flags.
// Flags override config file values only when they were given.
func buildAnalyzeConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := newBaseConfig(cmd)
	if err != nil {
		return nil, err
	}
	cfg.AnalyzeRequested = true

	if len(args) > 0 {
		cfg.Password = args[0]
	}

	flags := cmd.Flags()

	if cfg.ReadStdin, err = flags.GetBool("stdin"); err != nil {
		return nil, err
	}
	if cfg.PasswordListFile, err = flags.GetString("list"); err != nil {
		return nil, err
	}

	noExternal, err := flags.GetBool("no-external")
	if err != nil {
		return nil, err
	}
	if noExternal {
		cfg.UseExternalScorer = false
	}

	if flags.Changed("min-entropy") {
		if cfg.MinEntropy, err = flags.GetFloat64("min-entropy"); err != nil {
			return nil, err
		}
	}

	userInputs, err := flags.GetStringSlice("user-input")
	if err != nil {
		return nil, err
	}
	cfg.UserInputs = append(cfg.UserInputs, userInputs...)

	if flags.Changed("concurrency") {
		if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
			return nil, err
		}
	}

	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}

	if cfg.SaveToDB, err = flags.GetBool("save"); err != nil {
		return nil, err
	}
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		cfg.DBDir = dbDir
	}

	return cfg, nil
}

// newAnalyzer builds the analyzer described by cfg.
func newAnalyzer(cfg *config.Config, logger *slog.Logger) *strength.Analyzer {
	opts := []strength.Option{
		strength.WithLogger(logger),
		strength.WithMinEntropy(cfg.MinEntropy),
	}
	if cfg.UseExternalScorer {
		opts = append(opts, strength.WithScorer(strength.NewZxcvbnScorer(cfg.UserInputs...)))
	}
	return strength.NewAnalyzer(opts...)
}

// runAnalyze analyzes a single password or a password list and writes the report.
// in supplies the password when cfg.ReadStdin is set; prompt receives the
// no-echo prompt on a terminal.
func runAnalyze(ctx context.Context, cfg *config.Config, in io.Reader, out, prompt io.Writer, logger *slog.Logger) (err error) {
	analyzer := newAnalyzer(cfg, logger)

	db, err := openHistory(cfg, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	// Validate and read inputs before the report file is created.
	var entries []batch.Entry
	password := cfg.Password
	switch {
	case cfg.PasswordListFile != "":
		if entries, err = batch.ReadListFile(cfg.PasswordListFile); err != nil {
			return err
		}
	case cfg.ReadStdin:
		if password, err = readPassword(in, prompt); err != nil {
			return err
		}
	}

	var result *model.AnalysisResult
	if cfg.PasswordListFile == "" {
		if result, err = analyzer.Analyze(password); err != nil {
			return err
		}
	}

	output, closeOutput, err := openReportOutput(cfg.ReportFile, out)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOutput(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: failed to close report file: %w", model.ErrIO, closeErr)
		}
	}()
	writer := newReportWriter(cfg, output)

	if cfg.PasswordListFile != "" {
		return runBatchAnalyze(ctx, cfg, analyzer, entries, writer, db, logger)
	}

	if _, err := writer.Write(result); err != nil {
		return fmt.Errorf("%w: failed to write report: %w", model.ErrIO, err)
	}
	saveAnalysis(ctx, db, result, logger)

	return nil
}

// runBatchAnalyze analyzes a password list concurrently.
// The report is written even when the batch was canceled part way.
func runBatchAnalyze(
	ctx context.Context,
	cfg *config.Config,
	analyzer *strength.Analyzer,
	entries []batch.Entry,
	writer report.Writer,
	db *database.HistoryDB,
	logger *slog.Logger,
) error {
	p := batch.NewProcessor(analyzer,
		batch.WithConcurrency(cfg.Concurrency),
		batch.WithLogger(logger),
	)

	items, err := p.Process(ctx, entries)
	if _, writeErr := writer.WriteBatch(items); writeErr != nil {
		return fmt.Errorf("%w: failed to write report: %w", model.ErrIO, writeErr)
	}
	if err != nil {
		return err
	}

	for _, item := range items {
		saveAnalysis(ctx, db, item.Result, logger)
	}

	return nil
}

// readPassword reads one password from in.
// On a terminal the password is read without echo after a prompt.
// Otherwise the first line is used, without its line ending.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("%w: failed to read password: %w", model.ErrIO, err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: failed to read password: %w", model.ErrIO, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
