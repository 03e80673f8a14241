package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwtool/internal/config"
	"github.com/nao1215/pwtool/internal/database"
	pwlog "github.com/nao1215/pwtool/internal/log"
	"github.com/nao1215/pwtool/internal/model"
	"github.com/nao1215/pwtool/internal/report"
)

// getBoolFlag retrieves a bool flag from the command or the root's persistent flags.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// getStringFlag retrieves a string flag from the command or the root's persistent flags.
func getStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetString(name)
		if err != nil {
			return ""
		}
	}
	return v
}

// setupLogger creates the redacting structured logger in the configured format.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.LogJSON {
		return pwlog.NewSecureJSONLogger(w, cfg.Verbose)
	}
	return pwlog.NewSecureLogger(w, cfg.Verbose)
}

// newBaseConfig creates a Config with defaults, then applies the config file.
//
// If the user explicitly specified a config file path, a missing file is an
// error. Otherwise a missing file is silently ignored.
func newBaseConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getBoolFlag(cmd, "verbose")
	cfg.LogJSON = getBoolFlag(cmd, "log-json")
	cfg.ConfigFilePath = getStringFlag(cmd, "config")

	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath == "" {
		if cfg.ConfigFilePath != "" {
			return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
		}
		return cfg, nil
	}

	file, err := config.LoadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	file.Apply(cfg)

	return cfg, nil
}

// buildRootConfig creates a Config from the root command's flat flags.
// args holds the optional end year of "--years START END".
func buildRootConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := newBaseConfig(cmd)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("analyze") {
		cfg.AnalyzeRequested = true
		if cfg.Password, err = cmd.Flags().GetString("analyze"); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("hints") {
		cfg.GenerateRequested = true
		if cfg.Hints, err = cmd.Flags().GetStringSlice("hints"); err != nil {
			return nil, err
		}
	}

	if err := applyYearsFlag(cmd, cfg, args); err != nil {
		return nil, err
	}

	if cfg.OutputPath, err = cmd.Flags().GetString("out"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// yearsEndArg accepts a single positional argument only after --years, so
// that "--years 1990 2000" reads as "--years 1990,2000".
func yearsEndArg(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return nil
	case len(args) == 1 && cmd.Flags().Changed("years"):
		return nil
	default:
		return fmt.Errorf("%w: unexpected arguments %q", model.ErrInvalidInput, args)
	}
}

// applyYearsFlag parses --years, plus the optional end year argument, into
// cfg when it was given.
func applyYearsFlag(cmd *cobra.Command, cfg *config.Config, args []string) error {
	if !cmd.Flags().Changed("years") {
		return nil
	}
	value, err := cmd.Flags().GetString("years")
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("%w: invalid --years value %q %q: expected START END", model.ErrInvalidInput, value, args[0])
		}
		value += "," + args[0]
	}
	yr, err := parseYears(value)
	if err != nil {
		return err
	}
	cfg.Years = yr
	return nil
}

// yearRangePattern matches "START,END", "START-END", "START:END" and
// "START END".
var yearRangePattern = regexp.MustCompile(`^(-?\d+)\s*(?:[,:]|-|\s)\s*(-?\d+)$`)

// parseYears parses a single "YEAR" or a "START,END" range. "-", ":" and
// whitespace are accepted as separators too.
// An empty value means no year range.
func parseYears(value string) (*model.YearRange, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil //nolint:nilnil // no range requested
	}

	if y, err := strconv.Atoi(value); err == nil {
		return &model.YearRange{Start: y, End: y}, nil
	}

	m := yearRangePattern.FindStringSubmatch(value)
	if m == nil {
		return nil, fmt.Errorf("%w: invalid --years value %q: expected START,END", model.ErrInvalidInput, value)
	}

	start, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid --years value %q: %w", model.ErrInvalidInput, value, err)
	}
	end, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid --years value %q: %w", model.ErrInvalidInput, value, err)
	}
	return &model.YearRange{Start: start, End: end}, nil
}

// openReportOutput returns the report destination and a close function.
// An empty path selects fallback, which is never closed.
func openReportOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("%w: failed to create output directory: %w", model.ErrIO, err)
		}
	}

	// Reports describe the user's passwords, so only the owner may read them.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // path is chosen by the user
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to create output file: %w", model.ErrIO, err)
	}
	return f, f.Close, nil
}

// newReportWriter selects the report format from the configuration.
func newReportWriter(cfg *config.Config, w io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(w, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(w)
	default:
		return report.NewSimpleWriter(w, report.WithVerbose(cfg.Verbose))
	}
}

// openHistory opens the history database when saving is enabled.
// It returns nil when saving is disabled.
func openHistory(cfg *config.Config, logger *slog.Logger) (*database.HistoryDB, error) {
	if !cfg.SaveToDB {
		return nil, nil //nolint:nilnil // saving disabled
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	logger.Debug("history database opened", "path", db.Path())
	return db, nil
}

// saveAnalysis records the analysis metadata if db is non-nil.
func saveAnalysis(ctx context.Context, db *database.HistoryDB, result *model.AnalysisResult, logger *slog.Logger) {
	if db == nil || result == nil {
		return
	}
	if _, err := db.SaveAnalysis(ctx, result); err != nil {
		logger.Error("failed to save analysis", "error", err)
	}
}
