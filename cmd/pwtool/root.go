package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pwtool.
//
// The root command also accepts the flat flag surface (--analyze, --hints,
// --years, --out) so that a single invocation can analyze a password and
// generate a wordlist. Analysis runs first.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwtool",
		Short: "Password strength analyzer and wordlist generator",
		Long: `pwtool estimates password strength and builds candidate wordlists.

Strength analysis reports length, character classes, charset size and an
entropy estimate, merged with a pattern-aware 0-4 score when available.
Entropy is a theoretical upper bound; patterned passwords such as
"Password1!" score far better on entropy than they deserve.

Wordlist generation expands personal hints (names, pets, places) into case,
leet, year and suffix variants for authorized password audits.

Examples:
  # Analyze a password
  pwtool --analyze 'Tr0ub4dor&3'

  # Generate a wordlist
  pwtool --hints alice,rex --years 1990,2000 --out words.txt
  pwtool --hints alice,rex --years 1990 2000 --out words.txt

  # Both in one run
  pwtool --analyze 'rex1990!' --hints alice,rex --out words.txt`,
		Version:       getVersion(),
		Args:          yearsEndArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write log records as JSON lines")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .pwtool in current or home directory)")

	// Flat surface
	cmd.Flags().String("analyze", "", "Password to analyze")
	cmd.Flags().StringSlice("hints", nil, "Comma-separated hints for wordlist generation")
	cmd.Flags().String("years", "",
		"Year range to append and prepend: START,END, \"START END\" or a single year")
	cmd.Flags().String("out", "", "Wordlist output path")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// runRootCmd executes the flat flag surface.
func runRootCmd(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("analyze") && !cmd.Flags().Changed("hints") {
		return cmd.Help()
	}

	cfg, err := buildRootConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)
	ctx := cmd.Context()

	if cfg.AnalyzeRequested {
		if err := runAnalyze(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), logger); err != nil {
			return err
		}
	}

	if cfg.GenerateRequested {
		if err := runGenerate(ctx, cfg, cmd.OutOrStdout(), logger); err != nil {
			return err
		}
	}

	return nil
}

// Execute runs the root command.
// An interrupt cancels the context so batch analysis stops early.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pwtool:", err)
		os.Exit(1)
	}
}
