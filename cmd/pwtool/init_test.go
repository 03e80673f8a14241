package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/pwtool/internal/config"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "init" {
			t.Errorf("expected use 'init', got %q", cmd.Use)
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
		if flag.DefValue != config.DefaultConfigFile {
			t.Errorf("expected default %q, got %q", config.DefaultConfigFile, flag.DefValue)
		}
	})

	t.Run("has force flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("force")
		if flag == nil {
			t.Fatal("expected force flag")
		}
		if flag.Shorthand != "f" {
			t.Errorf("expected shorthand 'f', got %q", flag.Shorthand)
		}
	})
}

// TestRunInitCmd tests the init command execution.
func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates a loadable config file", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), "nested", ".pwtool")
		stdout, _, err := executeRoot(t, "", "init", "-o", outputPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "Created configuration file") {
			t.Errorf("expected confirmation, got %q", stdout)
		}

		file, err := config.LoadConfigFile(outputPath)
		if err != nil {
			t.Fatalf("generated template does not load: %v", err)
		}

		cfg := config.NewConfig()
		file.Apply(cfg)
		if strings.Join(cfg.Suffixes, " ") != "! 123 @123 1 !! #" {
			t.Errorf("unexpected suffixes %v", cfg.Suffixes)
		}
		if !cfg.Leet || cfg.MaxCombine != 1 {
			t.Errorf("unexpected generate defaults %+v", cfg)
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), ".pwtool")
		if err := os.WriteFile(outputPath, []byte("existing"), 0600); err != nil {
			t.Fatalf("failed to create existing file: %v", err)
		}

		_, _, err := executeRoot(t, "", "init", "-o", outputPath)
		if err == nil {
			t.Fatal("expected error for existing file")
		}
		if !strings.Contains(err.Error(), "already exists") {
			t.Errorf("expected 'already exists' error, got %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(content) != "existing" {
			t.Error("file should not have been modified")
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), ".pwtool")
		if err := os.WriteFile(outputPath, []byte("existing"), 0600); err != nil {
			t.Fatalf("failed to create existing file: %v", err)
		}

		if _, _, err := executeRoot(t, "", "init", "-o", outputPath, "-f"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if !strings.Contains(string(content), "generate:") {
			t.Error("expected template content")
		}
	})
}

// TestConfigFileFlag tests that an explicit config file is applied.
func TestConfigFileFlag(t *testing.T) {
	t.Parallel()

	t.Run("suffixes from the file are used", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "custom.yaml")
		content := "generate:\n  suffixes: [\"_x\"]\n  leet: false\n"
		if err := os.WriteFile(cfgPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		out := filepath.Join(dir, "words.txt")
		if _, _, err := executeRoot(t, "", "generate", "--config", cfgPath, "--hints", "rex", "--out", out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := readLines(t, out)
		want := []string{"rex", "rex_x", "REX", "REX_x", "Rex", "Rex_x"}
		if strings.Join(got, " ") != strings.Join(want, " ") {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("missing explicit config file is an error", func(t *testing.T) {
		t.Parallel()

		_, _, err := executeRoot(t, "", "analyze", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "pw")
		if err == nil || !strings.Contains(err.Error(), "configuration file not found") {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}
