package database

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/pwtool/internal/model"
	"github.com/nao1215/pwtool/internal/strength"
)

// setupTestDB creates a temporary database for testing.
func setupTestDB(t *testing.T) *HistoryDB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// sampleResult builds a result with every optional field set.
func sampleResult(at time.Time) *model.AnalysisResult {
	score := 2
	classes := model.CharClassSet(0).Add(model.ClassLower).Add(model.ClassDigit)
	return &model.AnalysisResult{
		Length:        12,
		CharsetSize:   36,
		EntropyBits:   62.04,
		Classes:       classes,
		ClassNames:    classes.Names(),
		ExternalScore: &score,
		Rating:        model.StrengthStrong,
		Policy:        &model.PolicyResult{MinEntropy: 60, Passed: true},
		AnalyzedAt:    at,
	}
}

// TestOpen tests database opening and creation.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "newdir", "subdir")
		db, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if _, err := os.Stat(filepath.Join(dbDir, FileName)); os.IsNotExist(err) {
			t.Error("database file was not created")
		}
		if db.Path() != filepath.Join(dbDir, FileName) {
			t.Errorf("unexpected path %s", db.Path())
		}
	})

	t.Run("CreateIfNotExists=false fails for missing database", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.CreateIfNotExists = false

		_, err := Open(filepath.Join(t.TempDir(), "missing"), opts)
		if !errors.Is(err, model.ErrIO) {
			t.Errorf("expected ErrIO, got %v", err)
		}
	})

	t.Run("reopening keeps existing rows", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		if _, err := db.SaveAnalysis(context.Background(), sampleResult(time.Now())); err != nil {
			t.Fatalf("failed to save: %v", err)
		}
		_ = db.Close()

		opts := DefaultOptions()
		opts.CreateIfNotExists = false
		db, err = Open(dir, opts)
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		defer db.Close()

		got, err := db.ListAnalyses(context.Background(), 0)
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 row, got %d", len(got))
		}
	})
}

// TestAnalyses tests storing and listing analysis metadata.
func TestAnalyses(t *testing.T) {
	t.Parallel()

	t.Run("round trips derived metrics", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

		if _, err := db.SaveAnalysis(ctx, sampleResult(at)); err != nil {
			t.Fatalf("failed to save: %v", err)
		}

		got, err := db.ListAnalyses(ctx, 10)
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 row, got %d", len(got))
		}

		rec := got[0]
		if rec.Length != 12 || rec.CharsetSize != 36 {
			t.Errorf("unexpected length or charset: %+v", rec)
		}
		if !rec.AnalyzedAt.Equal(at) {
			t.Errorf("expected time %v, got %v", at, rec.AnalyzedAt)
		}
		if strings.Join(rec.Classes, ",") != "lower,digit" {
			t.Errorf("unexpected classes %v", rec.Classes)
		}
		if rec.ExternalScore == nil || *rec.ExternalScore != 2 {
			t.Error("expected external score 2")
		}
		if rec.Rating != model.StrengthStrong.String() {
			t.Errorf("unexpected rating %s", rec.Rating)
		}
		if rec.PolicyPassed == nil || !*rec.PolicyPassed {
			t.Error("expected policy passed")
		}
	})

	t.Run("absent optional fields stay nil", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		result := sampleResult(time.Now())
		result.ExternalScore = nil
		result.Policy = nil

		if _, err := db.SaveAnalysis(ctx, result); err != nil {
			t.Fatalf("failed to save: %v", err)
		}

		got, err := db.ListAnalyses(ctx, 0)
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if got[0].ExternalScore != nil || got[0].PolicyPassed != nil {
			t.Errorf("expected nil optional fields, got %+v", got[0])
		}
	})

	t.Run("lists newest first and honors limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		for i := range 3 {
			result := sampleResult(base.Add(time.Duration(i) * time.Hour))
			result.Length = i + 1
			if _, err := db.SaveAnalysis(ctx, result); err != nil {
				t.Fatalf("failed to save: %v", err)
			}
		}

		got, err := db.ListAnalyses(ctx, 2)
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(got))
		}
		if got[0].Length != 3 || got[1].Length != 2 {
			t.Errorf("expected newest first, got lengths %d and %d", got[0].Length, got[1].Length)
		}
	})
}

// TestGenerations tests storing and listing generation runs.
func TestGenerations(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()
	at := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

	summary := &model.GenerationSummary{
		HintCount:   2,
		EntryCount:  120,
		OutputPath:  "/tmp/words.txt",
		Options:     "leet=true suffixes=6",
		GeneratedAt: at,
	}
	if _, err := db.SaveGeneration(ctx, summary); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, err := db.ListGenerations(ctx, 0)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	rec := got[0]
	if rec.HintCount != 2 || rec.EntryCount != 120 || rec.OutputPath != "/tmp/words.txt" {
		t.Errorf("unexpected record %+v", rec)
	}
	if rec.Options != "leet=true suffixes=6" {
		t.Errorf("unexpected options %q", rec.Options)
	}
	if !rec.GeneratedAt.Equal(at) {
		t.Errorf("expected time %v, got %v", at, rec.GeneratedAt)
	}
}

// TestNoPasswordText verifies that stored rows never contain the password.
func TestNoPasswordText(t *testing.T) {
	t.Parallel()

	const password = "Tr0ub4dor&3-marker"

	result, err := strength.NewAnalyzer().Analyze(password)
	if err != nil {
		t.Fatalf("failed to analyze: %v", err)
	}

	db := setupTestDB(t)
	ctx := context.Background()
	if _, err := db.SaveAnalysis(ctx, result); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	rows, err := db.db.QueryContext(ctx, "SELECT * FROM analyses")
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		t.Fatalf("failed to read columns: %v", err)
	}
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			t.Fatalf("failed to scan: %v", err)
		}
		for i, v := range values {
			if strings.Contains(v.String, "marker") || strings.Contains(v.String, password) {
				t.Errorf("column %s leaks password text: %q", cols[i], v.String)
			}
		}
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("row iteration failed: %v", err)
	}
}

// TestParseTimestamp tests the timestamp parser fallbacks.
func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		zero  bool
	}{
		{name: "stored layout", input: "2026-01-02T03:04:05.000000000Z"},
		{name: "sqlite default", input: "2026-01-02 03:04:05"},
		{name: "garbage", input: "not a time", zero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseTimestamp(tt.input)
			if got.IsZero() != tt.zero {
				t.Errorf("parseTimestamp(%q) = %v", tt.input, got)
			}
		})
	}
}
