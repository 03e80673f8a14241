package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/pwtool/internal/model"
)

// FileName is the name of the history database file inside the data directory.
const FileName = "pwtool.db"

// HistoryDB provides SQLite-based storage for analysis and generation history.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in the given directory.
// If CreateIfNotExists is false and the database doesn't exist, an error
// wrapping model.ErrIO is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: history database not found at %s", model.ErrIO, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("%w: failed to check database path: %w", model.ErrIO, err)
		}
	} else if err := os.MkdirAll(dbDir, 0750); err != nil {
		return nil, fmt.Errorf("%w: failed to create database directory: %w", model.ErrIO, err)
	}

	// mode=rw refuses to create a missing file; mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", model.ErrIO, err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: failed to enable WAL mode: %w", model.ErrIO, err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to create tables: %w", model.ErrIO, err)
	}

	return hdb, nil
}

// Path returns the database file path.
func (hdb *HistoryDB) Path() string {
	return hdb.dbPath
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- One row per analyzed password. No password text is stored.
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		analyzed_at TEXT NOT NULL,
		length INTEGER NOT NULL,
		charset_size INTEGER NOT NULL,
		entropy_bits REAL NOT NULL,
		classes TEXT NOT NULL,
		external_score INTEGER,
		rating INTEGER NOT NULL,
		common INTEGER NOT NULL DEFAULT 0,
		policy_passed INTEGER
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_at ON analyses(analyzed_at);

	-- One row per wordlist generation run. No hints or candidates are stored.
	CREATE TABLE IF NOT EXISTS generations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		generated_at TEXT NOT NULL,
		hint_count INTEGER NOT NULL,
		entry_count INTEGER NOT NULL,
		output_path TEXT NOT NULL,
		options TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_generations_at ON generations(generated_at);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// AnalysisRecord is a stored analysis row.
type AnalysisRecord struct {
	ID            int64     `json:"id"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
	Length        int       `json:"length"`
	CharsetSize   int       `json:"charset_size"`
	EntropyBits   float64   `json:"entropy_bits"`
	Classes       []string  `json:"classes"`
	ExternalScore *int      `json:"external_score,omitempty"`
	Rating        string    `json:"rating"`
	Common        bool      `json:"common"`
	PolicyPassed  *bool     `json:"policy_passed,omitempty"`
}

// GenerationRecord is a stored generation row.
type GenerationRecord struct {
	ID          int64     `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	HintCount   int       `json:"hint_count"`
	EntryCount  int       `json:"entry_count"`
	OutputPath  string    `json:"output_path"`
	Options     string    `json:"options"`
}

// SaveAnalysis stores the derived metrics of one analysis.
func (hdb *HistoryDB) SaveAnalysis(ctx context.Context, result *model.AnalysisResult) (int64, error) {
	var external sql.NullInt64
	if result.ExternalScore != nil {
		external = sql.NullInt64{Int64: int64(*result.ExternalScore), Valid: true}
	}
	var policy sql.NullBool
	if result.Policy != nil {
		policy = sql.NullBool{Bool: result.Policy.Passed, Valid: true}
	}

	query := `
	INSERT INTO analyses (analyzed_at, length, charset_size, entropy_bits, classes, external_score, rating, common, policy_passed)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := hdb.db.ExecContext(ctx, query,
		formatTimestamp(result.AnalyzedAt),
		result.Length,
		result.CharsetSize,
		result.EntropyBits,
		strings.Join(result.Classes.Names(), ","),
		external,
		int(result.Rating),
		result.Common,
		policy,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to save analysis: %w", model.ErrIO, err)
	}

	return res.LastInsertId()
}

// SaveGeneration stores the summary of one wordlist generation run.
func (hdb *HistoryDB) SaveGeneration(ctx context.Context, summary *model.GenerationSummary) (int64, error) {
	query := `
	INSERT INTO generations (generated_at, hint_count, entry_count, output_path, options)
	VALUES (?, ?, ?, ?, ?)
	`

	res, err := hdb.db.ExecContext(ctx, query,
		formatTimestamp(summary.GeneratedAt),
		summary.HintCount,
		summary.EntryCount,
		summary.OutputPath,
		summary.Options,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to save generation: %w", model.ErrIO, err)
	}

	return res.LastInsertId()
}

// ListAnalyses returns the most recent analyses, newest first.
// A limit of zero or less returns every row.
func (hdb *HistoryDB) ListAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	query := `
	SELECT id, analyzed_at, length, charset_size, entropy_bits, classes, external_score, rating, common, policy_passed
	FROM analyses
	ORDER BY analyzed_at DESC, id DESC
	LIMIT ?
	`

	rows, err := hdb.db.QueryContext(ctx, query, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list analyses: %w", model.ErrIO, err)
	}
	defer rows.Close()

	var results []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var timestamp, classes string
		var external sql.NullInt64
		var rating int
		var policy sql.NullBool

		if err := rows.Scan(&rec.ID, &timestamp, &rec.Length, &rec.CharsetSize, &rec.EntropyBits,
			&classes, &external, &rating, &rec.Common, &policy); err != nil {
			return nil, fmt.Errorf("%w: failed to scan analysis: %w", model.ErrIO, err)
		}

		rec.AnalyzedAt = parseTimestamp(timestamp)
		rec.Classes = model.ParseCharClassSet(classes).Names()
		rec.Rating = model.Strength(rating).String()
		if external.Valid {
			score := int(external.Int64)
			rec.ExternalScore = &score
		}
		if policy.Valid {
			passed := policy.Bool
			rec.PolicyPassed = &passed
		}

		results = append(results, rec)
	}

	return results, rows.Err()
}

// ListGenerations returns the most recent generation runs, newest first.
// A limit of zero or less returns every row.
func (hdb *HistoryDB) ListGenerations(ctx context.Context, limit int) ([]GenerationRecord, error) {
	query := `
	SELECT id, generated_at, hint_count, entry_count, output_path, options
	FROM generations
	ORDER BY generated_at DESC, id DESC
	LIMIT ?
	`

	rows, err := hdb.db.QueryContext(ctx, query, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list generations: %w", model.ErrIO, err)
	}
	defer rows.Close()

	var results []GenerationRecord
	for rows.Next() {
		var rec GenerationRecord
		var timestamp string
		var options sql.NullString

		if err := rows.Scan(&rec.ID, &timestamp, &rec.HintCount, &rec.EntryCount, &rec.OutputPath, &options); err != nil {
			return nil, fmt.Errorf("%w: failed to scan generation: %w", model.ErrIO, err)
		}

		rec.GeneratedAt = parseTimestamp(timestamp)
		rec.Options = options.String

		results = append(results, rec)
	}

	return results, rows.Err()
}

// sqlLimit maps a non-positive limit to SQLite's "no limit".
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

// storedTimestampLayout has a fixed width so text ordering matches time ordering.
const storedTimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTimestamp converts t to UTC in storedTimestampLayout.
// A zero time is replaced by the current time.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(storedTimestampLayout)
}

// timestampFormats contains the timestamp formats that may be read back.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
