// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists discovery runs to a local SQLite database.
// Implements: prd003-history (R1-R5);
//
//	docs/ARCHITECTURE.md § History.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/eshkanala/AllTheAds/pkg/types"
)

// DefaultPath is the history database location unless configured otherwise.
const DefaultPath = "alltheads.db"

// Store manages the run history database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at path, creating parent
// directories and the schema as needed (R1.1, R1.2).
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			niche TEXT NOT NULL,
			created_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			warnings TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS channels (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			category TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_channels_run_id ON channels(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveRun inserts the run and its channels in one transaction and returns
// the assigned run ID (R2.1). Channel rows carry their list position so
// GetRun can rebuild each category in original order.
func (s *Store) SaveRun(ctx context.Context, run types.Run) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	warningsJSON, err := json.Marshal(run.Warnings)
	if err != nil {
		return 0, fmt.Errorf("marshaling warnings: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (niche, created_at, duration_ms, warnings) VALUES (?, ?, ?, ?)`,
		run.Niche,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.Duration.Milliseconds(),
		string(warningsJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO channels (run_id, category, position, name) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing channel insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range types.Categories() {
		for pos, name := range run.Report.Get(c) {
			if _, err := stmt.ExecContext(ctx, id, string(c), pos, name); err != nil {
				return 0, fmt.Errorf("inserting channel %s/%s: %w", c, name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// ListOptions filters ListRuns output.
type ListOptions struct {
	// Niche keeps only runs whose niche contains the substring.
	Niche string

	// Limit caps the number of runs returned. Zero means no cap.
	Limit int
}

// RunSummary is one history listing row: run metadata plus its channel
// count (R3.1).
type RunSummary struct {
	ID        int64         `json:"id"`
	Niche     string        `json:"niche"`
	CreatedAt time.Time     `json:"created_at"`
	Duration  time.Duration `json:"duration"`
	Warnings  []string      `json:"warnings,omitempty"`
	Channels  int           `json:"channels"`
}

// ListRuns returns stored runs newest first (R3.1-R3.3).
func (s *Store) ListRuns(ctx context.Context, opts ListOptions) ([]RunSummary, error) {
	query := `SELECT r.id, r.niche, r.created_at, r.duration_ms, r.warnings, COUNT(c.run_id)
		FROM runs r
		LEFT JOIN channels c ON c.run_id = r.id`
	var args []any
	if opts.Niche != "" {
		query += ` WHERE r.niche LIKE ?`
		args = append(args, "%"+opts.Niche+"%")
	}
	query += ` GROUP BY r.id ORDER BY r.id DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		var (
			sum          RunSummary
			createdAt    string
			durationMS   int64
			warningsJSON sql.NullString
		)
		if err := rows.Scan(&sum.ID, &sum.Niche, &createdAt, &durationMS, &warningsJSON, &sum.Channels); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		sum.CreatedAt = parseStoredTime(createdAt)
		sum.Duration = time.Duration(durationMS) * time.Millisecond
		sum.Warnings = parseStoredWarnings(warningsJSON)
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// GetRun rebuilds a stored run, channel order preserved (R4.1, R4.2).
func (s *Store) GetRun(ctx context.Context, id int64) (types.Run, error) {
	run := types.Run{ID: id, Report: types.NewChannelReport()}

	var (
		createdAt    string
		durationMS   int64
		warningsJSON sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT niche, created_at, duration_ms, warnings FROM runs WHERE id = ?`, id,
	).Scan(&run.Niche, &createdAt, &durationMS, &warningsJSON)
	if err == sql.ErrNoRows {
		return run, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return run, fmt.Errorf("looking up run: %w", err)
	}
	run.CreatedAt = parseStoredTime(createdAt)
	run.Duration = time.Duration(durationMS) * time.Millisecond
	run.Warnings = parseStoredWarnings(warningsJSON)

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, name FROM channels WHERE run_id = ? ORDER BY category, position`, id)
	if err != nil {
		return run, fmt.Errorf("querying channels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category, name string
		if err := rows.Scan(&category, &name); err != nil {
			return run, fmt.Errorf("scanning channel row: %w", err)
		}
		run.Report.Add(types.Channel{Category: types.Category(category), Name: name})
	}
	return run, rows.Err()
}

// LatestRunID returns the most recently recorded run's ID (R5.1).
func (s *Store) LatestRunID(ctx context.Context) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM runs ORDER BY id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no runs recorded yet")
	}
	if err != nil {
		return 0, fmt.Errorf("looking up latest run: %w", err)
	}
	return id, nil
}

func parseStoredTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseStoredWarnings(ns sql.NullString) []string {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	var warnings []string
	if err := json.Unmarshal([]byte(ns.String), &warnings); err != nil {
		return nil
	}
	return warnings
}
