// Package store persists analysis runs and their scores in a local
// SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// ErrRunNotFound is returned when a run ID has no row.
var ErrRunNotFound = errors.New("store: run not found")

// schema is executed on every open; IF NOT EXISTS keeps it idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id         TEXT PRIMARY KEY,
    source     TEXT NOT NULL,
    num_nodes  INTEGER NOT NULL,
    num_edges  INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS scores (
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    metric TEXT NOT NULL,
    node   TEXT NOT NULL,
    score  REAL NOT NULL,
    PRIMARY KEY (run_id, metric, node)
);
`

// Run is one persisted analysis.
type Run struct {
	ID        string
	Source    string
	NumNodes  int
	NumEdges  int
	CreatedAt time.Time
}

// Score is one (node, score) row of a run's metric.
type Score struct {
	Node  string
	Score float64
}

// SQLite stores runs in a SQLite database in WAL mode.
type SQLite struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	// single writer; one connection keeps PRAGMA state consistent
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: %s: %w", pragma, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// SaveRun records a run and all metric scores in one transaction and
// returns the new run ID.
func (s *SQLite) SaveRun(ctx context.Context, source string, numNodes, numEdges int, metrics map[string]map[string]float64) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO runs (id, source, num_nodes, num_edges) VALUES (?, ?, ?, ?)",
		id, source, numNodes, numEdges); err != nil {
		return "", fmt.Errorf("store: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO scores (run_id, metric, node, score) VALUES (?, ?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("store: prepare score insert: %w", err)
	}
	defer stmt.Close()

	for metric, scores := range metrics {
		for node, v := range scores {
			if _, err := stmt.ExecContext(ctx, id, metric, node, v); err != nil {
				return "", fmt.Errorf("store: insert score %s/%s: %w", metric, node, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("store: commit run: %w", err)
	}
	return id, nil
}

// Runs returns every run, newest first.
func (s *SQLite) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, source, num_nodes, num_edges, created_at FROM runs ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r  Run
			ts string
		)
		if err := rows.Scan(&r.ID, &r.Source, &r.NumNodes, &r.NumEdges, &ts); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		if r.CreatedAt, err = parseTimestamp(ts); err != nil {
			return nil, fmt.Errorf("store: run %s: %w", r.ID, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate runs: %w", err)
	}
	return out, nil
}

// Scores returns the scores of one metric in a run, highest first, ties
// by node label.
func (s *SQLite) Scores(ctx context.Context, runID, metric string) ([]Score, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM runs WHERE id = ?", runID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("store: lookup run %s: %w", runID, err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT node, score FROM scores WHERE run_id = ? AND metric = ? ORDER BY score DESC, node",
		runID, metric)
	if err != nil {
		return nil, fmt.Errorf("store: query scores: %w", err)
	}
	defer rows.Close()

	var out []Score
	for rows.Next() {
		var sc Score
		if err := rows.Scan(&sc.Node, &sc.Score); err != nil {
			return nil, fmt.Errorf("store: scan score: %w", err)
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate scores: %w", err)
	}
	return out, nil
}

// Close releases the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// timestampFormats covers what modernc.org/sqlite and canonical SQLite
// return for CURRENT_TIMESTAMP.
var timestampFormats = []string{
	time.RFC3339,
	time.DateTime,
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", s)
}
