// Package store persists layout runs in a local sqlite database. One row
// per run: the request and result as JSON blobs keyed by a generated run
// id, so the server can hand out stable URLs across restarts.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/HasnainAbbasi1/planit/pkg/layout"
	"github.com/HasnainAbbasi1/planit/pkg/plan"
)

// ErrNotFound is returned by Get when no run matches the id.
var ErrNotFound = errors.New("run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	seed       INTEGER NOT NULL,
	acres      DOUBLE NOT NULL,
	request    TEXT NOT NULL,
	result     TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`

// Store wraps the sqlite handle.
type Store struct {
	db *sql.DB
}

// Run is one persisted layout run. Result is populated by Get but left
// nil by List to keep listings cheap.
type Run struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Seed      int64                `json:"seed"`
	Acres     float64              `json:"acres"`
	Request   *plan.Request        `json:"request,omitempty"`
	Result    *layout.LayoutResult `json:"result,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists one run and returns its generated id.
func (s *Store) Save(ctx context.Context, req plan.Request, result *layout.LayoutResult) (string, error) {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}
	resJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}

	id := uuid.NewString()
	area := req.Area.Resolve()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, name, seed, acres, request, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, req.Name, req.Seed, area.Acres, string(reqJSON), string(resJSON), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// Get loads a run with its full request and result.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, seed, acres, request, result, created_at FROM runs WHERE id = ?`, id)

	var (
		run     Run
		reqJSON string
		resJSON string
	)
	err := row.Scan(&run.ID, &run.Name, &run.Seed, &run.Acres, &reqJSON, &resJSON, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading run %s: %w", id, err)
	}

	run.Request = &plan.Request{}
	if err := json.Unmarshal([]byte(reqJSON), run.Request); err != nil {
		return nil, fmt.Errorf("decoding request for run %s: %w", id, err)
	}
	run.Result = &layout.LayoutResult{}
	if err := json.Unmarshal([]byte(resJSON), run.Result); err != nil {
		return nil, fmt.Errorf("decoding result for run %s: %w", id, err)
	}
	return &run, nil
}

// List returns run metadata, newest first, without the stored blobs.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, seed, acres, created_at FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Name, &run.Seed, &run.Acres, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Delete removes a run. Deleting an unknown id returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting run %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
