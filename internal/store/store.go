// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store records pipeline results in a SQLite database so runs can
// be reviewed and exported later. The log is write-then-read only: the
// pipeline never consults it to skip work.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/gene-summarizer/pkg/types"
)

// ErrRecordNotFound is returned by Get for an unknown record ID.
var ErrRecordNotFound = errors.New("result record not found")

const defaultListLimit = 50

// Record is a stored PipelineResult.
type Record struct {
	ID        string               `json:"id" yaml:"id"`
	CreatedAt time.Time            `json:"created_at" yaml:"created_at"`
	Result    types.PipelineResult `json:"result" yaml:"result"`
}

// Query filters List results. Empty fields match everything.
type Query struct {
	GeneID   string
	PubMedID string

	// FailedOnly restricts the listing to error results.
	FailedOnly bool

	// Limit caps the number of records (default 50).
	Limit int
}

// Store manages the results SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens or creates the database at cfg.Path and its schema.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
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
		`CREATE TABLE IF NOT EXISTS results (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL,
			gene_id TEXT NOT NULL,
			pubmed_id TEXT NOT NULL,
			code INTEGER NOT NULL,
			message TEXT,
			title TEXT,
			short_summary TEXT,
			summary TEXT,
			extract TEXT,
			synonyms TEXT,
			paper_text TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_gene ON results(gene_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_pubmed ON results(pubmed_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save appends r to the log and returns the stored record.
func (s *Store) Save(ctx context.Context, r types.PipelineResult) (Record, error) {
	rec := Record{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Result:    r,
	}

	synonymsJSON, err := json.Marshal(r.Synonyms)
	if err != nil {
		return Record{}, fmt.Errorf("marshaling synonyms: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO results (id, created_at, gene_id, pubmed_id, code, message,
			title, short_summary, summary, extract, synonyms, paper_text)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.Format(time.RFC3339Nano), r.GeneID, r.PubMedID, r.Code, r.Message,
		r.Title, r.ShortSummary, r.Summary, r.Extract, string(synonymsJSON), r.PaperText,
	)
	if err != nil {
		return Record{}, fmt.Errorf("inserting result %s/%s: %w", r.GeneID, r.PubMedID, err)
	}
	return rec, nil
}

const selectColumns = `id, created_at, gene_id, pubmed_id, code, message,
	title, short_summary, summary, extract, synonyms, paper_text`

// Get returns the record with the given ID.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM results WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return rec, err
}

// List returns matching records, newest first.
func (s *Store) List(ctx context.Context, q Query) ([]Record, error) {
	where := "WHERE 1=1"
	var args []any
	if q.GeneID != "" {
		where += " AND gene_id = ?"
		args = append(args, q.GeneID)
	}
	if q.PubMedID != "" {
		where += " AND pubmed_id = ?"
		args = append(args, q.PubMedID)
	}
	if q.FailedOnly {
		where += " AND code != 0"
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM results `+where+` ORDER BY seq DESC LIMIT ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec                 Record
		createdAt, synonyms string
		r                   = &rec.Result
	)
	err := sc.Scan(&rec.ID, &createdAt, &r.GeneID, &r.PubMedID, &r.Code, &r.Message,
		&r.Title, &r.ShortSummary, &r.Summary, &r.Extract, &synonyms, &r.PaperText)
	if err != nil {
		return Record{}, err
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Record{}, fmt.Errorf("parsing created_at of %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(synonyms), &r.Synonyms); err != nil {
		return Record{}, fmt.Errorf("parsing synonyms of %s: %w", rec.ID, err)
	}
	return rec, nil
}
