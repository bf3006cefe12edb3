// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a local log of past searches in SQLite. It is a
// record only: results are never served from it, so it is not a cache.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/proteinlab/protein-search/pkg/types"
)

const dbFile = "history.db"

// Entry is one logged search.
type Entry struct {
	ID        int64     `json:"id"`
	Query     string    `json:"query"`
	Protein   string    `json:"protein"`
	Organism  string    `json:"organism"`
	PDBID     string    `json:"pdb_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at cfg.Dir/history.db,
// creating the schema if needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			protein TEXT,
			organism TEXT,
			pdb_id TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_searches_created_at ON searches(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record logs one successful search. Error results are not recorded.
func (s *Store) Record(ctx context.Context, queryText string, result types.SearchResult) error {
	if result.IsError() {
		return nil
	}
	pdbID := ""
	if len(result.PDBIDs) > 0 {
		pdbID = result.PDBIDs[0]
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (query, protein, organism, pdb_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		queryText, result.ProteinName, result.Organism, pdbID,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first, capped at the
// store's configured maximum.
func (s *Store) Recent(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, protein, organism, pdb_id, created_at
		 FROM searches ORDER BY id DESC LIMIT ?`, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Query, &e.Protein, &e.Organism, &e.PDBID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history rows: %w", err)
	}
	return entries, nil
}

// Clear removes all logged searches.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM searches`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
