// Package storage provides SQLite-based persistence for finished game
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result represents one finished game.
type Result struct {
	ID      int64
	Variant string // rotation system / randomizer pair, e.g. "srs/bag"
	Seed    int64
	Ticks   uint64
	Lines   uint64
	Pieces  uint64
	Singles uint64
	Doubles uint64
	Triples uint64
	Fours   uint64

	CreatedAt time.Time
}

// Totals aggregates every stored result.
type Totals struct {
	Games  int64
	Lines  uint64
	Pieces uint64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			lines INTEGER NOT NULL,
			pieces INTEGER NOT NULL,
			singles INTEGER NOT NULL DEFAULT 0,
			doubles INTEGER NOT NULL DEFAULT 0,
			triples INTEGER NOT NULL DEFAULT 0,
			fours INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(variant, lines DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results
		 (variant, seed, ticks, lines, pieces, singles, doubles, triples, fours)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Variant, r.Seed, r.Ticks, r.Lines, r.Pieces,
		r.Singles, r.Doubles, r.Triples, r.Fours,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the top N results ordered by lines cleared
// descending.
func (s *Store) TopResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, seed, ticks, lines, pieces, singles, doubles, triples, fours, created_at
		 FROM results
		 ORDER BY lines DESC, pieces ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

func scanResult(rows *sql.Rows) (Result, error) {
	var r Result
	var createdAt any
	if err := rows.Scan(
		&r.ID, &r.Variant, &r.Seed, &r.Ticks, &r.Lines, &r.Pieces,
		&r.Singles, &r.Doubles, &r.Triples, &r.Fours, &createdAt,
	); err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}

// BestLines returns the highest line count across all results.
// Returns 0 if no results exist.
func (s *Store) BestLines() (uint64, error) {
	var lines sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(lines) FROM results").Scan(&lines)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best result: %w", err)
	}

	if !lines.Valid {
		return 0, nil
	}

	return uint64(lines.Int64), nil
}

// Totals returns aggregate counters across all stored results.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	var lines, pieces sql.NullInt64
	err := s.db.QueryRow(
		"SELECT COUNT(*), SUM(lines), SUM(pieces) FROM results",
	).Scan(&t.Games, &lines, &pieces)
	if err != nil {
		return t, fmt.Errorf("storage: cannot query totals: %w", err)
	}

	if lines.Valid {
		t.Lines = uint64(lines.Int64)
	}
	if pieces.Valid {
		t.Pieces = uint64(pieces.Int64)
	}
	return t, nil
}

// ClearResults deletes all stored results.
func (s *Store) ClearResults() error {
	_, err := s.db.Exec("DELETE FROM results")
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
