// Package storage provides SQLite-based persistence for simulation run
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. The simulation core never touches storage; only the CLI and
// TUI shells record outcomes here.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents the outcome of one completed simulation.
type RunEntry struct {
	ID        int64
	Variant   string
	Rows      int
	Cols      int
	Monsters  int
	Seed      int64
	Victory   bool
	Turns     int
	Kills     int
	Level     int
	CreatedAt time.Time
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			monsters INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			victory INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			kills INTEGER NOT NULL,
			level INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_variant ON runs(variant);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(variant, kills DESC, turns ASC);
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

// SaveRun records a completed simulation outcome.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (variant, rows, cols, monsters, seed, victory, turns, kills, level)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Variant, e.Rows, e.Cols, e.Monsters, e.Seed, boolToInt(e.Victory), e.Turns, e.Kills, e.Level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first. An empty variant
// matches all variants.
func (s *Store) RecentRuns(variantID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, variant, rows, cols, monsters, seed, victory, turns, kills, level, created_at
		 FROM runs`
	args := []any{}
	if variantID != "" {
		query += ` WHERE variant = ?`
		args = append(args, variantID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// BestRuns retrieves the top runs for a variant, ranked by kills descending
// then fewest turns.
func (s *Store) BestRuns(variantID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, rows, cols, monsters, seed, victory, turns, kills, level, created_at
		 FROM runs
		 WHERE variant = ?
		 ORDER BY kills DESC, turns ASC
		 LIMIT ?`,
		variantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// VariantStats contains aggregated statistics for one variant.
type VariantStats struct {
	Variant   string
	RunsCount int
	Victories int
	BestKills int
	AvgTurns  float64
	LastRun   time.Time
}

// Stats retrieves aggregated statistics for a specific variant.
func (s *Store) Stats(variantID string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variantID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(victory), 0), COALESCE(MAX(kills), 0), COALESCE(AVG(turns), 0)
		 FROM runs WHERE variant = ?`,
		variantID,
	).Scan(&stats.RunsCount, &stats.Victories, &stats.BestKills, &stats.AvgTurns)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE variant = ? ORDER BY created_at DESC LIMIT 1`,
		variantID,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseCreatedAt(lastRun)
	}

	return stats, nil
}

// ClearRuns deletes all runs for the given variant.
func (s *Store) ClearRuns(variantID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE variant = ?", variantID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// scanRuns reads RunEntry rows from a query result.
func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var victory int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Variant, &e.Rows, &e.Cols, &e.Monsters,
			&e.Seed, &victory, &e.Turns, &e.Kills, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Victory = victory != 0
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseCreatedAt handles the driver returning either time.Time or a string.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
