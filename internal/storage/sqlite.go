// Package storage provides the SQLite result log for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only completed results are written; sessions in progress are never stored.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the result log.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Result is one finished game.
type Result struct {
	ID         string // UUID, assigned by SaveResult when empty
	Variant    string
	Player     string
	Won        bool
	Attempts   int
	Elapsed    time.Duration
	LossReason string // "attempts", "timeout", or empty for a win
	CreatedAt  time.Time
}

// VariantStats contains aggregated statistics for one variant.
type VariantStats struct {
	Variant      string
	Played       int
	Won          int
	Timeouts     int
	BestAttempts int           // Fewest attempts in a win, 0 without wins
	BestElapsed  time.Duration // Fastest win, 0 without wins
	AvgAttempts  float64       // Average attempts over wins
	LastPlayed   time.Time
}

// WinRate returns the fraction of games won.
func (v VariantStats) WinRate() float64 {
	if v.Played == 0 {
		return 0
	}
	return float64(v.Won) / float64(v.Played)
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

	store := &Store{db: db, now: time.Now}

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
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			won INTEGER NOT NULL,
			attempts INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			loss_reason TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(variant, won, attempts, elapsed_ms);
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

// SaveResult appends a finished game to the log and returns its ID.
func (s *Store) SaveResult(r Result) (string, error) {
	if r.Variant == "" {
		return "", errors.New("storage: result has no variant")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	_, err := s.db.Exec(
		`INSERT INTO results (id, variant, player, won, attempts, elapsed_ms, loss_reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Variant, r.Player, r.Won, r.Attempts, r.Elapsed.Milliseconds(), r.LossReason,
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}

	return r.ID, nil
}

// TopResults retrieves the best wins for a variant: fewest attempts first,
// then fastest.
func (s *Store) TopResults(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryResults(
		`SELECT id, variant, player, won, attempts, elapsed_ms, loss_reason, created_at
		 FROM results
		 WHERE variant = ? AND won = 1
		 ORDER BY attempts ASC, elapsed_ms ASC, created_at ASC
		 LIMIT ?`,
		variant, limit,
	)
}

// RecentResults retrieves the latest results, won or lost. An empty variant
// covers every variant.
func (s *Store) RecentResults(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryResults(
		`SELECT id, variant, player, won, attempts, elapsed_ms, loss_reason, created_at
		 FROM results
		 WHERE ? = '' OR variant = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
}

// PlayerResults retrieves the latest results of one player.
func (s *Store) PlayerResults(player string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryResults(
		`SELECT id, variant, player, won, attempts, elapsed_ms, loss_reason, created_at
		 FROM results
		 WHERE player = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var elapsedMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Player, &r.Won, &r.Attempts, &elapsedMS, &r.LossReason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearResults deletes all results for the given variant.
func (s *Store) ClearResults(variant string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

const statsColumns = `variant,
		COUNT(*),
		COALESCE(SUM(won), 0),
		COALESCE(SUM(loss_reason = 'timeout'), 0),
		COALESCE(MIN(CASE WHEN won = 1 THEN attempts END), 0),
		COALESCE(MIN(CASE WHEN won = 1 THEN elapsed_ms END), 0),
		COALESCE(AVG(CASE WHEN won = 1 THEN attempts END), 0),
		MAX(created_at)`

// Stats retrieves aggregated statistics for a variant.
// A variant without results yields zero stats.
func (s *Store) Stats(variant string) (*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT `+statsColumns+` FROM results WHERE variant = ? GROUP BY variant`,
		variant,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	all, err := scanStats(rows)
	if err != nil {
		return nil, err
	}
	if st, ok := all[variant]; ok {
		return st, nil
	}
	return &VariantStats{Variant: variant}, nil
}

// AllStats retrieves statistics for every variant that has been played.
func (s *Store) AllStats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(`SELECT ` + statsColumns + ` FROM results GROUP BY variant`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all variant stats: %w", err)
	}
	return scanStats(rows)
}

func scanStats(rows *sql.Rows) (map[string]*VariantStats, error) {
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var st VariantStats
		var bestMS int64
		var lastPlayed any
		if err := rows.Scan(&st.Variant, &st.Played, &st.Won, &st.Timeouts,
			&st.BestAttempts, &bestMS, &st.AvgAttempts, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestElapsed = time.Duration(bestMS) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Variant] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// timeLayout sorts lexicographically in UTC.
const timeLayout = "2006-01-02 15:04:05.000"

// parseTime handles both time.Time and the string forms SQLite hands back.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
