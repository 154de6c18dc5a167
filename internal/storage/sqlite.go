// Package storage persists finished match-3 runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

	"github.com/vovakirdan/tui-match3/internal/match3"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run results.
type Store struct {
	db *sql.DB
}

// Result is one finished level attempt.
type Result struct {
	ID        int64
	RunID     string
	LevelID   string
	Outcome   match3.Outcome
	Score     int
	MovesUsed int
	ComboMax  int
	CreatedAt time.Time
}

// LevelStats aggregates the results of one level.
type LevelStats struct {
	LevelID    string
	Plays      int
	Wins       int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// WinRate returns the fraction of plays that were won.
func (s LevelStats) WinRate() float64 {
	if s.Plays == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Plays)
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			level_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			moves_used INTEGER NOT NULL DEFAULT 0,
			combo_max INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_level_id ON results(level_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(level_id, score DESC);
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

// SaveResult records a finished run. An empty RunID gets a fresh UUID.
// Returns the stored run ID.
func (s *Store) SaveResult(r Result) (string, error) {
	if r.LevelID == "" {
		return "", errors.New("storage: result has no level id")
	}
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO results (run_id, level_id, outcome, score, moves_used, combo_max)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.LevelID, r.Outcome.String(), r.Score, r.MovesUsed, r.ComboMax,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r.RunID, nil
}

// TopScores retrieves the best N results for a level, score descending.
// An empty levelID covers every level.
func (s *Store) TopScores(levelID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, run_id, level_id, outcome, score, moves_used, combo_max, created_at
		 FROM results`
	args := []any{}
	if levelID != "" {
		query += ` WHERE level_id = ?`
		args = append(args, levelID)
	}
	query += ` ORDER BY score DESC, id ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.LevelID, &outcome, &r.Score, &r.MovesUsed, &r.ComboMax, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome, _ = match3.ParseOutcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// BestScore returns the highest score recorded for a level, or 0.
func (s *Store) BestScore(levelID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE level_id = ?",
		levelID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// LevelStats retrieves aggregated statistics for one level.
func (s *Store) LevelStats(levelID string) (LevelStats, error) {
	stats := LevelStats{LevelID: levelID}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM results WHERE level_id = ?`,
		match3.OutcomeWon.String(), levelID,
	).Scan(&stats.Plays, &stats.Wins, &stats.BestScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// AllLevelStats retrieves statistics for every level that has been played.
func (s *Store) AllLevelStats() (map[string]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        MAX(score), AVG(score), MAX(created_at)
		 FROM results
		 GROUP BY level_id`,
		match3.OutcomeWon.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]LevelStats)
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Plays, &st.Wins, &st.BestScore, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.LevelID] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearScores deletes the results of a level. An empty levelID clears all.
func (s *Store) ClearScores(levelID string) error {
	var err error
	if levelID == "" {
		_, err = s.db.Exec("DELETE FROM results")
	} else {
		_, err = s.db.Exec("DELETE FROM results WHERE level_id = ?", levelID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
