// Package storage keeps the score history of finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score history.
type Store struct {
	db *sql.DB
}

// Run is one finished session of a game.
type Run struct {
	ID         int64
	GameID     string
	Score      int
	Difficulty string
	Duration   time.Duration
	CreatedAt  time.Time
}

// GameSummary aggregates the history of one game.
type GameSummary struct {
	GameID     string
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalTime  time.Duration
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(ctx context.Context, r Run) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (game_id, score, difficulty, duration_ms) VALUES (?, ?, ?, ?)",
		r.GameID, r.Score, r.Difficulty, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: inserted id: %w", err)
	}
	return id, nil
}

// SaveScore records a bare score for the given game.
func (s *Store) SaveScore(ctx context.Context, gameID string, score int) (int64, error) {
	return s.SaveRun(ctx, Run{GameID: gameID, Score: score})
}

// TopScores returns the best runs for a game, highest first. A limit of
// zero or less means 10.
func (s *Store) TopScores(ctx context.Context, gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, game_id, score, difficulty, duration_ms, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns returns the latest runs across all games, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, game_id, score, difficulty, duration_ms, created_at
		 FROM scores
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query recent runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Difficulty, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration: %w", err)
	}
	return runs, nil
}

// parseTime handles both driver time values and SQLite text timestamps.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest recorded score, or 0 without history.
func (s *Store) HighScore(ctx context.Context, gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes the history of one game.
func (s *Store) ClearScores(ctx context.Context, gameID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: clear scores: %w", err)
	}
	return nil
}

// Summary aggregates the history of one game. A game without runs yields
// a zero summary.
func (s *Store) Summary(ctx context.Context, gameID string) (GameSummary, error) {
	sum := GameSummary{GameID: gameID}
	var totalMS int64
	var lastPlayed any
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&sum.Runs, &sum.HighScore, &sum.AvgScore, &totalMS, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return sum, fmt.Errorf("storage: summary: %w", err)
	}
	sum.TotalTime = time.Duration(totalMS) * time.Millisecond
	sum.LastPlayed = parseTime(lastPlayed)
	return sum, nil
}

// Summaries aggregates every game with at least one run, keyed by game ID.
func (s *Store) Summaries(ctx context.Context) (map[string]GameSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(duration_ms), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: summaries: %w", err)
	}
	defer rows.Close()

	out := make(map[string]GameSummary)
	for rows.Next() {
		var sum GameSummary
		var totalMS int64
		var lastPlayed any
		if err := rows.Scan(&sum.GameID, &sum.Runs, &sum.HighScore, &sum.AvgScore, &totalMS, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: scan summary: %w", err)
		}
		sum.TotalTime = time.Duration(totalMS) * time.Millisecond
		sum.LastPlayed = parseTime(lastPlayed)
		out[sum.GameID] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration: %w", err)
	}
	return out, nil
}
