// Package storage provides SQLite-based persistence for whack-a-mole scores.
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

	"github.com/vovakirdan/whack-arcade/internal/config"
)

// DefaultPath is where scores are kept unless --db says otherwise.
const DefaultPath = "~/.whack/scores.db"

// ErrNoPlayer is returned when a score is saved without a player name.
var ErrNoPlayer = errors.New("storage: player name required")

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID         int64             `json:"id"`
	Player     string            `json:"player"`
	Difficulty config.Difficulty `json:"difficulty"`
	Score      int               `json:"score"`
	Duration   int               `json:"duration"` // Game length in seconds
	CreatedAt  time.Time         `json:"created_at"`
}

// Stats aggregates every game played at one difficulty.
type Stats struct {
	Difficulty config.Difficulty `json:"difficulty"`
	Games      int               `json:"games"`
	HighScore  int               `json:"high_score"`
	AvgScore   float64           `json:"avg_score"`
	LastPlayed time.Time         `json:"last_played"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultPath
	}
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(difficulty, score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(player);
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

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("storage: ping failed: %w", err)
	}
	return nil
}

// SaveScore records a finished game and returns its ID.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	if strings.TrimSpace(e.Player) == "" {
		return 0, ErrNoPlayer
	}
	if !e.Difficulty.Valid() {
		return 0, fmt.Errorf("storage: %w: %q", config.ErrInvalidDifficulty, e.Difficulty)
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (player, difficulty, score, duration_secs) VALUES (?, ?, ?, ?)",
		e.Player, string(e.Difficulty), e.Score, e.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores at the given difficulty.
// Results are ordered by score descending, earlier games first on ties.
func (s *Store) TopScores(d config.Difficulty, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, difficulty, score, duration_secs, created_at
		 FROM scores
		 WHERE difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		string(d), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var difficulty string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &difficulty, &e.Score, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Difficulty = config.Difficulty(difficulty)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score at the given difficulty.
// Returns 0 if no scores exist.
func (s *Store) HighScore(d config.Difficulty) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE difficulty = ?",
		string(d),
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores at the given difficulty.
func (s *Store) ClearScores(d config.Difficulty) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE difficulty = ?", string(d))
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// DifficultyStats retrieves aggregated statistics for one difficulty.
func (s *Store) DifficultyStats(d config.Difficulty) (*Stats, error) {
	stats := &Stats{Difficulty: d}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM scores WHERE difficulty = ?`,
		string(d),
	).Scan(&stats.Games, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
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
