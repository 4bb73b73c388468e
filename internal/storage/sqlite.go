// Package storage provides SQLite persistence for PaintRoll progress,
// coins, level results and solver analyses.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultProfile is the profile used by local play.
const DefaultProfile = "local"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Result is one completed level.
type Result struct {
	ID        int64
	Profile   string
	LevelID   string
	Swipes    int
	Coins     int
	Duration  time.Duration
	CreatedAt time.Time
}

// AnalysisRecord is a stored solver run for a level.
type AnalysisRecord struct {
	ID             int64
	LevelID        string
	Winnable       bool
	MinSwipes      int
	ExploredStates int
	UniqueStates   int
	HitLimit       bool
	MaxStates      int
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
	// SQLite allows one writer; SSH sessions share this handle.
	db.SetMaxOpenConns(1)

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			profile TEXT PRIMARY KEY,
			level_no INTEGER NOT NULL DEFAULT 1,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS wallet (
			profile TEXT PRIMARY KEY,
			coins INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			level_id TEXT NOT NULL,
			swipes INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_level ON results(profile, level_id, swipes);

		CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			winnable INTEGER NOT NULL,
			min_swipes INTEGER NOT NULL,
			explored_states INTEGER NOT NULL,
			unique_states INTEGER NOT NULL,
			hit_limit INTEGER NOT NULL,
			max_states INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_analyses_level ON analyses(level_id, id DESC);
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

// Profile returns a handle scoped to one player. An empty name is the
// default profile.
func (s *Store) Profile(name string) *Profile {
	if name == "" {
		name = DefaultProfile
	}
	return &Profile{store: s, name: name}
}

// SaveAnalysis records a solver run. Returns the ID of the inserted record.
func (s *Store) SaveAnalysis(a AnalysisRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO analyses
		 (level_id, winnable, min_swipes, explored_states, unique_states, hit_limit, max_states)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.LevelID, a.Winnable, a.MinSwipes, a.ExploredStates, a.UniqueStates, a.HitLimit, a.MaxStates,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save analysis: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// LatestAnalysis returns the most recent analysis of a level, or nil if
// the level was never analyzed.
func (s *Store) LatestAnalysis(levelID string) (*AnalysisRecord, error) {
	var a AnalysisRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, level_id, winnable, min_swipes, explored_states, unique_states,
		        hit_limit, max_states, created_at
		 FROM analyses
		 WHERE level_id = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		levelID,
	).Scan(
		&a.ID,
		&a.LevelID,
		&a.Winnable,
		&a.MinSwipes,
		&a.ExploredStates,
		&a.UniqueStates,
		&a.HitLimit,
		&a.MaxStates,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query analysis: %w", err)
	}

	a.CreatedAt = parseTime(createdAt)
	return &a, nil
}

// parseTime reads a DATETIME column, which the driver may hand back as
// either time.Time or text.
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
