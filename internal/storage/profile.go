package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Profile is the per-player view of the store: level pointer, coin
// wallet and results.
type Profile struct {
	store *Store
	name  string
}

// Name returns the profile name.
func (p *Profile) Name() string {
	return p.name
}

// LevelNo returns the stored level number, or 1 for a new profile.
func (p *Profile) LevelNo() (int, error) {
	var n int
	err := p.store.db.QueryRow("SELECT level_no FROM progress WHERE profile = ?", p.name).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read level: %w", err)
	}
	return n, nil
}

// SetLevelNo stores the level number.
func (p *Profile) SetLevelNo(n int) error {
	_, err := p.store.db.Exec(
		`INSERT INTO progress (profile, level_no) VALUES (?, ?)
		 ON CONFLICT(profile) DO UPDATE SET level_no = excluded.level_no, updated_at = CURRENT_TIMESTAMP`,
		p.name, n,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level: %w", err)
	}
	return nil
}

// Coins returns the wallet balance.
func (p *Profile) Coins() (int, error) {
	var coins sql.NullInt64
	err := p.store.db.QueryRow("SELECT coins FROM wallet WHERE profile = ?", p.name).Scan(&coins)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read wallet: %w", err)
	}
	return int(coins.Int64), nil
}

// AddCoins credits n coins and returns the new balance.
func (p *Profile) AddCoins(n int) (int, error) {
	_, err := p.store.db.Exec(
		`INSERT INTO wallet (profile, coins) VALUES (?, ?)
		 ON CONFLICT(profile) DO UPDATE SET coins = coins + excluded.coins`,
		p.name, n,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot credit wallet: %w", err)
	}
	return p.Coins()
}

// SaveResult records a completed level. Returns the ID of the inserted
// record.
func (p *Profile) SaveResult(r Result) (int64, error) {
	res, err := p.store.db.Exec(
		"INSERT INTO results (profile, level_id, swipes, coins, duration_ms) VALUES (?, ?, ?, ?, ?)",
		p.name, r.LevelID, r.Swipes, r.Coins, r.Duration.Milliseconds(),
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

// BestSwipes returns the fewest swipes this profile has won a level in.
// ok is false if the level was never completed.
func (p *Profile) BestSwipes(levelID string) (best int, ok bool, err error) {
	var n sql.NullInt64
	err = p.store.db.QueryRow(
		"SELECT MIN(swipes) FROM results WHERE profile = ? AND level_id = ?",
		p.name, levelID,
	).Scan(&n)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best swipes: %w", err)
	}
	if !n.Valid {
		return 0, false, nil
	}
	return int(n.Int64), true, nil
}

// Results returns the most recent results, newest first.
func (p *Profile) Results(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := p.store.db.Query(
		`SELECT id, profile, level_id, swipes, coins, duration_ms, created_at
		 FROM results
		 WHERE profile = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		p.name, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var ms int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Profile, &r.LevelID, &r.Swipes, &r.Coins, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// Reset deletes the profile's level pointer, wallet and results.
func (p *Profile) Reset() error {
	tx, err := p.store.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin reset: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, table := range []string{"progress", "wallet", "results"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE profile = ?", p.name); err != nil {
			return fmt.Errorf("storage: cannot reset %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit reset: %w", err)
	}
	return nil
}
