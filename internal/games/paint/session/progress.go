package session

import (
	"errors"
	"fmt"
	"sync"
)

// ProgressStore persists the 1-based number of the level to play next.
// A store that has never been written reports 1.
type ProgressStore interface {
	LevelNo() (int, error)
	SetLevelNo(n int) error
}

// LevelPointer walks a fixed list of levels and keeps the store in sync.
type LevelPointer struct {
	store ProgressStore
	count int
}

// NewLevelPointer creates a pointer over count levels.
func NewLevelPointer(store ProgressStore, count int) (*LevelPointer, error) {
	if store == nil {
		return nil, errors.New("progress: nil store")
	}
	if count < 1 {
		return nil, fmt.Errorf("progress: need at least one level, got %d", count)
	}
	return &LevelPointer{store: store, count: count}, nil
}

// Count returns the number of levels.
func (p *LevelPointer) Count() int {
	return p.count
}

// Current returns the stored level number clamped to [1, Count].
func (p *LevelPointer) Current() (int, error) {
	n, err := p.store.LevelNo()
	if err != nil {
		return 0, fmt.Errorf("progress: read level: %w", err)
	}
	return p.clamp(n), nil
}

// Index returns Current as a 0-based index.
func (p *LevelPointer) Index() (int, error) {
	n, err := p.Current()
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// Next advances to the following level, wrapping past the last to 1.
func (p *LevelPointer) Next() (int, error) {
	n, err := p.Current()
	if err != nil {
		return 0, err
	}
	return p.Shift(n, 1)
}

// Prev steps back one level, wrapping below 1 to the last.
func (p *LevelPointer) Prev() (int, error) {
	n, err := p.Current()
	if err != nil {
		return 0, err
	}
	return p.Shift(n, -1)
}

// Shift stores the level delta steps away from level from, wrapping
// around both ends. from is clamped first.
func (p *LevelPointer) Shift(from, delta int) (int, error) {
	n := (p.clamp(from)-1+delta)%p.count + 1
	if n < 1 {
		n += p.count
	}
	return n, p.set(n)
}

// First resets the pointer to level 1.
func (p *LevelPointer) First() error {
	return p.set(1)
}

// Jump moves to level n, clamped to the valid range.
func (p *LevelPointer) Jump(n int) (int, error) {
	n = p.clamp(n)
	return n, p.set(n)
}

func (p *LevelPointer) set(n int) error {
	if err := p.store.SetLevelNo(n); err != nil {
		return fmt.Errorf("progress: write level: %w", err)
	}
	return nil
}

func (p *LevelPointer) clamp(n int) int {
	switch {
	case n < 1:
		return 1
	case n > p.count:
		return p.count
	default:
		return n
	}
}

// MemoryStore is a ProgressStore held in memory.
type MemoryStore struct {
	mu sync.Mutex
	n  int
}

// NewMemoryStore creates a store starting at level 1.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{n: 1}
}

// LevelNo returns the stored level number.
func (m *MemoryStore) LevelNo() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n, nil
}

// SetLevelNo stores n.
func (m *MemoryStore) SetLevelNo(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n = n
	return nil
}
