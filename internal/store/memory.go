// Package store holds the high score implementations of game.HighScores.
//
// Characteristics:
//   - memory: process-local, lost on restart; used in tests and when no DSN is set.
//   - file:   a small YAML document, used by the terminal client.
//   - sqlite: a single-row table, used by the web server.
package store

import (
	"context"
	"sync"

	"wordgame/internal/game"
)

// memory is an in-memory high score.
type memory struct {
	mu   sync.RWMutex // guards best and ok
	best game.HighScore
	ok   bool
}

// NewMemoryHighScores constructs an empty in-memory store.
func NewMemoryHighScores() game.HighScores {
	return &memory{}
}

// HighScore returns the stored best, if any.
func (m *memory) HighScore(ctx context.Context) (game.HighScore, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.best, m.ok, nil
}

// SetHighScoreIfHigher replaces the stored best when hs beats it.
func (m *memory) SetHighScoreIfHigher(ctx context.Context, hs game.HighScore) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ok && hs.Points <= m.best.Points {
		return false, nil
	}
	m.best, m.ok = hs, true
	return true, nil
}
