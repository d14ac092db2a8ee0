package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"wordgame/internal/game"
)

// FileHighScores keeps the best run in a YAML file.
type FileHighScores struct {
	mu   sync.Mutex
	path string
}

type highScoreDoc struct {
	HighScore game.HighScore `yaml:"high_score"`
}

// NewFileHighScores returns a store backed by path. The file and its parent
// directory are created on the first write.
func NewFileHighScores(path string) *FileHighScores {
	return &FileHighScores{path: path}
}

// HighScore reads the file. A missing file means no high score yet.
func (f *FileHighScores) HighScore(ctx context.Context) (game.HighScore, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

// SetHighScoreIfHigher rewrites the file when hs beats the stored best. The
// read and the write happen under one lock.
func (f *FileHighScores) SetHighScoreIfHigher(ctx context.Context, hs game.HighScore) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	best, ok, err := f.read()
	if err != nil {
		return false, err
	}
	if ok && hs.Points <= best.Points {
		return false, nil
	}
	if err := f.write(hs); err != nil {
		return false, err
	}
	return true, nil
}

func (f *FileHighScores) read() (game.HighScore, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return game.HighScore{}, false, nil
	}
	if err != nil {
		return game.HighScore{}, false, err
	}
	var doc highScoreDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return game.HighScore{}, false, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return doc.HighScore, true, nil
}

func (f *FileHighScores) write(hs game.HighScore) error {
	if dir := filepath.Dir(f.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	data, err := yaml.Marshal(highScoreDoc{HighScore: hs})
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}
