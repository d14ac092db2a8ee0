package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"wordgame/internal/config"
	"wordgame/internal/store"
	"wordgame/internal/tui"
	"wordgame/internal/words"
)

func main() {
	cfg := config.Load()

	logOut := io.Discard
	if cfg.Logging.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0o755); err == nil {
			if f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				defer f.Close()
				logOut = f
			}
		}
	}
	logger := cfg.Logging.SetupLogging(logOut)

	loader := words.Load(func() (*words.List, error) {
		if cfg.Game.WordsFile != "" {
			return words.Open(cfg.Game.WordsFile, cfg.Game.MinWordLength, cfg.Game.LongWordLength)
		}
		return words.Embedded(cfg.Game.Lang, cfg.Game.MinWordLength, cfg.Game.LongWordLength)
	}, logger)

	scores := store.NewFileHighScores(cfg.Storage.HighScoreFile)
	model := tui.New(loader, cfg.Game.Settings(), scores, cfg.Game.Tick, logger)

	if err := tui.Run(model); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
	if err := loader.Err(); err != nil {
		fmt.Printf("Error loading words: %v\n", err)
		os.Exit(1)
	}
}
