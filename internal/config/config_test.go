package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "8080")
	cfg := Load()
	if cfg.Game.MinWordLength != 3 {
		t.Errorf("MinWordLength %d, want 3", cfg.Game.MinWordLength)
	}
	if cfg.Game.LongWordLength != 7 {
		t.Errorf("LongWordLength %d, want 7", cfg.Game.LongWordLength)
	}
	if cfg.GetAddr() != ":8080" {
		t.Errorf("GetAddr %q, want :8080", cfg.GetAddr())
	}
	s := cfg.Game.Settings()
	if s.FirstLevelTime != 120*time.Second || s.LevelTime != 80*time.Second {
		t.Errorf("level times %v/%v, want 2m0s/1m20s", s.FirstLevelTime, s.LevelTime)
	}
	if s.NextLevelDelay != 4*time.Second {
		t.Errorf("NextLevelDelay %v, want 4s", s.NextLevelDelay)
	}
	if !s.RevealAll {
		t.Error("RevealAll should default to true")
	}
	if cfg.Game.IdleTimeout != 10*time.Minute {
		t.Errorf("IdleTimeout %v, want 10m0s", cfg.Game.IdleTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LEVEL_SECONDS", "30")
	t.Setenv("REVEAL_ALL", "false")
	t.Setenv("SCAN_BUDGET", "not-a-number")
	t.Setenv("SESSION_IDLE_MINUTES", "0")

	cfg := Load()
	if cfg.Server.Port != "9999" {
		t.Errorf("Port %q, want 9999", cfg.Server.Port)
	}
	if cfg.Game.LevelSeconds != 30 {
		t.Errorf("LevelSeconds %d, want 30", cfg.Game.LevelSeconds)
	}
	if cfg.Game.RevealAll {
		t.Error("RevealAll should be false")
	}
	if cfg.Game.ScanBudget != 500 {
		t.Errorf("ScanBudget %d, want fallback 500", cfg.Game.ScanBudget)
	}
	if cfg.Game.IdleTimeout != 0 {
		t.Errorf("IdleTimeout %v, want 0", cfg.Game.IdleTimeout)
	}
}

func TestSetupLogging_Level(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)
	var buf bytes.Buffer
	logger := LoggingConfig{Level: "warn", Format: "json"}.SetupLogging(&buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	out := buf.Bytes()
	if bytes.Contains(out, []byte("hidden")) {
		t.Error("info message should be filtered at warn level")
	}
	if !bytes.Contains(out, []byte("shown")) {
		t.Error("warn message should be written")
	}
}
