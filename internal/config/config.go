package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"wordgame/internal/game"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Storage StorageConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Host string
}

// GameConfig holds round timings and word list settings
type GameConfig struct {
	MinWordLength     int
	LongWordLength    int
	FirstLevelSeconds int
	LevelSeconds      int
	NextLevelDelay    time.Duration
	RestartDelay      time.Duration
	ScanBudget        int
	Tick              time.Duration
	IdleTimeout       time.Duration // zero keeps sessions forever
	RevealAll         bool
	WordsFile         string // empty means the embedded list
	Lang              string
}

// StorageConfig says where high scores live
type StorageConfig struct {
	HighScoreDSN  string // SQLite database path; empty keeps scores in memory
	HighScoreFile string // YAML file used by the terminal client
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "console"
	File   string // terminal client log file; the screen belongs to the UI
}

// Load reads an optional .env file, then environment variables with defaults.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", ""),
		},
		Game: GameConfig{
			MinWordLength:     getEnvInt("MIN_WORD_LENGTH", 3),
			LongWordLength:    getEnvInt("LONG_WORD_LENGTH", 7),
			FirstLevelSeconds: getEnvInt("FIRST_LEVEL_SECONDS", 120),
			LevelSeconds:      getEnvInt("LEVEL_SECONDS", 80),
			NextLevelDelay:    time.Duration(getEnvInt("NEXT_LEVEL_DELAY_MS", 4000)) * time.Millisecond,
			RestartDelay:      time.Duration(getEnvInt("RESTART_DELAY_MS", 11500)) * time.Millisecond,
			ScanBudget:        getEnvInt("SCAN_BUDGET", 500),
			Tick:              time.Duration(getEnvInt("TICK_MS", 100)) * time.Millisecond,
			IdleTimeout:       time.Duration(getEnvInt("SESSION_IDLE_MINUTES", 10)) * time.Minute,
			RevealAll:         getEnvBool("REVEAL_ALL", true),
			WordsFile:         getEnv("WORDS_FILE", ""),
			Lang:              getEnv("WORDS_LANG", "en"),
		},
		Storage: StorageConfig{
			HighScoreDSN:  getEnv("HIGHSCORE_DSN", ""),
			HighScoreFile: getEnv("HIGHSCORE_FILE", ".wordgame/highscore.yaml"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", ".wordgame/tui.log"),
		},
	}
}

// Settings converts the game section into controller settings.
func (g GameConfig) Settings() game.Settings {
	return game.Settings{
		FirstLevelTime: time.Duration(g.FirstLevelSeconds) * time.Second,
		LevelTime:      time.Duration(g.LevelSeconds) * time.Second,
		NextLevelDelay: g.NextLevelDelay,
		RestartDelay:   g.RestartDelay,
		ScanBudget:     g.ScanBudget,
		RevealAll:      g.RevealAll,
	}
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
