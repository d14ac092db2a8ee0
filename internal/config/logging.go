package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging configures the global zerolog logger to write to w and returns it.
func (l LoggingConfig) SetupLogging(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if lvl, err := zerolog.ParseLevel(l.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if l.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return log.Logger
}
