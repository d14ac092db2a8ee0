package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"wordgame/internal/config"
	"wordgame/internal/game"
	"wordgame/internal/handlers"
	"wordgame/internal/store"
	"wordgame/internal/words"
)

func main() {
	cfg := config.Load()
	logger := cfg.Logging.SetupLogging(os.Stderr)

	loader := words.Load(func() (*words.List, error) {
		if cfg.Game.WordsFile != "" {
			return words.Open(cfg.Game.WordsFile, cfg.Game.MinWordLength, cfg.Game.LongWordLength)
		}
		return words.Embedded(cfg.Game.Lang, cfg.Game.MinWordLength, cfg.Game.LongWordLength)
	}, logger)
	go func() {
		select {
		case <-loader.Done():
		case <-time.After(10 * time.Second):
			if loader.Err() == nil {
				log.Warn().Msg("word list still loading after 10s")
			}
		}
	}()

	scores, closeScores := openHighScores(cfg.Storage)
	defer closeScores()

	sessions := game.NewStore(loader, cfg.Game.Settings(), scores, cfg.Game.Tick, logger)
	sessions.SetIdleTimeout(cfg.Game.IdleTimeout)
	defer sessions.Close()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		handlers.NewHomeHandler(sessions).RegisterRoutes(r)
	})
	// Game routes hold streams open, so they run without a request timeout.
	handlers.NewGameHandler(sessions).RegisterRoutes(r)

	server := &http.Server{
		Addr:              cfg.GetAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", server.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

// openHighScores picks SQLite when a DSN is configured and memory otherwise.
func openHighScores(cfg config.StorageConfig) (game.HighScores, func()) {
	if cfg.HighScoreDSN == "" {
		log.Warn().Msg("HIGHSCORE_DSN not set, high scores are kept in memory")
		return store.NewMemoryHighScores(), func() {}
	}
	db, err := store.OpenSQLite(cfg.HighScoreDSN)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", cfg.HighScoreDSN).Msg("open high score database")
	}
	return db, func() { closeQuietly(db) }
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Error().Err(err).Msg("close")
	}
}
