package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"wordgame/internal/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS high_score (
    id         INTEGER PRIMARY KEY CHECK (id = 1),
    points     INTEGER NOT NULL,
    rounds     INTEGER NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteHighScores keeps the best run in a single-row SQLite table.
type SQLiteHighScores struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at dsn and applies
// the schema. The parent directory of a relative path is created first.
func OpenSQLite(dsn string) (*SQLiteHighScores, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	log.Info().Str("dsn", dsn).Msg("high score database ready")
	return &SQLiteHighScores{db: db}, nil
}

// HighScore returns the stored row, if any.
func (s *SQLiteHighScores) HighScore(ctx context.Context) (game.HighScore, bool, error) {
	var hs game.HighScore
	err := s.db.QueryRowContext(ctx,
		`SELECT points, rounds FROM high_score WHERE id = 1`,
	).Scan(&hs.Points, &hs.Rounds)
	if err == sql.ErrNoRows {
		return game.HighScore{}, false, nil
	}
	if err != nil {
		return game.HighScore{}, false, err
	}
	return hs, true, nil
}

// SetHighScoreIfHigher upserts the single row. The WHERE clause on the
// conflict update makes a lower score a no-op inside the same statement.
func (s *SQLiteHighScores) SetHighScoreIfHigher(ctx context.Context, hs game.HighScore) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO high_score (id, points, rounds) VALUES (1, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            points = excluded.points,
            rounds = excluded.rounds,
            updated_at = CURRENT_TIMESTAMP
        WHERE excluded.points > high_score.points`,
		hs.Points, hs.Rounds,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close releases the database handle.
func (s *SQLiteHighScores) Close() error {
	return s.db.Close()
}
