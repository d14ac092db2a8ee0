package game

import (
	"context"
	"time"
)

// Dictionary supplies the long-word pool and the full word list.
type Dictionary interface {
	LongWordCount() int
	LongWord(i int) string
	Words() []string
	MinWordLength() int
}

// DictionarySource is a dictionary that may still be loading. Ready turns
// true once and stays true; Dictionary is only valid after that.
type DictionarySource interface {
	Ready() bool
	Dictionary() Dictionary
}

// HighScore is the best run stored by a HighScores implementation.
type HighScore struct {
	Points int `json:"points" yaml:"points"`
	Rounds int `json:"rounds" yaml:"rounds"`
}

// HighScores persists the best run. ok is false when nothing is stored yet.
// SetHighScoreIfHigher stores hs only when nothing is stored or hs has more
// points, as one atomic step, and reports whether it stored.
type HighScores interface {
	HighScore(ctx context.Context) (best HighScore, ok bool, err error)
	SetHighScoreIfHigher(ctx context.Context, hs HighScore) (stored bool, err error)
}

// Scheduler runs fn once after d has elapsed on the host's clock.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Event names a change the presentation layer should pick up.
type Event string

const (
	EventPhase     Event = "phase"
	EventLetters   Event = "letters"
	EventWords     Event = "words"
	EventScore     Event = "score"
	EventTimer     Event = "timer"
	EventNextLevel Event = "next_level"
	EventRoundOver Event = "round_over"
)

// Notifier receives controller events. Implementations must not call back
// into the controller.
type Notifier interface {
	Notify(e Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(e Event)

func (f NotifierFunc) Notify(e Event) { f(e) }
