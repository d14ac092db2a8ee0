package words

import (
	"sync"

	"github.com/rs/zerolog"

	"wordgame/internal/game"
)

// Loader parses a word list in the background. It becomes ready once, when
// parsing succeeds; a failed load never becomes ready.
type Loader struct {
	mu    sync.RWMutex
	list  *List
	err   error
	ready chan struct{}
}

// Load starts parse on its own goroutine and returns immediately.
func Load(parse func() (*List, error), logger zerolog.Logger) *Loader {
	l := &Loader{ready: make(chan struct{})}
	go func() {
		list, err := parse()
		l.mu.Lock()
		defer l.mu.Unlock()
		if err != nil {
			l.err = err
			logger.Error().Err(err).Msg("word list load failed")
			return
		}
		l.list = list
		logger.Info().
			Int("words", len(list.words)).
			Int("long_words", len(list.long)).
			Msg("word list loaded")
		close(l.ready)
	}()
	return l
}

// Ready reports whether the list has loaded.
func (l *Loader) Ready() bool {
	select {
	case <-l.ready:
		return true
	default:
		return false
	}
}

// Done is closed once the list has loaded.
func (l *Loader) Done() <-chan struct{} {
	return l.ready
}

// Dictionary returns the loaded list, or nil before Ready.
func (l *Loader) Dictionary() game.Dictionary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.list == nil {
		return nil
	}
	return l.list
}

// Err returns the load failure, if any.
func (l *Loader) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}
