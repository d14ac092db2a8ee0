package game

import (
	"fmt"
	"strings"
)

// Level is one round's target word and the subwords discovered for it. Only
// SubWords changes after construction, once its scan completes.
type Level struct {
	Number   int
	Target   string
	Letters  LetterCounts
	SubWords []string
}

// NewLevel validates target and derives its letter multiset. target is
// upper-cased first; anything left outside Alphabet is ErrInvalidAlphabet.
func NewLevel(number int, target string) (*Level, error) {
	word := strings.ToUpper(strings.TrimSpace(target))
	if word == "" {
		return nil, fmt.Errorf("%w: empty target word", ErrInvalidAlphabet)
	}
	counts, ok := CountLetters(word)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlphabet, target)
	}
	return &Level{
		Number:  number,
		Target:  word,
		Letters: counts,
	}, nil
}

// DiscoveryEntry tracks one subword of the level, indexed like Level.SubWords.
type DiscoveryEntry struct {
	Text     string
	Found    bool
	Revealed bool
}

// NewEntries builds one undiscovered entry per subword.
func NewEntries(subWords []string, revealAll bool) []DiscoveryEntry {
	entries := make([]DiscoveryEntry, len(subWords))
	for i, w := range subWords {
		entries[i] = DiscoveryEntry{Text: w, Revealed: revealAll}
	}
	return entries
}

func (e *DiscoveryEntry) markFound() {
	e.Found = true
	e.Revealed = true
}
