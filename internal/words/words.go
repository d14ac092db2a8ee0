// Package words loads the word list behind the game's Dictionary port.
//
// A list keeps every alphabetic word between the minimum length and the
// long-word length, upper-cased, in file order. Long words (exactly the
// long-word length) are the pool target words are drawn from.
package words

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed words/*.txt
var wordsFS embed.FS

const (
	DefaultMinWordLength  = 3
	DefaultLongWordLength = 7
)

// ErrNoLongWords is returned when a list holds no word of the long-word length.
var ErrNoLongWords = errors.New("words: no long words in list")

// List is a parsed word list. It implements game.Dictionary.
type List struct {
	words     []string
	long      []string
	minLength int
}

// Parse reads one word per line from r. Lines are trimmed and upper-cased;
// anything non-alphabetic or outside [minLen, longLen] is skipped.
func Parse(r io.Reader, minLen, longLen int) (*List, error) {
	if minLen < 1 {
		minLen = 1
	}
	if longLen < minLen {
		return nil, fmt.Errorf("words: long word length %d below minimum %d", longLen, minLen)
	}
	list := &List{minLength: minLen}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if len(w) < minLen || len(w) > longLen || !isAlpha(w) {
			continue
		}
		list.words = append(list.words, w)
		if len(w) == longLen {
			list.long = append(list.long, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(list.long) == 0 {
		return nil, ErrNoLongWords
	}
	return list, nil
}

// Embedded parses the word list compiled into the binary for lang.
func Embedded(lang string, minLen, longLen int) (*List, error) {
	name := strings.TrimSpace(lang)
	if name == "" {
		name = "en"
	}
	f, err := wordsFS.Open("words/" + name + ".txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, minLen, longLen)
}

// Open parses the word list file at path.
func Open(path string, minLen, longLen int) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, minLen, longLen)
}

// LongWordCount returns the size of the long-word pool.
func (l *List) LongWordCount() int { return len(l.long) }

// LongWord returns the i-th long word.
func (l *List) LongWord(i int) string { return l.long[i] }

// Words returns every word in the list. Callers must not modify it.
func (l *List) Words() []string { return l.words }

// MinWordLength returns the shortest word length kept.
func (l *List) MinWordLength() int { return l.minLength }

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
