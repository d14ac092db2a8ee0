package game

import (
	"sort"
	"strings"
)

// Scan finds the subwords of one level incrementally. Each Advance call
// examines at most budget dictionary words and remembers where it stopped, so
// a host can interleave discovery with ticks and input. Dropping a Scan
// abandons it.
type Scan struct {
	level  *Level
	words  []string
	minLen int
	pos    int
	seen   map[string]struct{}
	hits   []string
	done   bool
}

// NewScan prepares a scan of words for level. A minLen below 1 is treated as 1.
func NewScan(level *Level, words []string, minLen int) *Scan {
	if minLen < 1 {
		minLen = 1
	}
	return &Scan{
		level:  level,
		words:  words,
		minLen: minLen,
		seen:   make(map[string]struct{}),
	}
}

// Progress reports how many dictionary words have been examined out of the total.
func (s *Scan) Progress() (scanned int, total int) {
	return s.pos, len(s.words)
}

// Done reports whether the level's SubWords are final.
func (s *Scan) Done() bool {
	return s.done
}

// Advance examines up to budget more words and reports whether the scan is
// complete. On completion the level's SubWords hold the deduplicated matches
// sorted by length, then alphabetically.
func (s *Scan) Advance(budget int) bool {
	if s.done {
		return true
	}
	if budget < 1 {
		budget = 1
	}
	end := s.pos + budget
	if end > len(s.words) {
		end = len(s.words)
	}
	targetLen := len(s.level.Target)
	for ; s.pos < end; s.pos++ {
		w := strings.ToUpper(s.words[s.pos])
		if len(w) < s.minLen || len(w) > targetLen {
			continue
		}
		if _, dup := s.seen[w]; dup {
			continue
		}
		if !s.level.Letters.Fits(w) {
			continue
		}
		s.seen[w] = struct{}{}
		s.hits = append(s.hits, w)
	}
	if s.pos < len(s.words) {
		return false
	}
	sortSubWords(s.hits)
	if s.hits == nil {
		s.hits = []string{}
	}
	s.level.SubWords = s.hits
	s.done = true
	return true
}

// Discover returns every word in words that fits in target's letters and is
// at least minLen long, deduplicated and sorted by length then alphabetically.
// It fails only when target holds characters outside Alphabet.
func Discover(target string, words []string, minLen int) ([]string, error) {
	level, err := NewLevel(1, target)
	if err != nil {
		return nil, err
	}
	scan := NewScan(level, words, minLen)
	for !scan.Advance(len(words)) {
	}
	return level.SubWords, nil
}

func sortSubWords(words []string) {
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) == len(words[j]) {
			return words[i] < words[j]
		}
		return len(words[i]) < len(words[j])
	})
}
