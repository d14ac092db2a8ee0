package game

import "strings"

// Alphabet is the set of characters a target word may contain.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// LetterCounts is the letter multiset of a word: remaining count per letter A..Z.
type LetterCounts [26]int

// CountLetters builds the multiset of word. ok is false when word holds a
// character outside Alphabet; the counts of the letters seen so far are still returned.
func CountLetters(word string) (LetterCounts, bool) {
	var counts LetterCounts
	for i := 0; i < len(word); i++ {
		j, ok := letterIndex(word[i])
		if !ok {
			return counts, false
		}
		counts[j]++
	}
	return counts, true
}

// Fits reports whether word can be spelled from c, respecting multiplicity.
// It stops at the first letter that is missing or used up.
func (c LetterCounts) Fits(word string) bool {
	var used LetterCounts
	for i := 0; i < len(word); i++ {
		j, ok := letterIndex(word[i])
		if !ok {
			return false
		}
		used[j]++
		if used[j] > c[j] {
			return false
		}
	}
	return true
}

// Len returns the number of letters in the multiset.
func (c LetterCounts) Len() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Count returns the count for letter ch, or 0 outside the alphabet.
func (c LetterCounts) Count(ch byte) int {
	j, ok := letterIndex(ch)
	if !ok {
		return 0
	}
	return c[j]
}

func letterIndex(ch byte) (int, bool) {
	i := strings.IndexByte(Alphabet, ch)
	return i, i >= 0
}
