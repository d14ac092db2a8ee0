package game

import (
	"math/rand"
	"sort"
	"testing"
)

func newTestSelection(target string) *Selection {
	return NewSelection(target, rand.New(rand.NewSource(7)))
}

func slotChars(slots []Slot) string {
	b := make([]byte, len(slots))
	for i, s := range slots {
		b[i] = s.Char
	}
	return string(b)
}

func sortedChars(s string) string {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

func assertPartition(t *testing.T, sel *Selection, target string) {
	t.Helper()
	all := slotChars(sel.Pool()) + slotChars(sel.Active())
	if sortedChars(all) != sortedChars(target) {
		t.Fatalf("pool+active %q is not a permutation of %q", all, target)
	}
	ids := map[int]bool{}
	for _, s := range append(sel.Pool(), sel.Active()...) {
		if ids[s.ID] {
			t.Fatalf("slot %d appears twice", s.ID)
		}
		ids[s.ID] = true
	}
	if sel.Candidate() != slotChars(sel.Active()) {
		t.Fatalf("candidate %q does not match active slots %q", sel.Candidate(), slotChars(sel.Active()))
	}
}

func TestSelection_SelectAndBackspace(t *testing.T) {
	sel := newTestSelection("LETTER")
	assertPartition(t, sel, "LETTER")

	if !sel.Select('T') || !sel.Select('E') || !sel.Select('T') {
		t.Fatal("selecting available letters should succeed")
	}
	if sel.Candidate() != "TET" {
		t.Errorf("Candidate %q, want TET", sel.Candidate())
	}
	if sel.Select('T') {
		t.Error("third T should not be available")
	}
	if sel.Select('Z') {
		t.Error("Z is not in the word")
	}
	assertPartition(t, sel, "LETTER")

	active := sel.Active()
	if active[0].ID == active[2].ID {
		t.Error("duplicate letters must be distinct slots")
	}

	if !sel.Backspace() {
		t.Fatal("Backspace with letters selected should succeed")
	}
	if sel.Candidate() != "TE" {
		t.Errorf("Candidate %q after backspace, want TE", sel.Candidate())
	}
	pool := sel.Pool()
	if pool[len(pool)-1].ID != active[2].ID {
		t.Error("backspaced slot should return to the end of the pool")
	}
	assertPartition(t, sel, "LETTER")

	sel.Backspace()
	sel.Backspace()
	if sel.Backspace() {
		t.Error("Backspace on empty candidate should be a no-op")
	}
	if sel.Candidate() != "" {
		t.Errorf("Candidate %q, want empty", sel.Candidate())
	}
	assertPartition(t, sel, "LETTER")
}

func TestSelection_Clear(t *testing.T) {
	sel := newTestSelection("GARDEN")
	for _, c := range []byte("DEN") {
		sel.Select(c)
	}
	sel.Clear()
	if sel.Candidate() != "" || len(sel.Active()) != 0 {
		t.Errorf("Clear left candidate %q", sel.Candidate())
	}
	if len(sel.Pool()) != 6 {
		t.Errorf("pool size %d, want 6", len(sel.Pool()))
	}
	tail := slotChars(sel.Pool()[3:])
	if tail != "DEN" {
		t.Errorf("cleared slots %q should return in selection order DEN", tail)
	}
	assertPartition(t, sel, "GARDEN")
}

func TestSelection_ShuffleKeepsActive(t *testing.T) {
	sel := newTestSelection("STAINED")
	sel.Select('S')
	sel.Select('A')
	before := sel.Active()
	for i := 0; i < 10; i++ {
		sel.Shuffle()
		assertPartition(t, sel, "STAINED")
	}
	after := sel.Active()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("shuffle moved active slot %d", i)
		}
	}
	if sel.Candidate() != "SA" {
		t.Errorf("Candidate %q, want SA", sel.Candidate())
	}
}

func TestSelection_RandomWalkKeepsInvariant(t *testing.T) {
	target := "BALLOON"
	sel := newTestSelection(target)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0, 1:
			sel.Select(target[rng.Intn(len(target))])
		case 2:
			sel.Backspace()
		case 3:
			if rng.Intn(5) == 0 {
				sel.Clear()
			} else {
				sel.Shuffle()
			}
		}
		assertPartition(t, sel, target)
	}
}
