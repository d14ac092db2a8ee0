package game

import (
	"reflect"
	"testing"
)

func entriesFor(words ...string) []DiscoveryEntry {
	return NewEntries(words, false)
}

func TestCheckWord_ChainExample(t *testing.T) {
	level := &Level{Target: "SCATTER"}
	entries := entriesFor("CAT", "CATS", "SCAT")

	res := CheckWord("SCAT", level, entries)
	if res.Points != 3 {
		t.Errorf("Points %d, want 3", res.Points)
	}
	if !res.Matched {
		t.Error("Matched should be true")
	}
	if res.TargetMatch {
		t.Error("SCAT is not the target")
	}
	if !reflect.DeepEqual(res.Found, []int{2, 0}) {
		t.Errorf("Found %v, want [2 0]", res.Found)
	}
	if !entries[0].Found || entries[1].Found || !entries[2].Found {
		t.Errorf("found flags %v %v %v, want true false true", entries[0].Found, entries[1].Found, entries[2].Found)
	}
	if !entries[0].Revealed || entries[1].Revealed {
		t.Error("found entries should be revealed, others not")
	}
}

func TestCheckWord_ReverseOrderBonus(t *testing.T) {
	level := &Level{Target: "SCATTER"}
	entries := entriesFor("AT", "CAT", "CATS", "SCAT", "SCATTER")

	res := CheckWord("SCATTER", level, entries)
	// SCATTER 1, then SCAT 2, CAT 3, AT 4.
	if res.Points != 10 {
		t.Errorf("Points %d, want 10", res.Points)
	}
	if !reflect.DeepEqual(res.Found, []int{4, 3, 1, 0}) {
		t.Errorf("Found %v, want [4 3 1 0]", res.Found)
	}
	if !res.TargetMatch {
		t.Error("TargetMatch should be true")
	}
	if entries[2].Found {
		t.Error("CATS is not contained in SCATTER")
	}
}

func TestCheckWord_SkipsFoundContained(t *testing.T) {
	level := &Level{Target: "SCATTER"}
	entries := entriesFor("AT", "CAT", "SCAT")
	entries[1].Found = true

	res := CheckWord("SCAT", level, entries)
	// SCAT 1, AT 2; CAT already found.
	if res.Points != 3 {
		t.Errorf("Points %d, want 3", res.Points)
	}
}

func TestCheckWord_NoExactMatch(t *testing.T) {
	level := &Level{Target: "SCATTER"}
	entries := entriesFor("CAT", "SCAT")

	res := CheckWord("SCATS", level, entries)
	if res.Points != 0 || res.Matched || len(res.Found) != 0 {
		t.Errorf("got %+v, want no score", res)
	}
	for i, e := range entries {
		if e.Found {
			t.Errorf("entry %d marked found without an exact match", i)
		}
	}

	res = CheckWord("CA", level, entries)
	if res.Points != 0 {
		t.Errorf("substring of an entry scored %d", res.Points)
	}
}

func TestCheckWord_Idempotent(t *testing.T) {
	level := &Level{Target: "SCATTER"}
	entries := entriesFor("CAT", "SCAT")

	if res := CheckWord("SCAT", level, entries); res.Points != 3 {
		t.Fatalf("first submit Points %d, want 3", res.Points)
	}
	res := CheckWord("SCAT", level, entries)
	if res.Points != 0 || res.Matched {
		t.Errorf("second submit %+v, want 0 points", res)
	}
}

func TestCheckWord_Empty(t *testing.T) {
	level := &Level{Target: "SCATTER"}
	entries := entriesFor("CAT")
	res := CheckWord("", level, entries)
	if res.Points != 0 || res.Matched || res.TargetMatch {
		t.Errorf("empty candidate %+v, want zero result", res)
	}
}

func TestCheckWord_TargetWithoutEntry(t *testing.T) {
	level := &Level{Target: "GARDEN"}
	entries := entriesFor("DEN", "GAR")

	res := CheckWord("GARDEN", level, entries)
	if !res.TargetMatch {
		t.Error("TargetMatch should be reported even without a matching entry")
	}
	if res.Points != 0 {
		t.Errorf("Points %d, want 0 without an exact entry", res.Points)
	}
}
