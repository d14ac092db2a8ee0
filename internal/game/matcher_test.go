package game

import (
	"errors"
	"reflect"
	"testing"
)

func TestDiscover_Garden(t *testing.T) {
	dict := []string{"GARDEN", "RAGE", "RAN", "DEN", "GAR", "RED"}
	got, err := Discover("GARDEN", dict, 3)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{"DEN", "GAR", "RAN", "RED", "RAGE", "GARDEN"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscover_RespectsMultiplicity(t *testing.T) {
	dict := []string{"EEL", "TEE", "TEEN", "NET", "TENT", "TEN"}
	got, err := Discover("TEEN", dict, 3)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	// TENT needs two Ts; EEL needs an L.
	want := []string{"NET", "TEE", "TEN", "TEEN"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestDiscover_Properties(t *testing.T) {
	target := "STAINED"
	dict := []string{
		"SAT", "TAN", "TAN", "DEN", "SIN", "SAINT", "STAIN", "SATIN", "DINES",
		"STEAD", "ZEN", "ADD", "SEEN", "TEA", "STAINED", "DETAINS", "SANDIEST", "AT",
	}
	got, err := Discover(target, dict, 3)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	targetCounts, _ := CountLetters(target)
	seen := map[string]bool{}
	for i, w := range got {
		if len(w) < 3 {
			t.Errorf("%q shorter than minimum", w)
		}
		counts, ok := CountLetters(w)
		if !ok {
			t.Fatalf("%q outside alphabet", w)
		}
		for j := range counts {
			if counts[j] > targetCounts[j] {
				t.Errorf("%q uses %c more often than %s", w, 'A'+j, target)
			}
		}
		if seen[w] {
			t.Errorf("%q returned twice", w)
		}
		seen[w] = true
		if i > 0 {
			prev := got[i-1]
			if len(prev) > len(w) || (len(prev) == len(w) && prev > w) {
				t.Errorf("order broken at %q, %q", prev, w)
			}
		}
	}
	for _, w := range []string{"ZEN", "ADD", "SEEN", "SANDIEST", "AT"} {
		if seen[w] {
			t.Errorf("%q should not be a subword of %s", w, target)
		}
	}
	for _, w := range []string{"SAT", "TAN", "SAINT", "DETAINS", "STAINED"} {
		if !seen[w] {
			t.Errorf("%q missing", w)
		}
	}
}

func TestDiscover_EmptyResults(t *testing.T) {
	got, err := Discover("GARDEN", nil, 3)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty list gave %v", got)
	}

	got, err = Discover("CAT", []string{"CAT", "ACT"}, 4)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("minLength above target length gave %v", got)
	}
}

func TestDiscover_NormalizesCase(t *testing.T) {
	got, err := Discover("garden", []string{"rage", "Den"}, 3)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{"DEN", "RAGE"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}
}

func TestNewLevel_TrimsAndUpperCases(t *testing.T) {
	for _, target := range []string{"garden", " Garden\n", "\tGARDEN "} {
		level, err := NewLevel(1, target)
		if err != nil {
			t.Fatalf("NewLevel(%q): %v", target, err)
		}
		if level.Target != "GARDEN" {
			t.Errorf("NewLevel(%q).Target %q, want GARDEN", target, level.Target)
		}
	}
	// Inner whitespace is not trimmed away.
	for _, target := range []string{"gar den", "  ", "gär"} {
		if _, err := NewLevel(1, target); !errors.Is(err, ErrInvalidAlphabet) {
			t.Errorf("NewLevel(%q) err = %v, want ErrInvalidAlphabet", target, err)
		}
	}
}

func TestDiscover_InvalidAlphabet(t *testing.T) {
	for _, target := range []string{"GAR-DEN", "CAFÉ", "", "AB1"} {
		_, err := Discover(target, []string{"CAT"}, 3)
		if !errors.Is(err, ErrInvalidAlphabet) {
			t.Errorf("Discover(%q) err = %v, want ErrInvalidAlphabet", target, err)
		}
		if !errors.Is(err, ErrPrecondition) {
			t.Errorf("Discover(%q) err = %v, want ErrPrecondition kind", target, err)
		}
	}
}

func TestScan_AdvanceInChunks(t *testing.T) {
	dict := []string{"GARDEN", "RAGE", "RAN", "DEN", "GAR", "RED", "DANGER", "ZZZ", "RAN"}
	level, err := NewLevel(1, "GARDEN")
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	scan := NewScan(level, dict, 3)

	calls := 0
	for !scan.Advance(2) {
		calls++
		scanned, total := scan.Progress()
		if scanned != calls*2 || total != len(dict) {
			t.Fatalf("progress %d/%d after %d calls", scanned, total, calls)
		}
		if level.SubWords != nil {
			t.Fatal("SubWords set before the scan finished")
		}
	}
	if calls != 4 {
		t.Errorf("incomplete calls %d, want 4", calls)
	}
	if !scan.Done() {
		t.Error("Done should be true")
	}

	want, _ := Discover("GARDEN", dict, 3)
	if !reflect.DeepEqual(level.SubWords, want) {
		t.Errorf("chunked scan %v, one pass %v", level.SubWords, want)
	}
	if !scan.Advance(2) {
		t.Error("Advance after completion should report done")
	}
}

func TestScan_AbandonedScanLeavesLevelUntouched(t *testing.T) {
	first, _ := NewLevel(1, "GARDEN")
	scan := NewScan(first, []string{"RAN", "DEN", "GAR"}, 3)
	scan.Advance(1)

	second, _ := NewLevel(2, "STAINED")
	next := NewScan(second, []string{"SAT", "TAN"}, 3)
	for !next.Advance(10) {
	}
	if first.SubWords != nil {
		t.Errorf("abandoned level got SubWords %v", first.SubWords)
	}
	if len(second.SubWords) != 2 {
		t.Errorf("second level SubWords %v, want 2 words", second.SubWords)
	}
}

func TestLetterCounts(t *testing.T) {
	c, ok := CountLetters("LETTER")
	if !ok {
		t.Fatal("CountLetters rejected LETTER")
	}
	if c.Len() != 6 {
		t.Errorf("Len %d, want 6", c.Len())
	}
	if c.Count('T') != 2 || c.Count('E') != 2 || c.Count('Z') != 0 || c.Count('-') != 0 {
		t.Errorf("unexpected counts %v", c)
	}
	if !c.Fits("TREE") {
		t.Error("TREE needs two Es and one R: should fit")
	}
	if c.Fits("TERSE") {
		t.Error("TERSE needs an S: should not fit")
	}
	if c.Fits("tree") {
		t.Error("lowercase letters are outside the alphabet")
	}
}
