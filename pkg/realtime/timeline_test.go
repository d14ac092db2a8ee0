package realtime

import (
	"reflect"
	"testing"
	"time"
)

func TestTimeline_RunsInDeadlineOrder(t *testing.T) {
	tl := NewTimeline()
	var got []string
	tl.After(3*time.Second, func() { got = append(got, "c") })
	tl.After(time.Second, func() { got = append(got, "a") })
	tl.After(time.Second, func() { got = append(got, "b") })

	if n := tl.Advance(500 * time.Millisecond); n != 0 {
		t.Errorf("ran %d callbacks early", n)
	}
	if n := tl.Advance(time.Second); n != 2 {
		t.Errorf("ran %d, want 2", n)
	}
	if tl.Pending() != 1 {
		t.Errorf("Pending %d, want 1", tl.Pending())
	}
	tl.Advance(10 * time.Second)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order %v, want %v", got, want)
	}
	if tl.Now() != 11500*time.Millisecond {
		t.Errorf("Now %v, want 11.5s", tl.Now())
	}
}

func TestTimeline_CallbackSchedulesMore(t *testing.T) {
	tl := NewTimeline()
	var got []string
	tl.After(time.Second, func() {
		got = append(got, "first")
		tl.After(0, func() { got = append(got, "now") })
		tl.After(time.Second, func() { got = append(got, "later") })
	})
	tl.Advance(time.Second)
	if want := []string{"first", "now"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	tl.Advance(time.Second)
	if len(got) != 3 || got[2] != "later" {
		t.Errorf("got %v, want later to run", got)
	}
}

func TestTimeline_NegativeDelay(t *testing.T) {
	tl := NewTimeline()
	ran := false
	tl.After(-time.Second, func() { ran = true })
	tl.Advance(0)
	if !ran {
		t.Error("negative delay should run on the next Advance")
	}
}
