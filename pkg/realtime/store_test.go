package realtime

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestNewRoomStore(t *testing.T) {
	s := NewRoomStore[string]()
	if s == nil {
		t.Fatal("NewRoomStore returned nil")
	}
}

func TestRoomStore_Create_Get(t *testing.T) {
	s := NewRoomStore[string]()
	s.Create("room1", "state1")
	room, ok := s.Get("room1")
	if !ok {
		t.Fatal("Get returned false for existing room")
	}
	if room.ID != "room1" {
		t.Errorf("room ID %q, want room1", room.ID)
	}
	if room.State != "state1" {
		t.Errorf("room State %q, want state1", room.State)
	}

	_, ok = s.Get("nonexistent")
	if ok {
		t.Error("Get should return false for missing ID")
	}
}

func TestRoomStore_Delete(t *testing.T) {
	s := NewRoomStore[string]()
	s.Create("r1", "x")
	s.Delete("r1")
	if _, ok := s.Get("r1"); ok {
		t.Error("Get found a deleted room")
	}
	s.Delete("r1")
}

func TestRoomStore_Publish(t *testing.T) {
	s := NewRoomStore[string]()
	s.Create("r1", "x")
	hub, ok := s.Broadcaster("r1")
	if !ok {
		t.Fatal("Broadcaster returned false for existing room")
	}
	ch, cancel := hub.Subscribe()
	defer cancel()

	s.Publish("r1", "event1")
	got := <-ch
	if got != "event1" {
		t.Errorf("got %q, want event1", got)
	}
}

func TestRoomStore_PublishAfterDelete(t *testing.T) {
	s := NewRoomStore[string]()
	s.Create("r1", "x")
	s.Delete("r1")

	s.Publish("r1", "late")
	if _, ok := s.Get("r1"); ok {
		t.Error("Publish recreated a deleted room")
	}
	if _, ok := s.Broadcaster("r1"); ok {
		t.Error("Broadcaster found a deleted room")
	}
	if n := s.Len(); n != 0 {
		t.Errorf("Len %d, want 0", n)
	}
}

func TestRoomStore_Wake_NoPanicWhenNoLoop(t *testing.T) {
	s := NewRoomStore[string]()
	s.Wake("nonexistent")
}

func TestRoomStore_RunLoopPublishesAndStops(t *testing.T) {
	s := NewRoomStore[string]()
	s.Create("r1", "x")
	hub, _ := s.Broadcaster("r1")
	ch, cancel := hub.Subscribe()
	defer cancel()

	var ticks atomic.Int32
	done := make(chan struct{})
	tick := func(state string, elapsed time.Duration) ([]string, bool) {
		if elapsed < 0 {
			t.Errorf("negative elapsed %v", elapsed)
		}
		n := ticks.Add(1)
		if n == 3 {
			close(done)
			return nil, true
		}
		return []string{state}, false
	}
	s.RunLoop("r1", time.Millisecond, func() string { return "tick" }, tick)
	// A second RunLoop for the same room is ignored.
	s.RunLoop("r1", time.Millisecond, func() string { return "dup" }, tick)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
	if got := <-ch; got != "tick" {
		t.Errorf("got %q, want tick", got)
	}
}

func TestRoomStore_DeleteCancelsLoop(t *testing.T) {
	s := NewRoomStore[string]()
	s.Create("r1", "x")
	var ticks atomic.Int32
	s.RunLoop("r1", time.Hour, func() string { return "x" }, func(string, time.Duration) ([]string, bool) {
		ticks.Add(1)
		return nil, false
	})
	s.Wake("r1")
	s.Delete("r1")

	time.Sleep(20 * time.Millisecond)
	after := ticks.Load()
	s.Wake("r1")
	time.Sleep(20 * time.Millisecond)
	if ticks.Load() != after {
		t.Errorf("loop ticked after Delete: %d -> %d", after, ticks.Load())
	}
}
