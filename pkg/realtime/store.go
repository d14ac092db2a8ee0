package realtime

import (
	"context"
	"sync"
	"time"
)

// Room holds state and a broadcaster for one room.
type Room[T any] struct {
	ID    string
	State T
	hub   *Broadcaster
}

// RoomStore manages rooms, their broadcasters and their tick loops.
type RoomStore[T any] struct {
	mu    sync.RWMutex
	rooms map[string]*Room[T]
	loops map[string]context.CancelFunc
	wakes map[string]chan struct{}
}

// NewRoomStore creates an empty room store.
func NewRoomStore[T any]() *RoomStore[T] {
	return &RoomStore[T]{
		rooms: make(map[string]*Room[T]),
		loops: make(map[string]context.CancelFunc),
		wakes: make(map[string]chan struct{}),
	}
}

// Create adds a room with the given id and state, and a new Broadcaster.
func (s *RoomStore[T]) Create(id string, state T) *Room[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &Room[T]{ID: id, State: state, hub: NewBroadcaster()}
	s.rooms[id] = r
	return r
}

// Get returns the room by ID if it exists.
func (s *RoomStore[T]) Get(id string) (*Room[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[id]
	return r, ok
}

// Delete stops the room's loop and removes the room.
func (s *RoomStore[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.loops[id]; ok {
		cancel()
	}
	delete(s.rooms, id)
}

// StopAll cancels every running loop.
func (s *RoomStore[T]) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cancel := range s.loops {
		cancel()
	}
}

// Publish notifies subscribers of the room's broadcaster. Unknown rooms are
// ignored; only Create makes rooms.
func (s *RoomStore[T]) Publish(id string, event string) {
	if hub, ok := s.Broadcaster(id); ok {
		hub.Publish(event)
	}
}

// Broadcaster returns the broadcaster for an existing room.
func (s *RoomStore[T]) Broadcaster(id string) (*Broadcaster, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil, false
	}
	return r.hub, true
}

// Len reports how many rooms exist.
func (s *RoomStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// TickFunc is called by RunLoop with the time elapsed since the previous call.
// It returns events to publish; stop true means exit the loop.
type TickFunc[T any] func(state T, elapsed time.Duration) (events []string, stop bool)

// RunLoop ticks the room every interval until tick asks to stop or the room
// is deleted. If a loop already exists for id, it is not started again.
func (s *RoomStore[T]) RunLoop(id string, interval time.Duration, getState func() T, tick TickFunc[T]) {
	s.mu.Lock()
	if _, ok := s.loops[id]; ok {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	wake := make(chan struct{}, 1)
	s.loops[id] = cancel
	s.wakes[id] = wake
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.loops, id)
			delete(s.wakes, id)
			s.mu.Unlock()
			cancel()
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		last := time.Now()
		for {
			now := time.Now()
			events, stop := tick(getState(), now.Sub(last))
			last = now
			if stop {
				return
			}
			// Publish right away so clients see the change on this tick,
			// not the next one.
			for _, e := range events {
				s.Publish(id, e)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			case <-wake:
			}
		}
	}()
}

// Wake unblocks the room's loop so it ticks immediately.
func (s *RoomStore[T]) Wake(id string) {
	s.mu.RLock()
	wake, ok := s.wakes[id]
	s.mu.RUnlock()
	if !ok {
		return
	}
	select {
	case wake <- struct{}{}:
	default:
	}
}
