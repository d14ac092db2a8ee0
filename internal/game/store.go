package game

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wordgame/pkg/realtime"
)

// DefaultTick is the host loop interval used when none is configured.
const DefaultTick = 100 * time.Millisecond

// DefaultIdleTimeout is how long a session may sit without input and
// without subscribers before its loop stops and the session is removed.
const DefaultIdleTimeout = 10 * time.Minute

// Store holds sessions and delegates to realtime.RoomStore for lookup, tick
// loops and broadcast.
type Store struct {
	r        *realtime.RoomStore[*Session]
	source   DictionarySource
	settings Settings
	scores   HighScores
	tick     time.Duration
	idle     time.Duration
	log      zerolog.Logger
}

// NewStore creates an in-memory session store. Every session shares source
// and scores.
func NewStore(source DictionarySource, settings Settings, scores HighScores, tick time.Duration, logger zerolog.Logger) *Store {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Store{
		r:        realtime.NewRoomStore[*Session](),
		source:   source,
		settings: settings,
		scores:   scores,
		tick:     tick,
		idle:     DefaultIdleTimeout,
		log:      logger,
	}
}

// SetIdleTimeout changes the idle expiry for loops started afterwards. Zero
// keeps sessions until Remove.
func (s *Store) SetIdleTimeout(d time.Duration) {
	s.idle = d
}

// CreateSession starts a new round controller and registers its broadcaster.
func (s *Store) CreateSession() (*Session, error) {
	id := uuid.NewString()
	logger := s.log.With().Str("session", id).Logger()
	sess := NewSession(id, s.source, s.settings, s.scores, logger)
	if err := sess.Start(); err != nil {
		return nil, err
	}
	s.r.Create(id, sess)
	return sess, nil
}

// GetSession returns a session by ID if it exists.
func (s *Store) GetSession(id string) (*Session, bool) {
	room, ok := s.r.Get(id)
	if !ok || room.State == nil {
		return nil, false
	}
	return room.State, true
}

// Subscribe registers a listener for a session's events. ok is false when the
// session does not exist. Leaving counts as activity, so the idle timeout
// restarts when the last listener goes.
func (s *Store) Subscribe(id string) (events <-chan string, cancel func(), ok bool) {
	hub, ok := s.r.Broadcaster(id)
	if !ok {
		return nil, nil, false
	}
	ch, unsub := hub.Subscribe()
	return ch, func() {
		unsub()
		if sess, ok := s.GetSession(id); ok {
			sess.touch()
		}
	}, true
}

// Publish notifies subscribers of a session update with a typed event.
func (s *Store) Publish(id string, event Event) {
	s.r.Publish(id, string(event))
}

// Len reports how many sessions are held.
func (s *Store) Len() int {
	return s.r.Len()
}

// EnsureLoop starts the tick loop for a session if not already running. The
// loop removes the session once it has been idle for the idle timeout.
func (s *Store) EnsureLoop(id string) {
	getState := func() *Session {
		sess, _ := s.GetSession(id)
		return sess
	}
	tick := func(sess *Session, elapsed time.Duration) ([]string, bool) {
		if sess == nil {
			return nil, true
		}
		if s.expired(sess, time.Now()) {
			s.log.Info().Str("session", id).Dur("idle", s.idle).Msg("session expired")
			s.Remove(id)
			return nil, true
		}
		events := sess.Tick(elapsed)
		out := make([]string, len(events))
		for i, e := range events {
			out[i] = string(e)
		}
		return out, false
	}
	s.r.RunLoop(id, s.tick, getState, tick)
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	if s.idle <= 0 {
		return false
	}
	if hub, ok := s.r.Broadcaster(sess.ID); ok && hub.Len() > 0 {
		return false
	}
	return sess.IdleFor(now) >= s.idle
}

// Wake makes the session's loop tick immediately, publishing pending events.
func (s *Store) Wake(id string) {
	s.r.Wake(id)
}

// Remove stops a session's loop and forgets it.
func (s *Store) Remove(id string) {
	s.r.Delete(id)
}

// Close stops every running loop.
func (s *Store) Close() {
	s.r.StopAll()
}

// Session is one player's round hosted by a server. The mutex serializes
// ticks and input, so the controller only ever sees one caller.
type Session struct {
	mu         sync.Mutex
	ID         string
	CreatedAt  time.Time
	lastActive time.Time
	ctrl       *Controller
	timeline   *realtime.Timeline
	source     DictionarySource
	events     []Event
}

// NewSession creates an idle session. The controller's scheduler is a
// Timeline advanced by Tick.
func NewSession(id string, source DictionarySource, settings Settings, scores HighScores, logger zerolog.Logger) *Session {
	now := time.Now().UTC()
	sess := &Session{
		ID:         id,
		CreatedAt:  now,
		lastActive: now,
		timeline:   realtime.NewTimeline(),
		source:     source,
	}
	sess.ctrl = NewController(settings, Ports{
		Scheduler:  sess.timeline,
		HighScores: scores,
		Notifier:   NotifierFunc(sess.record),
		Logger:     &logger,
	})
	return sess
}

// Start requests the dictionary and, if it is already loaded, builds level one.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ctrl.Start(); err != nil {
		return err
	}
	return s.pumpLocked()
}

// Tick advances scheduled callbacks and the controller, and returns the
// events raised since the previous Tick or Drain.
func (s *Session) Tick(elapsed time.Duration) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeline.Advance(elapsed)
	s.ctrl.Tick(elapsed)
	if err := s.pumpLocked(); err != nil {
		s.ctrl.log.Error().Err(err).Msg("session tick")
	}
	return s.drainLocked()
}

// HandleKeys applies a batch of typed characters.
func (s *Session) HandleKeys(input string) ([]ScoreResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now().UTC()
	return s.ctrl.HandleKeys(input)
}

// CheckWord scores a whole word at once, bypassing letter selection.
func (s *Session) CheckWord(candidate string) (ScoreResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now().UTC()
	return s.ctrl.CheckWord(strings.ToUpper(strings.TrimSpace(candidate)))
}

// IdleFor reports how long the session has gone without input as of now.
func (s *Session) IdleFor(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActive)
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = time.Now().UTC()
	s.mu.Unlock()
}

// Drain returns and clears the pending events.
func (s *Session) Drain() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drainLocked()
}

// pumpLocked consumes the dictionary ready signal and acknowledges visuals;
// a web client renders from snapshots, so setup is done as soon as the
// letters exist.
func (s *Session) pumpLocked() error {
	switch s.ctrl.State().Mode {
	case PhaseLoading:
		if !s.source.Ready() {
			return nil
		}
		if err := s.ctrl.DictionaryReady(s.source.Dictionary()); err != nil {
			return err
		}
	case PhasePreparingVisuals:
		return s.ctrl.VisualsReady()
	}
	return nil
}

func (s *Session) record(e Event) {
	for _, pending := range s.events {
		if pending == e {
			return
		}
	}
	s.events = append(s.events, e)
}

func (s *Session) drainLocked() []Event {
	out := s.events
	s.events = nil
	return out
}

// Snapshot captures the state needed for rendering UI fragments.
type Snapshot struct {
	ID               string
	State            RoundState
	Pool             []Slot
	Active           []Slot
	Candidate        string
	Entries          []DiscoveryEntry
	MinWordLength    int
	NextLevelPending bool
	HighScore        HighScore
	HasHighScore     bool
	ShowHighScore    bool
	RestartIn        time.Duration
	LastRound        HighScore
	LastTarget       string
	ScanScanned      int
	ScanTotal        int
}

// Snapshot returns a consistent view of the current session state. The
// target word is only included once the round is over.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotOf(s.ID, s.ctrl)
}

func snapshotOf(id string, c *Controller) Snapshot {
	best, hasBest := c.HighScore()
	scanned, total := c.ScanProgress()
	snap := Snapshot{
		ID:               id,
		State:            c.State(),
		Pool:             c.Pool(),
		Active:           c.Active(),
		Candidate:        c.Candidate(),
		Entries:          c.Entries(),
		NextLevelPending: c.NextLevelPending(),
		HighScore:        best,
		HasHighScore:     hasBest,
		ShowHighScore:    c.HighScoreVisible(),
		RestartIn:        c.RestartIn(),
		LastRound:        c.LastRound(),
		ScanScanned:      scanned,
		ScanTotal:        total,
	}
	if c.dict != nil {
		snap.MinWordLength = c.dict.MinWordLength()
	}
	if snap.State.Mode == PhaseRoundOver && c.level != nil {
		snap.LastTarget = c.level.Target
	}
	return snap
}

// SnapshotOf exposes the snapshot of a controller driven outside a Session.
func SnapshotOf(c *Controller) Snapshot {
	return snapshotOf("", c)
}
