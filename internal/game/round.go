package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"wordgame/pkg/realtime"
)

// Settings tunes the round clock, the scheduled delays and discovery.
type Settings struct {
	FirstLevelTime time.Duration
	LevelTime      time.Duration
	NextLevelDelay time.Duration
	RestartDelay   time.Duration
	ScanBudget     int
	RevealAll      bool
}

// DefaultSettings returns the standard timings: two minutes for level one,
// 80 seconds for later levels.
func DefaultSettings() Settings {
	return Settings{
		FirstLevelTime: 120 * time.Second,
		LevelTime:      80 * time.Second,
		NextLevelDelay: 4 * time.Second,
		RestartDelay:   11500 * time.Millisecond,
		ScanBudget:     500,
		RevealAll:      true,
	}
}

// High score banner timings. The banner is up for the first seconds after
// the dictionary loads, and again near the end of the round over pause.
const (
	highScoreBannerTime  = 3 * time.Second
	roundOverBannerFrom  = 7500 * time.Millisecond
	roundOverBannerUntil = 11250 * time.Millisecond
)

// Ports are the collaborators a Controller consumes. Scheduler is required;
// the rest fall back to no-op or default implementations.
type Ports struct {
	Scheduler  Scheduler
	HighScores HighScores
	Notifier   Notifier
	Rand       *rand.Rand
	Logger     *zerolog.Logger
}

// RoundState is the round-level view of the controller.
type RoundState struct {
	Mode          Phase
	LevelNumber   int
	TimeRemaining time.Duration
	Score         int
	RoundsPlayed  int
}

// Controller owns one player's round: the phase machine, the current level,
// its discovery entries and letter selection. It is not safe for concurrent
// use; one goroutine drives Tick and input.
type Controller struct {
	settings Settings
	sched    Scheduler
	scores   HighScores
	notify   Notifier
	rng      *rand.Rand
	log      zerolog.Logger

	dict    Dictionary
	state   RoundState
	timer   realtime.Countdown
	restart realtime.Countdown
	banner  realtime.Countdown
	level   *Level
	scan    *Scan
	entries []DiscoveryEntry
	sel     *Selection

	// epoch invalidates scheduled callbacks from an earlier level or round.
	epoch       int
	nextPending bool
	lastSecond  int
	bannerUp    bool
	best        HighScore
	hasBest     bool
	lastRound   HighScore
}

// NewController creates a controller in PhaseIdle.
func NewController(settings Settings, ports Ports) *Controller {
	c := &Controller{
		settings: settings,
		sched:    ports.Scheduler,
		scores:   ports.HighScores,
		notify:   ports.Notifier,
		rng:      ports.Rand,
		state:    RoundState{Mode: PhaseIdle},
	}
	if c.settings.ScanBudget < 1 {
		c.settings.ScanBudget = DefaultSettings().ScanBudget
	}
	if c.notify == nil {
		c.notify = NotifierFunc(func(Event) {})
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if ports.Logger != nil {
		c.log = *ports.Logger
	} else {
		c.log = zerolog.Nop()
	}
	return c
}

// Start requests the dictionary: Idle -> Loading.
func (c *Controller) Start() error {
	return c.setMode(PhaseLoading)
}

// DictionaryReady consumes the loaded dictionary and generates level one.
func (c *Controller) DictionaryReady(dict Dictionary) error {
	if c.state.Mode != PhaseLoading {
		return fmt.Errorf("%w: dictionary ready in %s", ErrInvalidTransition, c.state.Mode)
	}
	c.dict = dict
	c.banner.Reset(highScoreBannerTime)
	c.bannerUp = true
	return c.makeLevel(1)
}

// VisualsReady acknowledges the presentation layer: PreparingVisuals -> Active.
func (c *Controller) VisualsReady() error {
	if c.state.Mode != PhasePreparingVisuals {
		return fmt.Errorf("%w: visuals ready in %s", ErrInvalidTransition, c.state.Mode)
	}
	return c.setMode(PhaseActive)
}

// Tick advances the controller by elapsed host time. While generating it
// runs one bounded slice of the subword scan; while active it runs the clock;
// during round over it runs the restart countdown.
func (c *Controller) Tick(elapsed time.Duration) {
	c.banner.Tick(elapsed)
	defer c.checkBanner()
	switch mode := c.state.Mode; {
	case mode == PhaseRoundOver:
		c.restart.Tick(elapsed)
		if sec := c.restartSecond(); sec != c.lastSecond {
			c.lastSecond = sec
			c.notify.Notify(EventTimer)
		}
	case mode == PhaseGeneratingLevel:
		if !c.scan.Advance(c.settings.ScanBudget) {
			return
		}
		c.entries = NewEntries(c.level.SubWords, c.settings.RevealAll)
		c.sel = NewSelection(c.level.Target, c.rng)
		c.log.Debug().
			Int("level", c.level.Number).
			Int("subwords", len(c.level.SubWords)).
			Msg("subword scan complete")
		_ = c.setMode(PhasePreparingVisuals)
		c.notify.Notify(EventWords)
		c.notify.Notify(EventLetters)
	case mode.Ticking():
		expired := c.timer.Tick(elapsed)
		if sec := c.clockSecond(); sec != c.lastSecond {
			c.lastSecond = sec
			c.notify.Notify(EventTimer)
		}
		if expired {
			c.roundOver()
		}
	}
}

// HandleKeys applies a batch of typed characters in order. Letters select,
// backspace undoes, enter submits and space shuffles the pool. Outside
// PhaseActive the batch is ignored. The results of any submits are returned.
func (c *Controller) HandleKeys(input string) ([]ScoreResult, error) {
	if c.state.Mode != PhaseActive {
		return nil, nil
	}
	var results []ScoreResult
	for _, r := range input {
		switch {
		case r == '\b' || r == 0x7f:
			if c.sel.Backspace() {
				c.notify.Notify(EventLetters)
			}
		case r == '\n' || r == '\r':
			res, err := c.submit()
			if err != nil {
				return results, err
			}
			results = append(results, res)
		case r == ' ':
			c.sel.Shuffle()
			c.notify.Notify(EventLetters)
		default:
			up := unicode.ToUpper(r)
			if up < 'A' || up > 'Z' {
				continue
			}
			if c.sel.Select(byte(up)) {
				c.notify.Notify(EventLetters)
			}
		}
	}
	return results, nil
}

func (c *Controller) submit() (ScoreResult, error) {
	res, err := c.CheckWord(c.sel.Candidate())
	c.sel.Clear()
	c.notify.Notify(EventLetters)
	return res, err
}

// CheckWord scores candidate against the current level and adds the points
// to the round score. Typing the full target schedules the next level.
func (c *Controller) CheckWord(candidate string) (ScoreResult, error) {
	if c.state.Mode != PhaseActive {
		return ScoreResult{Candidate: candidate}, ErrNotActive
	}
	res := CheckWord(candidate, c.level, c.entries)
	if res.Points > 0 {
		c.state.Score += res.Points
		c.notify.Notify(EventWords)
		c.notify.Notify(EventScore)
	}
	if res.TargetMatch && !c.nextPending {
		c.nextPending = true
		epoch := c.epoch
		c.sched.After(c.settings.NextLevelDelay, func() {
			if c.epoch != epoch || c.state.Mode != PhaseActive {
				return
			}
			if err := c.makeLevel(c.state.LevelNumber + 1); err != nil {
				c.log.Error().Err(err).Msg("next level")
			}
		})
		c.notify.Notify(EventNextLevel)
	}
	return res, nil
}

func (c *Controller) makeLevel(number int) error {
	count := c.dict.LongWordCount()
	if count == 0 {
		return ErrEmptyDictionary
	}
	idx := c.rng.Intn(count)
	level, err := NewLevel(number, c.dict.LongWord(idx))
	if err != nil {
		return err
	}

	if err := c.setMode(PhaseGeneratingLevel); err != nil {
		return err
	}
	c.epoch++
	c.level = level
	c.scan = NewScan(level, c.dict.Words(), c.dict.MinWordLength())
	c.entries = nil
	c.sel = nil
	c.nextPending = false
	c.state.LevelNumber = number
	if number == 1 {
		c.timer.Reset(c.settings.FirstLevelTime)
		c.loadHighScore()
	} else {
		c.timer.Reset(c.settings.LevelTime)
	}
	c.lastSecond = c.clockSecond()
	c.log.Info().
		Int("level", number).
		Int("long_word", idx).
		Int("target_len", len(level.Target)).
		Msg("level generated")
	c.notify.Notify(EventTimer)
	return nil
}

func (c *Controller) roundOver() {
	_ = c.setMode(PhaseRoundOver)
	c.epoch++
	c.sel = nil
	c.entries = nil
	c.nextPending = false
	c.notify.Notify(EventRoundOver)

	c.lastRound = HighScore{Points: c.state.Score, Rounds: c.state.LevelNumber}
	c.saveHighScore(c.lastRound)
	c.log.Info().
		Int("score", c.lastRound.Points).
		Int("level", c.lastRound.Rounds).
		Msg("round over")

	c.state.RoundsPlayed++
	c.state.Score = 0
	c.state.LevelNumber = 0
	c.notify.Notify(EventScore)

	c.banner.Reset(0)
	c.restart.Reset(c.settings.RestartDelay)
	c.lastSecond = c.restartSecond()

	epoch := c.epoch
	c.sched.After(c.settings.RestartDelay, func() {
		if c.epoch != epoch || c.state.Mode != PhaseRoundOver {
			return
		}
		if err := c.makeLevel(1); err != nil {
			c.log.Error().Err(err).Msg("restart round")
		}
	})
}

// RestartIn returns the time left before a new round starts, or zero
// outside round over.
func (c *Controller) RestartIn() time.Duration {
	if c.state.Mode != PhaseRoundOver {
		return 0
	}
	return c.restart.Remaining()
}

// HighScoreVisible reports whether the high score banner is up.
func (c *Controller) HighScoreVisible() bool {
	if c.state.Mode == PhaseRoundOver {
		since := c.settings.RestartDelay - c.restart.Remaining()
		return since >= roundOverBannerFrom && since < roundOverBannerUntil
	}
	return c.banner.Remaining() > 0
}

func (c *Controller) checkBanner() {
	if up := c.HighScoreVisible(); up != c.bannerUp {
		c.bannerUp = up
		c.notify.Notify(EventScore)
	}
}

func (c *Controller) restartSecond() int {
	return int((c.restart.Remaining() + time.Second - 1) / time.Second)
}

func (c *Controller) loadHighScore() {
	c.hasBest = false
	if c.scores == nil {
		return
	}
	best, ok, err := c.scores.HighScore(context.Background())
	if err != nil {
		c.log.Error().Err(err).Msg("read high score")
		return
	}
	c.best, c.hasBest = best, ok
}

func (c *Controller) saveHighScore(run HighScore) {
	if c.scores == nil {
		return
	}
	stored, err := c.scores.SetHighScoreIfHigher(context.Background(), run)
	if err != nil {
		c.log.Error().Err(err).Msg("write high score")
		return
	}
	if !stored {
		// Another session may hold a better run than the one read at level one.
		c.loadHighScore()
		return
	}
	c.best, c.hasBest = run, true
}

func (c *Controller) setMode(target Phase) error {
	from := c.state.Mode
	if !from.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, target)
	}
	c.state.Mode = target
	c.log.Debug().Str("from", from.String()).Str("to", target.String()).Msg("phase")
	c.notify.Notify(EventPhase)
	return nil
}

func (c *Controller) clockSecond() int {
	return int(c.timer.Remaining() / time.Second)
}

// State returns the round-level fields.
func (c *Controller) State() RoundState {
	s := c.state
	s.TimeRemaining = c.timer.Remaining()
	return s
}

// Level returns the current level, or nil before the first one.
func (c *Controller) Level() *Level {
	return c.level
}

// Entries returns a copy of the discovery entries of the current level.
func (c *Controller) Entries() []DiscoveryEntry {
	return append([]DiscoveryEntry(nil), c.entries...)
}

// Pool returns the available letter slots, empty when no letters are live.
func (c *Controller) Pool() []Slot {
	if c.sel == nil {
		return nil
	}
	return c.sel.Pool()
}

// Active returns the selected letter slots in selection order.
func (c *Controller) Active() []Slot {
	if c.sel == nil {
		return nil
	}
	return c.sel.Active()
}

// Candidate returns the word being assembled.
func (c *Controller) Candidate() string {
	if c.sel == nil {
		return ""
	}
	return c.sel.Candidate()
}

// NextLevelPending reports whether the target was typed and the next level is scheduled.
func (c *Controller) NextLevelPending() bool {
	return c.nextPending
}

// HighScore returns the best run known when level one last started, or
// since the controller last improved it.
func (c *Controller) HighScore() (HighScore, bool) {
	return c.best, c.hasBest
}

// LastRound returns the score and level reached by the most recent round over.
func (c *Controller) LastRound() HighScore {
	return c.lastRound
}

// ScanProgress reports the subword scan position of the current level.
func (c *Controller) ScanProgress() (scanned int, total int) {
	if c.scan == nil {
		return 0, 0
	}
	return c.scan.Progress()
}
