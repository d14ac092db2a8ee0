// Package tui hosts a round in the terminal with Bubble Tea. The model owns
// the controller and its timeline and drives both from tea.Tick.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"wordgame/internal/game"
	"wordgame/internal/viewmodel"
	"wordgame/pkg/realtime"
)

type tickMsg time.Time

type keyMap struct {
	Submit  key.Binding
	Undo    key.Binding
	Shuffle key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Undo, k.Shuffle, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Undo:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "undo")),
	Shuffle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "shuffle")),
	Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD866")).
			Italic(true)

	letterStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Margin(0, 1, 0, 0).
			Bold(true).
			Background(lipgloss.Color("#2C3446"))

	dimLetter      = letterStyle.Foreground(lipgloss.Color("#CCCCCC"))
	selectedLetter = letterStyle.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3D4B66"))

	wordStyle = lipgloss.NewStyle().Width(10)

	palette = []lipgloss.Color{"#7FB4FF", "#8FE388", "#FFB86C", "#FF7A90", "#C39BFF"}
)

// Model is the Bubble Tea model for one player.
type Model struct {
	ctrl     *game.Controller
	timeline *realtime.Timeline
	source   game.DictionarySource
	interval time.Duration
	last     time.Time
	help     help.Model
	log      zerolog.Logger
	result   *game.ScoreResult
	err      error
	width    int
}

// New builds a model whose controller starts loading at once. The
// dictionary is consumed from source as soon as it reports ready.
func New(source game.DictionarySource, settings game.Settings, scores game.HighScores, interval time.Duration, logger zerolog.Logger) *Model {
	if interval <= 0 {
		interval = game.DefaultTick
	}
	m := &Model{
		timeline: realtime.NewTimeline(),
		source:   source,
		interval: interval,
		help:     help.New(),
		log:      logger,
	}
	m.ctrl = game.NewController(settings, game.Ports{
		Scheduler:  m.timeline,
		HighScores: scores,
		Logger:     &logger,
	})
	if err := m.ctrl.Start(); err != nil {
		m.err = err
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		m.handleKeys(keyInput(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.advance(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

// advance runs one host frame. Visuals are acknowledged on the frame after
// the letters appear, by which time Bubble Tea has drawn them.
func (m *Model) advance(now time.Time) {
	var elapsed time.Duration
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	mode := m.ctrl.State().Mode
	switch {
	case mode == game.PhaseLoading && m.source.Ready():
		if err := m.ctrl.DictionaryReady(m.source.Dictionary()); err != nil {
			m.err = err
			m.log.Error().Err(err).Msg("start level")
		}
	case mode == game.PhasePreparingVisuals:
		_ = m.ctrl.VisualsReady()
	}

	m.timeline.Advance(elapsed)
	m.ctrl.Tick(elapsed)
	if m.ctrl.State().Mode != game.PhaseActive {
		m.result = nil
	}
}

func (m *Model) handleKeys(input string) {
	if input == "" {
		return
	}
	results, err := m.ctrl.HandleKeys(input)
	if err != nil {
		m.log.Error().Err(err).Msg("handle keys")
		return
	}
	if len(results) > 0 {
		last := results[len(results)-1]
		m.result = &last
	}
}

// keyInput maps a key press onto the controller's character stream.
func keyInput(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		return "\b"
	case tea.KeyEnter:
		return "\n"
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
		return string(msg.Runes)
	}
	return ""
}

func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press Esc to quit.\n", m.err)
	}
	round := viewmodel.FromSnapshot(game.SnapshotOf(m.ctrl))

	var b strings.Builder
	b.WriteString(titleStyle.Render("WORD GAME"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(fmt.Sprintf("Level %d   %s   Score %d", round.Level, round.Clock, round.Score)))
	b.WriteString("\n\n")

	if round.Banner != "" {
		b.WriteString(bannerStyle.Render(round.Banner) + "\n\n")
	}

	switch {
	case round.RoundOver:
		fmt.Fprintf(&b, "Time is up! You scored %d points and reached level %d.\n", round.LastScore, round.LastLevel)
		if round.LastTarget != "" {
			fmt.Fprintf(&b, "The word was %s.\n", round.LastTarget)
		}
		b.WriteString(round.Restart + "\n")
	case round.Mode == string(game.PhaseLoading):
		b.WriteString("Loading words...\n")
	case round.Loading:
		fmt.Fprintf(&b, "Preparing level... %d%%\n", round.ScanPercent)
	default:
		b.WriteString(renderWords(round.Words))
		b.WriteString("\n\n")
		b.WriteString(renderLetters(round.Active) + "\n\n")
		b.WriteString(renderLetters(round.Pool) + "\n")
		if round.NextLevel {
			b.WriteString("\n" + bannerStyle.Render("You found the big word! Next level coming up."))
		} else if m.result != nil && m.result.Points > 0 {
			b.WriteString("\n" + statusStyle.Render(fmt.Sprintf("+%d", m.result.Points)))
		}
	}

	b.WriteString("\n\n" + m.help.View(keys))
	return b.String()
}

func renderLetters(letters []viewmodel.LetterView) string {
	cells := make([]string, 0, len(letters))
	for _, l := range letters {
		style := dimLetter
		if l.Color == viewmodel.ColorSelected {
			style = selectedLetter
		}
		cells = append(cells, style.Render(l.Char))
	}
	if len(cells) == 0 {
		return " "
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderWords(words []viewmodel.WordView) string {
	const perRow = 5
	var rows []string
	for start := 0; start < len(words); start += perRow {
		end := min(start+perRow, len(words))
		cells := make([]string, 0, perRow)
		for _, w := range words[start:end] {
			style := wordStyle.Foreground(palette[w.Palette%len(palette)])
			if w.Found {
				style = style.Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
			}
			cells = append(cells, style.Render(w.Display()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Run starts the terminal program and blocks until the player quits.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
