// Package viewmodel turns game snapshots into the flat values the web
// templates and the terminal client render.
package viewmodel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"wordgame/internal/game"
)

// Letter colours. Pool letters are dim; selected letters are bright.
const (
	ColorDim      = "dim"
	ColorSelected = "selected"
)

// LetterView is one big letter on screen.
type LetterView struct {
	Char     string `json:"char"`
	Location string `json:"location"`
	Color    string `json:"color"`
}

// WordView is one discovery entry. Mask is shown instead of Text until the
// entry is revealed. Palette picks the colour band by word length.
type WordView struct {
	Text     string `json:"text"`
	Found    bool   `json:"found"`
	Revealed bool   `json:"revealed"`
	Mask     string `json:"mask"`
	Palette  int    `json:"palette"`
}

// Display returns the text to draw for the entry.
func (w WordView) Display() string {
	if w.Revealed {
		return w.Text
	}
	return w.Mask
}

// GamePage holds data for the main game page template.
type GamePage struct {
	Title  string
	Config GameConfig
	Round  RoundFragment
}

// GameConfig is handed to the page script as JSON.
type GameConfig struct {
	ID      string `json:"id"`
	MaxKeys int    `json:"maxKeys"` // largest key batch the server accepts
}

// RoundFragment holds everything the round panel shows.
type RoundFragment struct {
	GameID       string       `json:"id"`
	Mode         string       `json:"mode"`
	Level        int          `json:"level"`
	Clock        string       `json:"clock"`
	Score        int          `json:"score"`
	RoundsPlayed int          `json:"roundsPlayed"`
	Pool         []LetterView `json:"pool"`
	Active       []LetterView `json:"active"`
	Candidate    string       `json:"candidate"`
	Words        []WordView   `json:"words"`
	Banner       string       `json:"banner,omitempty"`
	NextLevel    bool         `json:"nextLevel"`
	Loading      bool         `json:"loading"`
	ScanPercent  int          `json:"scanPercent"`
	RoundOver    bool         `json:"roundOver"`
	Restart      string       `json:"restart,omitempty"`
	LastScore    int          `json:"lastScore"`
	LastLevel    int          `json:"lastLevel"`
	LastTarget   string       `json:"lastTarget,omitempty"`
	RoundKey     string       `json:"roundKey"`
}

// FormatClock renders d as m:ss, truncating to whole seconds.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// HighScoreBanner returns the text shown when level one starts.
func HighScoreBanner(best game.HighScore, ok bool) string {
	if !ok {
		return "No high score set yet!"
	}
	return fmt.Sprintf("Current High Score: %d points in %d rounds", best.Points, best.Rounds)
}

// RestartText returns the round over countdown, rounding up to whole seconds.
func RestartText(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("Restarting in %d", (d+time.Second-1)/time.Second)
}

// Letters converts slots to views at loc.
func Letters(slots []game.Slot, loc game.Location) []LetterView {
	color := ColorDim
	if loc == game.LocationActive {
		color = ColorSelected
	}
	out := make([]LetterView, 0, len(slots))
	for _, s := range slots {
		out = append(out, LetterView{
			Char:     string(s.Char),
			Location: string(loc),
			Color:    color,
		})
	}
	return out
}

// Words converts discovery entries to views.
func Words(entries []game.DiscoveryEntry, minWordLength int) []WordView {
	out := make([]WordView, 0, len(entries))
	for _, e := range entries {
		palette := len(e.Text) - minWordLength
		if palette < 0 {
			palette = 0
		}
		out = append(out, WordView{
			Text:     e.Text,
			Found:    e.Found,
			Revealed: e.Revealed,
			Mask:     strings.Repeat("-", len(e.Text)),
			Palette:  palette,
		})
	}
	return out
}

// FromSnapshot builds the round panel for a snapshot.
func FromSnapshot(snap game.Snapshot) RoundFragment {
	st := snap.State
	frag := RoundFragment{
		GameID:       snap.ID,
		Mode:         st.Mode.String(),
		Level:        st.LevelNumber,
		Clock:        FormatClock(st.TimeRemaining),
		Score:        st.Score,
		RoundsPlayed: st.RoundsPlayed,
		Pool:         Letters(snap.Pool, game.LocationPool),
		Active:       Letters(snap.Active, game.LocationActive),
		Candidate:    snap.Candidate,
		Words:        Words(snap.Entries, snap.MinWordLength),
		NextLevel:    snap.NextLevelPending,
		Loading:      st.Mode == game.PhaseLoading || st.Mode == game.PhaseGeneratingLevel,
		RoundOver:    st.Mode == game.PhaseRoundOver,
	}
	if snap.ScanTotal > 0 {
		frag.ScanPercent = snap.ScanScanned * 100 / snap.ScanTotal
	}
	if snap.ShowHighScore {
		frag.Banner = HighScoreBanner(snap.HighScore, snap.HasHighScore)
	}
	if frag.RoundOver {
		frag.Restart = RestartText(snap.RestartIn)
		frag.LastScore = snap.LastRound.Points
		frag.LastLevel = snap.LastRound.Rounds
		frag.LastTarget = snap.LastTarget
	}
	frag.RoundKey = strings.Join([]string{
		frag.Mode,
		strconv.Itoa(st.LevelNumber),
		strconv.Itoa(st.RoundsPlayed),
	}, "|")
	return frag
}
