package viewmodel

import (
	"testing"
	"time"

	"wordgame/internal/game"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{120 * time.Second, "2:00"},
		{80 * time.Second, "1:20"},
		{69*time.Second + 900*time.Millisecond, "1:09"},
		{500 * time.Millisecond, "0:00"},
		{-time.Second, "0:00"},
	}
	for _, c := range cases {
		if got := FormatClock(c.in); got != c.want {
			t.Errorf("FormatClock(%v) %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHighScoreBanner(t *testing.T) {
	if got := HighScoreBanner(game.HighScore{}, false); got != "No high score set yet!" {
		t.Errorf("empty banner %q", got)
	}
	got := HighScoreBanner(game.HighScore{Points: 42, Rounds: 3}, true)
	if got != "Current High Score: 42 points in 3 rounds" {
		t.Errorf("banner %q", got)
	}
}

func TestWords(t *testing.T) {
	entries := []game.DiscoveryEntry{
		{Text: "DEN"},
		{Text: "RAGE", Found: true, Revealed: true},
	}
	views := Words(entries, 3)
	if views[0].Display() != "---" || views[0].Palette != 0 {
		t.Errorf("hidden entry %+v", views[0])
	}
	if views[1].Display() != "RAGE" || views[1].Palette != 1 || !views[1].Found {
		t.Errorf("found entry %+v", views[1])
	}
}

func TestFromSnapshot(t *testing.T) {
	snap := game.Snapshot{
		ID: "g1",
		State: game.RoundState{
			Mode:          game.PhaseActive,
			LevelNumber:   1,
			TimeRemaining: 95 * time.Second,
			Score:         7,
		},
		Pool:          []game.Slot{{ID: 0, Char: 'G'}, {ID: 1, Char: 'A'}},
		Active:        []game.Slot{{ID: 2, Char: 'R'}},
		Candidate:     "R",
		MinWordLength: 3,
		HighScore:     game.HighScore{Points: 9, Rounds: 2},
		HasHighScore:  true,
		ShowHighScore: true,
		ScanScanned:   5,
		ScanTotal:     10,
		LastTarget:    "GARDEN",
	}
	frag := FromSnapshot(snap)
	if frag.Clock != "1:35" || frag.Score != 7 || frag.Mode != "active" {
		t.Errorf("fragment %+v", frag)
	}
	if len(frag.Pool) != 2 || frag.Pool[0].Color != ColorDim || frag.Pool[0].Location != "pool" {
		t.Errorf("pool %+v", frag.Pool)
	}
	if len(frag.Active) != 1 || frag.Active[0].Char != "R" || frag.Active[0].Color != ColorSelected {
		t.Errorf("active %+v", frag.Active)
	}
	if frag.Banner != "Current High Score: 9 points in 2 rounds" {
		t.Errorf("banner %q", frag.Banner)
	}
	if frag.ScanPercent != 50 {
		t.Errorf("ScanPercent %d, want 50", frag.ScanPercent)
	}
	if frag.LastTarget != "" {
		t.Errorf("LastTarget %q shown outside round over", frag.LastTarget)
	}

	if frag.Restart != "" {
		t.Errorf("Restart %q shown outside round over", frag.Restart)
	}

	snap.State = game.RoundState{Mode: game.PhaseRoundOver, RoundsPlayed: 1}
	snap.LastRound = game.HighScore{Points: 7, Rounds: 2}
	snap.RestartIn = 8200 * time.Millisecond
	snap.ShowHighScore = false
	frag = FromSnapshot(snap)
	if !frag.RoundOver || frag.LastScore != 7 || frag.LastLevel != 2 || frag.LastTarget != "GARDEN" {
		t.Errorf("round over fragment %+v", frag)
	}
	if frag.Restart != "Restarting in 9" {
		t.Errorf("Restart %q, want Restarting in 9", frag.Restart)
	}
	if frag.Banner != "" {
		t.Errorf("banner %q shown while hidden", frag.Banner)
	}
}

func TestRestartText(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{11500 * time.Millisecond, "Restarting in 12"},
		{4 * time.Second, "Restarting in 4"},
		{100 * time.Millisecond, "Restarting in 1"},
		{0, "Restarting in 0"},
		{-time.Second, "Restarting in 0"},
	}
	for _, c := range cases {
		if got := RestartText(c.in); got != c.want {
			t.Errorf("RestartText(%v) %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFromSnapshot_BannerFollowsController(t *testing.T) {
	h := game.HighScore{Points: 3, Rounds: 1}
	for _, show := range []bool{true, false} {
		snap := game.Snapshot{
			State:         game.RoundState{Mode: game.PhaseActive, LevelNumber: 1},
			HighScore:     h,
			HasHighScore:  true,
			ShowHighScore: show,
		}
		frag := FromSnapshot(snap)
		if (frag.Banner != "") != show {
			t.Errorf("ShowHighScore=%v gave banner %q", show, frag.Banner)
		}
	}
}
