package termui

import (
	"strings"
	"testing"

	"go-hangman/internal/app"
	"go-hangman/internal/round"
	"go-hangman/internal/utils"
	"go-hangman/internal/words"

	"github.com/gdamore/tcell/v2"
)

func visibleSet(parts ...round.Part) map[round.Part]bool {
	v := make(map[round.Part]bool)
	for _, p := range parts {
		v[p] = true
	}
	return v
}

func TestFigureArt(t *testing.T) {
	cases := []struct {
		name    string
		visible map[round.Part]bool
		style   app.FigureStyle
		want    []string // строки 2..5
	}{
		{
			name:    "full figure with top hat",
			visible: visibleSet(round.RemovalOrder[:]...),
			style:   app.StyleTopHat,
			want:    []string{"  #   |", "  O   |", " /|\\  |", " / \\  |"},
		},
		{
			name:    "legs removed",
			visible: visibleSet(round.Head, round.Body, round.LeftArm, round.RightArm),
			style:   app.StylePlain,
			want:    []string{"      |", "  O   |", " /|\\  |", "      |"},
		},
		{
			name:    "hat disappears with the head",
			visible: visibleSet(),
			style:   app.StyleWitch,
			want:    []string{"      |", "      |", "      |", "      |"},
		},
		{
			name:    "witch hat",
			visible: visibleSet(round.Head),
			style:   app.StyleWitch,
			want:    []string{"  ^   |", "  O   |", "      |", "      |"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			art := FigureArt(c.visible, c.style)
			if len(art) != len(gallowsArt) {
				t.Fatalf("art has %d rows", len(art))
			}
			for i, want := range c.want {
				if got := art[hatRow+i]; got != want {
					t.Errorf("row %d = %q, want %q", hatRow+i, got, want)
				}
			}
		})
	}
}

func TestSpacedWord(t *testing.T) {
	if got := SpacedWord([]rune("C_T")); got != "C _ T" {
		t.Errorf("SpacedWord = %q", got)
	}
	if got := SpacedWord(nil); got != "" {
		t.Errorf("SpacedWord(nil) = %q", got)
	}
}

func TestGridPosition(t *testing.T) {
	cases := []struct {
		x, y     float64
		col, row int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{250, 250, 40, 12, true},
		{499, 499, 79, 23, true},
		{100, -5, 0, 0, false},
		{500, 10, 0, 0, false},
	}
	for _, c := range cases {
		col, row, ok := GridPosition(c.x, c.y, 500, 500, 80, 24)
		if ok != c.ok || (ok && (col != c.col || row != c.row)) {
			t.Errorf("GridPosition(%v, %v) = %d, %d, %v", c.x, c.y, col, row, ok)
		}
	}
}

func newTestLoop(t *testing.T, word string) (*Loop, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	game := app.NewGame(words.StaticSource{word}, utils.NewPRNGService(3))
	return NewLoop(screen, game), screen
}

func rowText(s tcell.SimulationScreen, row, from, n int) string {
	var b strings.Builder
	for x := from; x < from+n; x++ {
		ch, _, _, _ := s.GetContent(x, row)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestLoopPlaysARound(t *testing.T) {
	l, screen := newTestLoop(t, "CAT")

	l.Tick(0)
	if got := rowText(screen, 0, artLeft, 7); got != "HANGMAN" {
		t.Errorf("title = %q", got)
	}

	for _, key := range []rune{'2', ' '} {
		if !l.HandleKey(tcell.KeyRune, key) {
			t.Fatal("loop asked to quit")
		}
	}
	if l.game.Mode() != app.ModeRound {
		t.Fatalf("mode = %s, want round", l.game.Mode())
	}

	l.HandleKey(tcell.KeyRune, 'c')
	l.HandleKey(tcell.KeyRune, 'z')
	l.Tick(1.0 / 30)
	if got := rowText(screen, wordRow, artLeft, 5); got != "C _ _" {
		t.Errorf("word row = %q", got)
	}
	if got := rowText(screen, wrongRow, artLeft, 8); got != "Wrong: Z" {
		t.Errorf("wrong row = %q", got)
	}

	l.HandleKey(tcell.KeyRune, 'a')
	l.HandleKey(tcell.KeyRune, 't')
	if l.game.Round().Phase() != round.Won {
		t.Fatalf("phase = %s", l.game.Round().Phase())
	}
	l.Tick(1.0 / 30)
	if got := rowText(screen, statusRow, artLeft, 8); got != "You Win!" {
		t.Errorf("status = %q", got)
	}

	l.HandleKey(tcell.KeyEnter, 0)
	if l.game.Mode() != app.ModeSelect {
		t.Errorf("enter after win: mode = %s", l.game.Mode())
	}
}

func TestLossShowsWord(t *testing.T) {
	l, screen := newTestLoop(t, "DOG")
	l.HandleKey(tcell.KeyRune, '1')
	l.HandleKey(tcell.KeyEnter, 0)
	for _, ch := range "xyzqwv" {
		l.HandleKey(tcell.KeyRune, ch)
	}
	l.Tick(0)
	if got := rowText(screen, statusRow, artLeft+11, 9); got != "Word: DOG" {
		t.Errorf("status = %q", got)
	}
}

func TestPauseFreezesInput(t *testing.T) {
	l, _ := newTestLoop(t, "CAT")
	l.HandleKey(tcell.KeyRune, '1')
	l.HandleKey(tcell.KeyF9, 0)
	if !l.Paused() {
		t.Fatal("F9 did not pause")
	}
	l.HandleKey(tcell.KeyEnter, 0)
	l.Tick(1)
	if l.game.Mode() != app.ModeReady || l.game.GetGameTime() != 0 {
		t.Errorf("paused loop changed the game: mode=%s time=%v", l.game.Mode(), l.game.GetGameTime())
	}
	l.HandleKey(tcell.KeyF9, 0)
	l.HandleKey(tcell.KeyEnter, 0)
	if l.game.Mode() != app.ModeRound {
		t.Errorf("mode after resume = %s", l.game.Mode())
	}
}

func TestQuitKeys(t *testing.T) {
	l, _ := newTestLoop(t, "CAT")
	if l.HandleKey(tcell.KeyEscape, 0) {
		t.Error("Esc should quit")
	}
	if l.HandleKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl-C should quit")
	}
}
