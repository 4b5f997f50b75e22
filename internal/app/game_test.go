package app

import (
	"errors"
	"testing"

	"go-hangman/internal/confetti"
	"go-hangman/internal/event"
	"go-hangman/internal/round"
	"go-hangman/internal/utils"
	"go-hangman/internal/words"
)

func newTestGame(t *testing.T, list ...string) *Game {
	t.Helper()
	return NewGame(words.StaticSource(list), utils.NewPRNGService(11))
}

func readyGame(t *testing.T, list ...string) *Game {
	t.Helper()
	g := newTestGame(t, list...)
	if err := g.ChooseStyle(StylePlain); err != nil {
		t.Fatalf("ChooseStyle: %v", err)
	}
	return g
}

func TestStartRoundRequiresFigure(t *testing.T) {
	g := newTestGame(t, "CAT")
	if err := g.StartRound(); !errors.Is(err, ErrNoFigure) {
		t.Fatalf("StartRound err = %v, want ErrNoFigure", err)
	}
	if _, err := g.Guess('C'); !errors.Is(err, ErrWrongMode) {
		t.Errorf("Guess before start err = %v, want ErrWrongMode", err)
	}
}

func TestWinActivatesConfettiOnce(t *testing.T) {
	g := readyGame(t, "GO")
	if err := g.StartRound(); err != nil {
		t.Fatal(err)
	}
	g.Guess('G')
	if g.Confetti().Activations() != 0 {
		t.Fatal("confetti activated before the win")
	}
	g.Guess('O')
	g.Guess('O')

	if g.Round().Phase() != round.Won {
		t.Fatalf("phase = %s, want Won", g.Round().Phase())
	}
	if n := g.Confetti().Activations(); n != 1 {
		t.Errorf("confetti activated %d times, want 1", n)
	}
	f := g.Frame()
	if !f.Celebrating || len(f.Particles) == 0 {
		t.Errorf("frame after win: celebrating=%v particles=%d", f.Celebrating, len(f.Particles))
	}
}

func TestConfettiClearsWithUpdates(t *testing.T) {
	g := readyGame(t, "GO")
	g.StartRound()
	g.Guess('G')
	g.Guess('O')

	for i := 0; i < 30*20; i++ {
		g.Update(1.0 / 30)
	}
	if g.Confetti().State() != confetti.Idle {
		t.Errorf("confetti still %s after 20s", g.Confetti().State())
	}
	if g.GetGameTime() < 19 {
		t.Errorf("game time = %v", g.GetGameTime())
	}
}

func TestUpdateClampsLargeDelta(t *testing.T) {
	g := newTestGame(t, "GO")
	g.Update(5)
	if g.GetGameTime() > 0.11 {
		t.Errorf("game time = %v, want clamped step", g.GetGameTime())
	}
}

func TestStartRoundDiscardsActiveConfetti(t *testing.T) {
	g := readyGame(t, "GO")
	g.StartRound()
	g.Guess('G')
	g.Guess('O')
	g.Restart()
	g.ChooseStyle(StyleWitch)
	if err := g.StartRound(); err != nil {
		t.Fatal(err)
	}
	if g.Confetti().State() != confetti.Idle || len(g.Frame().Particles) != 0 {
		t.Error("stale confetti survived a new round")
	}
	if g.Frame().Round.Remaining != round.PartCount {
		t.Error("new round did not reseed parts")
	}
}

func TestKeyboardFlow(t *testing.T) {
	g := newTestGame(t, "CAT")

	g.HandleRune('9')
	if g.Mode() != ModeSelect {
		t.Fatalf("unknown key changed mode to %s", g.Mode())
	}
	g.HandleRune('3')
	if g.Mode() != ModeReady || g.Style() != StyleWitch {
		t.Fatalf("after '3' mode=%s style=%s", g.Mode(), g.Style())
	}
	g.HandleRune('c')
	if g.Mode() != ModeReady {
		t.Fatal("letter started the round")
	}
	g.HandleRune(' ')
	if g.Mode() != ModeRound || g.Round().Phase() != round.InProgress {
		t.Fatalf("space did not start the round: mode=%s", g.Mode())
	}

	g.Confirm()
	if g.Mode() != ModeRound {
		t.Fatal("enter during the round restarted it")
	}
	for _, r := range "cat" {
		g.HandleRune(r)
	}
	if g.Round().Phase() != round.Won {
		t.Fatalf("phase = %s", g.Round().Phase())
	}
	g.HandleRune('x')
	if len(g.Round().Wrong()) != 0 {
		t.Error("guess accepted after the round ended")
	}

	g.Confirm()
	if g.Mode() != ModeSelect {
		t.Errorf("enter after the round: mode = %s, want select", g.Mode())
	}
}

func TestLossRevealsWordInFrame(t *testing.T) {
	g := readyGame(t, "DOG")
	g.Confirm()
	for _, r := range "XYZQWV" {
		g.Guess(r)
	}
	f := g.Frame()
	if f.Round.Phase != round.Lost || f.Round.Word != "DOG" {
		t.Errorf("frame = %+v", f.Round)
	}
	if f.Celebrating {
		t.Error("confetti on a loss")
	}
}

func TestRestartOnlyAfterRoundEnds(t *testing.T) {
	g := readyGame(t, "DOG")
	if err := g.Restart(); !errors.Is(err, ErrWrongMode) {
		t.Errorf("restart from ready err = %v", err)
	}
	g.StartRound()
	if err := g.Restart(); !errors.Is(err, ErrWrongMode) {
		t.Errorf("restart mid-round err = %v", err)
	}
	if err := g.ChooseStyle(StyleTopHat); !errors.Is(err, ErrWrongMode) {
		t.Errorf("choose style mid-round err = %v", err)
	}
}

type figureRecorder struct{ styles []FigureStyle }

func (r *figureRecorder) OnEvent(e event.Event) {
	if s, ok := e.Data.(FigureStyle); ok {
		r.styles = append(r.styles, s)
	}
}

func TestChooseStyleDispatchesEvent(t *testing.T) {
	g := newTestGame(t, "CAT")
	rec := &figureRecorder{}
	g.EventDispatcher.Subscribe(event.FigureChosen, rec)
	g.ChooseStyle(StyleTopHat)
	if len(rec.styles) != 1 || rec.styles[0] != StyleTopHat {
		t.Errorf("events = %v", rec.styles)
	}
}

func TestStyleForKey(t *testing.T) {
	cases := []struct {
		key  rune
		want FigureStyle
		ok   bool
	}{
		{'1', StyleTopHat, true},
		{'2', StylePlain, true},
		{'3', StyleWitch, true},
		{'0', 0, false},
		{'4', 0, false},
		{'a', 0, false},
	}
	for _, c := range cases {
		got, ok := StyleForKey(c.key)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("StyleForKey(%q) = %s, %v", c.key, got, ok)
		}
	}
}
