package termui

import (
	"fmt"

	"go-hangman/internal/app"
	"go-hangman/internal/config"
	"go-hangman/internal/round"

	"github.com/gdamore/tcell/v2"
)

const (
	artTop    = 2
	artLeft   = 2
	wordRow   = artTop + 9
	wrongRow  = wordRow + 2
	statusRow = wrongRow + 2
)

var (
	styleText     = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLetter   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleWinWord  = tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true)
	styleWrong    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
)

// Renderer рисует app.Frame в терминале.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw перерисовывает экран целиком.
func (r *Renderer) Draw(f app.Frame, paused bool) {
	r.screen.Clear()
	r.text(artLeft, 0, "HANGMAN", styleTitle)

	switch f.Mode {
	case app.ModeSelect:
		r.drawSelector()
	case app.ModeReady:
		r.drawArt(allVisible(), f.Style)
		r.text(artLeft, statusRow, "Press Space or Enter to start", styleHint)
	case app.ModeRound:
		r.drawRound(f)
	}

	r.drawConfetti(f)
	if paused {
		r.text(artLeft, statusRow+2, "PAUSED (F9 to resume)", styleTitle)
	}
	_, h := r.screen.Size()
	r.text(artLeft, h-1, "Esc: quit  F9: pause", styleHint)
	r.screen.Show()
}

func (r *Renderer) drawSelector() {
	r.text(artLeft, artTop, "Choose your hangman:", styleText)
	for i, s := range app.Styles {
		r.text(artLeft, artTop+2+i, fmt.Sprintf("[%d]", i+1), styleSelected)
		r.text(artLeft+4, artTop+2+i, s.String(), styleText)
	}
}

func (r *Renderer) drawRound(f app.Frame) {
	s := f.Round
	r.drawArt(s.Visible, f.Style)

	wordStyle := styleLetter
	if s.Phase == round.Won {
		wordStyle = styleWinWord
	}
	r.text(artLeft, wordRow, SpacedWord(s.Display), wordStyle)
	if len(s.Wrong) > 0 {
		r.text(artLeft, wrongRow, "Wrong: "+SpacedWord(s.Wrong), styleWrong)
	}

	switch s.Phase {
	case round.InProgress:
		r.text(artLeft, statusRow, fmt.Sprintf("Misses left: %d", s.Remaining), styleHint)
	case round.Won:
		r.text(artLeft, statusRow, "You Win!  Press Enter to play again", styleTitle)
	case round.Lost:
		r.text(artLeft, statusRow, "You Lose!  ", styleTitle)
		r.text(artLeft+11, statusRow, "Word: "+s.Word, styleWrong)
		r.text(artLeft, statusRow+1, "Press Enter to play again", styleHint)
	}
}

func (r *Renderer) drawArt(visible map[round.Part]bool, style app.FigureStyle) {
	for i, line := range FigureArt(visible, style) {
		r.text(artLeft, artTop+i, line, styleText)
	}
}

func (r *Renderer) drawConfetti(f app.Frame) {
	w, h := r.screen.Size()
	for _, p := range f.Particles {
		col, row, ok := GridPosition(p.X, p.Y, config.ScreenWidth, config.ScreenHeight, w, h)
		if !ok {
			continue
		}
		st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(p.Color.R), int32(p.Color.G), int32(p.Color.B)))
		r.screen.SetContent(col, row, '*', nil, st)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func allVisible() map[round.Part]bool {
	visible := make(map[round.Part]bool, round.PartCount)
	for _, p := range round.RemovalOrder {
		visible[p] = true
	}
	return visible
}
