// internal/ui/button.go
package ui

import (
	"image/color"
	"math"

	"go-hangman/internal/utils"
	"go-hangman/pkg/geom"
	"go-hangman/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button — прямоугольная кнопка с надписью.
type Button struct {
	Rect      geom.Rect
	Text      string
	TextColor color.RGBA
	BgColor   color.RGBA
	Font      font.Face

	// Pulsing — кнопка "дышит", привлекая внимание.
	Pulsing     bool
	PulseAmp    float64
	PulseDecay  float64
	PulsePeriod float64

	lastClickTime float64
	clicked       bool
}

// NewButton создает новую кнопку.
func NewButton(rect geom.Rect, text string, bg color.RGBA, face font.Face) *Button {
	return &Button{
		Rect:      rect,
		Text:      text,
		TextColor: color.RGBA{255, 255, 255, 255},
		BgColor:   bg,
		Font:      face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return b.Rect.Contains(float32(x), float32(y))
}

// HandleClick запоминает момент клика для анимации отклика.
func (b *Button) HandleClick(gameTime float64) {
	b.lastClickTime = gameTime
	b.clicked = true
}

// Scale — текущий масштаб кнопки с учетом пульсации и отклика на клик.
func (b *Button) Scale(gameTime float64) float32 {
	scale := 1.0
	if b.Pulsing && b.PulsePeriod > 0 {
		scale = utils.PulseScale(math.Mod(gameTime, b.PulsePeriod), b.PulseAmp, b.PulseDecay)
	}
	if b.clicked {
		scale *= utils.PulseScale(gameTime-b.lastClickTime, 0.3, 8)
	}
	return float32(scale)
}

// Draw отрисовывает кнопку. При наведении фон светлее.
func (b *Button) Draw(screen *ebiten.Image, gameTime float64, hovered bool) {
	rect := b.Rect.Scaled(b.Scale(gameTime))
	bg := b.BgColor
	if hovered {
		bg = render.LightenColor(bg, 0.2)
	}
	vector.DrawFilledRect(screen, rect.X, rect.Y, rect.W, rect.H, bg, false)
	c := rect.Center()
	render.DrawTextCentered(screen, b.Text, b.Font, c.X, c.Y, b.TextColor)
}
