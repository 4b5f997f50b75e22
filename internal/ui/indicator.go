// internal/ui/indicator.go
package ui

import (
	"image/color"

	"go-hangman/internal/round"
	"go-hangman/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PhaseIndicator — кружок в углу экрана, цвет которого показывает фазу
// раунда. При смене фазы он коротко вспыхивает.
type PhaseIndicator struct {
	X, Y, Radius float32
	Colors       map[round.Phase]color.RGBA

	phase      round.Phase
	changeTime float64
}

func NewPhaseIndicator(x, y, radius float32, colors map[round.Phase]color.RGBA) *PhaseIndicator {
	return &PhaseIndicator{X: x, Y: y, Radius: radius, Colors: colors, changeTime: -1e9}
}

// Observe запоминает фазу; смена фазы перезапускает вспышку.
func (i *PhaseIndicator) Observe(phase round.Phase, gameTime float64) {
	if phase != i.phase {
		i.phase = phase
		i.changeTime = gameTime
	}
}

// Draw отрисовывает индикатор
func (i *PhaseIndicator) Draw(screen *ebiten.Image, gameTime float64) {
	scale := utils.PulseScale(gameTime-i.changeTime, 0.3, 8)
	r := i.Radius * float32(scale)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, i.Colors[i.phase], true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
