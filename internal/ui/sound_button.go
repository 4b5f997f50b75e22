// internal/ui/sound_button.go
package ui

import (
	"image/color"

	"go-hangman/internal/utils"
	"go-hangman/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SoundButton — переключатель звука: динамик с "волнами" или без них.
type SoundButton struct {
	X, Y          float32
	Size          float32
	Muted         bool
	Color         color.RGBA
	lastClickTime float64
}

func NewSoundButton(x, y, size float32, clr color.RGBA, muted bool) *SoundButton {
	return &SoundButton{X: x, Y: y, Size: size, Color: clr, Muted: muted, lastClickTime: -1e9}
}

// IsClicked — попадание в круг вокруг иконки, форма сложная.
func (b *SoundButton) IsClicked(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

// Toggle переключает звук и возвращает новое значение Muted.
func (b *SoundButton) Toggle(gameTime float64) bool {
	b.Muted = !b.Muted
	b.lastClickTime = gameTime
	return b.Muted
}

func (b *SoundButton) Draw(screen *ebiten.Image, gameTime float64) {
	s := b.Size * float32(utils.PulseScale(gameTime-b.lastClickTime, 0.3, 8)) / 2
	clr := b.Color
	if b.Muted {
		clr = render.DarkenColor(render.LightenColor(b.Color, 0.6))
	}

	// Корпус динамика
	vector.DrawFilledRect(screen, b.X-s, b.Y-s/2, s*0.6, s, clr, false)
	vector.DrawFilledRect(screen, b.X-s*0.4, b.Y-s, s*0.6, 2*s, clr, false)

	if b.Muted {
		vector.StrokeLine(screen, b.X+s*0.4, b.Y-s/2, b.X+s, b.Y+s/2, 2, clr, true)
		vector.StrokeLine(screen, b.X+s*0.4, b.Y+s/2, b.X+s, b.Y-s/2, 2, clr, true)
		return
	}
	vector.StrokeLine(screen, b.X+s*0.5, b.Y-s/3, b.X+s*0.5, b.Y+s/3, 2, clr, true)
	vector.StrokeLine(screen, b.X+s*0.85, b.Y-s*0.6, b.X+s*0.85, b.Y+s*0.6, 2, clr, true)
}
