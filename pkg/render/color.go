// pkg/render/color.go
package render

import "image/color"

// SceneColors holds all the color definitions needed to render the hangman scene.
type SceneColors struct {
	Background  color.RGBA
	Ink         color.RGBA
	HeadFill    color.RGBA
	Letter      color.RGBA
	WinLetter   color.RGBA
	Wrong       color.RGBA
	Hint        color.RGBA
	Popup       color.RGBA
	Selected    color.RGBA
	GallowsLine float32
	RopeLine    float32
	FigureLine  float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor смешивает цвет с белым на долю t (0..1).
func LightenColor(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*t)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
