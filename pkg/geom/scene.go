package geom

// Scene — вся геометрия сцены в экранных координатах.
type Scene struct {
	Width, Height  float32
	Gallows        GallowsLayout
	Figure         FigureLayout
	HeadX, HeadY   float32
	IconScale      float32
	WordLeft       float32
	WordSpacing    float32
	WordBaselineY  float32
	UnderscoreHalf float32
	LetterLift     float32
	GraveX, GraveY float32
	GraveSpacing   float32
	SelectorTopY   float32
	SelectorIcon   float32
	SelectorSpace  float32
	PopupW, PopupH float32
}

// WordMaxWidth — ширина левой половины экрана без полей.
func (l Scene) WordMaxWidth() float32 {
	return l.Width/2 - 2*l.WordLeft
}

// PopupRect — окно результата чуть выше центра экрана.
func (l Scene) PopupRect() Rect {
	return Rect{
		X: (l.Width - l.PopupW) / 2,
		Y: (l.Height-l.PopupH)/2 - 20,
		W: l.PopupW,
		H: l.PopupH,
	}
}

// Selectors — рамки иконок выбора фигуры.
func (l Scene) Selectors() []Rect {
	return SelectorRects(l.Width, l.SelectorTopY, l.SelectorIcon, l.SelectorSpace)
}

// SelectorAt возвращает индекс иконки под точкой или -1.
func (l Scene) SelectorAt(x, y float32) int {
	for i, r := range l.Selectors() {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
