// Package geom содержит экранную геометрию сцены без зависимости от графики.
package geom

import "go-hangman/internal/round"

// Point — точка на экране.
type Point struct {
	X, Y float32
}

// Segment — отрезок линии.
type Segment struct {
	From, To Point
}

// Rect — прямоугольник с левым верхним углом (X, Y).
type Rect struct {
	X, Y, W, H float32
}

// Contains проверяет попадание точки в прямоугольник.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center возвращает центр прямоугольника.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Scaled масштабирует прямоугольник относительно центра.
func (r Rect) Scaled(s float32) Rect {
	c := r.Center()
	w, h := r.W*s, r.H*s
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// CenteredRect — прямоугольник w×h с центром по горизонтали на cx.
func CenteredRect(cx, y, w, h float32) Rect {
	return Rect{X: cx - w/2, Y: y, W: w, H: h}
}

// GallowsLayout задает геометрию виселицы.
type GallowsLayout struct {
	BaseY, BaseX1, BaseX2 float32
	PostX, TopY           float32
	BeamX, RopeY          float32
}

// Structure — основание, столб и перекладина.
func (g GallowsLayout) Structure() []Segment {
	return []Segment{
		{Point{g.BaseX1, g.BaseY}, Point{g.BaseX2, g.BaseY}},
		{Point{g.PostX, g.BaseY}, Point{g.PostX, g.TopY}},
		{Point{g.PostX, g.TopY}, Point{g.BeamX, g.TopY}},
	}
}

// Rope — веревка от перекладины до головы.
func (g GallowsLayout) Rope() Segment {
	return Segment{Point{g.BeamX, g.TopY}, Point{g.BeamX, g.RopeY}}
}

// FigureLayout задает пропорции фигуры относительно центра головы.
type FigureLayout struct {
	HeadRadius float32
	BodyLength float32
	ArmOffsetY float32
	ArmSpanX   float32
	ArmDropY   float32
	LegSpanX   float32
	LegLength  float32
}

// Figure — фигура, собранная в конкретной точке и масштабе.
type Figure struct {
	Head   Point
	Radius float32
	Limbs  map[round.Part]Segment
}

// At собирает фигуру с головой в (cx, cy), масштаб scale.
func (l FigureLayout) At(cx, cy, scale float32) Figure {
	r := l.HeadRadius * scale
	neck := cy + r
	hip := neck + l.BodyLength*scale
	shoulder := cy + l.ArmOffsetY*scale
	hand := shoulder + l.ArmDropY*scale
	foot := hip + l.LegLength*scale

	return Figure{
		Head:   Point{cx, cy},
		Radius: r,
		Limbs: map[round.Part]Segment{
			round.Body:     {Point{cx, neck}, Point{cx, hip}},
			round.LeftArm:  {Point{cx, shoulder}, Point{cx - l.ArmSpanX*scale, hand}},
			round.RightArm: {Point{cx, shoulder}, Point{cx + l.ArmSpanX*scale, hand}},
			round.LeftLeg:  {Point{cx, hip}, Point{cx - l.LegSpanX*scale, foot}},
			round.RightLeg: {Point{cx, hip}, Point{cx + l.LegSpanX*scale, foot}},
		},
	}
}

// SlotPositions возвращает x-координаты подчеркиваний для слова из n букв.
// Слово начинается с left; если оно не помещается в maxWidth, шаг сжимается.
func SlotPositions(n int, left, spacing, maxWidth float32) []float32 {
	if n <= 0 {
		return nil
	}
	if n > 1 && float32(n-1)*spacing > maxWidth {
		spacing = float32(int(maxWidth) / (n - 1))
	}
	xs := make([]float32, n)
	for i := range xs {
		xs[i] = left + float32(i)*spacing
	}
	return xs
}

// GraveyardPositions раскладывает ошибочные буквы столбцом сверху вниз.
func GraveyardPositions(n int, x, y, spacing float32) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{x, y + float32(i)*spacing}
	}
	return pts
}

// SelectorRects возвращает рамки трёх иконок выбора фигуры.
func SelectorRects(screenWidth, topY, icon, spacing float32) []Rect {
	baseX := screenWidth/2 - spacing
	return []Rect{
		{X: baseX - 50, Y: topY, W: icon, H: icon * 2},
		{X: baseX + spacing, Y: topY, W: icon, H: icon * 2},
		{X: baseX + 2*spacing + 50, Y: topY, W: icon, H: icon * 2},
	}
}
