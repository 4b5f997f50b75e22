package render

import (
	"image/color"

	"go-hangman/internal/app"
	"go-hangman/internal/confetti"
	"go-hangman/internal/round"
	"go-hangman/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

type SceneRenderer struct {
	layout   geom.Scene
	colors   *SceneColors
	fonts    *Fonts
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	backdrop *ebiten.Image // Предрендеренная виселица

	highlight int
}

func NewSceneRenderer(layout geom.Scene, colors *SceneColors, fonts *Fonts) *SceneRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &SceneRenderer{
		layout:    layout,
		colors:    colors,
		fonts:     fonts,
		fillImg:   fillImg,
		fillVs:    make([]ebiten.Vertex, 0, 8),
		fillIs:    make([]uint16, 0, 8),
		backdrop:  ebiten.NewImage(int(layout.Width), int(layout.Height)),
		highlight: -1,
	}
	// Виселица не меняется, рисуем её один раз
	r.RenderBackdrop()
	return r
}

// RenderBackdrop создаёт предрендеренное изображение фона с виселицей
func (r *SceneRenderer) RenderBackdrop() {
	r.backdrop.Fill(r.colors.Background)
	for _, s := range r.layout.Gallows.Structure() {
		r.line(r.backdrop, s, r.colors.GallowsLine, r.colors.Ink)
	}
	r.line(r.backdrop, r.layout.Gallows.Rope(), r.colors.RopeLine, r.colors.Ink)
}

func (r *SceneRenderer) Layout() geom.Scene {
	return r.layout
}

// SetSelectorHighlight подсвечивает иконку выбора (-1 — ни одной).
func (r *SceneRenderer) SetSelectorHighlight(i int) {
	r.highlight = i
}

func (r *SceneRenderer) Fonts() *Fonts {
	return r.fonts
}

// Draw рисует кадр игры: виселицу, фигуру, слово, кладбище букв,
// конфетти и окно результата. Кнопки рисует слой UI.
func (r *SceneRenderer) Draw(screen *ebiten.Image, f app.Frame) {
	screen.DrawImage(r.backdrop, nil)

	switch f.Mode {
	case app.ModeSelect:
		r.DrawSelector(screen, r.highlight)
	case app.ModeReady:
		r.DrawFigure(screen, r.layout.HeadX, r.layout.HeadY, 1, allVisible(), f.Style)
	case app.ModeRound:
		r.DrawFigure(screen, r.layout.HeadX, r.layout.HeadY, 1, f.Round.Visible, f.Style)
		r.DrawWord(screen, f.Round)
		r.DrawGraveyard(screen, f.Round.Wrong)
	}

	r.DrawConfetti(screen, f.Particles)

	if f.Mode == app.ModeRound {
		switch f.Round.Phase {
		case round.Won:
			r.DrawPopup(screen, "You Win!", "")
		case round.Lost:
			r.DrawPopup(screen, "You Lose!", "Word: "+f.Round.Word)
		}
	}
}

func allVisible() map[round.Part]bool {
	visible := make(map[round.Part]bool, round.PartCount)
	for _, p := range round.RemovalOrder {
		visible[p] = true
	}
	return visible
}

// DrawFigure рисует видимые части фигуры и головной убор стиля.
func (r *SceneRenderer) DrawFigure(screen *ebiten.Image, cx, cy, scale float32, visible map[round.Part]bool, style app.FigureStyle) {
	fig := r.layout.Figure.At(cx, cy, scale)
	for part, seg := range fig.Limbs {
		if visible[part] {
			r.line(screen, seg, r.colors.FigureLine, r.colors.Ink)
		}
	}
	if !visible[round.Head] {
		return
	}
	vector.DrawFilledCircle(screen, fig.Head.X, fig.Head.Y, fig.Radius, r.colors.HeadFill, true)
	vector.StrokeCircle(screen, fig.Head.X, fig.Head.Y, fig.Radius, r.colors.FigureLine, r.colors.Ink, true)
	r.drawHat(screen, fig, scale, style)
}

func (r *SceneRenderer) drawHat(screen *ebiten.Image, fig geom.Figure, scale float32, style app.FigureStyle) {
	top := fig.Head.Y - fig.Radius
	switch style {
	case app.StyleTopHat:
		w, h, brim := 14*scale, 7*scale, 3*scale
		vector.DrawFilledRect(screen, fig.Head.X-w/2, top-6*scale, w, h, r.colors.Ink, false)
		vector.DrawFilledRect(screen, fig.Head.X-w, top-6*scale+h, w*2, brim, r.colors.Ink, false)
	case app.StyleWitch:
		w := fig.Radius * 1.4
		apex := geom.Point{X: fig.Head.X + fig.Radius*0.35, Y: top - fig.Radius*1.6}
		brimY := top + 2*scale
		r.fillTriangle(screen, geom.Point{X: fig.Head.X - w/2, Y: brimY}, geom.Point{X: fig.Head.X + w/2, Y: brimY}, apex, r.colors.Ink)
		r.line(screen, geom.Segment{From: geom.Point{X: fig.Head.X - w, Y: brimY}, To: geom.Point{X: fig.Head.X + w, Y: brimY}}, 3*scale, r.colors.Ink)
	}
}

// DrawWord рисует подчеркивания и открытые буквы над ними.
func (r *SceneRenderer) DrawWord(screen *ebiten.Image, s round.Snapshot) {
	l := r.layout
	xs := geom.SlotPositions(len(s.Display), l.WordLeft, l.WordSpacing, l.WordMaxWidth())
	clr := r.colors.Letter
	if s.Phase == round.Won {
		clr = r.colors.WinLetter
	}
	for i, x := range xs {
		underscore := geom.Segment{
			From: geom.Point{X: x - l.UnderscoreHalf, Y: l.WordBaselineY},
			To:   geom.Point{X: x + l.UnderscoreHalf, Y: l.WordBaselineY},
		}
		r.line(screen, underscore, 2, r.colors.Ink)
		if ch := s.Display[i]; ch != round.Blank {
			DrawTextCentered(screen, string(ch), r.fonts.Regular, x, l.WordBaselineY-l.LetterLift, clr)
		}
	}
}

// DrawGraveyard рисует ошибочные буквы столбцом.
func (r *SceneRenderer) DrawGraveyard(screen *ebiten.Image, wrong []rune) {
	l := r.layout
	for i, p := range geom.GraveyardPositions(len(wrong), l.GraveX, l.GraveY, l.GraveSpacing) {
		b := text.BoundString(r.fonts.Small, string(wrong[i]))
		text.Draw(screen, string(wrong[i]), r.fonts.Small, int(p.X), int(p.Y)-b.Min.Y, r.colors.Wrong)
	}
}

// DrawConfetti рисует частицы кружками диаметром Size.
func (r *SceneRenderer) DrawConfetti(screen *ebiten.Image, particles []confetti.Particle) {
	for _, p := range particles {
		half := float32(p.Size) / 2
		vector.DrawFilledCircle(screen, float32(p.X)+half, float32(p.Y)+half, half, p.Color, true)
	}
}

// DrawPopup рисует белое окно с рамкой, заголовком и строкой пояснения.
func (r *SceneRenderer) DrawPopup(screen *ebiten.Image, title, detail string) {
	rect := r.layout.PopupRect()
	vector.DrawFilledRect(screen, rect.X, rect.Y, rect.W, rect.H, r.colors.Popup, false)
	vector.StrokeRect(screen, rect.X, rect.Y, rect.W, rect.H, 2, r.colors.Ink, false)

	cx, cy := r.layout.Width/2, r.layout.Height/2
	DrawTextCentered(screen, title, r.fonts.Big, cx, cy-20, r.colors.Ink)
	if detail != "" {
		DrawTextCentered(screen, detail, r.fonts.Regular, cx, cy+20, r.colors.Wrong)
	}
}

// DrawSelector рисует экран выбора: заголовок и три иконки с номерами.
// highlight — индекс подсвеченной иконки или -1.
func (r *SceneRenderer) DrawSelector(screen *ebiten.Image, highlight int) {
	l := r.layout
	DrawTextCentered(screen, "Choose Your Hangman", r.fonts.Big, l.Width/2, 30, r.colors.Ink)

	for i, rect := range l.Selectors() {
		c := rect.Center()
		iconHead := c.Y - 10 - 20*l.IconScale
		r.DrawFigure(screen, c.X, iconHead, l.IconScale, map[round.Part]bool{round.Head: true}, app.Styles[i])

		frame, width := r.colors.Ink, float32(2)
		if i == highlight {
			frame, width = r.colors.Selected, 3
		}
		vector.StrokeRect(screen, rect.X, rect.Y, rect.W, rect.H, width, frame, false)
		DrawTextCentered(screen, string(rune('1'+i)), r.fonts.Small, c.X, rect.Y+rect.H+10, r.colors.Ink)
	}
}

func (r *SceneRenderer) line(dst *ebiten.Image, s geom.Segment, width float32, clr color.Color) {
	vector.StrokeLine(dst, s.From.X, s.From.Y, s.To.X, s.To.Y, width, clr, true)
}

func (r *SceneRenderer) fillTriangle(dst *ebiten.Image, a, b, c geom.Point, clr color.RGBA) {
	path := vector.Path{}
	path.MoveTo(a.X, a.Y)
	path.LineTo(b.X, b.Y)
	path.LineTo(c.X, c.Y)
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(clr.R) / 255
		r.fillVs[i].ColorG = float32(clr.G) / 255
		r.fillVs[i].ColorB = float32(clr.B) / 255
		r.fillVs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawTextCentered рисует строку с центром в (cx, cy).
func DrawTextCentered(dst *ebiten.Image, s string, face font.Face, cx, cy float32, clr color.Color) {
	b := text.BoundString(face, s)
	x := int(cx) - (b.Min.X+b.Max.X)/2
	y := int(cy) - (b.Min.Y+b.Max.Y)/2
	text.Draw(dst, s, face, x, y, clr)
}
