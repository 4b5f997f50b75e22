// internal/app/style.go
package app

// FigureStyle — внешний вид фигуры, выбираемый перед раундом.
type FigureStyle int

const (
	StyleTopHat FigureStyle = iota // Цилиндр
	StylePlain                     // Без головного убора
	StyleWitch                     // Остроконечная шляпа
)

// Styles — порядок стилей на экране выбора (клавиши 1, 2, 3).
var Styles = []FigureStyle{StyleTopHat, StylePlain, StyleWitch}

func (s FigureStyle) String() string {
	switch s {
	case StyleTopHat:
		return "top_hat"
	case StylePlain:
		return "plain"
	case StyleWitch:
		return "witch"
	}
	return "unknown"
}

// StyleForKey возвращает стиль для клавиши '1'..'3'.
func StyleForKey(r rune) (FigureStyle, bool) {
	i := int(r - '1')
	if i < 0 || i >= len(Styles) {
		return 0, false
	}
	return Styles[i], true
}
