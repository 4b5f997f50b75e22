// Package termui — терминальная версия игры на tcell поверх того же app.Game.
package termui

import (
	"go-hangman/internal/app"
	"go-hangman/internal/round"
)

// Каркас виселицы; фигура дорисовывается поверх в колонке figureCol.
var gallowsArt = []string{
	"  +---+",
	"  |   |",
	"      |",
	"      |",
	"      |",
	"      |",
	"      |",
	"=======",
}

const (
	figureCol = 2
	hatRow    = 2
	headRow   = 3
	armRow    = 4
	legRow    = 5
)

type cell struct {
	row, col int
	ch       rune
}

var partCells = map[round.Part][]cell{
	round.Head:     {{headRow, figureCol, 'O'}},
	round.Body:     {{armRow, figureCol, '|'}},
	round.LeftArm:  {{armRow, figureCol - 1, '/'}},
	round.RightArm: {{armRow, figureCol + 1, '\\'}},
	round.LeftLeg:  {{legRow, figureCol - 1, '/'}},
	round.RightLeg: {{legRow, figureCol + 1, '\\'}},
}

// hatRune — головной убор стиля; 0 — без шляпы.
func hatRune(style app.FigureStyle) rune {
	switch style {
	case app.StyleTopHat:
		return '#'
	case app.StyleWitch:
		return '^'
	}
	return 0
}

// FigureArt собирает ASCII-картинку виселицы с видимыми частями фигуры.
// Шляпа рисуется только вместе с головой.
func FigureArt(visible map[round.Part]bool, style app.FigureStyle) []string {
	grid := make([][]rune, len(gallowsArt))
	for i, line := range gallowsArt {
		grid[i] = []rune(line)
	}
	for part, cells := range partCells {
		if !visible[part] {
			continue
		}
		for _, c := range cells {
			grid[c.row][c.col] = c.ch
		}
	}
	if h := hatRune(style); h != 0 && visible[round.Head] {
		grid[hatRow][figureCol] = h
	}

	out := make([]string, len(grid))
	for i, row := range grid {
		out[i] = string(row)
	}
	return out
}

// SpacedWord разделяет буквы пробелами: "C_T" -> "C _ T".
func SpacedWord(display []rune) string {
	if len(display) == 0 {
		return ""
	}
	out := make([]rune, 0, len(display)*2-1)
	for i, ch := range display {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, ch)
	}
	return string(out)
}

// GridPosition переводит координаты сцены (width×height пикселей) в клетку
// терминала cols×rows. ok=false, если точка вне экрана.
func GridPosition(x, y, width, height float64, cols, rows int) (col, row int, ok bool) {
	if x < 0 || y < 0 || x >= width || y >= height || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return int(x / width * float64(cols)), int(y / height * float64(rows)), true
}
