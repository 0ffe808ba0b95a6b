// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face — единственный шрифт интерфейса.
var Face font.Face = basicfont.Face7x13

// DrawText рисует строку; (x, y) — базовая линия слева.
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, Face, x, y, clr)
}

// DrawTextCentered центрирует строку по x.
func DrawTextCentered(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	DrawText(screen, s, cx-TextWidth(s)/2, y, clr)
}

// DrawTextOutlined рисует строку с обводкой в один пиксель.
func DrawTextOutlined(screen *ebiten.Image, s string, x, y int, clr, outline color.Color) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(screen, s, x+dx, y+dy, outline)
		}
	}
	DrawText(screen, s, x, y, clr)
}

func TextWidth(s string) int {
	return text.BoundString(Face, s).Dx()
}

// wrap режет строку по словам так, чтобы каждая строка помещалась в width пикселей.
func wrap(s string, width int) []string {
	var lines []string
	var line []rune
	lastSpace := -1
	for _, r := range s {
		line = append(line, r)
		if r == ' ' {
			lastSpace = len(line) - 1
		}
		if TextWidth(string(line)) > width && lastSpace > 0 {
			lines = append(lines, string(line[:lastSpace]))
			line = append([]rune(nil), line[lastSpace+1:]...)
			lastSpace = -1
			for i, c := range line {
				if c == ' ' {
					lastSpace = i
				}
			}
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
