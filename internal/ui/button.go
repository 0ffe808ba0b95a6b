// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chaos-rush/internal/config"
	"chaos-rush/pkg/render"
)

// Card — кликабельная карточка с заголовком и описанием.
type Card struct {
	X, Y, Width, Height float32
	Title               string
	Body                string
	Accent              color.RGBA
}

// Contains проверяет, попадает ли точка в карточку.
func (c *Card) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= c.X && fx <= c.X+c.Width && fy >= c.Y && fy <= c.Y+c.Height
}

// Draw рисует карточку; hovered подсвечивает рамку.
func (c *Card) Draw(screen *ebiten.Image, hovered bool) {
	bg := render.DarkenColor(config.BarBackColor)
	stroke := config.StrokeWidth
	if hovered {
		bg = config.BarBackColor
		stroke *= 2
	}
	vector.DrawFilledRect(screen, c.X, c.Y, c.Width, c.Height, bg, true)
	vector.StrokeRect(screen, c.X, c.Y, c.Width, c.Height, stroke, c.Accent, true)

	pad := 10
	y := int(c.Y) + pad + 13
	for _, line := range wrap(c.Title, int(c.Width)-pad*2) {
		DrawText(screen, line, int(c.X)+pad, y, c.Accent)
		y += 16
	}
	y += 6
	for _, line := range wrap(c.Body, int(c.Width)-pad*2) {
		DrawText(screen, line, int(c.X)+pad, y, config.TextLightColor)
		y += 15
	}
}

// layoutCards раскладывает n карточек в ряд по центру экрана.
func layoutCards(n int, width, height, gap, y float32) []*Card {
	total := float32(n)*width + float32(n-1)*gap
	x := (float32(config.ScreenWidth) - total) / 2
	cards := make([]*Card, n)
	for i := range cards {
		cards[i] = &Card{X: x + float32(i)*(width+gap), Y: y, Width: width, Height: height}
	}
	return cards
}

// hitCard возвращает индекс карточки под точкой или -1.
func hitCard(cards []*Card, x, y int) int {
	for i, c := range cards {
		if c.Contains(x, y) {
			return i
		}
	}
	return -1
}
