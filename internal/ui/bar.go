// internal/ui/bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chaos-rush/internal/config"
)

const borderWidth = 1

var borderColor = color.White

// Bar — горизонтальная шкала с обводкой (здоровье, опыт, заряд).
type Bar struct {
	X, Y          float32
	Width, Height float32
	Fill          color.RGBA
}

func NewBar(x, y, width, height float32, fill color.RGBA) *Bar {
	return &Bar{X: x, Y: y, Width: width, Height: height, Fill: fill}
}

// Draw рисует шкалу, заполненную на долю ratio в [0, 1].
func (b *Bar) Draw(screen *ebiten.Image, ratio float64) {
	ratio = min(max(ratio, 0), 1)
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, config.BarBackColor, true)
	fillWidth := float32(float64(b.Width-borderWidth*2) * ratio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, b.X+borderWidth, b.Y+borderWidth, fillWidth, b.Height-borderWidth*2, b.Fill, true)
	}
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, borderWidth, borderColor, true)
}

// DrawLabeled рисует шкалу и подпись справа от неё.
func (b *Bar) DrawLabeled(screen *ebiten.Image, ratio float64, label string) {
	b.Draw(screen, ratio)
	DrawText(screen, label, int(b.X+b.Width)+6, int(b.Y+b.Height)-1, config.TextLightColor)
}
