// internal/ui/upgrade_menu.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chaos-rush/internal/config"
	"chaos-rush/internal/defs"
	"chaos-rush/pkg/render"
)

// UpgradeMenu — оверлей выбора улучшения поверх замершего мира.
type UpgradeMenu struct {
	cards []*Card
}

func NewUpgradeMenu() *UpgradeMenu {
	return &UpgradeMenu{}
}

// SetOptions перестраивает карточки под текущие варианты.
func (m *UpgradeMenu) SetOptions(options []defs.UpgradeDefinition) {
	m.cards = layoutCards(len(options), 220, 120, 20, float32(config.ScreenHeight)/2-60)
	for i, u := range options {
		c := m.cards[i]
		c.Title = fmt.Sprintf("%d. %s", i+1, u.Key)
		c.Body = u.Text
		c.Accent = config.XPBarColor
		if u.Type == defs.UpgradeRisky {
			c.Accent = config.RiskyColor
		}
	}
}

// HitTest возвращает индекс карточки под курсором или -1.
func (m *UpgradeMenu) HitTest(x, y int) int {
	return hitCard(m.cards, x, y)
}

func (m *UpgradeMenu) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, render.WithAlpha(config.TextDarkColor, 0.7), false)
	DrawTextCentered(screen, "LEVEL UP! CHOOSE AN UPGRADE [1-3]", config.ScreenWidth/2, config.ScreenHeight/2-90, config.TextLightColor)
	hovered := m.HitTest(mouseX, mouseY)
	for i, c := range m.cards {
		c.Draw(screen, i == hovered)
	}
}
