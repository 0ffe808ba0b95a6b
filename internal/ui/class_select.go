// internal/ui/class_select.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"chaos-rush/internal/config"
	"chaos-rush/internal/defs"
)

// ClassSelect — экран выбора класса: по карточке на класс.
type ClassSelect struct {
	classes []defs.ClassDefinition
	cards   []*Card
}

func NewClassSelect(classes []defs.ClassDefinition) *ClassSelect {
	cards := layoutCards(len(classes), 240, 220, 16, 180)
	for i, c := range classes {
		cards[i].Title = fmt.Sprintf("%d. %s", i+1, c.Name)
		cards[i].Body = c.Subtitle + ". " + c.Description
		cards[i].Accent = config.ChargeColor
	}
	return &ClassSelect{classes: classes, cards: cards}
}

// HitTest возвращает индекс класса под курсором или -1.
func (s *ClassSelect) HitTest(x, y int) int {
	return hitCard(s.cards, x, y)
}

func (s *ClassSelect) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	screen.Fill(config.BackgroundColor)
	DrawTextCentered(screen, "CHAOS RUSH", config.ScreenWidth/2, 100, config.ChargeColor)
	DrawTextCentered(screen, "Choose your class [1-3] or click a card", config.ScreenWidth/2, 130, config.TextLightColor)
	hovered := s.HitTest(mouseX, mouseY)
	for i, c := range s.cards {
		c.Draw(screen, i == hovered)
	}
	DrawTextCentered(screen, "WASD move  MOUSE aim  CLICK fire  SPACE passive  ESC pause", config.ScreenWidth/2, config.ScreenHeight-40, config.TextLightColor)
}
