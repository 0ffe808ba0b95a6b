// internal/system/visual_effect.go
package system

import (
	"image/color"
	"strconv"
	"time"

	"chaos-rush/internal/clock"
	"chaos-rush/internal/component"
	"chaos-rush/internal/config"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/event"
)

// Цвета всплывающего текста в событиях.
const (
	TextColorXP      = "xp"
	TextColorAbility = "ability"
	TextColorLevel   = "level"
	TextColorDamage  = "damage"
)

var textColors = map[string]color.RGBA{
	TextColorXP:      config.OrbColor,
	TextColorAbility: config.ChargeColor,
	TextColorLevel:   config.TextLightColor,
	TextColorDamage:  config.RiskyColor,
}

// VisualEffectSystem превращает события FloatingText в сущности с временем жизни
// и убирает истёкшие. Только для слоя отрисовки: на симуляцию не влияет.
type VisualEffectSystem struct {
	ecs      *entity.ECS
	clock    *clock.Scheduler
	lifetime time.Duration
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, sched *clock.Scheduler, bus *event.Dispatcher, lifetime time.Duration) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs, clock: sched, lifetime: lifetime}
	bus.Subscribe(event.FloatingText, s)
	bus.SubscribeFunc(event.PlayerHit, func(e event.Event) {
		if data, ok := e.Data.(event.PlayerHitData); ok && ecs.Player != nil {
			s.add(event.FloatingTextData{Text: "-" + strconv.Itoa(data.Damage), Position: ecs.Player.Pos, Color: TextColorDamage})
		}
	})
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.FloatingTextData); ok {
		s.add(data)
	}
}

func (s *VisualEffectSystem) add(data event.FloatingTextData) {
	c, ok := textColors[data.Color]
	if !ok {
		c = config.TextLightColor
	}
	s.ecs.AddText(&component.FloatingText{
		Text:      data.Text,
		Pos:       data.Position,
		Color:     c,
		SpawnedAt: s.clock.Now(),
		Lifetime:  s.lifetime,
	})
}

// Update удаляет истёкшие надписи.
func (s *VisualEffectSystem) Update() {
	now := s.clock.Now()
	for id, t := range s.ecs.Texts {
		if now-t.SpawnedAt >= t.Lifetime {
			delete(s.ecs.Texts, id)
		}
	}
}
