// internal/ui/arena.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chaos-rush/internal/app"
	"chaos-rush/internal/component"
	"chaos-rush/internal/config"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/pkg/render"
)

// ArenaRenderer рисует мир забега. Порядок слоёв: зоны на земле, сферы,
// враги, союзники, снаряды, игрок, всплывающий текст.
type ArenaRenderer struct{}

func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, g *app.Game) {
	screen.Fill(config.BackgroundColor)
	ecs := g.ECS
	now := g.Clock.Now()

	for _, id := range entity.SortedIDs(ecs.GroundEffects) {
		ge := ecs.GroundEffects[id]
		c, ok := config.GroundEffectColors[string(ge.Kind)]
		if !ok {
			c = config.AuraColor
		}
		vector.DrawFilledCircle(screen, float32(ge.Pos.X), float32(ge.Pos.Y), float32(ge.Radius), c, true)
	}

	for _, id := range entity.SortedIDs(ecs.Orbs) {
		o := ecs.Orbs[id]
		vector.DrawFilledCircle(screen, float32(o.Pos.X), float32(o.Pos.Y), config.OrbDrawRadius, config.OrbColor, true)
	}

	for _, id := range entity.SortedIDs(ecs.Enemies) {
		r.drawEnemy(screen, ecs.Enemies[id], now, g.Tuning.Enemy.DeathGrace)
	}

	for _, id := range entity.SortedIDs(ecs.Allies) {
		a := ecs.Allies[id]
		c := config.SkeletonColor
		if a.Kind == defs.AllyGhost {
			c = config.GhostColor
		}
		vector.DrawFilledCircle(screen, float32(a.Pos.X), float32(a.Pos.Y), config.AllyDrawRadius, c, true)
	}

	for _, id := range entity.SortedIDs(ecs.Projectiles) {
		p := ecs.Projectiles[id]
		c := config.PoisonColor
		if p.Weapon == defs.WeaponRitualShovel {
			c = config.SkeletonColor
		}
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), config.ProjectileRadius, c, true)
	}

	r.drawPlayer(screen, g)
	r.drawTexts(screen, ecs, now)
}

func (r *ArenaRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy, now, grace time.Duration) {
	x, y := float32(e.Pos.X), float32(e.Pos.Y)
	radius := float32(config.EnemyDrawRadius)
	c := config.EnemyColor
	switch {
	case e.OnFire:
		c = render.Mix(c, config.BurnColor, 0.6)
	case e.Poisoned:
		c = render.Mix(c, config.PoisonColor, 0.6)
	case e.Slowed:
		c = render.Mix(c, config.SlowColor, 0.6)
	}
	if now < e.FlashUntil {
		c = config.FlashColor
	}
	if !e.IsAlive() {
		// угасает за время до удаления
		fade := 1.0
		if grace > 0 {
			fade = 1 - float64(now-e.DiedAt)/float64(grace)
		}
		c = render.WithAlpha(c, fade)
		radius *= float32(0.5 + 0.5*math.Max(fade, 0))
	}
	vector.DrawFilledCircle(screen, x, y, radius, c, true)
	if e.Marked {
		vector.StrokeCircle(screen, x, y, radius+3, 1, config.GhostColor, true)
	}
	if e.IsAlive() && e.HP < e.MaxHP {
		w := radius * 2
		vector.DrawFilledRect(screen, x-radius, y-radius-5, w, 2, config.BarBackColor, false)
		vector.DrawFilledRect(screen, x-radius, y-radius-5, w*float32(e.HPPercent()), 2, config.HPBarColor, false)
	}
}

func (r *ArenaRenderer) drawPlayer(screen *ebiten.Image, g *app.Game) {
	p := g.Player()
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	vector.DrawFilledCircle(screen, x, y, float32(p.AuraRange), config.AuraColor, true)
	vector.StrokeCircle(screen, x, y, float32(p.AuraRange), 1, render.WithAlpha(config.SlowColor, 0.5), true)
	if radius, _, ok := g.PassiveSystem.EchoInfo(); ok {
		vector.StrokeCircle(screen, x, y, float32(radius), config.StrokeWidth, render.WithAlpha(config.ChargeColor, 0.6), true)
	}
	c := config.PlayerColor
	if g.PassiveSystem.Ready() {
		c = render.Mix(c, config.ChargeColor, 0.5)
	}
	vector.DrawFilledCircle(screen, x, y, config.PlayerDrawRadius, c, true)
	vector.StrokeCircle(screen, x, y, config.PlayerDrawRadius, config.StrokeWidth, color.White, true)
}

func (r *ArenaRenderer) drawTexts(screen *ebiten.Image, ecs *entity.ECS, now time.Duration) {
	for _, id := range entity.SortedIDs(ecs.Texts) {
		t := ecs.Texts[id]
		progress := t.Progress(now)
		y := t.Pos.Y - config.TextOffsetY - config.FloatingTextRise*progress
		c := render.WithAlpha(t.Color, 1-progress)
		DrawTextCentered(screen, t.Text, int(t.Pos.X), int(y), c)
	}
}
