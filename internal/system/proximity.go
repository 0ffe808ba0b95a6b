// internal/system/proximity.go
package system

import (
	"chaos-rush/internal/component"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/types"
)

// Proximity отвечает на вопрос «кто внутри круга». Перебор полный, без сетки.
//
// Мёртвые враги отфильтровываются здесь, в одном месте. Результат — снимок,
// отсортированный по ID, так что вызывающий может убивать врагов прямо в цикле.
type Proximity struct {
	ecs *entity.ECS
}

func NewProximity(ecs *entity.ECS) *Proximity {
	return &Proximity{ecs: ecs}
}

// Overlaps — пересекаются ли два круга.
func Overlaps(a types.Vec2, ra float64, b types.Vec2, rb float64) bool {
	return a.Dist(b) <= ra+rb
}

// EnemiesInRadius возвращает живых врагов, чей центр не дальше r от center.
func (p *Proximity) EnemiesInRadius(center types.Vec2, r float64) []*component.Enemy {
	var out []*component.Enemy
	for _, id := range entity.SortedIDs(p.ecs.Enemies) {
		e := p.ecs.Enemies[id]
		if !e.IsAlive() {
			continue
		}
		if center.Dist(e.Pos) <= r {
			out = append(out, e)
		}
	}
	return out
}

// EnemiesTouching — живые враги, чей круг пересекает круг (center, r).
func (p *Proximity) EnemiesTouching(center types.Vec2, r float64) []*component.Enemy {
	var out []*component.Enemy
	for _, id := range entity.SortedIDs(p.ecs.Enemies) {
		e := p.ecs.Enemies[id]
		if e.IsAlive() && Overlaps(center, r, e.Pos, e.Radius) {
			out = append(out, e)
		}
	}
	return out
}

// NearestEnemy — ближайший живой враг не дальше maxR. maxR <= 0 снимает ограничение.
// При равных расстояниях побеждает меньший ID.
func (p *Proximity) NearestEnemy(center types.Vec2, maxR float64) *component.Enemy {
	var best *component.Enemy
	bestDist := 0.0
	for _, id := range entity.SortedIDs(p.ecs.Enemies) {
		e := p.ecs.Enemies[id]
		if !e.IsAlive() {
			continue
		}
		d := center.Dist(e.Pos)
		if maxR > 0 && d > maxR {
			continue
		}
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// OrbsInRadius возвращает неподобранные сферы в радиусе.
func (p *Proximity) OrbsInRadius(center types.Vec2, r float64) []*component.XPOrb {
	var out []*component.XPOrb
	for _, id := range entity.SortedIDs(p.ecs.Orbs) {
		o := p.ecs.Orbs[id]
		if o.Collected {
			continue
		}
		if center.Dist(o.Pos) <= r {
			out = append(out, o)
		}
	}
	return out
}

// MarkedEnemies — живые враги с меткой лопаты.
func (p *Proximity) MarkedEnemies() []*component.Enemy {
	var out []*component.Enemy
	for _, id := range entity.SortedIDs(p.ecs.Enemies) {
		if e := p.ecs.Enemies[id]; e.IsAlive() && e.Marked {
			out = append(out, e)
		}
	}
	return out
}
