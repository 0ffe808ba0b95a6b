// internal/system/movement.go
package system

import (
	"math"

	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/types"
)

// MovementSystem ведёт врагов прямо на игрока и гасит импульсы отбрасывания.
// Поиска пути нет: враги идут по прямой.
type MovementSystem struct {
	ecs   *entity.ECS
	enemy defs.EnemyTuning
}

func NewMovementSystem(ecs *entity.ECS, enemy defs.EnemyTuning) *MovementSystem {
	return &MovementSystem{ecs: ecs, enemy: enemy}
}

func (s *MovementSystem) Update(deltaTime float64) {
	p := s.ecs.Player
	if p == nil {
		return
	}
	decay := math.Exp(-s.enemy.KnockbackDamping * deltaTime)
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		e := s.ecs.Enemies[id]
		if !e.IsAlive() {
			continue
		}
		var step types.Vec2
		if e.Knockback.Active() {
			step = e.Knockback.Velocity.Scale(deltaTime)
			e.Knockback.Velocity = e.Knockback.Velocity.Scale(decay)
		} else {
			e.Knockback.Velocity = types.Vec2{}
			dir := p.Pos.Sub(e.Pos).Normalize()
			step = dir.Scale(e.Speed * deltaTime)
		}
		e.Pos = e.Pos.Add(step)
	}
}
