// internal/system/aura.go
package system

import (
	"chaos-rush/internal/clock"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/types"
)

// AuraSystem — постоянная зона урона вокруг игрока.
//
// Каждый кадр все враги внутри ауры попадают в множество без повторов.
// Раз в DamageInterval каждый ещё живой враг из множества получает урон,
// и множество очищается. Враг, зашедший в ауру и вышедший между тиками,
// всё равно получает один удар.
type AuraSystem struct {
	ecs       *entity.ECS
	clock     *clock.Scheduler
	proximity *Proximity
	damage    *DamageSystem
	inside    map[types.EntityID]struct{}
	timer     *clock.Timer
}

func NewAuraSystem(ecs *entity.ECS, sched *clock.Scheduler, proximity *Proximity, damage *DamageSystem) *AuraSystem {
	return &AuraSystem{
		ecs:       ecs,
		clock:     sched,
		proximity: proximity,
		damage:    damage,
		inside:    make(map[types.EntityID]struct{}),
	}
}

// Start запускает повторяющийся тик урона.
func (s *AuraSystem) Start() {
	p := s.ecs.Player
	if p == nil {
		return
	}
	s.timer.Cancel()
	s.timer = s.clock.Every(p.DamageInterval, 0, s.Tick)
}

// Update собирает врагов, находящихся в ауре в этом кадре.
func (s *AuraSystem) Update() {
	p := s.ecs.Player
	if p == nil {
		return
	}
	for _, e := range s.proximity.EnemiesInRadius(p.Pos, p.AuraRange) {
		s.inside[e.ID] = struct{}{}
	}
}

// Tick наносит урон всем собранным врагам и очищает множество.
func (s *AuraSystem) Tick() {
	p := s.ecs.Player
	if p == nil {
		return
	}
	dmg := p.ScaledDamage(p.BaseDamage)
	for _, id := range entity.SortedIDs(s.inside) {
		s.damage.ApplyDamageID(id, dmg)
	}
	clear(s.inside)
}

// Tracked — сколько врагов ждёт следующего тика.
func (s *AuraSystem) Tracked() int {
	return len(s.inside)
}
