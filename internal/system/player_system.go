// internal/system/player_system.go
package system

import (
	"github.com/charmbracelet/log"

	"chaos-rush/internal/clock"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/event"
	"chaos-rush/internal/types"
	"chaos-rush/internal/utils"
)

// PlayerSystem отвечает за движение игрока и контактный урон от врагов.
type PlayerSystem struct {
	ecs       *entity.ECS
	clock     *clock.Scheduler
	bus       *event.Dispatcher
	proximity *Proximity
	tuning    defs.PlayerTuning
	arena     defs.ArenaTuning
	logger    *log.Logger
	dead      bool
}

func NewPlayerSystem(ecs *entity.ECS, sched *clock.Scheduler, bus *event.Dispatcher, proximity *Proximity, tuning defs.PlayerTuning, arena defs.ArenaTuning, logger *log.Logger) *PlayerSystem {
	return &PlayerSystem{
		ecs:       ecs,
		clock:     sched,
		bus:       bus,
		proximity: proximity,
		tuning:    tuning,
		arena:     arena,
		logger:    logger,
	}
}

// Move сдвигает игрока по намерению (dx, dy). Диагональ нормализуется,
// игрок не выходит за пределы арены.
func (s *PlayerSystem) Move(dx, dy, deltaTime float64) {
	p := s.ecs.Player
	if p == nil {
		return
	}
	dir := types.Vec2{X: dx, Y: dy}
	if dir.Len() > 1 {
		dir = dir.Normalize()
	}
	p.Pos = utils.ClampToArena(p.Pos.Add(dir.Scale(p.Speed*deltaTime)), s.arena.Width, s.arena.Height, p.Radius)
}

// Update проверяет касание врагов. После удара действует неуязвимость.
func (s *PlayerSystem) Update() {
	p := s.ecs.Player
	if p == nil || s.dead {
		return
	}
	now := s.clock.Now()
	if p.HasBeenHit && now-p.LastHitTime < s.tuning.HitInvulnerability {
		return
	}
	if len(s.proximity.EnemiesTouching(p.Pos, p.Radius)) == 0 {
		return
	}
	lost := p.Damage(s.tuning.ContactDamage)
	p.LastHitTime = now
	p.HasBeenHit = true
	s.bus.Emit(event.PlayerHit, event.PlayerHitData{Damage: lost, CurrentHP: p.CurrentHP, MaxHP: p.MaxHP})
	if p.IsDead() {
		s.dead = true
		s.logger.Info("player died", "level", p.Level)
		s.bus.Emit(event.PlayerDeath, nil)
	}
}
