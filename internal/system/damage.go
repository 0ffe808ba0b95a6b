// internal/system/damage.go
package system

import (
	"github.com/charmbracelet/log"

	"chaos-rush/internal/clock"
	"chaos-rush/internal/component"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/event"
	"chaos-rush/internal/types"
)

// DamageSystem — единственная точка, через которую враги получают урон и умирают.
type DamageSystem struct {
	ecs    *entity.ECS
	clock  *clock.Scheduler
	bus    *event.Dispatcher
	tuning defs.EnemyTuning
	logger *log.Logger
}

func NewDamageSystem(ecs *entity.ECS, sched *clock.Scheduler, bus *event.Dispatcher, tuning defs.EnemyTuning, logger *log.Logger) *DamageSystem {
	return &DamageSystem{ecs: ecs, clock: sched, bus: bus, tuning: tuning, logger: logger}
}

// ApplyDamage наносит урон живому врагу. Возвращает true, если удар оказался смертельным.
// Урон по мёртвому или уже удалённому врагу молча игнорируется.
func (s *DamageSystem) ApplyDamage(e *component.Enemy, amount int) bool {
	if !e.IsAlive() || amount <= 0 {
		return false
	}
	e.FlashUntil = s.clock.Now() + s.tuning.FlashDuration
	if !e.TakeDamage(amount) {
		return false
	}
	s.die(e, true)
	return true
}

// ApplyDamageID — то же по ID; отсутствующий враг пропускается.
func (s *DamageSystem) ApplyDamageID(id types.EntityID, amount int) bool {
	e, ok := s.ecs.Enemies[id]
	if !ok {
		return false
	}
	return s.ApplyDamage(e, amount)
}

// Convert убирает живого врага без выпадения опыта (превращение в призрака).
func (s *DamageSystem) Convert(e *component.Enemy) bool {
	if !e.IsAlive() {
		return false
	}
	e.Lifecycle = component.Dying
	s.die(e, false)
	return true
}

func (s *DamageSystem) die(e *component.Enemy, dropsXP bool) {
	e.DiedAt = s.clock.Now()
	// Все отложенные эффекты на этом враге больше не должны срабатывать.
	s.clock.CancelOwner(e.ID)
	s.logger.Debug("enemy died", "id", e.ID, "xp", e.XPValue, "dropsXP", dropsXP)
	s.bus.Emit(event.EnemyKilled, event.EnemyKilledData{
		EnemyID:  e.ID,
		Position: e.Pos,
		XPValue:  e.XPValue,
		DropsXP:  dropsXP,
	})
	id := e.ID
	grace := s.tuning.DeathGrace
	if !dropsXP {
		grace = 0
	}
	s.clock.After(grace, func() { s.remove(id) })
}

func (s *DamageSystem) remove(id types.EntityID) {
	e, ok := s.ecs.Enemies[id]
	if !ok {
		return
	}
	e.Lifecycle = component.Removed
	delete(s.ecs.Enemies, id)
}
