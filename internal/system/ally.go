package system

import (
	"time"

	"github.com/charmbracelet/log"

	"chaos-rush/internal/clock"
	"chaos-rush/internal/component"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/event"
	"chaos-rush/internal/types"
	"chaos-rush/internal/utils"
)

// AllySystem ведёт призванных союзников: ищут ближайшего живого врага в радиусе
// обнаружения, подходят, бьют при контакте и взрываются. Время жизни ограничено таймером.
type AllySystem struct {
	ecs       *entity.ECS
	clock     *clock.Scheduler
	bus       *event.Dispatcher
	proximity *Proximity
	damage    *DamageSystem
	tuning    defs.AllyTuning
	logger    *log.Logger
}

func NewAllySystem(ecs *entity.ECS, sched *clock.Scheduler, bus *event.Dispatcher, proximity *Proximity, damage *DamageSystem, tuning defs.AllyTuning, logger *log.Logger) *AllySystem {
	return &AllySystem{
		ecs:       ecs,
		clock:     sched,
		bus:       bus,
		proximity: proximity,
		damage:    damage,
		tuning:    tuning,
		logger:    logger,
	}
}

// SkeletonLifetime учитывает бонусы призыва игрока.
func (s *AllySystem) SkeletonLifetime() time.Duration {
	mul, count := 1.0, 0
	if p := s.ecs.Player; p != nil {
		mul = p.SummonDurationMultiplier
		count = p.SummonCountBonus
	}
	return time.Duration(float64(s.tuning.SkeletonLifetime) * mul * (1 + 0.1*float64(count)))
}

// Summon создаёт союзника вида kind в точке pos.
func (s *AllySystem) Summon(kind defs.AllyKind, pos types.Vec2) *component.Ally {
	a := &component.Ally{
		Kind:          kind,
		Pos:           pos,
		DetectRadius:  s.tuning.DetectRadius,
		ContactRadius: s.tuning.ContactRadius,
	}
	var lifetime time.Duration
	switch kind {
	case defs.AllySkeleton:
		a.Speed = s.tuning.SkeletonSpeed
		a.Damage = s.tuning.SkeletonDamage
		lifetime = s.SkeletonLifetime()
	case defs.AllyGhost:
		a.Speed = s.tuning.GhostSpeed
		a.Damage = s.tuning.GhostDamage
		lifetime = s.tuning.GhostLifetime
	default:
		s.logger.Warn("unknown ally kind, skipping", "kind", kind)
		return nil
	}
	if p := s.ecs.Player; p != nil {
		a.Damage = p.ScaledDamage(a.Damage)
	}
	a.ExpiresAt = s.clock.Now() + lifetime
	id := s.ecs.AddAlly(a)
	s.clock.AfterFor(id, lifetime, func() { s.explode(a) })
	s.bus.Emit(event.AllySummoned, event.AllySummonedData{AllyID: id, Kind: string(kind), Position: pos})
	return a
}

// Update двигает союзников к целям и обрабатывает контакт.
func (s *AllySystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Allies) {
		a := s.ecs.Allies[id]
		if !a.IsAlive() {
			continue
		}
		target := s.proximity.NearestEnemy(a.Pos, a.DetectRadius)
		if target == nil {
			continue
		}
		a.Pos, _ = utils.MoveToward(a.Pos, target.Pos, a.Speed*deltaTime)
		if Overlaps(a.Pos, a.ContactRadius, target.Pos, target.Radius) {
			s.damage.ApplyDamage(target, a.Damage)
			s.explode(a)
		}
	}
}

func (s *AllySystem) explode(a *component.Ally) {
	if !a.IsAlive() {
		return
	}
	a.Lifecycle = component.Removed
	s.clock.CancelOwner(a.ID)
	delete(s.ecs.Allies, a.ID)
}
