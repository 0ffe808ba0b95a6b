package system

import (
	"time"

	"github.com/charmbracelet/log"

	"chaos-rush/internal/clock"
	"chaos-rush/internal/component"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/types"
	"chaos-rush/internal/utils"
)

// GroundEffectSystem управляет зонами от разбитых колб. Каждая зона тикает
// с шагом TickInterval и на каждом тике заново ищет врагов внутри:
// урон и статус накладываются ровно один раз за тик на каждого.
type GroundEffectSystem struct {
	ecs       *entity.ECS
	clock     *clock.Scheduler
	proximity *Proximity
	damage    *DamageSystem
	status    *StatusEffectSystem
	tuning    defs.FlaskTuning
	logger    *log.Logger
}

func NewGroundEffectSystem(ecs *entity.ECS, sched *clock.Scheduler, proximity *Proximity, damage *DamageSystem, status *StatusEffectSystem, tuning defs.FlaskTuning, logger *log.Logger) *GroundEffectSystem {
	return &GroundEffectSystem{
		ecs:       ecs,
		clock:     sched,
		proximity: proximity,
		damage:    damage,
		status:    status,
		tuning:    tuning,
		logger:    logger,
	}
}

// Spawn создаёт зону вида kind в точке pos. Неизвестный вид пропускается.
func (s *GroundEffectSystem) Spawn(kind defs.GroundEffectKind, pos types.Vec2) *component.GroundEffect {
	t, ok := s.tuning.Effects[kind]
	if !ok {
		s.logger.Warn("unknown ground effect, skipping", "kind", kind)
		return nil
	}
	radius := t.Radius
	durMul := 1.0
	dmgMul := 1.0
	if p := s.ecs.Player; p != nil {
		if kind == defs.GroundSlow {
			radius += p.SlowRadiusBonus
		}
		if p.DebuffDurationMultiplier > 0 {
			durMul = p.DebuffDurationMultiplier
		}
		dmgMul = p.DamageMultiplier
	}
	duration := time.Duration(float64(t.Duration) * durMul)
	ticks := max(1, int(duration/s.tuning.TickInterval))

	g := &component.GroundEffect{
		Kind:      kind,
		Pos:       pos,
		Radius:    radius,
		Damage:    int(float64(t.Damage)*dmgMul + 0.5),
		ExpiresAt: s.clock.Now() + duration,
		TicksLeft: ticks,
	}
	id := s.ecs.AddGroundEffect(g)
	s.clock.EveryFor(id, s.tuning.TickInterval, ticks, func() { s.tick(g) })
	return g
}

func (s *GroundEffectSystem) tick(g *component.GroundEffect) {
	for _, e := range s.proximity.EnemiesInRadius(g.Pos, g.Radius) {
		if s.damage.ApplyDamage(e, g.Damage) {
			continue
		}
		s.status.Apply(g.Kind, e)
	}
	g.TicksLeft--
	if g.TicksLeft <= 0 {
		delete(s.ecs.GroundEffects, g.ID)
	}
}

// RollKind выбирает исход колбы равновероятно.
func RollKind(r utils.Random) defs.GroundEffectKind {
	return defs.GroundEffectKinds[r.Intn(len(defs.GroundEffectKinds))]
}
