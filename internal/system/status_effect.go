// internal/system/status_effect.go
package system

import (
	"time"

	"chaos-rush/internal/clock"
	"chaos-rush/internal/component"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
)

// StatusEffectSystem накладывает горение, яд и замедление.
// Каждый статус идемпотентен: пока флаг стоит, повторное наложение ничего не делает.
// Таймеры привязаны к врагу и снимаются при его смерти.
type StatusEffectSystem struct {
	ecs    *entity.ECS
	clock  *clock.Scheduler
	damage *DamageSystem
	tuning defs.StatusTuning
}

func NewStatusEffectSystem(ecs *entity.ECS, sched *clock.Scheduler, damage *DamageSystem, tuning defs.StatusTuning) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, clock: sched, damage: damage, tuning: tuning}
}

func (s *StatusEffectSystem) dotBonus() int {
	if p := s.ecs.Player; p != nil {
		return p.DOTDamageBonus
	}
	return 0
}

func (s *StatusEffectSystem) durationMultiplier() float64 {
	if p := s.ecs.Player; p != nil && p.DebuffDurationMultiplier > 0 {
		return p.DebuffDurationMultiplier
	}
	return 1
}

// ApplyBurn поджигает врага. Возвращает false, если статус не наложен.
func (s *StatusEffectSystem) ApplyBurn(e *component.Enemy) bool {
	if !e.IsAlive() || e.OnFire {
		return false
	}
	e.OnFire = true
	s.pulse(e, s.tuning.BurnPulses, s.tuning.BurnInterval, s.tuning.BurnDamage, func() { e.OnFire = false })
	return true
}

// ApplyPoison отравляет врага.
func (s *StatusEffectSystem) ApplyPoison(e *component.Enemy) bool {
	if !e.IsAlive() || e.Poisoned {
		return false
	}
	e.Poisoned = true
	s.pulse(e, s.tuning.PoisonPulses, s.tuning.PoisonInterval, s.tuning.PoisonDamage, func() { e.Poisoned = false })
	return true
}

// pulse наносит pulses ударов с шагом interval. Урон считается в момент удара,
// поэтому улучшение DOT влияет и на уже горящих врагов.
func (s *StatusEffectSystem) pulse(e *component.Enemy, pulses int, interval time.Duration, dmg int, done func()) {
	if pulses <= 0 {
		done()
		return
	}
	left := pulses
	s.clock.EveryFor(e.ID, interval, pulses, func() {
		left--
		s.damage.ApplyDamage(e, dmg+s.dotBonus())
		if left == 0 {
			done()
		}
	})
}

// ApplySlow замедляет врага до SlowFactor от исходной скорости и восстанавливает её позже.
// Замедление считается от OriginalSpeed, поэтому не накапливается.
func (s *StatusEffectSystem) ApplySlow(e *component.Enemy) bool {
	if !e.IsAlive() || e.Slowed {
		return false
	}
	if e.OriginalSpeed == 0 {
		e.OriginalSpeed = e.Speed
	}
	e.Slowed = true
	e.Speed = e.OriginalSpeed * s.tuning.SlowFactor
	d := time.Duration(float64(s.tuning.SlowDuration) * s.durationMultiplier())
	s.clock.AfterFor(e.ID, d, func() {
		e.Speed = e.OriginalSpeed
		e.Slowed = false
	})
	return true
}

// Apply накладывает статус, соответствующий виду наземного эффекта.
func (s *StatusEffectSystem) Apply(kind defs.GroundEffectKind, e *component.Enemy) bool {
	switch kind {
	case defs.GroundFire:
		return s.ApplyBurn(e)
	case defs.GroundPoison:
		return s.ApplyPoison(e)
	case defs.GroundSlow:
		return s.ApplySlow(e)
	}
	return false
}
