// internal/component/player.go
package component

import (
	"math"
	"time"

	"chaos-rush/internal/defs"
	"chaos-rush/internal/types"
)

// Player — единственный персонаж забега. CurrentHP всегда в [0, MaxHP].
type Player struct {
	Pos    types.Vec2
	Radius float64

	Speed          float64
	MaxHP          int
	CurrentHP      int
	BaseDamage     int
	DamageInterval time.Duration
	AuraRange      float64
	MagnetRadius   float64

	Level    int
	XP       int
	XPToNext int

	// Модификаторы класса и улучшений
	DamageMultiplier         float64
	DebuffDurationMultiplier float64
	DOTDamageBonus           int
	KnockbackBonus           float64
	PushDamageBonus          int
	SlowRadiusBonus          float64
	SummonDurationMultiplier float64
	SummonCountBonus         int

	LastHitTime     time.Duration
	HasBeenHit      bool
	BaselineGranted bool
}

// NewPlayer builds a level-start player from tuning and the chosen class.
func NewPlayer(t defs.PlayerTuning, p defs.ProgressionTuning, class defs.ClassBase, pos types.Vec2) *Player {
	return &Player{
		Pos:                      pos,
		Radius:                   t.Radius,
		Speed:                    t.Speed * class.SpeedMultiplier,
		MaxHP:                    t.MaxHP,
		CurrentHP:                t.MaxHP,
		BaseDamage:               t.BaseDamage,
		DamageInterval:           t.DamageInterval,
		AuraRange:                t.AuraRange + class.AuraRangeBonus,
		MagnetRadius:             t.MagnetRadius,
		Level:                    p.StartLevel,
		XPToNext:                 p.StartXPToNext,
		DamageMultiplier:         class.DamageMultiplier,
		DebuffDurationMultiplier: 1,
		KnockbackBonus:           1,
		SummonDurationMultiplier: 1,
	}
}

// SetHP присваивает здоровье с ограничением [0, MaxHP].
func (p *Player) SetHP(hp int) {
	p.CurrentHP = max(0, min(hp, p.MaxHP))
}

// Damage снимает здоровье и возвращает фактически потерянное.
func (p *Player) Damage(n int) int {
	if n <= 0 {
		return 0
	}
	before := p.CurrentHP
	p.SetHP(p.CurrentHP - n)
	return before - p.CurrentHP
}

func (p *Player) Heal(n int) {
	p.SetHP(p.CurrentHP + n)
}

func (p *Player) IsDead() bool {
	return p.CurrentHP <= 0
}

// ScaledDamage applies the damage multiplier to a flat amount.
func (p *Player) ScaledDamage(base int) int {
	return int(math.Round(float64(base) * p.DamageMultiplier))
}

// Stat implements defs.StatHolder.
func (p *Player) Stat(s defs.Stat) (float64, bool) {
	switch s {
	case defs.StatSpeed:
		return p.Speed, true
	case defs.StatMaxHP:
		return float64(p.MaxHP), true
	case defs.StatBaseDamage:
		return float64(p.BaseDamage), true
	case defs.StatAuraRange:
		return p.AuraRange, true
	case defs.StatMagnetRadius:
		return p.MagnetRadius, true
	case defs.StatDamageMultiplier:
		return p.DamageMultiplier, true
	case defs.StatDebuffDuration:
		return p.DebuffDurationMultiplier, true
	case defs.StatDOTBonus:
		return float64(p.DOTDamageBonus), true
	case defs.StatKnockbackBonus:
		return p.KnockbackBonus, true
	case defs.StatPushDamageBonus:
		return float64(p.PushDamageBonus), true
	case defs.StatSlowRadiusBonus:
		return p.SlowRadiusBonus, true
	case defs.StatSummonDuration:
		return p.SummonDurationMultiplier, true
	case defs.StatSummonCount:
		return float64(p.SummonCountBonus), true
	}
	return 0, false
}

// SetStat implements defs.StatHolder. Integer stats are rounded.
func (p *Player) SetStat(s defs.Stat, v float64) bool {
	n := int(math.Round(v))
	switch s {
	case defs.StatSpeed:
		p.Speed = v
	case defs.StatMaxHP:
		p.MaxHP = max(1, n)
		p.SetHP(p.CurrentHP)
	case defs.StatBaseDamage:
		p.BaseDamage = n
	case defs.StatAuraRange:
		p.AuraRange = v
	case defs.StatMagnetRadius:
		p.MagnetRadius = v
	case defs.StatDamageMultiplier:
		p.DamageMultiplier = v
	case defs.StatDebuffDuration:
		p.DebuffDurationMultiplier = v
	case defs.StatDOTBonus:
		p.DOTDamageBonus = n
	case defs.StatKnockbackBonus:
		p.KnockbackBonus = v
	case defs.StatPushDamageBonus:
		p.PushDamageBonus = n
	case defs.StatSlowRadiusBonus:
		p.SlowRadiusBonus = v
	case defs.StatSummonDuration:
		p.SummonDurationMultiplier = v
	case defs.StatSummonCount:
		p.SummonCountBonus = n
	default:
		return false
	}
	return true
}
