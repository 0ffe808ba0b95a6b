package defs

import (
	"fmt"
	"math"
)

// Stat names a mutable player stat that upgrades may touch.
type Stat string

const (
	StatSpeed            Stat = "speed"
	StatMaxHP            Stat = "max_hp"
	StatBaseDamage       Stat = "base_damage"
	StatAuraRange        Stat = "aura_range"
	StatMagnetRadius     Stat = "magnet_radius"
	StatDamageMultiplier Stat = "damage_multiplier"
	StatDebuffDuration   Stat = "debuff_duration"
	StatDOTBonus         Stat = "dot_bonus"
	StatKnockbackBonus   Stat = "knockback_bonus"
	StatPushDamageBonus  Stat = "push_damage_bonus"
	StatSlowRadiusBonus  Stat = "slow_radius_bonus"
	StatSummonDuration   Stat = "summon_duration"
	StatSummonCount      Stat = "summon_count"
)

func (s Stat) Valid() bool {
	switch s {
	case StatSpeed, StatMaxHP, StatBaseDamage, StatAuraRange, StatMagnetRadius,
		StatDamageMultiplier, StatDebuffDuration, StatDOTBonus, StatKnockbackBonus,
		StatPushDamageBonus, StatSlowRadiusBonus, StatSummonDuration, StatSummonCount:
		return true
	}
	return false
}

// Op is how a StatEffect combines with the current value.
type Op string

const (
	OpAdd      Op = "add"
	OpMul      Op = "mul"
	OpMulFloor Op = "mul_floor" // multiply, then round down
)

func (o Op) Valid() bool {
	return o == OpAdd || o == OpMul || o == OpMulFloor
}

// UpgradeType controls eligibility and display styling.
type UpgradeType string

const (
	UpgradeNormal UpgradeType = ""
	UpgradeBase   UpgradeType = "base"
	UpgradeRisky  UpgradeType = "risky"
)

// StatHolder is anything upgrades can mutate. component.Player implements it.
type StatHolder interface {
	Stat(s Stat) (float64, bool)
	SetStat(s Stat, v float64) bool
}

// StatEffect is one typed mutation: stat = op(stat, value), then clamped to Min.
type StatEffect struct {
	Stat  Stat     `yaml:"stat"`
	Op    Op       `yaml:"op"`
	Value float64  `yaml:"value"`
	Min   *float64 `yaml:"min,omitempty"`
}

// Apply mutates h. It returns ErrUnknownStat when h does not expose the stat.
func (e StatEffect) Apply(h StatHolder) error {
	cur, ok := h.Stat(e.Stat)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStat, e.Stat)
	}
	var next float64
	switch e.Op {
	case OpAdd:
		next = cur + e.Value
	case OpMul:
		next = cur * e.Value
	case OpMulFloor:
		next = math.Floor(cur * e.Value)
	default:
		return fmt.Errorf("unknown op %q", e.Op)
	}
	if e.Min != nil && next < *e.Min {
		next = *e.Min
	}
	h.SetStat(e.Stat, next)
	return nil
}

// UpgradeDefinition is a level-up reward.
type UpgradeDefinition struct {
	Key           string       `yaml:"key"`
	Text          string       `yaml:"text"`
	Type          UpgradeType  `yaml:"type,omitempty"`
	RequiredLevel int          `yaml:"requiredLevel,omitempty"`
	Effects       []StatEffect `yaml:"effects"`
}

// Eligible reports whether the upgrade may be offered at the given level.
// Base upgrades are never offered; they are granted.
func (u UpgradeDefinition) Eligible(level int) bool {
	if u.Type == UpgradeBase {
		return false
	}
	return u.RequiredLevel == 0 || level >= u.RequiredLevel
}

// Apply runs every effect against h. Effects after a failing one still run.
func (u UpgradeDefinition) Apply(h StatHolder) error {
	var firstErr error
	for _, e := range u.Effects {
		if err := e.Apply(h); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("upgrade %s: %w", u.Key, err)
		}
	}
	return firstErr
}

func (u UpgradeDefinition) validate() error {
	if u.Key == "" {
		return fmt.Errorf("upgrade key cannot be empty")
	}
	if len(u.Effects) == 0 {
		return fmt.Errorf("upgrade %s has no effects", u.Key)
	}
	switch u.Type {
	case UpgradeNormal, UpgradeBase, UpgradeRisky:
	default:
		return fmt.Errorf("upgrade %s: unknown type %q", u.Key, u.Type)
	}
	if u.RequiredLevel < 0 {
		return fmt.Errorf("upgrade %s: requiredLevel must be >= 0, got %d", u.Key, u.RequiredLevel)
	}
	for _, e := range u.Effects {
		if !e.Stat.Valid() {
			return fmt.Errorf("upgrade %s: %w: %q", u.Key, ErrUnknownStat, e.Stat)
		}
		if !e.Op.Valid() {
			return fmt.Errorf("upgrade %s: unknown op %q", u.Key, e.Op)
		}
	}
	return nil
}

// FindUpgrade looks an upgrade up by key.
func FindUpgrade(upgrades []UpgradeDefinition, key string) (UpgradeDefinition, error) {
	for _, u := range upgrades {
		if u.Key == key {
			return u, nil
		}
	}
	return UpgradeDefinition{}, fmt.Errorf("%w: %q", ErrUnknownUpgrade, key)
}

func floatPtr(v float64) *float64 { return &v }

// DefaultUpgrades returns the stock upgrade table.
func DefaultUpgrades() []UpgradeDefinition {
	return []UpgradeDefinition{
		{
			Key:     "aura_base",
			Text:    "AURA Level 1: +10% radius",
			Type:    UpgradeBase,
			Effects: []StatEffect{{Stat: StatAuraRange, Op: OpMul, Value: 1.1}},
		},
		{
			Key:     "damage_up",
			Text:    "Damage +2",
			Effects: []StatEffect{{Stat: StatBaseDamage, Op: OpAdd, Value: 2}},
		},
		{
			Key:     "speed_up",
			Text:    "Speed +30",
			Effects: []StatEffect{{Stat: StatSpeed, Op: OpAdd, Value: 30}},
		},
		{
			Key:     "magnet_range",
			Text:    "Magnet: +50 range",
			Effects: []StatEffect{{Stat: StatMagnetRadius, Op: OpAdd, Value: 50}},
		},
		{
			Key:           "risky_hp_dmg",
			Text:          "Risk: Damage +30% | Max HP -20%",
			Type:          UpgradeRisky,
			RequiredLevel: 3,
			Effects: []StatEffect{
				{Stat: StatBaseDamage, Op: OpMulFloor, Value: 1.3},
				{Stat: StatMaxHP, Op: OpMulFloor, Value: 0.8, Min: floatPtr(1)},
			},
		},
		{
			Key:           "risky_speed_dmg",
			Text:          "Risk: Speed +40 | Damage -1",
			Type:          UpgradeRisky,
			RequiredLevel: 2,
			Effects: []StatEffect{
				{Stat: StatSpeed, Op: OpAdd, Value: 40},
				{Stat: StatBaseDamage, Op: OpAdd, Value: -1, Min: floatPtr(1)},
			},
		},
		{
			Key:     "debuff_duration",
			Text:    "Lingering Curse: debuffs last 25% longer",
			Effects: []StatEffect{{Stat: StatDebuffDuration, Op: OpMul, Value: 1.25}},
		},
		{
			Key:     "dot_bonus",
			Text:    "Caustic: +2 damage per DOT pulse",
			Effects: []StatEffect{{Stat: StatDOTBonus, Op: OpAdd, Value: 2}},
		},
		{
			Key:     "summon_duration",
			Text:    "Grave Pact: summons last 20% longer",
			Effects: []StatEffect{{Stat: StatSummonDuration, Op: OpMul, Value: 1.2}},
		},
		{
			Key:           "push_power",
			Text:          "Resonance: +20% knockback, +2 push damage",
			RequiredLevel: 2,
			Effects: []StatEffect{
				{Stat: StatKnockbackBonus, Op: OpAdd, Value: 0.2},
				{Stat: StatPushDamageBonus, Op: OpAdd, Value: 2},
			},
		},
	}
}
