// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTuning reads a YAML balance document. Fields the file omits keep their
// DefaultTuning values; classes and upgrades, when present, replace the stock lists.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes a YAML document over the defaults and validates the result.
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return &t, nil
}

// Validate checks the values the simulation cannot recover from at runtime.
func (t *Tuning) Validate() error {
	if t.Arena.Width <= 0 || t.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive")
	}
	if t.Player.MaxHP <= 0 {
		return fmt.Errorf("player.maxHP must be positive, got %d", t.Player.MaxHP)
	}
	if t.Player.DamageInterval <= 0 {
		return fmt.Errorf("player.damageInterval must be positive")
	}
	if t.Enemy.HP <= 0 {
		return fmt.Errorf("enemy.hp must be positive, got %d", t.Enemy.HP)
	}
	if t.Enemy.XPMin < 0 || t.Enemy.XPMax < t.Enemy.XPMin {
		return fmt.Errorf("enemy xp range [%d, %d] is invalid", t.Enemy.XPMin, t.Enemy.XPMax)
	}
	if t.Waves.SpawnStagger < 0 || t.Waves.DelayFloor <= 0 {
		return fmt.Errorf("waves: stagger must be >= 0 and delayFloor > 0")
	}
	if t.Status.SlowFactor <= 0 || t.Status.SlowFactor > 1 {
		return fmt.Errorf("status.slowFactor must be in (0, 1], got %v", t.Status.SlowFactor)
	}
	for _, kind := range GroundEffectKinds {
		e, ok := t.Flask.Effects[kind]
		if !ok {
			return fmt.Errorf("flask.effects: missing %q", kind)
		}
		if e.Radius <= 0 || e.Duration <= 0 {
			return fmt.Errorf("flask.effects.%s: radius and duration must be positive", kind)
		}
	}
	if t.Orbs.Friction < 0 || t.Orbs.Friction > 1 {
		return fmt.Errorf("orbs.friction must be in [0, 1], got %v", t.Orbs.Friction)
	}
	if t.Flask.TickInterval <= 0 {
		return fmt.Errorf("flask.tickInterval must be positive")
	}
	if t.Shovel.SummonChance < 0 || t.Shovel.SummonChance > 1 {
		return fmt.Errorf("shovel.summonChance must be in [0, 1], got %v", t.Shovel.SummonChance)
	}
	if t.Progression.StartLevel < 1 || t.Progression.StartXPToNext <= 0 {
		return fmt.Errorf("progression: startLevel >= 1 and startXPToNext > 0 required")
	}
	if t.Progression.XPGrowth <= 1 {
		return fmt.Errorf("progression.xpGrowth must be > 1, got %v", t.Progression.XPGrowth)
	}
	if t.Progression.ChoiceCount <= 0 {
		return fmt.Errorf("progression.choiceCount must be positive")
	}
	if len(t.Classes) == 0 {
		return fmt.Errorf("classes cannot be empty")
	}
	seen := make(map[ClassKey]bool, len(t.Classes))
	for _, c := range t.Classes {
		if err := c.validate(); err != nil {
			return err
		}
		if seen[c.Key] {
			return fmt.Errorf("duplicate class %s", c.Key)
		}
		seen[c.Key] = true
	}
	keys := make(map[string]bool, len(t.Upgrades))
	for _, u := range t.Upgrades {
		if err := u.validate(); err != nil {
			return err
		}
		if keys[u.Key] {
			return fmt.Errorf("duplicate upgrade %s", u.Key)
		}
		keys[u.Key] = true
	}
	if b := t.Progression.BaselineUpgrade; b != "" && !keys[b] {
		return fmt.Errorf("progression.baselineUpgrade: %w: %q", ErrUnknownUpgrade, b)
	}
	return nil
}
