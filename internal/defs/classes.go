package defs

import "fmt"

// ClassBase holds the stat multipliers a class applies at run start.
type ClassBase struct {
	SpeedMultiplier  float64 `yaml:"speedMultiplier"`
	DamageMultiplier float64 `yaml:"damageMultiplier"`
	AuraRangeBonus   float64 `yaml:"auraRangeBonus"`
}

// ClassDefinition is the immutable record a host presents for class selection.
// The chosen one is the only configuration input to a run.
type ClassDefinition struct {
	Key         ClassKey   `yaml:"key"`
	Name        string     `yaml:"name"`
	Subtitle    string     `yaml:"subtitle"`
	Description string     `yaml:"description"`
	WeaponKey   WeaponKey  `yaml:"weaponKey"`
	PassiveKey  PassiveKey `yaml:"passiveKey"`
	Base        ClassBase  `yaml:"base"`
}

// DefaultClasses returns the three stock classes.
func DefaultClasses() []ClassDefinition {
	return []ClassDefinition{
		{
			Key:         ClassAlchemist,
			Name:        "Spectral Alchemist",
			Subtitle:    "Volatility & Arcane Magic",
			Description: "Volatile flask with a random ground effect. Kills charge a burst that resets cooldowns; pickups may reset them too.",
			WeaponKey:   WeaponVolatileFlask,
			PassiveKey:  PassiveChargeBurst,
			Base:        ClassBase{SpeedMultiplier: 1.0, DamageMultiplier: 1.0, AuraRangeBonus: 10},
		},
		{
			Key:         ClassGravedigger,
			Name:        "Profane Gravedigger",
			Subtitle:    "Cult of the Dead",
			Description: "Ritual shovel boomerang that may raise skeletons. Harvested souls turn marked enemies into ghosts. -10% speed.",
			WeaponKey:   WeaponRitualShovel,
			PassiveKey:  PassiveSoulHarvest,
			Base:        ClassBase{SpeedMultiplier: 1.0, DamageMultiplier: 1.15, AuraRangeBonus: 0},
		},
		{
			Key:         ClassSentinel,
			Name:        "Bell Sentinel",
			Subtitle:    "Sacred Echo",
			Description: "Purification bell: push and area damage. Passive: stronger knockback and bonus damage on push.",
			WeaponKey:   WeaponPurificationBell,
			PassiveKey:  PassiveEcho,
			Base:        ClassBase{SpeedMultiplier: 1.0, DamageMultiplier: 1.0, AuraRangeBonus: 10},
		},
	}
}

// FindClass looks a class up by key.
func FindClass(classes []ClassDefinition, key ClassKey) (ClassDefinition, error) {
	for _, c := range classes {
		if c.Key == key {
			return c, nil
		}
	}
	return ClassDefinition{}, fmt.Errorf("%w: %q", ErrUnknownClass, key)
}

func (c ClassDefinition) validate() error {
	if c.Key == "" {
		return fmt.Errorf("class key cannot be empty")
	}
	if _, err := ParseWeaponKey(string(c.WeaponKey)); err != nil {
		return fmt.Errorf("class %s: %w", c.Key, err)
	}
	if _, err := ParsePassiveKey(string(c.PassiveKey)); err != nil {
		return fmt.Errorf("class %s: %w", c.Key, err)
	}
	if c.Base.SpeedMultiplier <= 0 || c.Base.DamageMultiplier <= 0 {
		return fmt.Errorf("class %s: multipliers must be positive", c.Key)
	}
	return nil
}
