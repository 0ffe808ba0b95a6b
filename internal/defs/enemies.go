// internal/defs/enemies.go
package defs

import "time"

// EnemyTuning holds the static data for the pursuing enemy.
type EnemyTuning struct {
	HP               int           `yaml:"hp"`
	Speed            float64       `yaml:"speed"`
	Radius           float64       `yaml:"radius"`
	XPMin            int           `yaml:"xpMin"`
	XPMax            int           `yaml:"xpMax"`
	DeathGrace       time.Duration `yaml:"deathGrace"`       // death animation before removal
	FlashDuration    time.Duration `yaml:"flashDuration"`    // damage tint
	KnockbackDamping float64       `yaml:"knockbackDamping"` // impulse decay per second
}

func defaultEnemyTuning() EnemyTuning {
	return EnemyTuning{
		HP:               50,
		Speed:            70,
		Radius:           10,
		XPMin:            5,
		XPMax:            15,
		DeathGrace:       150 * time.Millisecond,
		FlashDuration:    100 * time.Millisecond,
		KnockbackDamping: 6,
	}
}
