package event

import "chaos-rush/internal/types"

// EnemyKilledData — единственная связь между врагом и прогрессией.
type EnemyKilledData struct {
	EnemyID  types.EntityID
	Position types.Vec2
	XPValue  int
	// DropsXP == false, когда враг превращён в призрака, а не убит.
	DropsXP bool
}

type XPPickupData struct {
	OrbID    types.EntityID
	Position types.Vec2
	Value    int
}

type EnemyPushedData struct {
	EnemyID  types.EntityID
	Position types.Vec2
	Damage   int
}

type PlayerHitData struct {
	Damage    int
	CurrentHP int
	MaxHP     int
}

type LevelUpData struct {
	Level    int
	XP       int
	XPToNext int
}

type UpgradeOfferedData struct {
	Level   int
	Choices []string // ключи улучшений
}

type UpgradeAppliedData struct {
	Key      string
	Text     string
	Baseline bool
}

type WaveStartedData struct {
	Wave        int
	SpawnAmount int
}

type WeaponFiredData struct {
	Weapon string
	Origin types.Vec2
	Aim    types.Vec2
}

type AllySummonedData struct {
	AllyID   types.EntityID
	Kind     string
	Position types.Vec2
}

type PassiveData struct {
	Passive string
}

type FloatingTextData struct {
	Text     string
	Position types.Vec2
	Color    string
}
