package defs

import "time"

// Tuning is the full balance document. Every number the simulation uses lives
// here, so a host can rebalance a run from YAML without recompiling.
type Tuning struct {
	Arena       ArenaTuning         `yaml:"arena"`
	Player      PlayerTuning        `yaml:"player"`
	Enemy       EnemyTuning         `yaml:"enemy"`
	Waves       WaveTuning          `yaml:"waves"`
	Orbs        OrbTuning           `yaml:"orbs"`
	Status      StatusTuning        `yaml:"status"`
	Flask       FlaskTuning         `yaml:"flask"`
	Shovel      ShovelTuning        `yaml:"shovel"`
	Bell        BellTuning          `yaml:"bell"`
	Allies      AllyTuning          `yaml:"allies"`
	Alchemist   AlchemistTuning     `yaml:"alchemist"`
	Gravedigger GravediggerTuning   `yaml:"gravedigger"`
	Sentinel    SentinelTuning      `yaml:"sentinel"`
	Progression ProgressionTuning   `yaml:"progression"`
	AutoFire    bool                `yaml:"autoFire"`
	Classes     []ClassDefinition   `yaml:"classes"`
	Upgrades    []UpgradeDefinition `yaml:"upgrades"`
}

type ArenaTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerTuning struct {
	Speed              float64       `yaml:"speed"`
	MaxHP              int           `yaml:"maxHP"`
	BaseDamage         int           `yaml:"baseDamage"`
	DamageInterval     time.Duration `yaml:"damageInterval"`
	AuraRange          float64       `yaml:"auraRange"`
	MagnetRadius       float64       `yaml:"magnetRadius"`
	Radius             float64       `yaml:"radius"`
	ContactDamage      int           `yaml:"contactDamage"`
	HitInvulnerability time.Duration `yaml:"hitInvulnerability"`
}

type OrbTuning struct {
	Speed        float64 `yaml:"speed"`
	PickupRadius float64 `yaml:"pickupRadius"`
	Friction     float64 `yaml:"friction"` // velocity kept per second outside the magnet
}

// StatusTuning drives the three status effects.
type StatusTuning struct {
	BurnPulses     int           `yaml:"burnPulses"`
	BurnInterval   time.Duration `yaml:"burnInterval"`
	BurnDamage     int           `yaml:"burnDamage"`
	PoisonPulses   int           `yaml:"poisonPulses"`
	PoisonInterval time.Duration `yaml:"poisonInterval"`
	PoisonDamage   int           `yaml:"poisonDamage"`
	SlowFactor     float64       `yaml:"slowFactor"`
	SlowDuration   time.Duration `yaml:"slowDuration"`
}

// GroundEffectTuning is one row of the flask outcome table.
type GroundEffectTuning struct {
	Radius   float64       `yaml:"radius"`
	Duration time.Duration `yaml:"duration"`
	Damage   int           `yaml:"damage"`
}

type FlaskTuning struct {
	Cooldown     time.Duration                           `yaml:"cooldown"`
	Speed        float64                                 `yaml:"speed"`
	Lifespan     time.Duration                           `yaml:"lifespan"`
	HitRadius    float64                                 `yaml:"hitRadius"`
	TickInterval time.Duration                           `yaml:"tickInterval"`
	Effects      map[GroundEffectKind]GroundEffectTuning `yaml:"effects"`
}

type ShovelTuning struct {
	Cooldown     time.Duration `yaml:"cooldown"`
	Speed        float64       `yaml:"speed"`
	ReturnSpeed  float64       `yaml:"returnSpeed"`
	Outbound     time.Duration `yaml:"outbound"`
	ReturnWindow time.Duration `yaml:"returnWindow"`
	Damage       int           `yaml:"damage"`
	HitRadius    float64       `yaml:"hitRadius"`
	SummonChance float64       `yaml:"summonChance"`
}

type BellTuning struct {
	Cooldown  time.Duration `yaml:"cooldown"`
	Radius    float64       `yaml:"radius"`
	Damage    int           `yaml:"damage"`
	Knockback float64       `yaml:"knockback"`
}

type AllyTuning struct {
	DetectRadius     float64       `yaml:"detectRadius"`
	ContactRadius    float64       `yaml:"contactRadius"`
	SkeletonSpeed    float64       `yaml:"skeletonSpeed"`
	SkeletonDamage   int           `yaml:"skeletonDamage"`
	SkeletonLifetime time.Duration `yaml:"skeletonLifetime"`
	GhostSpeed       float64       `yaml:"ghostSpeed"`
	GhostDamage      int           `yaml:"ghostDamage"`
	GhostLifetime    time.Duration `yaml:"ghostLifetime"`
}

type AlchemistTuning struct {
	ChargeThreshold     int           `yaml:"chargeThreshold"`
	BurstShots          int           `yaml:"burstShots"`
	BurstStagger        time.Duration `yaml:"burstStagger"`
	CooldownResetChance float64       `yaml:"cooldownResetChance"`
}

type GravediggerTuning struct {
	SoulThreshold            int     `yaml:"soulThreshold"`
	SpeedPenalty             float64 `yaml:"speedPenalty"`
	SummonDurationMultiplier float64 `yaml:"summonDurationMultiplier"`
	SummonCountBonus         int     `yaml:"summonCountBonus"`
}

type SentinelTuning struct {
	KnockbackBonus  float64 `yaml:"knockbackBonus"`
	PushDamageBonus int     `yaml:"pushDamageBonus"`
	EchoRadius      float64 `yaml:"echoRadius"`
}

type ProgressionTuning struct {
	StartLevel      int     `yaml:"startLevel"`
	StartXPToNext   int     `yaml:"startXPToNext"`
	XPGrowth        float64 `yaml:"xpGrowth"`
	ChoiceCount     int     `yaml:"choiceCount"`
	BaselineUpgrade string  `yaml:"baselineUpgrade"`
}

// DefaultTuning returns the stock balance.
func DefaultTuning() Tuning {
	return Tuning{
		Arena: ArenaTuning{Width: 800, Height: 600},
		Player: PlayerTuning{
			Speed:              200,
			MaxHP:              100,
			BaseDamage:         5,
			DamageInterval:     200 * time.Millisecond,
			AuraRange:          110,
			MagnetRadius:       100,
			Radius:             10,
			ContactDamage:      10,
			HitInvulnerability: 1000 * time.Millisecond,
		},
		Enemy: defaultEnemyTuning(),
		Waves: defaultWaveTuning(),
		Orbs:  OrbTuning{Speed: 200, PickupRadius: 16, Friction: 0.05},
		Status: StatusTuning{
			BurnPulses:     4,
			BurnInterval:   250 * time.Millisecond,
			BurnDamage:     3,
			PoisonPulses:   5,
			PoisonInterval: 500 * time.Millisecond,
			PoisonDamage:   2,
			SlowFactor:     0.6,
			SlowDuration:   400 * time.Millisecond,
		},
		Flask: FlaskTuning{
			Cooldown:     1200 * time.Millisecond,
			Speed:        400,
			Lifespan:     700 * time.Millisecond,
			HitRadius:    6,
			TickInterval: 300 * time.Millisecond,
			Effects: map[GroundEffectKind]GroundEffectTuning{
				GroundFire:   {Radius: 60, Duration: 1800 * time.Millisecond, Damage: 8},
				GroundPoison: {Radius: 70, Duration: 2400 * time.Millisecond, Damage: 5},
				GroundSlow:   {Radius: 80, Duration: 1500 * time.Millisecond, Damage: 4},
			},
		},
		Shovel: ShovelTuning{
			Cooldown:     1200 * time.Millisecond,
			Speed:        500,
			ReturnSpeed:  600,
			Outbound:     400 * time.Millisecond,
			ReturnWindow: 600 * time.Millisecond,
			Damage:       20,
			HitRadius:    12,
			SummonChance: 0.25,
		},
		Bell: BellTuning{
			Cooldown:  1400 * time.Millisecond,
			Radius:    120,
			Damage:    12,
			Knockback: 300,
		},
		Allies: AllyTuning{
			DetectRadius:     220,
			ContactRadius:    14,
			SkeletonSpeed:    120,
			SkeletonDamage:   8,
			SkeletonLifetime: 6000 * time.Millisecond,
			GhostSpeed:       160,
			GhostDamage:      15,
			GhostLifetime:    4000 * time.Millisecond,
		},
		Alchemist: AlchemistTuning{
			ChargeThreshold:     15,
			BurstShots:          3,
			BurstStagger:        150 * time.Millisecond,
			CooldownResetChance: 0.15,
		},
		Gravedigger: GravediggerTuning{
			SoulThreshold:            10,
			SpeedPenalty:             0.9,
			SummonDurationMultiplier: 1.2,
			SummonCountBonus:         1,
		},
		Sentinel: SentinelTuning{
			KnockbackBonus:  1.3,
			PushDamageBonus: 1,
			EchoRadius:      80,
		},
		Progression: ProgressionTuning{
			StartLevel:      1,
			StartXPToNext:   10,
			XPGrowth:        1.5,
			ChoiceCount:     3,
			BaselineUpgrade: "aura_base",
		},
		AutoFire: true,
		Classes:  DefaultClasses(),
		Upgrades: DefaultUpgrades(),
	}
}
