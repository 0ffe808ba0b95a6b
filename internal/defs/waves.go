package defs

import "time"

// WaveTuning describes how wave size and cadence grow over a run.
//
// Wave n spawns InitialSpawnAmount + n*SpawnIncrement enemies, one every
// SpawnStagger, and the next wave follows after
// max(BaseDelay - (n+1)*DelayStep, DelayFloor).
type WaveTuning struct {
	FirstDelay         time.Duration `yaml:"firstDelay"`
	InitialSpawnAmount int           `yaml:"initialSpawnAmount"`
	SpawnIncrement     int           `yaml:"spawnIncrement"`
	SpawnStagger       time.Duration `yaml:"spawnStagger"`
	BaseDelay          time.Duration `yaml:"baseDelay"`
	DelayStep          time.Duration `yaml:"delayStep"`
	DelayFloor         time.Duration `yaml:"delayFloor"`
	SpawnMargin        float64       `yaml:"spawnMargin"`       // distance outside the arena edge
	MinDistanceFactor  float64       `yaml:"minDistanceFactor"` // × aura range
	PushOutFactor      float64       `yaml:"pushOutFactor"`     // × min distance when too close
}

func defaultWaveTuning() WaveTuning {
	return WaveTuning{
		FirstDelay:         1000 * time.Millisecond,
		InitialSpawnAmount: 3,
		SpawnIncrement:     2,
		SpawnStagger:       200 * time.Millisecond,
		BaseDelay:          15000 * time.Millisecond,
		DelayStep:          500 * time.Millisecond,
		DelayFloor:         10000 * time.Millisecond,
		SpawnMargin:        50,
		MinDistanceFactor:  1.5,
		PushOutFactor:      1.2,
	}
}
