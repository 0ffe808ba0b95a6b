package system

import (
	"testing"
	"time"

	"chaos-rush/internal/event"
	"chaos-rush/internal/types"
)

func TestWaveSchedule(t *testing.T) {
	h := newHarness(t)
	h.waves.Start()

	h.advance(h.tuning.Waves.FirstDelay - time.Millisecond)
	if h.rec.count(event.WaveStarted) != 0 || len(h.ecs.Enemies) != 0 {
		t.Fatal("wave started early")
	}
	h.advance(time.Millisecond)
	if h.waves.WaveCount != 1 {
		t.Fatalf("wave count = %d", h.waves.WaveCount)
	}
	if len(h.ecs.Enemies) != 1 {
		t.Errorf("enemies right at wave start = %d, want 1 (staggered)", len(h.ecs.Enemies))
	}
	h.advance(2 * h.tuning.Waves.SpawnStagger)
	if len(h.ecs.Enemies) != h.tuning.Waves.InitialSpawnAmount {
		t.Errorf("enemies = %d, want %d", len(h.ecs.Enemies), h.tuning.Waves.InitialSpawnAmount)
	}
	if want := h.tuning.Waves.InitialSpawnAmount + h.tuning.Waves.SpawnIncrement; h.waves.SpawnAmount != want {
		t.Errorf("next spawn amount = %d, want %d", h.waves.SpawnAmount, want)
	}

	h.advance(h.waves.NextDelay(1) - 2*h.tuning.Waves.SpawnStagger)
	if h.waves.WaveCount != 2 {
		t.Fatalf("second wave did not start, count = %d", h.waves.WaveCount)
	}
	h.advance(time.Second)
	if want := 3 + 5; len(h.ecs.Enemies) != want {
		t.Errorf("enemies = %d, want %d", len(h.ecs.Enemies), want)
	}
}

func TestNextDelay(t *testing.T) {
	h := newHarness(t)
	tests := []struct {
		wave int
		want time.Duration
	}{
		{1, 14500 * time.Millisecond},
		{4, 13000 * time.Millisecond},
		{10, 10000 * time.Millisecond},
		{50, 10000 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := h.waves.NextDelay(tt.wave); got != tt.want {
			t.Errorf("NextDelay(%d) = %v, want %v", tt.wave, got, tt.want)
		}
	}
}

func TestWaveStop(t *testing.T) {
	h := newHarness(t)
	h.waves.Start()
	h.advance(h.tuning.Waves.FirstDelay)
	h.waves.Stop()
	h.advance(time.Minute)
	if h.waves.WaveCount != 1 {
		t.Errorf("wave count = %d after stop", h.waves.WaveCount)
	}
	if len(h.ecs.Enemies) != 1 {
		t.Errorf("staggered spawns should be dropped, enemies = %d", len(h.ecs.Enemies))
	}
}

func TestSpawnPointOutsideArena(t *testing.T) {
	h := newHarness(t)
	for side := 0; side < 4; side++ {
		h.rng.ints = []int{side}
		h.rng.floats = []float64{0.5}
		p := h.waves.SpawnPoint()
		inside := p.X >= 0 && p.X <= h.tuning.Arena.Width && p.Y >= 0 && p.Y <= h.tuning.Arena.Height
		if inside {
			t.Errorf("side %d: spawn point %v inside the arena", side, p)
		}
	}
}

func TestSpawnPointKeepsMinDistance(t *testing.T) {
	h := newHarness(t)
	h.ecs.Player.Pos = types.Vec2{X: 400, Y: 10}
	h.rng.ints = []int{0}
	h.rng.floats = []float64{0.5}

	p := h.waves.SpawnPoint()
	minDist := h.ecs.Player.AuraRange * h.tuning.Waves.MinDistanceFactor
	if d := h.ecs.Player.Pos.Dist(p); d < minDist {
		t.Errorf("spawn %v is %v from player, want >= %v", p, d, minDist)
	}
	if p.Y >= h.ecs.Player.Pos.Y {
		t.Errorf("spawn should be pushed outward, got %v", p)
	}
}

func TestSpawnEnemyUsesTuning(t *testing.T) {
	h := newHarness(t)
	e := h.waves.SpawnEnemy()
	if e.HP != h.tuning.Enemy.HP || e.Speed != h.tuning.Enemy.Speed || e.OriginalSpeed != e.Speed {
		t.Errorf("enemy %+v", e)
	}
	if e.XPValue < h.tuning.Enemy.XPMin || e.XPValue > h.tuning.Enemy.XPMax {
		t.Errorf("xp = %d out of range", e.XPValue)
	}
}
