package system

import (
	"testing"
	"time"

	"chaos-rush/internal/clock"
	"chaos-rush/internal/component"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/event"
	"chaos-rush/internal/logging"
	"chaos-rush/internal/types"
)

// fixedRandom replays queued values, then falls back to defaults.
type fixedRandom struct {
	ints         []int
	floats       []float64
	defaultFloat float64
}

func (r *fixedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *fixedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return r.defaultFloat
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// recorder collects events of the given types.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type harness struct {
	t      *testing.T
	tuning defs.Tuning
	ecs    *entity.ECS
	clock  *clock.Scheduler
	bus    *event.Dispatcher
	rng    *fixedRandom
	rec    *recorder

	proximity *Proximity
	damage    *DamageSystem
	status    *StatusEffectSystem
	ground    *GroundEffectSystem
	allies    *AllySystem
	weapons   *WeaponSystem
	projs     *ProjectileSystem
	orbs      *OrbSystem
	progress  *ProgressionSystem
	waves     *WaveSystem
	movement  *MovementSystem
	player    *PlayerSystem
	aura      *AuraSystem
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	tun := defs.DefaultTuning()
	ecs := entity.NewECS()
	sched := clock.NewScheduler()
	bus := event.NewDispatcher()
	rng := &fixedRandom{defaultFloat: 0.99}
	logger := logging.Discard()

	ecs.Player = component.NewPlayer(tun.Player, tun.Progression,
		defs.ClassBase{SpeedMultiplier: 1, DamageMultiplier: 1}, types.Vec2{X: 400, Y: 300})

	h := &harness{t: t, tuning: tun, ecs: ecs, clock: sched, bus: bus, rng: rng, rec: &recorder{}}
	for _, et := range []event.EventType{
		event.EnemyKilled, event.XPPickup, event.EnemyPushed, event.PlayerHit, event.PlayerDeath,
		event.LevelUp, event.UpgradeOffered, event.UpgradeApplied, event.WaveStarted,
		event.WeaponFired, event.AllySummoned, event.PassiveReady, event.PassiveActivated,
	} {
		bus.Subscribe(et, h.rec)
	}

	h.proximity = NewProximity(ecs)
	h.damage = NewDamageSystem(ecs, sched, bus, tun.Enemy, logger)
	h.status = NewStatusEffectSystem(ecs, sched, h.damage, tun.Status)
	h.ground = NewGroundEffectSystem(ecs, sched, h.proximity, h.damage, h.status, tun.Flask, logger)
	h.allies = NewAllySystem(ecs, sched, bus, h.proximity, h.damage, tun.Allies, logger)
	h.weapons = NewWeaponSystem(ecs, sched, bus, h.proximity, h.damage,
		WeaponTuning{Flask: tun.Flask, Shovel: tun.Shovel, Bell: tun.Bell}, logger)
	h.projs = NewProjectileSystem(ecs, sched, h.proximity, h.damage, h.ground, h.allies, rng, tun.Shovel)
	h.orbs = NewOrbSystem(ecs, bus, tun.Orbs)
	h.progress = NewProgressionSystem(ecs, bus, rng, tun.Progression, tun.Upgrades, logger)
	h.waves = NewWaveSystem(ecs, sched, bus, rng, tun.Waves, tun.Enemy, tun.Arena, logger)
	h.movement = NewMovementSystem(ecs, tun.Enemy)
	h.player = NewPlayerSystem(ecs, sched, bus, h.proximity, tun.Player, tun.Arena, logger)
	h.aura = NewAuraSystem(ecs, sched, h.proximity, h.damage)
	return h
}

func (h *harness) passiveDeps(weapon defs.WeaponKey) PassiveDeps {
	return PassiveDeps{
		ECS:         h.ecs,
		Clock:       h.clock,
		Bus:         h.bus,
		Proximity:   h.proximity,
		Damage:      h.damage,
		Weapons:     h.weapons,
		Allies:      h.allies,
		RNG:         h.rng,
		Weapon:      weapon,
		Aim:         func() types.Vec2 { return h.ecs.Player.Pos.Add(types.Vec2{X: 100}) },
		Logger:      logging.Discard(),
		Alchemist:   h.tuning.Alchemist,
		Gravedigger: h.tuning.Gravedigger,
		Sentinel:    h.tuning.Sentinel,
	}
}

// enemyAt spawns a stock enemy at (x, y) relative to the player.
func (h *harness) enemyAt(dx, dy float64) *component.Enemy {
	p := h.ecs.Player.Pos
	e := h.waves.SpawnEnemyAt(types.Vec2{X: p.X + dx, Y: p.Y + dy})
	e.XPValue = 10
	return e
}

func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d)
}

// step runs the frame-driven systems and the clock in fixed 10ms frames.
func (h *harness) step(total time.Duration) {
	const frame = 10 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		dt := frame.Seconds()
		h.projs.Update(dt)
		h.allies.Update(dt)
		h.clock.Advance(frame)
	}
}
