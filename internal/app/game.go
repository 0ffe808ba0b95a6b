// internal/app/game.go
package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"chaos-rush/internal/clock"
	"chaos-rush/internal/component"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/event"
	"chaos-rush/internal/logging"
	"chaos-rush/internal/system"
	"chaos-rush/internal/types"
	"chaos-rush/internal/utils"
)

// ErrRunOver возвращается командами после смерти игрока. Нужен Restart.
var ErrRunOver = errors.New("run is over")

const floatingTextLifetime = time.Second

// Input — намерения игрока на один кадр.
type Input struct {
	MoveX, MoveY    float64 // -1..1 по каждой оси
	Aim             types.Vec2
	HasAim          bool
	Fire            bool
	ActivatePassive bool
	Choice          int // 1..N выбирает улучшение в фазе выбора, 0 — нет выбора
}

// HUD — доли и счётчики для индикаторов.
type HUD struct {
	HPPercent     float64
	XPPercent     float64
	ChargePercent float64
	ChargeReady   bool
	HasCharge     bool
	Level         int
	XP            int
	XPToNext      int
	CurrentHP     int
	MaxHP         int
	Wave          int
	Cooldown      float64 // доля оставшейся перезарядки активного оружия
	Kills         int
}

// Game holds one run of the simulation: entities, clock, event bus and systems.
type Game struct {
	Tuning defs.Tuning
	Class  defs.ClassDefinition

	ECS             *entity.ECS
	Clock           *clock.Scheduler
	EventDispatcher *event.Dispatcher
	Rng             utils.Random
	logger          *log.Logger

	Proximity          *system.Proximity
	DamageSystem       *system.DamageSystem
	StatusEffectSystem *system.StatusEffectSystem
	GroundEffectSystem *system.GroundEffectSystem
	AllySystem         *system.AllySystem
	WeaponSystem       *system.WeaponSystem
	ProjectileSystem   *system.ProjectileSystem
	PassiveSystem      *system.PassiveSystem
	ProgressionSystem  *system.ProgressionSystem
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	PlayerSystem       *system.PlayerSystem
	OrbSystem          *system.OrbSystem
	AuraSystem         *system.AuraSystem
	VisualEffectSystem *system.VisualEffectSystem

	phase component.Phase
	kills int
}

// NewGame собирает забег для выбранного класса. Класс — единственный вход конфигурации.
// rng == nil означает генератор, засеянный текущим временем.
func NewGame(tuning defs.Tuning, class defs.ClassDefinition, rng utils.Random, logger *log.Logger) *Game {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	g := &Game{
		Tuning: tuning,
		Class:  class,
		Rng:    rng,
		logger: logging.OrDefault(logger),
	}
	g.build()
	return g
}

// NewGameForClass находит класс по ключу в документе баланса.
func NewGameForClass(tuning defs.Tuning, key defs.ClassKey, rng utils.Random, logger *log.Logger) (*Game, error) {
	class, err := defs.FindClass(tuning.Classes, key)
	if err != nil {
		return nil, err
	}
	return NewGame(tuning, class, rng, logger), nil
}

func (g *Game) build() {
	t := g.Tuning
	ecs := entity.NewECS()
	sched := clock.NewScheduler()
	bus := event.NewDispatcher()

	g.ECS, g.Clock, g.EventDispatcher = ecs, sched, bus
	g.phase = component.PhaseRunning
	g.kills = 0

	center := types.Vec2{X: t.Arena.Width / 2, Y: t.Arena.Height / 2}
	ecs.Player = component.NewPlayer(t.Player, t.Progression, g.Class.Base, center)

	g.Proximity = system.NewProximity(ecs)
	g.DamageSystem = system.NewDamageSystem(ecs, sched, bus, t.Enemy, g.logger)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, sched, g.DamageSystem, t.Status)
	g.GroundEffectSystem = system.NewGroundEffectSystem(ecs, sched, g.Proximity, g.DamageSystem, g.StatusEffectSystem, t.Flask, g.logger)
	g.AllySystem = system.NewAllySystem(ecs, sched, bus, g.Proximity, g.DamageSystem, t.Allies, g.logger)
	g.WeaponSystem = system.NewWeaponSystem(ecs, sched, bus, g.Proximity, g.DamageSystem,
		system.WeaponTuning{Flask: t.Flask, Shovel: t.Shovel, Bell: t.Bell}, g.logger)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, sched, g.Proximity, g.DamageSystem, g.GroundEffectSystem, g.AllySystem, g.Rng, t.Shovel)
	g.OrbSystem = system.NewOrbSystem(ecs, bus, t.Orbs)
	g.ProgressionSystem = system.NewProgressionSystem(ecs, bus, g.Rng, t.Progression, t.Upgrades, g.logger)
	g.WaveSystem = system.NewWaveSystem(ecs, sched, bus, g.Rng, t.Waves, t.Enemy, t.Arena, g.logger)
	g.MovementSystem = system.NewMovementSystem(ecs, t.Enemy)
	g.PlayerSystem = system.NewPlayerSystem(ecs, sched, bus, g.Proximity, t.Player, t.Arena, g.logger)
	g.AuraSystem = system.NewAuraSystem(ecs, sched, g.Proximity, g.DamageSystem)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, sched, bus, floatingTextLifetime)
	g.PassiveSystem = system.NewPassiveSystem(g.Class.PassiveKey, system.PassiveDeps{
		ECS:         ecs,
		Clock:       sched,
		Bus:         bus,
		Proximity:   g.Proximity,
		Damage:      g.DamageSystem,
		Weapons:     g.WeaponSystem,
		Allies:      g.AllySystem,
		RNG:         g.Rng,
		Weapon:      g.Class.WeaponKey,
		Aim:         g.autoAim,
		Logger:      g.logger,
		Alchemist:   t.Alchemist,
		Gravedigger: t.Gravedigger,
		Sentinel:    t.Sentinel,
	})

	listener := &GameEventListener{game: g}
	bus.Subscribe(event.PlayerDeath, listener)
	bus.Subscribe(event.EnemyKilled, listener)

	g.PassiveSystem.Activate()
	g.AuraSystem.Start()
	g.WaveSystem.Start()
	g.logger.Info("run started", "class", g.Class.Key, "weapon", g.Class.WeaponKey, "passive", g.Class.PassiveKey)
}

// Restart начинает новый забег тем же классом. Всё состояние прежнего забега отбрасывается.
func (g *Game) Restart() {
	g.Clock.Reset()
	g.EventDispatcher.Clear()
	g.build()
}

// Update продвигает симуляцию на dt.
//
// Во время выбора улучшения мир стоит целиком, включая часы: ни движения,
// ни волн, ни тиков DOT. Принимается только Choice.
func (g *Game) Update(dt time.Duration, in Input) error {
	switch g.phase {
	case component.PhaseGameOver:
		return ErrRunOver
	case component.PhaseSelecting:
		if in.Choice > 0 {
			g.ProgressionSystem.Choose(in.Choice - 1)
		}
		g.syncPhase()
		return nil
	}
	if dt <= 0 {
		return nil
	}
	seconds := dt.Seconds()

	g.PlayerSystem.Move(in.MoveX, in.MoveY, seconds)
	if in.ActivatePassive {
		g.PassiveSystem.Trigger()
	}
	g.fire(in)

	g.MovementSystem.Update(seconds)
	g.ProjectileSystem.Update(seconds)
	g.AllySystem.Update(seconds)
	g.AuraSystem.Update()
	g.PlayerSystem.Update()
	if g.phase == component.PhaseGameOver {
		return nil
	}
	g.Clock.Advance(dt)
	g.OrbSystem.Update(seconds)
	g.VisualEffectSystem.Update()
	g.syncPhase()
	return nil
}

func (g *Game) fire(in Input) {
	key := g.Class.WeaponKey
	switch {
	case in.Fire && in.HasAim:
		g.WeaponSystem.Use(key, in.Aim)
	case in.Fire || g.Tuning.AutoFire:
		if target := g.Proximity.NearestEnemy(g.ECS.Player.Pos, 0); target != nil {
			g.WeaponSystem.Use(key, target.Pos)
		} else if in.Fire {
			g.WeaponSystem.Use(key, g.autoAim())
		}
	}
}

// autoAim — ближайший враг или точка справа от игрока.
func (g *Game) autoAim() types.Vec2 {
	p := g.ECS.Player
	if target := g.Proximity.NearestEnemy(p.Pos, 0); target != nil {
		return target.Pos
	}
	return p.Pos.Add(types.Vec2{X: 1})
}

func (g *Game) syncPhase() {
	if g.phase == component.PhaseGameOver {
		return
	}
	if g.ProgressionSystem.Selecting() {
		g.phase = component.PhaseSelecting
	} else {
		g.phase = component.PhaseRunning
	}
}

// Choose — выбор улучшения вне Update (для хостов с меню). i считается с нуля.
func (g *Game) Choose(i int) error {
	if g.phase == component.PhaseGameOver {
		return ErrRunOver
	}
	g.ProgressionSystem.Choose(i)
	g.syncPhase()
	return nil
}

func (g *Game) Phase() component.Phase { return g.phase }

func (g *Game) Player() *component.Player { return g.ECS.Player }

// Enemies — враги в порядке ID, включая умирающих (для анимации смерти).
func (g *Game) Enemies() []*component.Enemy {
	out := make([]*component.Enemy, 0, len(g.ECS.Enemies))
	for _, id := range entity.SortedIDs(g.ECS.Enemies) {
		out = append(out, g.ECS.Enemies[id])
	}
	return out
}

// Offered — варианты улучшений, пока идёт выбор.
func (g *Game) Offered() []defs.UpgradeDefinition {
	return g.ProgressionSystem.Offered()
}

func (g *Game) HUD() HUD {
	p := g.ECS.Player
	key := g.Class.WeaponKey
	cd := 0.0
	if full := g.WeaponSystem.Cooldown(key); full > 0 {
		cd = utils.Percent(float64(g.WeaponSystem.Remaining(key)), float64(full))
	}
	return HUD{
		HPPercent:     utils.Percent(float64(p.CurrentHP), float64(p.MaxHP)),
		XPPercent:     utils.Percent(float64(p.XP), float64(p.XPToNext)),
		ChargePercent: g.PassiveSystem.Percent(),
		ChargeReady:   g.PassiveSystem.Ready(),
		HasCharge:     g.PassiveSystem.HasCharge(),
		Level:         p.Level,
		XP:            p.XP,
		XPToNext:      p.XPToNext,
		CurrentHP:     p.CurrentHP,
		MaxHP:         p.MaxHP,
		Wave:          g.WaveSystem.WaveCount,
		Cooldown:      cd,
		Kills:         g.kills,
	}
}

// GameEventListener реагирует на события конца забега.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDeath:
		l.game.phase = component.PhaseGameOver
		l.game.WaveSystem.Stop()
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok && data.DropsXP {
			l.game.kills++
		}
	}
}
