package system

import (
	"time"

	"github.com/charmbracelet/log"

	"chaos-rush/internal/clock"
	"chaos-rush/internal/component"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/event"
	"chaos-rush/internal/types"
)

// WeaponTuning — то, что нужно оружию из общего документа баланса.
type WeaponTuning struct {
	Flask  defs.FlaskTuning
	Shovel defs.ShovelTuning
	Bell   defs.BellTuning
}

// WeaponSystem: READY → (Use) → ON_COOLDOWN → (истёк срок) → READY.
// Таблица перезарядок хранит момент готовности и заполняется при первом выстреле.
type WeaponSystem struct {
	ecs       *entity.ECS
	clock     *clock.Scheduler
	bus       *event.Dispatcher
	proximity *Proximity
	damage    *DamageSystem
	tuning    WeaponTuning
	logger    *log.Logger
	cooldowns map[defs.WeaponKey]time.Duration
}

func NewWeaponSystem(ecs *entity.ECS, sched *clock.Scheduler, bus *event.Dispatcher, proximity *Proximity, damage *DamageSystem, tuning WeaponTuning, logger *log.Logger) *WeaponSystem {
	return &WeaponSystem{
		ecs:       ecs,
		clock:     sched,
		bus:       bus,
		proximity: proximity,
		damage:    damage,
		tuning:    tuning,
		logger:    logger,
		cooldowns: make(map[defs.WeaponKey]time.Duration),
	}
}

// Cooldown — полная перезарядка оружия.
func (s *WeaponSystem) Cooldown(key defs.WeaponKey) time.Duration {
	switch key {
	case defs.WeaponVolatileFlask:
		return s.tuning.Flask.Cooldown
	case defs.WeaponRitualShovel:
		return s.tuning.Shovel.Cooldown
	case defs.WeaponPurificationBell:
		return s.tuning.Bell.Cooldown
	}
	return 0
}

// Ready сообщает, можно ли стрелять.
func (s *WeaponSystem) Ready(key defs.WeaponKey) bool {
	until, ok := s.cooldowns[key]
	return !ok || s.clock.Now() >= until
}

// Remaining — сколько осталось до готовности.
func (s *WeaponSystem) Remaining(key defs.WeaponKey) time.Duration {
	until, ok := s.cooldowns[key]
	if !ok {
		return 0
	}
	return max(0, until-s.clock.Now())
}

// Use стреляет, если оружие готово, и запускает перезарядку.
// На перезарядке вызов ничего не меняет и возвращает false.
func (s *WeaponSystem) Use(key defs.WeaponKey, aim types.Vec2) bool {
	if !key.Valid() {
		s.logger.Warn("unknown weapon, skipping", "weapon", key)
		return false
	}
	if !s.Ready(key) {
		return false
	}
	if !s.Fire(key, aim) {
		return false
	}
	s.cooldowns[key] = s.clock.Now() + s.Cooldown(key)
	return true
}

// ResetAllCooldowns очищает таблицу целиком: всё оружие сразу готово.
func (s *WeaponSystem) ResetAllCooldowns() {
	clear(s.cooldowns)
}

// Fire срабатывает без проверки перезарядки. Используется залпом алхимика.
func (s *WeaponSystem) Fire(key defs.WeaponKey, aim types.Vec2) bool {
	p := s.ecs.Player
	if p == nil {
		return false
	}
	switch key {
	case defs.WeaponVolatileFlask:
		s.launch(key, p.Pos, aim, s.tuning.Flask.Speed, s.tuning.Flask.Lifespan, s.tuning.Flask.HitRadius)
	case defs.WeaponRitualShovel:
		s.launch(key, p.Pos, aim, s.tuning.Shovel.Speed, s.tuning.Shovel.Outbound, s.tuning.Shovel.HitRadius)
	case defs.WeaponPurificationBell:
		s.ring(p)
	default:
		s.logger.Warn("unknown weapon, skipping", "weapon", key)
		return false
	}
	s.bus.Emit(event.WeaponFired, event.WeaponFiredData{Weapon: string(key), Origin: p.Pos, Aim: aim})
	return true
}

func (s *WeaponSystem) launch(key defs.WeaponKey, from, aim types.Vec2, speed float64, lifespan time.Duration, radius float64) *component.Projectile {
	dir := aim.Sub(from).Normalize()
	if dir.IsZero() {
		dir = types.Vec2{X: 1}
	}
	proj := &component.Projectile{
		Weapon:    key,
		Pos:       from,
		Velocity:  dir.Scale(speed),
		Radius:    radius,
		SpawnedAt: s.clock.Now(),
		Lifespan:  lifespan,
	}
	s.ecs.AddProjectile(proj)
	return proj
}

// ring — мгновенный импульс колокола вокруг игрока.
func (s *WeaponSystem) ring(p *component.Player) {
	bell := s.tuning.Bell
	dmg := p.ScaledDamage(bell.Damage) + p.PushDamageBonus
	force := bell.Knockback * p.KnockbackBonus
	for _, e := range s.proximity.EnemiesInRadius(p.Pos, bell.Radius) {
		dir := e.Pos.Sub(p.Pos).Normalize()
		if dir.IsZero() {
			dir = types.Vec2{X: 1}
		}
		e.Knockback.Velocity = e.Knockback.Velocity.Add(dir.Scale(force))
		pos := e.Pos
		s.damage.ApplyDamage(e, dmg)
		s.bus.Emit(event.EnemyPushed, event.EnemyPushedData{EnemyID: e.ID, Position: pos, Damage: dmg})
	}
}
