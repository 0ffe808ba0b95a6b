// internal/system/projectile.go
package system

import (
	"chaos-rush/internal/clock"
	"chaos-rush/internal/component"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/types"
	"chaos-rush/internal/utils"
)

// ProjectileSystem двигает колбы и лопаты.
//
// Колба разбивается о первого врага или по истечении Lifespan и оставляет
// наземный эффект случайного вида. Лопата бьёт первого встречного врага за бросок,
// после Outbound разворачивается к игроку и исчезает у него в руках
// или по истечении ReturnWindow.
type ProjectileSystem struct {
	ecs       *entity.ECS
	clock     *clock.Scheduler
	proximity *Proximity
	damage    *DamageSystem
	ground    *GroundEffectSystem
	allies    *AllySystem
	rng       utils.Random
	shovel    defs.ShovelTuning
}

func NewProjectileSystem(ecs *entity.ECS, sched *clock.Scheduler, proximity *Proximity, damage *DamageSystem, ground *GroundEffectSystem, allies *AllySystem, rng utils.Random, shovel defs.ShovelTuning) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:       ecs,
		clock:     sched,
		proximity: proximity,
		damage:    damage,
		ground:    ground,
		allies:    allies,
		rng:       rng,
		shovel:    shovel,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		if proj.Done {
			s.removeProjectile(id)
			continue
		}
		switch proj.Weapon {
		case defs.WeaponVolatileFlask:
			s.updateFlask(proj, deltaTime)
		case defs.WeaponRitualShovel:
			s.updateShovel(proj, deltaTime)
		default:
			proj.Done = true
		}
		if proj.Done {
			s.removeProjectile(id)
		}
	}
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Projectiles, id)
}

func (s *ProjectileSystem) updateFlask(proj *component.Projectile, deltaTime float64) {
	proj.Pos = proj.Pos.Add(proj.Velocity.Scale(deltaTime))
	hit := len(s.proximity.EnemiesTouching(proj.Pos, proj.Radius)) > 0
	expired := s.clock.Now()-proj.SpawnedAt >= proj.Lifespan
	if hit || expired {
		s.ground.Spawn(RollKind(s.rng), proj.Pos)
		proj.Done = true
	}
}

func (s *ProjectileSystem) updateShovel(proj *component.Projectile, deltaTime float64) {
	p := s.ecs.Player
	elapsed := s.clock.Now() - proj.SpawnedAt
	if !proj.Returning && elapsed >= proj.Lifespan {
		proj.Returning = true
	}
	if proj.Returning {
		if p == nil || elapsed >= proj.Lifespan+s.shovel.ReturnWindow {
			proj.Done = true
			return
		}
		var arrived bool
		proj.Pos, arrived = utils.MoveToward(proj.Pos, p.Pos, s.shovel.ReturnSpeed*deltaTime)
		if arrived || Overlaps(proj.Pos, proj.Radius, p.Pos, p.Radius) {
			proj.Done = true
		}
		return
	}
	proj.Pos = proj.Pos.Add(proj.Velocity.Scale(deltaTime))
	if proj.HitOnce {
		return
	}
	targets := s.proximity.EnemiesTouching(proj.Pos, proj.Radius)
	if len(targets) == 0 {
		return
	}
	s.hitWithShovel(proj, targets[0])
}

func (s *ProjectileSystem) hitWithShovel(proj *component.Projectile, e *component.Enemy) {
	proj.HitOnce = true
	e.Marked = true
	hitPos := e.Pos
	dmg := s.shovel.Damage
	summons := 1
	if p := s.ecs.Player; p != nil {
		dmg = p.ScaledDamage(dmg)
		summons += p.SummonCountBonus
	}
	s.damage.ApplyDamage(e, dmg)
	if utils.Chance(s.rng, s.shovel.SummonChance) {
		for i := 0; i < summons; i++ {
			s.allies.Summon(defs.AllySkeleton, hitPos)
		}
	}
}
