// internal/entity/ecs.go
package entity

import (
	"slices"

	"chaos-rush/internal/component"
	"chaos-rush/internal/types"
)

// ECS хранит все сущности забега. Порядок обхода карт в Go случаен,
// поэтому всё, что влияет на симуляцию, обходится по отсортированным ID.
type ECS struct {
	NextID        types.EntityID
	Player        *component.Player
	Enemies       map[types.EntityID]*component.Enemy
	Orbs          map[types.EntityID]*component.XPOrb
	Allies        map[types.EntityID]*component.Ally
	Projectiles   map[types.EntityID]*component.Projectile
	GroundEffects map[types.EntityID]*component.GroundEffect
	Texts         map[types.EntityID]*component.FloatingText
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Orbs:          make(map[types.EntityID]*component.XPOrb),
		Allies:        make(map[types.EntityID]*component.Ally),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		GroundEffects: make(map[types.EntityID]*component.GroundEffect),
		Texts:         make(map[types.EntityID]*component.FloatingText),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SortedIDs возвращает ключи карты по возрастанию.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	var ids []types.EntityID
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// AddEnemy присваивает врагу ID и регистрирует его.
func (ecs *ECS) AddEnemy(e *component.Enemy) types.EntityID {
	e.ID = ecs.NewEntity()
	ecs.Enemies[e.ID] = e
	return e.ID
}

func (ecs *ECS) AddOrb(o *component.XPOrb) types.EntityID {
	o.ID = ecs.NewEntity()
	ecs.Orbs[o.ID] = o
	return o.ID
}

func (ecs *ECS) AddAlly(a *component.Ally) types.EntityID {
	a.ID = ecs.NewEntity()
	ecs.Allies[a.ID] = a
	return a.ID
}

func (ecs *ECS) AddProjectile(p *component.Projectile) types.EntityID {
	p.ID = ecs.NewEntity()
	ecs.Projectiles[p.ID] = p
	return p.ID
}

func (ecs *ECS) AddGroundEffect(g *component.GroundEffect) types.EntityID {
	g.ID = ecs.NewEntity()
	ecs.GroundEffects[g.ID] = g
	return g.ID
}

func (ecs *ECS) AddText(f *component.FloatingText) types.EntityID {
	f.ID = ecs.NewEntity()
	ecs.Texts[f.ID] = f
	return f.ID
}

// Clear удаляет все сущности, кроме счётчика ID.
func (ecs *ECS) Clear() {
	ecs.Player = nil
	clear(ecs.Enemies)
	clear(ecs.Orbs)
	clear(ecs.Allies)
	clear(ecs.Projectiles)
	clear(ecs.GroundEffects)
	clear(ecs.Texts)
}
