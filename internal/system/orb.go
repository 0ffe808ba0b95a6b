package system

import (
	"fmt"
	"math"

	"chaos-rush/internal/component"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/event"
	"chaos-rush/internal/types"
	"chaos-rush/internal/utils"
)

// OrbSystem роняет сферы опыта из убитых врагов, притягивает их магнитом
// и засчитывает подбор ровно один раз.
//
// Притяжение пересчитывается каждый кадр. Сфера, покинувшая радиус магнита,
// летит по инерции, и скорость гаснет до доли Friction за секунду.
type OrbSystem struct {
	ecs    *entity.ECS
	bus    *event.Dispatcher
	tuning defs.OrbTuning
}

func NewOrbSystem(ecs *entity.ECS, bus *event.Dispatcher, tuning defs.OrbTuning) *OrbSystem {
	s := &OrbSystem{ecs: ecs, bus: bus, tuning: tuning}
	bus.Subscribe(event.EnemyKilled, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *OrbSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.EnemyKilledData)
	if !ok || !data.DropsXP || data.XPValue <= 0 {
		return
	}
	s.ecs.AddOrb(&component.XPOrb{Pos: data.Position, Value: data.XPValue})
}

func (s *OrbSystem) Update(deltaTime float64) {
	p := s.ecs.Player
	if p == nil {
		return
	}
	for _, id := range entity.SortedIDs(s.ecs.Orbs) {
		o := s.ecs.Orbs[id]
		if o.Collected {
			delete(s.ecs.Orbs, id)
			continue
		}
		s.move(o, p.Pos, p.MagnetRadius, deltaTime)
		if p.Pos.Dist(o.Pos) <= s.tuning.PickupRadius+p.Radius {
			s.Collect(o)
		}
	}
}

func (s *OrbSystem) move(o *component.XPOrb, target types.Vec2, magnet, deltaTime float64) {
	o.Attracted = target.Dist(o.Pos) <= magnet
	if o.Attracted {
		o.Velocity = target.Sub(o.Pos).Normalize().Scale(s.tuning.Speed)
		o.Pos, _ = utils.MoveToward(o.Pos, target, s.tuning.Speed*deltaTime)
		return
	}
	if o.Velocity.IsZero() {
		return
	}
	o.Pos = o.Pos.Add(o.Velocity.Scale(deltaTime))
	o.Velocity = o.Velocity.Scale(math.Pow(s.tuning.Friction, deltaTime))
	if o.Velocity.Len() < 1 {
		o.Velocity = types.Vec2{}
	}
}

// Collect засчитывает сферу. Повторный вызов для той же сферы ничего не делает.
func (s *OrbSystem) Collect(o *component.XPOrb) bool {
	if !o.Collect() {
		return false
	}
	delete(s.ecs.Orbs, o.ID)
	s.bus.Emit(event.XPPickup, event.XPPickupData{OrbID: o.ID, Position: o.Pos, Value: o.Value})
	s.bus.Emit(event.FloatingText, event.FloatingTextData{
		Text: fmt.Sprintf("+%d XP", o.Value), Position: o.Pos, Color: TextColorXP,
	})
	return true
}
