package component

import "chaos-rush/internal/types"

// XPOrb — сфера опыта, выпадает из врага.
type XPOrb struct {
	ID        types.EntityID
	Pos       types.Vec2
	Value     int
	Collected bool // защита от двойного подбора
	Attracted bool       // внутри радиуса магнита в последнем кадре
	Velocity  types.Vec2 // вне магнита гаснет по OrbTuning.Friction
}

// Collect помечает сферу подобранной. Повторный вызов возвращает false.
func (o *XPOrb) Collect() bool {
	if o == nil || o.Collected {
		return false
	}
	o.Collected = true
	return true
}
