// internal/component/projectile.go
package component

import (
	"time"

	"chaos-rush/internal/defs"
	"chaos-rush/internal/types"
)

// Projectile — летящая колба или лопата.
type Projectile struct {
	ID        types.EntityID
	Weapon    defs.WeaponKey
	Pos       types.Vec2
	Velocity  types.Vec2
	Radius    float64
	SpawnedAt time.Duration
	Lifespan  time.Duration // для лопаты — время полёта до разворота
	Returning bool
	HitOnce   bool // лопата наносит урон только первому врагу за бросок
	Done      bool
}
