// internal/component/status_effect.go
package component

import (
	"time"

	"chaos-rush/internal/defs"
	"chaos-rush/internal/types"
)

// GroundEffect — неподвижная зона от разбитой колбы. Каждый тик заново
// проверяет, кто внутри, и накладывает свой статус.
type GroundEffect struct {
	ID        types.EntityID
	Kind      defs.GroundEffectKind
	Pos       types.Vec2
	Radius    float64
	Damage    int
	ExpiresAt time.Duration
	TicksLeft int
}
