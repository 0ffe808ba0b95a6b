package component

import (
	"time"

	"chaos-rush/internal/defs"
	"chaos-rush/internal/types"
)

// Ally — призванный союзник: скелет от лопаты или призрак от жатвы душ.
// Ищет ближайшего врага, бьёт при сближении и взрывается.
type Ally struct {
	ID            types.EntityID
	Kind          defs.AllyKind
	Pos           types.Vec2
	Speed         float64
	Damage        int
	DetectRadius  float64
	ContactRadius float64
	ExpiresAt     time.Duration
	Lifecycle     Lifecycle
}

func (a *Ally) IsAlive() bool {
	return a != nil && a.Lifecycle == Alive
}
