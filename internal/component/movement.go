// component/movement.go
package component

import "chaos-rush/internal/types"

// Knockback — импульс отбрасывания поверх преследования. Затухает экспоненциально.
type Knockback struct {
	Velocity types.Vec2
}

// Active сообщает, что импульс ещё заметен.
func (k Knockback) Active() bool {
	return k.Velocity.Len() > 1
}
