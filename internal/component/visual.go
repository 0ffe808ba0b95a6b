// internal/component/visual.go
package component

import (
	"image/color"
	"time"

	"chaos-rush/internal/types"
)

// FloatingText — всплывающая надпись («+7 XP», название способности).
type FloatingText struct {
	ID        types.EntityID
	Text      string
	Pos       types.Vec2
	Color     color.RGBA
	SpawnedAt time.Duration
	Lifetime  time.Duration
}

// Progress — доля прожитого времени в [0, 1].
func (f *FloatingText) Progress(now time.Duration) float64 {
	if f.Lifetime <= 0 {
		return 1
	}
	p := float64(now-f.SpawnedAt) / float64(f.Lifetime)
	return min(1, max(0, p))
}
