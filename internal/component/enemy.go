package component

import (
	"time"

	"chaos-rush/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID     types.EntityID
	Pos    types.Vec2
	Radius float64

	Speed         float64
	OriginalSpeed float64 // скорость до замедления
	HP            int
	MaxHP         int
	XPValue       int

	Lifecycle Lifecycle
	DiedAt    time.Duration
	Knockback Knockback

	// Статусы. Повторное наложение активного статуса ничего не делает.
	OnFire   bool
	Poisoned bool
	Slowed   bool
	Marked   bool // задет лопатой, может стать призраком

	FlashUntil time.Duration
}

func (e *Enemy) IsAlive() bool {
	return e != nil && e.Lifecycle == Alive
}

// IsDead is true once the death has been processed (Dying or Removed).
func (e *Enemy) IsDead() bool {
	return e == nil || e.Lifecycle != Alive
}

// TakeDamage снимает здоровье живому врагу и сообщает, убил ли этот удар.
// Для мёртвого врага вызов ничего не меняет, поэтому смерть наступает ровно один раз.
func (e *Enemy) TakeDamage(n int) (killed bool) {
	if !e.IsAlive() || n <= 0 {
		return false
	}
	e.HP -= n
	if e.HP <= 0 {
		e.Lifecycle = Dying
		return true
	}
	return false
}

// HPPercent — доля здоровья для индикатора.
func (e *Enemy) HPPercent() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return max(0, float64(e.HP)/float64(e.MaxHP))
}
