package component

// Lifecycle — явное состояние жизни сущности: Alive → Dying → Removed.
type Lifecycle int

const (
	Alive Lifecycle = iota
	Dying           // проигрывается анимация смерти, урон и эффекты больше не действуют
	Removed
)

func (l Lifecycle) String() string {
	switch l {
	case Alive:
		return "alive"
	case Dying:
		return "dying"
	case Removed:
		return "removed"
	}
	return "unknown"
}
