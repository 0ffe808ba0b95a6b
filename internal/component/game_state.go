package component

// Phase — фаза забега. Симуляция идёт только в PhaseRunning.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseSelecting
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseSelecting:
		return "selecting"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}
