// internal/state/class_select_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chaos-rush/internal/ui"
)

var choiceKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// ClassSelectState — стартовый экран: выбор класса клавишей или кликом.
type ClassSelectState struct {
	sm      *StateMachine
	session *Session
	view    *ui.ClassSelect
}

func NewClassSelectState(sm *StateMachine, session *Session) *ClassSelectState {
	return &ClassSelectState{
		sm:      sm,
		session: session,
		view:    ui.NewClassSelect(session.Tuning.Classes),
	}
}

func (s *ClassSelectState) Enter() {}

func (s *ClassSelectState) Update(deltaTime float64) {
	choice := pressedChoice()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if i := s.view.HitTest(x, y); i >= 0 {
			choice = i + 1
		}
	}
	classes := s.session.Tuning.Classes
	if choice < 1 || choice > len(classes) {
		return
	}
	s.sm.SetState(NewRunState(s.sm, s.session, s.session.NewRun(classes[choice-1])))
}

func (s *ClassSelectState) Draw(screen *ebiten.Image) {
	x, y := ebiten.CursorPosition()
	s.view.Draw(screen, x, y)
}

func (s *ClassSelectState) Exit() {}

// pressedChoice возвращает 1-based номер нажатой цифровой клавиши или 0.
func pressedChoice() int {
	for i, k := range choiceKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i + 1
		}
	}
	return 0
}
