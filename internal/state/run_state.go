// internal/state/run_state.go
package state

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chaos-rush/internal/app"
	"chaos-rush/internal/component"
	"chaos-rush/internal/types"
	"chaos-rush/internal/ui"
)

// RunState — идущий забег: ввод, симуляция, отрисовка мира, HUD и меню улучшений.
type RunState struct {
	sm      *StateMachine
	session *Session
	game    *app.Game
	arena   *ui.ArenaRenderer
	hud     *ui.HUDView
	menu    *ui.UpgradeMenu
}

func NewRunState(sm *StateMachine, session *Session, game *app.Game) *RunState {
	return &RunState{
		sm:      sm,
		session: session,
		game:    game,
		arena:   ui.NewArenaRenderer(),
		hud:     ui.NewHUDView(),
		menu:    ui.NewUpgradeMenu(),
	}
}

func (s *RunState) Enter() {}

func (s *RunState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	in := s.readInput()
	err := s.game.Update(time.Duration(deltaTime*float64(time.Second)), in)
	if errors.Is(err, app.ErrRunOver) || s.game.Phase() == component.PhaseGameOver {
		s.sm.SetState(NewGameOverState(s.sm, s.session, s.game))
	}
}

func (s *RunState) readInput() app.Input {
	var in app.Input
	if s.game.Phase() == component.PhaseSelecting {
		in.Choice = pressedChoice()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if i := s.menu.HitTest(x, y); i >= 0 {
				in.Choice = i + 1
			}
		}
		return in
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY++
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Fire = true
		in.HasAim = true
		in.Aim = types.Vec2{X: float64(x), Y: float64(y)}
	}
	in.ActivatePassive = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	return in
}

func (s *RunState) Draw(screen *ebiten.Image) {
	s.arena.Draw(screen, s.game)
	s.hud.Draw(screen, s.game.HUD(), s.game.Class.Name)
	if s.game.Phase() == component.PhaseSelecting {
		s.menu.SetOptions(s.game.Offered())
		x, y := ebiten.CursorPosition()
		s.menu.Draw(screen, x, y)
	}
}

func (s *RunState) Exit() {}
