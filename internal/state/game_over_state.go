// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chaos-rush/internal/app"
	"chaos-rush/internal/config"
	"chaos-rush/internal/ui"
	"chaos-rush/pkg/render"
)

// GameOverState показывает итоги. R — тот же класс заново, C — выбор класса.
type GameOverState struct {
	sm      *StateMachine
	session *Session
	game    *app.Game
	arena   *ui.ArenaRenderer
}

func NewGameOverState(sm *StateMachine, session *Session, game *app.Game) *GameOverState {
	return &GameOverState{sm: sm, session: session, game: game, arena: ui.NewArenaRenderer()}
}

func (s *GameOverState) Enter() {
	hud := s.game.HUD()
	s.session.Logger.Info("run over", "class", s.game.Class.Key, "level", hud.Level, "wave", hud.Wave, "kills", hud.Kills)
}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.session.Restart(s.game)
		s.sm.SetState(NewRunState(s.sm, s.session, s.game))
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.sm.SetState(NewClassSelectState(s.sm, s.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.arena.Draw(screen, s.game)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, render.WithAlpha(config.TextDarkColor, 0.75), false)
	hud := s.game.HUD()
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	ui.DrawTextCentered(screen, "YOU DIED", cx, cy-40, config.RiskyColor)
	ui.DrawTextCentered(screen, fmt.Sprintf("%s  level %d  wave %d  kills %d", s.game.Class.Name, hud.Level, hud.Wave, hud.Kills), cx, cy, config.TextLightColor)
	ui.DrawTextCentered(screen, "[R] restart   [C] change class", cx, cy+30, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
