// internal/state/session.go
package state

import (
	"github.com/charmbracelet/log"

	"chaos-rush/internal/app"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/sfx"
	"chaos-rush/internal/utils"
)

// Session — то, что живёт дольше одного забега: баланс, сид, логгер и звук.
type Session struct {
	Tuning defs.Tuning
	Seed   int64
	Logger *log.Logger
	Sound  *sfx.SoundManager // nil — без звука
}

// NewRun собирает забег выбранным классом.
func (s *Session) NewRun(class defs.ClassDefinition) *app.Game {
	g := app.NewGame(s.Tuning, class, utils.NewPRNGService(s.Seed), s.Logger)
	s.attach(g)
	return g
}

// Restart перезапускает забег и заново подключает звук к новой шине событий.
func (s *Session) Restart(g *app.Game) {
	g.Restart()
	s.attach(g)
}

func (s *Session) attach(g *app.Game) {
	if s.Sound != nil {
		s.Sound.Attach(g.EventDispatcher)
	}
}
