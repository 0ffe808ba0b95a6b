// cmd/game/main.go
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"chaos-rush/internal/config"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/logging"
	"chaos-rush/internal/sfx"
	"chaos-rush/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal("failed to load .env", "err", err)
	}
	settings := config.FromEnv()
	logger := logging.New(os.Stderr, logging.ParseLevel(settings.LogLevel))
	logging.SetDefault(logger)

	tuning, err := loadTuning(settings.TuningPath)
	if err != nil {
		logger.Fatal("failed to load tuning", "path", settings.TuningPath, "err", err)
	}

	session := &state.Session{Tuning: tuning, Seed: settings.Seed, Logger: logger}
	if settings.Sound {
		sound := sfx.NewSoundManager(logger)
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			session.Sound = sound
			defer sound.Close()
		}
	}

	sm := state.NewStateMachine()
	if settings.Class != "" {
		class, err := defs.FindClass(tuning.Classes, defs.ClassKey(settings.Class))
		if err != nil {
			logger.Warn("class from environment ignored", "err", err)
		} else {
			sm.SetState(state.NewRunState(sm, session, session.NewRun(class)))
		}
	}
	if sm.Current() == nil {
		sm.SetState(state.NewClassSelectState(sm, session))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Chaos Rush")
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game stopped", "err", err)
	}
}

func loadTuning(path string) (defs.Tuning, error) {
	if path == "" {
		return defs.DefaultTuning(), nil
	}
	t, err := defs.LoadTuning(path)
	if err != nil {
		return defs.Tuning{}, err
	}
	return *t, nil
}
