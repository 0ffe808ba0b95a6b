// cmd/tui/main.go
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"chaos-rush/internal/app"
	"chaos-rush/internal/component"
	"chaos-rush/internal/config"
	"chaos-rush/internal/defs"
	"chaos-rush/internal/entity"
	"chaos-rush/internal/logging"
	"chaos-rush/internal/types"
	"chaos-rush/internal/utils"
)

const (
	frame    = 16 * time.Millisecond
	holdMove = 150 * time.Millisecond // терминал не сообщает об отпускании клавиши
)

var (
	styleDefault  = tcell.StyleDefault
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBurn     = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	stylePoison   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSlow     = tcell.StyleDefault.Foreground(tcell.ColorLightBlue)
	styleOrb      = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleAlly     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRisky    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSelected = tcell.StyleDefault.Reverse(true)
)

// tui — терминальный хост: тот же забег, отрисованный символами.
type tui struct {
	screen   tcell.Screen
	session  settings
	game     *app.Game
	classes  []defs.ClassDefinition
	moveX    float64
	moveY    float64
	movedAt  time.Time
	passive  bool
	fire     bool
	choice   int
	quit     bool
	lastTick time.Time
}

type settings struct {
	tuning defs.Tuning
	seed   int64
	logger *log.Logger
}

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}
	env := config.FromEnv()
	// Лог в stderr испортил бы экран.
	logger := logging.Discard()

	tuning := defs.DefaultTuning()
	if env.TuningPath != "" {
		t, err := defs.LoadTuning(env.TuningPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load tuning: %v\n", err)
			os.Exit(1)
		}
		tuning = *t
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	t := &tui{
		screen:   screen,
		session:  settings{tuning: tuning, seed: env.Seed, logger: logger},
		classes:  tuning.Classes,
		lastTick: time.Now(),
	}
	if env.Class != "" {
		if class, err := defs.FindClass(tuning.Classes, defs.ClassKey(env.Class)); err == nil {
			t.start(class)
		}
	}
	t.run()
}

func (t *tui) start(class defs.ClassDefinition) {
	t.game = app.NewGame(t.session.tuning, class, utils.NewPRNGService(t.session.seed), t.session.logger)
}

func (t *tui) run() {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- t.screen.PollEvent()
		}
	}()

	for !t.quit {
		select {
		case ev := <-events:
			t.handle(ev)
		case now := <-ticker.C:
			t.tick(now)
			t.draw()
		}
	}
}

func (t *tui) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.quit = true
			return
		case tcell.KeyLeft:
			t.move(-1, 0)
		case tcell.KeyRight:
			t.move(1, 0)
		case tcell.KeyUp:
			t.move(0, -1)
		case tcell.KeyDown:
			t.move(0, 1)
		case tcell.KeyRune:
			t.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *tui) handleRune(r rune) {
	switch r {
	case 'q':
		t.quit = true
	case 'a':
		t.move(-1, 0)
	case 'd':
		t.move(1, 0)
	case 'w':
		t.move(0, -1)
	case 's':
		t.move(0, 1)
	case ' ':
		t.passive = true
	case 'f':
		t.fire = true
	case 'r':
		if t.game != nil && t.game.Phase() == component.PhaseGameOver {
			t.game.Restart()
		}
	case 'c':
		if t.game != nil && t.game.Phase() == component.PhaseGameOver {
			t.game = nil
		}
	case '1', '2', '3', '4', '5':
		n := int(r - '0')
		if t.game == nil {
			if n <= len(t.classes) {
				t.start(t.classes[n-1])
			}
			return
		}
		t.choice = n
	}
}

func (t *tui) move(dx, dy float64) {
	if time.Since(t.movedAt) > holdMove {
		t.moveX, t.moveY = 0, 0
	}
	if dx != 0 {
		t.moveX = dx
	}
	if dy != 0 {
		t.moveY = dy
	}
	t.movedAt = time.Now()
}

func (t *tui) tick(now time.Time) {
	dt := now.Sub(t.lastTick)
	t.lastTick = now
	if limit := time.Duration(config.MaxDeltaTime * float64(time.Second)); dt > limit {
		dt = limit
	}
	if t.game == nil {
		return
	}
	if now.Sub(t.movedAt) > holdMove {
		t.moveX, t.moveY = 0, 0
	}
	in := app.Input{
		MoveX:           t.moveX,
		MoveY:           t.moveY,
		Fire:            t.fire,
		ActivatePassive: t.passive,
		Choice:          t.choice,
	}
	t.fire, t.passive, t.choice = false, false, 0
	if err := t.game.Update(dt, in); err != nil && !errors.Is(err, app.ErrRunOver) {
		t.session.logger.Error("update failed", "err", err)
	}
}

func (t *tui) draw() {
	t.screen.Clear()
	if t.game == nil {
		t.drawClassSelect()
	} else {
		t.drawArena()
		t.drawHUD()
		switch t.game.Phase() {
		case component.PhaseSelecting:
			t.drawUpgrades()
		case component.PhaseGameOver:
			t.drawGameOver()
		}
	}
	t.screen.Show()
}

// cell переводит координаты арены в клетку терминала под строкой HUD.
func (t *tui) cell(p types.Vec2) (int, int) {
	w, h := t.screen.Size()
	arena := t.session.tuning.Arena
	x := int(p.X / arena.Width * float64(w))
	y := 1 + int(p.Y/arena.Height*float64(h-1))
	return x, y
}

func (t *tui) put(p types.Vec2, r rune, style tcell.Style) {
	x, y := t.cell(p)
	t.screen.SetContent(x, y, r, nil, style)
}

func (t *tui) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *tui) drawArena() {
	ecs := t.game.ECS
	for _, id := range entity.SortedIDs(ecs.GroundEffects) {
		g := ecs.GroundEffects[id]
		t.put(g.Pos, '░', styleGround)
	}
	for _, id := range entity.SortedIDs(ecs.Orbs) {
		t.put(ecs.Orbs[id].Pos, '·', styleOrb)
	}
	for _, id := range entity.SortedIDs(ecs.Enemies) {
		e := ecs.Enemies[id]
		if !e.IsAlive() {
			continue
		}
		style := styleEnemy
		switch {
		case e.OnFire:
			style = styleBurn
		case e.Poisoned:
			style = stylePoison
		case e.Slowed:
			style = styleSlow
		}
		r := 'e'
		if e.Marked {
			r = 'E'
		}
		t.put(e.Pos, r, style)
	}
	for _, id := range entity.SortedIDs(ecs.Allies) {
		a := ecs.Allies[id]
		r := 's'
		if a.Kind == defs.AllyGhost {
			r = 'g'
		}
		t.put(a.Pos, r, styleAlly)
	}
	for _, id := range entity.SortedIDs(ecs.Projectiles) {
		t.put(ecs.Projectiles[id].Pos, '*', styleHUD)
	}
	t.put(t.game.Player().Pos, '@', stylePlayer)
}

func (t *tui) drawHUD() {
	hud := t.game.HUD()
	line := fmt.Sprintf(" %s | HP %d/%d | LV %d %d/%d | WAVE %d | KILLS %d",
		t.game.Class.Name, hud.CurrentHP, hud.MaxHP, hud.Level, hud.XP, hud.XPToNext, hud.Wave, hud.Kills)
	if hud.HasCharge {
		if hud.ChargeReady {
			line += " | READY [SPACE]"
		} else {
			line += fmt.Sprintf(" | CHARGE %d%%", int(hud.ChargePercent*100))
		}
	}
	t.text(0, 0, line, styleHUD)
}

func (t *tui) drawUpgrades() {
	_, h := t.screen.Size()
	y := h/2 - 2
	t.text(4, y, "LEVEL UP! choose [1-3]:", styleSelected)
	for i, u := range t.game.Offered() {
		style := styleDefault
		if u.Type == defs.UpgradeRisky {
			style = styleRisky
		}
		t.text(4, y+2+i, fmt.Sprintf("%d. %s", i+1, u.Text), style)
	}
}

func (t *tui) drawGameOver() {
	_, h := t.screen.Size()
	t.text(4, h/2, "YOU DIED  [r] restart  [c] change class  [q] quit", styleRisky)
}

func (t *tui) drawClassSelect() {
	t.text(2, 1, "CHAOS RUSH: choose your class", styleHUD)
	for i, c := range t.classes {
		t.text(2, 3+i*3, fmt.Sprintf("%d. %s (%s)", i+1, c.Name, c.Subtitle), styleSelected)
		t.text(5, 4+i*3, c.Description, styleDefault)
	}
	t.text(2, 4+len(t.classes)*3, "wasd/arrows move  f fire  space passive  q quit", styleDefault)
}
