// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chaos-rush/internal/app"
	"chaos-rush/internal/config"
	"chaos-rush/pkg/render"
)

// HUDView — шкалы здоровья, опыта и заряда, номер волны и перезарядка оружия.
type HUDView struct {
	hp     *Bar
	xp     *Bar
	charge *Bar
	wave   *WaveIndicator
}

func NewHUDView() *HUDView {
	m := float32(config.BarMargin)
	return &HUDView{
		hp:     NewBar(m, m, config.BarWidth, config.BarHeight, config.HPBarColor),
		xp:     NewBar(m, m*2+config.BarHeight, config.BarWidth, config.BarHeight, config.XPBarColor),
		charge: NewBar(m, m*3+config.BarHeight*2, config.BarWidth, config.BarHeight, config.ChargeColor),
		wave:   NewWaveIndicator(config.ScreenWidth/2, int(m)+13),
	}
}

func (v *HUDView) Draw(screen *ebiten.Image, hud app.HUD, className string) {
	v.hp.DrawLabeled(screen, hud.HPPercent, fmt.Sprintf("%d/%d", hud.CurrentHP, hud.MaxHP))
	v.xp.DrawLabeled(screen, hud.XPPercent, fmt.Sprintf("LV %d  %d/%d", hud.Level, hud.XP, hud.XPToNext))
	if hud.HasCharge {
		label := fmt.Sprintf("%d%%", int(hud.ChargePercent*100))
		if hud.ChargeReady {
			label = "READY [SPACE]"
		}
		v.charge.DrawLabeled(screen, hud.ChargePercent, label)
	}
	v.wave.Draw(screen, hud.Wave)
	v.drawCooldown(screen, hud.Cooldown)

	right := config.ScreenWidth - int(config.BarMargin)
	DrawText(screen, className, right-TextWidth(className), int(config.BarMargin)+10, config.TextLightColor)
	kills := fmt.Sprintf("KILLS %d", hud.Kills)
	DrawText(screen, kills, right-TextWidth(kills), int(config.BarMargin)+26, config.TextLightColor)
}

// drawCooldown — квадрат в правом нижнем углу, тёмная часть показывает остаток перезарядки.
func (v *HUDView) drawCooldown(screen *ebiten.Image, remaining float64) {
	size := float32(config.ChargeBarSize) * 2
	x := float32(config.ScreenWidth) - config.BarMargin - size
	y := float32(config.ScreenHeight) - config.BarMargin - size
	vector.DrawFilledRect(screen, x, y, size, size, config.ChargeColor, true)
	if remaining > 0 {
		h := size * float32(min(remaining, 1))
		vector.DrawFilledRect(screen, x, y, size, h, render.DarkenColor(config.ChargeColor), true)
	}
	vector.StrokeRect(screen, x, y, size, size, borderWidth, borderColor, true)
}
