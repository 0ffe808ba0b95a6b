// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06 // секунды, защита от рывков после сворачивания окна

	PlayerDrawRadius = 12.0
	EnemyDrawRadius  = 10.0
	OrbDrawRadius    = 4.0
	AllyDrawRadius   = 7.0
	ProjectileRadius = 5.0

	BarWidth      = 200.0
	BarHeight     = 12.0
	BarMargin     = 10.0
	ChargeBarSize = 18.0

	TextCharWidth = 7
	TextOffsetY   = 4

	FloatingTextRise = 30.0 // пикселей за время жизни
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	PlayerColor     = color.RGBA{70, 130, 180, 255}
	AuraColor       = color.RGBA{120, 180, 255, 60}
	EnemyColor      = color.RGBA{200, 60, 60, 255}
	FlashColor      = color.RGBA{255, 255, 255, 255}
	BurnColor       = color.RGBA{255, 140, 0, 255}
	PoisonColor     = color.RGBA{90, 200, 70, 255}
	SlowColor       = color.RGBA{120, 170, 255, 255}
	OrbColor        = color.RGBA{80, 220, 255, 255}
	SkeletonColor   = color.RGBA{230, 230, 210, 255}
	GhostColor      = color.RGBA{180, 200, 255, 160}
	HPBarColor      = color.RGBA{220, 60, 60, 220}
	XPBarColor      = color.RGBA{80, 200, 255, 220}
	ChargeColor     = color.RGBA{194, 178, 128, 255}
	BarBackColor    = color.RGBA{50, 50, 60, 220}
	RiskyColor      = color.RGBA{255, 90, 90, 255}
	StrokeWidth     = float32(2.0)

	GroundEffectColors = map[string]color.RGBA{
		"fire":   {255, 110, 30, 90},
		"poison": {90, 200, 70, 90},
		"slow":   {120, 170, 255, 90},
	}
)
