package utils

import "chaos-rush/internal/types"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToArena удерживает точку внутри прямоугольника арены с отступом margin.
func ClampToArena(p types.Vec2, w, h, margin float64) types.Vec2 {
	return types.Vec2{
		X: Clamp(p.X, margin, w-margin),
		Y: Clamp(p.Y, margin, h-margin),
	}
}

// Percent возвращает долю cur/max в [0, 1]; при max <= 0 — 0.
func Percent(cur, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return Clamp(cur/max, 0, 1)
}

// MoveToward сдвигает from к to не более чем на step и сообщает, достигнута ли цель.
func MoveToward(from, to types.Vec2, step float64) (types.Vec2, bool) {
	d := to.Sub(from)
	dist := d.Len()
	if dist <= step || dist == 0 {
		return to, true
	}
	return from.Add(d.Scale(step / dist)), false
}
