// internal/types/types.go
package types

import "math"

// EntityID — идентификатор сущности. Ноль означает «нет сущности».
type EntityID uint64

// Vec2 — точка или вектор на плоскости арены (в пикселях).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len — длина вектора.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist — евклидово расстояние между точками.
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Normalize возвращает единичный вектор. Нулевой вектор остаётся нулевым.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsZero сообщает, что оба компонента равны нулю.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }
