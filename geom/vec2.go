// Package geom holds the 2D vector type shared by the physics world, the
// animator and the game core. World space is y-up.
package geom

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length is the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Normalized returns the unit vector, or the zero vector for zero input.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Lerp interpolates from v to o. t is clamped to [0, 1].
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	t = Clamp01(t)
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Midpoint of two points.
func Midpoint(a, b Vec2) Vec2 {
	return Vec2{X: (a.X + b.X) * 0.5, Y: (a.Y + b.Y) * 0.5}
}

func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Rotate returns v rotated by the given angle in radians.
func (v Vec2) Rotate(rad float64) Vec2 {
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}
