package game

import (
	"github.com/plus3/mergeball/config"
	"github.com/plus3/mergeball/geom"
)

// Boundary is the box in world units, fixed once the game starts.
type Boundary struct {
	Left, Right float64
	Bottom, Top float64
	// Ceiling is the height the held ball hangs at.
	Ceiling float64
	// Inset pushes a clamped ball this far past the wall line.
	Inset float64
}

func BoundaryFrom(box config.Box) Boundary {
	return Boundary{
		Left:    box.Left,
		Right:   box.Right,
		Bottom:  box.Bottom,
		Top:     box.Top,
		Ceiling: box.Ceiling,
		Inset:   box.EdgeInset,
	}
}

// Contains reports whether p lies inside the box, edges included.
func (b Boundary) Contains(p geom.Vec2) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Bottom && p.Y <= b.Top
}

func (b Boundary) Center() geom.Vec2 {
	return geom.V((b.Left+b.Right)/2, (b.Bottom+b.Top)/2)
}

func (b Boundary) Width() float64 { return b.Right - b.Left }

// ClampX keeps a ball of the given half size between the walls.
func (b Boundary) ClampX(x, half float64) float64 {
	lo, hi := b.Left+half, b.Right-half
	if lo > hi {
		return (b.Left + b.Right) / 2
	}
	switch {
	case x < lo:
		return min(lo+b.Inset, hi)
	case x > hi:
		return max(hi-b.Inset, lo)
	default:
		return x
	}
}
