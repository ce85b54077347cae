package main

import (
	"github.com/plus3/mergeball/config"
	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/geom"
)

// Viewport maps world units (y up) to screen pixels (y down). The box is
// centered horizontally and the span from floor to ceiling vertically.
type Viewport struct {
	Width, Height int
	PixelsPerUnit float64
	center        geom.Vec2
}

func NewViewport(w config.Window, bounds game.Boundary) Viewport {
	return Viewport{
		Width:         w.Width,
		Height:        w.Height,
		PixelsPerUnit: w.PixelsPerUnit,
		center:        geom.V((bounds.Left+bounds.Right)/2, (bounds.Bottom+bounds.Ceiling)/2),
	}
}

func (v Viewport) ToScreen(p geom.Vec2) (float32, float32) {
	x := float64(v.Width)/2 + (p.X-v.center.X)*v.PixelsPerUnit
	y := float64(v.Height)/2 - (p.Y-v.center.Y)*v.PixelsPerUnit
	return float32(x), float32(y)
}

func (v Viewport) ToWorld(x, y int) geom.Vec2 {
	return geom.V(
		v.center.X+(float64(x)-float64(v.Width)/2)/v.PixelsPerUnit,
		v.center.Y-(float64(y)-float64(v.Height)/2)/v.PixelsPerUnit,
	)
}

func (v Viewport) Length(units float64) float32 {
	return float32(units * v.PixelsPerUnit)
}
