package main

import (
	"math"

	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/geom"
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2

// Grid maps world units to terminal cells. The floor-to-ceiling span fills
// the rows unless the box would be wider than the screen.
type Grid struct {
	Cols, Rows int
	// scale is columns per world unit; rows per unit is scale/cellAspect.
	scale  float64
	center geom.Vec2
}

func NewGrid(cols, rows int, b game.Boundary) Grid {
	const margin = 0.4
	scale := float64(rows) * cellAspect / (b.Ceiling - b.Bottom + margin)
	if w := b.Width() + margin; scale*w > float64(cols) {
		scale = float64(cols) / w
	}
	return Grid{
		Cols:   cols,
		Rows:   rows,
		scale:  scale,
		center: geom.V((b.Left+b.Right)/2, (b.Bottom+b.Ceiling)/2),
	}
}

func (g Grid) ToCell(p geom.Vec2) (int, int) {
	col := float64(g.Cols)/2 + (p.X-g.center.X)*g.scale
	row := float64(g.Rows)/2 - (p.Y-g.center.Y)*g.scale/cellAspect
	return int(math.Floor(col)), int(math.Floor(row))
}

// ToWorld returns the world position of a cell's center.
func (g Grid) ToWorld(col, row int) geom.Vec2 {
	return geom.V(
		g.center.X+(float64(col)+0.5-float64(g.Cols)/2)/g.scale,
		g.center.Y-(float64(row)+0.5-float64(g.Rows)/2)*cellAspect/g.scale,
	)
}

// Disc calls fn for every cell whose center lies within radius of p. The
// cell under p is always included.
func (g Grid) Disc(p geom.Vec2, radius float64, fn func(col, row int)) {
	c0, r0 := g.ToCell(p)
	fn(c0, r0)

	dc := int(math.Ceil(radius*g.scale)) + 1
	dr := int(math.Ceil(radius*g.scale/cellAspect)) + 1
	for row := r0 - dr; row <= r0+dr; row++ {
		for col := c0 - dc; col <= c0+dc; col++ {
			if col == c0 && row == r0 {
				continue
			}
			if g.ToWorld(col, row).Sub(p).Length() <= radius {
				fn(col, row)
			}
		}
	}
}
