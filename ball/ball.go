// Package ball holds the per-instance state of a merge ball, the registry of
// live balls and the factory that creates and destroys them.
package ball

import (
	"fmt"

	"github.com/plus3/mergeball/geom"
	"github.com/plus3/mergeball/level"
	"github.com/plus3/mergeball/physics"
)

// Origin records how a ball came to exist.
type Origin int

const (
	Dropped Origin = iota
	Merged
)

func (o Origin) String() string {
	if o == Merged {
		return "merged"
	}
	return "dropped"
}

type Ball struct {
	Level  int
	Index  int
	Name   string
	Origin Origin
	Body   physics.Body

	// Size is the current diameter. It trails the table size while growing.
	Size  float64
	Asset level.Asset

	// Growing and SpawnPhase suppress collision handling while set.
	Growing    bool
	SpawnPhase bool

	mergeReserved bool
	active        bool
}

// MergeReserved reports whether a merge has claimed the ball.
func (b *Ball) MergeReserved() bool { return b.mergeReserved }

// Reserve claims the ball for a merge. A reservation is never released.
func (b *Ball) Reserve() { b.mergeReserved = true }

// Suppressed reports whether collisions involving the ball are ignored.
func (b *Ball) Suppressed() bool { return b.Growing || b.SpawnPhase }

// Active reports whether the ball is registered and has a live body.
func (b *Ball) Active() bool { return b.active }

// SetSize sets the diameter and resizes the collision shape to match.
func (b *Ball) SetSize(size float64) {
	b.Size = size
	if b.Body != nil {
		b.Body.SetRadius(size / 2)
	}
}

func (b *Ball) Position() geom.Vec2 {
	if b.Body == nil {
		return geom.Vec2{}
	}
	return b.Body.Position()
}

func (b *Ball) Speed() float64 {
	if b.Body == nil {
		return 0
	}
	return b.Body.Velocity().Length()
}

func (b *Ball) String() string {
	return fmt.Sprintf("%s(level=%d)", b.Name, b.Level)
}
