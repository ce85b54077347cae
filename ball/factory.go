package ball

import (
	"fmt"

	"github.com/kamstrup/intmap"
	"github.com/plus3/mergeball/geom"
	"github.com/plus3/mergeball/level"
	"github.com/plus3/mergeball/physics"
)

// Bodies is the part of the physics world the factory needs.
type Bodies interface {
	Add(pos geom.Vec2, radius float64, tag physics.Tag) physics.Body
	Remove(b physics.Body)
}

// Factory creates and destroys balls. It owns the index counter, and
// creation/destruction are the only places registry membership changes.
type Factory struct {
	bodies   Bodies
	table    level.Table
	registry *Registry
	byBody   *intmap.Map[physics.BodyID, *Ball]

	nextIndex int
	created   int
	destroyed int
}

func NewFactory(bodies Bodies, table level.Table, registry *Registry) *Factory {
	return &Factory{
		bodies:   bodies,
		table:    table,
		registry: registry,
		byBody:   intmap.New[physics.BodyID, *Ball](64),
	}
}

// Create spawns a ball of lvl at pos sized to ratio of its table size and
// activates it.
func (f *Factory) Create(pos geom.Vec2, lvl int, origin Origin, ratio float64) *Ball {
	index := f.nextIndex
	f.nextIndex++

	b := &Ball{
		Level:  lvl,
		Index:  index,
		Origin: origin,
		Asset:  f.table.Get(lvl),
	}
	if origin == Merged {
		b.Name = fmt.Sprintf("ballM_%d", index)
	} else {
		b.Name = fmt.Sprintf("ball_%d", index)
	}

	size := f.table.SizeOf(lvl) * ratio
	b.Body = f.bodies.Add(pos, size/2, physics.TagBall)
	b.SetSize(size)

	f.activate(b)
	f.created++
	return b
}

// Destroy deactivates b and removes its body. Destroying twice is a no-op.
func (f *Factory) Destroy(b *Ball) {
	if !b.active {
		return
	}
	f.deactivate(b)
	f.bodies.Remove(b.Body)
	f.destroyed++
}

func (f *Factory) activate(b *Ball) {
	b.active = true
	f.registry.Add(b)
	f.byBody.Put(b.Body.ID(), b)
}

func (f *Factory) deactivate(b *Ball) {
	b.active = false
	f.registry.Remove(b)
	f.byBody.Del(b.Body.ID())
}

// Lookup finds the live ball that owns a collider.
func (f *Factory) Lookup(c physics.Collider) (*Ball, bool) {
	if c == nil {
		return nil, false
	}
	return f.byBody.Get(c.ID())
}

// NextIndex is the index the next created ball will receive.
func (f *Factory) NextIndex() int { return f.nextIndex }

// SizeOf returns the full-grown size for lvl.
func (f *Factory) SizeOf(lvl int) float64 { return f.table.SizeOf(lvl) }

func (f *Factory) Registry() *Registry { return f.registry }

func (f *Factory) Created() int   { return f.created }
func (f *Factory) Destroyed() int { return f.destroyed }
