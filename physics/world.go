package physics

import (
	"math"

	"github.com/kamstrup/intmap"
	"github.com/plus3/mergeball/geom"
)

const (
	// touchSlop is how far apart two shapes may be and still count as touching.
	// Resting stacks separate by the positional correction every substep.
	touchSlop = 0.005
	// correction is the share of penetration resolved per substep.
	correction = 0.8
)

// Options configures a World. Zero values fall back to DefaultOptions.
type Options struct {
	Gravity     float64 // vertical acceleration, negative is down
	Restitution float64
	Damping     float64 // linear damping per second
	Friction    float64 // floor friction per second
	Substeps    int

	Left, Right, Floor float64
}

func DefaultOptions() Options {
	return Options{
		Gravity:     -9.81,
		Restitution: 0.2,
		Damping:     0.05,
		Friction:    1.5,
		Substeps:    4,
		Left:        -1.5,
		Right:       1.5,
		Floor:       -2.5,
	}
}

// World steps circle bodies inside a box made of two side walls and a floor.
// It is not safe for concurrent use.
type World struct {
	opts Options

	nextID  BodyID
	circles []*Circle
	byID    *intmap.Map[BodyID, *Circle]
	walls   [3]*Wall

	touching *intmap.Map[uint64, struct{}]
	current  *intmap.Map[uint64, struct{}]
	contacts []Contact
}

func NewWorld(opts Options) *World {
	if opts.Substeps <= 0 {
		opts.Substeps = 1
	}
	w := &World{
		opts:     opts,
		byID:     intmap.New[BodyID, *Circle](64),
		touching: intmap.New[uint64, struct{}](64),
		current:  intmap.New[uint64, struct{}](64),
	}
	w.walls[SideLeft] = &Wall{id: w.newID(), Side: SideLeft, Offset: opts.Left}
	w.walls[SideRight] = &Wall{id: w.newID(), Side: SideRight, Offset: opts.Right}
	w.walls[SideFloor] = &Wall{id: w.newID(), Side: SideFloor, Offset: opts.Floor}
	return w
}

func (w *World) newID() BodyID {
	w.nextID++
	return w.nextID
}

func (w *World) Options() Options { return w.opts }

// Walls returns the left, right and floor walls.
func (w *World) Walls() []*Wall { return w.walls[:] }

// Add creates a dynamic circle with unit mass and gravity scale 1.
func (w *World) Add(pos geom.Vec2, radius float64, tag Tag) Body {
	c := &Circle{
		id:           w.newID(),
		tag:          tag,
		pos:          pos,
		gravityScale: 1,
		mass:         1,
		collides:     true,
	}
	c.SetRadius(radius)
	w.circles = append(w.circles, c)
	w.byID.Put(c.id, c)
	return c
}

// Remove takes a body out of the world. Removing twice is a no-op.
func (w *World) Remove(b Body) {
	c, ok := w.byID.Get(b.ID())
	if !ok {
		return
	}
	c.removed = true
	w.byID.Del(c.id)
	for i, other := range w.circles {
		if other == c {
			w.circles = append(w.circles[:i], w.circles[i+1:]...)
			break
		}
	}
}

// Body looks up a live body by id.
func (w *World) Body(id BodyID) (Body, bool) {
	c, ok := w.byID.Get(id)
	if !ok {
		return nil, false
	}
	return c, true
}

func (w *World) Len() int { return len(w.circles) }

// Bodies returns the live circles in insertion order. The slice is owned by the world.
func (w *World) Bodies() []*Circle { return w.circles }

// Step advances the simulation by dt seconds and returns the pairs touching
// at the end of it. The returned slice is reused by the next Step.
func (w *World) Step(dt float64) []Contact {
	w.contacts = w.contacts[:0]
	if dt <= 0 {
		return w.contacts
	}

	w.current.Clear()
	h := dt / float64(w.opts.Substeps)
	for range w.opts.Substeps {
		w.integrate(h)
		w.solvePairs()
		w.solveWalls(h)
	}

	w.touching, w.current = w.current, w.touching
	return w.contacts
}

func (w *World) integrate(h float64) {
	damp := 1 / (1 + w.opts.Damping*h)
	for _, c := range w.circles {
		if c.kinematic {
			continue
		}
		c.vel.Y += w.opts.Gravity * c.gravityScale * h
		c.vel = c.vel.Scale(damp)
		c.angularVelocity *= damp
		c.pos = c.pos.Add(c.vel.Scale(h))
		c.angle += c.angularVelocity * h
	}
}

func (w *World) solvePairs() {
	for i := 0; i < len(w.circles); i++ {
		a := w.circles[i]
		if !a.collides {
			continue
		}
		for j := i + 1; j < len(w.circles); j++ {
			b := w.circles[j]
			if !b.collides {
				continue
			}
			ima, imb := a.inverseMass(), b.inverseMass()
			if ima+imb == 0 {
				continue
			}

			d := b.pos.Sub(a.pos)
			dist := d.Length()
			reach := a.radius + b.radius
			if dist > reach+touchSlop {
				continue
			}
			w.touch(a, b)

			n := geom.V(0, 1)
			if dist > 0 {
				n = d.Scale(1 / dist)
			}
			if vn := b.vel.Sub(a.vel).Dot(n); vn < 0 {
				j := -(1 + w.opts.Restitution) * vn / (ima + imb)
				a.vel = a.vel.Sub(n.Scale(j * ima))
				b.vel = b.vel.Add(n.Scale(j * imb))
			}
			if overlap := reach - dist; overlap > 0 {
				corr := n.Scale(overlap * correction / (ima + imb))
				a.pos = a.pos.Sub(corr.Scale(ima))
				b.pos = b.pos.Add(corr.Scale(imb))
			}
		}
	}
}

func (w *World) solveWalls(h float64) {
	e := w.opts.Restitution
	left, right, floor := w.walls[SideLeft], w.walls[SideRight], w.walls[SideFloor]
	for _, c := range w.circles {
		if !c.collides || c.kinematic {
			continue
		}
		if c.pos.X-c.radius <= left.Offset+touchSlop {
			w.touch(c, left)
			if c.pos.X-c.radius < left.Offset {
				c.pos.X = left.Offset + c.radius
			}
			if c.vel.X < 0 {
				c.vel.X = -c.vel.X * e
			}
		}
		if c.pos.X+c.radius >= right.Offset-touchSlop {
			w.touch(c, right)
			if c.pos.X+c.radius > right.Offset {
				c.pos.X = right.Offset - c.radius
			}
			if c.vel.X > 0 {
				c.vel.X = -c.vel.X * e
			}
		}
		if c.pos.Y-c.radius <= floor.Offset+touchSlop {
			w.touch(c, floor)
			if c.pos.Y-c.radius < floor.Offset {
				c.pos.Y = floor.Offset + c.radius
			}
			if c.vel.Y < 0 {
				c.vel.Y = -c.vel.Y * e
			}
			c.vel.X *= math.Max(0, 1-w.opts.Friction*h)
			if c.radius > 0 {
				c.angularVelocity = -c.vel.X / c.radius
			}
		}
	}
}

// touch records a pair once per Step, in detection order.
func (w *World) touch(a *Circle, b Collider) {
	key := pairKey(a.id, b.ID())
	if _, seen := w.current.Get(key); seen {
		return
	}
	w.current.Put(key, struct{}{})
	_, before := w.touching.Get(key)
	w.contacts = append(w.contacts, Contact{A: a, B: b, Began: !before})
}

// OverlapRegion returns the collision-enabled bodies whose shape overlaps the
// circle at center, filtered by mask.
func (w *World) OverlapRegion(center geom.Vec2, radius float64, mask Tag) []Body {
	var out []Body
	for _, c := range w.circles {
		if !c.collides || c.tag&mask == 0 {
			continue
		}
		if c.pos.Sub(center).Length() < radius+c.radius {
			out = append(out, c)
		}
	}
	return out
}

func pairKey(a, b BodyID) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}
