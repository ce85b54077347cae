package physics

import "github.com/plus3/mergeball/geom"

// Circle is a dynamic or kinematic circular body.
type Circle struct {
	id    BodyID
	tag   Tag
	pos   geom.Vec2
	vel   geom.Vec2
	angle float64

	angularVelocity float64
	gravityScale    float64
	radius          float64
	mass            float64
	kinematic       bool
	collides        bool
	removed         bool
}

func (c *Circle) ID() BodyID { return c.id }
func (c *Circle) Tag() Tag   { return c.tag }

func (c *Circle) Position() geom.Vec2     { return c.pos }
func (c *Circle) SetPosition(p geom.Vec2) { c.pos = p }
func (c *Circle) Velocity() geom.Vec2     { return c.vel }
func (c *Circle) SetVelocity(v geom.Vec2) { c.vel = v }

func (c *Circle) AngularVelocity() float64     { return c.angularVelocity }
func (c *Circle) SetAngularVelocity(w float64) { c.angularVelocity = w }
func (c *Circle) Angle() float64               { return c.angle }

func (c *Circle) GravityScale() float64     { return c.gravityScale }
func (c *Circle) SetGravityScale(s float64) { c.gravityScale = s }

func (c *Circle) Kinematic() bool             { return c.kinematic }
func (c *Circle) SetKinematic(kinematic bool) { c.kinematic = kinematic }

func (c *Circle) CollisionEnabled() bool            { return c.collides }
func (c *Circle) EnableCollisionShape(enabled bool) { c.collides = enabled }

func (c *Circle) Radius() float64 { return c.radius }

// SetRadius resizes the collision shape. Negative radii are treated as zero.
func (c *Circle) SetRadius(r float64) {
	if r < 0 {
		r = 0
	}
	c.radius = r
}

func (c *Circle) Mass() float64 { return c.mass }

func (c *Circle) AddImpulse(impulse geom.Vec2) {
	if c.kinematic || c.mass <= 0 {
		return
	}
	c.vel = c.vel.Add(impulse.Scale(1 / c.mass))
}

// Removed reports whether the body has been taken out of its world.
func (c *Circle) Removed() bool { return c.removed }

func (c *Circle) inverseMass() float64 {
	if c.kinematic || c.mass <= 0 {
		return 0
	}
	return 1 / c.mass
}

// Side names a box wall.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideFloor
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// Wall is a static, infinitely long box boundary.
type Wall struct {
	id     BodyID
	Side   Side
	Offset float64 // x for left/right walls, y for the floor
}

func (w *Wall) ID() BodyID { return w.id }
func (w *Wall) Tag() Tag   { return TagWall }
