// Package physics is the rigid-body collaborator of the merge core: circle
// bodies inside an open-topped box, gravity, contacts and overlap queries.
package physics

import "github.com/plus3/mergeball/geom"

// BodyID identifies a collider for the lifetime of a World. IDs are never reused.
type BodyID uint32

// Tag classifies colliders. Tags are bit flags so queries can take a mask.
type Tag uint8

const (
	TagBall Tag = 1 << iota
	TagWall

	TagAll = TagBall | TagWall
)

func (t Tag) String() string {
	switch t {
	case TagBall:
		return "ball"
	case TagWall:
		return "wall"
	default:
		return "mixed"
	}
}

// Collider is anything that can appear on either side of a Contact.
type Collider interface {
	ID() BodyID
	Tag() Tag
}

// Body is the read/write surface the merge core uses on a rigid body.
type Body interface {
	Collider

	Position() geom.Vec2
	SetPosition(p geom.Vec2)
	Velocity() geom.Vec2
	SetVelocity(v geom.Vec2)
	AngularVelocity() float64
	SetAngularVelocity(w float64)
	GravityScale() float64
	SetGravityScale(s float64)
	Kinematic() bool
	SetKinematic(kinematic bool)
	CollisionEnabled() bool
	EnableCollisionShape(enabled bool)
	Radius() float64
	SetRadius(r float64)

	// AddImpulse changes velocity by impulse/mass. Kinematic bodies ignore it.
	AddImpulse(impulse geom.Vec2)
}

// Contact reports two colliders touching during a Step. A is always a body;
// B is a body or a wall. Began is set on the first step a pair touches.
type Contact struct {
	A     Body
	B     Collider
	Began bool
}
