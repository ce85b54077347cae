package game

import (
	"github.com/plus3/mergeball/anim"
	"github.com/plus3/mergeball/geom"
	"github.com/plus3/mergeball/loop"
	"github.com/plus3/mergeball/physics"
)

// InputSystem applies queued pointer input: a release inside the box blasts,
// a release outside drops the held ball. The held ball then follows the pointer.
type InputSystem struct {
	game *Game

	pointer  geom.Vec2
	releases []geom.Vec2
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	for _, p := range s.releases {
		if s.game.bounds.Contains(p) {
			s.game.Blast(p)
		} else {
			s.game.Drop(p)
		}
	}
	clear(s.releases)
	s.releases = s.releases[:0]

	s.game.slot.Follow(s.pointer.X)
}

// PhysicsSystem steps the world and keeps the contacts for CollisionSystem.
type PhysicsSystem struct {
	World    *physics.World
	Contacts []physics.Contact
}

func (s *PhysicsSystem) Execute(frame *loop.UpdateFrame) {
	s.Contacts = s.World.Step(frame.DeltaTime)
}

// CollisionSystem delivers each contact to the dispatcher. Ball pairs are
// delivered once from each side.
type CollisionSystem struct {
	Physics    *PhysicsSystem
	Dispatcher *CollisionDispatcher
}

func (s *CollisionSystem) Execute(frame *loop.UpdateFrame) {
	for _, c := range s.Physics.Contacts {
		stay := !c.Began
		s.Dispatcher.Dispatch(Collision{Self: c.A, Other: c.B, Stay: stay})
		if other, ok := c.B.(physics.Body); ok && other.Tag()&physics.TagBall != 0 {
			s.Dispatcher.Dispatch(Collision{Self: other, Other: c.A, Stay: stay})
		}
	}
}

// AnimationSystem advances every running animation task by the frame time.
type AnimationSystem struct {
	Animator *anim.Animator
}

func (s *AnimationSystem) Execute(frame *loop.UpdateFrame) {
	s.Animator.Step(frame.DeltaTime)
}
