package game

import (
	"github.com/plus3/mergeball/anim"
	"github.com/plus3/mergeball/ball"
	"github.com/plus3/mergeball/geom"
)

type SlotState int

const (
	SlotEmpty SlotState = iota
	SlotMaterializing
	SlotFollowing
	SlotConsumed
)

func (s SlotState) String() string {
	switch s {
	case SlotEmpty:
		return "empty"
	case SlotMaterializing:
		return "materializing"
	case SlotFollowing:
		return "following"
	case SlotConsumed:
		return "consumed"
	default:
		return "unknown"
	}
}

// SpawnTiming is in seconds. GrowFrom is the starting share of full size.
type SpawnTiming struct {
	Delay    float64
	Grow     float64
	GrowFrom float64
}

// SpawnController owns the single held ball that follows the pointer until
// it is dropped.
type SpawnController struct {
	factory  *ball.Factory
	animator *anim.Animator
	bounds   Boundary
	timing   SpawnTiming
	stats    *Stats

	state    SlotState
	held     *ball.Ball
	released *ball.Ball
	lastPos  geom.Vec2
	requests int

	// ReplacementLevel picks the level of the ball requested when the held
	// ball is consumed by a merge, from the factory's next index.
	ReplacementLevel func(nextIndex int) int
}

func NewSpawnController(factory *ball.Factory, animator *anim.Animator, bounds Boundary, timing SpawnTiming, stats *Stats) *SpawnController {
	if stats == nil {
		stats = &Stats{}
	}
	return &SpawnController{
		factory:          factory,
		animator:         animator,
		bounds:           bounds,
		timing:           timing,
		stats:            stats,
		lastPos:          geom.V((bounds.Left+bounds.Right)/2, bounds.Ceiling),
		ReplacementLevel: IndexReplacementLevel,
	}
}

func (s *SpawnController) State() SlotState { return s.state }

// Waiting is true whenever there is no held ball to drop.
func (s *SpawnController) Waiting() bool { return s.state != SlotFollowing }

func (s *SpawnController) Held() *ball.Ball { return s.held }

func (s *SpawnController) Holds(b *ball.Ball) bool {
	return b != nil && s.state == SlotFollowing && s.held == b
}

func (s *SpawnController) LastPosition() geom.Vec2 { return s.lastPos }

// Requests counts accepted RequestSpawn calls.
func (s *SpawnController) Requests() int { return s.requests }

// RequestSpawn schedules a new held ball of lvl at pos. It is a no-op
// returning false unless the slot is empty. The previously dropped ball is
// released to dynamic physics while the new one materializes.
func (s *SpawnController) RequestSpawn(pos geom.Vec2, lvl int) bool {
	if s.state != SlotEmpty {
		return false
	}
	s.state = SlotMaterializing
	s.requests++
	s.lastPos = pos

	if r := s.released; r != nil {
		if r.Active() && !r.MergeReserved() {
			r.Body.SetKinematic(false)
		}
		s.released = nil
	}

	s.animator.Start(anim.Wait(s.timing.Delay, func() {
		s.materialize(pos, lvl)
	}))
	return true
}

func (s *SpawnController) materialize(pos geom.Vec2, lvl int) {
	b := s.factory.Create(pos, lvl, ball.Dropped, s.timing.GrowFrom)
	b.SpawnPhase = true
	b.Growing = true
	b.Body.SetKinematic(true)

	s.held = b
	s.state = SlotFollowing
	s.stats.Spawned++
	s.stats.observeLevel(lvl)

	full := s.factory.SizeOf(lvl)
	s.animator.Start(anim.Grow(s.timing.GrowFrom, 1, s.timing.Grow,
		func(k float64) { b.SetSize(full * k) },
		func() {
			b.Growing = false
			b.SpawnPhase = false
		}))
}

// Drop lets go of the held ball. The caller is expected to request the next one.
func (s *SpawnController) Drop() (*ball.Ball, bool) {
	if s.state != SlotFollowing {
		return nil, false
	}
	b := s.held
	b.Body.SetKinematic(false)

	s.state = SlotConsumed
	s.held = nil
	s.released = b
	s.state = SlotEmpty
	s.stats.Dropped++
	return b, true
}

// Consume hands the held ball over to a merge and requests a replacement at
// the last held position. It reports false if b is not the held ball.
func (s *SpawnController) Consume(b *ball.Ball) bool {
	if !s.Holds(b) {
		return false
	}
	s.state = SlotConsumed
	s.held = nil
	s.state = SlotEmpty
	return s.RequestSpawn(s.lastPos, s.ReplacementLevel(s.factory.NextIndex()))
}

// Follow moves the held ball to x at ceiling height, kept inside the walls.
func (s *SpawnController) Follow(x float64) {
	if s.state != SlotFollowing {
		return
	}
	half := s.factory.SizeOf(s.held.Level) / 2
	pos := geom.V(s.bounds.ClampX(x, half), s.bounds.Ceiling)
	s.held.Body.SetPosition(pos)
	s.lastPos = pos
}
