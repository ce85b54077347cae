package game

import (
	"log"
	"sync"

	"github.com/plus3/mergeball/anim"
	"github.com/plus3/mergeball/audio"
	"github.com/plus3/mergeball/ball"
	"github.com/plus3/mergeball/geom"
)

type Outcome int

const (
	// Ignored means the pair was filtered out and nothing changed.
	Ignored Outcome = iota
	// Bumped means the pair had different levels; at most a sound played.
	Bumped
	// Merged means the pair was reserved and a merge is under way.
	Merged
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Bumped:
		return "bumped"
	case Merged:
		return "merged"
	default:
		return "unknown"
	}
}

// MergeTiming is in seconds.
type MergeTiming struct {
	Move     float64
	Grow     float64
	GrowFrom float64
}

// MergeArbiter decides what a ball/ball contact does and runs merges.
type MergeArbiter struct {
	mu sync.Mutex

	factory  *ball.Factory
	animator *anim.Animator
	slot     *SpawnController
	player   audio.Player
	impact   Thresholds
	timing   MergeTiming
	logger   *log.Logger
	stats    *Stats
}

func NewMergeArbiter(factory *ball.Factory, animator *anim.Animator, slot *SpawnController, player audio.Player, impact Thresholds, timing MergeTiming, logger *log.Logger, stats *Stats) *MergeArbiter {
	if player == nil {
		player = audio.Nop
	}
	if logger == nil {
		logger = log.Default()
	}
	if stats == nil {
		stats = &Stats{}
	}
	return &MergeArbiter{
		factory:  factory,
		animator: animator,
		slot:     slot,
		player:   player,
		impact:   impact,
		timing:   timing,
		logger:   logger,
		stats:    stats,
	}
}

// Resolve handles one delivery of a contact between a and b. The same
// contact may be delivered once per participant; only one delivery merges.
func (m *MergeArbiter) Resolve(a, b *ball.Ball) Outcome {
	if a == nil || b == nil {
		m.logger.Printf("merge: missing ball in pair (%v, %v), contact dropped", a, b)
		return Ignored
	}
	if a == b {
		return Ignored
	}

	m.mu.Lock()
	if !a.Active() || !b.Active() || a.MergeReserved() || b.MergeReserved() || a.Suppressed() || b.Suppressed() {
		m.mu.Unlock()
		return Ignored
	}
	if a.Level != b.Level {
		m.mu.Unlock()
		m.bump(a, b)
		return Bumped
	}
	a.Reserve()
	b.Reserve()
	m.mu.Unlock()

	m.merge(a, b)
	return Merged
}

func (m *MergeArbiter) bump(a, b *ball.Ball) {
	fastest := max(a.Speed(), b.Speed())
	if cue, intensity, ok := m.impact.Cue(fastest); ok {
		m.player.PlayCue(cue, intensity)
		m.stats.Impacts++
	}
}

func (m *MergeArbiter) merge(a, b *ball.Ball) {
	m.stats.Merges++
	if !m.slot.Consume(a) {
		m.slot.Consume(b)
	}

	mid := geom.Midpoint(a.Position(), b.Position())
	suspend(a)
	suspend(b)

	remaining := 2
	arrived := func() {
		remaining--
		if remaining > 0 {
			return
		}
		m.factory.Destroy(a)
		m.factory.Destroy(b)
		m.spawnChild(mid, a.Level+1)
	}
	m.animator.Start(anim.MoveTo(a.Position(), mid, m.timing.Move, a.Body.SetPosition, arrived))
	m.animator.Start(anim.MoveTo(b.Position(), mid, m.timing.Move, b.Body.SetPosition, arrived))
}

func (m *MergeArbiter) spawnChild(pos geom.Vec2, lvl int) {
	child := m.factory.Create(pos, lvl, ball.Merged, m.timing.GrowFrom)
	child.Growing = true
	m.stats.observeLevel(lvl)

	full := m.factory.SizeOf(lvl)
	m.animator.Start(anim.Grow(m.timing.GrowFrom, 1, m.timing.Grow,
		func(k float64) { child.SetSize(full * k) },
		func() {
			m.player.PlayCue(audio.LevelCue(child.Level), 1)
			child.Growing = false
		}))
}

// suspend takes a merging ball out of the simulation.
func suspend(b *ball.Ball) {
	b.Body.SetKinematic(true)
	b.Body.SetVelocity(geom.Vec2{})
	b.Body.SetAngularVelocity(0)
	b.Body.SetGravityScale(0)
	b.Body.EnableCollisionShape(false)
}
