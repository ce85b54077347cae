// Package game wires the merge core together: the held-ball spawn slot, the
// merge arbiter, the collision dispatcher and the frame systems that drive them.
package game

import (
	"log"
	"math/rand/v2"

	"github.com/plus3/mergeball/anim"
	"github.com/plus3/mergeball/audio"
	"github.com/plus3/mergeball/ball"
	"github.com/plus3/mergeball/config"
	"github.com/plus3/mergeball/geom"
	"github.com/plus3/mergeball/level"
	"github.com/plus3/mergeball/loop"
	"github.com/plus3/mergeball/physics"
)

type Options struct {
	// Audio receives every cue. Nil plays nothing.
	Audio audio.Player
	// Logger receives warnings. Nil uses log.Default().
	Logger *log.Logger
}

// Game is a single play session. It is driven by Tick from one goroutine.
type Game struct {
	cfg    *config.Config
	logger *log.Logger
	bounds Boundary
	rng    *rand.Rand
	stats  *Stats

	world      *physics.World
	table      level.Table
	registry   *ball.Registry
	factory    *ball.Factory
	animator   *anim.Animator
	slot       *SpawnController
	arbiter    *MergeArbiter
	dispatcher *CollisionDispatcher
	scheduler  *loop.Scheduler
	input      *InputSystem
	blast      BlastSettings
}

func New(cfg *config.Config, opts Options) *Game {
	if cfg == nil {
		cfg = config.Default()
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	g := &Game{
		cfg:    cfg,
		logger: logger,
		bounds: BoundaryFrom(cfg.Box),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		stats:  &Stats{},
		table:  level.NewTable(cfg.Box.Size),
		blast: BlastSettings{
			Radius:   cfg.Blast.Radius,
			Force:    cfg.Blast.Force,
			MaxSpeed: cfg.Blast.MaxSpeed,
		},
	}

	g.world = physics.NewWorld(physics.Options{
		Gravity:     cfg.Physics.Gravity,
		Restitution: cfg.Physics.Restitution,
		Damping:     cfg.Physics.Damping,
		Friction:    cfg.Physics.Friction,
		Substeps:    cfg.Physics.Substeps,
		Left:        cfg.Box.Left,
		Right:       cfg.Box.Right,
		Floor:       cfg.Box.Bottom,
	})
	g.registry = ball.NewRegistry()
	g.factory = ball.NewFactory(g.world, g.table, g.registry)
	g.animator = anim.New()

	impact := Thresholds{Fast: cfg.Sound.Fast, Medium: cfg.Sound.Medium}
	g.slot = NewSpawnController(g.factory, g.animator, g.bounds, SpawnTiming{
		Delay:    cfg.Timing.SpawnDelay.Seconds(),
		Grow:     cfg.Timing.SpawnGrow.Seconds(),
		GrowFrom: cfg.Spawn.GrowFrom,
	}, g.stats)
	if cfg.Spawn.ReplacementPolicy == config.PolicyDrop {
		g.slot.ReplacementLevel = func(int) int { return g.nextDropLevel() }
	}
	g.arbiter = NewMergeArbiter(g.factory, g.animator, g.slot, player, impact, MergeTiming{
		Move:     cfg.Timing.MergeMove.Seconds(),
		Grow:     cfg.Timing.MergeGrow.Seconds(),
		GrowFrom: cfg.Spawn.GrowFrom,
	}, logger, g.stats)
	g.dispatcher = NewCollisionDispatcher(g.factory, g.arbiter, player, impact, logger, g.stats)

	g.input = &InputSystem{game: g, pointer: g.slot.LastPosition()}
	physicsSystem := &PhysicsSystem{World: g.world}

	g.scheduler = loop.NewScheduler()
	g.scheduler.Register(g.input)
	g.scheduler.Register(physicsSystem)
	g.scheduler.Register(&CollisionSystem{Physics: physicsSystem, Dispatcher: g.dispatcher})
	g.scheduler.Register(&AnimationSystem{Animator: g.animator})
	return g
}

// Start requests the first held ball, level 1 at the center of the ceiling.
func (g *Game) Start() {
	g.slot.RequestSpawn(geom.V((g.bounds.Left+g.bounds.Right)/2, g.bounds.Ceiling), 1)
}

// Tick runs one frame of dt seconds, before time scaling.
func (g *Game) Tick(dt float64) {
	g.scheduler.Once(dt)
}

// SetPointer records the pointer position in world units.
func (g *Game) SetPointer(p geom.Vec2) {
	g.input.pointer = p
}

// ReleasePointer queues a pointer release for the next tick.
func (g *Game) ReleasePointer(p geom.Vec2) {
	g.input.pointer = p
	g.input.releases = append(g.input.releases, p)
}

// Drop lets go of the held ball and requests the next one at the pointer's x.
// It returns false while the slot is waiting.
func (g *Game) Drop(p geom.Vec2) bool {
	if _, ok := g.slot.Drop(); !ok {
		return false
	}
	lvl := g.nextDropLevel()
	g.slot.RequestSpawn(geom.V(p.X, g.bounds.Ceiling), lvl)
	return true
}

// nextDropLevel counts requests after the opening ball.
func (g *Game) nextDropLevel() int {
	return NextDropLevel(g.slot.Requests()-1, g.rng)
}

// Blast pushes balls away from p and returns how many were pushed.
func (g *Game) Blast(p geom.Vec2) int {
	g.stats.Blasts++
	return Blast(g.world, p, g.blast, g.rng)
}

func (g *Game) Stats() Stats {
	s := *g.stats
	s.Live = g.registry.Len()
	return s
}

func (g *Game) Config() *config.Config           { return g.cfg }
func (g *Game) Bounds() Boundary                 { return g.bounds }
func (g *Game) World() *physics.World            { return g.world }
func (g *Game) Table() level.Table               { return g.table }
func (g *Game) Registry() *ball.Registry         { return g.registry }
func (g *Game) Factory() *ball.Factory           { return g.factory }
func (g *Game) Slot() *SpawnController           { return g.slot }
func (g *Game) Arbiter() *MergeArbiter           { return g.arbiter }
func (g *Game) Dispatcher() *CollisionDispatcher { return g.dispatcher }
func (g *Game) Animator() *anim.Animator         { return g.animator }
func (g *Game) Scheduler() *loop.Scheduler       { return g.scheduler }

// Pointer is the last pointer position in world units.
func (g *Game) Pointer() geom.Vec2 { return g.input.pointer }
