package game_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/geom"
	"github.com/plus3/mergeball/physics"
	"github.com/stretchr/testify/assert"
)

func TestBlastPushesAwayWithFalloff(t *testing.T) {
	world := physics.NewWorld(physics.DefaultOptions())
	near := world.Add(geom.V(0.2, 0), 0.1, physics.TagBall)
	far := world.Add(geom.V(-0.8, 0), 0.1, physics.TagBall)
	outside := world.Add(geom.V(0, 1.5), 0.1, physics.TagBall)
	held := world.Add(geom.V(0, -0.3), 0.1, physics.TagBall)
	held.SetKinematic(true)

	n := game.Blast(world, geom.V(0, 0), game.BlastSettings{Radius: 1, Force: 4}, rand.New(rand.NewPCG(1, 1)))
	assert.Equal(t, 2, n)

	assert.Greater(t, near.Velocity().X, 0.0)
	assert.Less(t, far.Velocity().X, 0.0)
	assert.Greater(t, near.Velocity().Length(), far.Velocity().Length())
	assert.InDelta(t, 4*(1-(0.04*(3-0.4))), near.Velocity().X, 1e-9)
	assert.Equal(t, geom.Vec2{}, outside.Velocity())
	assert.Equal(t, geom.Vec2{}, held.Velocity())
}

func TestBlastMaxSpeedAndCoincidentCenters(t *testing.T) {
	world := physics.NewWorld(physics.DefaultOptions())
	b := world.Add(geom.V(0, 0), 0.1, physics.TagBall)

	game.Blast(world, geom.V(0, 0), game.BlastSettings{Radius: 1, Force: 10, MaxSpeed: 2}, rand.New(rand.NewPCG(3, 4)))
	assert.InDelta(t, 2, b.Velocity().Length(), 1e-9)
}

func TestBlastNeedsRadius(t *testing.T) {
	world := physics.NewWorld(physics.DefaultOptions())
	world.Add(geom.V(0, 0), 0.1, physics.TagBall)
	assert.Equal(t, 0, game.Blast(world, geom.V(0, 0), game.BlastSettings{Force: 10}, rand.New(rand.NewPCG(1, 1))))
}
