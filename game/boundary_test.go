package game_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/mergeball/audio"
	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/geom"
	"github.com/stretchr/testify/assert"
)

func TestBoundary(t *testing.T) {
	b := game.Boundary{Left: -1, Right: 1, Bottom: -2, Top: 1, Ceiling: 1.5, Inset: 0.01}

	assert.True(t, b.Contains(geom.V(0, 0)))
	assert.True(t, b.Contains(geom.V(1, 1)))
	assert.False(t, b.Contains(geom.V(0, 1.5)))
	assert.False(t, b.Contains(geom.V(-1.1, 0)))
	assert.Equal(t, geom.V(0, -0.5), b.Center())

	assert.Equal(t, 0.3, b.ClampX(0.3, 0.2))
	assert.InDelta(t, -0.79, b.ClampX(-5, 0.2), 1e-12)
	assert.InDelta(t, 0.79, b.ClampX(5, 0.2), 1e-12)
	assert.Equal(t, 0.0, b.ClampX(0.5, 1.5), "ball wider than the box")
}

func TestImpactThresholds(t *testing.T) {
	th := game.Thresholds{Fast: 1.5, Medium: 0.7}

	cue, intensity, ok := th.Cue(1.6)
	assert.True(t, ok)
	assert.Equal(t, audio.Random(audio.Marimba), cue)
	assert.Equal(t, 1.0, intensity)

	_, intensity, ok = th.Cue(1.5)
	assert.True(t, ok)
	assert.Equal(t, 0.45, intensity)

	_, _, ok = th.Cue(0.7)
	assert.False(t, ok)
}

func TestNextDropLevel(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	assert.Equal(t, 1, game.NextDropLevel(0, rng))
	for c := 1; c < 5; c++ {
		assert.Equal(t, c, game.NextDropLevel(c, rng))
	}

	seen := map[int]bool{}
	for range 500 {
		l := game.NextDropLevel(20, rng)
		assert.GreaterOrEqual(t, l, 1)
		assert.LessOrEqual(t, l, 4)
		seen[l] = true
	}
	assert.Len(t, seen, 4)

	seen = map[int]bool{}
	for range 500 {
		seen[game.NextDropLevel(36, rng)] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}, seen)

	assert.Equal(t, 8, game.IndexReplacementLevel(7))
}
