package game_test

import (
	"testing"

	"github.com/plus3/mergeball/audio"
	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/geom"
	"github.com/plus3/mergeball/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallImpactTiers(t *testing.T) {
	tests := []struct {
		speed     float64
		intensity float64
		outcome   game.Outcome
		sounds    int
	}{
		{3, game.StrongImpact, game.Bumped, 1},
		{1, game.WeakImpact, game.Bumped, 1},
		{0.2, 0, game.Bumped, 0},
	}

	for _, tt := range tests {
		h := newHarness(t)
		b := h.newBall(1, 0, 0)
		b.Body.SetVelocity(geom.V(-tt.speed, 0))
		floor := h.World().Walls()[physics.SideFloor]

		got := h.Dispatcher().Dispatch(game.Collision{Self: b.Body, Other: floor})
		assert.Equal(t, tt.outcome, got)
		require.Len(t, h.sounds.played, tt.sounds, "speed %v", tt.speed)
		if tt.sounds > 0 {
			assert.Equal(t, audio.Marimba, h.sounds.played[0].Cue.Class)
			assert.Equal(t, tt.intensity, h.sounds.played[0].Intensity)
		}
	}
}

func TestWallStayIsSilent(t *testing.T) {
	h := newHarness(t)
	b := h.newBall(1, 0, 0)
	b.Body.SetVelocity(geom.V(5, 0))

	got := h.Dispatcher().Dispatch(game.Collision{Self: b.Body, Other: h.World().Walls()[0], Stay: true})
	assert.Equal(t, game.Ignored, got)
	assert.Empty(t, h.sounds.played)
}

func TestDispatchForwardsBallPairs(t *testing.T) {
	h := newHarness(t)
	a := h.newBall(3, -0.1, 0)
	b := h.newBall(3, 0.1, 0)

	assert.Equal(t, game.Merged, h.Dispatcher().Dispatch(game.Collision{Self: a.Body, Other: b.Body}))
	assert.Equal(t, game.Ignored, h.Dispatcher().Dispatch(game.Collision{Self: b.Body, Other: a.Body}))
}

func TestDispatchSuppression(t *testing.T) {
	h := newHarness(t)
	a := h.newBall(3, -0.1, 0)
	b := h.newBall(3, 0.1, 0)

	a.Growing = true
	assert.Equal(t, game.Ignored, h.Dispatcher().Dispatch(game.Collision{Self: a.Body, Other: b.Body}))
	a.Growing = false

	b.SpawnPhase = true
	assert.Equal(t, game.Ignored, h.Dispatcher().Dispatch(game.Collision{Self: a.Body, Other: b.Body}))
	b.SpawnPhase = false

	assert.Equal(t, game.Merged, h.Dispatcher().Dispatch(game.Collision{Self: a.Body, Other: b.Body}))
}

func TestDispatchStayContacts(t *testing.T) {
	h := newHarness(t)
	a := h.newBall(2, -0.1, 0)
	b := h.newBall(4, 0.1, 0)
	c := h.newBall(2, 0.3, 0)
	b.Body.SetVelocity(geom.V(0, 3))

	assert.Equal(t, game.Ignored, h.Dispatcher().Dispatch(game.Collision{Self: a.Body, Other: b.Body, Stay: true}))
	assert.Empty(t, h.sounds.played)

	assert.Equal(t, game.Merged, h.Dispatcher().Dispatch(game.Collision{Self: a.Body, Other: c.Body, Stay: true}))
}

func TestDispatchMissingBall(t *testing.T) {
	h := newHarness(t)
	a := h.newBall(1, 0, 0)
	stray := h.World().Add(geom.V(0.1, 0), 0.1, physics.TagBall)

	assert.Equal(t, game.Ignored, h.Dispatcher().Dispatch(game.Collision{Self: a.Body, Other: stray}))
	assert.Contains(t, h.logs.String(), "with no ball")

	h.logs.Reset()
	assert.Equal(t, game.Ignored, h.Dispatcher().Dispatch(game.Collision{Self: stray, Other: a.Body}))
	assert.Contains(t, h.logs.String(), "has no ball")
	assert.False(t, a.MergeReserved())
}
