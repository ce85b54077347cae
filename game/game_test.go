package game_test

import (
	"testing"

	"github.com/plus3/mergeball/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func (h *harness) run(seconds float64) {
	for t := 0.0; t < seconds; t += frame {
		h.Tick(frame)
	}
}

func TestStartSpawnsHeldBall(t *testing.T) {
	h := newHarness(t)
	h.Start()
	h.run(0.6)

	held := h.Slot().Held()
	require.NotNil(t, held)
	assert.Equal(t, 1, held.Level)
	assert.False(t, held.Suppressed())
	assert.Equal(t, h.Bounds().Ceiling, held.Position().Y, "kinematic ball ignores gravity")
}

func TestPointerReleaseOutsideBoxDrops(t *testing.T) {
	h := newHarness(t)
	h.Start()
	h.run(0.6)
	held := h.Slot().Held()

	h.SetPointer(geom.V(0.5, 3))
	h.Tick(frame)
	assert.InDelta(t, 0.5, held.Position().X, 1e-9)

	h.ReleasePointer(geom.V(0.5, 3))
	h.Tick(frame)
	assert.False(t, held.Body.Kinematic())
	assert.True(t, h.Slot().Waiting())
	assert.Equal(t, 1, h.Stats().Dropped)

	h.run(1)
	assert.Less(t, held.Position().Y, h.Bounds().Ceiling)
	next := h.Slot().Held()
	require.NotNil(t, next)
	assert.NotSame(t, held, next)
	assert.InDelta(t, 0.5, next.Position().X, 1e-9)
}

func TestPointerReleaseWhileWaitingIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.Start()

	h.ReleasePointer(geom.V(0, 3))
	h.Tick(frame)
	assert.Equal(t, 0, h.Stats().Dropped)
	assert.Equal(t, 1, h.Slot().Requests())
}

func TestPointerReleaseInsideBoxBlasts(t *testing.T) {
	h := newHarness(t)
	b := h.newBall(2, 0.3, h.Bounds().Bottom+0.2)

	h.ReleasePointer(geom.V(0, h.Bounds().Bottom+0.2))
	h.Tick(frame)

	assert.Equal(t, 1, h.Stats().Blasts)
	assert.Greater(t, b.Body.Velocity().X, 0.0)
}

func TestTimeScaleSlowsTheWorld(t *testing.T) {
	h := newHarness(t)
	b := h.newBall(1, 0, 0)

	h.Scheduler().SetTimeScale(0.1)
	h.Tick(frame)
	assert.InDelta(t, 9.81*frame*0.1, -b.Body.Velocity().Y, 0.01)
}

// Two same-level balls dropped onto each other merge through the full
// physics, collision and animation pipeline.
func TestTouchingBallsMergeEndToEnd(t *testing.T) {
	h := newHarness(t)
	floor := h.Bounds().Bottom
	r := h.Table().SizeOf(3) / 2
	a := h.newBall(3, -r, floor+r)
	b := h.newBall(3, r+0.002, floor+r)

	h.run(0.5)

	require.Equal(t, 1, h.Registry().Len())
	child := h.Registry().Snapshot()[0]
	assert.Equal(t, 4, child.Level)
	assert.False(t, a.Active())
	assert.False(t, b.Active())
	assert.Equal(t, 1, h.Stats().Merges)
	assert.False(t, child.Growing)
}

func TestLongSessionKeepsInvariants(t *testing.T) {
	h := newHarness(t)
	h.Start()

	lastIndex := -1
	seen := map[int]bool{}
	for i := range 1200 {
		x := -1.2 + 0.2*float64(i%13)
		h.SetPointer(geom.V(x, 3))
		if i%20 == 0 {
			h.ReleasePointer(geom.V(x, 3))
		}
		h.Tick(frame)

		held := 0
		for b := range h.Registry().All() {
			if !seen[b.Index] {
				assert.Greater(t, b.Index, lastIndex, "indices grow in creation order")
				lastIndex = b.Index
				seen[b.Index] = true
			}
			assert.True(t, b.Active())
			if h.Slot().Holds(b) {
				held++
			}
		}
		assert.LessOrEqual(t, held, 1)
	}

	stats := h.Stats()
	assert.Positive(t, stats.Dropped)
	assert.Equal(t, h.Registry().Len(), stats.Live)
	assert.Equal(t, h.Factory().Created()-h.Factory().Destroyed(), stats.Live)
	assert.LessOrEqual(t, h.Factory().Destroyed(), stats.Merges*2)
}
