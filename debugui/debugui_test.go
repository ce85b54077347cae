package debugui_test

import (
	"testing"

	"github.com/plus3/mergeball/ball"
	"github.com/plus3/mergeball/debugui"
	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(rows []debugui.BallRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func newGame() *game.Game {
	return game.New(nil, game.Options{})
}

func TestBallBrowserSortsAndFilters(t *testing.T) {
	g := newGame()
	f := g.Factory()
	f.Create(geom.V(0, 0), 3, ball.Dropped, 1)
	f.Create(geom.V(0, 1), 1, ball.Merged, 1)
	grown := f.Create(geom.V(0, -1), 2, ball.Dropped, 1)
	grown.Growing = true

	bb := debugui.NewBallBrowser(g.Registry(), 10)

	t.Run("by index", func(t *testing.T) {
		assert.Equal(t, []string{"ball_0", "ballM_1", "ball_2"}, names(bb.Rows()))
	})

	t.Run("by level descending", func(t *testing.T) {
		bb.SortBy(2, false)
		assert.Equal(t, []string{"ball_0", "ball_2", "ballM_1"}, names(bb.Rows()))
	})

	t.Run("by height", func(t *testing.T) {
		bb.SortBy(3, true)
		assert.Equal(t, []string{"ball_2", "ball_0", "ballM_1"}, names(bb.Rows()))
	})

	t.Run("filter", func(t *testing.T) {
		bb.SortBy(0, true)
		bb.SetFilter("ballM")
		assert.Equal(t, []string{"ballM_1"}, names(bb.Rows()))

		bb.SetFilter("growing")
		assert.Equal(t, []string{"ball_2"}, names(bb.Rows()))

		bb.SetFilter("level=3")
		assert.Equal(t, []string{"ball_0"}, names(bb.Rows()))

		bb.SetFilter("")
		assert.Len(t, bb.Rows(), 3)
	})
}

func TestBallBrowserSelectionFollowsRegistry(t *testing.T) {
	g := newGame()
	b := g.Factory().Create(geom.V(0, 0), 1, ball.Dropped, 1)
	bb := debugui.NewBallBrowser(g.Registry(), 0)

	_, ok := bb.Selected()
	assert.False(t, ok)

	bb.Select(b.Index)
	got, ok := bb.Selected()
	require.True(t, ok)
	assert.Same(t, b, got)

	g.Factory().Destroy(b)
	_, ok = bb.Selected()
	assert.False(t, ok)
}

func TestSlotInspectorRequest(t *testing.T) {
	g := newGame()
	si := debugui.NewSlotInspector(g)

	si.SetLevel(40)
	require.True(t, si.Request())
	assert.False(t, si.Request())

	for range 60 {
		g.Tick(1.0 / 60)
	}
	held := g.Slot().Held()
	require.NotNil(t, held)
	assert.Equal(t, 11, held.Level)
}

func TestPerformanceStatsAverage(t *testing.T) {
	ps := debugui.NewPerformanceStats(newGame(), 4)
	ps.Record(0.010)
	ps.Record(0.020)
	ps.Record(0.030)
	ps.Record(0.040)
	assert.InDelta(t, 25.0, ps.AverageFrameTime(), 1e-3)

	ps.Record(0.080)
	assert.InDelta(t, 42.5, ps.AverageFrameTime(), 1e-3)
}
