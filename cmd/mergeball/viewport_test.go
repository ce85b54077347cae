package main

import (
	"testing"

	"github.com/plus3/mergeball/config"
	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/geom"
	"github.com/stretchr/testify/assert"
)

func TestViewport(t *testing.T) {
	cfg := config.Default()
	v := NewViewport(cfg.Window, game.BoundaryFrom(cfg.Box))

	t.Run("span center is screen center", func(t *testing.T) {
		x, y := v.ToScreen(geom.V(0, (cfg.Box.Bottom+cfg.Box.Ceiling)/2))
		assert.InDelta(t, 270, x, 1e-3)
		assert.InDelta(t, 400, y, 1e-3)
	})

	t.Run("y grows upward", func(t *testing.T) {
		_, floor := v.ToScreen(geom.V(0, cfg.Box.Bottom))
		_, ceiling := v.ToScreen(geom.V(0, cfg.Box.Ceiling))
		assert.Greater(t, floor, ceiling)
		assert.InDelta(t, 4.7*160, floor-ceiling, 1e-3)
	})

	t.Run("pointer to world", func(t *testing.T) {
		p := v.ToWorld(270+160, 400)
		assert.InDelta(t, 1.0, p.X, 1e-9)
		assert.InDelta(t, -0.15, p.Y, 1e-9)
	})

	assert.Equal(t, float32(80), v.Length(0.5))
}
