package game_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/plus3/mergeball/audio"
	"github.com/plus3/mergeball/ball"
	"github.com/plus3/mergeball/config"
	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/geom"
)

type played struct {
	Cue       audio.Cue
	Intensity float64
}

type recorder struct {
	played []played
}

func (r *recorder) PlayCue(cue audio.Cue, intensity float64) {
	r.played = append(r.played, played{cue, intensity})
}

type harness struct {
	*game.Game
	sounds *recorder
	logs   *bytes.Buffer
}

func newHarness(t *testing.T, mutate ...func(*config.Config)) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	for _, m := range mutate {
		m(cfg)
	}
	h := &harness{sounds: &recorder{}, logs: &bytes.Buffer{}}
	h.Game = game.New(cfg, game.Options{
		Audio:  h.sounds,
		Logger: log.New(h.logs, "", 0),
	})
	return h
}

// newBall creates a settled, collidable ball outside of the spawn slot.
func (h *harness) newBall(lvl int, x, y float64) *ball.Ball {
	return h.Factory().Create(geom.V(x, y), lvl, ball.Dropped, 1)
}

// step advances only the animations, leaving physics untouched.
func (h *harness) step(seconds float64) {
	h.Animator().Step(seconds)
}

// hold spawns the first held ball and lets it finish growing.
func (h *harness) hold(t *testing.T) *ball.Ball {
	t.Helper()
	h.Start()
	h.step(0.31)
	h.step(0.21)
	held := h.Slot().Held()
	if held == nil {
		t.Fatal("expected a held ball")
	}
	return held
}
