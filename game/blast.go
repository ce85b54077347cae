package game

import (
	"math"
	"math/rand/v2"

	"github.com/plus3/mergeball/geom"
	"github.com/plus3/mergeball/physics"
)

// BlastSettings configure the radial push triggered inside the box.
type BlastSettings struct {
	Radius   float64
	Force    float64
	MaxSpeed float64 // zero means unclamped
}

// Blast pushes every ball overlapping the radius away from center. The
// impulse falls off from Force at the center to zero at the edge along an
// ease-in-out curve. It returns how many bodies were pushed.
func Blast(world *physics.World, center geom.Vec2, s BlastSettings, rng *rand.Rand) int {
	if s.Radius <= 0 {
		return 0
	}
	pushed := 0
	for _, body := range world.OverlapRegion(center, s.Radius, physics.TagBall) {
		if body.Kinematic() {
			continue
		}
		to := body.Position().Sub(center)
		dist := to.Length()
		if dist == 0 {
			to = geom.V(1, 0).Rotate(rng.Float64() * 2 * math.Pi)
		}
		dir := to.Normalized()

		fall := falloff(geom.Clamp01(dist / s.Radius))
		body.AddImpulse(dir.Scale(s.Force * fall))

		if s.MaxSpeed > 0 {
			if v := body.Velocity(); v.Length() > s.MaxSpeed {
				body.SetVelocity(v.Normalized().Scale(s.MaxSpeed))
			}
		}
		pushed++
	}
	return pushed
}

// falloff eases from 1 at t=0 to 0 at t=1 with flat ends.
func falloff(t float64) float64 {
	return 1 - t*t*(3-2*t)
}
