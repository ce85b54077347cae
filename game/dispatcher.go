package game

import (
	"log"

	"github.com/plus3/mergeball/audio"
	"github.com/plus3/mergeball/ball"
	"github.com/plus3/mergeball/physics"
)

// Collision is one delivery of a contact, seen from Self. Stay is set when
// the pair was already touching on the previous step.
type Collision struct {
	Self  physics.Body
	Other physics.Collider
	Stay  bool
}

// CollisionDispatcher filters raw contacts and forwards ball pairs to the arbiter.
type CollisionDispatcher struct {
	factory *ball.Factory
	arbiter *MergeArbiter
	player  audio.Player
	impact  Thresholds
	logger  *log.Logger
	stats   *Stats
}

func NewCollisionDispatcher(factory *ball.Factory, arbiter *MergeArbiter, player audio.Player, impact Thresholds, logger *log.Logger, stats *Stats) *CollisionDispatcher {
	if player == nil {
		player = audio.Nop
	}
	if logger == nil {
		logger = log.Default()
	}
	if stats == nil {
		stats = &Stats{}
	}
	return &CollisionDispatcher{
		factory: factory,
		arbiter: arbiter,
		player:  player,
		impact:  impact,
		logger:  logger,
		stats:   stats,
	}
}

func (d *CollisionDispatcher) Dispatch(c Collision) Outcome {
	self, ok := d.factory.Lookup(c.Self)
	if !ok {
		d.logger.Printf("collision: body %v has no ball, contact dropped", colliderID(c.Self))
		return Ignored
	}

	if c.Other == nil || c.Other.Tag()&physics.TagBall == 0 {
		if c.Stay {
			return Ignored
		}
		if cue, intensity, ok := d.impact.Cue(self.Speed()); ok {
			d.player.PlayCue(cue, intensity)
			d.stats.Impacts++
		}
		return Bumped
	}

	if self.Suppressed() {
		return Ignored
	}
	other, ok := d.factory.Lookup(c.Other)
	if !ok {
		d.logger.Printf("collision: %s touched body %v with no ball, contact dropped", self.Name, c.Other.ID())
		return Ignored
	}
	if other.Suppressed() {
		return Ignored
	}
	if c.Stay && self.Level != other.Level {
		return Ignored
	}
	return d.arbiter.Resolve(self, other)
}

func colliderID(c physics.Collider) any {
	if c == nil {
		return nil
	}
	return c.ID()
}
