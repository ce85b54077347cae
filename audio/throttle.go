package audio

import (
	"math/rand/v2"
	"sync"
	"time"
)

// DefaultCooldown is the minimum gap between two random-variant cues of one class.
const DefaultCooldown = 100 * time.Millisecond

// Throttle rate limits random-variant cues per class and resolves them to a
// concrete variant, never the same one twice in a row. Cues with an explicit
// variant pass through untouched.
type Throttle struct {
	mu       sync.Mutex
	next     Player
	cooldown time.Duration
	now      func() time.Time
	rng      *rand.Rand

	lastPlayed  [classCount]time.Time
	lastVariant [classCount]int

	dropped int
}

type ThrottleOption func(*Throttle)

func WithClock(now func() time.Time) ThrottleOption {
	return func(t *Throttle) { t.now = now }
}

func WithRand(rng *rand.Rand) ThrottleOption {
	return func(t *Throttle) { t.rng = rng }
}

func NewThrottle(next Player, cooldown time.Duration, opts ...ThrottleOption) *Throttle {
	t := &Throttle{
		next:     next,
		cooldown: cooldown,
		now:      time.Now,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for i := range t.lastVariant {
		t.lastVariant[i] = AnyVariant
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Throttle) PlayCue(cue Cue, intensity float64) {
	if cue.Variant != AnyVariant {
		t.next.PlayCue(cue, intensity)
		return
	}
	n := cue.Class.Variants()
	if n == 0 {
		return
	}

	t.mu.Lock()
	now := t.now()
	last := t.lastPlayed[cue.Class]
	if !last.IsZero() && now.Sub(last) < t.cooldown {
		t.dropped++
		t.mu.Unlock()
		return
	}
	t.lastPlayed[cue.Class] = now

	variant := t.rng.IntN(n)
	if n > 1 && variant == t.lastVariant[cue.Class] {
		variant = (variant + 1 + t.rng.IntN(n-1)) % n
	}
	t.lastVariant[cue.Class] = variant
	t.mu.Unlock()

	t.next.PlayCue(Cue{Class: cue.Class, Variant: variant}, intensity)
}

// Dropped counts cues suppressed by the cooldown.
func (t *Throttle) Dropped() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropped
}
