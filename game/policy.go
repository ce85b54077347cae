package game

import "math/rand/v2"

// NextDropLevel picks the level of the next held ball from how many balls
// have been requested so far: a scripted opening, then random small levels.
func NextDropLevel(counter int, rng *rand.Rand) int {
	switch {
	case counter <= 0:
		return 1
	case counter < 5:
		return counter
	case counter > 35:
		return 1 + rng.IntN(5)
	default:
		return 1 + rng.IntN(4)
	}
}

// IndexReplacementLevel is the level given to a replacement held ball when
// the held one is consumed by a merge: one above the next ball index. It is
// not capped, so past level 11 the ball uses default visuals.
func IndexReplacementLevel(nextIndex int) int {
	return nextIndex + 1
}
