package game

import "github.com/plus3/mergeball/audio"

const (
	StrongImpact = 1.0
	WeakImpact   = 0.45
)

// Thresholds are the speeds above which an impact is audible.
type Thresholds struct {
	Fast   float64
	Medium float64
}

// Cue picks the impact cue for a contact at speed. ok is false below Medium.
func (t Thresholds) Cue(speed float64) (cue audio.Cue, intensity float64, ok bool) {
	switch {
	case speed > t.Fast:
		return audio.Random(audio.Marimba), StrongImpact, true
	case speed > t.Medium:
		return audio.Random(audio.Marimba), WeakImpact, true
	default:
		return audio.Cue{}, 0, false
	}
}
