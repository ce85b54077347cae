package main

import (
	"sort"

	"github.com/plus3/mergeball/audio"
)

// cueCounter is a silent audio.Player that tallies cues by name.
type cueCounter struct {
	counts map[string]int
}

func newCueCounter() *cueCounter {
	return &cueCounter{counts: make(map[string]int)}
}

func (c *cueCounter) PlayCue(cue audio.Cue, intensity float64) {
	c.counts[cue.String()]++
}

type CueCount struct {
	Cue   string
	Count int
}

// Counts lists every cue played, most frequent first.
func (c *cueCounter) Counts() []CueCount {
	out := make([]CueCount, 0, len(c.counts))
	for cue, n := range c.counts {
		out = append(out, CueCount{Cue: cue, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Cue < out[j].Cue
	})
	return out
}
