package audio

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Synth renders cues with small procedural voices mixed onto the speaker.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewSynth(volume float64) *Synth {
	return &Synth{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker. Calling it twice is a no-op.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

func (s *Synth) PlayCue(cue Cue, intensity float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	v := s.Voice(cue, intensity)
	if v == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(v)
	speaker.Unlock()
}

// Voice builds the streamer for a cue without playing it. AnyVariant picks variant 0.
func (s *Synth) Voice(cue Cue, intensity float64) beep.Streamer {
	variant := max(cue.Variant, 0)
	gain := intensity * s.volume

	var src beep.Streamer
	switch cue.Class {
	case Pop:
		src = newDecay(newSweep(520+90*float64(variant), 0.55), 80*time.Millisecond, 30)
	case Clap, Crack, Whoosh, Drum:
		src = newDecay(newNoise(), noiseLength(cue.Class, variant), 45)
	case Impact:
		src = newDecay(newSweep(90, 0.7), 120*time.Millisecond, 20)
	case Marimba, Coin, Meow, Click, BGM:
		tone, err := generators.SineTone(sampleRate, toneFreq(cue.Class, variant))
		if err != nil {
			return nil
		}
		src = newDecay(tone, 250*time.Millisecond, 14)
	default:
		return nil
	}
	return volume(src, gain)
}

func noiseLength(c Class, variant int) time.Duration {
	switch c {
	case Whoosh:
		return 220 * time.Millisecond
	case Drum:
		return 140 * time.Millisecond
	default:
		return time.Duration(60+15*variant) * time.Millisecond
	}
}

// toneFreq steps marimba variants along a pentatonic scale.
func toneFreq(c Class, variant int) float64 {
	switch c {
	case Marimba:
		steps := [...]float64{0, 2, 4, 7}
		return 440 * math.Pow(2, steps[variant%len(steps)]/12)
	case Coin:
		return 987.77
	case Meow:
		return 660
	case Click:
		return 1800
	default:
		return 220
	}
}

func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// decay fades a streamer exponentially and ends it after a fixed length.
type decay struct {
	src   beep.Streamer
	pos   int
	total int
	rate  float64
}

func newDecay(src beep.Streamer, length time.Duration, rate float64) beep.Streamer {
	return &decay{src: src, total: sampleRate.N(length), rate: rate}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	if d.pos >= d.total {
		return 0, false
	}
	if rest := d.total - d.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok := d.src.Stream(samples)
	for i := range n {
		env := math.Exp(-d.rate * float64(d.pos) / float64(sampleRate))
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok || n > 0
}

func (d *decay) Err() error { return d.src.Err() }

// sweep is a sine whose pitch falls by `drop` of its start over 100ms.
type sweep struct {
	freq  float64
	drop  float64
	phase float64
	pos   int
}

func newSweep(freq, drop float64) beep.Streamer {
	return &sweep{freq: freq, drop: drop}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := math.Min(float64(s.pos)/float64(sampleRate)/0.1, 1)
		f := s.freq * (1 - s.drop*t)
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += f / float64(sampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

type noise struct{}

func newNoise() beep.Streamer { return noise{} }

func (noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := rand.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (noise) Err() error { return nil }
