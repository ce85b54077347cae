package audio_test

import (
	"testing"

	"github.com/plus3/mergeball/audio"
	"github.com/stretchr/testify/assert"
)

func TestLevelCue(t *testing.T) {
	tests := []struct {
		level int
		want  audio.Cue
	}{
		{1, audio.Cue{Class: audio.Pop, Variant: 0}},
		{2, audio.Cue{Class: audio.Pop, Variant: 1}},
		{3, audio.Cue{Class: audio.Pop, Variant: 2}},
		{4, audio.Cue{Class: audio.Pop, Variant: 3}},
		{5, audio.Cue{Class: audio.Clap, Variant: 0}},
		{6, audio.Cue{Class: audio.Clap, Variant: 1}},
		{7, audio.Cue{Class: audio.Clap, Variant: 2}},
		{8, audio.Cue{Class: audio.Impact, Variant: 0}},
		{9, audio.Cue{Class: audio.Pop, Variant: 0}},
		{12, audio.Cue{Class: audio.Pop, Variant: 0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, audio.LevelCue(tt.level), "level %d", tt.level)
	}
}

func TestCueString(t *testing.T) {
	assert.Equal(t, "marimba", audio.Random(audio.Marimba).String())
	assert.Equal(t, "clap2", audio.LevelCue(7).String())
	assert.Equal(t, "class(99)", audio.Class(99).String())
}

func TestSynthVoices(t *testing.T) {
	synth := audio.NewSynth(1)

	for c := audio.BGM; c <= audio.Marimba; c++ {
		v := synth.Voice(audio.Cue{Class: c, Variant: 0}, 1)
		if !assert.NotNil(t, v, "class %s", c) {
			continue
		}

		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := v.Stream(buf)
			total += n
			for i := range n {
				assert.LessOrEqual(t, buf[i][0], 1.0)
				assert.GreaterOrEqual(t, buf[i][0], -1.0)
			}
			if !ok || n == 0 {
				break
			}
		}
		assert.Positive(t, total, "class %s", c)
		assert.Less(t, total, 44100, "class %s should be a short voice", c)
	}

	assert.Nil(t, synth.Voice(audio.Cue{Class: audio.Class(42)}, 1))
}

func TestSynthIgnoresCuesBeforeInit(t *testing.T) {
	synth := audio.NewSynth(1)
	assert.NotPanics(t, func() { synth.PlayCue(audio.LevelCue(1), 1) })
	synth.Close()
}
