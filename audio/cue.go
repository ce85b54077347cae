// Package audio names the sound cues the game emits and plays them.
package audio

import "fmt"

// Class is a family of interchangeable sound variants.
type Class int

const (
	BGM Class = iota
	Pop
	Meow
	Click
	Clap
	Coin
	Crack
	Impact
	Whoosh
	Drum
	Marimba

	classCount
)

var classNames = [classCount]string{"bgm", "pop", "meow", "click", "clap", "coin", "crack", "impact", "whoosh", "drum", "marimba"}

// variantCounts is how many recorded variants each class has.
var variantCounts = [classCount]int{1, 4, 1, 1, 3, 1, 1, 1, 1, 1, 4}

func (c Class) String() string {
	if c < 0 || c >= classCount {
		return fmt.Sprintf("class(%d)", int(c))
	}
	return classNames[c]
}

// Variants returns the number of variants of c, zero for unknown classes.
func (c Class) Variants() int {
	if c < 0 || c >= classCount {
		return 0
	}
	return variantCounts[c]
}

// AnyVariant lets the player pick a variant.
const AnyVariant = -1

// Cue selects a sound: a class and either a fixed variant or AnyVariant.
type Cue struct {
	Class   Class
	Variant int
}

func (c Cue) String() string {
	if c.Variant == AnyVariant {
		return c.Class.String()
	}
	return fmt.Sprintf("%s%d", c.Class, c.Variant)
}

// Random returns a cue of class c with the variant left to the player.
func Random(c Class) Cue {
	return Cue{Class: c, Variant: AnyVariant}
}

// Player plays cues at an intensity in [0, 1]. Implementations must not block.
type Player interface {
	PlayCue(cue Cue, intensity float64)
}

// PlayerFunc adapts a function to Player.
type PlayerFunc func(cue Cue, intensity float64)

func (f PlayerFunc) PlayCue(cue Cue, intensity float64) { f(cue, intensity) }

// Nop discards every cue.
var Nop Player = PlayerFunc(func(Cue, float64) {})

// LevelCue is the fixed cue that marks a ball of the given level finishing its growth.
func LevelCue(level int) Cue {
	switch level {
	case 1:
		return Cue{Pop, 0}
	case 2:
		return Cue{Pop, 1}
	case 3:
		return Cue{Pop, 2}
	case 4:
		return Cue{Pop, 3}
	case 5:
		return Cue{Clap, 0}
	case 6:
		return Cue{Clap, 1}
	case 7:
		return Cue{Clap, 2}
	case 8:
		return Cue{Impact, 0}
	default:
		return Cue{Pop, 0}
	}
}
