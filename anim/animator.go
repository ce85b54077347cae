// Package anim drives timed tasks (waits, scale tweens, move tweens) from the
// frame loop. Tasks advance only when Step is called.
package anim

import "github.com/plus3/mergeball/geom"

type Kind int

const (
	KindDelay Kind = iota
	KindScale
	KindMove
)

func (k Kind) String() string {
	switch k {
	case KindDelay:
		return "delay"
	case KindScale:
		return "scale"
	case KindMove:
		return "move"
	default:
		return "unknown"
	}
}

// Task interpolates From..To over Duration seconds. Apply receives each
// interpolated value and the exact To value on completion. Done runs once,
// after the final Apply.
type Task struct {
	Kind     Kind
	From, To geom.Vec2
	Duration float64
	Apply    func(v geom.Vec2)
	Done     func()

	elapsed  float64
	canceled bool
}

// Progress returns elapsed/duration clamped to [0, 1].
func (t *Task) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return geom.Clamp01(t.elapsed / t.Duration)
}

// Cancel drops the task without running Apply or Done again.
func (t *Task) Cancel() { t.canceled = true }

// Animator owns running tasks. Tasks started from inside a callback begin
// advancing on the next Step.
type Animator struct {
	tasks    []*Task
	pending  []*Task
	stepping bool
}

func New() *Animator {
	return &Animator{}
}

func (a *Animator) Start(t *Task) *Task {
	if a.stepping {
		a.pending = append(a.pending, t)
	} else {
		a.tasks = append(a.tasks, t)
	}
	return t
}

// Len counts running and pending tasks.
func (a *Animator) Len() int {
	return len(a.tasks) + len(a.pending)
}

func (a *Animator) Step(dt float64) {
	a.stepping = true
	live := a.tasks[:0]
	var finished []*Task
	for _, t := range a.tasks {
		if t.canceled {
			continue
		}
		t.elapsed += dt
		if t.elapsed >= t.Duration {
			finished = append(finished, t)
			continue
		}
		if t.Apply != nil {
			t.Apply(t.From.Lerp(t.To, t.Progress()))
		}
		live = append(live, t)
	}
	clear(a.tasks[len(live):])
	a.tasks = live

	for _, t := range finished {
		if t.canceled {
			continue
		}
		if t.Apply != nil {
			t.Apply(t.To)
		}
		if t.Done != nil {
			t.Done()
		}
	}
	a.stepping = false

	a.tasks = append(a.tasks, a.pending...)
	clear(a.pending)
	a.pending = a.pending[:0]
}

// Wait runs done after d seconds.
func Wait(d float64, done func()) *Task {
	return &Task{Kind: KindDelay, Duration: d, Done: done}
}

// Grow scales uniformly from `from` to `to`; apply receives the scalar factor.
func Grow(from, to, d float64, apply func(scale float64), done func()) *Task {
	return &Task{
		Kind:     KindScale,
		From:     geom.V(from, from),
		To:       geom.V(to, to),
		Duration: d,
		Apply:    func(v geom.Vec2) { apply(v.X) },
		Done:     done,
	}
}

// MoveTo tweens a position from `from` to `to`.
func MoveTo(from, to geom.Vec2, d float64, apply func(geom.Vec2), done func()) *Task {
	return &Task{Kind: KindMove, From: from, To: to, Duration: d, Apply: apply, Done: done}
}
