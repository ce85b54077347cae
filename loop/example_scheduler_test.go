package loop_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/mergeball/loop"
)

type Clock struct {
	Frames  int
	Elapsed float64
}

func (c *Clock) Execute(frame *loop.UpdateFrame) {
	c.Frames++
	c.Elapsed += frame.DeltaTime
}

// ExampleScheduler builds a frame loop from two systems. Systems run in
// registration order and deferred commands run once every system is done.
func ExampleScheduler() {
	clock := &Clock{}

	scheduler := loop.NewScheduler()
	scheduler.Register(clock)
	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		frame.Commands.Defer(func() {
			fmt.Printf("tick %d: %d frames, %.3fs\n", frame.Tick, clock.Frames, clock.Elapsed)
		})
	}))

	scheduler.Once(0.016)
	scheduler.Once(0.016)

	// Output:
	// tick 1: 1 frames, 0.016s
	// tick 2: 2 frames, 0.032s
}

// ExampleScheduler_Run runs the loop on a ticker until the context ends.
func ExampleScheduler_Run() {
	scheduler := loop.NewScheduler()
	scheduler.Register(&Clock{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, 16*time.Millisecond)

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}
