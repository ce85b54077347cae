package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/mergeball/loop"
	"github.com/stretchr/testify/assert"
)

type CountingSystem struct {
	ExecuteCount int
	TotalTime    float64
	LastTick     uint64
	sleep        time.Duration
}

func (s *CountingSystem) Execute(frame *loop.UpdateFrame) {
	s.ExecuteCount++
	s.TotalTime += frame.DeltaTime
	s.LastTick = frame.Tick
	if s.sleep > 0 {
		time.Sleep(s.sleep)
	}
}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		scheduler := loop.NewScheduler()

		var order []string
		scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "first") }))
		scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "second") }))

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
	})

	t.Run("custom state persistence", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &CountingSystem{}
		scheduler.Register(counter)

		scheduler.Once(0.5)
		scheduler.Once(0.25)

		assert.Equal(t, 2, counter.ExecuteCount)
		assert.Equal(t, 0.75, counter.TotalTime)
		assert.Equal(t, uint64(2), counter.LastTick)
	})

	t.Run("time scale", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &CountingSystem{}
		scheduler.Register(counter)

		scheduler.SetTimeScale(0.1)
		scheduler.SetTimeScale(0)
		scheduler.Once(1.0)

		assert.Equal(t, 0.1, scheduler.TimeScale())
		assert.InDelta(t, 0.1, counter.TotalTime, 1e-12)
	})

	t.Run("deferred commands run after all systems", func(t *testing.T) {
		scheduler := loop.NewScheduler()

		var order []string
		scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
			frame.Commands.Defer(func() { order = append(order, "deferred") })
			order = append(order, "first")
		}))
		scheduler.Register(loop.SystemFunc(func(*loop.UpdateFrame) { order = append(order, "second") }))

		scheduler.Once(1.0)

		assert.Equal(t, []string{"first", "second", "deferred"}, order)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		counter := &CountingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.Positive(t, counter.ExecuteCount)
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler()

	stats := scheduler.GetStats()
	assert.Equal(t, 0, stats.SystemCount)
	assert.Equal(t, int64(0), stats.TotalExecutions)

	fast := &CountingSystem{}
	slow := &CountingSystem{sleep: 2 * time.Millisecond}
	scheduler.Register(fast)
	scheduler.Register(slow)

	stats = scheduler.GetStats()
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	for range 3 {
		scheduler.Once(0.016)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, uint64(3), stats.Ticks)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, "CountingSystem", stats.Systems[0].Name)

	s := stats.Systems[1]
	assert.Equal(t, int64(3), s.ExecutionCount)
	assert.GreaterOrEqual(t, s.MinDuration, 2*time.Millisecond)
	assert.GreaterOrEqual(t, s.MaxDuration, s.MinDuration)
	assert.GreaterOrEqual(t, s.AvgDuration, s.MinDuration)
	assert.LessOrEqual(t, s.AvgDuration, s.MaxDuration)
}
