package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/mergeball/audio"
	"github.com/plus3/mergeball/config"
	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/geom"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total wall time the test should run for.")
	configPath := flag.String("config", "", "Optional YAML config file.")
	dropEvery := flag.Int("drop-every", 20, "Release the pointer above the box every N ticks.")
	blastEvery := flag.Int("blast-every", 0, "Release the pointer inside the box every N ticks (0 disables).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting mergeball stress test...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	cues := newCueCounter()
	throttle := audio.NewThrottle(cues, cfg.Sound.Cooldown)
	g := game.New(cfg, game.Options{Audio: throttle})
	g.Start()

	report := &Report{
		Duration:       *duration,
		Seed:           cfg.Seed,
		DropEvery:      *dropEvery,
		BlastEvery:     *blastEvery,
		TickRate:       cfg.Timing.TickRate,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s (seed %d)...\n", *duration, cfg.Seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	rng := rand.New(rand.NewPCG(cfg.Seed, 1))
	bounds := g.Bounds()
	dt := 1 / float64(cfg.Timing.TickRate)
	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			x := bounds.Left + rng.Float64()*bounds.Width()
			g.SetPointer(geom.V(x, bounds.Ceiling))
			if *dropEvery > 0 && totalUpdates%int64(*dropEvery) == 0 {
				g.ReleasePointer(geom.V(x, bounds.Ceiling))
			}
			if *blastEvery > 0 && totalUpdates%int64(*blastEvery) == 0 {
				g.ReleasePointer(bounds.Center())
			}

			updateStart := time.Now()
			g.Tick(dt)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.SimulatedTime = time.Duration(float64(totalUpdates) * dt * float64(time.Second))
	report.UpdateTime.Finalize()
	report.Game = g.Stats()
	report.Scheduler = g.Scheduler().GetStats()
	report.Cues = cues.Counts()
	report.ThrottledCues = throttle.Dropped()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
