package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/mergeball/audio"
	"github.com/plus3/mergeball/config"
	"github.com/plus3/mergeball/debugui"
	debugui_ebiten "github.com/plus3/mergeball/debugui/ebiten"
	"github.com/plus3/mergeball/game"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var player audio.Player = audio.Nop
	if !cfg.Sound.Mute {
		synth := audio.NewSynth(cfg.Sound.Volume)
		if err := synth.Init(); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			defer synth.Close()
			player = audio.NewThrottle(synth, cfg.Sound.Cooldown)
		}
	}

	g := game.New(cfg, game.Options{Audio: player})

	app := &App{
		game:     g,
		viewport: NewViewport(cfg.Window, g.Bounds()),
		dt:       1 / float64(cfg.Timing.TickRate),
	}

	if cfg.Window.Debug {
		app.imgui = debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
		app.ui = debugui.Attach(g)
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	ebiten.SetTPS(cfg.Timing.TickRate)

	g.Start()
	log.Printf("Started: seed=%d policy=%s debug=%v", cfg.Seed, cfg.Spawn.ReplacementPolicy, cfg.Window.Debug)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}

	s := g.Stats()
	log.Printf("Finished: merges=%d dropped=%d max level=%d", s.Merges, s.Dropped, s.MaxLevel)
}
