package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/mergeball/audio"
	"github.com/plus3/mergeball/config"
	"github.com/plus3/mergeball/game"
	"github.com/plus3/mergeball/geom"
	"github.com/plus3/mergeball/level"
)

// keyStep is how far the arrow keys move the pointer, in world units.
const keyStep = 0.1

var timeScaleRunes = map[rune]float64{'1': 1, '2': 0.1, '3': 0.01}

type Terminal struct {
	screen tcell.Screen
	game   *game.Game
	grid   Grid
	dt     float64

	pointer geom.Vec2
	pressed bool
}

// NewTerminal initializes screen and binds it to g.
func NewTerminal(screen tcell.Screen, g *game.Game, dt float64) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	t := &Terminal{
		screen:  screen,
		game:    g,
		dt:      dt,
		pointer: g.Slot().LastPosition(),
	}
	t.resize()
	return t, nil
}

func (t *Terminal) resize() {
	cols, rows := t.screen.Size()
	// last row is the status line
	t.grid = NewGrid(cols, rows-1, t.game.Bounds())
}

func (t *Terminal) handleInput(ev tcell.Event) bool {
	bounds := t.game.Bounds()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			t.pointer.X = max(bounds.Left, t.pointer.X-keyStep)
		case tcell.KeyRight:
			t.pointer.X = min(bounds.Right, t.pointer.X+keyStep)
		case tcell.KeyEnter:
			t.game.ReleasePointer(geom.V(t.pointer.X, bounds.Ceiling))
		case tcell.KeyRune:
			switch r := ev.Rune(); r {
			case 'q':
				return false
			case ' ':
				t.game.ReleasePointer(geom.V(t.pointer.X, bounds.Ceiling))
			case 'b':
				t.game.ReleasePointer(geom.V(t.pointer.X, bounds.Center().Y))
			default:
				if scale, ok := timeScaleRunes[r]; ok {
					t.game.Scheduler().SetTimeScale(scale)
				}
			}
		}
		t.game.SetPointer(t.pointer)

	case *tcell.EventMouse:
		col, row := ev.Position()
		t.pointer = t.grid.ToWorld(col, row)
		down := ev.Buttons()&tcell.Button1 != 0
		if t.pressed && !down {
			t.game.ReleasePointer(t.pointer)
		} else {
			t.game.SetPointer(t.pointer)
		}
		t.pressed = down

	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) draw() {
	t.screen.Clear()

	bounds := t.game.Bounds()
	wall := tcell.StyleDefault.Foreground(tcell.ColorOlive)
	left, top := t.grid.ToCell(geom.V(bounds.Left, bounds.Top))
	right, bottom := t.grid.ToCell(geom.V(bounds.Right, bounds.Bottom))
	for row := top; row <= bottom; row++ {
		t.screen.SetContent(left-1, row, '│', nil, wall)
		t.screen.SetContent(right+1, row, '│', nil, wall)
	}
	for col := left - 1; col <= right+1; col++ {
		t.screen.SetContent(col, bottom+1, '─', nil, wall)
	}

	if held := t.game.Slot().Held(); held != nil {
		col, row := t.grid.ToCell(held.Position())
		guide := tcell.StyleDefault.Foreground(tcell.ColorGray)
		for r := row + 1; r <= bottom; r++ {
			t.screen.SetContent(col, r, '┊', nil, guide)
		}
	}

	for b := range t.game.Registry().All() {
		c := b.Asset.Color
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		ch := '█'
		if b.Suppressed() {
			ch = '▒'
		}
		t.grid.Disc(b.Position(), b.Size/2, func(col, row int) {
			t.screen.SetContent(col, row, ch, nil, style)
		})
	}

	s := t.game.Stats()
	status := fmt.Sprintf(" merges %d  best %d/%d  balls %d  speed %gx  ←/→ move  space drop  b blast  q quit",
		s.Merges, s.MaxLevel, level.Max, s.Live, t.game.Scheduler().TimeScale())
	for i, r := range []rune(status) {
		t.screen.SetContent(i, t.grid.Rows, r, nil, tcell.StyleDefault.Reverse(true))
	}

	t.screen.Show()
}

func (t *Terminal) run() {
	ticker := time.NewTicker(time.Duration(t.dt * float64(time.Second)))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			t.game.Tick(t.dt)
			t.draw()
		}
	}
}

func main() {
	configPath := flag.String("config", "", "Optional YAML config file.")
	logPath := flag.String("log", "mergeball-term.log", "Log file; the terminal is busy drawing.")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var player audio.Player = audio.Nop
	if !cfg.Sound.Mute {
		synth := audio.NewSynth(cfg.Sound.Volume)
		if err := synth.Init(); err != nil {
			// Non-fatal, the game runs silent
			log.Printf("Audio disabled: %v", err)
		} else {
			defer synth.Close()
			player = audio.NewThrottle(synth, cfg.Sound.Cooldown)
		}
	}

	g := game.New(cfg, game.Options{Audio: player})
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	term, err := NewTerminal(screen, g, 1/float64(cfg.Timing.TickRate))
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	defer term.screen.Fini()

	g.Start()
	term.run()

	s := g.Stats()
	log.Printf("Finished: merges=%d dropped=%d max level=%d", s.Merges, s.Dropped, s.MaxLevel)
}
