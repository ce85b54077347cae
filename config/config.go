// Package config loads game settings from defaults, an optional YAML file,
// an optional .env file and MERGEBALL_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

// Replacement spawn policies.
const (
	// PolicyIndex gives the replacement ball level nextIndex+1.
	PolicyIndex = "index"
	// PolicyDrop uses the same level policy as a normal drop.
	PolicyDrop = "drop"
)

type Config struct {
	Box     Box     `yaml:"box"`
	Physics Physics `yaml:"physics"`
	Sound   Sound   `yaml:"sound"`
	Timing  Timing  `yaml:"timing"`
	Spawn   Spawn   `yaml:"spawn"`
	Blast   Blast   `yaml:"blast"`
	Window  Window  `yaml:"window"`
	Seed    uint64  `yaml:"seed"`
}

// Box is the play area in world units. Ceiling is where the held ball hangs.
type Box struct {
	Size      float64 `yaml:"size"`
	Left      float64 `yaml:"left"`
	Right     float64 `yaml:"right"`
	Bottom    float64 `yaml:"bottom"`
	Top       float64 `yaml:"top"`
	Ceiling   float64 `yaml:"ceiling"`
	EdgeInset float64 `yaml:"edge_inset"`
}

type Physics struct {
	Gravity     float64 `yaml:"gravity"`
	Restitution float64 `yaml:"restitution"`
	Damping     float64 `yaml:"damping"`
	Friction    float64 `yaml:"friction"`
	Substeps    int     `yaml:"substeps"`
}

// Sound holds the impact speed thresholds and playback settings.
type Sound struct {
	Fast     float64       `yaml:"fast"`
	Medium   float64       `yaml:"medium"`
	Cooldown time.Duration `yaml:"cooldown"`
	Volume   float64       `yaml:"volume"`
	Mute     bool          `yaml:"mute"`
}

type Timing struct {
	SpawnDelay time.Duration `yaml:"spawn_delay"`
	SpawnGrow  time.Duration `yaml:"spawn_grow"`
	MergeMove  time.Duration `yaml:"merge_move"`
	MergeGrow  time.Duration `yaml:"merge_grow"`
	TickRate   int           `yaml:"tick_rate"`
}

type Spawn struct {
	ReplacementPolicy string  `yaml:"replacement_policy"`
	GrowFrom          float64 `yaml:"grow_from"`
}

type Blast struct {
	Radius   float64 `yaml:"radius"`
	Force    float64 `yaml:"force"`
	MaxSpeed float64 `yaml:"max_speed"`
}

type Window struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	Title         string  `yaml:"title"`
	Debug         bool    `yaml:"debug"`
}

func Default() *Config {
	return &Config{
		Box: Box{
			Size:      1,
			Left:      -1.5,
			Right:     1.5,
			Bottom:    -2.5,
			Top:       1.8,
			Ceiling:   2.2,
			EdgeInset: 0.01,
		},
		Physics: Physics{
			Gravity:     -9.81,
			Restitution: 0.2,
			Damping:     0.05,
			Friction:    1.5,
			Substeps:    4,
		},
		Sound: Sound{
			Fast:     1.5,
			Medium:   0.7,
			Cooldown: 100 * time.Millisecond,
			Volume:   0.6,
		},
		Timing: Timing{
			SpawnDelay: 300 * time.Millisecond,
			SpawnGrow:  200 * time.Millisecond,
			MergeMove:  100 * time.Millisecond,
			MergeGrow:  200 * time.Millisecond,
			TickRate:   60,
		},
		Spawn: Spawn{
			ReplacementPolicy: PolicyIndex,
			GrowFrom:          0.5,
		},
		Blast: Blast{
			Radius: 1.2,
			Force:  4,
		},
		Window: Window{
			Width:         540,
			Height:        800,
			PixelsPerUnit: 160,
			Title:         "mergeball",
		},
	}
}

// Load builds a Config. An empty path falls back to MERGEBALL_CONFIG; a
// missing file is not an error.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("MERGEBALL_CONFIG")
	}

	cfg := Default()
	if path != "" {
		if err := cfg.readYAML(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readYAML(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Seed = getEnvUint("MERGEBALL_SEED", c.Seed)
	c.Sound.Mute = getEnvBool("MERGEBALL_MUTE", c.Sound.Mute)
	c.Window.Debug = getEnvBool("MERGEBALL_DEBUG", c.Window.Debug)
}

// Validate reports every problem at once, each wrapping ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Box.Size <= 0 {
		invalid("box.size must be positive, got %v", c.Box.Size)
	}
	if c.Box.Right <= c.Box.Left {
		invalid("box.right (%v) must exceed box.left (%v)", c.Box.Right, c.Box.Left)
	}
	if c.Box.Top <= c.Box.Bottom {
		invalid("box.top (%v) must exceed box.bottom (%v)", c.Box.Top, c.Box.Bottom)
	}
	if c.Box.Ceiling < c.Box.Top {
		invalid("box.ceiling (%v) must not be below box.top (%v)", c.Box.Ceiling, c.Box.Top)
	}
	if c.Box.EdgeInset < 0 {
		invalid("box.edge_inset must not be negative")
	}
	if c.Physics.Substeps < 1 {
		invalid("physics.substeps must be at least 1, got %d", c.Physics.Substeps)
	}
	if c.Physics.Restitution < 0 || c.Physics.Restitution > 1 {
		invalid("physics.restitution must be in [0, 1], got %v", c.Physics.Restitution)
	}
	if c.Sound.Medium < 0 || c.Sound.Fast < c.Sound.Medium {
		invalid("sound thresholds need 0 <= medium <= fast, got medium=%v fast=%v", c.Sound.Medium, c.Sound.Fast)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		invalid("sound.volume must be in [0, 1], got %v", c.Sound.Volume)
	}
	if c.Timing.SpawnDelay < 0 || c.Timing.SpawnGrow < 0 || c.Timing.MergeMove < 0 || c.Timing.MergeGrow < 0 {
		invalid("timing durations must not be negative")
	}
	if c.Timing.TickRate <= 0 {
		invalid("timing.tick_rate must be positive, got %d", c.Timing.TickRate)
	}
	if c.Spawn.ReplacementPolicy != PolicyIndex && c.Spawn.ReplacementPolicy != PolicyDrop {
		invalid("spawn.replacement_policy must be %q or %q, got %q", PolicyIndex, PolicyDrop, c.Spawn.ReplacementPolicy)
	}
	if c.Spawn.GrowFrom <= 0 || c.Spawn.GrowFrom > 1 {
		invalid("spawn.grow_from must be in (0, 1], got %v", c.Spawn.GrowFrom)
	}
	if c.Blast.Radius < 0 || c.Blast.Force < 0 || c.Blast.MaxSpeed < 0 {
		invalid("blast settings must not be negative")
	}
	if c.Window.PixelsPerUnit <= 0 {
		invalid("window.pixels_per_unit must be positive")
	}

	return errors.Join(errs...)
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return defaultValue
}
