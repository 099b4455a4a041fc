package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Presentation sinks accepted by Config.Sink
const (
	SinkTerminal = "terminal"
	SinkPlain    = "plain"
	SinkWindow   = "window"
)

// Config holds the configuration for the game
type Config struct {
	InputPath           string        `json:"input_path"`
	OutputPath          string        `json:"output_path"`
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	StopWhenStagnant    bool          `json:"stop_when_stagnant"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	Interactive         bool          `json:"interactive"`
	Sink                string        `json:"sink"`
	Scale               int           `json:"scale"`
	TPS                 int           `json:"tps"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		StopWhenStagnant:    false,
		StagnationThreshold: 5,
		UseParallel:         false,
		UseMemoryPool:       true,
		RandomDensity:       0.15,
		Seed:                42,
		Interactive:         false,
		Sink:                SinkTerminal,
		Scale:               8,
		TPS:                 10,
	}
}

// LoadConfig loads configuration from a JSON file on top of base. Fields
// missing from the file keep their value from base.
func LoadConfig(filename string, base Config) (Config, error) {
	config := base

	data, err := os.ReadFile(filename)
	if err != nil {
		return base, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return base, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.InputPath, "input", c.InputPath, "grid file to load (empty seeds a random grid)")
	fs.StringVar(&c.OutputPath, "output", c.OutputPath, "file to write the final generation to")
	fs.IntVar(&c.Width, "width", c.Width, "width of a seeded grid")
	fs.IntVar(&c.Height, "height", c.Height, "height of a seeded grid")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "generations to run (0 runs until interrupted)")
	fs.BoolVar(&c.StopWhenStagnant, "stop-when-stagnant", c.StopWhenStagnant, "stop once the grid stops changing")
	fs.IntVar(&c.StagnationThreshold, "stagnation-threshold", c.StagnationThreshold, "stagnant generations before stopping")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "scan rows concurrently")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "reuse change buffers between generations")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "probability of life in a seeded grid")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for a random grid")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "wait for enter before each generation")
	fs.StringVar(&c.Sink, "sink", c.Sink, "presentation sink: terminal, plain or window")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window generations per second")
}

// Validate checks the configuration for values the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.InputPath == "" && (c.Width <= 0 || c.Height <= 0):
		return errors.Errorf("[Validate] width and height must be positive, got %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random density must be within [0, 1], got %v", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] frame rate must not be negative, got %v", c.FrameRate)
	case c.StopWhenStagnant && c.StagnationThreshold <= 0:
		return errors.Errorf("[Validate] stagnation threshold must be positive, got %d", c.StagnationThreshold)
	case c.Scale <= 0 || c.TPS <= 0:
		return errors.Errorf("[Validate] scale and tps must be positive, got %d and %d", c.Scale, c.TPS)
	}
	switch c.Sink {
	case SinkTerminal, SinkPlain, SinkWindow:
		return nil
	default:
		return errors.Errorf("[Validate] unknown sink %q", c.Sink)
	}
}
