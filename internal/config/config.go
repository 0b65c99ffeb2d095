// Package config handles loading and validating voxmesh settings.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds all settings.
type Config struct {
	Meshing MeshingConfig `yaml:"meshing"`
	World   WorldConfig   `yaml:"world"`
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshingConfig controls the fast/greedy meshing pipeline.
type MeshingConfig struct {
	// GreedyThreshold is the fast mesh vertex count below which a chunk is
	// queued for background greedy meshing. Larger meshes are kept as is.
	GreedyThreshold int `yaml:"greedy_threshold"`
	// FastWorkers bounds the parallel fast-mesh phase; 0 means one per CPU.
	FastWorkers   int  `yaml:"fast_workers"`
	GreedyEnabled bool `yaml:"greedy_enabled"`
}

// WorldConfig selects what gets loaded at startup.
type WorldConfig struct {
	Fixture string `yaml:"fixture"` // terrain, base, pool, random
	Radius  int    `yaml:"radius"`  // chunk columns around the origin
	Layers  int    `yaml:"layers"`  // vertical chunks for fixed fixtures
	Seed    int64  `yaml:"seed"`
}

// WindowConfig holds display settings for the viewer.
type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	VSync    bool   `yaml:"vsync"`
	FPSLimit int    `yaml:"fps_limit"`
	Title    string `yaml:"title"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Fixtures lists the accepted world.fixture values
var Fixtures = []string{"terrain", "base", "pool", "random"}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Meshing: MeshingConfig{
			GreedyThreshold: 15000,
			FastWorkers:     0,
			GreedyEnabled:   true,
		},
		World: WorldConfig{
			Fixture: "terrain",
			Radius:  4,
			Layers:  1,
			Seed:    1337,
		},
		Window: WindowConfig{
			Width:    1280,
			Height:   720,
			VSync:    true,
			FPSLimit: 0,
			Title:    "voxmesh",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Meshing.GreedyThreshold < 0 {
		errs = append(errs, fmt.Errorf("meshing.greedy_threshold must be >= 0, got %d", c.Meshing.GreedyThreshold))
	}
	if c.Meshing.FastWorkers < 0 {
		errs = append(errs, fmt.Errorf("meshing.fast_workers must be >= 0, got %d", c.Meshing.FastWorkers))
	}
	if !validFixture(c.World.Fixture) {
		errs = append(errs, fmt.Errorf("world.fixture must be one of %s, got %q", strings.Join(Fixtures, ", "), c.World.Fixture))
	}
	if c.World.Radius < 0 {
		errs = append(errs, fmt.Errorf("world.radius must be >= 0, got %d", c.World.Radius))
	}
	if c.World.Layers < 1 {
		errs = append(errs, fmt.Errorf("world.layers must be >= 1, got %d", c.World.Layers))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("window.fps_limit must be >= 0, got %d", c.Window.FPSLimit))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not a known level", c.Logging.Level))
	}
	return errors.Join(errs...)
}

func validFixture(name string) bool {
	for _, f := range Fixtures {
		if f == name {
			return true
		}
	}
	return false
}
