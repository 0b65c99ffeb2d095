package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagThreshold = flag.Int("threshold", -1, "Vertex count at which chunks get a greedy mesh")
	flagNoGreedy  = flag.Bool("no-greedy", false, "Disable background greedy meshing")
	flagWorkers   = flag.Int("workers", -1, "Fast mesh workers (0 = one per CPU)")
	flagFixture   = flag.String("fixture", "", "World fixture: terrain, base, pool or random")
	flagRadius    = flag.Int("radius", -1, "Chunk columns to load around the origin")
	flagSeed      = flag.Int64("seed", 0, "World seed (0 keeps the configured one)")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file as well")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagThreshold >= 0 {
		cfg.Meshing.GreedyThreshold = *flagThreshold
	}
	if *flagNoGreedy {
		cfg.Meshing.GreedyEnabled = false
	}
	if *flagWorkers >= 0 {
		cfg.Meshing.FastWorkers = *flagWorkers
	}
	if *flagFixture != "" {
		cfg.World.Fixture = *flagFixture
	}
	if *flagRadius >= 0 {
		cfg.World.Radius = *flagRadius
	}
	if *flagSeed != 0 {
		cfg.World.Seed = *flagSeed
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
