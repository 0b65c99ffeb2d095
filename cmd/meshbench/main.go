// Command meshbench loads a world headlessly and runs the frame loop until
// every chunk has its final mesh, then reports how long that took.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"voxmesh/internal/config"
	"voxmesh/internal/game"
	"voxmesh/internal/logger"
	"voxmesh/internal/profiling"
	"voxmesh/internal/render"
	"voxmesh/internal/world"

	"go.uber.org/zap"
)

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "meshbench: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "meshbench: logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger.Named("meshbench")); err != nil {
		logger.Named("meshbench").Error("benchmark failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	store := world.NewChunkStore()
	streamer, err := game.LoadWorld(store, cfg.World, cfg.World.Radius, logger.Log)
	if err != nil {
		return err
	}
	if streamer != nil {
		// Everything was loaded synchronously
		streamer.Close()
	}

	dev := render.NewMemoryDevice()
	session := game.NewSession(store, dev, cfg.Meshing, logger.Log)
	defer session.Close()

	profiling.Reset()
	start := time.Now()
	var firstFrame time.Duration
	frames := 0
	for !session.Idle() {
		frameStart := time.Now()
		func() {
			defer profiling.Track("session.Advance")()
			session.Advance()
		}()
		if frames == 0 {
			firstFrame = time.Since(frameStart)
		}
		frames++
		// Leave the greedy worker a core when GOMAXPROCS is small
		runtime.Gosched()
	}

	st := session.Stats
	log.Info("meshing finished",
		zap.Int("chunks", store.Len()),
		zap.Int("frames", frames),
		zap.Duration("total", time.Since(start)),
		zap.Duration("first_frame", firstFrame),
		zap.Int("fast_meshes", st.FastMeshes),
		zap.Int("greedy_applied", st.GreedyApplied),
		zap.Int("greedy_stale", st.GreedyStale),
		zap.Bool("greedy_closed", session.GreedyClosed()),
		zap.Int("buffers", dev.Live()),
		zap.Int("buffer_bytes", dev.Bytes()))
	log.Info("profile", zap.String("top", profiling.Format(profiling.Cumulative(), 8)))
	return nil
}
