package main

import (
	"fmt"
	"os"
	"runtime"

	"voxmesh/internal/config"
	"voxmesh/internal/game"
	"voxmesh/internal/input"
	"voxmesh/internal/logger"
	"voxmesh/internal/render"
	"voxmesh/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// GLFW and GL calls must stay on the main thread
func init() { runtime.LockOSThread() }

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "voxview: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "voxview: logger: %v\n", err)
		os.Exit(1)
	}
	config.Apply(cfg)

	if err := run(cfg); err != nil {
		logger.Named("voxview").Error("viewer failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	defer window.Destroy()

	r, err := render.NewRenderer()
	if err != nil {
		return err
	}

	store := world.NewChunkStore()
	// Only the origin column loads up front; the rest streams in
	streamer, err := game.LoadWorld(store, cfg.World, 1, logger.Log)
	if err != nil {
		r.Dispose()
		return err
	}

	session := game.NewSession(store, render.GLDevice{}, cfg.Meshing, logger.Log)
	app := game.NewApp(window, input.NewInputManager(), session, r, streamer, cfg.Window.Title, logger.Log)
	defer app.Close()

	game.SetupInputHandlers(app)
	logger.Named("voxview").Info("viewer started",
		zap.String("fixture", cfg.World.Fixture),
		zap.Int("greedy_threshold", cfg.Meshing.GreedyThreshold),
		zap.Bool("greedy", cfg.Meshing.GreedyEnabled))
	app.Run()
	return nil
}
