package config

import "sync"

// Settings holds values the viewer changes while running
type Settings struct {
	mu           sync.RWMutex
	fpsLimit     int
	streamRadius int
}

var globalSettings = &Settings{
	fpsLimit:     0,
	streamRadius: 4,
}

// Apply seeds the runtime settings from a loaded config
func Apply(cfg *Config) {
	SetFPSLimit(cfg.Window.FPSLimit)
	SetStreamRadius(cfg.World.Radius)
}

// GetFPSLimit returns the frame cap; 0 means uncapped
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.fpsLimit = max(limit, 0)
}

// GetStreamRadius returns how many chunk columns are kept loaded around the camera
func GetStreamRadius() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.streamRadius
}

// SetStreamRadius sets the stream radius
func SetStreamRadius(radius int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	// Clamp to reasonable values
	radius = max(radius, 0)
	radius = min(radius, 16)

	globalSettings.streamRadius = radius
}
