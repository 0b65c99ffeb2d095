package game

import (
	"time"

	"voxmesh/internal/config"
)

// backgroundFPS caps the frame rate while the window is unfocused
const backgroundFPS = 30

// spinWindow is how close to the deadline Wait stops sleeping and spins
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces frames to config.GetFPSLimit with a sleep-then-spin wait
type FPSLimiter struct {
	next time.Time
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due. A limit of 0 disables pacing
// unless the window is in the background.
func (f *FPSLimiter) Wait(background bool) {
	limit := config.GetFPSLimit()
	if background && (limit <= 0 || limit > backgroundFPS) {
		limit = backgroundFPS
	}
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of rushing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
