package game

import (
	"math"

	standardInput "voxmesh/internal/input"
	"voxmesh/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

const (
	orbitSpeed      = 90   // degrees per second
	dragSensitivity = 0.25 // degrees per pixel
	zoomSpeed       = 2.0  // distance factor per second
	scrollZoomStep  = 0.9
)

func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		im.HandleScroll(yoff)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		app.renderer.Resize(fbWidth, fbHeight)
		app.camera.SetViewport(fbWidth, fbHeight)
		// Do not render here; the refresh callback repaints while resizing
	})
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		app.focused = focused
	})
	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}

func (a *App) handleActions(dt float64) {
	im := a.inputManager
	step := float32(orbitSpeed * dt)

	if im.JustPressed(standardInput.ActionQuit) {
		a.window.SetShouldClose(true)
	}

	var dYaw, dPitch float32
	if im.IsActive(standardInput.ActionOrbitLeft) {
		dYaw -= step
	}
	if im.IsActive(standardInput.ActionOrbitRight) {
		dYaw += step
	}
	if im.IsActive(standardInput.ActionOrbitUp) {
		dPitch += step
	}
	if im.IsActive(standardInput.ActionOrbitDown) {
		dPitch -= step
	}
	dx, dy := im.Drag()
	dYaw += float32(dx * dragSensitivity)
	dPitch += float32(dy * dragSensitivity)
	if dYaw != 0 || dPitch != 0 {
		a.camera.Orbit(dYaw, dPitch)
	}

	zoom := math.Pow(scrollZoomStep, im.Scroll())
	if im.IsActive(standardInput.ActionZoomIn) {
		zoom /= math.Pow(zoomSpeed, dt)
	}
	if im.IsActive(standardInput.ActionZoomOut) {
		zoom *= math.Pow(zoomSpeed, dt)
	}
	if zoom != 1 {
		a.camera.Zoom(float32(zoom))
	}

	if im.JustPressed(standardInput.ActionToggleWireframe) {
		a.renderer.Wireframe = !a.renderer.Wireframe
	}
	if im.JustPressed(standardInput.ActionToggleStats) {
		a.showStats = !a.showStats
	}
	if im.JustPressed(standardInput.ActionInsertChunk) {
		a.insertChunk()
	}
	if im.JustPressed(standardInput.ActionRemoveChunk) {
		a.removeChunk()
	}
	if im.JustPressed(standardInput.ActionEditBlock) || im.JustPressed(standardInput.ActionMouseRight) {
		a.editBlock(im.IsActive(standardInput.ActionModShift))
	}
}

// insertChunk adds a pool chunk just past the east edge of the loaded area,
// in the row of the camera target
func (a *App) insertChunk() {
	target, _ := world.ChunkCoordFromBlock(int(a.camera.Target.X()), 0, int(a.camera.Target.Z()))
	at := world.ChunkCoord{X: target.X, Z: target.Z}
	for a.session.Store.HasChunk(at) {
		at.X++
	}
	a.session.InsertChunk(at, world.PoolChunk())
	a.log.Info("chunk inserted", zap.Stringer("chunk", at))
}

func (a *App) removeChunk() {
	hit, ok := a.pick()
	if !ok {
		return
	}
	at, _ := world.ChunkCoordFromBlock(hit.Block[0], hit.Block[1], hit.Block[2])
	if a.session.RemoveChunk(at) {
		a.log.Info("chunk removed", zap.Stringer("chunk", at))
	}
}

// editBlock breaks the block under the view ray, or places stone in front of
// it when place is set
func (a *App) editBlock(place bool) {
	hit, ok := a.pick()
	if !ok {
		return
	}
	p, b := hit.Block, world.BlockTypeAir
	if place {
		p, b = hit.Before, world.BlockTypeStone
	}
	if a.session.SetBlock(p[0], p[1], p[2], b) {
		a.log.Debug("block edited", zap.Ints("pos", p[:]), zap.Stringer("block", b))
	}
}

func (a *App) pick() (Hit, bool) {
	return Raycast(a.camera.Eye(), a.camera.Forward(), 2*a.camera.Distance, a.session.Store)
}
