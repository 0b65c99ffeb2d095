package game

import (
	"fmt"
	"time"

	"voxmesh/internal/config"
	standardInput "voxmesh/internal/input"
	"voxmesh/internal/logger"
	"voxmesh/internal/profiling"
	"voxmesh/internal/render"
	"voxmesh/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// streamDrainPerFrame bounds how many generated chunks join the store per frame
const streamDrainPerFrame = 4

// App is the interactive viewer: it drives a Session once per frame and
// draws its meshes around an orbit camera.
type App struct {
	window       *glfw.Window
	inputManager *standardInput.InputManager
	session      *Session
	renderer     *render.Renderer
	camera       *Camera
	// streamer is nil for fixed fixtures and once terrain has loaded
	streamer *world.Streamer
	log      *zap.Logger

	fpsLimiter *FPSLimiter
	lastTime   time.Time
	focused    bool

	title         string
	showStats     bool
	frames        int
	lastStatsTime time.Time
}

func NewApp(window *glfw.Window, im *standardInput.InputManager, session *Session, r *render.Renderer, streamer *world.Streamer, title string, log *zap.Logger) *App {
	width, height := window.GetFramebufferSize()
	r.Resize(width, height)
	camera := NewCamera(width, height)
	camera.Target = worldCenter(session.Store.Coords())

	return &App{
		window:        window,
		inputManager:  im,
		session:       session,
		renderer:      r,
		camera:        camera,
		streamer:      streamer,
		log:           logger.Or(log).Named("app"),
		fpsLimiter:    NewFPSLimiter(),
		lastTime:      time.Now(),
		focused:       true,
		title:         title,
		lastStatsTime: time.Now(),
	}
}

// worldCenter returns the middle of the bounding box of the given chunks
func worldCenter(coords []world.ChunkCoord) mgl32.Vec3 {
	if len(coords) == 0 {
		return mgl32.Vec3{world.ChunkSize / 2, world.ChunkSize / 2, world.ChunkSize / 2}
	}
	lo, hi := coords[0], coords[0]
	for _, c := range coords[1:] {
		lo = world.ChunkCoord{X: min(lo.X, c.X), Y: min(lo.Y, c.Y), Z: min(lo.Z, c.Z)}
		hi = world.ChunkCoord{X: max(hi.X, c.X), Y: max(hi.Y, c.Y), Z: max(hi.Z, c.Z)}
	}
	mid := func(a, b int) float32 {
		return float32(a+b+1) * world.ChunkSize / 2
	}
	return mgl32.Vec3{mid(lo.X, hi.X), mid(lo.Y, hi.Y), mid(lo.Z, hi.Z)}
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()
	a.handleActions(dt)
	a.stream()

	func() {
		defer profiling.Track("session.Advance")()
		a.session.Advance()
	}()
	a.render()
	a.window.SwapBuffers()

	if took := time.Since(startTick); took > 16*time.Millisecond {
		a.log.Debug("slow frame", zap.Duration("took", took), zap.String("top", profiling.TopN(5)))
	}
	a.updateStats()

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait(!a.focused)
}

// stream feeds generated terrain into the store a few chunks per frame until
// the configured radius around the origin is loaded, then stops the streamer.
func (a *App) stream() {
	if a.streamer == nil {
		return
	}
	defer profiling.Track("world.stream")()
	a.streamer.Drain(streamDrainPerFrame)
	if a.streamer.Request(world.ChunkCoord{}, config.GetStreamRadius()) == 0 && a.streamer.Pending() == 0 {
		a.streamer.Close()
		a.streamer = nil
		a.log.Info("terrain loaded", zap.Int("chunks", a.session.Store.Len()))
	}
}

func (a *App) render() {
	view, proj := a.camera.GetViewMatrix(), a.camera.GetProjectionMatrix()
	a.renderer.BeginFrame(view, proj)
	a.session.Render(a.renderer, render.NewFrustum(proj.Mul4(view)))
}

func (a *App) updateStats() {
	a.frames++
	elapsed := time.Since(a.lastStatsTime)
	if elapsed < time.Second {
		return
	}
	fps := float64(a.frames) / elapsed.Seconds()
	a.frames = 0
	a.lastStatsTime = time.Now()

	if !a.showStats {
		a.window.SetTitle(a.title)
		return
	}
	remesh, greedy := a.session.Pending()
	st := a.session.Stats
	a.window.SetTitle(fmt.Sprintf("%s | %.0f fps | %d chunks | remesh %d greedy %d | %d draws",
		a.title, fps, a.session.Store.Len(), remesh, greedy, a.renderer.DrawCalls))
	a.log.Info("stats",
		zap.Float64("fps", fps),
		zap.Int("chunks", a.session.Store.Len()),
		zap.Int("fast_meshes", st.FastMeshes),
		zap.Int("greedy_applied", st.GreedyApplied),
		zap.Int("greedy_stale", st.GreedyStale),
		zap.String("profile", profiling.Format(profiling.Cumulative(), 6)))
}

// RefreshRender repaints during window resizes
func (a *App) RefreshRender() {
	a.render()
	a.window.SwapBuffers()
}

// Close stops background work and frees GPU resources
func (a *App) Close() {
	if a.streamer != nil {
		a.streamer.Close()
	}
	a.session.Close()
	a.renderer.Dispose()
}
