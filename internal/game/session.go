package game

import (
	"runtime"
	"time"

	"voxmesh/internal/config"
	"voxmesh/internal/logger"
	"voxmesh/internal/meshing"
	"voxmesh/internal/profiling"
	"voxmesh/internal/render"
	"voxmesh/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Drawer draws one cached chunk mesh
type Drawer interface {
	Draw(m *render.CachedMesh)
}

// Stats counts meshing work since the session started
type Stats struct {
	Frames        int
	FastMeshes    int
	GreedyApplied int
	GreedyStale   int
	Submitted     int
	// LastRemesh is how many chunks the most recent fast pass covered
	LastRemesh int
}

// Session owns the chunk store, the GPU mesh cache and the background greedy
// pipeline, and moves chunks through Remesh -> Greedy -> Cached one frame at
// a time. All methods must be called from the same goroutine.
type Session struct {
	Store *world.ChunkStore
	Stats Stats

	device   render.Device
	meshes   map[world.ChunkCoord]*render.CachedMesh
	pipeline *meshing.Pipeline
	cfg      config.MeshingConfig
	log      *zap.Logger

	// queue holds Greedy chunks in the order they became Greedy
	queue  []world.ChunkCoord
	queued map[world.ChunkCoord]bool
}

// NewSession creates a session over store. When greedy meshing is enabled
// the background worker starts immediately.
func NewSession(store *world.ChunkStore, dev render.Device, cfg config.MeshingConfig, log *zap.Logger) *Session {
	return newSession(store, dev, cfg, log, nil)
}

func newSession(store *world.ChunkStore, dev render.Device, cfg config.MeshingConfig, log *zap.Logger, mesher meshing.MeshFunc) *Session {
	log = logger.Or(log)
	s := &Session{
		Store:  store,
		device: dev,
		meshes: make(map[world.ChunkCoord]*render.CachedMesh),
		cfg:    cfg,
		log:    log.Named("session"),
		queued: make(map[world.ChunkCoord]bool),
	}
	if cfg.GreedyEnabled {
		s.pipeline = meshing.NewPipeline(mesher, log)
	}
	return s
}

// Advance runs one frame of meshing work: a parallel fast pass over every
// Remesh chunk, one poll of the greedy pipeline and, on frames without a
// fast pass, at most one greedy submission.
func (s *Session) Advance() {
	s.Stats.Frames++
	remeshed := s.remesh()
	s.pollGreedy()
	if remeshed == 0 {
		s.submitGreedy()
	}
}

func (s *Session) remesh() int {
	coords := s.Store.CoordsInState(world.StateRemesh)
	s.Stats.LastRemesh = len(coords)
	if len(coords) == 0 {
		return 0
	}

	start := time.Now()
	stop := profiling.Track("meshing.fast")
	meshes := make([]meshing.Mesh, len(coords))
	var g errgroup.Group
	g.SetLimit(s.fastWorkers())
	for i, at := range coords {
		chunk := s.Store.GetChunk(at)
		if chunk == nil {
			panic("game: remesh of a chunk that is not loaded: " + at.String())
		}
		g.Go(func() error {
			meshes[i] = meshing.Fast(chunk, at, s.Store)
			return nil
		})
	}
	// Fast meshing has no failure path
	_ = g.Wait()
	stop()

	defer profiling.Track("render.cache")()
	vertices := 0
	for i, at := range coords {
		mesh := meshes[i]
		vertices += len(mesh.Vertices)
		state := world.StateCached
		if s.pipeline != nil && len(mesh.Vertices) < s.cfg.GreedyThreshold {
			state = world.StateGreedy
			s.enqueue(at)
		}
		s.Store.SetState(at, state)
		s.upload(at, mesh)
	}
	s.Stats.FastMeshes += len(coords)

	s.log.Debug("fast pass",
		zap.Int("chunks", len(coords)),
		zap.Int("vertices", vertices),
		zap.Int("greedy_queue", len(s.queue)),
		zap.Duration("took", time.Since(start)))
	return len(coords)
}

func (s *Session) fastWorkers() int {
	if s.cfg.FastWorkers > 0 {
		return s.cfg.FastWorkers
	}
	return runtime.NumCPU()
}

func (s *Session) pollGreedy() {
	if s.pipeline == nil {
		return
	}
	defer profiling.Track("meshing.poll")()

	res, ok := s.pipeline.Poll()
	if !ok {
		return
	}
	chunk := s.Store.GetChunk(res.Coord)
	if chunk == nil || chunk.State != world.StateGreedy || chunk.Version != res.Version {
		s.Stats.GreedyStale++
		s.log.Debug("discarding stale greedy mesh", zap.Stringer("chunk", res.Coord), zap.Uint64("version", res.Version))
		return
	}
	s.upload(res.Coord, res.Mesh)
	s.Store.SetState(res.Coord, world.StateCached)
	s.Stats.GreedyApplied++
}

func (s *Session) submitGreedy() {
	if s.pipeline == nil || s.pipeline.Full() || s.pipeline.Closed() {
		return
	}
	defer profiling.Track("meshing.submit")()

	for len(s.queue) > 0 {
		at := s.queue[0]
		chunk := s.Store.GetChunk(at)
		if chunk == nil || chunk.State != world.StateGreedy {
			// Edited, removed or already final since it was queued
			s.dequeue()
			continue
		}
		if !s.pipeline.Submit(at, s.Store) {
			return
		}
		s.dequeue()
		s.Stats.Submitted++
		s.log.Debug("greedy submit", zap.Stringer("chunk", at), zap.Uint64("version", chunk.Version))
		return
	}
}

func (s *Session) enqueue(at world.ChunkCoord) {
	if s.queued[at] {
		return
	}
	s.queued[at] = true
	s.queue = append(s.queue, at)
}

func (s *Session) dequeue() {
	delete(s.queued, s.queue[0])
	s.queue = s.queue[1:]
}

func (s *Session) upload(at world.ChunkCoord, mesh meshing.Mesh) {
	if cm := s.meshes[at]; cm != nil {
		cm.Update(s.device, mesh)
		return
	}
	s.meshes[at] = render.NewCachedMesh(s.device, mesh)
}

// InsertChunk stores chunk and flags it and its face neighbors for remeshing
func (s *Session) InsertChunk(at world.ChunkCoord, chunk *world.Chunk) {
	s.Store.InsertChunk(at, chunk)
}

// SetBlock edits one block in world coordinates
func (s *Session) SetBlock(x, y, z int, b world.BlockType) bool {
	return s.Store.SetBlock(x, y, z, b)
}

// RemoveChunk unloads a chunk and frees its GPU buffers
func (s *Session) RemoveChunk(at world.ChunkCoord) bool {
	if !s.Store.RemoveChunk(at) {
		return false
	}
	if cm := s.meshes[at]; cm != nil {
		cm.Release(s.device)
		delete(s.meshes, at)
	}
	return true
}

// Mesh returns the cached mesh of a chunk, or nil before its first fast pass
func (s *Session) Mesh(at world.ChunkCoord) *render.CachedMesh {
	return s.meshes[at]
}

// Render draws every non-empty cached mesh inside the frustum in store
// order. A nil frustum draws everything.
func (s *Session) Render(d Drawer, frustum *render.Frustum) {
	defer profiling.Track("render.draw")()
	for _, at := range s.Store.Coords() {
		cm := s.meshes[at]
		if cm == nil || cm.Empty() {
			continue
		}
		lo := mgl32.Vec3(at.Origin())
		hi := lo.Add(mgl32.Vec3{world.ChunkSize, world.ChunkSize, world.ChunkSize})
		if frustum.IntersectsAABB(lo, hi) {
			d.Draw(cm)
		}
	}
}

// Pending returns the number of chunks not yet in their final state
func (s *Session) Pending() (remesh, greedy int) {
	return len(s.Store.CoordsInState(world.StateRemesh)), len(s.Store.CoordsInState(world.StateGreedy))
}

// Idle reports whether there is no meshing work left. Greedy chunks count as
// done once the pipeline has closed since nothing will pick them up.
func (s *Session) Idle() bool {
	remesh, greedy := s.Pending()
	if remesh > 0 {
		return false
	}
	if s.pipeline == nil || s.pipeline.Closed() {
		return true
	}
	return greedy == 0 && !s.pipeline.Full()
}

// GreedyClosed reports whether the background pipeline has stopped
func (s *Session) GreedyClosed() bool {
	return s.pipeline == nil || s.pipeline.Closed()
}

// Close stops the greedy worker and frees every cached mesh
func (s *Session) Close() {
	if s.pipeline != nil {
		s.pipeline.Shutdown()
	}
	for at, cm := range s.meshes {
		cm.Release(s.device)
		delete(s.meshes, at)
	}
	s.log.Debug("session closed",
		zap.Int("frames", s.Stats.Frames),
		zap.Int("fast", s.Stats.FastMeshes),
		zap.Int("greedy", s.Stats.GreedyApplied),
		zap.Int("stale", s.Stats.GreedyStale))
}
