package meshing

import (
	"slices"
	"testing"
	"time"

	"voxmesh/internal/world"

	"go.uber.org/zap"
)

// waitResult polls p until a result arrives or the pipeline closes
func waitResult(t *testing.T, p *Pipeline) (Result, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if res, ok := p.Poll(); ok {
			return res, true
		}
		if p.Closed() {
			return Result{}, false
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for the pipeline")
	return Result{}, false
}

// gatedMesher blocks every job until release is closed
func gatedMesher(release <-chan struct{}) MeshFunc {
	return func(at world.ChunkCoord, region *Region) Mesh {
		<-release
		return Greedy(at, region)
	}
}

func TestPipelineSingleJobInFlight(t *testing.T) {
	release := make(chan struct{})
	p := NewPipeline(gatedMesher(release), zap.NewNop())
	defer p.Shutdown()

	a, b := world.ChunkCoord{}, world.ChunkCoord{X: 1}
	chunks := chunkMap{a: singleBlockChunk(world.BlockTypeStone), b: singleBlockChunk(world.BlockTypeDirt)}

	if !p.Submit(a, chunks) {
		t.Fatal("first Submit refused")
	}
	if !p.Full() {
		t.Error("Full() = false with a job in flight")
	}
	if p.Submit(b, chunks) {
		t.Fatal("second Submit accepted while a job is in flight")
	}
	if _, ok := p.Poll(); ok {
		t.Fatal("Poll returned a result before the mesher finished")
	}

	close(release)
	res, ok := waitResult(t, p)
	if !ok {
		t.Fatal("pipeline closed unexpectedly")
	}
	if res.Coord != a {
		t.Errorf("result for %v, want %v", res.Coord, a)
	}
	if res.Mesh.Quads() != 6 {
		t.Errorf("result has %d quads, want 6", res.Mesh.Quads())
	}
	if p.Full() {
		t.Error("Full() = true after the result was collected")
	}

	if !p.Submit(b, chunks) {
		t.Fatal("Submit refused after Poll freed the slot")
	}
	if res, ok := waitResult(t, p); !ok || res.Coord != b {
		t.Fatalf("second result = %v, %v", res.Coord, ok)
	}
}

func TestPipelineDefaultsToGreedy(t *testing.T) {
	p := NewPipeline(nil, nil)
	defer p.Shutdown()

	at := world.ChunkCoord{Y: 2}
	chunks := chunkMap{at: world.PoolChunk()}
	chunks[at].Version = 7
	if !p.Submit(at, chunks) {
		t.Fatal("Submit refused")
	}
	res, ok := waitResult(t, p)
	if !ok {
		t.Fatal("pipeline closed unexpectedly")
	}
	if res.Version != 7 {
		t.Errorf("result version = %d, want 7", res.Version)
	}
	want := Greedy(at, NewRegion(at, chunks))
	if !slices.Equal(res.Mesh.Vertices, want.Vertices) || !slices.Equal(res.Mesh.Indices, want.Indices) {
		t.Error("background mesh differs from Greedy on the same input")
	}
}

func TestPipelineSnapshotIsolation(t *testing.T) {
	release := make(chan struct{})
	p := NewPipeline(gatedMesher(release), zap.NewNop())
	defer p.Shutdown()

	at := world.ChunkCoord{}
	chunks := chunkMap{at: singleBlockChunk(world.BlockTypeStone)}
	if !p.Submit(at, chunks) {
		t.Fatal("Submit refused")
	}

	// Edits after Submit must not reach the worker
	chunks[at].Fill(world.BlockTypeStone)
	chunks[at.Add(world.DirUp)] = world.FilledChunk(world.BlockTypeStone)
	close(release)

	res, ok := waitResult(t, p)
	if !ok {
		t.Fatal("pipeline closed unexpectedly")
	}
	if res.Mesh.Quads() != 6 {
		t.Errorf("got %d quads, want the 6 of the submitted single block", res.Mesh.Quads())
	}
}

func TestPipelineMissingCenterPanics(t *testing.T) {
	p := NewPipeline(nil, zap.NewNop())
	defer p.Shutdown()
	defer func() {
		if recover() == nil {
			t.Error("Submit of an unloaded chunk did not panic")
		}
	}()
	p.Submit(world.ChunkCoord{X: 9}, chunkMap{})
}

func TestPipelineWorkerPanicCloses(t *testing.T) {
	p := NewPipeline(func(world.ChunkCoord, *Region) Mesh {
		panic("boom")
	}, zap.NewNop())
	defer p.Shutdown()

	at := world.ChunkCoord{}
	chunks := chunkMap{at: world.BaseChunk()}
	if !p.Submit(at, chunks) {
		t.Fatal("Submit refused")
	}
	if _, ok := waitResult(t, p); ok {
		t.Fatal("got a result from a panicking mesher")
	}
	if !p.Closed() {
		t.Fatal("pipeline not closed after the worker died")
	}
	if p.Full() {
		t.Error("closed pipeline still reports a job in flight")
	}
	if p.Submit(at, chunks) {
		t.Error("closed pipeline accepted a job")
	}
	if _, ok := p.Poll(); ok {
		t.Error("closed pipeline returned a result")
	}
}

func TestPipelineShutdownDrains(t *testing.T) {
	release := make(chan struct{})
	p := NewPipeline(gatedMesher(release), zap.NewNop())

	at := world.ChunkCoord{}
	chunks := chunkMap{at: singleBlockChunk(world.BlockTypeGrass)}
	if !p.Submit(at, chunks) {
		t.Fatal("Submit refused")
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		close(release)
	}()
	p.Shutdown()
	p.Shutdown()

	if p.Submit(at, chunks) {
		t.Error("Submit accepted after Shutdown")
	}
	res, ok := p.Poll()
	if !ok || res.Coord != at {
		t.Fatalf("in-flight result lost on shutdown: %v, %v", res.Coord, ok)
	}
	if _, ok := p.Poll(); ok || !p.Closed() {
		t.Error("pipeline should be closed once the worker has exited")
	}
}
