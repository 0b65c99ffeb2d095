package meshing

import (
	"fmt"
	"sync"

	"voxmesh/internal/logger"
	"voxmesh/internal/world"

	"go.uber.org/zap"
)

// MeshFunc turns a region snapshot into a mesh for the chunk at `at`
type MeshFunc func(at world.ChunkCoord, region *Region) Mesh

// Job is one background meshing request
type Job struct {
	Coord   world.ChunkCoord
	Version uint64
	Region  *Region
}

// Result is a finished background mesh
type Result struct {
	Coord world.ChunkCoord
	// Version is the chunk version the region was snapshotted at
	Version uint64
	Mesh    Mesh
}

// Pipeline runs a MeshFunc (Greedy by default) on one dedicated goroutine.
// At most one job is in flight: Submit is refused until Poll has collected
// the previous result. The pipeline is owned by the driving goroutine and is
// not safe for concurrent use.
type Pipeline struct {
	jobs    chan Job
	results chan Result
	mesher  MeshFunc
	log     *zap.Logger
	wg      sync.WaitGroup

	full   bool
	closed bool
	// stopped is set by Shutdown; jobs must not be sent after that
	stopped bool
}

// NewPipeline starts the worker goroutine. A nil mesher means Greedy and a
// nil logger means the global one.
func NewPipeline(mesher MeshFunc, log *zap.Logger) *Pipeline {
	if mesher == nil {
		mesher = Greedy
	}
	p := &Pipeline{
		jobs:    make(chan Job, 1),
		results: make(chan Result, 1),
		mesher:  mesher,
		log:     logger.Or(log).Named("pipeline"),
	}
	p.wg.Add(1)
	go p.worker()
	return p
}

// Submit snapshots the chunk at `at` with its neighbors and hands it to the
// worker. It returns false without side effects when the pipeline is closed
// or a job is already in flight.
func (p *Pipeline) Submit(at world.ChunkCoord, chunks ChunkSource) bool {
	if p.closed || p.stopped || p.full {
		return false
	}

	region := NewRegion(at, chunks)
	job := Job{Coord: at, Version: region.Center.Version, Region: region}

	select {
	case p.jobs <- job:
		p.full = true
		return true
	default:
		// The slot is only occupied while full is set, so this means the
		// worker never took the last job.
		return false
	}
}

// Poll returns a finished result if one is ready. It never blocks. Once the
// worker has gone away the pipeline is closed for good.
func (p *Pipeline) Poll() (Result, bool) {
	select {
	case res, ok := <-p.results:
		if !ok {
			if !p.closed {
				p.log.Warn("greedy worker is gone, pipeline closed")
			}
			p.closed = true
			p.full = false
			return Result{}, false
		}
		p.full = false
		return res, true
	default:
		return Result{}, false
	}
}

// Full reports whether a job is in flight
func (p *Pipeline) Full() bool {
	return p.full
}

// Closed reports whether the worker has been observed gone
func (p *Pipeline) Closed() bool {
	return p.closed
}

// Shutdown stops accepting jobs and waits for the worker to finish any job
// in flight. A result produced during shutdown can still be collected by Poll.
func (p *Pipeline) Shutdown() {
	if p.stopped {
		return
	}
	p.stopped = true
	close(p.jobs)
	p.wg.Wait()
}

func (p *Pipeline) worker() {
	defer p.wg.Done()
	defer close(p.results)

	for job := range p.jobs {
		res, err := p.run(job)
		if err != nil {
			p.log.Error("greedy worker stopped", zap.Stringer("chunk", job.Coord), zap.Error(err))
			return
		}
		// Never blocks: the buffer holds one result and only one job is in flight.
		p.results <- res
	}
}

func (p *Pipeline) run(job Job) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mesher panicked: %v", r)
		}
	}()
	mesh := p.mesher(job.Coord, job.Region)
	return Result{Coord: job.Coord, Version: job.Version, Mesh: mesh}, nil
}
