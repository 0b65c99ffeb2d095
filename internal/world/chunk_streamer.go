package world

import (
	"runtime"
	"sync"
)

type generated struct {
	at    ChunkCoord
	chunk *Chunk
}

// Streamer generates terrain chunks on background workers. Finished chunks
// are only inserted into the store by Drain, so the store keeps a single
// writer.
type Streamer struct {
	jobs    chan ChunkCoord
	done    chan generated
	pending map[ChunkCoord]struct{}
	wg      sync.WaitGroup
	closed  bool

	store *ChunkStore
	gen   *Generator
}

// NewStreamer starts workers generating chunks for store. workers <= 0 uses
// one per CPU. At most maxPending chunks are queued or waiting to be drained.
func NewStreamer(store *ChunkStore, gen *Generator, workers, maxPending int) *Streamer {
	if workers <= 0 {
		workers = max(runtime.NumCPU(), 1)
	}
	maxPending = max(maxPending, 1)
	s := &Streamer{
		jobs:    make(chan ChunkCoord, maxPending),
		done:    make(chan generated, maxPending),
		pending: make(map[ChunkCoord]struct{}),
		store:   store,
		gen:     gen,
	}
	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

func (s *Streamer) worker() {
	defer s.wg.Done()
	for at := range s.jobs {
		s.done <- generated{at: at, chunk: s.gen.Generate(at)}
	}
}

// Close stops the workers. Chunks not yet drained are dropped.
func (s *Streamer) Close() {
	if s.closed {
		return
	}
	s.closed = true
	close(s.jobs)
	s.wg.Wait()
}

// Pending returns how many chunks are queued or waiting to be drained
func (s *Streamer) Pending() int {
	return len(s.pending)
}

// Request queues every missing chunk within radius columns of center, nearest
// ring first, up to the pending limit. It returns how many were queued.
func (s *Streamer) Request(center ChunkCoord, radius int) int {
	if s.closed {
		return 0
	}
	queued := 0
	for _, col := range ringOrder(center.X, center.Z, radius) {
		top := s.gen.TopChunkY(col[0], col[1])
		for cy := 0; cy <= top; cy++ {
			at := ChunkCoord{X: col[0], Y: cy, Z: col[1]}
			if _, ok := s.pending[at]; ok || s.store.HasChunk(at) {
				continue
			}
			if len(s.pending) >= cap(s.jobs) {
				return queued
			}
			s.pending[at] = struct{}{}
			s.jobs <- at
			queued++
		}
	}
	return queued
}

// Drain inserts up to limit finished chunks into the store without blocking.
// limit <= 0 drains everything that is ready.
func (s *Streamer) Drain(limit int) int {
	n := 0
	for limit <= 0 || n < limit {
		select {
		case g := <-s.done:
			delete(s.pending, g.at)
			s.store.InsertChunk(g.at, g.chunk)
			n++
		default:
			return n
		}
	}
	return n
}

// LoadSync generates and inserts every missing chunk within radius columns
// of center on the calling goroutine.
func (s *Streamer) LoadSync(center ChunkCoord, radius int) int {
	n := 0
	for _, col := range ringOrder(center.X, center.Z, radius) {
		top := s.gen.TopChunkY(col[0], col[1])
		for cy := 0; cy <= top; cy++ {
			at := ChunkCoord{X: col[0], Y: cy, Z: col[1]}
			if s.store.HasChunk(at) {
				continue
			}
			s.store.InsertChunk(at, s.gen.Generate(at))
			n++
		}
	}
	return n
}

// ringOrder lists the columns of a square around (cx, cz), center first and
// then ring by ring.
func ringOrder(cx, cz, radius int) [][2]int {
	out := [][2]int{{cx, cz}}
	for r := 1; r <= radius; r++ {
		x0, x1, z0, z1 := cx-r, cx+r, cz-r, cz+r
		for x := x0; x <= x1; x++ {
			out = append(out, [2]int{x, z0})
		}
		for z := z0 + 1; z <= z1-1; z++ {
			out = append(out, [2]int{x1, z})
		}
		for x := x1; x >= x0; x-- {
			out = append(out, [2]int{x, z1})
		}
		for z := z1 - 1; z >= z0+1; z-- {
			out = append(out, [2]int{x0, z})
		}
	}
	return out
}
