package world

import (
	"cmp"
	"slices"
	"sync"
)

// ChunkStore manages the storage and retrieval of chunks.
//
// Reads may run concurrently (the parallel fast-mesh phase shares the store
// read-only); all writes come from the single driving goroutine.
type ChunkStore struct {
	chunks map[ChunkCoord]*Chunk
	mu     sync.RWMutex
}

// NewChunkStore creates a new chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// GetChunk returns the chunk at the given coordinate, or nil if absent.
func (cs *ChunkStore) GetChunk(at ChunkCoord) *Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.chunks[at]
}

// HasChunk checks if a chunk exists.
func (cs *ChunkStore) HasChunk(at ChunkCoord) bool {
	cs.mu.RLock()
	_, exists := cs.chunks[at]
	cs.mu.RUnlock()
	return exists
}

// Len returns the number of stored chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// InsertChunk stores chunk at the given coordinate, replacing any previous
// chunk there, and queues it and its neighbors for remeshing.
func (cs *ChunkStore) InsertChunk(at ChunkCoord, chunk *Chunk) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	chunk.State = StateRemesh
	cs.chunks[at] = chunk
	cs.flagLocked(at)
}

// Flag marks the chunk at the coordinate and each existing face neighbor as
// needing a remesh. Edits at a chunk border change the neighbor's faces too.
func (cs *ChunkStore) Flag(at ChunkCoord) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.flagLocked(at)
}

func (cs *ChunkStore) flagLocked(at ChunkCoord) {
	mark := func(c ChunkCoord) {
		if ch := cs.chunks[c]; ch != nil {
			ch.State = StateRemesh
			ch.Version++
		}
	}
	mark(at)
	for _, nb := range at.Neighbors() {
		mark(nb)
	}
}

// RemoveChunk deletes the chunk at the coordinate. Neighbors are flagged
// since their border faces may now be exposed.
func (cs *ChunkStore) RemoveChunk(at ChunkCoord) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.chunks[at]; !ok {
		return false
	}
	delete(cs.chunks, at)
	cs.flagLocked(at)
	return true
}

// SetState updates the meshing state of a stored chunk.
func (cs *ChunkStore) SetState(at ChunkCoord, state ChunkState) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	ch := cs.chunks[at]
	if ch == nil {
		return false
	}
	ch.State = state
	return true
}

// ChunkCoordFromBlock converts world block coordinates to the owning chunk and local offsets.
func ChunkCoordFromBlock(x, y, z int) (ChunkCoord, [3]int) {
	at := ChunkCoord{X: floorDiv(x, ChunkSize), Y: floorDiv(y, ChunkSize), Z: floorDiv(z, ChunkSize)}
	return at, [3]int{mod(x, ChunkSize), mod(y, ChunkSize), mod(z, ChunkSize)}
}

// GetBlock returns the block type at world coordinates; missing chunks read as air.
func (cs *ChunkStore) GetBlock(x, y, z int) BlockType {
	at, l := ChunkCoordFromBlock(x, y, z)
	ch := cs.GetChunk(at)
	if ch == nil {
		return BlockTypeAir
	}
	return ch.GetBlock(l[0], l[1], l[2])
}

// SetBlock edits a block at world coordinates and flags the owning chunk.
// It reports false when the chunk is not loaded.
func (cs *ChunkStore) SetBlock(x, y, z int, b BlockType) bool {
	at, l := ChunkCoordFromBlock(x, y, z)
	cs.mu.Lock()
	defer cs.mu.Unlock()
	ch := cs.chunks[at]
	if ch == nil {
		return false
	}
	if ch.GetBlock(l[0], l[1], l[2]) == b {
		return true
	}
	ch.SetBlock(l[0], l[1], l[2], b)
	cs.flagLocked(at)
	return true
}

// Coords returns every stored coordinate in a stable (Y, Z, X) order.
func (cs *ChunkStore) Coords() []ChunkCoord {
	cs.mu.RLock()
	out := make([]ChunkCoord, 0, len(cs.chunks))
	for c := range cs.chunks {
		out = append(out, c)
	}
	cs.mu.RUnlock()
	slices.SortFunc(out, func(a, b ChunkCoord) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.Z, b.Z), cmp.Compare(a.X, b.X))
	})
	return out
}

// CoordsInState returns the coordinates of chunks currently in the given state, in Coords order.
func (cs *ChunkStore) CoordsInState(state ChunkState) []ChunkCoord {
	all := cs.Coords()
	out := all[:0]
	cs.mu.RLock()
	for _, c := range all {
		if ch := cs.chunks[c]; ch != nil && ch.State == state {
			out = append(out, c)
		}
	}
	cs.mu.RUnlock()
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
