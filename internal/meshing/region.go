package meshing

import (
	"fmt"

	"voxmesh/internal/world"
)

// Region is the self-contained input of a background greedy job: a copy of
// the center chunk and of each face neighbor that exists. Nothing in it
// aliases the live chunk store.
type Region struct {
	Center world.Chunk
	// Neighbors is indexed by world.Direction; nil means an open boundary
	Neighbors [6]*world.Chunk
}

// NewRegion snapshots the chunk at `at` and its neighbors from chunks.
// The center chunk must exist; a missing center is a caller bug and panics.
func NewRegion(at world.ChunkCoord, chunks ChunkSource) *Region {
	center := chunks.GetChunk(at)
	if center == nil {
		panic(fmt.Sprintf("meshing: region center %v is not loaded", at))
	}
	r := &Region{Center: *center}
	for _, dir := range world.Directions {
		if nb := chunks.GetChunk(at.Add(dir)); nb != nil {
			r.Neighbors[dir] = nb.Clone()
		}
	}
	return r
}

// Source exposes the snapshot as a ChunkSource positioned at center, so
// Fast can run over the same input as Greedy.
func (r *Region) Source(center world.ChunkCoord) ChunkSource {
	return regionSource{r: r, center: center}
}

type regionSource struct {
	r      *Region
	center world.ChunkCoord
}

func (s regionSource) GetChunk(at world.ChunkCoord) *world.Chunk {
	if at == s.center {
		return &s.r.Center
	}
	for _, dir := range world.Directions {
		if s.center.Add(dir) == at {
			return s.r.Neighbors[dir]
		}
	}
	return nil
}
