package meshing

import (
	"math/bits"

	"voxmesh/internal/world"
)

// Fast builds a mesh of every visible block face in chunk, one quad per face.
// It favors latency over size: nothing is merged, but corners shared between
// quads are deduplicated. Neighbor chunks come from chunks (nil or absent
// neighbors count as open air). The chunk itself must not be nil.
func Fast(chunk *world.Chunk, at world.ChunkCoord, chunks ChunkSource) Mesh {
	b := NewDedupBuilder(4096)
	for _, dir := range world.Directions {
		var nb *world.Chunk
		if chunks != nil {
			nb = chunks.GetChunk(at.Add(dir))
		}
		fastFace(b, chunk, at, dir, boundaryPlane(nb, dir))
	}
	return b.Finish()
}

// fastFace emits all faces of chunk pointing in dir. Each column along the
// direction's axis is packed into two bitmasks (non-air cells, transparent
// cells); shifting the transparent mask by one lines every cell up with the
// neighbor its face looks at. Any transparent neighbor exposes the face, so
// water next to water keeps both faces.
func fastFace(sink quadSink, chunk *world.Chunk, at world.ChunkCoord, dir world.Direction, edge *[size][size]world.BlockType) {
	f := newFaceEmitter(dir, at)
	face := dir.Face()
	positive := dir.Positive()

	var column [size]world.BlockType
	for a := 0; a < size; a++ {
		for b := 0; b < size; b++ {
			var solid, open uint32
			for c := 0; c < size; c++ {
				k := chunk.At(f.pos(a, b, c))
				column[c] = k
				if k != world.BlockTypeAir {
					solid |= 1 << c
				}
				if k.IsTransparent() {
					open |= 1 << c
				}
			}
			if solid == 0 {
				continue
			}

			var edgeOpen uint32
			if edge[a][b].IsTransparent() {
				edgeOpen = 1
			}

			// bit c of facing is set when the cell the face at c looks into is transparent
			var facing uint32
			if positive {
				facing = open>>1 | edgeOpen<<(size-1)
			} else {
				facing = open<<1 | edgeOpen
			}

			visible := solid & facing
			for visible != 0 {
				c := bits.TrailingZeros32(visible)
				visible &= visible - 1

				f.emit(sink, a, b, 1, 1, c, column[c].Color(face))
			}
		}
	}
}
