package meshing

import (
	"math/bits"

	"voxmesh/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// rows is one layer of a chunk as bitmasks: rows[b] has bit (31-a) set for
// plane coordinate a, so the most significant bit is a=0.
type rows [size]uint32

var openRows = func() rows {
	var r rows
	for i := range r {
		r[i] = ^uint32(0)
	}
	return r
}()

// Greedy builds a compact mesh for the region's center chunk by merging
// coplanar faces of the same block type into maximal rectangles. Every
// present block type gets its own sweep per direction, so a chunk holding
// K types runs 6*K sweeps.
func Greedy(at world.ChunkCoord, region *Region) Mesh {
	b := NewBuilder(1024)
	present := region.Center.Kinds()
	for _, kind := range world.SolidBlockTypes {
		if !present[kind] {
			continue
		}
		for _, dir := range world.Directions {
			greedyFace(b, &region.Center, at, dir, kind, region.Neighbors[dir])
		}
	}
	return b.Finish()
}

// layerRows packs one layer: which cells are kind, and which cells would
// expose a face of kind looking into them (transparent and not kind itself).
func layerRows(chunk *world.Chunk, f *faceEmitter, layer int, kind world.BlockType) (match, open rows) {
	for b := 0; b < size; b++ {
		var m, o uint32
		for a := 0; a < size; a++ {
			k := chunk.At(f.pos(a, b, layer))
			m <<= 1
			o <<= 1
			if k == kind {
				m |= 1
			}
			if !occludes(kind, k) {
				o |= 1
			}
		}
		match[b] = m
		open[b] = o
	}
	return match, open
}

// greedyFace sweeps the layers of chunk starting at the face that touches
// the neighbor in dir, so each layer is masked by the open cells of the
// layer in front of it.
func greedyFace(sink quadSink, chunk *world.Chunk, at world.ChunkCoord, dir world.Direction, kind world.BlockType, nb *world.Chunk) {
	f := newFaceEmitter(dir, at)
	color := kind.Color(dir.Face())

	front := openRows
	if nb != nil {
		_, front = layerRows(nb, &f, edgeLayer(dir), kind)
	}

	for i := 0; i < size; i++ {
		layer := i
		if dir.Positive() {
			layer = size - 1 - i
		}
		match, open := layerRows(chunk, &f, layer, kind)
		for b := range match {
			match[b] &= front[b]
		}
		mergeRows(sink, &f, &match, layer, color)
		front = open
	}
}

// edgeLayer is the layer of a neighbor in dir that faces back at the center chunk
func edgeLayer(dir world.Direction) int {
	if dir.Positive() {
		return 0
	}
	return size - 1
}

// mergeRows extracts rectangles from visible. It finds the first run of set
// bits in a row, grows it over following rows while the same run stays fully
// set, emits it, and clears the covered bits.
func mergeRows(sink quadSink, f *faceEmitter, visible *rows, layer int, color mgl32.Vec4) {
	for idx := 0; idx < size; {
		row := visible[idx]
		if row == 0 {
			idx++
			continue
		}

		start := bits.LeadingZeros32(row)
		width := bits.LeadingZeros32(^(row << start))
		mask := (^uint32(0) << (size - width)) >> start

		end := idx + 1
		for end < size && visible[end]&mask == mask {
			end++
		}

		f.emit(sink, start, idx, width, end-idx, layer, color)

		for i := idx; i < end; i++ {
			visible[i] &^= mask
		}
	}
}
