package meshing

import (
	"voxmesh/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const size = world.ChunkSize

// ChunkSource looks up chunks by coordinate; nil means the chunk is absent.
// *world.ChunkStore satisfies it.
type ChunkSource interface {
	GetChunk(at world.ChunkCoord) *world.Chunk
}

// planeAxes gives the in-plane axes (a, b) for each normal axis c, chosen so
// that a x b points along +c. Quads emitted in (a, b) order are then
// counter-clockwise when seen from the positive side.
var planeAxes = [3][2]int{
	0: {1, 2}, // X faces: a=Y, b=Z
	1: {2, 0}, // Y faces: a=Z, b=X
	2: {0, 1}, // Z faces: a=X, b=Y
}

// faceEmitter places quads for one face direction of one chunk
type faceEmitter struct {
	dir     world.Direction
	a, b, c int
	normal  mgl32.Vec3
	origin  [3]float32
}

func newFaceEmitter(dir world.Direction, at world.ChunkCoord) faceEmitter {
	c := dir.Axis()
	return faceEmitter{
		dir:    dir,
		a:      planeAxes[c][0],
		b:      planeAxes[c][1],
		c:      c,
		normal: dir.Normal(),
		origin: at.Origin(),
	}
}

// pos builds an [x,y,z] cell position from plane coordinates and a layer
func (f *faceEmitter) pos(a, b, layer int) [3]int {
	var p [3]int
	p[f.a] = a
	p[f.b] = b
	p[f.c] = layer
	return p
}

// emit adds a w x h quad with its low corner at (a0, b0) on the face of the
// given layer that points in f.dir.
func (f *faceEmitter) emit(sink quadSink, a0, b0, w, h, layer int, color mgl32.Vec4) {
	depth := layer
	if f.dir.Positive() {
		depth++
	}
	corner := func(da, db int) Vertex {
		var p mgl32.Vec3
		p[f.a] = f.origin[f.a] + float32(a0+da)
		p[f.b] = f.origin[f.b] + float32(b0+db)
		p[f.c] = f.origin[f.c] + float32(depth)
		return Vertex{Position: p, Color: color, Normal: f.normal}
	}
	v00, v10, v11, v01 := corner(0, 0), corner(w, 0), corner(w, h), corner(0, h)
	if f.dir.Positive() {
		sink.Quad(v00, v10, v11, v01)
	} else {
		sink.Quad(v00, v01, v11, v10)
	}
}

// boundaryPlane returns the layer of the neighbor chunk that touches the
// center chunk's face in direction dir, indexed [a][b] in that direction's
// plane axes. A missing neighbor reads as all air.
func boundaryPlane(nb *world.Chunk, dir world.Direction) *[size][size]world.BlockType {
	var plane [size][size]world.BlockType
	if nb == nil {
		return &plane
	}
	f := faceEmitter{a: planeAxes[dir.Axis()][0], b: planeAxes[dir.Axis()][1], c: dir.Axis()}
	layer := size - 1
	if dir.Positive() {
		layer = 0
	}
	for a := 0; a < size; a++ {
		for b := 0; b < size; b++ {
			plane[a][b] = nb.At(f.pos(a, b, layer))
		}
	}
	return &plane
}

// occludes reports whether a neighbor of kind nb hides the face of a cell of
// kind k in the greedy sweep. Fast only checks transparency.
func occludes(k, nb world.BlockType) bool {
	return !nb.IsTransparent() || nb == k
}
