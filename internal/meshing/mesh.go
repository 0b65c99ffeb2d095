package meshing

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the GPU vertex layout: position, RGBA color, normal.
// It is comparable, so it works directly as a map key; equality is
// bit-for-bit on the floats as long as no NaNs appear.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
	Normal   mgl32.Vec3
}

// VertexSize is the byte size of one Vertex (10 float32, no padding)
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// IndexSize is the byte size of one index
const IndexSize = 4

// Mesh is an indexed triangle list
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Empty reports whether the mesh draws nothing
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Indices) == 0
}

// Quads returns the number of quads, assuming six indices per quad
func (m *Mesh) Quads() int {
	return len(m.Indices) / 6
}

// VertexBytes views the vertex array as raw bytes without copying
func (m *Mesh) VertexBytes() []byte {
	if len(m.Vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&m.Vertices[0])), len(m.Vertices)*VertexSize)
}

// IndexBytes views the index array as raw bytes without copying
func (m *Mesh) IndexBytes() []byte {
	if len(m.Indices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&m.Indices[0])), len(m.Indices)*IndexSize)
}

// quadSink receives quads from the meshers. Corners are in counter-clockwise
// order as seen from the side the normal points to.
type quadSink interface {
	Quad(v0, v1, v2, v3 Vertex)
}

// Builder accumulates a mesh without sharing vertices between pushes.
type Builder struct {
	mesh Mesh
}

// NewBuilder creates a plain builder with room for roughly quads quads
func NewBuilder(quads int) *Builder {
	return &Builder{mesh: Mesh{
		Vertices: make([]Vertex, 0, quads*4),
		Indices:  make([]uint32, 0, quads*6),
	}}
}

// Push appends v and an index pointing at it
func (b *Builder) Push(v Vertex) uint32 {
	i := uint32(len(b.mesh.Vertices))
	b.mesh.Vertices = append(b.mesh.Vertices, v)
	b.mesh.Indices = append(b.mesh.Indices, i)
	return i
}

// Quad appends four corners and the six indices of two triangles
func (b *Builder) Quad(v0, v1, v2, v3 Vertex) {
	base := uint32(len(b.mesh.Vertices))
	b.mesh.Vertices = append(b.mesh.Vertices, v0, v1, v2, v3)
	b.mesh.Indices = append(b.mesh.Indices, base, base+1, base+2, base+2, base+3, base)
}

// Finish returns the accumulated mesh. The builder must not be used afterwards.
func (b *Builder) Finish() Mesh {
	return b.mesh
}

// DedupBuilder interns vertices so each distinct value is stored once.
// Indices are assigned in first-seen order, which keeps output reproducible.
type DedupBuilder struct {
	lookup   map[Vertex]uint32
	vertices []Vertex
	indices  []uint32
}

// NewDedupBuilder creates a deduplicating builder
func NewDedupBuilder(capacity int) *DedupBuilder {
	return &DedupBuilder{
		lookup:   make(map[Vertex]uint32, capacity),
		vertices: make([]Vertex, 0, capacity),
		indices:  make([]uint32, 0, capacity),
	}
}

func (b *DedupBuilder) intern(v Vertex) uint32 {
	if i, ok := b.lookup[v]; ok {
		return i
	}
	i := uint32(len(b.vertices))
	b.lookup[v] = i
	b.vertices = append(b.vertices, v)
	return i
}

// Push appends an index for v, reusing an earlier identical vertex if any
func (b *DedupBuilder) Push(v Vertex) uint32 {
	i := b.intern(v)
	b.indices = append(b.indices, i)
	return i
}

// Quad interns the four corners and appends the six indices of two triangles
func (b *DedupBuilder) Quad(v0, v1, v2, v3 Vertex) {
	i0, i1, i2, i3 := b.intern(v0), b.intern(v1), b.intern(v2), b.intern(v3)
	b.indices = append(b.indices, i0, i1, i2, i2, i3, i0)
}

// Len returns the number of distinct vertices so far
func (b *DedupBuilder) Len() int {
	return len(b.vertices)
}

// Finish returns the dense vertex array in index order plus the index list
func (b *DedupBuilder) Finish() Mesh {
	m := Mesh{Vertices: b.vertices, Indices: b.indices}
	b.lookup = nil
	b.vertices = nil
	b.indices = nil
	return m
}
