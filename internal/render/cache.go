package render

import (
	"fmt"

	"voxmesh/internal/meshing"
)

// CachedMesh is the GPU copy of one chunk mesh
type CachedMesh struct {
	Vertices   Buffer
	Indices    Buffer
	NumIndices int
}

// NewCachedMesh uploads mesh into fresh buffers
func NewCachedMesh(dev Device, mesh meshing.Mesh) *CachedMesh {
	return &CachedMesh{
		Vertices:   dev.CreateBuffer(VertexBuffer, mesh.VertexBytes()),
		Indices:    dev.CreateBuffer(IndexBuffer, mesh.IndexBytes()),
		NumIndices: len(mesh.Indices),
	}
}

// Update replaces the cached contents with mesh. Each buffer is overwritten
// in place when the new data fits and reallocated when it does not.
func (c *CachedMesh) Update(dev Device, mesh meshing.Mesh) {
	c.Vertices = upload(dev, c.Vertices, mesh.VertexBytes())
	c.Indices = upload(dev, c.Indices, mesh.IndexBytes())
	c.NumIndices = len(mesh.Indices)
}

// Release frees both buffers
func (c *CachedMesh) Release(dev Device) {
	dev.DeleteBuffer(c.Vertices)
	dev.DeleteBuffer(c.Indices)
	c.NumIndices = 0
}

// Empty reports whether there is nothing to draw
func (c *CachedMesh) Empty() bool {
	return c.NumIndices == 0
}

func (c *CachedMesh) String() string {
	return fmt.Sprintf("mesh(vbo=%d/%dB ibo=%d/%dB indices=%d)",
		c.Vertices.ID, c.Vertices.Size, c.Indices.ID, c.Indices.Size, c.NumIndices)
}

func upload(dev Device, buf Buffer, data []byte) Buffer {
	if len(data) <= buf.Size {
		if len(data) > 0 {
			dev.WriteBuffer(buf, data)
		}
		return buf
	}
	dev.DeleteBuffer(buf)
	return dev.CreateBuffer(buf.Usage, data)
}
