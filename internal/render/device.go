// Package render uploads chunk meshes to GPU buffers and draws them.
package render

// BufferUsage says what a buffer holds
type BufferUsage uint8

const (
	VertexBuffer BufferUsage = iota
	IndexBuffer
)

func (u BufferUsage) String() string {
	if u == IndexBuffer {
		return "index"
	}
	return "vertex"
}

// Buffer is a handle to GPU memory. Size is the allocated capacity in bytes,
// which can be larger than the data last written.
type Buffer struct {
	ID    uint32
	Size  int
	Usage BufferUsage
}

// Device is the GPU surface the mesh cache needs.
type Device interface {
	// CreateBuffer allocates a buffer sized to data and fills it
	CreateBuffer(usage BufferUsage, data []byte) Buffer
	// WriteBuffer overwrites buf from offset 0; data must fit in buf.Size
	WriteBuffer(buf Buffer, data []byte)
	// DeleteBuffer frees buf
	DeleteBuffer(buf Buffer)
}
