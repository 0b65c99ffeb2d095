package render

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDevice allocates buffers through the current OpenGL context. It must be
// used on the thread that owns the context.
type GLDevice struct{}

func (GLDevice) CreateBuffer(usage BufferUsage, data []byte) Buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, id)
	gl.BufferData(gl.COPY_WRITE_BUFFER, len(data), bytesPtr(data), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)
	return Buffer{ID: id, Size: len(data), Usage: usage}
}

func (GLDevice) WriteBuffer(buf Buffer, data []byte) {
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, buf.ID)
	gl.BufferSubData(gl.COPY_WRITE_BUFFER, 0, len(data), bytesPtr(data))
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)
}

func (GLDevice) DeleteBuffer(buf Buffer) {
	if buf.ID != 0 {
		gl.DeleteBuffers(1, &buf.ID)
	}
}

func bytesPtr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}
