package render

import "fmt"

// MemoryDevice keeps buffers in host memory. It backs headless runs and tests.
type MemoryDevice struct {
	next    uint32
	buffers map[uint32][]byte

	Creates int
	Writes  int
	Deletes int
}

// NewMemoryDevice creates an empty device
func NewMemoryDevice() *MemoryDevice {
	return &MemoryDevice{buffers: make(map[uint32][]byte)}
}

func (d *MemoryDevice) CreateBuffer(usage BufferUsage, data []byte) Buffer {
	d.next++
	d.buffers[d.next] = append([]byte(nil), data...)
	d.Creates++
	return Buffer{ID: d.next, Size: len(data), Usage: usage}
}

func (d *MemoryDevice) WriteBuffer(buf Buffer, data []byte) {
	mem, ok := d.buffers[buf.ID]
	if !ok {
		panic(fmt.Sprintf("render: write to unknown buffer %d", buf.ID))
	}
	if len(data) > len(mem) {
		panic(fmt.Sprintf("render: %d byte write overflows %d byte buffer %d", len(data), len(mem), buf.ID))
	}
	copy(mem, data)
	d.Writes++
}

func (d *MemoryDevice) DeleteBuffer(buf Buffer) {
	if _, ok := d.buffers[buf.ID]; !ok {
		return
	}
	delete(d.buffers, buf.ID)
	d.Deletes++
}

// Contents returns the first n bytes stored in buffer id
func (d *MemoryDevice) Contents(id uint32, n int) []byte {
	mem := d.buffers[id]
	return mem[:min(n, len(mem))]
}

// Live returns the number of allocated buffers
func (d *MemoryDevice) Live() int {
	return len(d.buffers)
}

// Bytes returns the total allocated size
func (d *MemoryDevice) Bytes() int {
	total := 0
	for _, b := range d.buffers {
		total += len(b)
	}
	return total
}
