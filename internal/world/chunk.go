package world

import "fmt"

// ChunkSize is the edge length of a chunk. The meshers pack one chunk row
// into a uint32, so this must stay 32.
const (
	ChunkSize   = 32
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// ChunkState tracks where a chunk is in the meshing lifecycle
type ChunkState uint8

const (
	// StateRemesh chunks need a fast mesh this frame
	StateRemesh ChunkState = iota
	// StateGreedy chunks are displayed with a fast mesh and wait for the background mesher
	StateGreedy
	// StateCached chunks have their final mesh uploaded
	StateCached
)

func (s ChunkState) String() string {
	switch s {
	case StateRemesh:
		return "remesh"
	case StateGreedy:
		return "greedy"
	case StateCached:
		return "cached"
	}
	return fmt.Sprintf("ChunkState(%d)", uint8(s))
}

// ChunkCoord addresses a chunk in chunk units
type ChunkCoord struct {
	X, Y, Z int
}

// Add returns the coordinate shifted by one step in direction d
func (c ChunkCoord) Add(d Direction) ChunkCoord {
	o := d.Offset()
	return ChunkCoord{X: c.X + o[0], Y: c.Y + o[1], Z: c.Z + o[2]}
}

// Neighbors returns the six face-adjacent coordinates, indexed by Direction
func (c ChunkCoord) Neighbors() [6]ChunkCoord {
	var out [6]ChunkCoord
	for _, d := range Directions {
		out[d] = c.Add(d)
	}
	return out
}

// Origin returns the world-space position of the chunk's (0,0,0) corner
func (c ChunkCoord) Origin() [3]float32 {
	return [3]float32{
		float32(c.X * ChunkSize),
		float32(c.Y * ChunkSize),
		float32(c.Z * ChunkSize),
	}
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("[%d %d %d]", c.X, c.Y, c.Z)
}

// Chunk is a 32x32x32 cube of blocks indexed [y][z][x].
// It is a plain value: assigning or Clone copies every block.
type Chunk struct {
	Blocks [ChunkSize][ChunkSize][ChunkSize]BlockType
	State  ChunkState
	// Version increases each time the chunk is flagged for remeshing
	Version uint64
}

// NewChunk creates an empty chunk waiting for its first mesh
func NewChunk() *Chunk {
	return &Chunk{State: StateRemesh}
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize
}

// GetBlock returns the block at local coordinates, or air outside the chunk
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if !inBounds(x, y, z) {
		return BlockTypeAir
	}
	return c.Blocks[y][z][x]
}

// SetBlock sets the block at local coordinates; out of range writes are ignored
func (c *Chunk) SetBlock(x, y, z int, b BlockType) {
	if !inBounds(x, y, z) {
		return
	}
	c.Blocks[y][z][x] = b
}

// At reads a block from an [x,y,z] position, which lets the meshers permute axes
func (c *Chunk) At(p [3]int) BlockType {
	return c.Blocks[p[1]][p[2]][p[0]]
}

// Fill sets every block to b
func (c *Chunk) Fill(b BlockType) {
	for y := range c.Blocks {
		for z := range c.Blocks[y] {
			for x := range c.Blocks[y][z] {
				c.Blocks[y][z][x] = b
			}
		}
	}
}

// IsEmpty reports whether the chunk holds only air
func (c *Chunk) IsEmpty() bool {
	for y := range c.Blocks {
		for z := range c.Blocks[y] {
			for _, b := range c.Blocks[y][z] {
				if b != BlockTypeAir {
					return false
				}
			}
		}
	}
	return true
}

// Kinds returns which block types occur in the chunk, indexed by BlockType
func (c *Chunk) Kinds() [NumBlockTypes]bool {
	var seen [NumBlockTypes]bool
	for y := range c.Blocks {
		for z := range c.Blocks[y] {
			for _, b := range c.Blocks[y][z] {
				if int(b) < NumBlockTypes {
					seen[b] = true
				}
			}
		}
	}
	return seen
}

// Clone returns an independent copy of the chunk
func (c *Chunk) Clone() *Chunk {
	cp := *c
	return &cp
}
