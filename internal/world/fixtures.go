package world

import "math/rand"

// FilledChunk returns a chunk where every block is b
func FilledChunk(b BlockType) *Chunk {
	c := NewChunk()
	c.Fill(b)
	return c
}

// BaseChunk builds a layered test chunk: a stone floor, stone up to a dirt
// band, a grass top with its four corners cut out, and air gaps every four
// layers in the lower half.
func BaseChunk() *Chunk {
	c := NewChunk()
	fillLayer := func(y int, b BlockType) {
		for z := 0; z < ChunkSize; z++ {
			for x := 0; x < ChunkSize; x++ {
				c.Blocks[y][z][x] = b
			}
		}
	}

	fillLayer(ChunkSize-1, BlockTypeGrass)
	last := ChunkSize - 1
	c.Blocks[last][0][0] = BlockTypeAir
	c.Blocks[last][0][last] = BlockTypeAir
	c.Blocks[last][last][0] = BlockTypeAir
	c.Blocks[last][last][last] = BlockTypeAir

	for i := 2; i < 6; i++ {
		fillLayer(ChunkSize-i, BlockTypeDirt)
	}
	for i := 6; i <= ChunkSize; i++ {
		fillLayer(ChunkSize-i, BlockTypeStone)
	}
	for i := 20; i <= ChunkSize; i += 4 {
		fillLayer(ChunkSize-i, BlockTypeAir)
	}
	fillLayer(0, BlockTypeStone)
	return c
}

// RandomChunk fills every cell with a uniformly chosen air or opaque block
func RandomChunk(rng *rand.Rand) *Chunk {
	kinds := []BlockType{BlockTypeAir, BlockTypeGrass, BlockTypeDirt, BlockTypeStone}
	c := NewChunk()
	for y := 0; y < ChunkSize; y++ {
		for z := 0; z < ChunkSize; z++ {
			for x := 0; x < ChunkSize; x++ {
				c.Blocks[y][z][x] = kinds[rng.Intn(len(kinds))]
			}
		}
	}
	return c
}

// PoolChunk is a BaseChunk with a water pool sunk into the grass in the middle
func PoolChunk() *Chunk {
	c := BaseChunk()
	for y := ChunkSize - 3; y < ChunkSize; y++ {
		for z := 8; z < 24; z++ {
			for x := 8; x < 24; x++ {
				c.Blocks[y][z][x] = BlockTypeWater
			}
		}
	}
	return c
}
