package world

import "math"

// Generator builds terrain chunks from a noise heightmap: stone under a few
// layers of dirt, grass on top, water up to sea level and noise carved caves.
type Generator struct {
	seed       int64
	scale      float64
	baseHeight int
	amp        float64
	height     fractal
	seaLevel   int
	caveScale  float64
	caveCutoff float64
	caves      fractal
	dirtDepth  int
}

// NewGenerator creates a generator with default settings for the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:       seed,
		scale:      1.0 / 64.0,
		baseHeight: 16,
		amp:        40,
		height:     fractal{octaves: 4, persistence: 0.5, lacunarity: 2.0},
		seaLevel:   30,
		caveScale:  1.0 / 16.0,
		caveCutoff: 0.72,
		caves:      fractal{octaves: 2, persistence: 0.5, lacunarity: 2.0},
		dirtDepth:  3,
	}
}

// SeaLevel returns the highest block Y that is filled with water
func (g *Generator) SeaLevel() int {
	return g.seaLevel
}

// HeightAt computes the world surface height (block Y) at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	n := g.height.noise2(float64(worldX)*g.scale, float64(worldZ)*g.scale, g.seed)
	return max(int(math.Floor(float64(g.baseHeight)+n*g.amp)), 0)
}

// TopChunkY returns the highest chunk Y holding anything in the column
func (g *Generator) TopChunkY(chunkX, chunkZ int) int {
	top := g.seaLevel
	for _, dx := range []int{0, ChunkSize - 1} {
		for _, dz := range []int{0, ChunkSize - 1} {
			top = max(top, g.HeightAt(chunkX*ChunkSize+dx, chunkZ*ChunkSize+dz))
		}
	}
	top = max(top, g.HeightAt(chunkX*ChunkSize+ChunkSize/2, chunkZ*ChunkSize+ChunkSize/2))
	return floorDiv(top, ChunkSize)
}

func (g *Generator) cave(worldX, worldY, worldZ int) bool {
	n := g.caves.noise3(float64(worldX)*g.caveScale, float64(worldY)*g.caveScale, float64(worldZ)*g.caveScale, g.seed+7)
	return n > g.caveCutoff
}

// Generate builds the chunk at the given coordinate.
func (g *Generator) Generate(at ChunkCoord) *Chunk {
	c := NewChunk()
	baseY := at.Y * ChunkSize
	for lz := 0; lz < ChunkSize; lz++ {
		for lx := 0; lx < ChunkSize; lx++ {
			wx, wz := at.X*ChunkSize+lx, at.Z*ChunkSize+lz
			h := g.HeightAt(wx, wz)
			for ly := 0; ly < ChunkSize; ly++ {
				c.Blocks[ly][lz][lx] = g.blockAt(wx, baseY+ly, wz, h)
			}
		}
	}
	return c
}

// blockAt picks the block for one cell given its column's surface height h
func (g *Generator) blockAt(wx, wy, wz, h int) BlockType {
	switch {
	case wy > h:
		if wy <= g.seaLevel {
			return BlockTypeWater
		}
		return BlockTypeAir
	case wy > 0 && wy < h-g.dirtDepth && g.cave(wx, wy, wz):
		return BlockTypeAir
	case wy == h && h >= g.seaLevel:
		return BlockTypeGrass
	case wy > h-g.dirtDepth:
		return BlockTypeDirt
	default:
		return BlockTypeStone
	}
}
