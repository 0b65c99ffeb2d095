package meshing

import (
	"math"
	"math/rand"
	"testing"

	"voxmesh/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

type chunkMap map[world.ChunkCoord]*world.Chunk

func (m chunkMap) GetChunk(at world.ChunkCoord) *world.Chunk {
	return m[at]
}

// surround places a copy of nb on all six sides of at
func surround(m chunkMap, at world.ChunkCoord, nb *world.Chunk) {
	for _, c := range at.Neighbors() {
		m[c] = nb.Clone()
	}
}

func singleBlockChunk(b world.BlockType) *world.Chunk {
	c := world.NewChunk()
	mid := world.ChunkSize / 2
	c.SetBlock(mid, mid, mid, b)
	return c
}

// mixedChunk fills a chunk from the given kinds with a seeded rng
func mixedChunk(seed int64, kinds ...world.BlockType) *world.Chunk {
	rng := rand.New(rand.NewSource(seed))
	c := world.NewChunk()
	for y := 0; y < world.ChunkSize; y++ {
		for z := 0; z < world.ChunkSize; z++ {
			for x := 0; x < world.ChunkSize; x++ {
				c.Blocks[y][z][x] = kinds[rng.Intn(len(kinds))]
			}
		}
	}
	return c
}

type faceKey struct {
	normal mgl32.Vec3
	color  mgl32.Vec4
}

// triangles calls fn for every triangle of m
func triangles(m Mesh, fn func(a, b, c Vertex)) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		fn(m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]])
	}
}

// surfaceArea sums triangle area grouped by normal and color. Two meshes
// covering the same faces have equal areas no matter how faces are merged.
func surfaceArea(m Mesh) map[faceKey]float64 {
	out := make(map[faceKey]float64)
	triangles(m, func(a, b, c Vertex) {
		cross := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		out[faceKey{a.Normal, a.Color}] += 0.5 * float64(cross.Len())
	})
	return out
}

func assertSameSurface(t *testing.T, got, want Mesh) {
	t.Helper()
	ga, wa := surfaceArea(got), surfaceArea(want)
	if len(ga) != len(wa) {
		t.Fatalf("surface groups differ: got %d, want %d", len(ga), len(wa))
	}
	for k, w := range wa {
		if g := ga[k]; math.Abs(g-w) > 1e-3 {
			t.Errorf("area for normal %v color %v = %.1f, want %.1f", k.normal, k.color, g, w)
		}
	}
}

// assertGreedySurface checks a greedy mesh against a fast one over the same
// input. Opaque surfaces must match; the greedy mesher hides faces between
// water cells, so its water area may only be smaller.
func assertGreedySurface(t *testing.T, greedy, fast Mesh) {
	t.Helper()
	ga, fa := surfaceArea(greedy), surfaceArea(fast)
	water := world.BlockTypeWater.Color(world.FaceSide)
	for k, g := range ga {
		if _, ok := fa[k]; !ok {
			t.Errorf("greedy has area %.1f for normal %v color %v, fast has none", g, k.normal, k.color)
		}
	}
	for k, f := range fa {
		g := ga[k]
		if k.color == water {
			if g > f+1e-3 {
				t.Errorf("water area for normal %v = %.1f, more than fast's %.1f", k.normal, g, f)
			}
			continue
		}
		if math.Abs(g-f) > 1e-3 {
			t.Errorf("area for normal %v color %v = %.1f, want %.1f", k.normal, k.color, g, f)
		}
	}
}

// assertOutwardWinding checks that every triangle is counter-clockwise when
// viewed from the side its normal points to.
func assertOutwardWinding(t *testing.T, m Mesh) {
	t.Helper()
	bad := 0
	triangles(m, func(a, b, c Vertex) {
		if a.Normal != b.Normal || b.Normal != c.Normal {
			bad++
			return
		}
		cross := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		if cross.Dot(a.Normal) <= 0 {
			bad++
		}
	})
	if bad > 0 {
		t.Errorf("%d triangles are wound against their normal", bad)
	}
}

// normals counts triangles per normal
func normals(m Mesh) map[mgl32.Vec3]int {
	out := make(map[mgl32.Vec3]int)
	triangles(m, func(a, _, _ Vertex) { out[a.Normal]++ })
	return out
}
