package meshing

import (
	"testing"

	"voxmesh/internal/world"
)

func benchRegion() (world.ChunkCoord, chunkMap) {
	at := world.ChunkCoord{}
	chunks := chunkMap{at: world.PoolChunk()}
	surround(chunks, at, world.BaseChunk())
	return at, chunks
}

func BenchmarkFast(b *testing.B) {
	at, chunks := benchRegion()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Fast(chunks[at], at, chunks)
	}
}

func BenchmarkGreedy(b *testing.B) {
	at, chunks := benchRegion()
	region := NewRegion(at, chunks)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Greedy(at, region)
	}
}

func BenchmarkNewRegion(b *testing.B) {
	at, chunks := benchRegion()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NewRegion(at, chunks)
	}
}
