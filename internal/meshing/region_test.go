package meshing

import (
	"testing"

	"voxmesh/internal/world"
)

func TestRegionSnapshotIsDetached(t *testing.T) {
	at := world.ChunkCoord{X: 1, Y: 0, Z: -1}
	chunks := chunkMap{at: world.BaseChunk()}
	chunks[at.Add(world.DirUp)] = world.FilledChunk(world.BlockTypeStone)
	chunks[at.Add(world.DirWest)] = mixedChunk(5, world.BlockTypeAir, world.BlockTypeDirt)

	r := NewRegion(at, chunks)
	before := Fast(&r.Center, at, r.Source(at))

	// Edits to the live chunks must not reach the snapshot
	chunks[at].Fill(world.BlockTypeAir)
	chunks[at.Add(world.DirUp)].Fill(world.BlockTypeAir)
	delete(chunks, at.Add(world.DirWest))

	after := Fast(&r.Center, at, r.Source(at))
	if after.Empty() {
		t.Fatal("snapshot lost its blocks after the live chunk was cleared")
	}
	assertSameSurface(t, after, before)
	// Fast and Greedy see the same faces when fed from one snapshot
	assertSameSurface(t, Greedy(at, r), after)
}

func TestRegionSource(t *testing.T) {
	at := world.ChunkCoord{}
	east := world.FilledChunk(world.BlockTypeDirt)
	r := NewRegion(at, chunkMap{at: world.NewChunk(), at.Add(world.DirEast): east})
	src := r.Source(at)

	if got := src.GetChunk(at); got != &r.Center {
		t.Error("center lookup does not return the snapshot center")
	}
	if got := src.GetChunk(at.Add(world.DirEast)); got == nil || got == east {
		t.Errorf("east lookup = %p, want a copy of %p", got, east)
	}
	if got := src.GetChunk(at.Add(world.DirWest)); got != nil {
		t.Error("missing neighbor should be nil")
	}
	if got := src.GetChunk(world.ChunkCoord{X: 1, Y: 1}); got != nil {
		t.Error("diagonal chunk should not be part of the region")
	}
}

func TestRegionMissingCenterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRegion with no center did not panic")
		}
	}()
	NewRegion(world.ChunkCoord{}, chunkMap{})
}
