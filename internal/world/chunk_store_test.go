package world

import "testing"

func newCachedStore(coords ...ChunkCoord) *ChunkStore {
	cs := NewChunkStore()
	for _, c := range coords {
		cs.InsertChunk(c, NewChunk())
	}
	for _, c := range coords {
		cs.SetState(c, StateCached)
	}
	return cs
}

func TestInsertChunkFlagsNeighborsOnly(t *testing.T) {
	p := ChunkCoord{X: 1, Y: 0, Z: -1}
	var coords []ChunkCoord
	for x := -1; x <= 3; x++ {
		for y := -2; y <= 2; y++ {
			for z := -3; z <= 1; z++ {
				c := ChunkCoord{X: x, Y: y, Z: z}
				if c != p {
					coords = append(coords, c)
				}
			}
		}
	}
	cs := newCachedStore(coords...)

	cs.InsertChunk(p, BaseChunk())

	expectRemesh := map[ChunkCoord]bool{p: true}
	for _, nb := range p.Neighbors() {
		expectRemesh[nb] = true
	}
	for _, c := range cs.Coords() {
		state := cs.GetChunk(c).State
		if expectRemesh[c] {
			if state != StateRemesh {
				t.Errorf("chunk %v state = %v, want remesh", c, state)
			}
		} else if state != StateCached {
			t.Errorf("chunk %v state = %v, want cached (untouched)", c, state)
		}
	}
}

func TestInsertChunkMissingNeighbors(t *testing.T) {
	cs := NewChunkStore()
	ch := FilledChunk(BlockTypeStone)
	ch.State = StateCached
	cs.InsertChunk(ChunkCoord{}, ch)
	if cs.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cs.Len())
	}
	if got := cs.GetChunk(ChunkCoord{}).State; got != StateRemesh {
		t.Errorf("inserted chunk state = %v, want remesh", got)
	}
}

func TestFlagBumpsVersion(t *testing.T) {
	at := ChunkCoord{}
	cs := newCachedStore(at, at.Add(DirEast))
	before := cs.GetChunk(at).Version
	cs.Flag(at.Add(DirEast))
	if v := cs.GetChunk(at).Version; v != before+1 {
		t.Errorf("neighbor version = %d, want %d", v, before+1)
	}
}

func TestSetBlockWorldCoords(t *testing.T) {
	origin := ChunkCoord{}
	west := ChunkCoord{X: -1}
	far := ChunkCoord{X: 5}
	cs := newCachedStore(origin, west, far)

	if !cs.SetBlock(-1, 3, 4, BlockTypeStone) {
		t.Fatal("SetBlock on a loaded chunk failed")
	}
	if b := cs.GetChunk(west).GetBlock(ChunkSize-1, 3, 4); b != BlockTypeStone {
		t.Errorf("block landed in the wrong place: %v", b)
	}
	if b := cs.GetBlock(-1, 3, 4); b != BlockTypeStone {
		t.Errorf("GetBlock(-1,3,4) = %v, want stone", b)
	}
	if cs.GetChunk(west).State != StateRemesh || cs.GetChunk(origin).State != StateRemesh {
		t.Error("edited chunk and its neighbor should be flagged")
	}
	if cs.GetChunk(far).State != StateCached {
		t.Error("unrelated chunk was flagged")
	}
	if cs.SetBlock(1000, 0, 0, BlockTypeStone) {
		t.Error("SetBlock on a missing chunk should report false")
	}
}

func TestRemoveChunk(t *testing.T) {
	at := ChunkCoord{}
	up := at.Add(DirUp)
	cs := newCachedStore(at, up)
	if !cs.RemoveChunk(at) {
		t.Fatal("RemoveChunk returned false for a stored chunk")
	}
	if cs.HasChunk(at) {
		t.Error("chunk still present after removal")
	}
	if cs.GetChunk(up).State != StateRemesh {
		t.Error("neighbor of a removed chunk should be flagged")
	}
	if cs.RemoveChunk(at) {
		t.Error("second removal should report false")
	}
}

func TestCoordsOrder(t *testing.T) {
	cs := newCachedStore(
		ChunkCoord{X: 2, Y: 1},
		ChunkCoord{X: 0, Y: 0, Z: 1},
		ChunkCoord{X: 1, Y: 0},
		ChunkCoord{X: -1, Y: 0},
	)
	want := []ChunkCoord{{X: -1}, {X: 1}, {Z: 1}, {X: 2, Y: 1}}
	got := cs.Coords()
	if len(got) != len(want) {
		t.Fatalf("Coords() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Coords()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	cs.SetState(ChunkCoord{X: 1}, StateGreedy)
	if g := cs.CoordsInState(StateGreedy); len(g) != 1 || g[0] != (ChunkCoord{X: 1}) {
		t.Errorf("CoordsInState(greedy) = %v", g)
	}
}

func TestChunkCoordFromBlock(t *testing.T) {
	tests := []struct {
		x, y, z int
		at      ChunkCoord
		local   [3]int
	}{
		{0, 0, 0, ChunkCoord{}, [3]int{0, 0, 0}},
		{31, 32, -1, ChunkCoord{X: 0, Y: 1, Z: -1}, [3]int{31, 0, 31}},
		{-33, 64, 65, ChunkCoord{X: -2, Y: 2, Z: 2}, [3]int{31, 0, 1}},
	}
	for _, tt := range tests {
		at, local := ChunkCoordFromBlock(tt.x, tt.y, tt.z)
		if at != tt.at || local != tt.local {
			t.Errorf("ChunkCoordFromBlock(%d,%d,%d) = %v %v, want %v %v", tt.x, tt.y, tt.z, at, local, tt.at, tt.local)
		}
	}
}
