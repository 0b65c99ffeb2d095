package game

import (
	"math"

	"voxmesh/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// BlockGetter reads blocks in world coordinates
type BlockGetter interface {
	GetBlock(x, y, z int) world.BlockType
}

// Hit is the first solid block along a ray
type Hit struct {
	Block [3]int
	// Before is the last empty cell the ray crossed, where a placed block goes
	Before   [3]int
	Distance float32
}

// Raycast walks the voxel grid from start along dir (DDA) and returns the
// first block that is neither air nor water within maxDist.
func Raycast(start, dir mgl32.Vec3, maxDist float32, blocks BlockGetter) (Hit, bool) {
	if dir.Len() == 0 {
		return Hit{}, false
	}
	dir = dir.Normalize()

	var grid, step [3]int
	var delta, side [3]float32
	for i := 0; i < 3; i++ {
		grid[i] = int(math.Floor(float64(start[i])))
		delta[i] = float32(math.Abs(1 / float64(dir[i])))
		switch {
		case dir[i] == 0:
			side[i] = float32(math.Inf(1))
		case dir[i] > 0:
			step[i] = 1
			side[i] = (float32(grid[i]) + 1 - start[i]) * delta[i]
		default:
			step[i] = -1
			side[i] = (start[i] - float32(grid[i])) * delta[i]
		}
	}

	before := grid
	var dist float32
	for dist < maxDist {
		axis := 2
		if side[0] < side[1] && side[0] < side[2] {
			axis = 0
		} else if side[1] < side[2] {
			axis = 1
		}
		dist = side[axis]
		side[axis] += delta[axis]
		grid[axis] += step[axis]
		if dist > maxDist {
			break
		}

		b := blocks.GetBlock(grid[0], grid[1], grid[2])
		if b != world.BlockTypeAir && b != world.BlockTypeWater {
			return Hit{Block: grid, Before: before, Distance: dist}, true
		}
		before = grid
	}
	return Hit{}, false
}
