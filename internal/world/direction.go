package world

import "github.com/go-gl/mathgl/mgl32"

// Direction is one of the six axis-aligned face directions
type Direction int

const (
	DirUp    Direction = iota // +Y
	DirDown                   // -Y
	DirWest                   // -X
	DirEast                   // +X
	DirNorth                  // -Z
	DirSouth                  // +Z
)

// Directions lists all six directions in meshing order
var Directions = [6]Direction{DirUp, DirDown, DirWest, DirEast, DirNorth, DirSouth}

// Axis returns 0, 1 or 2 for the X, Y or Z axis the direction points along
func (d Direction) Axis() int {
	switch d {
	case DirWest, DirEast:
		return 0
	case DirUp, DirDown:
		return 1
	default:
		return 2
	}
}

// Positive reports whether the direction points toward increasing coordinates
func (d Direction) Positive() bool {
	return d == DirUp || d == DirEast || d == DirSouth
}

// Offset returns the unit step along the direction
func (d Direction) Offset() [3]int {
	var o [3]int
	if d.Positive() {
		o[d.Axis()] = 1
	} else {
		o[d.Axis()] = -1
	}
	return o
}

// Normal returns the outward unit normal for faces pointing this way
func (d Direction) Normal() mgl32.Vec3 {
	o := d.Offset()
	return mgl32.Vec3{float32(o[0]), float32(o[1]), float32(o[2])}
}

// Face maps a direction to the block face color slot
func (d Direction) Face() BlockFace {
	switch d {
	case DirUp:
		return FaceTop
	case DirDown:
		return FaceBottom
	default:
		return FaceSide
	}
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	return d ^ 1
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirWest:
		return "west"
	case DirEast:
		return "east"
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	}
	return "invalid"
}
