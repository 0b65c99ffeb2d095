package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeWater
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone

	NumBlockTypes = int(BlockTypeStone) + 1
)

// BlockFace selects one of the three colored sides a block carries
type BlockFace int

const (
	FaceTop BlockFace = iota
	FaceSide
	FaceBottom
)

type blockDef struct {
	name        string
	transparent bool
	faces       [3]mgl32.Vec4
}

func uniform(c mgl32.Vec4) [3]mgl32.Vec4 {
	return [3]mgl32.Vec4{c, c, c}
}

var (
	dirtColor  = mgl32.Vec4{0.529, 0.243, 0.137, 1.0}
	stoneColor = mgl32.Vec4{0.62, 0.62, 0.62, 1.0}
	waterColor = mgl32.Vec4{0.0, 0.3, 0.7, 0.2}
	grassTop   = mgl32.Vec4{0.22, 0.56, 0.24, 1.0}
)

var blockDefs = [NumBlockTypes]blockDef{
	BlockTypeAir:   {name: "air", transparent: true},
	BlockTypeWater: {name: "water", transparent: true, faces: uniform(waterColor)},
	BlockTypeGrass: {name: "grass", faces: [3]mgl32.Vec4{grassTop, dirtColor, dirtColor}},
	BlockTypeDirt:  {name: "dirt", faces: uniform(dirtColor)},
	BlockTypeStone: {name: "stone", faces: uniform(stoneColor)},
}

// SolidBlockTypes lists every non-air block type in ascending order
var SolidBlockTypes = []BlockType{BlockTypeWater, BlockTypeGrass, BlockTypeDirt, BlockTypeStone}

func (b BlockType) String() string {
	if int(b) < NumBlockTypes {
		return blockDefs[b].name
	}
	return "unknown"
}

// IsTransparent reports whether neighbors stay visible through this block.
// Air is always transparent; unknown types are treated as opaque.
func (b BlockType) IsTransparent() bool {
	if int(b) >= NumBlockTypes {
		return false
	}
	return blockDefs[b].transparent
}

// Color returns the RGBA color for one face of the block
func (b BlockType) Color(face BlockFace) mgl32.Vec4 {
	if int(b) >= NumBlockTypes || face < FaceTop || face > FaceBottom {
		return mgl32.Vec4{0.5, 0.5, 0.5, 1.0}
	}
	return blockDefs[b].faces[face]
}
