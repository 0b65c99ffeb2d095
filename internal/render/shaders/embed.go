// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ChunkVertexShader transforms chunk mesh vertices into clip space.
//
//go:embed chunk.vert
var ChunkVertexShader string

// ChunkFragmentShader shades chunk faces with their vertex color and a
// directional light.
//
//go:embed chunk.frag
var ChunkFragmentShader string
