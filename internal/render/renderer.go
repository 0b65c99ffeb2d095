package render

import (
	"fmt"

	"voxmesh/internal/meshing"
	"voxmesh/internal/render/shaders"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws cached chunk meshes with a single program and VAO.
type Renderer struct {
	shader *Shader
	vao    uint32

	LightDir    mgl32.Vec3
	FogColor    mgl32.Vec3
	FogDistance float32
	// Wireframe draws triangle edges only, which shows how faces were merged
	Wireframe bool

	// DrawCalls counts draws since the last BeginFrame
	DrawCalls int
}

// NewRenderer compiles the chunk program. A GL context must be current.
func NewRenderer() (*Renderer, error) {
	shader, err := NewShader(shaders.ChunkVertexShader, shaders.ChunkFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("chunk shader: %w", err)
	}
	r := &Renderer{
		shader:      shader,
		LightDir:    mgl32.Vec3{-0.4, -1, -0.25}.Normalize(),
		FogColor:    mgl32.Vec3{0.53, 0.81, 0.92},
		FogDistance: 400,
	}
	gl.GenVertexArrays(1, &r.vao)
	return r, nil
}

// BeginFrame clears the target and sets the camera for subsequent draws
func (r *Renderer) BeginFrame(view, proj mgl32.Mat4) {
	gl.ClearColor(r.FogColor.X(), r.FogColor.Y(), r.FogColor.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if r.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	r.shader.Use()
	r.shader.SetMat4("view", view)
	r.shader.SetMat4("proj", proj)
	r.shader.SetVec3("lightDir", r.LightDir)
	r.shader.SetVec3("fogColor", r.FogColor)
	r.shader.SetFloat("fogDistance", r.FogDistance)
	r.DrawCalls = 0
}

// Draw issues one indexed draw for m
func (r *Renderer) Draw(m *CachedMesh) {
	if m == nil || m.Empty() {
		return
	}
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.Vertices.ID)
	setupVertexAttribs()
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.Indices.ID)
	gl.DrawElements(gl.TRIANGLES, int32(m.NumIndices), gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	r.DrawCalls++
}

// Resize sets the GL viewport to the framebuffer size
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Dispose frees the program and VAO
func (r *Renderer) Dispose() {
	gl.DeleteVertexArrays(1, &r.vao)
	r.shader.Delete()
}

// setupVertexAttribs describes meshing.Vertex: position, color, normal
func setupVertexAttribs() {
	stride := int32(meshing.VertexSize)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(7*4))
}
