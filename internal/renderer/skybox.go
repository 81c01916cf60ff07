package renderer

import (
	"GopherSky/internal/logger"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// Skybox draws a unit cube around the camera with the procedural sky
// material. The configuration reaches the material through sky.Apply.
type Skybox struct {
	VAO      uint32
	VBO      uint32
	Material *SkyMaterial
	shader   *Shader
}

// CreateSkybox compiles the sky program and uploads the cube.
func CreateSkybox() (*Skybox, error) {
	shader := InitSkyShader()
	if err := shader.Compile(); err != nil {
		return nil, fmt.Errorf("create skybox: %w", err)
	}

	skybox := &Skybox{shader: shader}
	vertices := skyboxVertices(1)

	gl.GenVertexArrays(1, &skybox.VAO)
	gl.GenBuffers(1, &skybox.VBO)

	gl.BindVertexArray(skybox.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, skybox.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	skybox.Material = NewSkyMaterial(shader)
	logger.Log.Info("Skybox created", zap.Uint32("program", shader.Program()))
	return skybox, nil
}

// Render draws the sky. time drives cloud scrolling, in seconds.
func (s *Skybox) Render(camera *Camera, time float32) {
	s.Material.Bind()
	s.Material.Uniforms().SetMat4(uniformViewProjection, camera.SkyViewProjection())
	s.Material.Uniforms().SetFloat(uniformTime, time)

	gl.DepthMask(false)
	gl.DepthFunc(gl.LEQUAL)

	gl.BindVertexArray(s.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	// Restore OpenGL state
	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

// Cleanup cleans up skybox resources
func (s *Skybox) Cleanup() {
	gl.DeleteVertexArrays(1, &s.VAO)
	gl.DeleteBuffers(1, &s.VBO)
	s.shader.Delete()
}

// skyboxVertices returns 12 inward-facing triangles of a cube of half-extent
// size, three floats per vertex.
func skyboxVertices(size float32) []float32 {
	return []float32{
		-size, size, -size,
		-size, -size, -size,
		size, -size, -size,
		size, -size, -size,
		size, size, -size,
		-size, size, -size,

		-size, -size, size,
		-size, -size, -size,
		-size, size, -size,
		-size, size, -size,
		-size, size, size,
		-size, -size, size,

		size, -size, -size,
		size, -size, size,
		size, size, size,
		size, size, size,
		size, size, -size,
		size, -size, -size,

		-size, -size, size,
		-size, size, size,
		size, size, size,
		size, size, size,
		size, -size, size,
		-size, -size, size,

		-size, size, -size,
		size, size, -size,
		size, size, size,
		size, size, size,
		-size, size, size,
		-size, size, -size,

		-size, -size, -size,
		-size, -size, size,
		size, -size, -size,
		size, -size, -size,
		-size, -size, size,
		size, -size, size,
	}
}
