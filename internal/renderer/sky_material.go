package renderer

import (
	"GopherSky/internal/logger"
	"GopherSky/internal/sky"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// TextureSlot is the fixed texture unit and bind target of a sampler uniform.
type TextureSlot struct {
	Unit   uint32
	Target uint32
}

// SkyTextureSlots assigns every sampler of the sky shader its unit.
var SkyTextureSlots = map[string]TextureSlot{
	sky.UniformLightSourceTexture: {Unit: 0, Target: gl.TEXTURE_2D},
	sky.UniformStarFieldTexture:   {Unit: 1, Target: gl.TEXTURE_CUBE_MAP},
	sky.UniformCloudTexture:       {Unit: 2, Target: gl.TEXTURE_2D},
}

// SkyMaterial is the OpenGL implementation of sky.Material. Scalar, vector
// and matrix uniforms are written straight into the program; textures are
// remembered and bound to their slots by Bind at draw time.
type SkyMaterial struct {
	shader   *Shader
	uniforms *UniformCache
	textures map[string]uint32
	unknown  map[string]bool
}

var _ sky.Material = (*SkyMaterial)(nil)

// NewSkyMaterial wraps a compiled sky shader and points every sampler
// uniform at its texture unit.
func NewSkyMaterial(shader *Shader) *SkyMaterial {
	m := &SkyMaterial{
		shader:   shader,
		uniforms: NewUniformCache(shader.Program()),
		textures: make(map[string]uint32, len(SkyTextureSlots)),
		unknown:  make(map[string]bool),
	}
	for name, slot := range SkyTextureSlots {
		m.uniforms.SetInt(name, int32(slot.Unit))
	}
	return m
}

func (m *SkyMaterial) SetFloat(name string, v float32)     { m.uniforms.SetFloat(name, v) }
func (m *SkyMaterial) SetColor(name string, c mgl32.Vec4)  { m.uniforms.SetVec4(name, c) }
func (m *SkyMaterial) SetVector(name string, v mgl32.Vec4) { m.uniforms.SetVec4(name, v) }
func (m *SkyMaterial) SetMatrix(name string, v mgl32.Mat4) { m.uniforms.SetMat4(name, v) }

// SetTexture records the handle for name. A nil texture binds 0, which the
// shader samples as black, so the layer simply does not render.
func (m *SkyMaterial) SetTexture(name string, t *sky.Texture) {
	if _, ok := SkyTextureSlots[name]; !ok {
		if !m.unknown[name] {
			m.unknown[name] = true
			logger.Log.Warn("Texture uniform has no slot", zap.String("uniform", name))
		}
		return
	}
	m.textures[name] = t.Handle()
}

// TextureHandle returns what SetTexture last recorded for name.
func (m *SkyMaterial) TextureHandle(name string) uint32 {
	return m.textures[name]
}

// Bind makes the program current and binds every recorded texture.
func (m *SkyMaterial) Bind() {
	m.shader.Use()
	for name, slot := range SkyTextureSlots {
		gl.ActiveTexture(gl.TEXTURE0 + slot.Unit)
		gl.BindTexture(slot.Target, m.textures[name])
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

// Uniforms exposes the cache so the skybox can write its own matrices.
func (m *SkyMaterial) Uniforms() *UniformCache {
	return m.uniforms
}

// LogMissingUniforms reports sky uniforms the linked program optimised out.
func (m *SkyMaterial) LogMissingUniforms() {
	for _, name := range m.uniforms.Missing() {
		logger.Log.Debug("Sky uniform not active in program", zap.String("uniform", name))
	}
}
