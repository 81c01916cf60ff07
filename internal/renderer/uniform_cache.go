package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformCache resolves uniform names to locations once per program and
// writes values with the glProgramUniform family, so the program does not
// have to be bound.
type UniformCache struct {
	locations map[string]int32
	program   uint32
	lookup    func(program uint32, name string) int32
}

// NewUniformCache creates a new uniform cache for a shader program
func NewUniformCache(program uint32) *UniformCache {
	return &UniformCache{
		locations: make(map[string]int32),
		program:   program,
		lookup:    glUniformLocation,
	}
}

func glUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// GetLocation returns the cached uniform location or fetches and caches it.
// Names the program does not use resolve to -1 and are cached as such.
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}

	loc := uc.lookup(uc.program, name)
	uc.locations[name] = loc
	return loc
}

// Missing lists cached names the program does not declare.
func (uc *UniformCache) Missing() []string {
	var out []string
	for name, loc := range uc.locations {
		if loc == -1 {
			out = append(out, name)
		}
	}
	return out
}

func (uc *UniformCache) SetFloat(name string, value float32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.ProgramUniform1f(uc.program, loc, value)
	}
}

func (uc *UniformCache) SetInt(name string, value int32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.ProgramUniform1i(uc.program, loc, value)
	}
}

func (uc *UniformCache) SetVec4(name string, v mgl32.Vec4) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.ProgramUniform4f(uc.program, loc, v[0], v[1], v[2], v[3])
	}
}

func (uc *UniformCache) SetMat4(name string, m mgl32.Mat4) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.ProgramUniformMatrix4fv(uc.program, loc, 1, false, &m[0])
	}
}
