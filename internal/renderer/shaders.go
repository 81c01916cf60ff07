package renderer

import (
	"GopherSky/internal/logger"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	Name           string
	vertexSource   string
	fragmentSource string
	program        uint32
}

// NewShader wraps GLSL sources. Nothing touches GL until Compile.
func NewShader(name, vertexSource, fragmentSource string) *Shader {
	return &Shader{
		Name:           name,
		vertexSource:   vertexSource,
		fragmentSource: fragmentSource,
	}
}

// Compile builds and links the program. It must run on the GL thread.
func (shader *Shader) Compile() error {
	vertex, err := genShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("%s: %w", shader.Name, err)
	}
	fragment, err := genShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return fmt.Errorf("%s: %w", shader.Name, err)
	}
	program, err := genShaderProgram(vertex, fragment)
	if err != nil {
		return fmt.Errorf("%s: %w", shader.Name, err)
	}
	shader.program = program
	logger.Log.Debug("Shader program linked",
		zap.String("shader", shader.Name),
		zap.Uint32("program", program))
	return nil
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Delete() {
	if shader.program != 0 {
		gl.DeleteProgram(shader.program)
		shader.program = 0
	}
}

func shaderTypeName(shaderType uint32) string {
	if shaderType == gl.FRAGMENT_SHADER {
		return "fragment"
	}
	return "vertex"
}

func genShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(withNul(source))
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		logger.Log.Error("Failed to compile",
			zap.String("type", shaderTypeName(shaderType)),
			zap.String("log", log))
		return 0, fmt.Errorf("compile %s shader: %s", shaderTypeName(shaderType), strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func genShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		logger.Log.Error("Failed to link program", zap.String("log", log))
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

// withNul terminates a Go string for the GL C API.
func withNul(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
