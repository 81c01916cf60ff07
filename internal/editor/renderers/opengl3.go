package renderers

import (
	"GopherSky/internal/logger"
	"GopherSky/internal/renderer"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"
)

const imguiVertexShader = `#version 410 core
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;
void main()
{
	Frag_UV = UV;
	Frag_Color = Color;
	gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
`

const imguiFragmentShader = `#version 410 core
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;
void main()
{
	Out_Color = vec4(Frag_Color.rgb, Frag_Color.a * texture(Texture, Frag_UV.st).r);
}
`

// OpenGL3 draws imgui draw data with the GL 4.1 core context the engine
// already created.
type OpenGL3 struct {
	imguiIO imgui.IO

	shader      *renderer.Shader
	fontTexture uint32

	attribLocationTex      int32
	attribLocationProjMtx  int32
	attribLocationPosition int32
	attribLocationUV       int32
	attribLocationColor    int32

	vboHandle      uint32
	elementsHandle uint32
}

func NewOpenGL3(io imgui.IO) (*OpenGL3, error) {
	r := &OpenGL3{imguiIO: io}
	if err := r.createDeviceObjects(); err != nil {
		return nil, fmt.Errorf("create imgui renderer: %w", err)
	}
	return r, nil
}

// Dispose frees the GL objects of the renderer.
func (r *OpenGL3) Dispose() {
	if r.vboHandle != 0 {
		gl.DeleteBuffers(1, &r.vboHandle)
	}
	r.vboHandle = 0
	if r.elementsHandle != 0 {
		gl.DeleteBuffers(1, &r.elementsHandle)
	}
	r.elementsHandle = 0
	if r.shader != nil {
		r.shader.Delete()
	}
	if r.fontTexture != 0 {
		gl.DeleteTextures(1, &r.fontTexture)
		r.imguiIO.Fonts().SetTextureID(0)
		r.fontTexture = 0
	}
}

// Render draws one frame of imgui output over whatever is in the
// framebuffer and restores the GL state it touched.
func (r *OpenGL3) Render(displaySize [2]float32, framebufferSize [2]float32, drawData imgui.DrawData) {
	displayWidth, displayHeight := displaySize[0], displaySize[1]
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if fbWidth <= 0 || fbHeight <= 0 || displayWidth <= 0 || displayHeight <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{
		X: fbWidth / displayWidth,
		Y: fbHeight / displayHeight,
	})

	var lastProgram, lastTexture, lastArrayBuffer, lastVertexArray int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &lastArrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &lastVertexArray)
	var lastViewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &lastViewport[0])
	lastEnableBlend := gl.IsEnabled(gl.BLEND)
	lastEnableCullFace := gl.IsEnabled(gl.CULL_FACE)
	lastEnableDepthTest := gl.IsEnabled(gl.DEPTH_TEST)
	lastEnableScissorTest := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	orthoProjection := [4][4]float32{
		{2.0 / displayWidth, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -displayHeight, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}
	r.shader.Use()
	gl.Uniform1i(r.attribLocationTex, 0)
	gl.UniformMatrix4fv(r.attribLocationProjMtx, 1, false, &orthoProjection[0][0])
	gl.BindSampler(0, 0)

	var vaoHandle uint32
	gl.GenVertexArrays(1, &vaoHandle)
	gl.BindVertexArray(vaoHandle)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vboHandle)
	gl.EnableVertexAttribArray(uint32(r.attribLocationPosition))
	gl.EnableVertexAttribArray(uint32(r.attribLocationUV))
	gl.EnableVertexAttribArray(uint32(r.attribLocationColor))

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointer(uint32(r.attribLocationPosition), 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(vertexOffsetPos))
	gl.VertexAttribPointer(uint32(r.attribLocationUV), 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(vertexOffsetUv))
	gl.VertexAttribPointer(uint32(r.attribLocationColor), 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), gl.PtrOffset(vertexOffsetCol))

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		var indexBufferOffset int

		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vboHandle)
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.elementsHandle)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				clipRect := cmd.ClipRect()
				gl.Scissor(int32(clipRect.X), int32(fbHeight)-int32(clipRect.W), int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))
				gl.DrawElements(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, gl.PtrOffset(indexBufferOffset))
			}
			indexBufferOffset += cmd.ElementCount() * indexSize
		}
	}
	gl.DeleteVertexArrays(1, &vaoHandle)

	gl.UseProgram(uint32(lastProgram))
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	gl.BindVertexArray(uint32(lastVertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(lastArrayBuffer))
	restore(gl.BLEND, lastEnableBlend)
	restore(gl.CULL_FACE, lastEnableCullFace)
	restore(gl.DEPTH_TEST, lastEnableDepthTest)
	restore(gl.SCISSOR_TEST, lastEnableScissorTest)
	gl.Viewport(lastViewport[0], lastViewport[1], lastViewport[2], lastViewport[3])
}

func restore(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func (r *OpenGL3) createDeviceObjects() error {
	r.shader = renderer.NewShader("imgui", imguiVertexShader, imguiFragmentShader)
	if err := r.shader.Compile(); err != nil {
		return err
	}
	program := r.shader.Program()

	r.attribLocationTex = gl.GetUniformLocation(program, gl.Str("Texture\x00"))
	r.attribLocationProjMtx = gl.GetUniformLocation(program, gl.Str("ProjMtx\x00"))
	r.attribLocationPosition = gl.GetAttribLocation(program, gl.Str("Position\x00"))
	r.attribLocationUV = gl.GetAttribLocation(program, gl.Str("UV\x00"))
	r.attribLocationColor = gl.GetAttribLocation(program, gl.Str("Color\x00"))

	gl.GenBuffers(1, &r.vboHandle)
	gl.GenBuffers(1, &r.elementsHandle)

	r.createFontsTexture()
	logger.Log.Debug("ImGui renderer ready", zap.Uint32("program", program))
	return nil
}

func (r *OpenGL3) createFontsTexture() {
	io := imgui.CurrentIO()
	image := io.Fonts().TextureDataAlpha8()

	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height),
		0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)

	io.Fonts().SetTextureID(imgui.TextureID(r.fontTexture))
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
}
