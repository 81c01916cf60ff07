package engine

import (
	"GopherSky/internal/behaviour"
	"GopherSky/internal/logger"
	"GopherSky/internal/renderer"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// fixedUpdateEvery is the number of frames between FixedUpdate passes.
const fixedUpdateEvery = 2

// Gopher owns the window, the GL context and the sky renderer, and drives
// the scene's component lifecycle once per frame.
type Gopher struct {
	Width  int32
	Height int32
	Title  string

	Camera   *renderer.Camera
	Skybox   *renderer.Skybox
	Textures *renderer.TextureManager
	Scene    *behaviour.ComponentManager

	// EnableCameraInput lets the right mouse button drag the view. The
	// editor turns it off while imgui has the mouse.
	EnableCameraInput bool

	window            *glfw.Window
	onSetupCallback   func(g *Gopher) error
	onRenderCallback  func(deltaTime float64)
	onCleanupCallback func()
	frameTrackId      int
	startTime         float64

	lastX, lastY float64
	firstMouse   bool
}

func NewGopher() *Gopher {
	logger.Init()
	logger.Log.Info("GopherSky initializing...")
	return &Gopher{
		Width:             1280,
		Height:            720,
		Title:             "GopherSky",
		Scene:             behaviour.GlobalComponentManager,
		EnableCameraInput: true,
		firstMouse:        true,
	}
}

// SetOnSetupCallback runs once after the GL context, skybox and texture
// manager exist and before the first frame. An error aborts Render.
func (gopher *Gopher) SetOnSetupCallback(callback func(g *Gopher) error) {
	gopher.onSetupCallback = callback
}

// SetOnRenderCallback sets a callback that will be called each frame after the sky is drawn
func (gopher *Gopher) SetOnRenderCallback(callback func(deltaTime float64)) {
	gopher.onRenderCallback = callback
}

// SetOnCleanupCallback runs after the last frame while the GL context is
// still current.
func (gopher *Gopher) SetOnCleanupCallback(callback func()) {
	gopher.onCleanupCallback = callback
}

// Render opens the window at x,y and blocks until it is closed.
func (gopher *Gopher) Render(x, y int) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(gopher.Width), int(gopher.Height), gopher.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	gopher.window = window
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}
	logger.Log.Info("OpenGL ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	if x >= 0 && y >= 0 {
		window.SetPos(x, y)
	}
	applyWindowTheme(window)

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gopher.Camera = renderer.NewDefaultCamera(gopher.Width, gopher.Height)
	gopher.Textures = renderer.NewTextureManager()

	var unwind renderer.Unwind
	defer unwind.Unwind()
	unwind.Add(gopher.Textures.Clear)

	gopher.Skybox, err = renderer.CreateSkybox()
	if err != nil {
		return err
	}
	unwind.Add(gopher.Skybox.Cleanup)
	gopher.Skybox.Material.LogMissingUniforms()

	window.SetCursorPosCallback(gopher.mouseCallback)
	window.SetKeyCallback(gopher.keyCallback)

	if gopher.onSetupCallback != nil {
		if err := gopher.onSetupCallback(gopher); err != nil {
			return fmt.Errorf("scene setup: %w", err)
		}
	}

	// RenderLoop releases everything through cleanup.
	unwind.Discard()
	gopher.RenderLoop()
	return nil
}

func (gopher *Gopher) RenderLoop() {
	gopher.startTime = glfw.GetTime()
	lastTime := gopher.startTime

	for !gopher.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		gopher.syncWindowSize()

		behaviour.SetDeltaTime(float32(deltaTime))
		if gopher.frameTrackId >= fixedUpdateEvery {
			gopher.Scene.FixedUpdateAll()
			gopher.frameTrackId = 0
		}
		gopher.Scene.UpdateAll()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gopher.Skybox.Render(gopher.Camera, float32(currentTime-gopher.startTime))

		if gopher.onRenderCallback != nil {
			gopher.onRenderCallback(deltaTime)
		}

		gopher.window.SwapBuffers()
		gopher.frameTrackId++
		glfw.PollEvents()
	}
	gopher.cleanup()
}

// GetWindow returns the GLFW window (for editor/advanced use)
func (gopher *Gopher) GetWindow() *glfw.Window {
	return gopher.window
}

func (gopher *Gopher) syncWindowSize() {
	w, h := gopher.window.GetSize()
	if int32(w) == gopher.Width && int32(h) == gopher.Height {
		return
	}
	gopher.Width, gopher.Height = int32(w), int32(h)
	fbWidth, fbHeight := gopher.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gopher.Camera.SetViewport(gopher.Width, gopher.Height)
	logger.Log.Debug("Viewport resized", zap.Int32("width", gopher.Width), zap.Int32("height", gopher.Height))
}

func (gopher *Gopher) cleanup() {
	if gopher.onCleanupCallback != nil {
		gopher.onCleanupCallback()
	}
	gopher.Scene.Clear()
	if gopher.Textures != nil {
		stats := gopher.Textures.GetStats()
		logger.Log.Info("Releasing textures",
			zap.Int("total", stats.TotalTextures),
			zap.Int("cacheHits", stats.CacheHits),
			zap.Int("active", stats.ActiveTextures))
		gopher.Textures.Clear()
	}
	if gopher.Skybox != nil {
		gopher.Skybox.Cleanup()
	}
}

func (gopher *Gopher) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

// Mouse callback function
func (gopher *Gopher) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	if gopher.EnableCameraInput && w.GetAttrib(glfw.Focused) == glfw.True && w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		if gopher.firstMouse {
			gopher.lastX = xpos
			gopher.lastY = ypos
			gopher.firstMouse = false
			return
		}

		xoffset := xpos - gopher.lastX
		yoffset := gopher.lastY - ypos // Reversed since y-coordinates go from bottom to top
		gopher.lastX = xpos
		gopher.lastY = ypos

		gopher.Camera.Look(float32(xoffset), float32(yoffset))
	} else {
		gopher.firstMouse = true
	}
}
