package main

import (
	"GopherSky/internal/behaviour"
	"GopherSky/internal/editor"
	"GopherSky/internal/editor/platforms"
	"GopherSky/internal/editor/renderers"
	"GopherSky/internal/engine"
	"GopherSky/internal/logger"
	"GopherSky/internal/sky"
	"GopherSky/scripts"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"
)

// viewer holds the scene and the optional inspector UI.
type viewer struct {
	opts  options
	cfg   *sky.SkyConfiguration
	state *editor.EditorState

	eng       *engine.Gopher
	sun       *behaviour.GameObject
	sky       *behaviour.SkyController
	inspector *editor.SkyInspector

	context       *imgui.Context
	platform      *platforms.GLFW
	imguiRenderer *renderers.OpenGL3
}

func newViewer(opts options, cfg *sky.SkyConfiguration, state *editor.EditorState) *viewer {
	if state == nil {
		state = editor.NewEditorState()
	}
	return &viewer{
		opts:      opts,
		cfg:       cfg,
		state:     state,
		inspector: editor.NewSkyInspector(state),
	}
}

// setup builds the scene: a directional sun and a sky driven by it.
func (v *viewer) setup(g *engine.Gopher) error {
	v.eng = g
	g.SetOnCleanupCallback(v.releaseGL)

	v.sun = behaviour.NewGameObject("Sun")
	v.sun.Tag = "MainLight"
	v.sun.AddComponent(behaviour.NewLightComponent())
	v.sun.Transform.SetEulerAngles(mgl32.Vec3{-35, 30, 0})

	skyObject := behaviour.NewGameObject("Sky")
	v.sky = behaviour.NewSkyController()
	v.sky.Config = v.cfg
	v.sky.MainLight = v.sun
	v.sky.Material = g.Skybox.Material
	v.sky.Textures = g.Textures
	if v.opts.edit {
		v.sky.Mode = behaviour.ModeEdit
	}
	skyObject.AddComponent(v.sky)

	if v.opts.sunSpeed != 0 {
		if cycle, ok := behaviour.CreateScript(scripts.SunCycleScriptName).(*scripts.SunCycleScript); ok {
			cycle.DegreesPerSecond = float32(v.opts.sunSpeed)
			cycle.Sky = v.sky
			v.sun.AddComponent(behaviour.NewScriptComponent(scripts.SunCycleScriptName, cycle))
		}
	}

	g.Scene.RegisterGameObject(v.sun)
	g.Scene.RegisterGameObject(skyObject)

	logger.Log.Info("Sky scene ready",
		zap.String("mode", v.sky.Mode.String()),
		zap.String("preset", v.opts.preset),
		zap.String("sky", skyObject.ID.String()))

	if v.opts.ui {
		return v.initImGui()
	}
	return nil
}

func (v *viewer) initImGui() error {
	v.context = imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")

	var err error
	v.platform, err = platforms.NewGLFWFromExistingWindow(v.eng.GetWindow(), io)
	if err != nil {
		return fmt.Errorf("imgui platform: %w", err)
	}
	v.imguiRenderer, err = renderers.NewOpenGL3(io)
	if err != nil {
		return fmt.Errorf("imgui renderer: %w", err)
	}
	logger.Log.Info("ImGui initialized")
	return nil
}

func (v *viewer) frame(deltaTime float64) {
	if v.platform == nil || v.imguiRenderer == nil {
		return
	}

	v.platform.NewFrame()
	imgui.NewFrame()

	v.drawInspector()

	io := imgui.CurrentIO()
	v.eng.EnableCameraInput = !io.WantCaptureMouse()

	imgui.Render()
	v.imguiRenderer.Render(v.platform.DisplaySize(), v.platform.FramebufferSize(), imgui.RenderedDrawData())
}

func (v *viewer) drawInspector() {
	if !v.state.ShowInspector {
		imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionFirstUseEver, imgui.Vec2{})
		if imgui.BeginV("##reopen", nil, imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsNoResize|imgui.WindowFlagsAlwaysAutoResize) {
			if imgui.Button("Sky Inspector") {
				v.state.ShowInspector = true
			}
		}
		imgui.End()
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 420, Y: 640}, imgui.ConditionFirstUseEver)
	if imgui.BeginV("Sky Inspector", &v.state.ShowInspector, 0) {
		editMode := v.sky.Mode == behaviour.ModeEdit
		if imgui.Checkbox("Edit mode (apply on change)", &editMode) {
			v.sky.Mode = behaviour.ModePlay
			if editMode {
				v.sky.Mode = behaviour.ModeEdit
			}
		}
		imgui.Text(fmt.Sprintf("Uniform refreshes: %d", v.sky.Refreshes()))
		imgui.Separator()

		v.inspector.Draw(v.sky, behaviour.DirectionalLights(v.eng.Scene))
	}
	imgui.End()
}

// releaseGL runs while the GL context is still alive.
func (v *viewer) releaseGL() {
	if v.imguiRenderer != nil {
		v.imguiRenderer.Dispose()
		v.imguiRenderer = nil
	}
}

func (v *viewer) shutdown() {
	if v.context != nil {
		v.context.Destroy()
		v.context = nil
	}

	if err := editor.SaveEditorState(v.opts.statePath, v.state); err != nil {
		logger.Log.Warn("Failed to save editor state", zap.Error(err))
	}

	if v.opts.savePath != "" {
		if err := sky.SavePreset(v.opts.savePath, v.cfg); err != nil {
			logger.Log.Error("Failed to save sky preset", zap.String("path", v.opts.savePath), zap.Error(err))
			return
		}
		logger.Log.Info("Sky preset saved", zap.String("path", v.opts.savePath))
	}
}
