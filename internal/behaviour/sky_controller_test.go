package behaviour

import (
	"errors"
	"strings"
	"testing"

	"GopherSky/internal/sky"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeMaterial struct {
	floats   map[string]float32
	matrices map[string]mgl32.Mat4
	textures map[string]*sky.Texture
	writes   int
}

func newFakeMaterial() *fakeMaterial {
	return &fakeMaterial{
		floats:   map[string]float32{},
		matrices: map[string]mgl32.Mat4{},
		textures: map[string]*sky.Texture{},
	}
}

func (m *fakeMaterial) SetFloat(name string, v float32)     { m.floats[name] = v; m.writes++ }
func (m *fakeMaterial) SetColor(name string, _ mgl32.Vec4)  { m.writes++ }
func (m *fakeMaterial) SetVector(name string, _ mgl32.Vec4) { m.writes++ }
func (m *fakeMaterial) SetMatrix(name string, v mgl32.Mat4) { m.matrices[name] = v; m.writes++ }
func (m *fakeMaterial) SetTexture(name string, t *sky.Texture) {
	m.textures[name] = t
	m.writes++
}

type fakeLoader struct {
	loads    map[string]int
	fail     map[string]bool
	released []uint32
	nextID   uint32
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{loads: map[string]int{}, fail: map[string]bool{}, nextID: 10}
}

func (l *fakeLoader) load(path string) (uint32, error) {
	l.loads[path]++
	if l.fail[path] {
		return 0, errors.New("no such texture")
	}
	l.nextID++
	return l.nextID, nil
}

func (l *fakeLoader) LoadTexture(path string) (uint32, error) { return l.load(path) }
func (l *fakeLoader) LoadCubemap(dir string) (uint32, error)  { return l.load("cube:" + dir) }
func (l *fakeLoader) ReleaseTexture(id uint32)                { l.released = append(l.released, id) }

func newSkyObject(mode ControllerMode) (*GameObject, *SkyController, *fakeMaterial) {
	obj := NewGameObject("Sky")
	ctrl := NewSkyController()
	ctrl.Mode = mode
	mat := newFakeMaterial()
	ctrl.Material = mat
	obj.AddComponent(ctrl)
	return obj, ctrl, mat
}

func TestSkyControllerAppliesOnStart(t *testing.T) {
	cm := NewComponentManager()
	obj, ctrl, mat := newSkyObject(ModeEdit)

	cm.RegisterGameObject(obj)

	if ctrl.Refreshes() != 1 {
		t.Fatalf("Expected 1 refresh on start, got %d", ctrl.Refreshes())
	}
	if mat.floats[sky.UniformKr] != 8400 {
		t.Errorf("Expected _Kr 8400, got %f", mat.floats[sky.UniformKr])
	}
	if mat.writes != len(sky.UniformNames) {
		t.Errorf("Expected %d writes, got %d", len(sky.UniformNames), mat.writes)
	}
}

func TestSkyControllerPlayModeRefreshesEveryFrame(t *testing.T) {
	cm := NewComponentManager()
	obj, ctrl, _ := newSkyObject(ModePlay)
	cm.RegisterGameObject(obj)

	for i := 0; i < 3; i++ {
		cm.UpdateAll()
	}

	if ctrl.Refreshes() != 4 {
		t.Errorf("Expected 4 refreshes (start + 3 frames), got %d", ctrl.Refreshes())
	}
}

func TestSkyControllerEditModeRefreshesOnChange(t *testing.T) {
	cm := NewComponentManager()
	obj, ctrl, mat := newSkyObject(ModeEdit)
	cm.RegisterGameObject(obj)

	cm.UpdateAll()
	cm.UpdateAll()
	if ctrl.Refreshes() != 1 {
		t.Fatalf("Unchanged config should not refresh, got %d refreshes", ctrl.Refreshes())
	}

	ctrl.Config.SetExposure(3)
	cm.UpdateAll()
	if ctrl.Refreshes() != 2 {
		t.Fatalf("Edit should trigger a refresh, got %d", ctrl.Refreshes())
	}
	if mat.floats[sky.UniformExposure] != -3 {
		t.Errorf("Expected _Exposure -3, got %f", mat.floats[sky.UniformExposure])
	}

	cm.UpdateAll()
	if ctrl.Refreshes() != 2 {
		t.Errorf("Expected no further refresh, got %d", ctrl.Refreshes())
	}

	ctrl.MarkDirty()
	cm.UpdateAll()
	if ctrl.Refreshes() != 3 {
		t.Errorf("MarkDirty should force a refresh, got %d", ctrl.Refreshes())
	}
}

func TestSkyControllerEditModeTracksLight(t *testing.T) {
	cm := NewComponentManager()
	sun := NewGameObject("Sun")
	sun.AddComponent(NewLightComponent())
	cm.RegisterGameObject(sun)

	obj, ctrl, mat := newSkyObject(ModeEdit)
	ctrl.MainLight = sun
	cm.RegisterGameObject(obj)
	cm.UpdateAll()
	before := ctrl.Refreshes()

	sun.Transform.Rotate(mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(90))
	cm.UpdateAll()

	if ctrl.Refreshes() != before+1 {
		t.Fatalf("Light rotation should trigger a refresh")
	}
	m := mat.matrices[sky.UniformLightSourceDirectionMatrix]
	if m.ApproxEqual(sky.DefaultRotation) {
		t.Error("Direction matrix should follow the light")
	}

	sun.Active = false
	cm.UpdateAll()
	if !mat.matrices[sky.UniformLightSourceDirectionMatrix].ApproxEqual(sky.DefaultRotation) {
		t.Error("Inactive light should fall back to the identity matrix")
	}
}

func TestSkyControllerMissingLightUsesIdentity(t *testing.T) {
	_, ctrl, mat := newSkyObject(ModePlay)

	ctrl.Refresh()

	if mat.matrices[sky.UniformLightSourceDirectionMatrix] != sky.DefaultRotation {
		t.Error("Expected identity light matrix without a main light")
	}
}

func TestSkyControllerWithoutMaterial(t *testing.T) {
	ctrl := NewSkyController()

	if ctrl.Refresh() {
		t.Error("Refresh without material should report false")
	}
	if ctrl.Refreshes() != 0 {
		t.Error("Refresh without material should not count")
	}
}

func TestSkyControllerResolvesTexturesOnce(t *testing.T) {
	_, ctrl, mat := newSkyObject(ModePlay)
	loader := newFakeLoader()
	ctrl.Textures = loader
	ctrl.Config.SetStarFieldTexture("stars")
	ctrl.Config.SetCloudTexture("noise.png")

	ctrl.Refresh()
	ctrl.Refresh()

	if loader.loads["cube:stars"] != 1 || loader.loads["noise.png"] != 1 {
		t.Errorf("Each texture should load once, got %v", loader.loads)
	}
	if !mat.textures[sky.UniformStarFieldTexture].Resolved() {
		t.Error("Star field texture should be resolved")
	}
	if mat.textures[sky.UniformLightSourceTexture] != nil {
		t.Error("Unset light source texture should pass through as nil")
	}
}

func TestSkyControllerTextureFailureIsNotRetried(t *testing.T) {
	_, ctrl, mat := newSkyObject(ModePlay)
	loader := newFakeLoader()
	loader.fail["missing.png"] = true
	ctrl.Textures = loader
	ctrl.Config.SetLightSourceTexture("missing.png")

	ctrl.Refresh()
	ctrl.Refresh()

	if loader.loads["missing.png"] != 1 {
		t.Errorf("Failed texture should be tried once, got %d", loader.loads["missing.png"])
	}
	if mat.textures[sky.UniformLightSourceTexture].Handle() != 0 {
		t.Error("Failed texture should render as absent")
	}

	ctrl.Config.SetLightSourceTexture("sun.png")
	ctrl.Refresh()
	if !mat.textures[sky.UniformLightSourceTexture].Resolved() {
		t.Error("A new path should be loaded")
	}
}

func TestSkyControllerRetriesFailedPathWithNewTexture(t *testing.T) {
	_, ctrl, mat := newSkyObject(ModePlay)
	loader := newFakeLoader()
	loader.fail["sun.png"] = true
	ctrl.Textures = loader
	ctrl.Config.SetLightSourceTexture("sun.png")
	ctrl.Refresh()

	loader.fail["sun.png"] = false
	ctrl.Config.LightSourceTexture = sky.NewTexture("sun.png", sky.Texture2D)
	ctrl.Refresh()

	if loader.loads["sun.png"] != 2 {
		t.Errorf("A fresh texture should be tried again, got %d loads", loader.loads["sun.png"])
	}
	if !mat.textures[sky.UniformLightSourceTexture].Resolved() {
		t.Error("Retried texture should be resolved")
	}
}

func TestSkyControllerReleasesReplacedTexture(t *testing.T) {
	_, ctrl, _ := newSkyObject(ModePlay)
	loader := newFakeLoader()
	ctrl.Textures = loader
	ctrl.Config.SetCloudTexture("a.png")
	ctrl.Refresh()
	old := ctrl.Config.CloudTexture

	ctrl.Config.SetCloudTexture("b.png")
	ctrl.Refresh()

	if len(loader.released) != 1 || loader.released[0] != 11 {
		t.Fatalf("Expected handle 11 released, got %v", loader.released)
	}
	if old.Resolved() {
		t.Error("Released texture should no longer report a handle")
	}
	if !ctrl.Config.CloudTexture.Resolved() {
		t.Error("Replacement should be resolved")
	}

	ctrl.Config.CloudTexture = nil
	ctrl.Refresh()
	if len(loader.released) != 2 || loader.released[1] != 12 {
		t.Errorf("Clearing the texture should release it, got %v", loader.released)
	}
}

func TestSkyControllerReleasesOnDestroy(t *testing.T) {
	cm := NewComponentManager()
	obj, ctrl, _ := newSkyObject(ModePlay)
	loader := newFakeLoader()
	ctrl.Textures = loader
	ctrl.Config.SetStarFieldTexture("stars")
	ctrl.Config.SetCloudTexture("noise.png")
	cm.RegisterGameObject(obj)

	cm.Clear()

	if len(loader.released) != 2 {
		t.Errorf("Expected both handles released, got %v", loader.released)
	}
}

func TestSkyControllerLoadsDecodedPresetTextures(t *testing.T) {
	cfg, err := sky.DecodeConfiguration(strings.NewReader(
		`{"star_field_texture": {"path": "skies/milkyway"}, "cloud_texture": {"path": ""}}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	cm := NewComponentManager()
	obj, ctrl, _ := newSkyObject(ModePlay)
	loader := newFakeLoader()
	ctrl.Textures = loader
	ctrl.Config = cfg

	cm.RegisterGameObject(obj)

	if loader.loads["cube:skies/milkyway"] != 1 {
		t.Errorf("Star field should load as a cubemap, got %v", loader.loads)
	}
	if _, ok := loader.loads[""]; ok {
		t.Error("An empty texture path should not reach the loader")
	}
}

func TestSkyControllerAwakeFillsDefaults(t *testing.T) {
	ctrl := &SkyController{}
	obj := NewGameObject("Sky")

	obj.AddComponent(ctrl)

	if ctrl.Config == nil {
		t.Fatal("Awake should create a default configuration")
	}
	if ctrl.Mode != ModePlay {
		t.Errorf("Expected play mode by default, got %s", ctrl.Mode)
	}
}
