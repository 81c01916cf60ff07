package behaviour

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj == nil {
		t.Fatal("NewGameObject returned nil")
	}

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if !obj.Active {
		t.Error("New GameObject should be active by default")
	}

	if obj.Transform == nil {
		t.Fatal("Transform should not be nil")
	}

	if obj.Transform.Position != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected position (0,0,0), got %v", obj.Transform.Position)
	}

	if obj.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", obj.Transform.Scale)
	}
}

func TestTransformTranslate(t *testing.T) {
	transform := &Transform{
		Position: mgl32.Vec3{5, 5, 5},
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	transform.Translate(mgl32.Vec3{1, 2, 3})

	expected := mgl32.Vec3{6, 7, 8}
	if transform.Position != expected {
		t.Errorf("Expected position %v, got %v", expected, transform.Position)
	}
}

type MockComponent struct {
	BaseComponent
	startCalled  bool
	updateCalled bool
	fixedCalled  bool
}

func (m *MockComponent) Start() {
	m.startCalled = true
}

func (m *MockComponent) Update() {
	m.updateCalled = true
}

func (m *MockComponent) FixedUpdate() {
	m.fixedCalled = true
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)

	if len(obj.Components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.Components))
	}

	if comp.GetGameObject() != obj {
		t.Error("Component's GameObject reference not set correctly")
	}
}

func TestGameObjectRemoveComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)
	obj.RemoveComponent(comp)

	if len(obj.Components) != 0 {
		t.Errorf("Expected 0 components after removal, got %d", len(obj.Components))
	}
}

func TestNewGameObjectHasUniqueID(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("B")

	if a.ID == b.ID {
		t.Error("GameObjects should get distinct IDs")
	}
}

func TestGameObjectGetComponentByTypeName(t *testing.T) {
	obj := NewGameObject("Sun")
	obj.AddComponent(&MockComponent{})
	light := NewLightComponent()
	obj.AddComponent(light)

	if got := obj.GetComponent(LightComponentName); got != light {
		t.Errorf("Expected the light component, got %v", got)
	}

	if got := obj.GetComponent(SkyControllerName); got != nil {
		t.Errorf("Expected nil for a missing component, got %v", got)
	}
}

func TestTransformWorldRotationComposesParents(t *testing.T) {
	parent := &Transform{Rotation: mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})}
	child := &Transform{Rotation: mgl32.QuatIdent(), Parent: parent}

	forward := child.Forward()

	if !forward.ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("Expected forward (-1,0,0), got %v", forward)
	}
}

func TestTransformSetEulerAngles(t *testing.T) {
	transform := &Transform{}

	transform.SetEulerAngles(mgl32.Vec3{-90, 0, 0})

	if !transform.Forward().ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, 1e-5) {
		t.Errorf("Expected forward to point down, got %v", transform.Forward())
	}
}

func TestLightComponentRotationFollowsTransform(t *testing.T) {
	obj := NewGameObject("Sun")
	light := NewLightComponent()
	obj.AddComponent(light)

	obj.Transform.Rotate(mgl32.Vec3{1, 0, 0}, mgl32.DegToRad(-45))

	if !light.Rotation().ApproxEqual(obj.Transform.Rotation) {
		t.Errorf("Light rotation %v should match transform %v", light.Rotation(), obj.Transform.Rotation)
	}

	detached := NewLightComponent()
	if !detached.Rotation().ApproxEqual(mgl32.QuatIdent()) {
		t.Error("Detached light should report identity")
	}
}
