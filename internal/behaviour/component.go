package behaviour

import (
	"GopherSky/internal/sky"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Component is the base interface for all components
// Components can be attached to game objects
type Component interface {
	// Lifecycle methods
	Awake()       // Called when component is first created
	Start()       // Called before first Update (after all Awakes)
	Update()      // Called every frame
	FixedUpdate() // Called at fixed time intervals
	OnDestroy()   // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods
// User scripts can embed this to only override methods they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()       {}
func (c *BaseComponent) Start()       {}
func (c *BaseComponent) Update()      {}
func (c *BaseComponent) FixedUpdate() {}
func (c *BaseComponent) OnDestroy()   {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// GameObject represents an object in the scene
type GameObject struct {
	ID         uuid.UUID
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
}

// Transform component
type Transform struct {
	BaseComponent
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Parent   *Transform
}

func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

// Rotate applies a local rotation of angle radians about axis.
func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) {
	rotation := mgl32.QuatRotate(angle, axis)
	t.Rotation = t.Rotation.Mul(rotation).Normalize()
}

func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

// SetEulerAngles sets the rotation from degrees, in the same axis order the
// sky uses for its star field.
func (t *Transform) SetEulerAngles(deg mgl32.Vec3) {
	t.Rotation = sky.EulerToQuat(deg)
}

// WorldRotation composes the rotations of every parent.
func (t *Transform) WorldRotation() mgl32.Quat {
	rot := t.Rotation
	for p := t.Parent; p != nil; p = p.Parent {
		rot = p.Rotation.Mul(rot)
	}
	return rot
}

func (t *Transform) Forward() mgl32.Vec3 {
	return t.WorldRotation().Rotate(mgl32.Vec3{0, 0, -1})
}

func NewGameObject(name string) *GameObject {
	obj := &GameObject{
		ID:         uuid.New(),
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform: &Transform{
			Position: mgl32.Vec3{0, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	}
	obj.Transform.SetGameObject(obj)
	return obj
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

// GetComponent returns the first component whose type name matches.
func (obj *GameObject) GetComponent(typeName string) Component {
	for _, comp := range obj.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			return comp
		}
	}
	return nil
}

// GetComponents returns every component whose type name matches.
func (obj *GameObject) GetComponents(typeName string) []Component {
	var result []Component
	for _, comp := range obj.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			result = append(result, comp)
		}
	}
	return result
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

func (obj *GameObject) internalUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update()
		}
	}
}

func (obj *GameObject) internalFixedUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.FixedUpdate()
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
