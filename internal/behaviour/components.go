package behaviour

import (
	"GopherSky/internal/sky"

	"github.com/go-gl/mathgl/mgl32"
)

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeScript ComponentType = "Script"
	ComponentTypeLight  ComponentType = "Light"
	ComponentTypeSky    ComponentType = "Sky"
	ComponentTypeCustom ComponentType = "Custom"
)

const (
	LightComponentName = "LightComponent"
	SkyControllerName  = "SkyController"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// LightComponent marks its GameObject as a light. Only directional lights
// matter to the sky; their orientation comes from the object's transform.
type LightComponent struct {
	BaseComponent
	LightMode string // "directional", "point", "spot"
	Color     [3]float32
	Intensity float32
}

func NewLightComponent() *LightComponent {
	return &LightComponent{
		LightMode: "directional",
		Color:     [3]float32{1.0, 1.0, 1.0},
		Intensity: 1.0,
	}
}

func (l *LightComponent) GetComponentType() ComponentType {
	return ComponentTypeLight
}

func (l *LightComponent) GetTypeName() string {
	return LightComponentName
}

// Rotation implements sky.LightSource. A detached light has identity
// orientation.
func (l *LightComponent) Rotation() mgl32.Quat {
	obj := l.GetGameObject()
	if obj == nil || obj.Transform == nil {
		return mgl32.QuatIdent()
	}
	return obj.Transform.WorldRotation()
}

var _ sky.LightSource = (*LightComponent)(nil)

// ScriptComponent is a wrapper for user scripts to identify them as scripts
type ScriptComponent struct {
	BaseComponent
	ScriptName string
	Script     Component // The actual script implementation
}

func NewScriptComponent(scriptName string, script Component) *ScriptComponent {
	return &ScriptComponent{
		ScriptName: scriptName,
		Script:     script,
	}
}

func (s *ScriptComponent) GetComponentType() ComponentType {
	return ComponentTypeScript
}

func (s *ScriptComponent) GetTypeName() string {
	return s.ScriptName
}

func (s *ScriptComponent) Awake() {
	if s.Script != nil {
		s.Script.SetGameObject(s.GetGameObject())
		s.Script.SetEnabled(true)
		s.Script.Awake()
	}
}

func (s *ScriptComponent) Start() {
	if s.Script != nil {
		s.Script.Start()
	}
}

func (s *ScriptComponent) Update() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.Update()
	}
}

func (s *ScriptComponent) FixedUpdate() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.FixedUpdate()
	}
}

func (s *ScriptComponent) OnDestroy() {
	if s.Script != nil {
		s.Script.OnDestroy()
	}
}

// Helper function to get component type name
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// BuiltInComponents returns a list of built-in component types that can be added
func BuiltInComponents() []string {
	return []string{
		LightComponentName,
		SkyControllerName,
	}
}

// CreateBuiltInComponent creates a built-in component by name
func CreateBuiltInComponent(name string) Component {
	switch name {
	case LightComponentName:
		return NewLightComponent()
	case SkyControllerName:
		return NewSkyController()
	default:
		return nil
	}
}

// DirectionalLights lists active objects carrying a directional light, the
// candidates for a sky's main light.
func DirectionalLights(cm *ComponentManager) []*GameObject {
	var out []*GameObject
	for _, comp := range cm.FindComponents(LightComponentName) {
		if l, ok := comp.(*LightComponent); ok && l.LightMode == "directional" {
			out = append(out, l.GetGameObject())
		}
	}
	return out
}
