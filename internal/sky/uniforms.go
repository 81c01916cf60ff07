package sky

import "github.com/go-gl/mathgl/mgl32"

// Uniform names expected by the procedural sky shader. Changing any of these
// breaks compatibility with the shader source.
const (
	UniformKr             = "_Kr"
	UniformRayleighColor  = "_RayleighColor"
	UniformMieColor       = "_MieColor"
	UniformScattering     = "_Scattering"
	UniformLuminanceColor = "_LuminanceColor"
	UniformLuminance      = "_Luminance"
	UniformIsDay          = "_IsDay"

	UniformLightSourceDirectionMatrix  = "_LightSourceDirectionMatrix"
	UniformLightSourceTexture          = "_LightSourceTexture"
	UniformLightSourceTextureSize      = "_LightSourceTextureSize"
	UniformLightSourceTextureIntensity = "_LightSourceTextureIntensity"
	UniformLightSourceTextureColor     = "_LightSourceTextureColor"

	UniformStarFieldTexture        = "_StarFieldTexture"
	UniformStarFieldRotationMatrix = "_StarFieldRotationMatrix"
	UniformStarFieldIntensity      = "_StarFieldIntensity"
	UniformStarFieldColor          = "_StarFieldColor"

	UniformCloudTexture  = "_CloudTexture"
	UniformCloudDensity  = "_CloudDensity"
	UniformCloudAltitude = "_CloudAltitude"
	UniformCloudSpeed    = "_CloudSpeed"
	UniformCloudColor1   = "_CloudColor1"
	UniformCloudColor2   = "_CloudColor2"
	UniformCloudEdge1    = "_CloudEdge1"
	UniformCloudEdge2    = "_CloudEdge2"

	UniformExposure = "_Exposure"
)

// UniformNames lists every uniform Sync emits, in emission order.
var UniformNames = []string{
	UniformKr,
	UniformRayleighColor,
	UniformMieColor,
	UniformScattering,
	UniformLuminanceColor,
	UniformLuminance,
	UniformIsDay,
	UniformLightSourceDirectionMatrix,
	UniformLightSourceTexture,
	UniformLightSourceTextureSize,
	UniformLightSourceTextureIntensity,
	UniformLightSourceTextureColor,
	UniformStarFieldTexture,
	UniformStarFieldRotationMatrix,
	UniformStarFieldIntensity,
	UniformStarFieldColor,
	UniformCloudTexture,
	UniformCloudDensity,
	UniformCloudAltitude,
	UniformCloudSpeed,
	UniformCloudColor1,
	UniformCloudColor2,
	UniformCloudEdge1,
	UniformCloudEdge2,
	UniformExposure,
}

// UniformKind selects which field of a Uniform carries the value.
type UniformKind int

const (
	KindFloat UniformKind = iota
	KindColor
	KindVector
	KindMatrix
	KindTexture
)

func (k UniformKind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindColor:
		return "color"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	case KindTexture:
		return "texture"
	}
	return "unknown"
}

// Uniform is one named shader input. Colors are already linear.
type Uniform struct {
	Name    string
	Kind    UniformKind
	Float   float32
	Vector  mgl32.Vec4
	Matrix  mgl32.Mat4
	Texture *Texture
}

// UniformSet is an ordered name -> value mapping.
type UniformSet []Uniform

// Get looks a uniform up by name.
func (s UniformSet) Get(name string) (Uniform, bool) {
	for _, u := range s {
		if u.Name == name {
			return u, true
		}
	}
	return Uniform{}, false
}

// Float returns the scalar value of name, or 0 when absent.
func (s UniformSet) Float(name string) float32 {
	u, _ := s.Get(name)
	return u.Float
}

// Vector returns the vector or color value of name.
func (s UniformSet) Vector(name string) mgl32.Vec4 {
	u, _ := s.Get(name)
	return u.Vector
}

// Matrix returns the matrix value of name.
func (s UniformSet) Matrix(name string) mgl32.Mat4 {
	u, _ := s.Get(name)
	return u.Matrix
}

// Texture returns the texture reference of name, nil when unset.
func (s UniformSet) Texture(name string) *Texture {
	u, _ := s.Get(name)
	return u.Texture
}

// Names returns the uniform names in order.
func (s UniformSet) Names() []string {
	names := make([]string, len(s))
	for i, u := range s {
		names[i] = u.Name
	}
	return names
}

func (s *UniformSet) float(name string, v float32) {
	*s = append(*s, Uniform{Name: name, Kind: KindFloat, Float: v})
}

func (s *UniformSet) color(name string, c Color) {
	*s = append(*s, Uniform{Name: name, Kind: KindColor, Vector: c.Linear().Vec4()})
}

func (s *UniformSet) vector(name string, v mgl32.Vec4) {
	*s = append(*s, Uniform{Name: name, Kind: KindVector, Vector: v})
}

func (s *UniformSet) matrix(name string, m mgl32.Mat4) {
	*s = append(*s, Uniform{Name: name, Kind: KindMatrix, Matrix: m})
}

func (s *UniformSet) texture(name string, t *Texture) {
	*s = append(*s, Uniform{Name: name, Kind: KindTexture, Texture: t})
}
