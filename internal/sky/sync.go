package sky

import "github.com/go-gl/mathgl/mgl32"

const (
	krScale           = 1000
	nightScattering   = 0.1
	cloudDensityStart = 25
	cloudDensityEnd   = 0
)

// Sync maps a configuration snapshot to the uniforms of the sky shader.
// light may be nil, in which case DefaultRotation is used for the light
// direction. Sync does not retain or modify anything.
func Sync(cfg SkyConfiguration, light LightSource) UniformSet {
	set := make(UniformSet, 0, len(UniformNames))

	scattering := cfg.Scattering
	isDay := float32(1)
	if !cfg.IsDay {
		scattering *= nightScattering
		isDay = 0
	}

	set.float(UniformKr, cfg.Kr*krScale)
	set.color(UniformRayleighColor, cfg.RayleighColor)
	set.color(UniformMieColor, cfg.MieColor)
	set.float(UniformScattering, scattering)
	set.color(UniformLuminanceColor, cfg.LuminanceColor)
	set.float(UniformLuminance, cfg.Luminance)
	set.float(UniformIsDay, isDay)

	set.matrix(UniformLightSourceDirectionMatrix, lightMatrix(light))
	set.texture(UniformLightSourceTexture, cfg.LightSourceTexture)
	set.float(UniformLightSourceTextureSize, cfg.LightSourceTextureSize)
	set.float(UniformLightSourceTextureIntensity, cfg.LightSourceTextureIntensity)
	set.color(UniformLightSourceTextureColor, cfg.LightSourceTextureColor)

	set.texture(UniformStarFieldTexture, cfg.StarFieldTexture)
	set.matrix(UniformStarFieldRotationMatrix, RotationMatrix(EulerToQuat(cfg.StarFieldRotation)))
	set.float(UniformStarFieldIntensity, cfg.StarFieldIntensity)
	set.color(UniformStarFieldColor, cfg.StarFieldColor)

	set.texture(UniformCloudTexture, cfg.CloudTexture)
	// Larger density gives a smaller falloff constant; the shader expects it.
	set.float(UniformCloudDensity, Lerp(cloudDensityStart, cloudDensityEnd, cfg.CloudDensity))
	set.float(UniformCloudAltitude, cfg.CloudAltitude)
	set.vector(UniformCloudSpeed, mgl32.Vec4{cfg.CloudSpeed.X(), cfg.CloudSpeed.Y(), 0, 0})
	set.color(UniformCloudColor1, cfg.CloudColor1)
	set.color(UniformCloudColor2, cfg.CloudColor2)
	set.float(UniformCloudEdge1, cfg.CloudEdge)
	set.float(UniformCloudEdge2, cfg.CloudEdge+cfg.CloudEdgeRange)

	set.float(UniformExposure, -cfg.Exposure)

	return set
}

func lightMatrix(light LightSource) mgl32.Mat4 {
	if light == nil {
		return DefaultRotation
	}
	return RotationMatrix(light.Rotation())
}

// Lerp interpolates from a to b with t clamped to [0,1].
func Lerp(a, b, t float32) float32 {
	t = clamp01(t)
	return a + (b-a)*t
}

// Material is the write side of a shader material. Backends implement it;
// the sky package never touches a graphics API itself.
type Material interface {
	SetFloat(name string, v float32)
	SetColor(name string, c mgl32.Vec4)
	SetVector(name string, v mgl32.Vec4)
	SetMatrix(name string, m mgl32.Mat4)
	SetTexture(name string, t *Texture)
}

// Apply pushes every uniform of set onto m.
func Apply(m Material, set UniformSet) {
	for _, u := range set {
		switch u.Kind {
		case KindFloat:
			m.SetFloat(u.Name, u.Float)
		case KindColor:
			m.SetColor(u.Name, u.Vector)
		case KindVector:
			m.SetVector(u.Name, u.Vector)
		case KindMatrix:
			m.SetMatrix(u.Name, u.Matrix)
		case KindTexture:
			m.SetTexture(u.Name, u.Texture)
		}
	}
}
