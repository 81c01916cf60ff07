package editor

import (
	"GopherSky/internal/sky"
)

// Foldout groups, in panel order.
const (
	GroupLuminanceScatter = "Luminance Scatter"
	GroupLightSource      = "Light Source"
	GroupStarField        = "Star Field"
	GroupCloud            = "Cloud"
	// GroupNone holds fields drawn outside any foldout.
	GroupNone = ""
)

// Groups lists the foldout headers in the order they are drawn.
var Groups = []string{GroupLuminanceScatter, GroupLightSource, GroupStarField, GroupCloud}

// FieldKind selects the widget used for a field.
type FieldKind int

const (
	FieldFloat FieldKind = iota
	FieldColor
	FieldVec3
	FieldVec2
	FieldTexture
	FieldDayNight
	FieldMainLight
)

// FieldKeyMainLight is not part of the configuration record; it edits the
// controller's light reference.
const FieldKeyMainLight = "main_light"

// DayNightOptions are the entries of the day/night popup. Index 0 is day.
var DayNightOptions = []string{"Day", "Night"}

// Field describes one inspector row.
type Field struct {
	Group   string
	Key     string
	Label   string
	Tooltip string
	Kind    FieldKind
	Range   sky.Range
}

// Ranged reports whether the field is drawn as a clamped slider.
func (f Field) Ranged() bool {
	return f.Kind == FieldFloat && f.Range.Max > f.Range.Min
}

var skyFields = []Field{
	{GroupLuminanceScatter, sky.FieldKr, "Atmosphere Thickness", "Height at which light starts to scatter in the atmosphere", FieldFloat, sky.KrRange},
	{GroupLuminanceScatter, sky.FieldScattering, "Scattering Strength", "How strongly the light source scatters and reflects in the atmosphere", FieldFloat, sky.ScatteringRange},
	{GroupLuminanceScatter, sky.FieldRayleighColor, "Atmosphere Color", "Color of the diffuse and scattered light in the atmosphere", FieldColor, sky.Range{}},
	{GroupLuminanceScatter, sky.FieldMieColor, "Direct Scattering", "Color of the halo produced by direct scattering around the light source", FieldColor, sky.Range{}},
	{GroupLuminanceScatter, sky.FieldLuminanceColor, "Ambient Tint", "Overall ambient tint", FieldColor, sky.Range{}},
	{GroupLuminanceScatter, sky.FieldLuminance, "Ambient Brightness", "Overall ambient brightness", FieldFloat, sky.LuminanceRange},

	{GroupLightSource, sky.FieldIsDay, "Day / Night", "Switching between day and night changes some of the formulas inside the shader", FieldDayNight, sky.Range{}},
	{GroupLightSource, FieldKeyMainLight, "Main Light (Directional)", "The sky draws the light source body and the bright area around it along the main light's direction", FieldMainLight, sky.Range{}},
	{GroupLightSource, sky.FieldLightSourceTexture, "Light Source Texture", "Texture of the light source in the sky; needs alpha (opaque inside the shape, fully transparent outside)", FieldTexture, sky.Range{}},
	{GroupLightSource, sky.FieldLightSourceTextureSize, "Light Source Size", "Size of the light source texture in the sky", FieldFloat, sky.LightSourceTextureSizeRange},
	{GroupLightSource, sky.FieldLightSourceTextureIntensity, "Light Source Brightness", "Brightness of the light source texture in the sky", FieldFloat, sky.LightSourceTextureIntensityRange},
	{GroupLightSource, sky.FieldLightSourceTextureColor, "Light Source Color", "Color of the light source texture", FieldColor, sky.Range{}},

	{GroupStarField, sky.FieldStarFieldTexture, "Star Field Texture (Cube)", "Cubemap directory of the star field", FieldTexture, sky.Range{}},
	{GroupStarField, sky.FieldStarFieldRotation, "Star Field Rotation", "Rotates the star field texture into place in the sky (degrees)", FieldVec3, sky.Range{}},
	{GroupStarField, sky.FieldStarFieldIntensity, "Star Field Brightness", "Brightness of the star field texture", FieldFloat, sky.StarFieldIntensityRange},
	{GroupStarField, sky.FieldStarFieldColor, "Star Field Color", "Color of the star field texture", FieldColor, sky.Range{}},

	{GroupCloud, sky.FieldCloudTexture, "Cloud Texture", "Cloud noise texture (three channel RGB noise)", FieldTexture, sky.Range{}},
	{GroupCloud, sky.FieldCloudDensity, "Cloud Density", "Overall density of the clouds", FieldFloat, sky.CloudDensityRange},
	{GroupCloud, sky.FieldCloudAltitude, "Cloud Altitude", "Height of the cloud layer in the sky", FieldFloat, sky.CloudAltitudeRange},
	{GroupCloud, sky.FieldCloudSpeed, "Cloud Speed", "Direction and speed of the clouds across the horizon", FieldVec2, sky.Range{}},
	{GroupCloud, sky.FieldCloudColor1, "Cloud Layer 1 Color", "Color of the first cloud layer", FieldColor, sky.Range{}},
	{GroupCloud, sky.FieldCloudColor2, "Cloud Layer 2 Color", "Color of the second cloud layer", FieldColor, sky.Range{}},
	{GroupCloud, sky.FieldCloudEdge, "Cloud Fade Height", "Height at which the clouds have fully faded out", FieldFloat, sky.CloudEdgeRange},
	{GroupCloud, sky.FieldCloudEdgeRange, "Cloud Fade Distance", "Distance over which the clouds gradually fade out", FieldFloat, sky.CloudEdgeRangeRange},

	{GroupNone, sky.FieldExposure, "Exposure", "Exposure of the whole sky", FieldFloat, sky.ExposureRange},
}

// SkyFields returns the inspector rows in panel order.
func SkyFields() []Field {
	out := make([]Field, len(skyFields))
	copy(out, skyFields)
	return out
}

// FieldsInGroup returns the rows of one foldout.
func FieldsInGroup(group string) []Field {
	var out []Field
	for _, f := range skyFields {
		if f.Group == group {
			out = append(out, f)
		}
	}
	return out
}

// FloatValue reads a scalar field. ok is false for unknown keys.
func FloatValue(cfg *sky.SkyConfiguration, key string) (v float32, ok bool) {
	switch key {
	case sky.FieldKr:
		return cfg.Kr, true
	case sky.FieldScattering:
		return cfg.Scattering, true
	case sky.FieldLuminance:
		return cfg.Luminance, true
	case sky.FieldLightSourceTextureSize:
		return cfg.LightSourceTextureSize, true
	case sky.FieldLightSourceTextureIntensity:
		return cfg.LightSourceTextureIntensity, true
	case sky.FieldStarFieldIntensity:
		return cfg.StarFieldIntensity, true
	case sky.FieldCloudDensity:
		return cfg.CloudDensity, true
	case sky.FieldCloudAltitude:
		return cfg.CloudAltitude, true
	case sky.FieldCloudEdge:
		return cfg.CloudEdge, true
	case sky.FieldCloudEdgeRange:
		return cfg.CloudEdgeRange, true
	case sky.FieldExposure:
		return cfg.Exposure, true
	}
	return 0, false
}

// SetFloatValue writes a scalar field through its clamping setter.
func SetFloatValue(cfg *sky.SkyConfiguration, key string, v float32) bool {
	switch key {
	case sky.FieldKr:
		cfg.SetKr(v)
	case sky.FieldScattering:
		cfg.SetScattering(v)
	case sky.FieldLuminance:
		cfg.SetLuminance(v)
	case sky.FieldLightSourceTextureSize:
		cfg.SetLightSourceTextureSize(v)
	case sky.FieldLightSourceTextureIntensity:
		cfg.SetLightSourceTextureIntensity(v)
	case sky.FieldStarFieldIntensity:
		cfg.SetStarFieldIntensity(v)
	case sky.FieldCloudDensity:
		cfg.SetCloudDensity(v)
	case sky.FieldCloudAltitude:
		cfg.SetCloudAltitude(v)
	case sky.FieldCloudEdge:
		cfg.SetCloudEdge(v)
	case sky.FieldCloudEdgeRange:
		cfg.SetCloudEdgeRange(v)
	case sky.FieldExposure:
		cfg.SetExposure(v)
	default:
		return false
	}
	return true
}

func ColorValue(cfg *sky.SkyConfiguration, key string) (sky.Color, bool) {
	switch key {
	case sky.FieldRayleighColor:
		return cfg.RayleighColor, true
	case sky.FieldMieColor:
		return cfg.MieColor, true
	case sky.FieldLuminanceColor:
		return cfg.LuminanceColor, true
	case sky.FieldLightSourceTextureColor:
		return cfg.LightSourceTextureColor, true
	case sky.FieldStarFieldColor:
		return cfg.StarFieldColor, true
	case sky.FieldCloudColor1:
		return cfg.CloudColor1, true
	case sky.FieldCloudColor2:
		return cfg.CloudColor2, true
	}
	return sky.Color{}, false
}

func SetColorValue(cfg *sky.SkyConfiguration, key string, c sky.Color) bool {
	switch key {
	case sky.FieldRayleighColor:
		cfg.SetRayleighColor(c)
	case sky.FieldMieColor:
		cfg.SetMieColor(c)
	case sky.FieldLuminanceColor:
		cfg.SetLuminanceColor(c)
	case sky.FieldLightSourceTextureColor:
		cfg.SetLightSourceTextureColor(c)
	case sky.FieldStarFieldColor:
		cfg.SetStarFieldColor(c)
	case sky.FieldCloudColor1:
		cfg.SetCloudColor1(c)
	case sky.FieldCloudColor2:
		cfg.SetCloudColor2(c)
	default:
		return false
	}
	return true
}

// TexturePath reads the path of a texture field, "" when unset.
func TexturePath(cfg *sky.SkyConfiguration, key string) (string, bool) {
	switch key {
	case sky.FieldLightSourceTexture:
		return sky.PathOf(cfg.LightSourceTexture), true
	case sky.FieldStarFieldTexture:
		return sky.PathOf(cfg.StarFieldTexture), true
	case sky.FieldCloudTexture:
		return sky.PathOf(cfg.CloudTexture), true
	}
	return "", false
}

func SetTexturePath(cfg *sky.SkyConfiguration, key, path string) bool {
	switch key {
	case sky.FieldLightSourceTexture:
		cfg.SetLightSourceTexture(path)
	case sky.FieldStarFieldTexture:
		cfg.SetStarFieldTexture(path)
	case sky.FieldCloudTexture:
		cfg.SetCloudTexture(path)
	default:
		return false
	}
	return true
}

// DayNightIndex maps IsDay to the popup index.
func DayNightIndex(isDay bool) int {
	if isDay {
		return 0
	}
	return 1
}
