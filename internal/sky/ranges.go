package sky

import "github.com/go-gl/mathgl/mgl32"

// Range is the closed interval a tunable is allowed to take.
type Range struct {
	Min float32
	Max float32
}

// Clamp limits v to the range.
func (r Range) Clamp(v float32) float32 {
	return mgl32.Clamp(v, r.Min, r.Max)
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// Field keys. They double as JSON keys in presets and as inspector ids.
const (
	FieldKr                          = "kr"
	FieldRayleighColor               = "rayleigh_color"
	FieldMieColor                    = "mie_color"
	FieldScattering                  = "scattering"
	FieldLuminanceColor              = "luminance_color"
	FieldLuminance                   = "luminance"
	FieldIsDay                       = "is_day"
	FieldLightSourceTexture          = "light_source_texture"
	FieldLightSourceTextureSize      = "light_source_texture_size"
	FieldLightSourceTextureIntensity = "light_source_texture_intensity"
	FieldLightSourceTextureColor     = "light_source_texture_color"
	FieldStarFieldTexture            = "star_field_texture"
	FieldStarFieldRotation           = "star_field_rotation"
	FieldStarFieldIntensity          = "star_field_intensity"
	FieldStarFieldColor              = "star_field_color"
	FieldCloudTexture                = "cloud_texture"
	FieldCloudDensity                = "cloud_density"
	FieldCloudAltitude               = "cloud_altitude"
	FieldCloudSpeed                  = "cloud_speed"
	FieldCloudColor1                 = "cloud_color1"
	FieldCloudColor2                 = "cloud_color2"
	FieldCloudEdge                   = "cloud_edge"
	FieldCloudEdgeRange              = "cloud_edge_range"
	FieldExposure                    = "exposure"
)

var (
	KrRange                          = Range{5, 20}
	ScatteringRange                  = Range{1, 25}
	LuminanceRange                   = Range{0, 5}
	LightSourceTextureSizeRange      = Range{0.1, 2}
	LightSourceTextureIntensityRange = Range{0, 10}
	StarFieldIntensityRange          = Range{0, 5}
	CloudDensityRange                = Range{0, 1}
	CloudAltitudeRange               = Range{0, 0.5}
	CloudEdgeRange                   = Range{0, 1}
	CloudEdgeRangeRange              = Range{0.01, 0.5}
	ExposureRange                    = Range{0, 10}
)

// Ranges maps every clamped scalar field to its interval.
var Ranges = map[string]Range{
	FieldKr:                          KrRange,
	FieldScattering:                  ScatteringRange,
	FieldLuminance:                   LuminanceRange,
	FieldLightSourceTextureSize:      LightSourceTextureSizeRange,
	FieldLightSourceTextureIntensity: LightSourceTextureIntensityRange,
	FieldStarFieldIntensity:          StarFieldIntensityRange,
	FieldCloudDensity:                CloudDensityRange,
	FieldCloudAltitude:               CloudAltitudeRange,
	FieldCloudEdge:                   CloudEdgeRange,
	FieldCloudEdgeRange:              CloudEdgeRangeRange,
	FieldExposure:                    ExposureRange,
}
