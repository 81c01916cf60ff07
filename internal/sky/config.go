package sky

import "github.com/go-gl/mathgl/mgl32"

// SkyConfiguration is the full set of tunables for the procedural sky.
// Fields may be written directly; the Set* methods clamp to the declared
// ranges and are what editing surfaces should use.
//
// The struct is comparable with ==, which the sky controller relies on to
// detect edits between frames. Texture fields compare by pointer, so
// replace a texture through its setter instead of mutating it in place.
type SkyConfiguration struct {
	// Atmosphere
	Kr             float32 `json:"kr"`
	RayleighColor  Color   `json:"rayleigh_color"`
	MieColor       Color   `json:"mie_color"`
	Scattering     float32 `json:"scattering"`
	LuminanceColor Color   `json:"luminance_color"`
	Luminance      float32 `json:"luminance"`
	IsDay          bool    `json:"is_day"`

	// Light source disc
	LightSourceTexture          *Texture `json:"light_source_texture,omitempty"`
	LightSourceTextureSize      float32  `json:"light_source_texture_size"`
	LightSourceTextureIntensity float32  `json:"light_source_texture_intensity"`
	LightSourceTextureColor     Color    `json:"light_source_texture_color"`

	// Star field, rotation in Euler degrees
	StarFieldTexture   *Texture   `json:"star_field_texture,omitempty"`
	StarFieldRotation  mgl32.Vec3 `json:"star_field_rotation"`
	StarFieldIntensity float32    `json:"star_field_intensity"`
	StarFieldColor     Color      `json:"star_field_color"`

	// Cloud layer
	CloudTexture   *Texture   `json:"cloud_texture,omitempty"`
	CloudDensity   float32    `json:"cloud_density"`
	CloudAltitude  float32    `json:"cloud_altitude"`
	CloudSpeed     mgl32.Vec2 `json:"cloud_speed"`
	CloudColor1    Color      `json:"cloud_color1"`
	CloudColor2    Color      `json:"cloud_color2"`
	CloudEdge      float32    `json:"cloud_edge"`
	CloudEdgeRange float32    `json:"cloud_edge_range"`

	Exposure float32 `json:"exposure"`
}

// NewSkyConfiguration returns a configuration holding the default values.
func NewSkyConfiguration() *SkyConfiguration {
	return &SkyConfiguration{
		Kr:             8.4,
		RayleighColor:  White,
		MieColor:       White,
		Scattering:     1,
		LuminanceColor: White,
		Luminance:      1,
		IsDay:          true,

		LightSourceTextureSize:      1,
		LightSourceTextureIntensity: 1,
		LightSourceTextureColor:     White,

		StarFieldIntensity: 1,
		StarFieldColor:     White,

		CloudDensity:   0.5,
		CloudAltitude:  CloudAltitudeRange.Max,
		CloudColor1:    White,
		CloudColor2:    White,
		CloudEdge:      0.1,
		CloudEdgeRange: 0.1,

		Exposure: 2,
	}
}

// Clone returns an independent copy, textures included.
func (c *SkyConfiguration) Clone() *SkyConfiguration {
	out := *c
	out.LightSourceTexture = cloneTexture(c.LightSourceTexture)
	out.StarFieldTexture = cloneTexture(c.StarFieldTexture)
	out.CloudTexture = cloneTexture(c.CloudTexture)
	return &out
}

func cloneTexture(t *Texture) *Texture {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// Clamp forces every ranged field and every color channel back into bounds.
func (c *SkyConfiguration) Clamp() {
	c.Kr = KrRange.Clamp(c.Kr)
	c.Scattering = ScatteringRange.Clamp(c.Scattering)
	c.Luminance = LuminanceRange.Clamp(c.Luminance)
	c.LightSourceTextureSize = LightSourceTextureSizeRange.Clamp(c.LightSourceTextureSize)
	c.LightSourceTextureIntensity = LightSourceTextureIntensityRange.Clamp(c.LightSourceTextureIntensity)
	c.StarFieldIntensity = StarFieldIntensityRange.Clamp(c.StarFieldIntensity)
	c.CloudDensity = CloudDensityRange.Clamp(c.CloudDensity)
	c.CloudAltitude = CloudAltitudeRange.Clamp(c.CloudAltitude)
	c.CloudEdge = CloudEdgeRange.Clamp(c.CloudEdge)
	c.CloudEdgeRange = CloudEdgeRangeRange.Clamp(c.CloudEdgeRange)
	c.Exposure = ExposureRange.Clamp(c.Exposure)

	c.RayleighColor = c.RayleighColor.Clamped()
	c.MieColor = c.MieColor.Clamped()
	c.LuminanceColor = c.LuminanceColor.Clamped()
	c.LightSourceTextureColor = c.LightSourceTextureColor.Clamped()
	c.StarFieldColor = c.StarFieldColor.Clamped()
	c.CloudColor1 = c.CloudColor1.Clamped()
	c.CloudColor2 = c.CloudColor2.Clamped()
}

// Atmosphere setters. Ranged values are clamped to their Range.
func (c *SkyConfiguration) SetKr(v float32)         { c.Kr = KrRange.Clamp(v) }
func (c *SkyConfiguration) SetScattering(v float32) { c.Scattering = ScatteringRange.Clamp(v) }
func (c *SkyConfiguration) SetLuminance(v float32)  { c.Luminance = LuminanceRange.Clamp(v) }
func (c *SkyConfiguration) SetIsDay(day bool)       { c.IsDay = day }
func (c *SkyConfiguration) SetExposure(v float32)   { c.Exposure = ExposureRange.Clamp(v) }

// Atmosphere colors, each channel clamped to [0,1].
func (c *SkyConfiguration) SetRayleighColor(col Color)  { c.RayleighColor = col.Clamped() }
func (c *SkyConfiguration) SetMieColor(col Color)       { c.MieColor = col.Clamped() }
func (c *SkyConfiguration) SetLuminanceColor(col Color) { c.LuminanceColor = col.Clamped() }

// SetLightSourceTextureSize scales the sun or moon disc.
func (c *SkyConfiguration) SetLightSourceTextureSize(v float32) {
	c.LightSourceTextureSize = LightSourceTextureSizeRange.Clamp(v)
}

// SetLightSourceTextureIntensity multiplies the disc brightness.
func (c *SkyConfiguration) SetLightSourceTextureIntensity(v float32) {
	c.LightSourceTextureIntensity = LightSourceTextureIntensityRange.Clamp(v)
}

// SetLightSourceTextureColor tints the disc.
func (c *SkyConfiguration) SetLightSourceTextureColor(col Color) {
	c.LightSourceTextureColor = col.Clamped()
}

// SetLightSourceTexture swaps in a new unresolved texture, or clears it for "".
func (c *SkyConfiguration) SetLightSourceTexture(path string) {
	if path == PathOf(c.LightSourceTexture) {
		return
	}
	c.LightSourceTexture = NewTexture(path, Texture2D)
}

// SetStarFieldTexture takes a cubemap directory.
func (c *SkyConfiguration) SetStarFieldTexture(path string) {
	if path == PathOf(c.StarFieldTexture) {
		return
	}
	c.StarFieldTexture = NewTexture(path, TextureCube)
}

// SetStarFieldRotation takes Euler angles in degrees. Angles are not wrapped.
func (c *SkyConfiguration) SetStarFieldRotation(deg mgl32.Vec3) { c.StarFieldRotation = deg }

// SetStarFieldIntensity multiplies star brightness.
func (c *SkyConfiguration) SetStarFieldIntensity(v float32) {
	c.StarFieldIntensity = StarFieldIntensityRange.Clamp(v)
}

// SetStarFieldColor tints the stars.
func (c *SkyConfiguration) SetStarFieldColor(col Color) { c.StarFieldColor = col.Clamped() }

// SetCloudTexture takes a 2D noise texture path.
func (c *SkyConfiguration) SetCloudTexture(path string) {
	if path == PathOf(c.CloudTexture) {
		return
	}
	c.CloudTexture = NewTexture(path, Texture2D)
}

// Cloud layer setters. CloudSpeed has no range and is stored as given.
func (c *SkyConfiguration) SetCloudDensity(v float32)   { c.CloudDensity = CloudDensityRange.Clamp(v) }
func (c *SkyConfiguration) SetCloudAltitude(v float32)  { c.CloudAltitude = CloudAltitudeRange.Clamp(v) }
func (c *SkyConfiguration) SetCloudSpeed(v mgl32.Vec2)  { c.CloudSpeed = v }
func (c *SkyConfiguration) SetCloudColor1(col Color)    { c.CloudColor1 = col.Clamped() }
func (c *SkyConfiguration) SetCloudColor2(col Color)    { c.CloudColor2 = col.Clamped() }
func (c *SkyConfiguration) SetCloudEdge(v float32)      { c.CloudEdge = CloudEdgeRange.Clamp(v) }
func (c *SkyConfiguration) SetCloudEdgeRange(v float32) { c.CloudEdgeRange = CloudEdgeRangeRange.Clamp(v) }
