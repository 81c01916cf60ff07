package sky

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreInRange(t *testing.T) {
	cfg := NewSkyConfiguration()

	assert.Equal(t, float32(8.4), cfg.Kr)
	assert.True(t, cfg.IsDay)
	assert.Equal(t, float32(0.5), cfg.CloudDensity)
	assert.Equal(t, float32(2), cfg.Exposure)
	assert.Equal(t, White, cfg.RayleighColor)
	assert.Nil(t, cfg.LightSourceTexture)

	values := map[string]float32{
		FieldKr:                          cfg.Kr,
		FieldScattering:                  cfg.Scattering,
		FieldLuminance:                   cfg.Luminance,
		FieldLightSourceTextureSize:      cfg.LightSourceTextureSize,
		FieldLightSourceTextureIntensity: cfg.LightSourceTextureIntensity,
		FieldStarFieldIntensity:          cfg.StarFieldIntensity,
		FieldCloudDensity:                cfg.CloudDensity,
		FieldCloudAltitude:               cfg.CloudAltitude,
		FieldCloudEdge:                   cfg.CloudEdge,
		FieldCloudEdgeRange:              cfg.CloudEdgeRange,
		FieldExposure:                    cfg.Exposure,
	}
	require.Len(t, values, len(Ranges))
	for field, v := range values {
		assert.True(t, Ranges[field].Contains(v), "%s=%v outside %v", field, v, Ranges[field])
	}
}

func TestSettersClamp(t *testing.T) {
	cfg := NewSkyConfiguration()

	cfg.SetKr(100)
	cfg.SetScattering(0)
	cfg.SetLuminance(-1)
	cfg.SetLightSourceTextureSize(0)
	cfg.SetLightSourceTextureIntensity(11)
	cfg.SetStarFieldIntensity(9)
	cfg.SetCloudDensity(1.5)
	cfg.SetCloudAltitude(1)
	cfg.SetCloudEdge(-0.5)
	cfg.SetCloudEdgeRange(0)
	cfg.SetExposure(42)
	cfg.SetMieColor(RGB(2, -1, 0.5))

	assert.Equal(t, float32(20), cfg.Kr)
	assert.Equal(t, float32(1), cfg.Scattering)
	assert.Equal(t, float32(0), cfg.Luminance)
	assert.Equal(t, float32(0.1), cfg.LightSourceTextureSize)
	assert.Equal(t, float32(10), cfg.LightSourceTextureIntensity)
	assert.Equal(t, float32(5), cfg.StarFieldIntensity)
	assert.Equal(t, float32(1), cfg.CloudDensity)
	assert.Equal(t, float32(0.5), cfg.CloudAltitude)
	assert.Equal(t, float32(0), cfg.CloudEdge)
	assert.Equal(t, float32(0.01), cfg.CloudEdgeRange)
	assert.Equal(t, float32(10), cfg.Exposure)
	assert.Equal(t, RGB(1, 0, 0.5), cfg.MieColor)
}

func TestClampRepairsDirectWrites(t *testing.T) {
	cfg := NewSkyConfiguration()
	cfg.Kr = 1
	cfg.CloudEdgeRange = 3
	cfg.StarFieldColor = RGB(-1, 1, 4)

	cfg.Clamp()

	assert.Equal(t, float32(5), cfg.Kr)
	assert.Equal(t, float32(0.5), cfg.CloudEdgeRange)
	assert.Equal(t, RGB(0, 1, 1), cfg.StarFieldColor)
}

func TestTextureSetters(t *testing.T) {
	cfg := NewSkyConfiguration()

	cfg.SetStarFieldTexture("assets/stars")
	require.NotNil(t, cfg.StarFieldTexture)
	assert.Equal(t, TextureCube, cfg.StarFieldTexture.Kind)

	first := cfg.StarFieldTexture
	cfg.SetStarFieldTexture("assets/stars")
	assert.Same(t, first, cfg.StarFieldTexture, "same path keeps the resolved texture")

	cfg.SetStarFieldTexture("")
	assert.Nil(t, cfg.StarFieldTexture)

	cfg.SetCloudTexture("noise.png")
	cfg.SetLightSourceTexture("sun.png")
	assert.Equal(t, Texture2D, cfg.CloudTexture.Kind)
	assert.Equal(t, "sun.png", PathOf(cfg.LightSourceTexture))
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := NewSkyConfiguration()
	cfg.SetCloudTexture("noise.png")

	cp := cfg.Clone()
	cp.CloudTexture.ID = 4
	cp.Kr = 19

	assert.Equal(t, uint32(0), cfg.CloudTexture.ID)
	assert.Equal(t, float32(8.4), cfg.Kr)
}

func TestConfigurationIsComparable(t *testing.T) {
	a := NewSkyConfiguration()
	b := NewSkyConfiguration()
	assert.True(t, *a == *b)

	b.SetStarFieldRotation(mgl32.Vec3{0, 45, 0})
	assert.False(t, *a == *b)
}

func TestPresetsAreValid(t *testing.T) {
	names := PresetNames()
	assert.Equal(t, []string{"day", "night", "sunset"}, names)

	for _, name := range names {
		cfg, ok := Preset(name)
		require.True(t, ok, name)
		clamped := cfg.Clone()
		clamped.Clamp()
		assert.Equal(t, *clamped, *cfg, "preset %s should already be in range", name)
	}

	night, _ := Preset("NIGHT")
	assert.False(t, night.IsDay)

	_, ok := Preset("noon")
	assert.False(t, ok)
}

func TestEncodeDecodeKeepsTexturePaths(t *testing.T) {
	cfg := NewSkyConfiguration()
	cfg.SetStarFieldTexture("stars")
	cfg.StarFieldTexture.ID = 12
	cfg.SetExposure(4)

	var buf bytes.Buffer
	require.NoError(t, EncodeConfiguration(&buf, cfg))
	assert.NotContains(t, buf.String(), "12", "handles are runtime only")

	got, err := DecodeConfiguration(&buf)
	require.NoError(t, err)
	assert.Equal(t, "stars", got.StarFieldTexture.Path)
	assert.Equal(t, TextureCube, got.StarFieldTexture.Kind)
	assert.False(t, got.StarFieldTexture.Resolved())
	assert.Equal(t, float32(4), got.Exposure)
}

func TestDecodeFillsDefaultsAndClamps(t *testing.T) {
	got, err := DecodeConfiguration(strings.NewReader(`{"kr": 50, "is_day": false}`))
	require.NoError(t, err)

	assert.Equal(t, float32(20), got.Kr)
	assert.False(t, got.IsDay)
	assert.Equal(t, float32(2), got.Exposure)
}

func TestDecodeTakesTextureKindFromField(t *testing.T) {
	got, err := DecodeConfiguration(strings.NewReader(`{
		"star_field_texture": {"path": "skies/milkyway"},
		"light_source_texture": {"path": "sun.png", "kind": 1}
	}`))
	require.NoError(t, err)

	require.NotNil(t, got.StarFieldTexture)
	assert.Equal(t, TextureCube, got.StarFieldTexture.Kind)
	assert.Equal(t, "skies/milkyway", got.StarFieldTexture.Path)
	require.NotNil(t, got.LightSourceTexture)
	assert.Equal(t, Texture2D, got.LightSourceTexture.Kind)
}

func TestDecodeEmptyTexturePathIsAbsent(t *testing.T) {
	got, err := DecodeConfiguration(strings.NewReader(`{"cloud_texture": {"path": ""}}`))
	require.NoError(t, err)

	assert.Nil(t, got.CloudTexture)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeConfiguration(strings.NewReader(`{"kr": "thick"}`))
	assert.Error(t, err)
}

func TestLoadPresetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dusk.json")
	cfg, _ := Preset("sunset")
	require.NoError(t, SavePreset(path, cfg))

	loaded, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, *cfg, *loaded)

	_, err = LoadPreset(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
