package sky

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// presets are the named starting points offered by the viewer and editor.
var presets = map[string]func() *SkyConfiguration{
	"day": NewSkyConfiguration,
	"sunset": func() *SkyConfiguration {
		c := NewSkyConfiguration()
		c.Kr = 12
		c.RayleighColor = RGB(1.0, 0.62, 0.38)
		c.MieColor = RGB(1.0, 0.55, 0.3)
		c.Scattering = 6
		c.LuminanceColor = RGB(1.0, 0.8, 0.65)
		c.Luminance = 0.8
		c.LightSourceTextureColor = RGB(1.0, 0.7, 0.4)
		c.CloudColor1 = RGB(1.0, 0.75, 0.6)
		c.CloudColor2 = RGB(0.55, 0.4, 0.45)
		c.Exposure = 2.5
		return c
	},
	"night": func() *SkyConfiguration {
		c := NewSkyConfiguration()
		c.IsDay = false
		c.Kr = 6
		c.RayleighColor = RGB(0.25, 0.3, 0.5)
		c.MieColor = RGB(0.6, 0.65, 0.8)
		c.Scattering = 3
		c.LuminanceColor = RGB(0.35, 0.4, 0.6)
		c.Luminance = 0.3
		c.LightSourceTextureSize = 0.6
		c.LightSourceTextureColor = RGB(0.85, 0.9, 1.0)
		c.StarFieldIntensity = 2
		c.StarFieldRotation = mgl32.Vec3{0, 0, 23.4}
		c.CloudDensity = 0.3
		c.CloudColor1 = RGB(0.3, 0.32, 0.4)
		c.CloudColor2 = RGB(0.12, 0.13, 0.18)
		c.Exposure = 1.5
		return c
	},
}

// PresetNames lists the built-in presets in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a fresh copy of a built-in preset.
func Preset(name string) (*SkyConfiguration, bool) {
	ctor, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// DecodeConfiguration reads a JSON configuration. Keys missing from the
// document keep their default value; out-of-range values are clamped.
// Texture kinds come from the field, not the document, and an empty path
// decodes as no texture.
func DecodeConfiguration(r io.Reader) (*SkyConfiguration, error) {
	cfg := NewSkyConfiguration()
	if err := json.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode sky configuration: %w", err)
	}
	cfg.Clamp()
	cfg.LightSourceTexture = NewTexture(PathOf(cfg.LightSourceTexture), Texture2D)
	cfg.StarFieldTexture = NewTexture(PathOf(cfg.StarFieldTexture), TextureCube)
	cfg.CloudTexture = NewTexture(PathOf(cfg.CloudTexture), Texture2D)
	return cfg, nil
}

// EncodeConfiguration writes cfg as indented JSON.
func EncodeConfiguration(w io.Writer, cfg *SkyConfiguration) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode sky configuration: %w", err)
	}
	return nil
}

// LoadPreset resolves name as a built-in preset first, then as a JSON file.
func LoadPreset(name string) (*SkyConfiguration, error) {
	if cfg, ok := Preset(name); ok {
		return cfg, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open preset %q: %w", name, err)
	}
	defer f.Close()
	return DecodeConfiguration(f)
}

// SavePreset writes cfg to path.
func SavePreset(path string, cfg *SkyConfiguration) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preset %q: %w", path, err)
	}
	if err := EncodeConfiguration(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
