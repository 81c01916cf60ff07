package sky

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGB color as authored, i.e. gamma (sRGB) encoded. There is no
// alpha channel: every sky color is opaque.
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

var (
	White = Color{1, 1, 1}
	Black = Color{0, 0, 0}
)

// RGB builds a Color from gamma-encoded channels.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// GammaToLinear decodes one sRGB channel value to linear light.
func GammaToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow((float64(c)+0.055)/1.055, 2.4))
}

// Linear returns the color converted to linear space.
func (c Color) Linear() Color {
	return Color{
		R: GammaToLinear(c.R),
		G: GammaToLinear(c.G),
		B: GammaToLinear(c.B),
	}
}

// Clamped returns the color with every channel limited to [0,1].
func (c Color) Clamped() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Vec4 packs the color for a vec4 uniform with alpha 1.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, 1}
}

// Array is the layout imgui color pickers edit in place.
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// ColorFromArray is the inverse of Array.
func ColorFromArray(a [3]float32) Color {
	return Color{R: a[0], G: a[1], B: a[2]}
}

func clamp01(v float32) float32 {
	return mgl32.Clamp(v, 0, 1)
}
