package renderer

import (
	"image"
	"image/color"

	"github.com/aquilax/go-perlin"
)

// BuiltinCloudNoise is a texture path TextureManager generates instead of
// reading from disk: an RGB perlin noise usable as a cloud texture.
const BuiltinCloudNoise = "builtin:cloud-noise"

const cloudNoiseSize = 256

// cloudOctaves gives each channel its own feature scale; the sky shader
// weights red as the main shape and blue as fine detail.
var cloudOctaves = [3]float64{4, 8, 16}

// GenerateCloudNoise renders size x size RGB noise. The same seed always
// produces the same image.
func GenerateCloudNoise(size int, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}

	var gens [3]*perlin.Perlin
	for i := range gens {
		gens[i] = perlin.NewPerlin(2, 2, 3, seed+int64(i))
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var c [3]uint8
			for ch, gen := range gens {
				fx := float64(x) / float64(size) * cloudOctaves[ch]
				fy := float64(y) / float64(size) * cloudOctaves[ch]
				c[ch] = noiseByte(gen.Noise2D(fx, fy))
			}
			img.SetRGBA(x, y, color.RGBA{R: c[0], G: c[1], B: c[2], A: 255})
		}
	}
	return img
}

// noiseByte maps perlin output (roughly [-1,1]) to a byte.
func noiseByte(n float64) uint8 {
	v := (n*0.5 + 0.5) * 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
