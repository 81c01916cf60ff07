package renderer

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestCubemapFacePaths(t *testing.T) {
	dir := t.TempDir()
	for _, face := range CubeFaceNames {
		ext := ".png"
		if face == "ny" {
			ext = ".jpg"
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, face+ext), nil, 0o644))
	}

	paths, err := cubemapFacePaths(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "px.png"), paths[0])
	assert.Equal(t, filepath.Join(dir, "ny.jpg"), paths[3])
	assert.Equal(t, filepath.Join(dir, "nz.png"), paths[5])
}

func TestCubemapFacePathsMissingFace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "px.png"), nil, 0o644))

	_, err := cubemapFacePaths(dir)

	assert.True(t, errors.Is(err, ErrMissingFace))
	assert.Contains(t, err.Error(), "nx")
}

func TestDecodeImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sun.png")
	writePNG(t, path)

	img, err := decodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	_, err = decodeImage(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestToRGBARebasesBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 14, 13))
	src.Set(10, 10, color.NRGBA{G: 200, A: 255})

	rgba := toRGBA(src)

	assert.Equal(t, image.Rect(0, 0, 4, 3), rgba.Rect)
	assert.Equal(t, uint8(200), rgba.RGBAAt(0, 0).G)
}

func TestTextureManagerStatsStartEmpty(t *testing.T) {
	tm := NewTextureManager()
	assert.Equal(t, TextureStats{}, tm.GetStats())

	// releasing nothing is a no-op
	tm.ReleaseTexture(0)
}
