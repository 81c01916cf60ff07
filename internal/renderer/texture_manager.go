package renderer

import (
	"GopherSky/internal/logger"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// CubeFaceNames are the file stems of a cubemap directory, in GL face order
// (+X, -X, +Y, -Y, +Z, -Z).
var CubeFaceNames = [6]string{"px", "nx", "py", "ny", "pz", "nz"}

var faceExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".webp"}

var ErrMissingFace = errors.New("cubemap face not found")

// TextureStats provides debugging and profiling information
type TextureStats struct {
	TotalTextures  int
	CacheHits      int
	CacheMisses    int
	ActiveTextures int
}

// TextureManager manages texture loading, caching, and lifecycle
type TextureManager struct {
	textureCache    map[string]uint32 // path -> OpenGL texture ID
	textureRefCount map[uint32]int    // texture ID -> reference count
	texturePaths    map[uint32]string // texture ID -> path (for debugging)
	mu              sync.RWMutex
	stats           TextureStats
}

// NewTextureManager creates a new texture manager instance
func NewTextureManager() *TextureManager {
	return &TextureManager{
		textureCache:    make(map[string]uint32),
		textureRefCount: make(map[uint32]int),
		texturePaths:    make(map[uint32]string),
	}
}

// cached returns a cached id and bumps its reference count. Callers hold mu.
func (tm *TextureManager) cached(key string) (uint32, bool) {
	textureID, exists := tm.textureCache[key]
	if !exists {
		tm.stats.CacheMisses++
		return 0, false
	}
	tm.textureRefCount[textureID]++
	tm.stats.CacheHits++

	logger.Log.Debug("Texture cache hit",
		zap.String("path", key),
		zap.Uint32("textureID", textureID),
		zap.Int("refCount", tm.textureRefCount[textureID]))
	return textureID, true
}

func (tm *TextureManager) track(key string, textureID uint32) {
	tm.textureCache[key] = textureID
	tm.textureRefCount[textureID] = 1
	tm.texturePaths[textureID] = key
	tm.stats.TotalTextures++
	tm.stats.ActiveTextures++
}

// LoadTexture loads a 2D texture from file or returns the cached id.
// BuiltinCloudNoise is generated rather than read.
func (tm *TextureManager) LoadTexture(filePath string) (uint32, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if textureID, ok := tm.cached(filePath); ok {
		return textureID, nil
	}

	var rgba *image.RGBA
	if filePath == BuiltinCloudNoise {
		rgba = GenerateCloudNoise(cloudNoiseSize, 1)
	} else {
		img, err := decodeImage(filePath)
		if err != nil {
			return 0, err
		}
		rgba = toRGBA(img)
	}

	textureID := upload2D(rgba)
	tm.track(filePath, textureID)

	logger.Log.Info("Texture loaded and cached",
		zap.String("path", filePath),
		zap.Uint32("textureID", textureID),
		zap.Int("width", rgba.Rect.Dx()),
		zap.Int("height", rgba.Rect.Dy()))

	return textureID, nil
}

// LoadCubemap loads the six faces found in dir (see CubeFaceNames).
func (tm *TextureManager) LoadCubemap(dir string) (uint32, error) {
	key := "cube:" + dir

	tm.mu.Lock()
	defer tm.mu.Unlock()

	if textureID, ok := tm.cached(key); ok {
		return textureID, nil
	}

	paths, err := cubemapFacePaths(dir)
	if err != nil {
		return 0, err
	}
	var faces [6]*image.RGBA
	for i, p := range paths {
		img, err := decodeImage(p)
		if err != nil {
			return 0, err
		}
		faces[i] = toRGBA(img)
	}

	textureID := uploadCube(faces)
	tm.track(key, textureID)

	logger.Log.Info("Cubemap loaded and cached",
		zap.String("dir", dir),
		zap.Uint32("textureID", textureID),
		zap.Int("faceSize", faces[0].Rect.Dx()))

	return textureID, nil
}

// ReleaseTexture decrements reference count and frees texture if count reaches 0
func (tm *TextureManager) ReleaseTexture(textureID uint32) {
	if textureID == 0 {
		return
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	refCount, exists := tm.textureRefCount[textureID]
	if !exists {
		logger.Log.Warn("Attempted to release unknown texture",
			zap.Uint32("textureID", textureID))
		return
	}

	refCount--
	tm.textureRefCount[textureID] = refCount
	if refCount > 0 {
		return
	}

	gl.DeleteTextures(1, &textureID)

	path := tm.texturePaths[textureID]
	delete(tm.textureCache, path)
	delete(tm.textureRefCount, textureID)
	delete(tm.texturePaths, textureID)
	tm.stats.ActiveTextures--

	logger.Log.Info("Texture freed",
		zap.Uint32("textureID", textureID),
		zap.String("path", path))
}

// GetStats returns current texture manager statistics
func (tm *TextureManager) GetStats() TextureStats {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	stats := tm.stats
	stats.ActiveTextures = len(tm.textureRefCount)
	return stats
}

// Clear releases all textures
func (tm *TextureManager) Clear() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	for textureID := range tm.textureRefCount {
		gl.DeleteTextures(1, &textureID)
	}

	tm.textureCache = make(map[string]uint32)
	tm.textureRefCount = make(map[uint32]int)
	tm.texturePaths = make(map[uint32]string)
	tm.stats.ActiveTextures = 0

	logger.Log.Info("Texture manager cleared")
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return img, nil
}

// toRGBA copies img into a tightly packed RGBA image anchored at 0,0.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == rgba.Rect.Dx()*4 {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// cubemapFacePaths finds each face file in dir, accepting any decodable
// extension.
func cubemapFacePaths(dir string) ([6]string, error) {
	var paths [6]string
	for i, face := range CubeFaceNames {
		found := false
		for _, ext := range faceExtensions {
			p := filepath.Join(dir, face+ext)
			if _, err := os.Stat(p); err == nil {
				paths[i] = p
				found = true
				break
			}
		}
		if !found {
			return paths, fmt.Errorf("%w: %s in %s", ErrMissingFace, face, dir)
		}
	}
	return paths, nil
}

func upload2D(rgba *image.RGBA) uint32 {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return textureID
}

func uploadCube(faces [6]*image.RGBA) uint32 {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, textureID)
	for i, face := range faces {
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			int32(face.Rect.Dx()), int32(face.Rect.Dy()),
			0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(face.Pix))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	return textureID
}
