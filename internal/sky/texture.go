package sky

// TextureKind tells the loader how to interpret a texture path.
type TextureKind int

const (
	Texture2D TextureKind = iota
	TextureCube
)

func (k TextureKind) String() string {
	if k == TextureCube {
		return "cube"
	}
	return "2d"
}

// Texture is a reference to an externally managed GPU texture. Path is what
// gets persisted; ID is the backend handle, zero until a loader resolves it.
// A nil *Texture means the layer has no texture.
type Texture struct {
	Path string      `json:"path"`
	Kind TextureKind `json:"kind"`
	ID   uint32      `json:"-"`
}

// NewTexture returns nil for an empty path so "no texture" stays nil.
func NewTexture(path string, kind TextureKind) *Texture {
	if path == "" {
		return nil
	}
	return &Texture{Path: path, Kind: kind}
}

// Handle returns the backend id, 0 for a missing or unresolved texture.
func (t *Texture) Handle() uint32 {
	if t == nil {
		return 0
	}
	return t.ID
}

// Resolved reports whether the texture has a backend handle.
func (t *Texture) Resolved() bool {
	return t != nil && t.ID != 0
}

// PathOf returns the texture path or "" for nil.
func PathOf(t *Texture) string {
	if t == nil {
		return ""
	}
	return t.Path
}
