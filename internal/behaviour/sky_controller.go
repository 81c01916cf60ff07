package behaviour

import (
	"GopherSky/internal/logger"
	"GopherSky/internal/sky"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ControllerMode selects when the sky controller pushes uniforms.
type ControllerMode int

const (
	// ModePlay refreshes the material every frame.
	ModePlay ControllerMode = iota
	// ModeEdit refreshes only when the configuration or the main light
	// changed since the last refresh.
	ModeEdit
)

func (m ControllerMode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "play"
}

// TextureLoader turns texture paths into backend handles. Each successful
// load is matched by one ReleaseTexture.
type TextureLoader interface {
	LoadTexture(path string) (uint32, error)
	LoadCubemap(dir string) (uint32, error)
	ReleaseTexture(id uint32)
}

// textureSlot is what the controller holds for one sampler: the texture it
// last saw there and the handle it loaded for it.
type textureSlot struct {
	tex    *sky.Texture
	id     uint32
	failed bool
}

const (
	slotLightSource = iota
	slotStarField
	slotCloud
	slotCount
)

// SkyController drives a sky material from a SkyConfiguration.
type SkyController struct {
	BaseComponent
	Config    *sky.SkyConfiguration
	MainLight *GameObject
	Material  sky.Material
	Textures  TextureLoader
	Mode      ControllerMode

	applied      bool
	lastConfig   sky.SkyConfiguration
	lastLight    mgl32.Quat
	lastHasLight bool
	slots        [slotCount]textureSlot
	warned       bool
	refreshes    int
}

func NewSkyController() *SkyController {
	return &SkyController{
		Config: sky.NewSkyConfiguration(),
		Mode:   ModePlay,
	}
}

func (c *SkyController) GetComponentType() ComponentType {
	return ComponentTypeSky
}

func (c *SkyController) GetTypeName() string {
	return SkyControllerName
}

func (c *SkyController) Awake() {
	if c.Config == nil {
		c.Config = sky.NewSkyConfiguration()
	}
}

// Start pushes the initial state once, whatever the mode.
func (c *SkyController) Start() {
	c.Refresh()
}

// OnDestroy gives back every handle the controller loaded.
func (c *SkyController) OnDestroy() {
	for i := range c.slots {
		c.release(c.slots[i])
		c.slots[i] = textureSlot{}
	}
}

func (c *SkyController) Update() {
	switch c.Mode {
	case ModePlay:
		c.Refresh()
	case ModeEdit:
		if c.Changed() {
			c.Refresh()
		}
	}
}

// MarkDirty forces the next edit-mode Update to refresh.
func (c *SkyController) MarkDirty() {
	c.applied = false
}

// Changed reports whether the material is out of date.
func (c *SkyController) Changed() bool {
	if !c.applied {
		return true
	}
	if *c.Config != c.lastConfig {
		return true
	}
	rot, ok := c.lightRotation()
	if ok != c.lastHasLight {
		return true
	}
	return ok && rot != c.lastLight
}

// Refreshes counts how many times uniforms were pushed.
func (c *SkyController) Refreshes() int {
	return c.refreshes
}

// Refresh resolves textures, runs the uniform sync and applies it to the
// material. It returns false when there is no material to write to.
func (c *SkyController) Refresh() bool {
	if c.Material == nil {
		if !c.warned {
			c.warned = true
			logger.Log.Warn("Sky controller has no material", zap.String("object", c.objectName()))
		}
		return false
	}

	c.resolveTextures()

	var light sky.LightSource
	rot, hasLight := c.lightRotation()
	if hasLight {
		light = sky.FixedLight(rot)
	}

	sky.Apply(c.Material, sky.Sync(*c.Config, light))

	c.applied = true
	c.lastConfig = *c.Config
	c.lastLight = rot
	c.lastHasLight = hasLight
	c.refreshes++
	return true
}

// lightRotation reads the main light. Inactive or missing lights count as
// absent.
func (c *SkyController) lightRotation() (mgl32.Quat, bool) {
	if c.MainLight == nil || !c.MainLight.Active || c.MainLight.Transform == nil {
		return mgl32.Quat{}, false
	}
	return c.MainLight.Transform.WorldRotation(), true
}

func (c *SkyController) resolveTextures() {
	c.resolve(&c.slots[slotLightSource], c.Config.LightSourceTexture)
	c.resolve(&c.slots[slotStarField], c.Config.StarFieldTexture)
	c.resolve(&c.slots[slotCloud], c.Config.CloudTexture)
}

// resolve loads t into its slot once. A failed load is not retried for the
// same *Texture; installing a new one (a setter, a preset) tries again. When
// the slot's texture is replaced, the handle loaded for the old one is
// released after the new one is loaded, so a shared cache entry survives.
func (c *SkyController) resolve(slot *textureSlot, t *sky.Texture) {
	if slot.tex != t {
		old := *slot
		*slot = textureSlot{tex: t}
		defer c.release(old)
	}
	if t == nil || t.Resolved() || slot.failed || c.Textures == nil {
		return
	}

	var (
		id  uint32
		err error
	)
	if t.Kind == sky.TextureCube {
		id, err = c.Textures.LoadCubemap(t.Path)
	} else {
		id, err = c.Textures.LoadTexture(t.Path)
	}
	if err != nil {
		slot.failed = true
		logger.Log.Warn("Sky texture unavailable, rendering without it",
			zap.String("path", t.Path),
			zap.String("kind", t.Kind.String()),
			zap.Error(err))
		return
	}
	t.ID = id
	slot.id = id
}

func (c *SkyController) release(slot textureSlot) {
	if slot.id == 0 || c.Textures == nil {
		return
	}
	c.Textures.ReleaseTexture(slot.id)
	// The handle is gone; a texture put back later must load again.
	if slot.tex != nil && slot.tex.ID == slot.id {
		slot.tex.ID = 0
	}
}

func (c *SkyController) objectName() string {
	if obj := c.GetGameObject(); obj != nil {
		return obj.Name
	}
	return ""
}
