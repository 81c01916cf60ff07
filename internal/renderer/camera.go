package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a look-around camera. The sky only needs its orientation, but
// position is kept so the same camera can drive regular geometry.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	WorldUp  mgl32.Vec3
	Pitch    float32
	Yaw      float32

	Sensitivity float32
	Fov         float32
	Near        float32
	Far         float32
	AspectRatio float32
}

func NewDefaultCamera(width, height int32) *Camera {
	camera := &Camera{
		Position:    mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         -90.0,
		Pitch:       10.0,
		Sensitivity: 0.1,
		Fov:         60.0,
		Near:        0.1,
		Far:         1000.0,
	}
	camera.SetViewport(width, height)
	camera.updateCameraVectors()
	return camera
}

// SetViewport updates the aspect ratio. A zero height is ignored.
func (c *Camera) SetViewport(width, height int32) {
	if height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// Look turns the camera by a mouse delta in pixels.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*c.Sensitivity, -89, 89)
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = front.Normalize()
	right := c.Front.Cross(c.WorldUp).Normalize()
	c.Up = right.Cross(c.Front).Normalize()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

// SkyViewProjection is the view-projection with the translation removed, so
// the sky cube stays centred on the eye.
func (c *Camera) SkyViewProjection() mgl32.Mat4 {
	view := c.GetViewMatrix()
	view[12] = 0
	view[13] = 0
	view[14] = 0
	return c.GetProjectionMatrix().Mul4(view)
}
