package sky

import "github.com/go-gl/mathgl/mgl32"

// DefaultRotation is the matrix used when no main light is set. It is spelled
// out rather than taken from mgl32.Ident4 so the shader contract is visible.
var DefaultRotation = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// StarFieldRotationOrder names the axis order EulerToQuat applies.
const StarFieldRotationOrder = "ZXY"

// EulerToQuat converts Euler angles in degrees to a rotation. The rotation
// about Z is applied first, then X, then Y (q = qY * qX * qZ).
func EulerToQuat(deg mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(deg.X()), mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(mgl32.DegToRad(deg.Y()), mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(mgl32.DegToRad(deg.Z()), mgl32.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}

// RotationMatrix expands a rotation into a 4x4 matrix with no translation.
func RotationMatrix(q mgl32.Quat) mgl32.Mat4 {
	return q.Normalize().Mat4()
}

// LightSource is anything that can report a world-space orientation, in
// practice the main directional light.
type LightSource interface {
	Rotation() mgl32.Quat
}

// FixedLight is a LightSource with a constant orientation.
type FixedLight mgl32.Quat

func (l FixedLight) Rotation() mgl32.Quat { return mgl32.Quat(l) }

// LightFromEuler builds a FixedLight from Euler degrees.
func LightFromEuler(deg mgl32.Vec3) FixedLight {
	return FixedLight(EulerToQuat(deg))
}
