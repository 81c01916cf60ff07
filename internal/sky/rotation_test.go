package sky

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func rotate(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}

func TestEulerZeroIsIdentity(t *testing.T) {
	m := RotationMatrix(EulerToQuat(mgl32.Vec3{}))
	assert.True(t, m.ApproxEqual(DefaultRotation))
}

func TestEulerSingleAxes(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	x90 := RotationMatrix(EulerToQuat(mgl32.Vec3{90, 0, 0}))
	assert.True(t, rotate(x90, up).ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5))

	fwd := mgl32.Vec3{0, 0, 1}
	y90 := RotationMatrix(EulerToQuat(mgl32.Vec3{0, 90, 0}))
	assert.True(t, rotate(y90, fwd).ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5))

	right := mgl32.Vec3{1, 0, 0}
	z90 := RotationMatrix(EulerToQuat(mgl32.Vec3{0, 0, 90}))
	assert.True(t, rotate(z90, right).ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5))
}

// Z is applied first, then X, then Y.
func TestEulerOrderIsZXY(t *testing.T) {
	assert.Equal(t, "ZXY", StarFieldRotationOrder)

	// X then Y: up -> forward -> right
	m := RotationMatrix(EulerToQuat(mgl32.Vec3{90, 90, 0}))
	assert.True(t, rotate(m, mgl32.Vec3{0, 1, 0}).ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5))

	// Z then X: right -> up -> forward
	m = RotationMatrix(EulerToQuat(mgl32.Vec3{90, 0, 90}))
	assert.True(t, rotate(m, mgl32.Vec3{1, 0, 0}).ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5))
}

func TestStarFieldRotationReachesUniform(t *testing.T) {
	cfg := NewSkyConfiguration()
	cfg.SetStarFieldRotation(mgl32.Vec3{0, 90, 0})

	m := Sync(*cfg, nil).Matrix(UniformStarFieldRotationMatrix)

	assert.True(t, rotate(m, mgl32.Vec3{0, 0, 1}).ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5))
}

func TestZeroLightQuatFallsBackToIdentity(t *testing.T) {
	var light FixedLight
	m := Sync(*NewSkyConfiguration(), light).Matrix(UniformLightSourceDirectionMatrix)
	assert.True(t, m.ApproxEqual(DefaultRotation))
}
