package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-6

func assertVec3Near(t *testing.T, expected, actual Vec3, tol float64) {
	t.Helper()
	assert.InDelta(t, float64(expected.X), float64(actual.X), tol)
	assert.InDelta(t, float64(expected.Y), float64(actual.Y), tol)
	assert.InDelta(t, float64(expected.Z), float64(actual.Z), tol)
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, NewVec3(-1, -2, -3), a.Negate())

	assert.InDelta(t, 32.0, float64(a.Dot(b)), standardTol)
	assert.InDelta(t, 14.0, float64(a.LengthSquared()), standardTol)
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3Right()
	y := NewVec3Up()

	assertVec3Near(t, NewVec3(0, 0, 1), x.Cross(y), standardTol)
	assertVec3Near(t, NewVec3(0, 0, -1), y.Cross(x), standardTol)
	assertVec3Near(t, NewVec3Zero(), x.Cross(x), standardTol)
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	n := v.Normalized()
	assert.InDelta(t, 1.0, float64(n.Length()), standardTol)
	assertVec3Near(t, NewVec3(0.6, 0, 0.8), n, standardTol)
}

func TestVec3Compare(t *testing.T) {
	a := NewVec3(1, 1, 1)
	assert.True(t, a.Compare(NewVec3(1, 1, 1), K_FLOAT_EPSILON))
	assert.False(t, a.Compare(NewVec3(1, 1, 1.001), K_FLOAT_EPSILON))
}

func TestQuaternionRotate(t *testing.T) {
	// Quarter turn about y carries x+ onto z-.
	q := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI)
	assertVec3Near(t, NewVec3(0, 0, -1), q.RotateVec3(NewVec3Right()), standardTol)

	// Full turn is identity.
	full := NewQuatFromAxisAngle(NewVec3Up(), K_PI_2)
	assertVec3Near(t, NewVec3(1, 2, 3), full.RotateVec3(NewVec3(1, 2, 3)), 1.0e-5)

	// Rotation preserves length.
	q2 := NewQuatFromAxisAngle(NewVec3(1, 1, 1).Normalized(), 0.73)
	v := NewVec3(2, -1, 0.5)
	assert.InDelta(t, float64(v.Length()), float64(q2.RotateVec3(v).Length()), standardTol)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))
	assert.Equal(t, float32(0), Clamp(-2, 0, 1))
	assert.Equal(t, float32(1), Clamp(7, 0, 1))
}
