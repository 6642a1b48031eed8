package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/meshgen/math"
)

// circleCurve is a planar ring, exactly closed: t wraps so the first and
// last sample are the same point.
type circleCurve struct{}

func (circleCurve) EvalAt(t float32) math.Vec3 {
	if t >= 1.0 {
		t -= 1.0
	}
	theta := t * math.K_PI_2
	return math.NewVec3(math32.Cos(theta), 0.0, math32.Sin(theta))
}

func TestCurveDefaults(t *testing.T) {
	c := NewCurve()
	assert.Equal(t, float32(0.05), c.Radius)
	assert.Equal(t, uint32(64), c.LengthSegments)
	assert.Equal(t, uint32(64), c.RadialSegments)
	assert.Equal(t, math.K_PI_2, c.RadialCircumference)
	require.NotNil(t, c.Function)
}

func TestTubeGenerate(t *testing.T) {
	c := NewCurve()
	c.LengthSegments = 8
	c.RadialSegments = 6
	mesh := c.Generate()

	assertMeshWellFormed(t, mesh)
	assertConsistentWinding(t, mesh)

	assert.Equal(t, 9*7, len(mesh.Positions))
	assert.Equal(t, 8*6*6, len(mesh.Indices))
}

func TestTubeFitsUnitBox(t *testing.T) {
	c := NewCurve()
	c.Function = NewHelixCurve()
	c.LengthSegments = 32
	c.RadialSegments = 8
	mesh := c.Generate()

	// The centerline is rescaled into roughly [-1, 1]; the surface may
	// stick out by at most the tube radius.
	limit := 1.0 + c.Radius + 1.0e-4
	for i, p := range mesh.Positions {
		assert.LessOrEqual(t, math32.Abs(p.X), limit, "vertex %d outside box", i)
		assert.LessOrEqual(t, math32.Abs(p.Y), limit, "vertex %d outside box", i)
		assert.LessOrEqual(t, math32.Abs(p.Z), limit, "vertex %d outside box", i)
	}
}

func TestTubeVerticesSitOnRadius(t *testing.T) {
	c := NewCurve()
	c.LengthSegments = 4
	c.RadialSegments = 8
	c.Radius = 0.1
	mesh := c.Generate()

	// The default curve is a straight line up, so after normalization the
	// centerline is the y axis and every vertex sits Radius away from it.
	for i, p := range mesh.Positions {
		distance := math32.Sqrt(p.X*p.X + p.Z*p.Z)
		assert.InDelta(t, float64(c.Radius), float64(distance), 1.0e-5, "vertex %d off the tube", i)
	}
}

func TestClosedCurveSeamLinesUp(t *testing.T) {
	c := NewCurve()
	c.Function = circleCurve{}
	c.LengthSegments = 64
	c.RadialSegments = 8
	c.Radius = 0.1
	mesh := c.Generate()

	assertMeshWellFormed(t, mesh)

	// With the twist redistributed, the last ring must land on the first.
	ringSize := int(c.RadialSegments) + 1
	lastRing := len(mesh.Positions) - ringSize
	for i := 0; i < ringSize; i++ {
		first := mesh.Positions[i]
		last := mesh.Positions[lastRing+i]
		assert.InDelta(t, float64(first.X), float64(last.X), 1.0e-3, "seam vertex %d", i)
		assert.InDelta(t, float64(first.Y), float64(last.Y), 1.0e-3, "seam vertex %d", i)
		assert.InDelta(t, float64(first.Z), float64(last.Z), 1.0e-3, "seam vertex %d", i)
	}
}

func TestKnotTube(t *testing.T) {
	c := NewCurve()
	c.Function = NewTrefoilKnot()
	c.LengthSegments = 128
	c.RadialSegments = 8
	c.Radius = 0.1
	mesh := c.Generate()

	assertMeshWellFormed(t, mesh)
	assertConsistentWinding(t, mesh)
}

func TestRibbonGenerate(t *testing.T) {
	single := NewCurve()
	single.Function = NewWaveCurve()
	single.LengthSegments = 16
	single.RadialSegments = 1
	single.Radius = 0.2
	mesh := single.Generate()

	assertMeshWellFormed(t, mesh)
	assert.Equal(t, 2*17, len(mesh.Positions))
	assert.Equal(t, 16*6, len(mesh.Indices))

	doubled := NewCurve()
	doubled.Function = NewWaveCurve()
	doubled.LengthSegments = 16
	doubled.RadialSegments = 2
	doubled.Radius = 0.2
	mesh = doubled.Generate()

	assertMeshWellFormed(t, mesh)
	assert.Equal(t, 4*17, len(mesh.Positions))
	assert.Equal(t, 16*2*6, len(mesh.Indices))
}

func TestZeroRadiusMakesLine(t *testing.T) {
	c := NewCurve()
	c.Radius = 0.0
	c.LengthSegments = 10
	mesh := c.Generate()

	require.Equal(t, LineStrip, mesh.Topology)
	assert.Equal(t, 11, len(mesh.Positions))
	assert.Empty(t, mesh.Normals)
	assert.Empty(t, mesh.UVs)
	assert.Empty(t, mesh.Indices)

	// Normalized: the straight unit line becomes y in [-1, 1].
	assert.InDelta(t, -1.0, float64(mesh.Positions[0].Y), 1.0e-5)
	assert.InDelta(t, 1.0, float64(mesh.Positions[10].Y), 1.0e-5)
}

func TestZeroRadialSegmentsMakesLine(t *testing.T) {
	c := NewCurve()
	c.RadialSegments = 0
	mesh := c.Generate()
	assert.Equal(t, LineStrip, mesh.Topology)
}

func TestRandomWalkIsDeterministic(t *testing.T) {
	a := NewRandomWalkCurve(16, 42)
	b := NewRandomWalkCurve(16, 42)
	other := NewRandomWalkCurve(16, 43)

	assert.Equal(t, a.EvalAt(0.37), b.EvalAt(0.37))
	assert.NotEqual(t, a.EvalAt(0.37), other.EvalAt(0.37))
}

func TestCurveRejectsBadParameters(t *testing.T) {
	assert.Panics(t, func() {
		c := NewCurve()
		c.LengthSegments = 0
		c.Generate()
	})
	assert.Panics(t, func() {
		c := NewCurve()
		c.RadialOffset = -0.1
		c.Generate()
	})
	assert.Panics(t, func() {
		c := NewCurve()
		c.RadialCircumference = math.K_PI_2 + 0.1
		c.Generate()
	})
}
