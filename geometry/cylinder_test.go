package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCylinderDefaults(t *testing.T) {
	c := NewCylinder()
	assert.Equal(t, float32(1.0), c.Height)
	assert.Equal(t, float32(0.5), c.RadiusBottom)
	assert.Equal(t, float32(0.5), c.RadiusTop)
	assert.Equal(t, uint32(32), c.RadialSegments)
	assert.Equal(t, uint32(1), c.HeightSegments)
}

func TestCylinderGenerate(t *testing.T) {
	c := NewRegularCylinder(1.0, 0.5, 16)
	mesh := c.Generate()

	assertMeshWellFormed(t, mesh)
	assertConsistentWinding(t, mesh)

	rs := int(c.RadialSegments)
	hs := int(c.HeightSegments)
	// Two caps (center + seam-duplicated ring each) and the body patch.
	assert.Equal(t, 2*(rs+2)+(rs+1)*(hs+1), len(mesh.Positions))
	assert.Equal(t, 2*rs*3+rs*hs*6, len(mesh.Indices))
}

func TestCylinderBodyNormalsAreHorizontal(t *testing.T) {
	mesh := NewRegularCylinder(2.0, 0.5, 8).Generate()

	// Equal radii make the lateral surface vertical, so its normals have no
	// y component. Cap vertices are strictly vertical instead.
	for i, n := range mesh.Normals {
		if n.Y == 1.0 || n.Y == -1.0 {
			continue
		}
		assert.InDelta(t, 0.0, float64(n.Y), 1.0e-6, "body normal %d not horizontal", i)
	}
}

func TestTruncatedConeNormalsLean(t *testing.T) {
	c := &Cylinder{Height: 1.0, RadiusBottom: 0.8, RadiusTop: 0.2, RadialSegments: 8, HeightSegments: 2}
	mesh := c.Generate()

	assertMeshWellFormed(t, mesh)
	assertConsistentWinding(t, mesh)

	leaning := 0
	for _, n := range mesh.Normals {
		if n.Y > 0 && n.Y < 1.0 {
			leaning++
		}
	}
	assert.Greater(t, leaning, 0, "narrowing body must lean its normals upward")
}

func TestCylinderRejectsBadParameters(t *testing.T) {
	assert.Panics(t, func() { NewRegularCylinder(1, 0, 8).Generate() })
	assert.Panics(t, func() { NewRegularCylinder(-1, 0.5, 8).Generate() })
	assert.Panics(t, func() { NewRegularCylinder(1, 0.5, 2).Generate() })
	assert.Panics(t, func() {
		(&Cylinder{Height: 1, RadiusBottom: 0.5, RadiusTop: 0.5, RadialSegments: 8, HeightSegments: 0}).Generate()
	})
}
