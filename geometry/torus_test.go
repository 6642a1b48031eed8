package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/meshgen/math"
)

func TestTorusDefaults(t *testing.T) {
	torus := NewTorus()
	assert.Equal(t, float32(0.8), torus.Radius)
	assert.Equal(t, float32(0.2), torus.TubeRadius)
	assert.Equal(t, math.K_PI_2, torus.RadialCircumference)
	assert.Equal(t, math.K_PI_2, torus.TubeCircumference)
}

func TestTorusGenerate(t *testing.T) {
	torus := NewTorus()
	torus.RadialSegments = 16
	torus.TubeSegments = 8
	mesh := torus.Generate()

	assertMeshWellFormed(t, mesh)
	assertConsistentWinding(t, mesh)

	assert.Equal(t, 17*9, len(mesh.Positions))
	assert.Equal(t, 16*8*6, len(mesh.Indices))
}

func TestTorusVerticesSitOnTube(t *testing.T) {
	torus := NewTorus()
	mesh := torus.Generate()

	// Every vertex is exactly TubeRadius away from the tube centerline.
	for i, p := range mesh.Positions {
		ringDistance := math32.Sqrt(p.X*p.X+p.Z*p.Z) - torus.Radius
		tubeDistance := math32.Sqrt(ringDistance*ringDistance + p.Y*p.Y)
		assert.InDelta(t, float64(torus.TubeRadius), float64(tubeDistance), 1.0e-5, "vertex %d off tube", i)
	}
}

func TestPartialTorusStaysInsideArc(t *testing.T) {
	torus := NewTorus()
	torus.RadialCircumference = math.K_PI // half ring
	mesh := torus.Generate()

	assertMeshWellFormed(t, mesh)

	// The half ring starting at offset 0 never crosses into negative z.
	for i, p := range mesh.Positions {
		assert.GreaterOrEqual(t, p.Z, float32(-1.0e-5), "vertex %d outside arc", i)
	}
}

func TestTorusRejectsBadParameters(t *testing.T) {
	bad := func(mutate func(*Torus)) func() {
		return func() {
			torus := NewTorus()
			mutate(torus)
			torus.Generate()
		}
	}

	assert.Panics(t, bad(func(x *Torus) { x.Radius = 0 }))
	assert.Panics(t, bad(func(x *Torus) { x.TubeRadius = -0.1 }))
	assert.Panics(t, bad(func(x *Torus) { x.RadialSegments = 2 }))
	assert.Panics(t, bad(func(x *Torus) { x.TubeSegments = 2 }))
	assert.Panics(t, bad(func(x *Torus) { x.RadialCircumference = 0 }))
	assert.Panics(t, bad(func(x *Torus) { x.TubeCircumference = math.K_PI_2 + 0.1 }))
}
