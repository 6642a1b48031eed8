package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/meshgen/math"
)

// Torus is a ring around the y axis, centered on the origin. Setting a
// circumference below a full turn opens the ring (radial) or slits the tube
// lengthwise (tube); the matching offset rotates where the opening sits.
type Torus struct {
	/** @brief The distance from the center to the tube centerline. */
	Radius float32
	/** @brief The radius of the solid tube. */
	TubeRadius float32
	/** @brief The number of segments around the main ring. Minimum 3. */
	RadialSegments uint32
	/** @brief The number of segments around the tube cross-section. Minimum 3. */
	TubeSegments uint32
	/** @brief The swept angle around the main ring, in (0, 2pi]. */
	RadialCircumference float32
	/** @brief The swept angle around the tube cross-section, in (0, 2pi]. */
	TubeCircumference float32
	/** @brief The start angle around the main ring. Only meaningful for partial rings. */
	RadialOffset float32
	/** @brief The start angle around the tube cross-section. Only meaningful for slit tubes. */
	TubeOffset float32
}

// NewTorus returns a full torus with the default dimensions.
func NewTorus() *Torus {
	t := &Torus{}
	t.Defaults()
	return t
}

func (t *Torus) Defaults() {
	t.Radius = 0.8
	t.TubeRadius = 0.2
	t.RadialSegments = 32
	t.TubeSegments = 16
	t.RadialCircumference = math.K_PI_2
	t.TubeCircumference = math.K_PI_2
	t.RadialOffset = 0.0
	t.TubeOffset = 0.0
}

/**
 * @brief Generates the torus mesh. Vertices are laid out ring by ring: for
 * each angular step around the main axis, one full tube cross-section ring
 * is emitted. Panics if the parameters violate the preconditions.
 */
func (t *Torus) Generate() *MeshData {
	if t.Radius <= 0.0 {
		panic("torus: must have positive radius")
	}
	if t.TubeRadius <= 0.0 {
		panic("torus: must have positive tube radius")
	}
	if t.RadialSegments < 3 || t.TubeSegments < 3 {
		panic(fmt.Sprintf("torus: must have at least 3 segments to close the surface, got %d radial and %d tube", t.RadialSegments, t.TubeSegments))
	}
	if t.RadialCircumference <= 0.0 || t.RadialCircumference > math.K_PI_2 {
		panic("torus: radial circumference must be in (0, 2pi]")
	}
	if t.TubeCircumference <= 0.0 || t.TubeCircumference > math.K_PI_2 {
		panic("torus: tube circumference must be in (0, 2pi]")
	}

	numVertices := int(t.RadialSegments+1) * int(t.TubeSegments+1)
	numIndices := int(t.RadialSegments) * int(t.TubeSegments) * 6
	mesh := NewMeshData(numVertices, numIndices)

	radialStep := t.RadialCircumference / float32(t.RadialSegments)
	tubeStep := t.TubeCircumference / float32(t.TubeSegments)

	for j := uint32(0); j <= t.RadialSegments; j++ {
		thetaH := t.RadialOffset + radialStep*float32(j)

		// The center of the tube cross-section at this ring position.
		ringCenter := math.NewVec3(
			t.Radius*math32.Cos(thetaH),
			0.0,
			t.Radius*math32.Sin(thetaH),
		)

		for i := uint32(0); i <= t.TubeSegments; i++ {
			thetaV := t.TubeOffset + tubeStep*float32(i)

			position := math.NewVec3(
				math32.Cos(thetaH)*(t.Radius+t.TubeRadius*math32.Cos(thetaV)),
				math32.Sin(thetaV)*t.TubeRadius,
				math32.Sin(thetaH)*(t.Radius+t.TubeRadius*math32.Cos(thetaV)),
			)

			mesh.Positions = append(mesh.Positions, position)
			mesh.Normals = append(mesh.Normals, position.Sub(ringCenter).Normalize())
			mesh.UVs = append(mesh.UVs, math.NewVec2(
				float32(j)/float32(t.RadialSegments),
				float32(i)/float32(t.TubeSegments),
			))
		}
	}

	for j := uint32(0); j < t.RadialSegments; j++ {
		for i := uint32(0); i < t.TubeSegments; i++ {
			face := FlatTrapezeIndices{
				LowerLeft:  j*(t.TubeSegments+1) + i,
				UpperLeft:  j*(t.TubeSegments+1) + i + 1,
				LowerRight: (j+1)*(t.TubeSegments+1) + i,
				UpperRight: (j+1)*(t.TubeSegments+1) + i + 1,
			}
			face.GenerateTriangles(mesh)
		}
	}

	return mesh
}
