package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/meshgen/math"
)

// Cone is a right circular cone standing on the XZ plane, centered on the
// origin and pointing up (y+).
type Cone struct {
	/** @brief The radius of the base disk. */
	Radius float32
	/** @brief The total height from base to tip. */
	Height float32
	/** @brief The number of segments around the base. Minimum 3. */
	Segments uint32
}

// NewCone returns a cone with the default dimensions.
func NewCone() *Cone {
	c := &Cone{}
	c.Defaults()
	return c
}

func (c *Cone) Defaults() {
	c.Radius = 0.5
	c.Height = 1.0
	c.Segments = 32
}

/**
 * @brief Generates the cone mesh.
 *
 * The base is a fan-triangulated disk. The lateral surface duplicates the
 * tip once per segment so each side triangle carries its own tip normal,
 * sampled at the segment's mid angle. Averaging a single shared tip normal
 * instead would produce a visible shading artifact at the apex.
 *
 * Panics if the parameters violate the preconditions; this is a programming
 * contract, not a runtime input.
 */
func (c *Cone) Generate() *MeshData {
	if c.Height <= 0.0 {
		panic("cone: must have positive height")
	}
	if c.Radius <= 0.0 {
		panic("cone: must have positive radius")
	}
	if c.Segments < 3 {
		panic(fmt.Sprintf("cone: must have at least 3 segments to close the surface, got %d", c.Segments))
	}

	segments := c.Segments
	// Base disk: center + ring. Side: ring + one tip per segment.
	numVertices := int(segments+2) + int(segments+1) + int(segments)
	numIndices := int(segments) * 6
	mesh := NewMeshData(numVertices, numIndices)

	angleStep := math.K_PI_2 / float32(segments)
	halfHeight := c.Height / 2.0

	c.addBase(mesh, angleStep, halfHeight)
	c.addSide(mesh, angleStep, halfHeight)

	return mesh
}

func (c *Cone) addBase(mesh *MeshData, angleStep, halfHeight float32) {
	baseIndex := uint32(len(mesh.Positions))

	// Center
	mesh.Positions = append(mesh.Positions, math.NewVec3(0.0, -halfHeight, 0.0))
	mesh.Normals = append(mesh.Normals, math.NewVec3Down())
	mesh.UVs = append(mesh.UVs, math.NewVec2(0.5, 0.5))

	// Ring
	for i := uint32(0); i <= c.Segments; i++ {
		theta := angleStep * float32(i)
		xUnit := math32.Cos(theta)
		zUnit := math32.Sin(theta)

		mesh.Positions = append(mesh.Positions, math.NewVec3(c.Radius*xUnit, -halfHeight, c.Radius*zUnit))
		mesh.Normals = append(mesh.Normals, math.NewVec3Down())
		mesh.UVs = append(mesh.UVs, math.NewVec2(zUnit*0.5+0.5, xUnit*-0.5+0.5))
	}

	// The base faces down, so the fan winds in reverse.
	for i := uint32(0); i < c.Segments; i++ {
		mesh.Indices = append(mesh.Indices, baseIndex+i+1, baseIndex+i+2, baseIndex)
	}
}

func (c *Cone) addSide(mesh *MeshData, angleStep, halfHeight float32) {
	ringBase := uint32(len(mesh.Positions))
	slope := c.Radius / c.Height

	// Bottom ring with exact analytic slope normals.
	for i := uint32(0); i <= c.Segments; i++ {
		theta := angleStep * float32(i)
		xUnit := math32.Cos(theta)
		zUnit := math32.Sin(theta)
		normal := math.NewVec3(xUnit, slope, zUnit).Normalize()

		mesh.Positions = append(mesh.Positions, math.NewVec3(c.Radius*xUnit, -halfHeight, c.Radius*zUnit))
		mesh.Normals = append(mesh.Normals, normal)
		mesh.UVs = append(mesh.UVs, math.NewVec2(float32(i)/float32(c.Segments), 0.0))
	}

	// One tip vertex per segment, its normal sampled at the mid angle.
	tipBase := uint32(len(mesh.Positions))
	for i := uint32(0); i < c.Segments; i++ {
		mid := angleStep * (float32(i) + 0.5)
		normal := math.NewVec3(math32.Cos(mid), slope, math32.Sin(mid)).Normalize()

		mesh.Positions = append(mesh.Positions, math.NewVec3(0.0, halfHeight, 0.0))
		mesh.Normals = append(mesh.Normals, normal)
		mesh.UVs = append(mesh.UVs, math.NewVec2((float32(i)+0.5)/float32(c.Segments), 1.0))
	}

	for i := uint32(0); i < c.Segments; i++ {
		mesh.Indices = append(mesh.Indices, tipBase+i, ringBase+i+1, ringBase+i)
	}
}
