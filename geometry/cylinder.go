package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/meshgen/math"
)

// Cylinder is a capped frustum around the y axis, centered on the origin.
// Different top and bottom radii produce a truncated cone.
type Cylinder struct {
	/** @brief The total height. */
	Height float32
	/** @brief The radius of the bottom cap. Must be positive; use a Cone for 0. */
	RadiusBottom float32
	/** @brief The radius of the top cap. Must be positive; use a Cone for 0. */
	RadiusTop float32
	/** @brief The number of segments around the body. Minimum 3. */
	RadialSegments uint32
	/** @brief The number of segment rows along the height. Minimum 1. */
	HeightSegments uint32
}

// NewCylinder returns a cylinder with the default dimensions.
func NewCylinder() *Cylinder {
	c := &Cylinder{}
	c.Defaults()
	return c
}

func (c *Cylinder) Defaults() {
	c.Height = 1.0
	c.RadiusBottom = 0.5
	c.RadiusTop = 0.5
	c.RadialSegments = 32
	c.HeightSegments = 1
}

// NewRegularCylinder returns a cylinder where the top and bottom disc have
// the same radius.
func NewRegularCylinder(height, radius float32, segments uint32) *Cylinder {
	return &Cylinder{
		Height:         height,
		RadiusBottom:   radius,
		RadiusTop:      radius,
		RadialSegments: segments,
		HeightSegments: 1,
	}
}

/**
 * @brief Generates the cylinder mesh as three independent surface patches
 * that share no vertices: top cap, bottom cap and the lateral body.
 *
 * Panics if the parameters violate the preconditions.
 */
func (c *Cylinder) Generate() *MeshData {
	if c.RadiusTop == 0.0 || c.RadiusBottom == 0.0 {
		panic("cylinder: radius must not be 0, use a cone instead")
	}
	if c.RadiusTop < 0.0 || c.RadiusBottom < 0.0 {
		panic("cylinder: must have positive radius")
	}
	if c.RadialSegments < 3 {
		panic(fmt.Sprintf("cylinder: must have at least 3 radial segments to close the surface, got %d", c.RadialSegments))
	}
	if c.HeightSegments < 1 {
		panic("cylinder: must have at least one height segment")
	}
	if c.Height <= 0.0 {
		panic("cylinder: must have positive height")
	}

	numVertices := 2*int(c.RadialSegments+2) + int(c.RadialSegments+1)*int(c.HeightSegments+1)
	numIndices := 2*int(c.RadialSegments)*3 + int(c.RadialSegments)*int(c.HeightSegments)*6
	mesh := NewMeshData(numVertices, numIndices)

	c.addTop(mesh)
	c.addBottom(mesh)
	c.addBody(mesh)

	return mesh
}

func (c *Cylinder) addTop(mesh *MeshData) {
	angleStep := math.K_PI_2 / float32(c.RadialSegments)
	baseIndex := uint32(len(mesh.Positions))

	// Center
	mesh.Positions = append(mesh.Positions, math.NewVec3(0.0, c.Height/2.0, 0.0))
	mesh.UVs = append(mesh.UVs, math.NewVec2(0.5, 0.5))
	mesh.Normals = append(mesh.Normals, math.NewVec3Up())

	// Ring
	for i := uint32(0); i <= c.RadialSegments; i++ {
		theta := float32(i) * angleStep
		xUnit := math32.Cos(theta)
		zUnit := math32.Sin(theta)

		mesh.Positions = append(mesh.Positions, math.NewVec3(
			c.RadiusTop*xUnit,
			c.Height/2.0,
			c.RadiusTop*zUnit,
		))
		mesh.UVs = append(mesh.UVs, math.NewVec2(zUnit*0.5+0.5, xUnit*0.5+0.5))
		mesh.Normals = append(mesh.Normals, math.NewVec3Up())
	}

	for i := uint32(0); i < c.RadialSegments; i++ {
		mesh.Indices = append(mesh.Indices, baseIndex, baseIndex+i+2, baseIndex+i+1)
	}
}

func (c *Cylinder) addBottom(mesh *MeshData) {
	angleStep := math.K_PI_2 / float32(c.RadialSegments)
	baseIndex := uint32(len(mesh.Positions))

	// Center
	centerPos := math.NewVec3(0.0, -c.Height/2.0, 0.0)
	mesh.Positions = append(mesh.Positions, centerPos)
	mesh.UVs = append(mesh.UVs, sphereUVs(centerPos))
	mesh.Normals = append(mesh.Normals, math.NewVec3Down())

	// Ring
	for i := uint32(0); i <= c.RadialSegments; i++ {
		theta := float32(i) * angleStep
		xUnit := math32.Cos(theta)
		zUnit := math32.Sin(theta)

		mesh.Positions = append(mesh.Positions, math.NewVec3(
			c.RadiusBottom*xUnit,
			-c.Height/2.0,
			c.RadiusBottom*zUnit,
		))
		mesh.UVs = append(mesh.UVs, math.NewVec2(zUnit*0.5+0.5, xUnit*-0.5+0.5))
		mesh.Normals = append(mesh.Normals, math.NewVec3Down())
	}

	// Reverse winding relative to the top, since this cap faces down.
	for i := uint32(0); i < c.RadialSegments; i++ {
		mesh.Indices = append(mesh.Indices, baseIndex+i+1, baseIndex+i+2, baseIndex)
	}
}

func (c *Cylinder) addBody(mesh *MeshData) {
	angleStep := math.K_PI_2 / float32(c.RadialSegments)
	baseIndex := uint32(len(mesh.Positions))

	for i := uint32(0); i <= c.RadialSegments; i++ {
		theta := angleStep * float32(i)
		xUnit := math32.Cos(theta)
		zUnit := math32.Sin(theta)

		// The profile is a straight line, so the normal of this column is
		// constant across the height.
		slope := (c.RadiusBottom - c.RadiusTop) / c.Height
		normal := math.NewVec3(xUnit, slope, zUnit).Normalize()

		for h := uint32(0); h <= c.HeightSegments; h++ {
			heightPercent := float32(h) / float32(c.HeightSegments)
			y := heightPercent*c.Height - c.Height/2.0
			radius := (1.0-heightPercent)*c.RadiusBottom + heightPercent*c.RadiusTop

			mesh.Positions = append(mesh.Positions, math.NewVec3(xUnit*radius, y, zUnit*radius))
			mesh.Normals = append(mesh.Normals, normal)
			mesh.UVs = append(mesh.UVs, math.NewVec2(float32(i)/float32(c.RadialSegments), heightPercent))
		}
	}

	for i := uint32(0); i < c.RadialSegments; i++ {
		for h := uint32(0); h < c.HeightSegments; h++ {
			segmentBase := baseIndex + i*(c.HeightSegments+1) + h
			face := FlatTrapezeIndices{
				LowerLeft:  segmentBase,
				UpperLeft:  segmentBase + 1,
				LowerRight: segmentBase + c.HeightSegments + 1,
				UpperRight: segmentBase + c.HeightSegments + 2,
			}
			face.GenerateTriangles(mesh)
		}
	}
}

// sphereUVs projects a point on the unit sphere to texture coordinates,
// wrapping u back into [0,1].
// https://en.wikipedia.org/wiki/UV_mapping
func sphereUVs(pos math.Vec3) math.Vec2 {
	u := 0.5 + math32.Atan2(pos.X, pos.Z)/math.K_PI_2
	v := 0.5 + math32.Asin(pos.Y)/math.K_PI
	if u < 0.0 {
		u = 1.0 - u
	} else if u > 1.0 {
		u = u - 1.0
	}
	return math.NewVec2(u, v)
}
