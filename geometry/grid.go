package geometry

import (
	"github.com/spaghettifunk/meshgen/math"
)

// Grid is a flat, subdivided plane in XZ, centered on the origin, facing up.
type Grid struct {
	/** @brief Length along the x axis. */
	Width float32
	/** @brief Length along the z axis. */
	Height float32
	/** @brief Segments on the x axis. Minimum 1. */
	WidthSegments uint32
	/** @brief Segments on the z axis. Minimum 1. */
	HeightSegments uint32
}

// NewGrid returns a unit grid with a single segment per axis.
func NewGrid() *Grid {
	g := &Grid{}
	g.Defaults()
	return g
}

func (g *Grid) Defaults() {
	g.Width = 1.0
	g.Height = 1.0
	g.WidthSegments = 1
	g.HeightSegments = 1
}

// NewSquareGrid returns a grid with equal side length and segment count on
// both axes.
func NewSquareGrid(length float32, segments uint32) *Grid {
	return &Grid{
		Width:          length,
		Height:         length,
		WidthSegments:  segments,
		HeightSegments: segments,
	}
}

/**
 * @brief Generates the grid mesh. Panics if the parameters violate the
 * preconditions.
 */
func (g *Grid) Generate() *MeshData {
	if g.WidthSegments < 1 || g.HeightSegments < 1 {
		panic("grid: must have segments")
	}
	if g.Width <= 0.0 || g.Height <= 0.0 {
		panic("grid: must have positive width and height")
	}

	numVertices := int(g.WidthSegments+1) * int(g.HeightSegments+1)
	numFaces := int(g.WidthSegments) * int(g.HeightSegments)
	mesh := NewMeshData(numVertices, numFaces*6)

	// Center the grid on the origin.
	halfWidth := g.Width / 2.0
	halfHeight := g.Height / 2.0

	xSegmentLen := g.Width / float32(g.WidthSegments)
	zSegmentLen := g.Height / float32(g.HeightSegments)

	for z := uint32(0); z <= g.HeightSegments; z++ {
		for x := uint32(0); x <= g.WidthSegments; x++ {
			mesh.Positions = append(mesh.Positions, math.NewVec3(
				float32(x)*xSegmentLen-halfWidth,
				0.0,
				float32(z)*zSegmentLen-halfHeight,
			))
			mesh.UVs = append(mesh.UVs, math.NewVec2(
				float32(x)/float32(g.WidthSegments),
				float32(z)/float32(g.HeightSegments),
			))
			mesh.Normals = append(mesh.Normals, math.NewVec3Up())
		}
	}

	for faceZ := uint32(0); faceZ < g.HeightSegments; faceZ++ {
		for faceX := uint32(0); faceX < g.WidthSegments; faceX++ {
			lowerLeft := faceZ*(g.WidthSegments+1) + faceX
			face := FlatTrapezeIndices{
				LowerLeft:  lowerLeft,
				UpperLeft:  lowerLeft + g.WidthSegments + 1,
				LowerRight: lowerLeft + 1,
				UpperRight: lowerLeft + g.WidthSegments + 2,
			}
			face.GenerateTriangles(mesh)
		}
	}

	return mesh
}
