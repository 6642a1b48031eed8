package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/meshgen/core"
	"github.com/spaghettifunk/meshgen/math"
)

// Polygon is a flat shape in the XZ plane described by its outline. The
// outline is implicitly closed: the last point connects back to the first.
// It must be simple (non self-intersecting) and contain at least 3 points.
type Polygon struct {
	Points []math.Vec2
}

// NewRegularNgon returns a regular polygon with n points equally spaced on a
// circle of the specified radius.
func NewRegularNgon(radius float32, n int) *Polygon {
	angleStep := math.K_PI_2 / float32(n)
	points := make([]math.Vec2, 0, n)

	for i := 0; i < n; i++ {
		theta := angleStep * float32(i)
		points = append(points, math.NewVec2(
			radius*math32.Cos(theta),
			radius*math32.Sin(theta),
		))
	}

	return &Polygon{Points: points}
}

// NewTriangle returns a triangle whose points touch a circle of the
// specified radius.
func NewTriangle(radius float32) *Polygon {
	return NewRegularNgon(radius, 3)
}

// NewPentagon returns a pentagon whose points touch a circle of the
// specified radius.
func NewPentagon(radius float32) *Polygon {
	return NewRegularNgon(radius, 5)
}

// NewHexagon returns a hexagon whose points touch a circle of the
// specified radius.
func NewHexagon(radius float32) *Polygon {
	return NewRegularNgon(radius, 6)
}

// NewOctagon returns an octagon whose points touch a circle of the
// specified radius.
func NewOctagon(radius float32) *Polygon {
	return NewRegularNgon(radius, 8)
}

// NewStar returns a star polygon with n spikes: 2n points alternating
// between the outer and inner radius.
func NewStar(outerRadius, innerRadius float32, n int) *Polygon {
	angleStep := math.K_PI / float32(n)
	points := make([]math.Vec2, 0, 2*n)

	for i := 0; i < 2*n; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		theta := angleStep * float32(i)
		points = append(points, math.NewVec2(
			radius*math32.Cos(theta),
			radius*math32.Sin(theta),
		))
	}

	return &Polygon{Points: points}
}

/**
 * @brief Generates the polygon mesh: one vertex per outline point, facing
 * up, UV-mapped by fitting the outline's bounding rectangle to [0,1]x[0,1].
 *
 * Unlike the fixed-parameter shapes this takes arbitrary runtime data, so
 * bad input is reported as a typed error rather than a panic: outlines with
 * fewer than 3 points wrap core.ErrInvalidInput, outlines that cannot be
 * triangulated wrap core.ErrTriangulation.
 */
func (p *Polygon) Generate() (*MeshData, error) {
	if len(p.Points) < 3 {
		return nil, fmt.Errorf("polygon: at least 3 points are needed to produce a closed shape, got %d: %w", len(p.Points), core.ErrInvalidInput)
	}

	indices, err := triangulatePolygon(p.Points)
	if err != nil {
		return nil, err
	}

	mesh := NewMeshData(len(p.Points), len(indices))
	mesh.Indices = indices

	// The domain tells us how to transform all points to optimally fit the
	// 0-1 UV range.
	domain := math.NewExtents2D()
	for _, v := range p.Points {
		domain.ExpandByPoint(v)
	}
	size := domain.Size()

	for _, v := range p.Points {
		mesh.Positions = append(mesh.Positions, math.NewVec3(v.X, 0.0, v.Y))
		mesh.Normals = append(mesh.Normals, math.NewVec3Up())
		mesh.UVs = append(mesh.UVs, math.NewVec2(
			(v.X-domain.Min.X)/size.X,
			(v.Y-domain.Min.Y)/size.Y,
		))
	}

	return mesh, nil
}
