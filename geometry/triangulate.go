package geometry

import (
	"fmt"

	"github.com/spaghettifunk/meshgen/core"
	"github.com/spaghettifunk/meshgen/math"
)

/**
 * @brief Triangulates the simple polygon described by points using ear
 * clipping. Handles convex and non-convex outlines in either orientation.
 *
 * The returned triangles are wound so that they face up (y+) once the 2D
 * points are embedded into the XZ plane, matching the front-face convention
 * of the grid-tiled generators.
 *
 * Fails with core.ErrTriangulation when the outline is degenerate or
 * self-intersecting; the input is a caller contract and is never repaired.
 */
func triangulatePolygon(points []math.Vec2) ([]uint32, error) {
	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("triangulate: need at least 3 points, got %d: %w", n, core.ErrInvalidInput)
	}

	for i := 0; i < n; i++ {
		if points[i].Compare(points[(i+1)%n], math.K_FLOAT_EPSILON) {
			return nil, fmt.Errorf("triangulate: duplicate coincident points at outline position %d: %w", i, core.ErrTriangulation)
		}
	}

	// Work on a counter-clockwise vertex chain regardless of input
	// orientation. The shoelace area is positive for counter-clockwise
	// outlines.
	chain := make([]int, n)
	if signedArea(points) >= 0 {
		for i := range chain {
			chain[i] = i
		}
	} else {
		for i := range chain {
			chain[i] = n - 1 - i
		}
	}

	indices := make([]uint32, 0, (n-2)*3)

	for len(chain) > 3 {
		clipped := false
		for k := 0; k < len(chain); k++ {
			prev := chain[(k-1+len(chain))%len(chain)]
			cur := chain[k]
			next := chain[(k+1)%len(chain)]
			if !isEar(points, chain, prev, cur, next) {
				continue
			}

			// Emit reversed so the triangle faces up after embedding into XZ.
			indices = append(indices, uint32(prev), uint32(next), uint32(cur))
			chain = append(chain[:k], chain[k+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, fmt.Errorf("triangulate: no ear found, outline is degenerate or self-intersecting: %w", core.ErrTriangulation)
		}
	}

	indices = append(indices, uint32(chain[0]), uint32(chain[2]), uint32(chain[1]))
	return indices, nil
}

// signedArea computes the shoelace area of the outline. Positive means the
// points run counter-clockwise.
func signedArea(points []math.Vec2) float32 {
	area := float32(0)
	for i := range points {
		j := (i + 1) % len(points)
		area += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return area / 2.0
}

// isEar reports whether the corner at cur can be clipped off the
// counter-clockwise chain: it must be convex and no other remaining vertex
// may lie inside the candidate triangle.
func isEar(points []math.Vec2, chain []int, prev, cur, next int) bool {
	a := points[prev]
	b := points[cur]
	c := points[next]

	if cross2(b.Sub(a), c.Sub(b)) <= 0 {
		return false
	}

	for _, vi := range chain {
		if vi == prev || vi == cur || vi == next {
			continue
		}
		if pointInTriangle(points[vi], a, b, c) {
			return false
		}
	}
	return true
}

func cross2(a, b math.Vec2) float32 {
	return a.X*b.Y - a.Y*b.X
}

// pointInTriangle tests p against the counter-clockwise triangle (a, b, c).
// Points exactly on an edge count as inside, which keeps ears away from
// touching vertices.
func pointInTriangle(p, a, b, c math.Vec2) bool {
	d1 := cross2(b.Sub(a), p.Sub(a))
	d2 := cross2(c.Sub(b), p.Sub(b))
	d3 := cross2(a.Sub(c), p.Sub(c))
	return d1 >= 0 && d2 >= 0 && d3 >= 0
}
