package math

import "github.com/chewxy/math32"

/**
 * @brief Creates an empty 2d extents accumulator. Min starts at positive
 * infinity and Max at negative infinity so that the first included point
 * defines both.
 */
func NewExtents2D() Extents2D {
	return Extents2D{
		Min: Vec2{K_INFINITY, K_INFINITY},
		Max: Vec2{-K_INFINITY, -K_INFINITY},
	}
}

/**
 * @brief Grows the extents to include the provided point.
 */
func (e *Extents2D) ExpandByPoint(p Vec2) {
	e.Min.X = math32.Min(e.Min.X, p.X)
	e.Min.Y = math32.Min(e.Min.Y, p.Y)
	e.Max.X = math32.Max(e.Max.X, p.X)
	e.Max.Y = math32.Max(e.Max.Y, p.Y)
}

/**
 * @brief Returns the side lengths of the extents.
 */
func (e Extents2D) Size() Vec2 {
	return e.Max.Sub(e.Min)
}

/**
 * @brief Creates an empty 3d extents accumulator.
 */
func NewExtents3D() Extents3D {
	return Extents3D{
		Min: Vec3{K_INFINITY, K_INFINITY, K_INFINITY},
		Max: Vec3{-K_INFINITY, -K_INFINITY, -K_INFINITY},
	}
}

/**
 * @brief Grows the extents to include the provided point.
 */
func (e *Extents3D) ExpandByPoint(p Vec3) {
	e.Min.X = math32.Min(e.Min.X, p.X)
	e.Min.Y = math32.Min(e.Min.Y, p.Y)
	e.Min.Z = math32.Min(e.Min.Z, p.Z)
	e.Max.X = math32.Max(e.Max.X, p.X)
	e.Max.Y = math32.Max(e.Max.Y, p.Y)
	e.Max.Z = math32.Max(e.Max.Z, p.Z)
}

/**
 * @brief Returns the center point of the extents.
 */
func (e Extents3D) Center() Vec3 {
	return e.Min.Add(e.Max).MulScalar(0.5)
}

/**
 * @brief Returns the side lengths of the extents.
 */
func (e Extents3D) Size() Vec3 {
	return e.Max.Sub(e.Min)
}
