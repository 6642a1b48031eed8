package geometry

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/meshgen/math"
)

// CurveFunction is some math function in 3d. It is defined and sampled in
// the domain [0, 1]. The parameter t is the offset in that range, which the
// generator samples uniformly to create frames.
type CurveFunction interface {
	// EvalAt evaluates the curve at some point along it.
	EvalAt(t float32) math.Vec3
}

// CurveTangent is implemented by curve functions that can supply an exact
// unit tangent. Curves without it fall back to a central difference
// estimate over two close samples.
type CurveTangent interface {
	TangentAt(t float32) math.Vec3
}

const tangentDelta float32 = 0.0001

func tangentAt(curve CurveFunction, t float32) math.Vec3 {
	if ct, ok := curve.(CurveTangent); ok {
		return ct.TangentAt(t)
	}
	v0 := curve.EvalAt(t - tangentDelta)
	v1 := curve.EvalAt(t + tangentDelta)
	return v1.Sub(v0).Normalize()
}

// Curve is a shape that follows a curve function. It can be 3 things: a
// tube, a line, or a ribbon. To create a ribbon set RadialSegments below 3
// (1 single-sided, 2 double-sided). To create a line set the radius to 0.
// Everything else produces a tube.
type Curve struct {
	/** @brief Radius of the tube. Set to 0 for a line. */
	Radius float32
	/** @brief Underlying curve function to track. */
	Function CurveFunction
	/** @brief Number of samples taken from the curve function. */
	LengthSegments uint32
	/** @brief Number of segments around the tube. 1 or 2 create a ribbon. */
	RadialSegments uint32
	/** @brief The circumference around the tube. Below 2pi the tube is open. */
	RadialCircumference float32
	/**
	 * @brief The offset in radians on the tube radius. For ribbons this
	 * specifies the orientation of the ribbon against the function line.
	 */
	RadialOffset float32
}

// NewCurve returns a thin tube following a straight line up.
func NewCurve() *Curve {
	c := &Curve{}
	c.Defaults()
	return c
}

func (c *Curve) Defaults() {
	c.Radius = 0.05
	c.Function = LineCurve{}
	c.LengthSegments = 64
	c.RadialSegments = 64
	c.RadialCircumference = math.K_PI_2
	c.RadialOffset = 0.0
}

// frenetSerretFrame is a local coordinate system at one sample point along
// the curve. Each frame after the first is derived from its predecessor, so
// the sequence must be computed strictly in order.
type frenetSerretFrame struct {
	origin   math.Vec3
	tangent  math.Vec3
	normal   math.Vec3
	binormal math.Vec3
}

// initialNormal selects a reference axis in the direction of the minimum
// component of the tangent. Picking the most-perpendicular world axis keeps
// the cross products well conditioned no matter where the curve starts.
func initialNormal(tangent math.Vec3) math.Vec3 {
	min := math.K_INFINITY
	tx := math32.Abs(tangent.X)
	ty := math32.Abs(tangent.Y)
	tz := math32.Abs(tangent.Z)

	normal := math.NewVec3Zero()

	if tx <= min {
		min = tx
		normal = math.NewVec3(1.0, 0.0, 0.0)
	}
	if ty <= min {
		min = ty
		normal = math.NewVec3(0.0, 1.0, 0.0)
	}
	if tz <= min {
		normal = math.NewVec3(0.0, 0.0, 1.0)
	}

	return normal
}

func initialFrame(curve CurveFunction) frenetSerretFrame {
	origin := curve.EvalAt(0.0)
	tangent := tangentAt(curve, 0.0)
	normal := initialNormal(tangent)
	// Double cross product guarantees orthogonality to the tangent.
	v := tangent.Cross(tangent.Cross(normal).Normalize())

	return frenetSerretFrame{
		origin:   origin,
		tangent:  tangent,
		normal:   v,
		binormal: tangent.Cross(v),
	}
}

/**
 * @brief Computes a smoothly shifting coordinate frame for each sample point
 * by parallel transport: each frame starts from its predecessor's
 * orientation and rotates by the angle between consecutive tangents. This
 * sidesteps the instability of the analytic Frenet frame at points of zero
 * curvature.
 *
 * If the curve is closed, the accumulated twist between the last and first
 * frame is redistributed linearly across all frames so the seam lines up.
 */
func calculateFrames(curve CurveFunction, numFrames uint32) []frenetSerretFrame {
	out := make([]frenetSerretFrame, 0, numFrames)
	step := 1.0 / float32(numFrames-1)

	// First frame is different
	out = append(out, initialFrame(curve))

	for i := uint32(1); i < numFrames; i++ {
		t := step * float32(i)
		prev := &out[i-1]

		cur := frenetSerretFrame{
			origin:   curve.EvalAt(t),
			tangent:  tangentAt(curve, t),
			normal:   prev.normal,
			binormal: prev.binormal,
		}

		v := prev.tangent.Cross(cur.tangent)
		if v.Length() > math.K_FLOAT_EPSILON {
			// Consecutive tangents diverge: rotate the carried normal by the
			// angle between them, about their common perpendicular.
			v = v.Normalize()
			angle := math.Clamp(prev.tangent.Dot(cur.tangent), -1.0, 1.0)
			theta := math32.Acos(angle)
			rot := math.NewQuatFromAxisAngle(v, theta)
			cur.normal = rot.RotateVec3(cur.normal)
		}

		cur.binormal = cur.tangent.Cross(cur.normal)
		out = append(out, cur)
	}

	// If the curve is closed, make the frames line up.
	startEndDistance := curve.EvalAt(0.0).Distance(curve.EvalAt(1.0))
	if startEndDistance <= 2.0*math.K_FLOAT_EPSILON {
		first := out[0]
		last := out[len(out)-1]

		// Angular discrepancy between the first and last normal, distributed
		// over the frame count. The clamp guards acos against float overshoot.
		theta := math32.Acos(math.Clamp(first.normal.Dot(last.normal), -1.0, 1.0)) / float32(numFrames-1)
		if first.tangent.Dot(first.normal.Cross(last.normal)) > 0.0 {
			theta = -theta
		}

		// Rotate each frame a little about its own tangent to close the seam.
		for i := 1; i < len(out); i++ {
			frame := &out[i]
			rot := math.NewQuatFromAxisAngle(frame.tangent, theta*float32(i))
			frame.normal = rot.RotateVec3(frame.normal)
			frame.binormal = frame.tangent.Cross(frame.normal)
		}
	}

	return out
}

// normalization computes the translation and uniform scale that center the
// extents on the origin and fit the longest axis into roughly [-1, 1].
func normalization(extents math.Extents3D) (math.Vec3, float32) {
	center := extents.Center()
	half := extents.Size().MulScalar(0.5)
	maxHalf := math32.Max(half.X, math32.Max(half.Y, half.Z))
	if maxHalf < math.K_FLOAT_EPSILON {
		// Degenerate point cloud, nothing to rescale.
		return center, 1.0
	}
	return center, 1.0 / maxHalf
}

func normalizeFrames(frames []frenetSerretFrame) {
	extents := math.NewExtents3D()
	for i := range frames {
		extents.ExpandByPoint(frames[i].origin)
	}
	center, scale := normalization(extents)
	for i := range frames {
		frames[i].origin = frames[i].origin.Sub(center).MulScalar(scale)
	}
}

func normalizePositions(positions []math.Vec3) {
	extents := math.NewExtents3D()
	for _, p := range positions {
		extents.ExpandByPoint(p)
	}
	center, scale := normalization(extents)
	for i := range positions {
		positions[i] = positions[i].Sub(center).MulScalar(scale)
	}
}

func (c *Curve) addTubeSegment(mesh *MeshData, frame *frenetSerretFrame, index int) {
	angleStep := c.RadialCircumference / float32(c.RadialSegments)

	for i := uint32(0); i <= c.RadialSegments; i++ {
		theta := angleStep*float32(i) + c.RadialOffset
		sin := math32.Sin(theta)
		cos := -math32.Cos(theta)

		normal := frame.normal.MulScalar(cos).Add(frame.binormal.MulScalar(sin)).Normalize()
		position := frame.origin.Add(normal.MulScalar(c.Radius))

		mesh.Normals = append(mesh.Normals, normal)
		mesh.Positions = append(mesh.Positions, position)
		mesh.UVs = append(mesh.UVs, math.NewVec2(
			float32(index)/float32(c.LengthSegments),
			float32(i)/float32(c.RadialSegments),
		))
	}
}

func (c *Curve) addRibbonSegment(mesh *MeshData, frame *frenetSerretFrame, index int) {
	theta := c.RadialOffset + math.K_HALF_PI
	sin := math32.Sin(theta)
	cos := -math32.Cos(theta)
	base := frame.normal.MulScalar(cos).Add(frame.binormal.MulScalar(sin)).Normalize()

	u := float32(index) / float32(c.LengthSegments)

	// Front
	frontNormal := frame.tangent.Cross(base)
	mesh.Normals = append(mesh.Normals, frontNormal, frontNormal)
	mesh.Positions = append(mesh.Positions,
		frame.origin.Add(base.MulScalar(c.Radius)),
		frame.origin.Add(base.MulScalar(-c.Radius)),
	)
	mesh.UVs = append(mesh.UVs, math.NewVec2(u, 0.0), math.NewVec2(u, 1.0))

	// Back
	if c.RadialSegments == 2 {
		backNormal := frontNormal.Negate()
		mesh.Normals = append(mesh.Normals, backNormal, backNormal)
		mesh.Positions = append(mesh.Positions,
			frame.origin.Add(base.MulScalar(-c.Radius)),
			frame.origin.Add(base.MulScalar(c.Radius)),
		)
		mesh.UVs = append(mesh.UVs, math.NewVec2(u, 0.0), math.NewVec2(u, 1.0))
	}
}

// The tube body shares its seam column, so the quad corners can be indexed
// directly ring by ring.
func (c *Curve) indexTube(mesh *MeshData) {
	for j := uint32(1); j <= c.LengthSegments; j++ {
		for i := uint32(1); i <= c.RadialSegments; i++ {
			a := (c.RadialSegments+1)*(j-1) + (i - 1)
			b := (c.RadialSegments+1)*j + (i - 1)
			cc := (c.RadialSegments+1)*j + i
			d := (c.RadialSegments+1)*(j-1) + i

			mesh.Indices = append(mesh.Indices, a, b, d, b, cc, d)
		}
	}
}

func (c *Curve) indexRibbon(mesh *MeshData) {
	for ls := uint32(0); ls < c.LengthSegments; ls++ {
		for rs := uint32(0); rs < c.RadialSegments; rs++ {
			face := FlatTrapezeIndices{
				LowerLeft:  2*c.RadialSegments*ls + 2*rs,
				UpperLeft:  2*c.RadialSegments*(ls+1) + 2*rs,
				LowerRight: 2*c.RadialSegments*ls + 2*rs + 1,
				UpperRight: 2*c.RadialSegments*(ls+1) + 2*rs + 1,
			}
			face.GenerateTriangles(mesh)
		}
	}
}

// makeLine samples the curve into a line strip: positions only, no normals,
// uvs or indices.
func (c *Curve) makeLine() *MeshData {
	mesh := NewMeshData(int(c.LengthSegments)+1, 0)
	mesh.Topology = LineStrip

	step := 1.0 / float32(c.LengthSegments)
	for i := uint32(0); i <= c.LengthSegments; i++ {
		mesh.Positions = append(mesh.Positions, c.Function.EvalAt(step*float32(i)))
	}
	normalizePositions(mesh.Positions)
	return mesh
}

/**
 * @brief Generates the swept mesh: a tube for 3 or more radial segments, a
 * ribbon for 1 or 2, and a plain line strip when the radius is zero or no
 * radial segments are requested.
 *
 * The frame sequence is computed strictly in order (frame i depends on
 * frame i-1) and the resulting point cloud is re-centered and scaled to a
 * unit-ish bounding box before the cross-section sweep.
 *
 * Panics if the parameters violate the preconditions.
 */
func (c *Curve) Generate() *MeshData {
	if c.LengthSegments < 1 {
		panic("curve: must have at least one length segment")
	}

	// Special case: the tube degenerates to a line.
	if math32.Abs(c.Radius) < math.K_FLOAT_EPSILON || c.RadialSegments == 0 {
		return c.makeLine()
	}

	if c.RadialOffset < 0.0 || c.RadialOffset > math.K_PI_2 {
		panic("curve: radial offset must be in [0, 2pi]")
	}
	if c.RadialCircumference <= 0.0 || c.RadialCircumference > math.K_PI_2 {
		panic("curve: radial circumference must be in (0, 2pi]")
	}

	numVertices := int(c.LengthSegments+1) * int(c.RadialSegments+1)
	numIndices := int(c.LengthSegments) * int(c.RadialSegments) * 6
	mesh := NewMeshData(numVertices, numIndices)

	frames := calculateFrames(c.Function, c.LengthSegments+1)
	normalizeFrames(frames)

	for idx := range frames {
		if c.RadialSegments < 3 {
			c.addRibbonSegment(mesh, &frames[idx], idx)
		} else {
			c.addTubeSegment(mesh, &frames[idx], idx)
		}
	}

	if c.RadialSegments < 3 {
		c.indexRibbon(mesh)
	} else {
		c.indexTube(mesh)
	}

	return mesh
}
