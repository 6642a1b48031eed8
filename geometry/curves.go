package geometry

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/meshgen/math"
)

// LineCurve is a straight line up (y+). It is mainly used as a fallback
// default; users are expected to bring their own curve implementations.
type LineCurve struct{}

func (LineCurve) EvalAt(t float32) math.Vec3 {
	return math.NewVec3(0.0, t, 0.0)
}

func (LineCurve) TangentAt(t float32) math.Vec3 {
	return math.NewVec3(0.0, 1.0, 0.0)
}

// WaveCurve rises along y while swinging sideways through one full sine
// period.
type WaveCurve struct {
	/** @brief The sideways swing distance. */
	Amplitude float32
}

func NewWaveCurve() WaveCurve {
	return WaveCurve{Amplitude: 0.2}
}

func (w WaveCurve) EvalAt(t float32) math.Vec3 {
	swing := math32.Sin(t*math.K_PI_2) * w.Amplitude
	return math.NewVec3(-swing, t, swing)
}

// KnotCurve traces a closed (p, q) torus knot. RotationWinds is the number
// of times the curve winds around the main axis, CircleWinds the number of
// times it winds through the hole.
type KnotCurve struct {
	RotationWinds uint32
	CircleWinds   uint32
}

// NewTrefoilKnot returns the simplest non-trivial knot.
func NewTrefoilKnot() KnotCurve {
	return KnotCurve{RotationWinds: 2, CircleWinds: 3}
}

func (k KnotCurve) EvalAt(t float32) math.Vec3 {
	t *= 2.0 * math.K_PI_2
	cu := math32.Cos(t)
	su := math32.Sin(t)
	quop := float32(k.CircleWinds) / float32(k.RotationWinds) * t
	cs := math32.Cos(quop)

	return math.NewVec3(
		(2.0+cs)*0.5*cu,
		(2.0+cs)*su*0.5,
		math32.Sin(quop)*0.5,
	)
}

// HelixCurve winds around the y axis at a fixed radius while rising at a
// constant rate.
type HelixCurve struct {
	/** @brief Distance from the y axis. */
	Radius float32
	/** @brief Number of full turns over the curve domain. */
	Turns float32
	/** @brief Total rise along y over the curve domain. */
	Height float32
}

func NewHelixCurve() HelixCurve {
	return HelixCurve{Radius: 0.5, Turns: 3.0, Height: 2.0}
}

func (h HelixCurve) EvalAt(t float32) math.Vec3 {
	theta := t * h.Turns * math.K_PI_2
	return math.NewVec3(
		h.Radius*math32.Cos(theta),
		t*h.Height,
		h.Radius*math32.Sin(theta),
	)
}

func (h HelixCurve) TangentAt(t float32) math.Vec3 {
	theta := t * h.Turns * math.K_PI_2
	omega := h.Turns * math.K_PI_2
	return math.NewVec3(
		-h.Radius*omega*math32.Sin(theta),
		h.Height,
		h.Radius*omega*math32.Cos(theta),
	).Normalize()
}

// RandomWalkCurve interpolates linearly between pre-rolled random waypoints.
// The walk is fixed at construction so repeated evaluations of the same t
// agree, which the sequential frame propagation depends on.
type RandomWalkCurve struct {
	waypoints []math.Vec3
}

// NewRandomWalkCurve rolls a walk of the given number of steps. Each step
// moves up by a fixed amount and jitters sideways. The same seed reproduces
// the same walk.
func NewRandomWalkCurve(steps int, seed uint64) RandomWalkCurve {
	if steps < 1 {
		steps = 1
	}
	rng := rand.New(rand.NewSource(seed))

	waypoints := make([]math.Vec3, 0, steps+1)
	cursor := math.NewVec3Zero()
	waypoints = append(waypoints, cursor)
	for i := 0; i < steps; i++ {
		cursor = cursor.Add(math.NewVec3(
			(rng.Float32()-0.5)*0.4,
			1.0/float32(steps),
			(rng.Float32()-0.5)*0.4,
		))
		waypoints = append(waypoints, cursor)
	}

	return RandomWalkCurve{waypoints: waypoints}
}

func (r RandomWalkCurve) EvalAt(t float32) math.Vec3 {
	t = math.Clamp(t, 0.0, 1.0)
	segments := len(r.waypoints) - 1
	if segments < 1 {
		return r.waypoints[0]
	}

	scaled := t * float32(segments)
	i := int(scaled)
	if i >= segments {
		i = segments - 1
	}
	frac := scaled - float32(i)

	a := r.waypoints[i]
	b := r.waypoints[i+1]
	return a.Add(b.Sub(a).MulScalar(frac))
}
