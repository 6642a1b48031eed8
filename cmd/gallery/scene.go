package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/meshgen/geometry"
	"github.com/spaghettifunk/meshgen/math"
)

// Scene is the top-level layout of a scene file: a list of shape tables.
type Scene struct {
	Shapes []ShapeConfig `toml:"shapes"`
}

// ShapeConfig is one [[shapes]] table. Type selects the generator; the
// remaining fields are optional overrides and fall back to the generator
// defaults when absent, which is why they are pointers.
type ShapeConfig struct {
	Name string `toml:"name"`
	Type string `toml:"type"`

	Radius   *float32 `toml:"radius"`
	Height   *float32 `toml:"height"`
	Segments *uint32  `toml:"segments"`

	RadiusBottom   *float32 `toml:"radius_bottom"`
	RadiusTop      *float32 `toml:"radius_top"`
	RadialSegments *uint32  `toml:"radial_segments"`
	HeightSegments *uint32  `toml:"height_segments"`

	Width         *float32 `toml:"width"`
	WidthSegments *uint32  `toml:"width_segments"`

	TubeRadius          *float32 `toml:"tube_radius"`
	TubeSegments        *uint32  `toml:"tube_segments"`
	RadialCircumference *float32 `toml:"radial_circumference"`
	TubeCircumference   *float32 `toml:"tube_circumference"`
	RadialOffset        *float32 `toml:"radial_offset"`
	TubeOffset          *float32 `toml:"tube_offset"`

	// Polygon outline as [x, y] pairs, or a regular shape via sides.
	Points      [][]float32 `toml:"points"`
	Sides       *int        `toml:"sides"`
	InnerRadius *float32    `toml:"inner_radius"`

	// Curve function selection: line, wave, knot, helix or walk.
	Curve          string   `toml:"curve"`
	LengthSegments *uint32  `toml:"length_segments"`
	Amplitude      *float32 `toml:"amplitude"`
	RotationWinds  *uint32  `toml:"rotation_winds"`
	CircleWinds    *uint32  `toml:"circle_winds"`
	Turns          *float32 `toml:"turns"`
	Steps          *int     `toml:"steps"`
	Seed           *uint64  `toml:"seed"`
}

// LoadScene reads and parses the scene file. Shapes without a name get a
// random one so their output files never collide.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: failed to read %s: %w", path, err)
	}

	var scene Scene
	if err := toml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("scene: failed to parse %s: %w", path, err)
	}
	if len(scene.Shapes) == 0 {
		return nil, fmt.Errorf("scene: %s contains no shapes", path)
	}

	for i := range scene.Shapes {
		if scene.Shapes[i].Name == "" {
			scene.Shapes[i].Name = fmt.Sprintf("%s-%s", scene.Shapes[i].Type, uuid.New().String())
		}
	}

	return &scene, nil
}

func overrideF32(dst *float32, src *float32) {
	if src != nil {
		*dst = *src
	}
}

func overrideU32(dst *uint32, src *uint32) {
	if src != nil {
		*dst = *src
	}
}

// BuildMesh runs the generator selected by the config. Generator panics
// (bad fixed parameters) are turned into errors so one broken shape does
// not take the whole scene down.
func (c *ShapeConfig) BuildMesh() (mesh *geometry.MeshData, err error) {
	defer func() {
		if r := recover(); r != nil {
			mesh = nil
			err = fmt.Errorf("shape %s: %v", c.Name, r)
		}
	}()

	switch c.Type {
	case "cone":
		shape := geometry.NewCone()
		overrideF32(&shape.Radius, c.Radius)
		overrideF32(&shape.Height, c.Height)
		overrideU32(&shape.Segments, c.Segments)
		return shape.Generate(), nil

	case "cylinder":
		shape := geometry.NewCylinder()
		overrideF32(&shape.Height, c.Height)
		overrideF32(&shape.RadiusBottom, c.RadiusBottom)
		overrideF32(&shape.RadiusTop, c.RadiusTop)
		overrideU32(&shape.RadialSegments, c.RadialSegments)
		overrideU32(&shape.HeightSegments, c.HeightSegments)
		return shape.Generate(), nil

	case "grid":
		shape := geometry.NewGrid()
		overrideF32(&shape.Width, c.Width)
		overrideF32(&shape.Height, c.Height)
		overrideU32(&shape.WidthSegments, c.WidthSegments)
		overrideU32(&shape.HeightSegments, c.HeightSegments)
		return shape.Generate(), nil

	case "torus":
		shape := geometry.NewTorus()
		overrideF32(&shape.Radius, c.Radius)
		overrideF32(&shape.TubeRadius, c.TubeRadius)
		overrideU32(&shape.RadialSegments, c.RadialSegments)
		overrideU32(&shape.TubeSegments, c.TubeSegments)
		overrideF32(&shape.RadialCircumference, c.RadialCircumference)
		overrideF32(&shape.TubeCircumference, c.TubeCircumference)
		overrideF32(&shape.RadialOffset, c.RadialOffset)
		overrideF32(&shape.TubeOffset, c.TubeOffset)
		return shape.Generate(), nil

	case "polygon":
		return c.buildPolygon()

	case "star":
		if c.Sides == nil || c.Radius == nil || c.InnerRadius == nil {
			return nil, fmt.Errorf("shape %s: star needs sides, radius and inner_radius", c.Name)
		}
		return geometry.NewStar(*c.Radius, *c.InnerRadius, *c.Sides).Generate()

	case "curve":
		shape := geometry.NewCurve()
		overrideF32(&shape.Radius, c.Radius)
		overrideU32(&shape.LengthSegments, c.LengthSegments)
		overrideU32(&shape.RadialSegments, c.RadialSegments)
		overrideF32(&shape.RadialCircumference, c.RadialCircumference)
		overrideF32(&shape.RadialOffset, c.RadialOffset)
		fn, err := c.curveFunction()
		if err != nil {
			return nil, err
		}
		shape.Function = fn
		return shape.Generate(), nil

	default:
		return nil, fmt.Errorf("shape %s: unknown type %q", c.Name, c.Type)
	}
}

func (c *ShapeConfig) buildPolygon() (*geometry.MeshData, error) {
	if c.Sides != nil {
		radius := float32(0.5)
		overrideF32(&radius, c.Radius)
		return geometry.NewRegularNgon(radius, *c.Sides).Generate()
	}

	points := make([]math.Vec2, 0, len(c.Points))
	for i, p := range c.Points {
		if len(p) != 2 {
			return nil, fmt.Errorf("shape %s: outline point %d must be an [x, y] pair", c.Name, i)
		}
		points = append(points, math.NewVec2(p[0], p[1]))
	}
	return (&geometry.Polygon{Points: points}).Generate()
}

func (c *ShapeConfig) curveFunction() (geometry.CurveFunction, error) {
	switch c.Curve {
	case "", "line":
		return geometry.LineCurve{}, nil

	case "wave":
		fn := geometry.NewWaveCurve()
		overrideF32(&fn.Amplitude, c.Amplitude)
		return fn, nil

	case "knot":
		fn := geometry.NewTrefoilKnot()
		overrideU32(&fn.RotationWinds, c.RotationWinds)
		overrideU32(&fn.CircleWinds, c.CircleWinds)
		return fn, nil

	case "helix":
		fn := geometry.NewHelixCurve()
		overrideF32(&fn.Radius, c.TubeRadius)
		overrideF32(&fn.Turns, c.Turns)
		overrideF32(&fn.Height, c.Height)
		return fn, nil

	case "walk":
		steps := 16
		if c.Steps != nil {
			steps = *c.Steps
		}
		var seed uint64 = 1
		if c.Seed != nil {
			seed = *c.Seed
		}
		return geometry.NewRandomWalkCurve(steps, seed), nil

	default:
		return nil, fmt.Errorf("shape %s: unknown curve %q", c.Name, c.Curve)
	}
}
