package core

import (
	"errors"
)

var (
	// ErrInvalidInput indicates that caller-supplied shape data (such as a
	// polygon outline) violates the input contract. Recoverable: fix the
	// input and generate again.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTriangulation indicates that a polygon outline could not be
	// triangulated, typically because it self-intersects or contains
	// duplicate coincident points.
	ErrTriangulation = errors.New("triangulation failed")
)
