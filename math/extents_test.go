package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtents2D(t *testing.T) {
	e := NewExtents2D()
	e.ExpandByPoint(NewVec2(-1, 2))
	e.ExpandByPoint(NewVec2(3, -4))

	assert.Equal(t, NewVec2(-1, -4), e.Min)
	assert.Equal(t, NewVec2(3, 2), e.Max)
	assert.Equal(t, NewVec2(4, 6), e.Size())
}

func TestExtents3D(t *testing.T) {
	e := NewExtents3D()
	e.ExpandByPoint(NewVec3(1, 1, 1))
	e.ExpandByPoint(NewVec3(-3, 5, 0))

	assert.Equal(t, NewVec3(-3, 1, 0), e.Min)
	assert.Equal(t, NewVec3(1, 5, 1), e.Max)
	assert.Equal(t, NewVec3(-1, 3, 0.5), e.Center())
	assert.Equal(t, NewVec3(4, 4, 1), e.Size())
}
