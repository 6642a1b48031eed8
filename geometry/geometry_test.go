package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/meshgen/math"
)

// assertMeshWellFormed checks the structural invariants shared by every
// triangle mesh: matching buffer lengths, complete triangles, in-range
// indices and unit-length normals.
func assertMeshWellFormed(t *testing.T, mesh *MeshData) {
	t.Helper()
	require.NotNil(t, mesh)
	require.Equal(t, TriangleList, mesh.Topology)

	n := len(mesh.Positions)
	assert.Equal(t, n, len(mesh.Normals), "normals must match positions")
	assert.Equal(t, n, len(mesh.UVs), "uvs must match positions")
	require.Zero(t, len(mesh.Indices)%3, "indices must form whole triangles")

	for _, i := range mesh.Indices {
		require.Less(t, int(i), n, "index out of range")
	}
	for i, normal := range mesh.Normals {
		assert.InDelta(t, 1.0, float64(normal.Length()), 1.0e-4, "normal %d not unit length", i)
	}
	for i, uv := range mesh.UVs {
		assert.GreaterOrEqual(t, uv.X, float32(0), "uv %d below range", i)
		assert.LessOrEqual(t, uv.X, float32(1.0001), "uv %d above range", i)
		assert.GreaterOrEqual(t, uv.Y, float32(0), "uv %d below range", i)
		assert.LessOrEqual(t, uv.Y, float32(1.0001), "uv %d above range", i)
	}
}

// assertConsistentWinding checks that every triangle's geometric facing
// agrees with its vertex normals, so all faces are visible from outside.
func assertConsistentWinding(t *testing.T, mesh *MeshData) {
	t.Helper()
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := mesh.Positions[mesh.Indices[i]]
		b := mesh.Positions[mesh.Indices[i+1]]
		c := mesh.Positions[mesh.Indices[i+2]]

		geometric := b.Sub(a).Cross(c.Sub(a))
		if geometric.Length() < 1.0e-7 {
			continue
		}

		shaded := mesh.Normals[mesh.Indices[i]].
			Add(mesh.Normals[mesh.Indices[i+1]]).
			Add(mesh.Normals[mesh.Indices[i+2]])

		assert.Greater(t, geometric.Dot(shaded), float32(0),
			"triangle %d wound against its normals", i/3)
	}
}

func TestMeshDataExtents(t *testing.T) {
	mesh := NewMeshData(2, 0)
	mesh.Positions = append(mesh.Positions,
		math.NewVec3(-1, 0, 2),
		math.NewVec3(3, -2, 0),
	)

	extents := mesh.Extents()
	assert.Equal(t, math.NewVec3(-1, -2, 0), extents.Min)
	assert.Equal(t, math.NewVec3(3, 0, 2), extents.Max)
	assert.Equal(t, math.NewVec3(1, -1, 1), mesh.Center())
}

func TestFlatTrapezeIndices(t *testing.T) {
	mesh := NewMeshData(4, 6)
	face := FlatTrapezeIndices{LowerLeft: 0, UpperLeft: 1, LowerRight: 2, UpperRight: 3}
	face.GenerateTriangles(mesh)

	assert.Equal(t, []uint32{1, 3, 0, 3, 2, 0}, mesh.Indices)
}
