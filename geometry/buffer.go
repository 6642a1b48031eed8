package geometry

import (
	"github.com/spaghettifunk/meshgen/math"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

// Topology describes how the consuming renderer assembles the buffer
// contents into primitives.
type Topology uint8

const (
	// TriangleList interprets every consecutive index triple as one triangle.
	TriangleList Topology = iota
	// LineStrip interprets the positions as a connected polyline. Meshes
	// with this topology carry positions only (no normals, uvs or indices).
	LineStrip
)

/**
 * @brief The output of every generator: parallel per-vertex arrays plus a
 * flat triangle index list. Positions, Normals and UVs are index-aligned,
 * and every index refers into them. A MeshData is created fresh by each
 * generation call and ownership passes to the caller on return.
 */
type MeshData struct {
	/** @brief Vertex positions. */
	Positions []math.Vec3
	/** @brief Per-vertex unit normals. Same length as Positions. */
	Normals []math.Vec3
	/** @brief Per-vertex texture coordinates in [0,1]x[0,1]. Same length as Positions. */
	UVs []math.Vec2
	/** @brief Triangle indices, three per triangle, counter-clockwise front faces. */
	Indices []uint32
	/** @brief How the buffer should be assembled into primitives. */
	Topology Topology
}

/**
 * @brief Creates an empty MeshData with capacity hints for the expected
 * number of vertices and indices.
 */
func NewMeshData(numVertices, numIndices int) *MeshData {
	return &MeshData{
		Positions: make([]math.Vec3, 0, numVertices),
		Normals:   make([]math.Vec3, 0, numVertices),
		UVs:       make([]math.Vec2, 0, numVertices),
		Indices:   make([]uint32, 0, numIndices),
		Topology:  TriangleList,
	}
}

/**
 * @brief Returns the axis-aligned bounding extents of all positions.
 */
func (m *MeshData) Extents() math.Extents3D {
	extents := math.NewExtents3D()
	for _, p := range m.Positions {
		extents.ExpandByPoint(p)
	}
	return extents
}

/**
 * @brief Returns the center of the bounding extents.
 */
func (m *MeshData) Center() math.Vec3 {
	return m.Extents().Center()
}
