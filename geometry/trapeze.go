package geometry

// When indexing a mesh we commonly find flat (occupying a 2 dimensional
// subspace) trapezes: the quad cells of a tiled surface.
type FlatTrapezeIndices struct {
	LowerLeft  uint32
	UpperLeft  uint32
	LowerRight uint32
	UpperRight uint32
}

// GenerateTriangles appends the two triangles of the trapeze to the mesh
// index buffer. The winding here is the single source of truth for the
// front-face convention of every grid-tiled surface.
func (f FlatTrapezeIndices) GenerateTriangles(mesh *MeshData) {
	mesh.Indices = append(mesh.Indices,
		f.UpperLeft, f.UpperRight, f.LowerLeft,
		f.UpperRight, f.LowerRight, f.LowerLeft,
	)
}
