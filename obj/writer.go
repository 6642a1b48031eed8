package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spaghettifunk/meshgen/geometry"
)

/**
 * @brief Writes the mesh to w as a Wavefront OBJ object.
 *
 * Triangle meshes emit the position, normal and uv buffers followed by one
 * `f` statement per triangle. Line strips carry positions only and emit a
 * single `l` statement chaining all samples. OBJ indices are 1-based.
 */
func Write(w io.Writer, name string, mesh *geometry.MeshData) error {
	if mesh == nil || len(mesh.Positions) == 0 {
		return fmt.Errorf("obj: mesh %q has no vertices", name)
	}
	if name == "" {
		name = geometry.DefaultGeometryName
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o %s\n", name)

	for _, p := range mesh.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}

	switch mesh.Topology {
	case geometry.LineStrip:
		fmt.Fprint(bw, "l")
		for i := range mesh.Positions {
			fmt.Fprintf(bw, " %d", i+1)
		}
		fmt.Fprintln(bw)

	case geometry.TriangleList:
		if len(mesh.Indices)%3 != 0 {
			return fmt.Errorf("obj: mesh %q has a partial triangle, %d indices", name, len(mesh.Indices))
		}

		for _, n := range mesh.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
		for _, uv := range mesh.UVs {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
		}

		// Every vertex carries all three attributes at the same index, so the
		// face references repeat one index per corner.
		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			a := mesh.Indices[i] + 1
			b := mesh.Indices[i+1] + 1
			c := mesh.Indices[i+2] + 1
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}

	default:
		return fmt.Errorf("obj: mesh %q has unknown topology %d", name, mesh.Topology)
	}

	return bw.Flush()
}

// WriteFile writes the mesh to the named file, creating or truncating it.
func WriteFile(filename, name string, mesh *geometry.MeshData) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("obj: failed to create %s: %w", filename, err)
	}
	defer file.Close()

	if err := Write(file, name, mesh); err != nil {
		return err
	}
	return file.Close()
}
