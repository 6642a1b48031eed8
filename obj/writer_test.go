package obj

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/meshgen/geometry"
)

func TestWriteTriangleMesh(t *testing.T) {
	mesh := geometry.NewGrid().Generate()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "grid", mesh))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Equal(t, "o grid", lines[0])
	assert.Equal(t, 4, strings.Count(out, "v "))
	assert.Equal(t, 4, strings.Count(out, "vn "))
	assert.Equal(t, 4, strings.Count(out, "vt "))
	assert.Equal(t, 2, strings.Count(out, "f "))

	// OBJ faces are 1-based.
	assert.NotContains(t, out, " 0/")
}

func TestWriteLineStrip(t *testing.T) {
	curve := geometry.NewCurve()
	curve.Radius = 0
	curve.LengthSegments = 4
	mesh := curve.Generate()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "line", mesh))

	out := buf.String()
	assert.Equal(t, 5, strings.Count(out, "v "))
	assert.Contains(t, out, "l 1 2 3 4 5")
	assert.NotContains(t, out, "f ")
	assert.NotContains(t, out, "vn ")
}

func TestWriteRejectsEmptyMesh(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, "empty", geometry.NewMeshData(0, 0)))
	assert.Error(t, Write(&bytes.Buffer{}, "nil", nil))
}

func TestWriteFile(t *testing.T) {
	mesh := geometry.NewCone().Generate()
	target := filepath.Join(t.TempDir(), "cone.obj")

	require.NoError(t, WriteFile(target, "cone", mesh))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "o cone\n"))
}
