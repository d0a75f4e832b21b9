package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("1,0,0,0\n"), 0o644))
}

func TestFirstMeshesSorted(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "first_mesh_2_NODE.csv")
	touch(t, dir, "first_mesh_2_ELEMENT.csv")
	touch(t, dir, "first_mesh_1_NODE.csv")
	touch(t, dir, "first_mesh_1_ELEMENT.csv")
	touch(t, dir, "cad_NODE.csv")
	touch(t, dir, "cad_ELEMENT.csv")

	pairs, err := GlobFinder{}.FirstMeshes(dir)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "1", pairs[0].Index)
	assert.Equal(t, "2", pairs[1].Index)
	assert.Equal(t, filepath.Join(dir, "first_mesh_1_NODE.csv"), pairs[0].NodeFile)
	assert.Equal(t, filepath.Join(dir, "first_mesh_1_ELEMENT.csv"), pairs[0].ElementFile)
}

func TestFirstMeshesSkipsIncompletePair(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "first_mesh_1_NODE.csv")
	touch(t, dir, "first_mesh_1_ELEMENT.csv")
	touch(t, dir, "first_mesh_7_NODE.csv") // no element file

	pairs, err := GlobFinder{}.FirstMeshes(dir)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "1", pairs[0].Index)
}

func TestFirstMeshesNonNumericToken(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "first_mesh_v2_final_NODE.csv")
	touch(t, dir, "first_mesh_v2_final_ELEMENT.csv")

	pairs, err := GlobFinder{}.FirstMeshes(dir)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "v2_final", pairs[0].Index)
}

func TestFirstMeshesEmptyRoot(t *testing.T) {
	pairs, err := GlobFinder{}.FirstMeshes(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestFirstMeshesMissingRoot(t *testing.T) {
	_, err := GlobFinder{}.FirstMeshes(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestVariantAndCadFiles(t *testing.T) {
	node, elem := VariantFiles("/data/01_", "3")
	assert.Equal(t, filepath.Join("/data/01_", "first_mesh_3_NODE.csv"), node)
	assert.Equal(t, filepath.Join("/data/01_", "first_mesh_3_ELEMENT.csv"), elem)

	cn, ce := CadFiles("/data/01_")
	assert.Equal(t, filepath.Join("/data/01_", "cad_NODE.csv"), cn)
	assert.Equal(t, filepath.Join("/data/01_", "cad_ELEMENT.csv"), ce)
}
