package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/snifferhu/RIDE/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, "suite.toml")
	testContent := []byte("[[tests]]\nname = \"One\"\n")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "suite.toml", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(root, "sub", "dir")
	require.NoError(t, fsys.MkdirAll(subDir, 0755))

	_, err = fsys.ReadFile(filepath.Join(root, "sub"))
	assert.Error(t, err, "reading a directory should fail")

	entries, err := fsys.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, fsys.Remove(testFile))
	_, err = fsys.Stat(testFile)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	assert.NotNil(t, fsys)
	exerciseFS(t, fsys, t.TempDir())
}

func TestNewMemory(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/data", 0755))
	exerciseFS(t, fsys, "/data")

	require.NoError(t, fsys.WriteFile("/data/memory-only.toml", []byte("x"), 0644))
	_, err := os.Stat("/data/memory-only.toml")
	assert.True(t, os.IsNotExist(err), "memory filesystem must not touch disk")
}
