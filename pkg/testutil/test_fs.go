package testutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/snifferhu/RIDE/pkg/filesystem"
	"github.com/snifferhu/RIDE/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// NewTree creates an in-memory filesystem holding files, keyed by
// absolute path.
func NewTree(t testing.TB, files map[string]string) types.FS {
	t.Helper()
	fsys := NewTestFS()
	WriteFiles(t, fsys, files)
	return fsys
}

// WriteFiles writes every file, creating parent directories
func WriteFiles(t testing.TB, fsys types.FS, files map[string]string) {
	t.Helper()
	for path, content := range files {
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// ReadFile returns the content of path or fails the test
func ReadFile(t testing.TB, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// FailingFS wraps an FS and rejects writes to selected paths
type FailingFS struct {
	types.FS
	FailWrites map[string]error
}

// NewFailingFS wraps fsys with no failures configured
func NewFailingFS(fsys types.FS) *FailingFS {
	return &FailingFS{FS: fsys, FailWrites: make(map[string]error)}
}

// WriteFile fails with the configured error for path, if any
func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err, ok := f.FailWrites[name]; ok {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}
