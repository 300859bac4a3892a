package types

import (
	"io/fs"
)

// FS is the filesystem interface required for reading and saving test data
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	Remove(name string) error
}

// DataFile is any test data file that can be held by a data model: a test
// suite (file or directory) or a resource file.
//
// Implementations must be pointer types. Data files are compared with ==
// and used as map keys to track identity.
type DataFile interface {
	// Source is the path the file was loaded from. For directory suites
	// this is the directory itself.
	Source() string

	// Name is the display name derived from the source path
	Name() string

	// Directory is the directory relative imports are resolved against
	Directory() string

	// IsDirty reports in-memory edits not yet written to disk
	IsDirty() bool

	Keywords() []*Keyword

	// Resources returns the resource files this file imports. Imports that
	// cannot be loaded are not included.
	Resources() []Resource

	// Serialize writes the file back to disk. Suites also write their
	// child suites when recursive is set.
	Serialize(recursive bool) error
}

// Suite is a test suite. Directory suites hold child suites.
type Suite interface {
	DataFile

	Suites() []Suite
	HasFormat() bool
	IsDirectorySuite() bool
}

// Resource is a file of reusable keywords and variables
type Resource interface {
	DataFile
}

// SuiteFactory builds a suite tree from a path. Paths that do not hold a
// test suite yield an ErrDataInvalid error.
type SuiteFactory interface {
	NewSuite(path string) (Suite, error)
}

// ResourceCache loads resource files, returning the same instance for the
// same file. owner, when non-nil, is the file that imports the resource and
// anchors relative paths. A nil Resource with a nil error means nothing
// could be loaded.
type ResourceCache interface {
	LoadResource(path string, owner DataFile) (Resource, error)
}
