// Package display defines the results rendered by the command line and
// builds them from a data model. The types are plain data so every
// renderer, including JSON, can output them.
package display

import (
	"time"

	"github.com/snifferhu/RIDE/pkg/types"
)

// File kinds shown in reports
const (
	KindSuite          = "suite"
	KindDirectorySuite = "directory suite"
	KindResource       = "resource"
)

// FileReport describes one suite or resource
type FileReport struct {
	Name     string       `json:"name"`
	Source   string       `json:"source"`
	Kind     string       `json:"kind"`
	Format   string       `json:"format,omitempty"` // empty when the file has no format yet
	Dirty    bool         `json:"dirty"`
	Keywords int          `json:"keywords"`
	Children []FileReport `json:"children,omitempty"`
}

// ModelReport is the result of the info command
type ModelReport struct {
	Root          *FileReport  `json:"root,omitempty"`
	RootDir       string       `json:"rootDir,omitempty"`
	Resources     []FileReport `json:"resources"`
	Dirty         bool         `json:"dirty"`
	WithoutFormat []string     `json:"withoutFormat,omitempty"`
}

// KeywordList is the result of the keywords command
type KeywordList struct {
	Keywords []*types.Keyword `json:"keywords"`
}

// KeywordDoc is the result of the doc command
type KeywordDoc struct {
	Keyword *types.Keyword `json:"keyword"`
}

// SaveFailure is one file the save command could not write
type SaveFailure struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// SaveReport is the result of the save command
type SaveReport struct {
	Formatted []string      `json:"formatted,omitempty"` // suites given a format before saving
	Saved     []string      `json:"saved"`
	Failed    []SaveFailure `json:"failed,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// SpecReport is the result of the spec command
type SpecReport struct {
	Name     string `json:"name"`
	Output   string `json:"output"`
	Keywords int    `json:"keywords"`
}
