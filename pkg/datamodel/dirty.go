package datamodel

import (
	"github.com/snifferhu/RIDE/pkg/types"
)

// IsDirty reports whether any suite in the tree or any resource has
// unsaved changes
func (m *DataModel) IsDirty() bool {
	if m.suite != nil && isSuiteDirty(m.suite) {
		return true
	}
	for _, res := range m.resources {
		if res.IsDirty() {
			return true
		}
	}
	return false
}

func isSuiteDirty(suite types.Suite) bool {
	if suite.IsDirty() {
		return true
	}
	for _, child := range suite.Suites() {
		if isSuiteDirty(child) {
			return true
		}
	}
	return false
}

// FilesWithoutFormat returns the dirty suites that cannot be saved until a
// format is chosen. With a nil suite the root suite and its direct
// children are checked; otherwise only suite is. The result is empty when
// no suite is open.
func (m *DataModel) FilesWithoutFormat(suite types.Suite) []types.Suite {
	if m.suite == nil {
		return nil
	}

	candidates := []types.Suite{suite}
	if suite == nil {
		candidates = append([]types.Suite{m.suite}, m.suite.Suites()...)
	}

	var out []types.Suite
	for _, s := range candidates {
		if s.IsDirty() && !s.HasFormat() {
			out = append(out, s)
		}
	}
	return out
}

// RootSuiteDirPath returns the directory of the root suite, or "" when no
// suite is open
func (m *DataModel) RootSuiteDirPath() string {
	if m.suite == nil {
		return ""
	}
	return m.suite.Directory()
}

// IsDirectorySuite reports whether the root suite is a directory suite
func (m *DataModel) IsDirectorySuite() bool {
	return m.suite != nil && m.suite.IsDirectorySuite()
}
