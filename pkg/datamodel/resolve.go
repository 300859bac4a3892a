package datamodel

import (
	"github.com/snifferhu/RIDE/pkg/types"
)

// resolveImportedResources adds every resource reachable from df
func (m *DataModel) resolveImportedResources(df types.DataFile) {
	m.resolve(df, make(map[types.DataFile]struct{}))
}

// resolve walks df depth first: its own imports are added before child
// suites and imported resources are visited. Files already visited in this
// walk are skipped, which ends import cycles.
func (m *DataModel) resolve(df types.DataFile, visited map[types.DataFile]struct{}) {
	if _, seen := visited[df]; seen {
		return
	}
	visited[df] = struct{}{}

	imported := df.Resources()
	for _, res := range imported {
		if m.addResource(res) {
			m.logger.Debug().
				Str("path", res.Source()).
				Str("importer", df.Source()).
				Msg("Resource resolved")
		}
	}

	if suite, ok := df.(types.Suite); ok {
		for _, child := range suite.Suites() {
			m.resolve(child, visited)
		}
	}
	for _, res := range imported {
		m.resolve(res, visited)
	}
}

// addResource appends res unless it is already known
func (m *DataModel) addResource(res types.Resource) bool {
	if m.hasResource(res) {
		return false
	}
	m.resources = append(m.resources, res)
	return true
}

func (m *DataModel) hasResource(res types.Resource) bool {
	for _, r := range m.resources {
		if r == res {
			return true
		}
	}
	return false
}
