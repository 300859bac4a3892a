package model

import (
	"path/filepath"

	"github.com/snifferhu/RIDE/pkg/types"
)

// ResourceFile is a file of shared keywords and variables
type ResourceFile struct {
	dataFile
}

var _ types.Resource = (*ResourceFile)(nil)

// Directory returns the directory containing the resource
func (r *ResourceFile) Directory() string {
	return filepath.Dir(r.source)
}

// Resources returns the resources this resource imports
func (r *ResourceFile) Resources() []types.Resource {
	return r.resolveResources(r)
}

// Serialize writes the resource when it is dirty. Resources have no
// children, so recursive has no effect.
func (r *ResourceFile) Serialize(recursive bool) error {
	if !r.dirty {
		return nil
	}
	return r.write()
}
