package model

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/logging"
	"github.com/snifferhu/RIDE/pkg/types"
)

// CurDir is replaced by the importing file's directory in import paths
const CurDir = "${CURDIR}"

// ResourceCache loads resource files once per path
type ResourceCache struct {
	fsys      types.FS
	resources map[string]*ResourceFile
}

var _ types.ResourceCache = (*ResourceCache)(nil)

// NewResourceCache creates an empty cache reading through fsys
func NewResourceCache(fsys types.FS) *ResourceCache {
	return &ResourceCache{
		fsys:      fsys,
		resources: make(map[string]*ResourceFile),
	}
}

// Len returns the number of cached resources
func (c *ResourceCache) Len() int {
	return len(c.resources)
}

// Resolve turns an import path into a clean absolute path, relative to
// the owner's directory when an owner is given.
func (c *ResourceCache) Resolve(path string, owner types.DataFile) (string, error) {
	if owner != nil {
		dir := owner.Directory()
		path = strings.ReplaceAll(path, CurDir, dir)
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve resource path").
			WithDetail("path", path)
	}
	return abs, nil
}

// LoadResource returns the resource at path, loading it on first use.
// Load failures are not cached.
func (c *ResourceCache) LoadResource(path string, owner types.DataFile) (types.Resource, error) {
	res, err := c.Load(path, owner)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Load is LoadResource returning the concrete type
func (c *ResourceCache) Load(path string, owner types.DataFile) (*ResourceFile, error) {
	resolved, err := c.Resolve(path, owner)
	if err != nil {
		return nil, err
	}

	if res, ok := c.resources[resolved]; ok {
		return res, nil
	}

	logger := logging.GetLogger("model.cache")

	info, err := c.fsys.Stat(resolved)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "resource file does not exist").
				WithDetail("path", resolved)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access resource file").
			WithDetail("path", resolved)
	}
	if info.IsDir() {
		return nil, errors.New(errors.ErrDataInvalid, "resource path is a directory").
			WithDetail("path", resolved)
	}

	doc, codec, err := readDocument(c.fsys, resolved)
	if err != nil {
		return nil, err
	}
	if doc.HasTests() {
		return nil, errors.New(errors.ErrDataInvalid, "resource file cannot contain test cases").
			WithDetail("path", resolved)
	}

	res := &ResourceFile{dataFile{
		fsys:   c.fsys,
		cache:  c,
		source: resolved,
		path:   resolved,
		name:   baseName(resolved),
		codec:  codec,
		doc:    doc,
	}}
	c.resources[resolved] = res

	logger.Debug().
		Str("path", resolved).
		Str("format", codec.Name()).
		Int("keywords", len(doc.Keywords)).
		Msg("Resource loaded")

	return res, nil
}
