package datamodel_test

import (
	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/types"
)

// fakeFile records Serialize calls and returns canned data
type fakeFile struct {
	source    string
	dir       string
	dirty     bool
	keywords  []*types.Keyword
	resources []types.Resource

	serializeErr error
	serialized   []bool
}

func (f *fakeFile) Source() string              { return f.source }
func (f *fakeFile) Name() string                { return f.source }
func (f *fakeFile) Directory() string           { return f.dir }
func (f *fakeFile) IsDirty() bool               { return f.dirty }
func (f *fakeFile) Keywords() []*types.Keyword  { return f.keywords }
func (f *fakeFile) Resources() []types.Resource { return f.resources }

func (f *fakeFile) Serialize(recursive bool) error {
	f.serialized = append(f.serialized, recursive)
	return f.serializeErr
}

type fakeResource struct {
	fakeFile
}

type fakeSuite struct {
	fakeFile
	suites    []types.Suite
	hasFormat bool
	directory bool
}

func (s *fakeSuite) Suites() []types.Suite  { return s.suites }
func (s *fakeSuite) HasFormat() bool        { return s.hasFormat }
func (s *fakeSuite) IsDirectorySuite() bool { return s.directory }

func newResource(source string, kws ...*types.Keyword) *fakeResource {
	return &fakeResource{fakeFile{source: source, keywords: kws}}
}

func newSuite(source string, kws ...*types.Keyword) *fakeSuite {
	return &fakeSuite{fakeFile: fakeFile{source: source, dir: "/" + source, keywords: kws}, hasFormat: true}
}

func kw(source, name string) *types.Keyword {
	return &types.Keyword{Name: name, Source: source}
}

type fakeFactory struct {
	suites map[string]types.Suite
	calls  []string
}

func (f *fakeFactory) NewSuite(path string) (types.Suite, error) {
	f.calls = append(f.calls, path)
	if s, ok := f.suites[path]; ok {
		return s, nil
	}
	return nil, errors.New(errors.ErrDataInvalid, "not a suite").WithDetail("path", path)
}

type cacheCall struct {
	path  string
	owner types.DataFile
}

type fakeCache struct {
	resources map[string]types.Resource
	errs      map[string]error
	calls     []cacheCall
}

func (c *fakeCache) LoadResource(path string, owner types.DataFile) (types.Resource, error) {
	c.calls = append(c.calls, cacheCall{path: path, owner: owner})
	if err, ok := c.errs[path]; ok {
		return nil, err
	}
	if r, ok := c.resources[path]; ok {
		return r, nil
	}
	return nil, errors.New(errors.ErrNotFound, "no such resource").WithDetail("path", path)
}
