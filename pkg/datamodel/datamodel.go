package datamodel

import (
	"github.com/rs/zerolog"
	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/logging"
	"github.com/snifferhu/RIDE/pkg/types"
)

// DataModel is the root aggregate of an editing session. It is not safe
// for concurrent use.
type DataModel struct {
	factory types.SuiteFactory
	cache   types.ResourceCache
	logger  zerolog.Logger

	recursiveKeywords bool

	suite     types.Suite
	resources []types.Resource
}

// Option configures a DataModel
type Option func(*DataModel)

// WithLogger replaces the default component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(m *DataModel) {
		m.logger = logger
	}
}

// WithRecursiveKeywordScan makes AllKeywords include keywords of every
// nested suite instead of only the direct children of the root suite.
func WithRecursiveKeywordScan(enabled bool) Option {
	return func(m *DataModel) {
		m.recursiveKeywords = enabled
	}
}

// New creates a data model and opens path, which may be a suite file, a
// suite directory or a resource file. An empty path gives an empty model.
func New(factory types.SuiteFactory, cache types.ResourceCache, path string, opts ...Option) (*DataModel, error) {
	m := &DataModel{
		factory: factory,
		cache:   cache,
		logger:  logging.GetLogger("datamodel"),
	}
	for _, opt := range opts {
		opt(m)
	}

	if path == "" {
		return m, nil
	}
	if err := m.open(path); err != nil {
		return nil, err
	}
	return m, nil
}

// Suite returns the root suite, or nil when a resource file was opened
func (m *DataModel) Suite() types.Suite {
	return m.suite
}

// Resources returns the known resources in discovery order
func (m *DataModel) Resources() []types.Resource {
	out := make([]types.Resource, len(m.resources))
	copy(out, m.resources)
	return out
}

// OpenResource loads the resource at path, resolving it against owner when
// given, and adds it with everything it imports. It returns nil when the
// cache yields nothing or the resource is already part of the model.
func (m *DataModel) OpenResource(path string, owner types.DataFile) (types.Resource, error) {
	res, err := m.cache.LoadResource(path, owner)
	if err != nil {
		return nil, err
	}
	if res == nil || !m.addResource(res) {
		return nil, nil
	}

	m.logger.Debug().Str("path", res.Source()).Msg("Resource opened")
	m.resolveImportedResources(res)
	return res, nil
}

func (m *DataModel) open(path string) error {
	opened, err := m.classify(path)
	if err != nil {
		return err
	}

	switch opened.kind {
	case kindSuite:
		m.suite = opened.suite
		m.resolveImportedResources(opened.suite)
	case kindResource:
		m.addResource(opened.resource)
		m.resolveImportedResources(opened.resource)
	}

	m.logger.Info().
		Str("path", path).
		Stringer("kind", opened.kind).
		Int("resources", len(m.resources)).
		Msg("Data opened")
	return nil
}

// FindKeyword returns the keyword whose long name equals name, or failing
// that the first keyword in AllKeywords order with that simple name.
func (m *DataModel) FindKeyword(name string) (*types.Keyword, error) {
	kws := m.AllKeywords()
	for _, kw := range kws {
		if kw.LongName() == name {
			return kw, nil
		}
	}
	for _, kw := range kws {
		if kw.Name == name {
			return kw, nil
		}
	}
	return nil, errors.Newf(errors.ErrKeywordNotFound, "no keyword named %q", name)
}
