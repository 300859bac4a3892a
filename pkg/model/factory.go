package model

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/snifferhu/RIDE/pkg/config"
	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/format"
	"github.com/snifferhu/RIDE/pkg/logging"
	"github.com/snifferhu/RIDE/pkg/types"
)

// DefaultInitName is the base name of directory suite init files
const DefaultInitName = "__init__"

// SuiteFactory builds TestSuite trees from files and directories
type SuiteFactory struct {
	fsys     types.FS
	cache    *ResourceCache
	initName string
	ignore   []string
}

var _ types.SuiteFactory = (*SuiteFactory)(nil)

// FactoryOption configures a SuiteFactory
type FactoryOption func(*SuiteFactory)

// WithInitName sets the base name of directory suite init files
func WithInitName(name string) FactoryOption {
	return func(f *SuiteFactory) {
		if name != "" {
			f.initName = name
		}
	}
}

// WithIgnore sets glob patterns of directory entries to skip
func WithIgnore(patterns []string) FactoryOption {
	return func(f *SuiteFactory) {
		f.ignore = patterns
	}
}

// WithConfig applies the file settings of cfg
func WithConfig(cfg *config.Config) FactoryOption {
	return func(f *SuiteFactory) {
		WithInitName(cfg.Files.InitName)(f)
		WithIgnore(cfg.Files.Ignore)(f)
	}
}

// NewSuiteFactory creates a factory. Suites it builds resolve their
// imports through cache.
func NewSuiteFactory(fsys types.FS, cache *ResourceCache, opts ...FactoryOption) *SuiteFactory {
	f := &SuiteFactory{
		fsys:     fsys,
		cache:    cache,
		initName: DefaultInitName,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewSuite implements types.SuiteFactory
func (f *SuiteFactory) NewSuite(path string) (types.Suite, error) {
	s, err := f.Build(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Build returns the suite at path. A file must contain at least one test
// case; a directory must contain at least one valid child suite.
func (f *SuiteFactory) Build(path string) (*TestSuite, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve suite path").
			WithDetail("path", path)
	}

	info, err := f.fsys.Stat(abs)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "suite path does not exist").
				WithDetail("path", abs)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access suite path").
			WithDetail("path", abs)
	}

	if info.IsDir() {
		return f.buildDirectory(abs)
	}
	return f.buildFile(abs)
}

func (f *SuiteFactory) buildFile(path string) (*TestSuite, error) {
	doc, codec, err := readDocument(f.fsys, path)
	if err != nil {
		return nil, err
	}
	if !doc.HasTests() {
		return nil, errors.New(errors.ErrDataInvalid, "file has no test cases").
			WithDetail("path", path)
	}

	return &TestSuite{
		dataFile: dataFile{
			fsys:   f.fsys,
			cache:  f.cache,
			source: path,
			path:   path,
			name:   suiteName(path),
			codec:  codec,
			doc:    doc,
		},
		initName: f.initName,
	}, nil
}

func (f *SuiteFactory) buildDirectory(dir string) (*TestSuite, error) {
	logger := logging.GetLogger("model.factory")

	entries, err := f.fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read suite directory").
			WithDetail("path", dir)
	}

	suite := &TestSuite{
		dataFile: dataFile{
			fsys:   f.fsys,
			cache:  f.cache,
			source: dir,
			name:   suiteName(dir),
			doc:    &format.Document{},
		},
		directory: true,
		initName:  f.initName,
	}

	for _, entry := range entries {
		name := entry.Name()
		childPath := filepath.Join(dir, name)

		if f.isInitFile(name) {
			if suite.codec != nil {
				logger.Warn().Str("path", childPath).Msg("Multiple init files, using the first one")
				continue
			}
			if err := f.loadInit(suite, childPath); err != nil {
				return nil, err
			}
			continue
		}

		if f.shouldSkip(name) {
			logger.Trace().Str("name", name).Msg("Skipping ignored entry")
			continue
		}

		var child *TestSuite
		if entry.IsDir() {
			child, err = f.buildDirectory(childPath)
		} else if format.IsDataFile(name) {
			child, err = f.buildFile(childPath)
		} else {
			continue
		}

		if err != nil {
			// Files without tests are usually resources
			logger.Debug().Err(err).Str("path", childPath).Msg("Not a suite, skipping")
			continue
		}
		suite.children = append(suite.children, child)
	}

	if len(suite.children) == 0 {
		return nil, errors.New(errors.ErrDataInvalid, "directory contains no test suites").
			WithDetail("path", dir)
	}

	logger.Debug().
		Str("path", dir).
		Int("children", len(suite.children)).
		Bool("hasInit", suite.codec != nil).
		Msg("Directory suite built")

	return suite, nil
}

func (f *SuiteFactory) loadInit(suite *TestSuite, path string) error {
	doc, codec, err := readDocument(f.fsys, path)
	if err != nil {
		return err
	}
	if doc.HasTests() {
		return errors.New(errors.ErrDataInvalid, "init file cannot contain test cases").
			WithDetail("path", path)
	}
	suite.doc = doc
	suite.codec = codec
	suite.path = path
	return nil
}

func (f *SuiteFactory) isInitFile(name string) bool {
	return format.IsDataFile(name) && baseName(name) == f.initName
}

// shouldSkip filters hidden and private entries and configured globs
func (f *SuiteFactory) shouldSkip(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	for _, pattern := range f.ignore {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
