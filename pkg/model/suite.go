package model

import (
	"path/filepath"

	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/format"
	"github.com/snifferhu/RIDE/pkg/types"
)

// TestSuite is a file suite or a directory suite. A directory suite takes
// its settings and keywords from an optional init file and holds one child
// per valid file or sub-directory.
type TestSuite struct {
	dataFile

	directory bool
	initName  string
	children  []*TestSuite
}

var _ types.Suite = (*TestSuite)(nil)

// Suites returns the direct child suites
func (s *TestSuite) Suites() []types.Suite {
	suites := make([]types.Suite, len(s.children))
	for i, c := range s.children {
		suites[i] = c
	}
	return suites
}

// Children returns the direct child suites with their concrete type
func (s *TestSuite) Children() []*TestSuite {
	return s.children
}

func (s *TestSuite) IsDirectorySuite() bool { return s.directory }

// HasFormat reports whether the suite knows how to save itself. Directory
// suites without an init file have no format until SetFormat is called.
func (s *TestSuite) HasFormat() bool { return s.codec != nil }

// Directory returns the suite directory, or the directory holding a file suite
func (s *TestSuite) Directory() string {
	if s.directory {
		return s.source
	}
	return filepath.Dir(s.source)
}

// Tests returns the test cases defined directly in this suite
func (s *TestSuite) Tests() []format.TestCase {
	return s.doc.Tests
}

// AddTest appends a test case
func (s *TestSuite) AddTest(tc format.TestCase) {
	s.doc.Tests = append(s.doc.Tests, tc)
	s.dirty = true
}

// SetFormat chooses the format of a suite that has none. For a directory
// suite this also decides the init file written on save.
func (s *TestSuite) SetFormat(name string) error {
	if s.codec != nil {
		return errors.New(errors.ErrInvalidInput, "suite already has a format").
			WithDetail("path", s.source).
			WithDetail("format", s.codec.Name())
	}

	codec, err := format.ByName(name)
	if err != nil {
		return err
	}

	s.codec = codec
	if s.directory {
		s.path = filepath.Join(s.source, format.FileName(s.initName, codec))
	}
	s.dirty = true
	return nil
}

// Resources returns the resources imported by this suite only; child
// suites report their own.
func (s *TestSuite) Resources() []types.Resource {
	return s.resolveResources(s)
}

// Serialize writes the suite when dirty and, if recursive, every child
// suite. All children are attempted; failures are joined, each child
// failure prefixed with the child's source.
func (s *TestSuite) Serialize(recursive bool) error {
	var errs []error
	if s.dirty {
		if err := s.write(); err != nil {
			errs = append(errs, err)
		}
	}
	if recursive {
		for _, c := range s.children {
			if err := c.Serialize(true); err != nil {
				errs = append(errs, errors.Wrapf(err, errors.GetErrorCode(err), "%s", c.Source()))
			}
		}
	}
	return errors.Join(errs...)
}
