package datamodel

import (
	"fmt"
	"strings"

	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/logging"
	"github.com/snifferhu/RIDE/pkg/types"
)

// Failure is one file that could not be saved
type Failure struct {
	Source string
	Err    error
}

// SerializationError lists every file a Serialize call failed to save
type SerializationError struct {
	Failures []Failure
}

func (e *SerializationError) Error() string {
	lines := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		lines[i] = fmt.Sprintf("%s: %v", f.Source, f.Err)
	}
	return "Following file(s) could not be saved:\n\n" + strings.Join(lines, "\n")
}

// Unwrap exposes the individual failures to errors.Is and errors.As
func (e *SerializationError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}

// Sources returns the paths of the files that failed
func (e *SerializationError) Sources() []string {
	sources := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		sources[i] = f.Source
	}
	return sources
}

// Serialize saves df, or with a nil df every suite of the tree and every
// resource. Each file is saved on its own so a failure names the file
// that caused it. Every file is attempted; failures are logged together
// and returned as a *SerializationError wrapped in a SERIALIZATION coded
// error.
func (m *DataModel) Serialize(df types.DataFile) error {
	done := logging.LogOperationStart(m.logger, "serialize")
	defer done()

	files := m.filesToSerialize(df)

	var failures []Failure
	for _, f := range files {
		if err := f.Serialize(false); err != nil {
			failures = append(failures, Failure{Source: f.Source(), Err: err})
		}
	}

	if len(failures) == 0 {
		m.logger.Debug().Int("count", len(files)).Msg("Files serialized")
		return nil
	}

	serr := &SerializationError{Failures: failures}
	m.logger.Error().
		Strs("files", serr.Sources()).
		Msg(serr.Error())

	return errors.Wrapf(serr, errors.ErrSerialization, "%d file(s) could not be saved", len(failures))
}

func (m *DataModel) filesToSerialize(df types.DataFile) []types.DataFile {
	if df != nil {
		return []types.DataFile{df}
	}

	var files []types.DataFile
	var walk func(s types.Suite)
	walk = func(s types.Suite) {
		files = append(files, s)
		for _, child := range s.Suites() {
			walk(child)
		}
	}
	if m.suite != nil {
		walk(m.suite)
	}
	for _, res := range m.resources {
		files = append(files, res)
	}
	return files
}
