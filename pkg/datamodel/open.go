package datamodel

import (
	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/types"
)

type fileKind int

const (
	kindSuite fileKind = iota + 1
	kindResource
)

func (k fileKind) String() string {
	switch k {
	case kindSuite:
		return "suite"
	case kindResource:
		return "resource"
	default:
		return "unknown"
	}
}

// classified is the outcome of classify; exactly one of suite and
// resource is set, matching kind.
type classified struct {
	kind     fileKind
	suite    types.Suite
	resource types.Resource
}

// classify decides whether path holds a suite or a resource. Suites are
// tried first. When neither loader accepts the path the returned error
// wraps both failures.
func (m *DataModel) classify(path string) (classified, error) {
	suite, suiteErr := m.factory.NewSuite(path)
	if suiteErr == nil && suite != nil {
		return classified{kind: kindSuite, suite: suite}, nil
	}
	m.logger.Debug().Err(suiteErr).Str("path", path).Msg("Not a suite, trying resource")

	res, resErr := m.cache.LoadResource(path, nil)
	if resErr == nil && res != nil {
		return classified{kind: kindResource, resource: res}, nil
	}
	if resErr == nil {
		resErr = errors.New(errors.ErrNotFound, "no resource loaded")
	}

	return classified{}, errors.Wrapf(errors.Join(suiteErr, resErr), errors.ErrDataInvalid,
		"given file '%s' is not a valid test case or resource file", path).
		WithDetail("path", path)
}
