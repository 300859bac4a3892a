package display

import (
	"github.com/snifferhu/RIDE/pkg/datamodel"
	"github.com/snifferhu/RIDE/pkg/types"
)

type formatted interface {
	Format() string
}

// NewModelReport summarises the suite tree and resources of m
func NewModelReport(m *datamodel.DataModel) *ModelReport {
	report := &ModelReport{
		RootDir:   m.RootSuiteDirPath(),
		Resources: make([]FileReport, 0, len(m.Resources())),
		Dirty:     m.IsDirty(),
	}

	if suite := m.Suite(); suite != nil {
		root := suiteReport(suite)
		report.Root = &root
	}
	for _, res := range m.Resources() {
		report.Resources = append(report.Resources, fileReport(res, KindResource))
	}
	for _, s := range m.FilesWithoutFormat(nil) {
		report.WithoutFormat = append(report.WithoutFormat, s.Source())
	}
	return report
}

func suiteReport(s types.Suite) FileReport {
	kind := KindSuite
	if s.IsDirectorySuite() {
		kind = KindDirectorySuite
	}
	report := fileReport(s, kind)
	for _, child := range s.Suites() {
		report.Children = append(report.Children, suiteReport(child))
	}
	return report
}

func fileReport(df types.DataFile, kind string) FileReport {
	report := FileReport{
		Name:     df.Name(),
		Source:   df.Source(),
		Kind:     kind,
		Dirty:    df.IsDirty(),
		Keywords: len(df.Keywords()),
	}
	if f, ok := df.(formatted); ok {
		report.Format = f.Format()
	}
	return report
}
