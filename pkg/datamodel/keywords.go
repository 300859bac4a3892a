package datamodel

import (
	"sort"

	"github.com/snifferhu/RIDE/pkg/types"
)

// AllKeywords returns the keywords of the root suite, its child suites and
// every resource, one per long name, sorted by simple name.
//
// Only direct children of the root suite contribute unless the model was
// created WithRecursiveKeywordScan.
func (m *DataModel) AllKeywords() []*types.Keyword {
	var kws []*types.Keyword
	if m.suite != nil {
		kws = append(kws, m.suite.Keywords()...)
		for _, child := range m.suite.Suites() {
			kws = m.appendSuiteKeywords(kws, child)
		}
	}
	for _, res := range m.resources {
		kws = append(kws, res.Keywords()...)
	}

	return Unique(kws)
}

// Unique keeps the last keyword of each long name and sorts the result
// by simple name. AllKeywords output stays unique when more keywords are
// appended to it and passed through Unique again.
func Unique(kws []*types.Keyword) []*types.Keyword {
	kws = lastByLongName(kws)
	sort.SliceStable(kws, func(i, j int) bool {
		return kws[i].Name < kws[j].Name
	})
	return kws
}

func (m *DataModel) appendSuiteKeywords(kws []*types.Keyword, suite types.Suite) []*types.Keyword {
	kws = append(kws, suite.Keywords()...)
	if m.recursiveKeywords {
		for _, child := range suite.Suites() {
			kws = m.appendSuiteKeywords(kws, child)
		}
	}
	return kws
}

// lastByLongName keeps one keyword per long name. A later keyword replaces
// an earlier one in the earlier one's position.
func lastByLongName(kws []*types.Keyword) []*types.Keyword {
	index := make(map[string]int, len(kws))
	out := make([]*types.Keyword, 0, len(kws))
	for _, kw := range kws {
		name := kw.LongName()
		if i, ok := index[name]; ok {
			out[i] = kw
			continue
		}
		index[name] = len(out)
		out = append(out, kw)
	}
	return out
}
