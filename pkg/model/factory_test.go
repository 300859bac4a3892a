// Test Type: Unit Test
// Description: Tests for building suite trees from files and directories

package model_test

import (
	"testing"

	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/model"
	"github.com/snifferhu/RIDE/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T, files map[string]string, opts ...model.FactoryOption) (*model.SuiteFactory, *model.ResourceCache) {
	t.Helper()
	fsys := testutil.NewTree(t, files)
	cache := model.NewResourceCache(fsys)
	return model.NewSuiteFactory(fsys, cache, opts...), cache
}

func TestBuildFileSuite(t *testing.T) {
	factory, _ := newFactory(t, testutil.ProjectTree())

	suite, err := factory.Build("/project/login.toml")
	require.NoError(t, err)

	assert.Equal(t, "Login", suite.Name())
	assert.Equal(t, "/project/login.toml", suite.Source())
	assert.Equal(t, "/project", suite.Directory())
	assert.Equal(t, "toml", suite.Format())
	assert.True(t, suite.HasFormat())
	assert.False(t, suite.IsDirectorySuite())
	assert.False(t, suite.IsDirty())
	assert.Empty(t, suite.Suites())
	assert.Len(t, suite.Tests(), 1)
	assert.Equal(t, "Login tests", suite.Documentation())
	assert.Equal(t, []string{"resources/common.toml"}, suite.ResourceImports())

	kws := suite.Keywords()
	require.Len(t, kws, 1)
	assert.Equal(t, "Login.Open Login Page", kws[0].LongName())
}

func TestBuildDirectorySuite(t *testing.T) {
	factory, _ := newFactory(t, testutil.ProjectTree())

	suite, err := factory.Build("/project")
	require.NoError(t, err)

	assert.True(t, suite.IsDirectorySuite())
	assert.Equal(t, "Project", suite.Name())
	assert.Equal(t, "/project", suite.Directory())
	assert.Equal(t, "/project/__init__.toml", suite.Path())
	assert.True(t, suite.HasFormat())
	assert.Equal(t, "All acceptance tests", suite.Documentation())

	children := suite.Children()
	require.Len(t, children, 2, "resources/ and notes.md hold no suites")
	assert.Equal(t, "Checkout", children[0].Name())
	assert.Equal(t, "Login", children[1].Name())
	assert.Len(t, suite.Suites(), 2)

	kws := suite.Keywords()
	require.Len(t, kws, 1)
	assert.Equal(t, "Project.Suite Setup", kws[0].LongName())
}

func TestBuildDirectoryWithoutInit(t *testing.T) {
	factory, _ := newFactory(t, map[string]string{
		"/tests/nested/smoke.hcl": "test {\n  name = \"Smoke\"\n}\n",
	})

	suite, err := factory.Build("/tests")
	require.NoError(t, err)

	assert.False(t, suite.HasFormat())
	assert.Empty(t, suite.Path())
	require.Len(t, suite.Children(), 1)

	nested := suite.Children()[0]
	assert.True(t, nested.IsDirectorySuite())
	require.Len(t, nested.Children(), 1)
	assert.Equal(t, "Smoke", nested.Children()[0].Name())
}

func TestBuildOptions(t *testing.T) {
	files := map[string]string{
		"/tests/setup.yaml":    "keywords:\n  - name: Prepare\n",
		"/tests/one.toml":      "[[tests]]\nname = \"One\"\n",
		"/tests/one.bak.toml":  "[[tests]]\nname = \"Old\"\n",
		"/tests/_private.toml": "[[tests]]\nname = \"Private\"\n",
		"/tests/.hidden.toml":  "[[tests]]\nname = \"Hidden\"\n",
	}

	factory, _ := newFactory(t, files,
		model.WithInitName("setup"),
		model.WithIgnore([]string{"*.bak.*"}),
	)

	suite, err := factory.Build("/tests")
	require.NoError(t, err)

	assert.Equal(t, "yaml", suite.Format())
	require.Len(t, suite.Children(), 1)
	assert.Equal(t, "One", suite.Children()[0].Name())
	require.Len(t, suite.Keywords(), 1)
	assert.Equal(t, "Prepare", suite.Keywords()[0].Name)
}

func TestBuildInvalid(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		path     string
		wantCode errors.ErrorCode
	}{
		{
			name:     "file_without_tests",
			files:    testutil.ProjectTree(),
			path:     "/project/resources/common.toml",
			wantCode: errors.ErrDataInvalid,
		},
		{
			name:     "unsupported_extension",
			files:    testutil.ProjectTree(),
			path:     "/project/notes.md",
			wantCode: errors.ErrDataInvalid,
		},
		{
			name:     "missing_path",
			files:    testutil.ProjectTree(),
			path:     "/project/missing.toml",
			wantCode: errors.ErrNotFound,
		},
		{
			name:     "directory_without_suites",
			files:    testutil.ProjectTree(),
			path:     "/project/resources",
			wantCode: errors.ErrDataInvalid,
		},
		{
			name:     "broken_syntax",
			files:    map[string]string{"/x/broken.toml": "[[tests]\n"},
			path:     "/x/broken.toml",
			wantCode: errors.ErrDataInvalid,
		},
		{
			name:  "init_with_tests",
			files: map[string]string{
				"/x/__init__.toml": "[[tests]]\nname = \"Nope\"\n",
				"/x/ok.toml":       "[[tests]]\nname = \"Ok\"\n",
			},
			path:     "/x",
			wantCode: errors.ErrDataInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, _ := newFactory(t, tt.files)

			suite, err := factory.NewSuite(tt.path)
			require.Error(t, err)
			assert.Nil(t, suite)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
		})
	}
}

func TestSuiteResources(t *testing.T) {
	factory, cache := newFactory(t, testutil.ProjectTree())

	suite, err := factory.Build("/project")
	require.NoError(t, err)

	assert.Empty(t, suite.Resources(), "init file imports nothing")

	checkout := suite.Children()[0]
	res := checkout.Resources()
	require.Len(t, res, 1)
	assert.Equal(t, "/project/resources/checkout.yaml", res[0].Source())

	login := suite.Children()[1]
	res = login.Resources()
	require.Len(t, res, 1)
	assert.Equal(t, "/project/resources/common.toml", res[0].Source())

	assert.Equal(t, 2, cache.Len())
}
