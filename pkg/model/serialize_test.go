package model_test

import (
	"fmt"
	"testing"

	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/format"
	"github.com/snifferhu/RIDE/pkg/model"
	"github.com/snifferhu/RIDE/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeCleanSuiteWritesNothing(t *testing.T) {
	fsys := testutil.NewFailingFS(testutil.NewTree(t, testutil.ProjectTree()))
	fsys.FailWrites["/project/__init__.toml"] = fmt.Errorf("read-only")
	fsys.FailWrites["/project/login.toml"] = fmt.Errorf("read-only")
	fsys.FailWrites["/project/checkout.yaml"] = fmt.Errorf("read-only")

	cache := model.NewResourceCache(fsys)
	suite, err := model.NewSuiteFactory(fsys, cache).Build("/project")
	require.NoError(t, err)

	assert.NoError(t, suite.Serialize(true))
}

func TestSerializeEditedFileSuite(t *testing.T) {
	fsys := testutil.NewTree(t, testutil.ProjectTree())
	factory := model.NewSuiteFactory(fsys, model.NewResourceCache(fsys))

	suite, err := factory.Build("/project/login.toml")
	require.NoError(t, err)

	suite.AddKeyword(format.Keyword{Name: "Close Login Page", Doc: "Closes it."})
	suite.AddTest(format.TestCase{Name: "Invalid Login", Tags: []string{"negative"}})
	suite.SetDocumentation("Updated")
	assert.True(t, suite.IsDirty())

	require.NoError(t, suite.Serialize(false))
	assert.False(t, suite.IsDirty())

	reloaded, err := model.NewSuiteFactory(fsys, model.NewResourceCache(fsys)).Build("/project/login.toml")
	require.NoError(t, err)
	assert.Equal(t, "Updated", reloaded.Documentation())
	assert.Len(t, reloaded.Tests(), 2)

	kws := reloaded.Keywords()
	require.Len(t, kws, 2)
	assert.Equal(t, "Close Login Page", kws[1].Name)
	assert.Equal(t, "Closes it.", kws[1].Doc)
}

func TestSerializeResource(t *testing.T) {
	fsys := testutil.NewTree(t, testutil.ProjectTree())
	cache := model.NewResourceCache(fsys)

	res, err := cache.Load("/project/resources/base.hcl", nil)
	require.NoError(t, err)

	assert.False(t, res.RemoveKeyword("Missing"))
	assert.False(t, res.IsDirty())

	res.AddResourceImport("${CURDIR}/checkout.yaml")
	assert.True(t, res.RemoveKeyword("Open Browser"))
	require.NoError(t, res.Serialize(true))
	assert.False(t, res.IsDirty())

	reloaded, err := model.NewResourceCache(fsys).Load("/project/resources/base.hcl", nil)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Keywords())
	assert.Equal(t, []string{"common.toml", "${CURDIR}/checkout.yaml"}, reloaded.ResourceImports())
}

func TestSetFormat(t *testing.T) {
	files := map[string]string{
		"/tests/smoke.toml": "[[tests]]\nname = \"Smoke\"\n",
	}

	t.Run("directory_suite_gets_init_file", func(t *testing.T) {
		fsys := testutil.NewTree(t, files)
		suite, err := model.NewSuiteFactory(fsys, nil).Build("/tests")
		require.NoError(t, err)
		require.False(t, suite.HasFormat())

		require.NoError(t, suite.SetFormat("yaml"))
		assert.True(t, suite.HasFormat())
		assert.True(t, suite.IsDirty())
		assert.Equal(t, "/tests/__init__.yaml", suite.Path())

		suite.SetDocumentation("Smoke suite")
		require.NoError(t, suite.Serialize(false))
		assert.Contains(t, testutil.ReadFile(t, fsys, "/tests/__init__.yaml"), "Smoke suite")
	})

	t.Run("custom_init_name", func(t *testing.T) {
		fsys := testutil.NewTree(t, files)
		suite, err := model.NewSuiteFactory(fsys, nil, model.WithInitName("suite")).Build("/tests")
		require.NoError(t, err)

		require.NoError(t, suite.SetFormat("hcl"))
		assert.Equal(t, "/tests/suite.hcl", suite.Path())
	})

	t.Run("already_set", func(t *testing.T) {
		fsys := testutil.NewTree(t, files)
		suite, err := model.NewSuiteFactory(fsys, nil).Build("/tests/smoke.toml")
		require.NoError(t, err)

		err = suite.SetFormat("yaml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Equal(t, "toml", suite.Format())
	})

	t.Run("unknown_format", func(t *testing.T) {
		fsys := testutil.NewTree(t, files)
		suite, err := model.NewSuiteFactory(fsys, nil).Build("/tests")
		require.NoError(t, err)

		err = suite.SetFormat("xml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrFormatUnknown))
		assert.False(t, suite.HasFormat())
		assert.False(t, suite.IsDirty())
	})
}

func TestSerializeWithoutFormat(t *testing.T) {
	fsys := testutil.NewTree(t, map[string]string{
		"/tests/smoke.toml": "[[tests]]\nname = \"Smoke\"\n",
	})
	suite, err := model.NewSuiteFactory(fsys, nil).Build("/tests")
	require.NoError(t, err)

	suite.MarkDirty()
	err = suite.Serialize(false)
	require.Error(t, err)
	assert.Equal(t, errors.ErrSerialization, errors.GetErrorCode(err))
	assert.True(t, suite.IsDirty())
}

func TestSerializeRecursiveContinuesPastFailures(t *testing.T) {
	fsys := testutil.NewFailingFS(testutil.NewTree(t, testutil.ProjectTree()))
	fsys.FailWrites["/project/checkout.yaml"] = fmt.Errorf("disk full")

	suite, err := model.NewSuiteFactory(fsys, model.NewResourceCache(fsys)).Build("/project")
	require.NoError(t, err)

	suite.MarkDirty()
	for _, c := range suite.Children() {
		c.MarkDirty()
	}
	checkout, login := suite.Children()[0], suite.Children()[1]

	err = suite.Serialize(true)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "/project/checkout.yaml: [FILE_WRITE]")

	assert.False(t, suite.IsDirty())
	assert.True(t, checkout.IsDirty())
	assert.False(t, login.IsDirty())
}

func TestSerializeNonRecursiveSkipsChildren(t *testing.T) {
	fsys := testutil.NewTree(t, testutil.ProjectTree())
	suite, err := model.NewSuiteFactory(fsys, nil).Build("/project")
	require.NoError(t, err)

	login := suite.Children()[1]
	login.MarkDirty()

	require.NoError(t, suite.Serialize(false))
	assert.True(t, login.IsDirty())
}
