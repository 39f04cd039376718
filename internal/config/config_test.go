package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFrom_DerivesFixedLocations(t *testing.T) {
	root := t.TempDir()

	paths, err := ResolveFrom(root)
	require.NoError(t, err)

	assert.Equal(t, root, paths.Root)
	assert.Equal(t, filepath.Join(root, "content", "articles"), paths.ArticlesDir)
	assert.Equal(t, filepath.Join(root, "data", "blog.db"), paths.DatabasePath)
}

func TestResolveFrom_RelativeRootBecomesAbsolute(t *testing.T) {
	paths, err := ResolveFrom(".")
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(paths.Root))
	assert.True(t, filepath.IsAbs(paths.ArticlesDir))
	assert.True(t, filepath.IsAbs(paths.DatabasePath))
}

func TestLoad_UsesBlogRootFromEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv("BLOG_ROOT", root)

	paths, err := Load()
	require.NoError(t, err)

	assert.Equal(t, root, paths.Root)
}

func TestLoad_FallsBackToWorkingDirectory(t *testing.T) {
	t.Setenv("BLOG_ROOT", "")
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	paths, err := Load()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(paths.Root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPaths_DatabaseExists(t *testing.T) {
	paths, err := ResolveFrom(t.TempDir())
	require.NoError(t, err)

	assert.False(t, paths.DatabaseExists())

	require.NoError(t, paths.EnsureDatabaseDir())
	require.NoError(t, os.WriteFile(paths.DatabasePath, nil, 0644))

	assert.True(t, paths.DatabaseExists())
}
