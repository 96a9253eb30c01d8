package getter_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/create-component/internal/getter"
)

func TestNew(t *testing.T) {
	t.Parallel()

	// Verify New doesn't panic with nil logger.
	g := getter.New(nil)
	assert.NotNil(t, g)
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	a := getter.CacheKey("github.com/acme/templates", "v1.0.0")
	b := getter.CacheKey("github.com/acme/templates", "v2.0.0")

	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, getter.CacheKey("github.com/acme/templates", "v1.0.0"))
}

func TestFetchTemplates_LocalDir(t *testing.T) {
	t.Parallel()

	project := t.TempDir()
	srcDir := filepath.Join(project, "templates")
	require.NoError(t, os.MkdirAll(srcDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "styles.module.scss.tmpl"), []byte(".root {}"), 0o644))

	cacheDir := t.TempDir()
	g := getter.New(nil)

	dest, err := g.FetchTemplates(context.Background(), "./templates", "", cacheDir, project)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cacheDir, "templates", getter.CacheKey("./templates", "")), dest)

	content, err := os.ReadFile(filepath.Join(dest, "styles.module.scss.tmpl"))
	require.NoError(t, err)
	assert.Equal(t, ".root {}", string(content))
}

func TestFetchTemplates_ReplacesPreviousCopy(t *testing.T) {
	t.Parallel()

	project := t.TempDir()
	srcDir := filepath.Join(project, "templates")
	require.NoError(t, os.MkdirAll(srcDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "class.jsx.tmpl"), []byte("v1"), 0o644))

	cacheDir := t.TempDir()
	g := getter.New(nil)

	dest, err := g.FetchTemplates(context.Background(), srcDir, "", cacheDir, project)
	require.NoError(t, err)

	stale := filepath.Join(dest, "stale.tmpl")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	_, err = g.FetchTemplates(context.Background(), srcDir, "", cacheDir, project)
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(dest, "class.jsx.tmpl"))
}

func TestFetchTemplates_MissingSource(t *testing.T) {
	t.Parallel()

	project := t.TempDir()

	_, err := getter.New(nil).FetchTemplates(context.Background(), "./does-not-exist", "", t.TempDir(), project)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching ./does-not-exist")
}

func TestFetchTemplates_LocalDirIsCopied(t *testing.T) {
	t.Parallel()

	project := t.TempDir()
	srcDir := filepath.Join(project, "templates")
	require.NoError(t, os.MkdirAll(srcDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "class.jsx.tmpl"), []byte("v1"), 0o644))

	dest, err := getter.New(nil).FetchTemplates(context.Background(), "./templates", "", t.TempDir(), project)
	require.NoError(t, err)

	info, err := os.Lstat(dest)
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&os.ModeSymlink, "cache entry must not link to the source")
	assert.True(t, info.IsDir())

	require.NoError(t, os.WriteFile(filepath.Join(dest, "scratch.tmpl"), []byte("x"), 0o644))
	assert.NoFileExists(t, filepath.Join(srcDir, "scratch.tmpl"))
}
