package themefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

func seedCatalogTheme(t *testing.T, layout *Layout, themeSID string) string {
	t.Helper()
	src := layout.CatalogThemeFiles(themeSID)
	require.NoError(t, os.MkdirAll(filepath.Join(src, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.html"), []byte("<html><body>storefront</body></html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "css", "site.css"), []byte("body { color: teal; }"), 0o644))
	return src
}

func TestCloneToStore_Layout(t *testing.T) {
	layout := newTestLayout(t)
	src := seedCatalogTheme(t, layout, "thm_abc")
	cloner := NewCloner(layout, logger.NewLogger())

	rel, err := cloner.CloneToStore(context.Background(), "thm_abc", "client1", "st_1", "1.2.0")
	require.NoError(t, err)
	assert.Equal(t, "stores/st_1/themes/thm_abc", rel)
	dest := layout.Abs(rel)
	assert.Equal(t, layout.StoreThemeDir("st_1", "thm_abc"), dest)

	// Theme files are copied to the top level.
	copied, err := os.ReadFile(filepath.Join(dest, "index.html"))
	require.NoError(t, err)
	original, err := os.ReadFile(filepath.Join(src, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, original, copied)

	// Exactly the five scaffold directories plus manifest and README exist
	// alongside the theme files.
	for _, dir := range ScaffoldDirs {
		info, err := os.Stat(filepath.Join(dest, dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir())
	}
	for _, file := range []string{ManifestName, ReadmeName} {
		_, err := os.Stat(filepath.Join(dest, file))
		require.NoError(t, err, file)
	}
}

func TestCloneToStore_ClientCodeIsByteIdentical(t *testing.T) {
	layout := newTestLayout(t)
	src := seedCatalogTheme(t, layout, "thm_abc")
	cloner := NewCloner(layout, logger.NewLogger())

	destRel, err := cloner.CloneToStore(context.Background(), "thm_abc", "client1", "st_1", "1.0.0")
	require.NoError(t, err)

	refDir := filepath.Join(layout.Abs(destRel), "client-code")
	err = filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		require.NoError(t, err)

		want, err := os.ReadFile(path)
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(refDir, rel))
		require.NoError(t, err)
		assert.Equal(t, want, got, rel)
		return nil
	})
	require.NoError(t, err)
}

func TestCloneToStore_WritesManifest(t *testing.T) {
	layout := newTestLayout(t)
	seedCatalogTheme(t, layout, "thm_abc")
	cloner := NewCloner(layout, logger.NewLogger())

	destRel, err := cloner.CloneToStore(context.Background(), "thm_abc", "client1", "st_1", "2.0.0")
	require.NoError(t, err)

	m, err := ReadManifest(layout.Abs(destRel))
	require.NoError(t, err)
	assert.Equal(t, "thm_abc", m.ThemeID)
	assert.Equal(t, "st_1", m.StoreID)
	assert.Equal(t, "client1", m.ClientID)
	assert.Equal(t, "2.0.0", m.Version)
	assert.Equal(t, "installed", m.Status)
	assert.False(t, m.IsActive)
	assert.Empty(t, m.Customizations)
}

func TestCloneToStore_MissingThemeFailsBeforeAnyCopy(t *testing.T) {
	layout := newTestLayout(t)
	cloner := NewCloner(layout, logger.NewLogger())

	_, err := cloner.CloneToStore(context.Background(), "thm_missing", "client1", "st_1", "1.0.0")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))

	_, statErr := os.Stat(layout.StoreThemeDir("st_1", "thm_missing"))
	assert.True(t, os.IsNotExist(statErr))
}
