package themefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/shared/logger"
)

func newTestCustomStore(t *testing.T) (*CustomStore, *Layout) {
	t.Helper()
	layout := newTestLayout(t)
	return NewCustomStore(layout, logger.NewLogger()), layout
}

func TestCustomStore_Ingest(t *testing.T) {
	store, layout := newTestCustomStore(t)
	zipPath := writeZip(t, map[string]string{
		"index.html": "<html><body>hi</body></html>",
		"style.css":  "body { margin: 0 }",
	})

	meta, err := store.Ingest(context.Background(), "mytheme", zipPath, "upload.zip")
	require.NoError(t, err)
	assert.Equal(t, "upload.zip", meta.OriginalName)
	assert.Equal(t, "application/zip", meta.ContentType)
	assert.Positive(t, meta.Size)

	// Archive is retained under zipped/ and content extracted.
	zipped, err := os.ReadDir(filepath.Join(layout.CustomThemeRoot("mytheme"), ZippedDir))
	require.NoError(t, err)
	require.Len(t, zipped, 1)
	assert.Equal(t, meta.FileName, zipped[0].Name())

	html, css, err := store.ReadPage("mytheme")
	require.NoError(t, err)
	assert.Contains(t, string(html), "hi")
	assert.Contains(t, string(css), "margin")
	assert.True(t, store.HasStylesheet("mytheme"))
}

func TestCustomStore_IngestWrappedArchivePromoted(t *testing.T) {
	store, _ := newTestCustomStore(t)
	zipPath := writeZip(t, map[string]string{
		"mytheme/index.html": "<html></html>",
	})

	_, err := store.Ingest(context.Background(), "mytheme", zipPath, "upload.zip")
	require.NoError(t, err)

	html, _, err := store.ReadPage("mytheme")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(html))
}

func TestCustomStore_IngestFailureRemovesTree(t *testing.T) {
	store, layout := newTestCustomStore(t)

	notAZip := filepath.Join(t.TempDir(), "theme.zip")
	require.NoError(t, os.WriteFile(notAZip, []byte("not a zip"), 0o644))

	_, err := store.Ingest(context.Background(), "mytheme", notAZip, "theme.zip")
	require.Error(t, err)

	_, statErr := os.Stat(layout.CustomThemeRoot("mytheme"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCustomStore_ReplaceArchive(t *testing.T) {
	store, _ := newTestCustomStore(t)
	first := writeZip(t, map[string]string{
		"index.html": "v1",
		"extra.txt":  "leftover",
	})
	_, err := store.Ingest(context.Background(), "mytheme", first, "v1.zip")
	require.NoError(t, err)

	second := writeZip(t, map[string]string{"index.html": "v2"})
	meta, err := store.ReplaceArchive(context.Background(), "mytheme", second, "v2.zip")
	require.NoError(t, err)
	assert.Equal(t, "v2.zip", meta.OriginalName)

	html, _, err := store.ReadPage("mytheme")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(html))

	// Nothing from the first archive survives the wipe.
	_, err = os.Stat(filepath.Join(store.layout.CustomThemeFiles("mytheme"), "extra.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestCustomStore_ReadPageMissingFilesFallBack(t *testing.T) {
	store, _ := newTestCustomStore(t)
	zipPath := writeZip(t, map[string]string{"readme.txt": "no page here"})
	_, err := store.Ingest(context.Background(), "mytheme", zipPath, "t.zip")
	require.NoError(t, err)

	html, css, err := store.ReadPage("mytheme")
	require.NoError(t, err)
	assert.Nil(t, html)
	assert.Nil(t, css)
	assert.False(t, store.HasStylesheet("mytheme"))
}

func TestCustomStore_InstallToStore(t *testing.T) {
	store, layout := newTestCustomStore(t)
	zipPath := writeZip(t, map[string]string{"index.html": "original"})
	_, err := store.Ingest(context.Background(), "mytheme", zipPath, "t.zip")
	require.NoError(t, err)

	rel, err := store.InstallToStore(context.Background(), "mytheme", "st_1", "custom-cth_abc")
	require.NoError(t, err)
	assert.Equal(t, "stores/st_1/themes/custom-cth_abc", rel)

	installed := filepath.Join(layout.Abs(rel), UnzippedThemeDir, "index.html")
	data, err := os.ReadFile(installed)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestCustomStore_InstallPreservesInPlaceEdits(t *testing.T) {
	store, layout := newTestCustomStore(t)
	zipPath := writeZip(t, map[string]string{"index.html": "original"})
	_, err := store.Ingest(context.Background(), "mytheme", zipPath, "t.zip")
	require.NoError(t, err)

	rel, err := store.InstallToStore(context.Background(), "mytheme", "st_1", "custom-cth_abc")
	require.NoError(t, err)

	// Merchant edits the installed copy.
	edited := filepath.Join(layout.Abs(rel), UnzippedThemeDir, "index.html")
	require.NoError(t, os.WriteFile(edited, []byte("edited"), 0o644))

	// Re-install must not clobber the edit.
	_, err = store.InstallToStore(context.Background(), "mytheme", "st_1", "custom-cth_abc")
	require.NoError(t, err)

	data, err := os.ReadFile(edited)
	require.NoError(t, err)
	assert.Equal(t, "edited", string(data))
}

func TestCustomStore_InstallRemovesSiblingCustomInstalls(t *testing.T) {
	store, layout := newTestCustomStore(t)
	zipPath := writeZip(t, map[string]string{"index.html": "x"})
	_, err := store.Ingest(context.Background(), "mytheme", zipPath, "t.zip")
	require.NoError(t, err)

	// A previous custom install and a catalog install both exist.
	oldCustom := layout.StoreThemeDir("st_1", "custom-cth_old")
	catalog := layout.StoreThemeDir("st_1", "thm_catalog")
	require.NoError(t, os.MkdirAll(oldCustom, 0o755))
	require.NoError(t, os.MkdirAll(catalog, 0o755))

	_, err = store.InstallToStore(context.Background(), "mytheme", "st_1", "custom-cth_new")
	require.NoError(t, err)

	// The stale custom install is gone, the catalog install untouched.
	_, statErr := os.Stat(oldCustom)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(catalog)
	assert.NoError(t, statErr)
}

func TestCustomStore_Remove(t *testing.T) {
	store, layout := newTestCustomStore(t)
	zipPath := writeZip(t, map[string]string{"index.html": "x"})
	_, err := store.Ingest(context.Background(), "mytheme", zipPath, "t.zip")
	require.NoError(t, err)

	require.NoError(t, store.Remove("mytheme"))
	_, statErr := os.Stat(layout.CustomThemeRoot("mytheme"))
	assert.True(t, os.IsNotExist(statErr))
}
