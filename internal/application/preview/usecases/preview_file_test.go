package usecases

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type mockCustomThemeRepository struct {
	GetBySIDFunc func(ctx context.Context, sid string) (*customtheme.CustomTheme, error)
}

func (m *mockCustomThemeRepository) Save(ctx context.Context, t *customtheme.CustomTheme) error {
	return nil
}
func (m *mockCustomThemeRepository) Update(ctx context.Context, t *customtheme.CustomTheme) error {
	return nil
}
func (m *mockCustomThemeRepository) Delete(ctx context.Context, themeID uint) error { return nil }

func (m *mockCustomThemeRepository) GetBySID(ctx context.Context, sid string) (*customtheme.CustomTheme, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockCustomThemeRepository) ListByCreator(ctx context.Context, creatorID uint, page, pageSize int) ([]*customtheme.CustomTheme, int64, error) {
	return nil, 0, nil
}

type mockPreviewStorage struct {
	root       string
	stylesheet bool
}

func (m *mockPreviewStorage) ResolveFile(dirName, rel string) (string, error) {
	return filepath.Join(m.root, rel), nil
}

func (m *mockPreviewStorage) HasStylesheet(dirName string) bool { return m.stylesheet }

func newPreviewFixture(t *testing.T) (*customtheme.CustomTheme, *mockCustomThemeRepository, *mockPreviewStorage) {
	t.Helper()
	entity, err := customtheme.NewCustomTheme("My Theme", "mytheme", 7)
	require.NoError(t, err)
	entity.SetID(1)
	repo := &mockCustomThemeRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*customtheme.CustomTheme, error) { return entity, nil },
	}
	return entity, repo, &mockPreviewStorage{root: t.TempDir()}
}

func TestPreviewFile_RewritesHTML(t *testing.T) {
	entity, repo, storage := newPreviewFixture(t)
	storage.stylesheet = true
	page := `<html><head></head><body><img src="logo.png"></body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(storage.root, "index.html"), []byte(page), 0o644))

	uc := NewPreviewFileUseCase(repo, storage, "/custom-theme", logger.NewLogger())

	result, err := uc.Execute(context.Background(), PreviewFileQuery{ThemeSID: entity.SID()})
	require.NoError(t, err)

	assert.Equal(t, "text/html; charset=utf-8", result.ContentType)
	body := string(result.Content)
	assert.Contains(t, body, "/custom-theme/"+entity.SID()+"/files/logo.png")
	assert.Contains(t, body, "style.css", "local stylesheet must be linked")
}

func TestPreviewFile_ServesRawAssetWithInferredType(t *testing.T) {
	entity, repo, storage := newPreviewFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(storage.root, "site.css"), []byte("body{}"), 0o644))

	uc := NewPreviewFileUseCase(repo, storage, "/custom-theme", logger.NewLogger())

	result, err := uc.Execute(context.Background(), PreviewFileQuery{ThemeSID: entity.SID(), FilePath: "site.css"})
	require.NoError(t, err)

	assert.Equal(t, []byte("body{}"), result.Content)
	assert.Contains(t, result.ContentType, "text/css")
}

func TestPreviewFile_UnknownExtensionFallsBack(t *testing.T) {
	entity, repo, storage := newPreviewFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(storage.root, "data.blob"), []byte{1, 2}, 0o644))

	uc := NewPreviewFileUseCase(repo, storage, "/custom-theme", logger.NewLogger())

	result, err := uc.Execute(context.Background(), PreviewFileQuery{ThemeSID: entity.SID(), FilePath: "data.blob"})
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", result.ContentType)
}

func TestPreviewFile_MissingFileNotFound(t *testing.T) {
	entity, repo, storage := newPreviewFixture(t)

	uc := NewPreviewFileUseCase(repo, storage, "/custom-theme", logger.NewLogger())

	_, err := uc.Execute(context.Background(), PreviewFileQuery{ThemeSID: entity.SID(), FilePath: "nope.html"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestPreviewFile_MissingThemeNotFound(t *testing.T) {
	uc := NewPreviewFileUseCase(&mockCustomThemeRepository{}, &mockPreviewStorage{root: t.TempDir()}, "/custom-theme", logger.NewLogger())

	_, err := uc.Execute(context.Background(), PreviewFileQuery{ThemeSID: "cth_missing", FilePath: "index.html"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
