package usecases

import (
	"context"

	"vitrine/internal/domain/theme"
	"vitrine/internal/infrastructure/themefs"
)

type mockThemeRepository struct {
	SaveFunc     func(ctx context.Context, t *theme.Theme) error
	UpdateFunc   func(ctx context.Context, t *theme.Theme) error
	GetBySIDFunc func(ctx context.Context, sid string) (*theme.Theme, error)
	ListFunc     func(ctx context.Context, filter theme.Filter) ([]*theme.Theme, int64, error)
}

func (m *mockThemeRepository) Save(ctx context.Context, t *theme.Theme) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockThemeRepository) Update(ctx context.Context, t *theme.Theme) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockThemeRepository) GetBySID(ctx context.Context, sid string) (*theme.Theme, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockThemeRepository) List(ctx context.Context, filter theme.Filter) ([]*theme.Theme, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockCatalogStorage struct {
	IngestUploadFunc  func(ctx context.Context, themeSID, zipSrcPath, originalName string) (*themefs.ArchiveMeta, error)
	SaveThumbnailFunc func(themeSID, srcPath, originalName string, maxWidth int) (*themefs.ThumbnailMeta, error)
}

func (m *mockCatalogStorage) IngestUpload(ctx context.Context, themeSID, zipSrcPath, originalName string) (*themefs.ArchiveMeta, error) {
	if m.IngestUploadFunc != nil {
		return m.IngestUploadFunc(ctx, themeSID, zipSrcPath, originalName)
	}
	return &themefs.ArchiveMeta{FileName: "stored.zip", OriginalName: originalName, Size: 1, ContentType: "application/zip"}, nil
}

func (m *mockCatalogStorage) SaveThumbnail(themeSID, srcPath, originalName string, maxWidth int) (*themefs.ThumbnailMeta, error) {
	if m.SaveThumbnailFunc != nil {
		return m.SaveThumbnailFunc(themeSID, srcPath, originalName, maxWidth)
	}
	return &themefs.ThumbnailMeta{FileName: "thumb.png", OriginalName: originalName, Size: 1, ContentType: "image/png"}, nil
}

func (m *mockCatalogStorage) Directories(themeSID string) map[string]string {
	return map[string]string{
		"theme":     "themes/" + themeSID + "/theme",
		"code":      "themes/" + themeSID + "/code",
		"zipped":    "themes/" + themeSID + "/zipped",
		"thumbnail": "themes/" + themeSID + "/thumbnail",
	}
}
