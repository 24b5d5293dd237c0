package usecases

import (
	"context"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/domain/installation"
	instvo "vitrine/internal/domain/installation/value_objects"
	"vitrine/internal/domain/store"
	"vitrine/internal/infrastructure/themefs"
)

type mockCustomThemeRepository struct {
	SaveFunc          func(ctx context.Context, t *customtheme.CustomTheme) error
	UpdateFunc        func(ctx context.Context, t *customtheme.CustomTheme) error
	DeleteFunc        func(ctx context.Context, themeID uint) error
	GetBySIDFunc      func(ctx context.Context, sid string) (*customtheme.CustomTheme, error)
	ListByCreatorFunc func(ctx context.Context, creatorID uint, page, pageSize int) ([]*customtheme.CustomTheme, int64, error)

	DeletedIDs []uint
}

func (m *mockCustomThemeRepository) Save(ctx context.Context, t *customtheme.CustomTheme) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	t.SetID(1)
	return nil
}

func (m *mockCustomThemeRepository) Update(ctx context.Context, t *customtheme.CustomTheme) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockCustomThemeRepository) Delete(ctx context.Context, themeID uint) error {
	m.DeletedIDs = append(m.DeletedIDs, themeID)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, themeID)
	}
	return nil
}

func (m *mockCustomThemeRepository) GetBySID(ctx context.Context, sid string) (*customtheme.CustomTheme, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockCustomThemeRepository) ListByCreator(ctx context.Context, creatorID uint, page, pageSize int) ([]*customtheme.CustomTheme, int64, error) {
	if m.ListByCreatorFunc != nil {
		return m.ListByCreatorFunc(ctx, creatorID, page, pageSize)
	}
	return nil, 0, nil
}

type mockStoreRepository struct {
	GetBySIDFunc func(ctx context.Context, sid string) (*store.Store, error)
}

func (m *mockStoreRepository) Save(ctx context.Context, s *store.Store) error { return nil }

func (m *mockStoreRepository) GetBySID(ctx context.Context, sid string) (*store.Store, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockStoreRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*store.Store, error) {
	return nil, nil
}

type mockInstallationRepository struct {
	SaveFunc                  func(ctx context.Context, inst *installation.Installation) error
	UpdateFunc                func(ctx context.Context, inst *installation.Installation) error
	GetByStoreAndThemeFunc    func(ctx context.Context, storeSID string, ref instvo.ThemeRef) (*installation.Installation, error)
	DeactivateAllForStoreFunc func(ctx context.Context, storeSID string) error

	Deactivations int
}

func (m *mockInstallationRepository) Save(ctx context.Context, inst *installation.Installation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, inst)
	}
	inst.SetID(1)
	return nil
}

func (m *mockInstallationRepository) Update(ctx context.Context, inst *installation.Installation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inst)
	}
	return nil
}

func (m *mockInstallationRepository) Delete(ctx context.Context, instID uint) error { return nil }

func (m *mockInstallationRepository) GetBySID(ctx context.Context, sid string) (*installation.Installation, error) {
	return nil, nil
}

func (m *mockInstallationRepository) GetByStoreAndTheme(ctx context.Context, storeSID string, ref instvo.ThemeRef) (*installation.Installation, error) {
	if m.GetByStoreAndThemeFunc != nil {
		return m.GetByStoreAndThemeFunc(ctx, storeSID, ref)
	}
	return nil, nil
}

func (m *mockInstallationRepository) ListByStore(ctx context.Context, storeSID string, activeOnly bool) ([]*installation.Installation, error) {
	return nil, nil
}

func (m *mockInstallationRepository) DeactivateAllForStore(ctx context.Context, storeSID string) error {
	m.Deactivations++
	if m.DeactivateAllForStoreFunc != nil {
		return m.DeactivateAllForStoreFunc(ctx, storeSID)
	}
	return nil
}

type mockRecentRepository struct {
	RecordFunc     func(ctx context.Context, entry *installation.RecentInstallation) error
	ListByUserFunc func(ctx context.Context, userID uint, limit int) ([]*installation.RecentInstallation, error)

	Recorded   []*installation.RecentInstallation
	PruneCalls []int
}

func (m *mockRecentRepository) Record(ctx context.Context, entry *installation.RecentInstallation) error {
	m.Recorded = append(m.Recorded, entry)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, entry)
	}
	return nil
}

func (m *mockRecentRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*installation.RecentInstallation, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockRecentRepository) PruneBeyond(ctx context.Context, userID uint, keep int) error {
	m.PruneCalls = append(m.PruneCalls, keep)
	return nil
}

type mockCustomStorage struct {
	NewDirNameFunc     func(displayName string) string
	IngestFunc         func(ctx context.Context, dirName, zipSrcPath, originalName string) (*themefs.ArchiveMeta, error)
	ReplaceArchiveFunc func(ctx context.Context, dirName, zipSrcPath, originalName string) (*themefs.ArchiveMeta, error)
	SaveThumbnailFunc  func(dirName, srcPath, originalName string, maxWidth int, previous string) (*themefs.ThumbnailMeta, error)
	ReadPageFunc       func(dirName string) ([]byte, []byte, error)
	InstallToStoreFunc func(ctx context.Context, dirName, storeSID, installDirName string) (string, error)
	RemoveFunc         func(dirName string) error

	Removed      []string
	InstallCalls int
}

func (m *mockCustomStorage) NewDirName(displayName string) string {
	if m.NewDirNameFunc != nil {
		return m.NewDirNameFunc(displayName)
	}
	return "mytheme"
}

func (m *mockCustomStorage) Ingest(ctx context.Context, dirName, zipSrcPath, originalName string) (*themefs.ArchiveMeta, error) {
	if m.IngestFunc != nil {
		return m.IngestFunc(ctx, dirName, zipSrcPath, originalName)
	}
	return &themefs.ArchiveMeta{
		FileName:     "stored.zip",
		OriginalName: originalName,
		Size:         128,
		ContentType:  "application/zip",
	}, nil
}

func (m *mockCustomStorage) ReplaceArchive(ctx context.Context, dirName, zipSrcPath, originalName string) (*themefs.ArchiveMeta, error) {
	if m.ReplaceArchiveFunc != nil {
		return m.ReplaceArchiveFunc(ctx, dirName, zipSrcPath, originalName)
	}
	return &themefs.ArchiveMeta{FileName: "replaced.zip", OriginalName: originalName}, nil
}

func (m *mockCustomStorage) SaveThumbnail(dirName, srcPath, originalName string, maxWidth int, previous string) (*themefs.ThumbnailMeta, error) {
	if m.SaveThumbnailFunc != nil {
		return m.SaveThumbnailFunc(dirName, srcPath, originalName, maxWidth, previous)
	}
	return &themefs.ThumbnailMeta{FileName: "thumb.png", OriginalName: originalName, ContentType: "image/png"}, nil
}

func (m *mockCustomStorage) ReadPage(dirName string) ([]byte, []byte, error) {
	if m.ReadPageFunc != nil {
		return m.ReadPageFunc(dirName)
	}
	return nil, nil, nil
}

func (m *mockCustomStorage) Directories(dirName string) map[string]string {
	return map[string]string{
		"theme":         "custom-themes/" + dirName,
		"thumbnail":     "custom-themes/" + dirName + "/thumbnail",
		"unzippedTheme": "custom-themes/" + dirName + "/unzippedTheme",
	}
}

func (m *mockCustomStorage) InstallToStore(ctx context.Context, dirName, storeSID, installDirName string) (string, error) {
	m.InstallCalls++
	if m.InstallToStoreFunc != nil {
		return m.InstallToStoreFunc(ctx, dirName, storeSID, installDirName)
	}
	return "stores/" + storeSID + "/themes/" + installDirName, nil
}

func (m *mockCustomStorage) Remove(dirName string) error {
	m.Removed = append(m.Removed, dirName)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(dirName)
	}
	return nil
}

type mockManifestSyncer struct {
	SyncManifestFunc func(installPath string, manifest *themefs.Manifest) error

	SyncedPaths  []string
	LastManifest *themefs.Manifest
}

func (m *mockManifestSyncer) SyncManifest(installPath string, manifest *themefs.Manifest) error {
	m.SyncedPaths = append(m.SyncedPaths, installPath)
	m.LastManifest = manifest
	if m.SyncManifestFunc != nil {
		return m.SyncManifestFunc(installPath, manifest)
	}
	return nil
}

type mockTransactor struct{}

func (mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
