package usecases

import (
	"context"

	"vitrine/internal/domain/installation"
	instvo "vitrine/internal/domain/installation/value_objects"
	"vitrine/internal/domain/store"
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

type mockStoreRepository struct {
	SaveFunc        func(ctx context.Context, s *store.Store) error
	GetBySIDFunc    func(ctx context.Context, sid string) (*store.Store, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uint) ([]*store.Store, error)
}

func (m *mockStoreRepository) Save(ctx context.Context, s *store.Store) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockStoreRepository) GetBySID(ctx context.Context, sid string) (*store.Store, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockStoreRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*store.Store, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

type mockInstallationRepository struct {
	SaveFunc                  func(ctx context.Context, inst *installation.Installation) error
	UpdateFunc                func(ctx context.Context, inst *installation.Installation) error
	DeleteFunc                func(ctx context.Context, instID uint) error
	GetBySIDFunc              func(ctx context.Context, sid string) (*installation.Installation, error)
	GetByStoreAndThemeFunc    func(ctx context.Context, storeSID string, ref instvo.ThemeRef) (*installation.Installation, error)
	ListByStoreFunc           func(ctx context.Context, storeSID string, activeOnly bool) ([]*installation.Installation, error)
	DeactivateAllForStoreFunc func(ctx context.Context, storeSID string) error
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

func (m *mockInstallationRepository) Delete(ctx context.Context, instID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, instID)
	}
	return nil
}

func (m *mockInstallationRepository) GetBySID(ctx context.Context, sid string) (*installation.Installation, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockInstallationRepository) GetByStoreAndTheme(ctx context.Context, storeSID string, ref instvo.ThemeRef) (*installation.Installation, error) {
	if m.GetByStoreAndThemeFunc != nil {
		return m.GetByStoreAndThemeFunc(ctx, storeSID, ref)
	}
	return nil, nil
}

func (m *mockInstallationRepository) ListByStore(ctx context.Context, storeSID string, activeOnly bool) ([]*installation.Installation, error) {
	if m.ListByStoreFunc != nil {
		return m.ListByStoreFunc(ctx, storeSID, activeOnly)
	}
	return nil, nil
}

func (m *mockInstallationRepository) DeactivateAllForStore(ctx context.Context, storeSID string) error {
	if m.DeactivateAllForStoreFunc != nil {
		return m.DeactivateAllForStoreFunc(ctx, storeSID)
	}
	return nil
}

type mockCloner struct {
	CloneToStoreFunc func(ctx context.Context, themeSID, clientID, storeSID, version string) (string, error)
	Calls            int
}

func (m *mockCloner) CloneToStore(ctx context.Context, themeSID, clientID, storeSID, version string) (string, error) {
	m.Calls++
	if m.CloneToStoreFunc != nil {
		return m.CloneToStoreFunc(ctx, themeSID, clientID, storeSID, version)
	}
	return "stores/" + storeSID + "/themes/" + themeSID, nil
}

type mockInstallStorage struct {
	InstallDirExistsFunc func(installPath string) bool
	RemoveInstallDirFunc func(installPath string) error
	SyncManifestFunc     func(installPath string, m *themefs.Manifest) error

	RemovedPaths  []string
	SyncedPaths   []string
	LastManifest  *themefs.Manifest
}

func (m *mockInstallStorage) InstallDirExists(installPath string) bool {
	if m.InstallDirExistsFunc != nil {
		return m.InstallDirExistsFunc(installPath)
	}
	return true
}

func (m *mockInstallStorage) RemoveInstallDir(installPath string) error {
	m.RemovedPaths = append(m.RemovedPaths, installPath)
	if m.RemoveInstallDirFunc != nil {
		return m.RemoveInstallDirFunc(installPath)
	}
	return nil
}

func (m *mockInstallStorage) SyncManifest(installPath string, manifest *themefs.Manifest) error {
	m.SyncedPaths = append(m.SyncedPaths, installPath)
	m.LastManifest = manifest
	if m.SyncManifestFunc != nil {
		return m.SyncManifestFunc(installPath, manifest)
	}
	return nil
}

// mockTransactor runs the function directly; transactional semantics are the
// database's job, not the use case's.
type mockTransactor struct{}

func (mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
