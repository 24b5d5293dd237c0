package usecases

import (
	"context"

	"vitrine/internal/domain/installation"
	instvo "vitrine/internal/domain/installation/value_objects"
	"vitrine/internal/domain/store"
	"vitrine/internal/infrastructure/themefs"
)

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
	GetBySIDFunc func(ctx context.Context, sid string) (*installation.Installation, error)
	UpdateFunc   func(ctx context.Context, inst *installation.Installation) error

	Updates int
}

func (m *mockInstallationRepository) Save(ctx context.Context, inst *installation.Installation) error {
	return nil
}

func (m *mockInstallationRepository) Update(ctx context.Context, inst *installation.Installation) error {
	m.Updates++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inst)
	}
	return nil
}

func (m *mockInstallationRepository) Delete(ctx context.Context, instID uint) error { return nil }

func (m *mockInstallationRepository) GetBySID(ctx context.Context, sid string) (*installation.Installation, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockInstallationRepository) GetByStoreAndTheme(ctx context.Context, storeSID string, ref instvo.ThemeRef) (*installation.Installation, error) {
	return nil, nil
}

func (m *mockInstallationRepository) ListByStore(ctx context.Context, storeSID string, activeOnly bool) ([]*installation.Installation, error) {
	return nil, nil
}

func (m *mockInstallationRepository) DeactivateAllForStore(ctx context.Context, storeSID string) error {
	return nil
}

type mockFileStorage struct {
	TreeFunc       func(installPath string) ([]*themefs.Node, error)
	ReadFileFunc   func(installPath, rel string) ([]byte, error)
	WriteFileFunc  func(installPath, rel string, data []byte) error
	CreateFileFunc func(installPath, rel string, data []byte) error
	DeleteFileFunc func(installPath, rel string) error

	Deleted []string
}

func (m *mockFileStorage) Tree(installPath string) ([]*themefs.Node, error) {
	if m.TreeFunc != nil {
		return m.TreeFunc(installPath)
	}
	return nil, nil
}

func (m *mockFileStorage) ReadFile(installPath, rel string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(installPath, rel)
	}
	return nil, nil
}

func (m *mockFileStorage) WriteFile(installPath, rel string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(installPath, rel, data)
	}
	return nil
}

func (m *mockFileStorage) CreateFile(installPath, rel string, data []byte) error {
	if m.CreateFileFunc != nil {
		return m.CreateFileFunc(installPath, rel, data)
	}
	return nil
}

func (m *mockFileStorage) DeleteFile(installPath, rel string) error {
	m.Deleted = append(m.Deleted, rel)
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(installPath, rel)
	}
	return nil
}
