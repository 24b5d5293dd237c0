package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/domain/installation"
	instvo "vitrine/internal/domain/installation/value_objects"
	"vitrine/internal/domain/store"
	"vitrine/internal/infrastructure/themefs"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

func newSandboxFixture(t *testing.T) (*mockStoreRepository, *mockInstallationRepository, *installation.Installation) {
	t.Helper()
	st, err := store.NewStore("My Store", 42)
	require.NoError(t, err)
	st.SetID(1)

	ref, err := instvo.NewCatalogRef("thm_abc123")
	require.NoError(t, err)
	inst, err := installation.NewInstallation(st.SID(), ref, "stores/"+st.SID()+"/themes/thm_abc123")
	require.NoError(t, err)
	inst.SetID(1)

	storeRepo := &mockStoreRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*store.Store, error) { return st, nil },
	}
	instRepo := &mockInstallationRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*installation.Installation, error) { return inst, nil },
	}
	return storeRepo, instRepo, inst
}

func TestGetStructure_ReturnsTree(t *testing.T) {
	storeRepo, instRepo, inst := newSandboxFixture(t)
	storage := &mockFileStorage{
		TreeFunc: func(installPath string) ([]*themefs.Node, error) {
			assert.Equal(t, inst.InstallPath(), installPath)
			return []*themefs.Node{{Name: "index.html", Type: themefs.NodeTypeFile, Path: "index.html"}}, nil
		},
	}

	uc := NewGetStructureUseCase(storeRepo, instRepo, storage, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetStructureQuery{InstallationSID: inst.SID(), ActorID: 42})
	require.NoError(t, err)
	require.Len(t, result.Structure, 1)
	assert.Equal(t, "index.html", result.Structure[0].Name)
}

func TestReadFile_ForeignActorForbidden(t *testing.T) {
	storeRepo, instRepo, inst := newSandboxFixture(t)

	uc := NewReadFileUseCase(storeRepo, instRepo, &mockFileStorage{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ReadFileQuery{InstallationSID: inst.SID(), FilePath: "index.html", ActorID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	// Admins bypass the ownership check.
	_, err = uc.Execute(context.Background(), ReadFileQuery{InstallationSID: inst.SID(), FilePath: "index.html", ActorID: 99, IsAdmin: true})
	require.NoError(t, err)
}

func TestReadFile_MissingInstallation(t *testing.T) {
	uc := NewReadFileUseCase(&mockStoreRepository{}, &mockInstallationRepository{}, &mockFileStorage{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ReadFileQuery{InstallationSID: "ins_missing", FilePath: "x", ActorID: 42})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestWriteFile_DelegatesToStorage(t *testing.T) {
	storeRepo, instRepo, inst := newSandboxFixture(t)
	var wrotePath string
	var wroteData []byte
	storage := &mockFileStorage{
		WriteFileFunc: func(installPath, rel string, data []byte) error {
			assert.Equal(t, inst.InstallPath(), installPath)
			wrotePath = rel
			wroteData = data
			return nil
		},
	}

	uc := NewWriteFileUseCase(storeRepo, instRepo, storage, logger.NewLogger())

	require.NoError(t, uc.Execute(context.Background(), WriteFileCommand{
		InstallationSID: inst.SID(),
		FilePath:        "styles/site.css",
		Content:         []byte("body{}"),
		ActorID:         42,
	}))
	assert.Equal(t, "styles/site.css", wrotePath)
	assert.Equal(t, []byte("body{}"), wroteData)
}

func TestWriteFile_EmptyPathRejected(t *testing.T) {
	storeRepo, instRepo, inst := newSandboxFixture(t)

	uc := NewWriteFileUseCase(storeRepo, instRepo, &mockFileStorage{}, logger.NewLogger())

	err := uc.Execute(context.Background(), WriteFileCommand{InstallationSID: inst.SID(), ActorID: 42})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateFile_ConflictSurfaced(t *testing.T) {
	storeRepo, instRepo, inst := newSandboxFixture(t)
	storage := &mockFileStorage{
		CreateFileFunc: func(installPath, rel string, data []byte) error {
			return errors.NewConflictError("file already exists")
		},
	}

	uc := NewCreateFileUseCase(storeRepo, instRepo, storage, logger.NewLogger())

	err := uc.Execute(context.Background(), CreateFileCommand{
		InstallationSID: inst.SID(),
		FilePath:        "index.html",
		ActorID:         42,
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestDeleteFile_TouchesInstallation(t *testing.T) {
	storeRepo, instRepo, inst := newSandboxFixture(t)
	before := inst.UpdatedAt()
	storage := &mockFileStorage{}

	uc := NewDeleteFileUseCase(storeRepo, instRepo, storage, logger.NewLogger())

	require.NoError(t, uc.Execute(context.Background(), DeleteFileCommand{
		InstallationSID: inst.SID(),
		FilePath:        "old.html",
		ActorID:         42,
	}))
	assert.Equal(t, []string{"old.html"}, storage.Deleted)
	assert.Equal(t, 1, instRepo.Updates)
	assert.False(t, inst.UpdatedAt().Before(before))
}

func TestDeleteFile_ProtectedFileForbidden(t *testing.T) {
	storeRepo, instRepo, inst := newSandboxFixture(t)
	storage := &mockFileStorage{
		DeleteFileFunc: func(installPath, rel string) error {
			return errors.NewForbiddenError("file is protected")
		},
	}

	uc := NewDeleteFileUseCase(storeRepo, instRepo, storage, logger.NewLogger())

	err := uc.Execute(context.Background(), DeleteFileCommand{
		InstallationSID: inst.SID(),
		FilePath:        "theme-config.json",
		ActorID:         42,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Zero(t, instRepo.Updates, "failed delete must not bump the installation")
}
