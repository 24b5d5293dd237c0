package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/domain/installation"
	"vitrine/internal/domain/store"
	"vitrine/internal/domain/theme"
	"vitrine/internal/infrastructure/themefs"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

func TestCustomizeTheme_AppendsAndSyncsManifest(t *testing.T) {
	entity := newActiveTheme(t)
	st := newOwnedStore(t, 42)
	inst := newExistingInstallation(t, st.SID(), entity.SID())
	require.NoError(t, inst.ApplyCustomization(json.RawMessage(`{"color":"red"}`)))

	instRepo := &mockInstallationRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*installation.Installation, error) { return inst, nil },
	}
	themeRepo := &mockThemeRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*theme.Theme, error) { return entity, nil },
	}
	storeRepo := &mockStoreRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*store.Store, error) { return st, nil },
	}
	storage := &mockInstallStorage{}

	uc := NewCustomizeThemeUseCase(themeRepo, storeRepo, instRepo, storage, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CustomizeThemeCommand{
		InstallationSID: inst.SID(),
		ActorID:         42,
		Payload:         json.RawMessage(`{"font":"serif"}`),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Installation.Customizations)
	require.Len(t, storage.SyncedPaths, 1)
	assert.Equal(t, inst.InstallPath(), storage.SyncedPaths[0])

	require.NotNil(t, storage.LastManifest)
	assert.Equal(t, entity.SID(), storage.LastManifest.ThemeID)
	assert.Equal(t, "42", storage.LastManifest.ClientID)
	assert.Equal(t, entity.Version(), storage.LastManifest.Version)
	require.Len(t, storage.LastManifest.Customizations, 2)
	assert.JSONEq(t, `{"font":"serif"}`, string(storage.LastManifest.Customizations[1].Payload))
}

func TestCustomizeTheme_ManifestSyncFailureIsNonFatal(t *testing.T) {
	entity := newActiveTheme(t)
	st := newOwnedStore(t, 42)
	inst := newExistingInstallation(t, st.SID(), entity.SID())

	instRepo := &mockInstallationRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*installation.Installation, error) { return inst, nil },
	}
	themeRepo := &mockThemeRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*theme.Theme, error) { return entity, nil },
	}
	storeRepo := &mockStoreRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*store.Store, error) { return st, nil },
	}
	storage := &mockInstallStorage{
		SyncManifestFunc: func(installPath string, _ *themefs.Manifest) error {
			return errors.NewInternalError("disk full")
		},
	}

	uc := NewCustomizeThemeUseCase(themeRepo, storeRepo, instRepo, storage, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CustomizeThemeCommand{
		InstallationSID: inst.SID(),
		ActorID:         42,
		Payload:         json.RawMessage(`{"color":"blue"}`),
	})
	require.NoError(t, err, "the row is canonical; manifest rebuild failures must not fail the request")
	assert.Equal(t, 1, result.Installation.Customizations)
}

func TestCustomizeTheme_InvalidPayloadRejected(t *testing.T) {
	entity := newActiveTheme(t)
	st := newOwnedStore(t, 42)
	inst := newExistingInstallation(t, st.SID(), entity.SID())

	instRepo := &mockInstallationRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*installation.Installation, error) { return inst, nil },
	}
	storeRepo := &mockStoreRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*store.Store, error) { return st, nil },
	}

	uc := NewCustomizeThemeUseCase(&mockThemeRepository{}, storeRepo, instRepo, &mockInstallStorage{}, logger.NewLogger())

	for _, payload := range []json.RawMessage{nil, json.RawMessage(`{broken`)} {
		_, err := uc.Execute(context.Background(), CustomizeThemeCommand{
			InstallationSID: inst.SID(),
			ActorID:         42,
			Payload:         payload,
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	}
	assert.Empty(t, inst.Customizations())
}

func TestCustomizeTheme_ForeignStoreForbidden(t *testing.T) {
	entity := newActiveTheme(t)
	st := newOwnedStore(t, 1)
	inst := newExistingInstallation(t, st.SID(), entity.SID())

	instRepo := &mockInstallationRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*installation.Installation, error) { return inst, nil },
	}
	storeRepo := &mockStoreRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*store.Store, error) { return st, nil },
	}

	uc := NewCustomizeThemeUseCase(&mockThemeRepository{}, storeRepo, instRepo, &mockInstallStorage{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CustomizeThemeCommand{
		InstallationSID: inst.SID(),
		ActorID:         99,
		Payload:         json.RawMessage(`{}`),
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
