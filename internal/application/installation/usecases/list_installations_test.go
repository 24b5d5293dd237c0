package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/domain/installation"
	instvo "vitrine/internal/domain/installation/value_objects"
	"vitrine/internal/domain/store"
	"vitrine/internal/domain/theme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

func TestListInstallations_PopulatesThemeMetadata(t *testing.T) {
	entity := newActiveTheme(t)
	st := newOwnedStore(t, 42)

	catalogInst := newExistingInstallation(t, st.SID(), entity.SID())

	customRef, err := instvo.NewCustomRef("cth_abc123")
	require.NoError(t, err)
	customInst, err := installation.NewInstallation(st.SID(), customRef, "stores/"+st.SID()+"/themes/custom-cth_abc123")
	require.NoError(t, err)

	var activeOnlySeen bool
	instRepo := &mockInstallationRepository{
		ListByStoreFunc: func(ctx context.Context, storeSID string, activeOnly bool) ([]*installation.Installation, error) {
			activeOnlySeen = activeOnly
			return []*installation.Installation{catalogInst, customInst}, nil
		},
	}
	themeRepo := &mockThemeRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*theme.Theme, error) {
			require.Equal(t, entity.SID(), sid)
			return entity, nil
		},
	}
	storeRepo := &mockStoreRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*store.Store, error) { return st, nil },
	}

	uc := NewListInstallationsUseCase(themeRepo, storeRepo, instRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListInstallationsQuery{
		StoreSID:   st.SID(),
		ActorID:    42,
		ActiveOnly: true,
	})
	require.NoError(t, err)

	assert.True(t, activeOnlySeen)
	require.Len(t, result.Installations, 2)

	require.NotNil(t, result.Installations[0].Theme)
	assert.Equal(t, entity.Name(), result.Installations[0].Theme.Name)
	assert.Equal(t, "catalog:"+entity.SID(), result.Installations[0].ThemeRef)

	assert.Nil(t, result.Installations[1].Theme, "custom themes carry no catalog metadata")
	assert.Equal(t, "custom:cth_abc123", result.Installations[1].ThemeRef)
}

func TestListInstallations_ThemeLookupFailureDegrades(t *testing.T) {
	entity := newActiveTheme(t)
	st := newOwnedStore(t, 42)
	inst := newExistingInstallation(t, st.SID(), entity.SID())

	instRepo := &mockInstallationRepository{
		ListByStoreFunc: func(ctx context.Context, storeSID string, activeOnly bool) ([]*installation.Installation, error) {
			return []*installation.Installation{inst}, nil
		},
	}
	themeRepo := &mockThemeRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*theme.Theme, error) {
			return nil, errors.NewInternalError("database gone")
		},
	}
	storeRepo := &mockStoreRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*store.Store, error) { return st, nil },
	}

	uc := NewListInstallationsUseCase(themeRepo, storeRepo, instRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListInstallationsQuery{StoreSID: st.SID(), ActorID: 42})
	require.NoError(t, err)
	require.Len(t, result.Installations, 1)
	assert.Nil(t, result.Installations[0].Theme)
}

func TestListInstallations_ForeignStoreForbidden(t *testing.T) {
	st := newOwnedStore(t, 1)
	storeRepo := &mockStoreRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*store.Store, error) { return st, nil },
	}

	uc := NewListInstallationsUseCase(&mockThemeRepository{}, storeRepo, &mockInstallationRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ListInstallationsQuery{StoreSID: st.SID(), ActorID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	// Admins can inspect any store.
	_, err = uc.Execute(context.Background(), ListInstallationsQuery{StoreSID: st.SID(), ActorID: 99, IsAdmin: true})
	require.NoError(t, err)
}
