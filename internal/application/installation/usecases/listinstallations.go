package usecases

import (
	"context"

	"vitrine/internal/domain/installation"
	"vitrine/internal/domain/store"
	"vitrine/internal/domain/theme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type ListInstallationsQuery struct {
	StoreSID   string
	ActorID    uint
	IsAdmin    bool
	ActiveOnly bool
}

type ListInstallationsResult struct {
	Installations []InstallationView
}

type ListInstallationsUseCase struct {
	themeRepo theme.Repository
	storeRepo store.Repository
	instRepo  installation.Repository
	logger    logger.Interface
}

func NewListInstallationsUseCase(
	themeRepo theme.Repository,
	storeRepo store.Repository,
	instRepo installation.Repository,
	logger logger.Interface,
) *ListInstallationsUseCase {
	return &ListInstallationsUseCase{
		themeRepo: themeRepo,
		storeRepo: storeRepo,
		instRepo:  instRepo,
		logger:    logger,
	}
}

func (uc *ListInstallationsUseCase) Execute(ctx context.Context, query ListInstallationsQuery) (*ListInstallationsResult, error) {
	st, err := uc.storeRepo.GetBySID(ctx, query.StoreSID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, errors.NewNotFoundError("store not found")
	}
	if !st.IsOwnedBy(query.ActorID) && !query.IsAdmin {
		return nil, errors.NewForbiddenError("store does not belong to you")
	}

	installs, err := uc.instRepo.ListByStore(ctx, query.StoreSID, query.ActiveOnly)
	if err != nil {
		uc.logger.Errorw("failed to list installations", "store_id", query.StoreSID, "error", err)
		return nil, err
	}

	views := make([]InstallationView, 0, len(installs))
	for _, inst := range installs {
		var t *theme.Theme
		if !inst.ThemeRef().IsCustom() {
			if t, err = uc.themeRepo.GetBySID(ctx, inst.ThemeRef().SID()); err != nil {
				uc.logger.Warnw("failed to load theme for installation",
					"installation_id", inst.SID(), "theme_id", inst.ThemeRef().SID(), "error", err)
				t = nil
			}
		}
		views = append(views, NewInstallationView(inst, t))
	}

	return &ListInstallationsResult{Installations: views}, nil
}
