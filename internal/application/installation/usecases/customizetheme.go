package usecases

import (
	"context"
	"encoding/json"

	"vitrine/internal/domain/installation"
	"vitrine/internal/domain/store"
	"vitrine/internal/domain/theme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type CustomizeThemeCommand struct {
	InstallationSID string
	ActorID         uint
	IsAdmin         bool
	Payload         json.RawMessage
}

type CustomizeThemeResult struct {
	Installation InstallationView
}

// CustomizeThemeUseCase appends one customization payload to the
// installation row, then rebuilds the on-disk manifest from it. The row is
// canonical; a manifest rebuild failure is logged and the request still
// succeeds.
type CustomizeThemeUseCase struct {
	themeRepo theme.Repository
	storeRepo store.Repository
	instRepo  installation.Repository
	storage   InstallStorage
	logger    logger.Interface
}

func NewCustomizeThemeUseCase(
	themeRepo theme.Repository,
	storeRepo store.Repository,
	instRepo installation.Repository,
	storage InstallStorage,
	logger logger.Interface,
) *CustomizeThemeUseCase {
	return &CustomizeThemeUseCase{
		themeRepo: themeRepo,
		storeRepo: storeRepo,
		instRepo:  instRepo,
		storage:   storage,
		logger:    logger,
	}
}

func (uc *CustomizeThemeUseCase) Execute(ctx context.Context, cmd CustomizeThemeCommand) (*CustomizeThemeResult, error) {
	inst, err := uc.instRepo.GetBySID(ctx, cmd.InstallationSID)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, errors.NewNotFoundError("installation not found")
	}

	st, err := uc.storeRepo.GetBySID(ctx, inst.StoreSID())
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, errors.NewNotFoundError("store not found")
	}
	if !st.IsOwnedBy(cmd.ActorID) && !cmd.IsAdmin {
		return nil, errors.NewForbiddenError("store does not belong to you")
	}

	if err := inst.ApplyCustomization(cmd.Payload); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.instRepo.Update(ctx, inst); err != nil {
		uc.logger.Errorw("failed to persist customization",
			"installation_id", inst.SID(), "error", err)
		return nil, err
	}

	version := ""
	var t *theme.Theme
	if !inst.ThemeRef().IsCustom() {
		if t, err = uc.themeRepo.GetBySID(ctx, inst.ThemeRef().SID()); err == nil && t != nil {
			version = t.Version()
		}
	}

	if syncErr := uc.storage.SyncManifest(inst.InstallPath(), buildManifest(inst, cmd.ActorID, version)); syncErr != nil {
		uc.logger.Warnw("failed to rebuild installation manifest",
			"installation_id", inst.SID(), "error", syncErr)
	}

	uc.logger.Infow("customization applied",
		"installation_id", inst.SID(), "count", len(inst.Customizations()))

	return &CustomizeThemeResult{Installation: NewInstallationView(inst, t)}, nil
}
