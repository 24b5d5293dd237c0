package usecases

import (
	"context"

	"vitrine/internal/domain/installation"
	instvo "vitrine/internal/domain/installation/value_objects"
	"vitrine/internal/domain/store"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type UninstallCustomThemeCommand struct {
	ThemeSID string
	StoreSID string
	ActorID  uint
	IsAdmin  bool
}

// UninstallCustomThemeUseCase soft-deactivates a custom theme installation.
// Files stay on disk; they are cleaned up by the next custom install.
type UninstallCustomThemeUseCase struct {
	storeRepo store.Repository
	instRepo  installation.Repository
	logger    logger.Interface
}

func NewUninstallCustomThemeUseCase(
	storeRepo store.Repository,
	instRepo installation.Repository,
	logger logger.Interface,
) *UninstallCustomThemeUseCase {
	return &UninstallCustomThemeUseCase{storeRepo: storeRepo, instRepo: instRepo, logger: logger}
}

func (uc *UninstallCustomThemeUseCase) Execute(ctx context.Context, cmd UninstallCustomThemeCommand) error {
	st, err := uc.storeRepo.GetBySID(ctx, cmd.StoreSID)
	if err != nil {
		return err
	}
	if st == nil {
		return errors.NewNotFoundError("store not found")
	}
	if !st.IsOwnedBy(cmd.ActorID) && !cmd.IsAdmin {
		return errors.NewForbiddenError("store does not belong to you")
	}

	ref, err := instvo.NewCustomRef(cmd.ThemeSID)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	inst, err := uc.instRepo.GetByStoreAndTheme(ctx, cmd.StoreSID, ref)
	if err != nil {
		return err
	}
	if inst == nil {
		return errors.NewNotFoundError("installation not found")
	}

	inst.MarkUninstalled()
	if err := uc.instRepo.Update(ctx, inst); err != nil {
		uc.logger.Errorw("failed to uninstall custom theme",
			"installation_id", inst.SID(), "error", err)
		return err
	}

	uc.logger.Infow("custom theme uninstalled",
		"theme_id", cmd.ThemeSID, "store_id", cmd.StoreSID)
	return nil
}
