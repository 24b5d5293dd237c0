package usecases

import (
	"context"

	"vitrine/internal/domain/installation"
	"vitrine/internal/domain/store"
	"vitrine/internal/domain/theme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type UninstallThemeCommand struct {
	InstallationSID string
	ActorID         uint
	IsAdmin         bool
	// Purge additionally removes the installation directory from disk.
	Purge bool
}

type UninstallThemeUseCase struct {
	themeRepo theme.Repository
	storeRepo store.Repository
	instRepo  installation.Repository
	storage   InstallStorage
	txManager Transactor
	logger    logger.Interface
}

func NewUninstallThemeUseCase(
	themeRepo theme.Repository,
	storeRepo store.Repository,
	instRepo installation.Repository,
	storage InstallStorage,
	txManager Transactor,
	logger logger.Interface,
) *UninstallThemeUseCase {
	return &UninstallThemeUseCase{
		themeRepo: themeRepo,
		storeRepo: storeRepo,
		instRepo:  instRepo,
		storage:   storage,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *UninstallThemeUseCase) Execute(ctx context.Context, cmd UninstallThemeCommand) error {
	inst, err := uc.instRepo.GetBySID(ctx, cmd.InstallationSID)
	if err != nil {
		return err
	}
	if inst == nil {
		return errors.NewNotFoundError("installation not found")
	}

	st, err := uc.storeRepo.GetBySID(ctx, inst.StoreSID())
	if err != nil {
		return err
	}
	if st == nil {
		return errors.NewNotFoundError("store not found")
	}
	if !st.IsOwnedBy(cmd.ActorID) && !cmd.IsAdmin {
		return errors.NewForbiddenError("store does not belong to you")
	}

	alreadyUninstalled := inst.IsUninstalled()

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		inst.MarkUninstalled()
		if err := uc.instRepo.Update(txCtx, inst); err != nil {
			return err
		}

		if alreadyUninstalled || inst.ThemeRef().IsCustom() {
			return nil
		}

		t, err := uc.themeRepo.GetBySID(txCtx, inst.ThemeRef().SID())
		if err != nil {
			return err
		}
		if t != nil {
			t.RecordUninstall()
			return uc.themeRepo.Update(txCtx, t)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if cmd.Purge {
		if err := uc.storage.RemoveInstallDir(inst.InstallPath()); err != nil {
			uc.logger.Errorw("failed to remove installation directory",
				"installation_id", inst.SID(), "path", inst.InstallPath(), "error", err)
			return err
		}
	}

	uc.logger.Infow("theme uninstalled",
		"installation_id", inst.SID(), "store_id", inst.StoreSID(), "purged", cmd.Purge)
	return nil
}
