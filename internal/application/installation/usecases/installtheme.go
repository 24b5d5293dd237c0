package usecases

import (
	"context"
	"strconv"

	"vitrine/internal/domain/installation"
	instvo "vitrine/internal/domain/installation/value_objects"
	"vitrine/internal/domain/store"
	"vitrine/internal/domain/theme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type InstallThemeCommand struct {
	StoreSID string
	ThemeSID string
	ActorID  uint
	IsAdmin  bool
}

type InstallThemeResult struct {
	Installation InstallationView
}

// InstallThemeUseCase is the one install algorithm for catalog themes; both
// the install endpoint and the activate endpoint run it. Re-installing an
// existing pair reactivates it instead of creating a duplicate row, and the
// clone only happens when the installation directory does not exist yet.
type InstallThemeUseCase struct {
	themeRepo theme.Repository
	storeRepo store.Repository
	instRepo  installation.Repository
	cloner    ThemeCloner
	storage   InstallStorage
	txManager Transactor
	logger    logger.Interface
}

func NewInstallThemeUseCase(
	themeRepo theme.Repository,
	storeRepo store.Repository,
	instRepo installation.Repository,
	cloner ThemeCloner,
	storage InstallStorage,
	txManager Transactor,
	logger logger.Interface,
) *InstallThemeUseCase {
	return &InstallThemeUseCase{
		themeRepo: themeRepo,
		storeRepo: storeRepo,
		instRepo:  instRepo,
		cloner:    cloner,
		storage:   storage,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *InstallThemeUseCase) Execute(ctx context.Context, cmd InstallThemeCommand) (*InstallThemeResult, error) {
	uc.logger.Infow("executing install theme use case",
		"store_id", cmd.StoreSID, "theme_id", cmd.ThemeSID, "actor_id", cmd.ActorID)

	t, err := uc.themeRepo.GetBySID(ctx, cmd.ThemeSID)
	if err != nil {
		return nil, err
	}
	if t == nil || !t.IsActive() {
		return nil, errors.NewNotFoundError("theme not found")
	}

	st, err := uc.storeRepo.GetBySID(ctx, cmd.StoreSID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, errors.NewNotFoundError("store not found")
	}
	if !st.IsOwnedBy(cmd.ActorID) && !cmd.IsAdmin {
		return nil, errors.NewForbiddenError("store does not belong to you")
	}

	ref, err := instvo.NewCatalogRef(t.SID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	inst, err := uc.instRepo.GetByStoreAndTheme(ctx, cmd.StoreSID, ref)
	if err != nil {
		return nil, err
	}

	firstInstall := inst == nil
	needsClone := firstInstall || !uc.storage.InstallDirExists(inst.InstallPath())

	var installPath string
	if needsClone {
		installPath, err = uc.cloner.CloneToStore(ctx, t.SID(), strconv.FormatUint(uint64(cmd.ActorID), 10), cmd.StoreSID, t.Version())
		if err != nil {
			uc.logger.Errorw("failed to clone theme files",
				"theme_id", t.SID(), "store_id", cmd.StoreSID, "error", err)
			return nil, err
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if firstInstall {
			inst, err = installation.NewInstallation(cmd.StoreSID, ref, installPath)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.instRepo.Save(txCtx, inst); err != nil {
				return err
			}
			t.RecordInstall()
			if err := uc.themeRepo.Update(txCtx, t); err != nil {
				return err
			}
		} else if inst.IsUninstalled() {
			inst.Reinstall()
			t.RecordInstall()
			if err := uc.themeRepo.Update(txCtx, t); err != nil {
				return err
			}
		}

		// Single-active invariant: clear every other active flag first; the
		// unique index on active_store_sid backstops concurrent installs.
		if err := uc.instRepo.DeactivateAllForStore(txCtx, cmd.StoreSID); err != nil {
			return err
		}
		inst.Activate()
		return uc.instRepo.Update(txCtx, inst)
	})
	if err != nil {
		return nil, err
	}

	// The manifest is a derived cache; a failed rebuild is logged, not fatal.
	if syncErr := uc.storage.SyncManifest(inst.InstallPath(), buildManifest(inst, cmd.ActorID, t.Version())); syncErr != nil {
		uc.logger.Warnw("failed to rebuild installation manifest",
			"installation_id", inst.SID(), "error", syncErr)
	}

	uc.logger.Infow("theme installed",
		"installation_id", inst.SID(), "theme_id", t.SID(), "store_id", cmd.StoreSID, "first_install", firstInstall)

	return &InstallThemeResult{Installation: NewInstallationView(inst, t)}, nil
}
