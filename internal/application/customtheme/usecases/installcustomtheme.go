package usecases

import (
	"context"
	"strconv"
	"time"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/domain/installation"
	instvo "vitrine/internal/domain/installation/value_objects"
	"vitrine/internal/domain/store"
	"vitrine/internal/infrastructure/themefs"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type InstallCustomThemeCommand struct {
	ThemeSID string
	StoreSID string
	ActorID  uint
	IsAdmin  bool
}

type InstallCustomThemeResult struct {
	InstallationSID string
	InstallPath     string
}

// InstallCustomThemeUseCase puts a custom theme live on a store. A store
// runs at most one custom theme: every other installation is deactivated and
// every other custom-* directory under the store is deleted. The copy is
// skipped when the target already has files, which preserves in-place edits
// across re-installs.
type InstallCustomThemeUseCase struct {
	repo       customtheme.Repository
	storeRepo  store.Repository
	instRepo   installation.Repository
	recentRepo installation.RecentRepository
	storage    CustomStorage
	syncer     ManifestSyncer
	txManager  Transactor
	logger     logger.Interface
}

func NewInstallCustomThemeUseCase(
	repo customtheme.Repository,
	storeRepo store.Repository,
	instRepo installation.Repository,
	recentRepo installation.RecentRepository,
	storage CustomStorage,
	syncer ManifestSyncer,
	txManager Transactor,
	logger logger.Interface,
) *InstallCustomThemeUseCase {
	return &InstallCustomThemeUseCase{
		repo:       repo,
		storeRepo:  storeRepo,
		instRepo:   instRepo,
		recentRepo: recentRepo,
		storage:    storage,
		syncer:     syncer,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *InstallCustomThemeUseCase) Execute(ctx context.Context, cmd InstallCustomThemeCommand) (*InstallCustomThemeResult, error) {
	uc.logger.Infow("executing install custom theme use case",
		"theme_id", cmd.ThemeSID, "store_id", cmd.StoreSID, "actor_id", cmd.ActorID)

	entity, err := uc.repo.GetBySID(ctx, cmd.ThemeSID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("custom theme not found")
	}
	if !entity.IsOwnedBy(cmd.ActorID) && !cmd.IsAdmin {
		return nil, errors.NewForbiddenError("custom theme does not belong to you")
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

	ref, err := instvo.NewCustomRef(entity.SID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	installPath, err := uc.storage.InstallToStore(ctx, entity.ThemePath(), cmd.StoreSID, ref.InstallDirName())
	if err != nil {
		uc.logger.Errorw("failed to install custom theme files",
			"theme_id", entity.SID(), "store_id", cmd.StoreSID, "error", err)
		return nil, err
	}

	var inst *installation.Installation
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		inst, err = uc.instRepo.GetByStoreAndTheme(txCtx, cmd.StoreSID, ref)
		if err != nil {
			return err
		}
		if inst == nil {
			if inst, err = installation.NewInstallation(cmd.StoreSID, ref, installPath); err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.instRepo.Save(txCtx, inst); err != nil {
				return err
			}
		} else if inst.IsUninstalled() {
			inst.Reinstall()
		}

		if err := uc.instRepo.DeactivateAllForStore(txCtx, cmd.StoreSID); err != nil {
			return err
		}
		inst.Activate()
		return uc.instRepo.Update(txCtx, inst)
	})
	if err != nil {
		return nil, err
	}

	if syncErr := uc.syncer.SyncManifest(installPath, uc.buildManifest(inst, cmd.ActorID)); syncErr != nil {
		uc.logger.Warnw("failed to write installation manifest",
			"installation_id", inst.SID(), "error", syncErr)
	}

	entry := &installation.RecentInstallation{
		UserID:      cmd.ActorID,
		ThemeSID:    entity.SID(),
		StoreSID:    cmd.StoreSID,
		InstalledAt: time.Now(),
	}
	if err := uc.recentRepo.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record recent installation", "theme_id", entity.SID(), "error", err)
	} else if err := uc.recentRepo.PruneBeyond(ctx, cmd.ActorID, installation.RecentKeep); err != nil {
		uc.logger.Warnw("failed to prune recent installations", "user_id", cmd.ActorID, "error", err)
	}

	uc.logger.Infow("custom theme installed",
		"theme_id", entity.SID(), "store_id", cmd.StoreSID, "installation_id", inst.SID())

	return &InstallCustomThemeResult{
		InstallationSID: inst.SID(),
		InstallPath:     installPath,
	}, nil
}

func (uc *InstallCustomThemeUseCase) buildManifest(inst *installation.Installation, actorID uint) *themefs.Manifest {
	records := make([]themefs.CustomizationRecord, 0, len(inst.Customizations()))
	for _, c := range inst.Customizations() {
		records = append(records, themefs.CustomizationRecord{Payload: c.Payload, AppliedAt: c.AppliedAt})
	}
	dirs := make(map[string]string, len(themefs.ScaffoldDirs))
	for _, name := range themefs.ScaffoldDirs {
		dirs[name] = name
	}
	return &themefs.Manifest{
		ThemeID:        inst.ThemeRef().SID(),
		ClientID:       strconv.FormatUint(uint64(actorID), 10),
		StoreID:        inst.StoreSID(),
		Status:         inst.Status().String(),
		InstalledAt:    inst.InstalledAt(),
		IsActive:       inst.IsActive(),
		Customizations: records,
		Directories:    dirs,
	}
}
