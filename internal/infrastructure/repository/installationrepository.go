package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vitrine/internal/domain/installation"
	vo "vitrine/internal/domain/installation/value_objects"
	"vitrine/internal/infrastructure/persistence/mappers"
	"vitrine/internal/infrastructure/persistence/models"
	"vitrine/internal/shared/db"
	"vitrine/internal/shared/logger"
)

type InstallationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.InstallationMapper
	logger logger.Interface
}

func NewInstallationRepository(database *gorm.DB, logger logger.Interface) installation.Repository {
	return &InstallationRepositoryImpl{
		db:     database,
		mapper: mappers.NewInstallationMapper(),
		logger: logger,
	}
}

func (r *InstallationRepositoryImpl) Save(ctx context.Context, inst *installation.Installation) error {
	model := r.mapper.ToModel(inst)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to save installation", "sid", inst.SID(), "error", err)
		return fmt.Errorf("failed to save installation: %w", err)
	}

	inst.SetID(model.ID)
	return nil
}

func (r *InstallationRepositoryImpl) Update(ctx context.Context, inst *installation.Installation) error {
	model := r.mapper.ToModel(inst)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InstallationModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		r.logger.Errorw("failed to update installation", "sid", inst.SID(), "error", result.Error)
		return fmt.Errorf("failed to update installation: %w", result.Error)
	}

	return nil
}

func (r *InstallationRepositoryImpl) Delete(ctx context.Context, instID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.InstallationModel{}, instID).Error; err != nil {
		r.logger.Errorw("failed to delete installation", "id", instID, "error", err)
		return fmt.Errorf("failed to delete installation: %w", err)
	}

	return nil
}

func (r *InstallationRepositoryImpl) GetBySID(ctx context.Context, sid string) (*installation.Installation, error) {
	var model models.InstallationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get installation by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get installation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InstallationRepositoryImpl) GetByStoreAndTheme(ctx context.Context, storeSID string, ref vo.ThemeRef) (*installation.Installation, error) {
	var model models.InstallationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("store_sid = ? AND theme_ref = ?", storeSID, ref.String()).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get installation", "store_sid", storeSID, "theme_ref", ref.String(), "error", err)
		return nil, fmt.Errorf("failed to get installation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InstallationRepositoryImpl) ListByStore(ctx context.Context, storeSID string, activeOnly bool) ([]*installation.Installation, error) {
	tx := db.GetTxFromContext(ctx, r.db).Where("store_sid = ?", storeSID)
	if activeOnly {
		tx = tx.Where("is_active = ?", true)
	}

	var modelList []models.InstallationModel
	if err := tx.Order("installed_at DESC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list installations", "store_sid", storeSID, "error", err)
		return nil, fmt.Errorf("failed to list installations: %w", err)
	}

	installs := make([]*installation.Installation, 0, len(modelList))
	for i := range modelList {
		inst, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("failed to map installation model", "sid", modelList[i].SID, "error", err)
			return nil, fmt.Errorf("failed to map installation: %w", err)
		}
		installs = append(installs, inst)
	}

	return installs, nil
}

func (r *InstallationRepositoryImpl) DeactivateAllForStore(ctx context.Context, storeSID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InstallationModel{}).
		Where("store_sid = ? AND is_active = ?", storeSID, true).
		Updates(map[string]interface{}{
			"is_active":        false,
			"active_store_sid": nil,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to deactivate installations", "store_sid", storeSID, "error", result.Error)
		return fmt.Errorf("failed to deactivate installations: %w", result.Error)
	}

	return nil
}
