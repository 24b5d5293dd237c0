package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vitrine/internal/domain/installation"
	"vitrine/internal/infrastructure/persistence/mappers"
	"vitrine/internal/infrastructure/persistence/models"
	"vitrine/internal/shared/db"
	"vitrine/internal/shared/logger"
)

type RecentInstallationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.InstallationMapper
	logger logger.Interface
}

func NewRecentInstallationRepository(database *gorm.DB, logger logger.Interface) installation.RecentRepository {
	return &RecentInstallationRepositoryImpl{
		db:     database,
		mapper: mappers.NewInstallationMapper(),
		logger: logger,
	}
}

func (r *RecentInstallationRepositoryImpl) Record(ctx context.Context, entry *installation.RecentInstallation) error {
	model := r.mapper.RecentToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to record recent installation", "user_id", entry.UserID, "error", err)
		return fmt.Errorf("failed to record recent installation: %w", err)
	}

	entry.ID = model.ID
	return nil
}

func (r *RecentInstallationRepositoryImpl) ListByUser(ctx context.Context, userID uint, limit int) ([]*installation.RecentInstallation, error) {
	tx := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID)
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var modelList []models.RecentInstallationModel
	if err := tx.Order("installed_at DESC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list recent installations", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list recent installations: %w", err)
	}

	entries := make([]*installation.RecentInstallation, 0, len(modelList))
	for i := range modelList {
		entries = append(entries, r.mapper.RecentToDomain(&modelList[i]))
	}

	return entries, nil
}

func (r *RecentInstallationRepositoryImpl) PruneBeyond(ctx context.Context, userID uint, keep int) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var keepIDs []uint
	if err := tx.
		Model(&models.RecentInstallationModel{}).
		Where("user_id = ?", userID).
		Order("installed_at DESC").
		Limit(keep).
		Pluck("id", &keepIDs).Error; err != nil {
		r.logger.Errorw("failed to select recent installations to keep", "user_id", userID, "error", err)
		return fmt.Errorf("failed to prune recent installations: %w", err)
	}

	query := tx.Where("user_id = ?", userID)
	if len(keepIDs) > 0 {
		query = query.Where("id NOT IN ?", keepIDs)
	}

	if err := query.Delete(&models.RecentInstallationModel{}).Error; err != nil && err != gorm.ErrRecordNotFound {
		r.logger.Errorw("failed to prune recent installations", "user_id", userID, "error", err)
		return fmt.Errorf("failed to prune recent installations: %w", err)
	}

	return nil
}
