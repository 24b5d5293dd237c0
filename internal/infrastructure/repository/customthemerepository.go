package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/infrastructure/persistence/mappers"
	"vitrine/internal/infrastructure/persistence/models"
	"vitrine/internal/shared/db"
	"vitrine/internal/shared/logger"
)

type CustomThemeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CustomThemeMapper
	logger logger.Interface
}

func NewCustomThemeRepository(database *gorm.DB, logger logger.Interface) customtheme.Repository {
	return &CustomThemeRepositoryImpl{
		db:     database,
		mapper: mappers.NewCustomThemeMapper(),
		logger: logger,
	}
}

func (r *CustomThemeRepositoryImpl) Save(ctx context.Context, c *customtheme.CustomTheme) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to save custom theme", "sid", c.SID(), "error", err)
		return fmt.Errorf("failed to save custom theme: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *CustomThemeRepositoryImpl) Update(ctx context.Context, c *customtheme.CustomTheme) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CustomThemeModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		r.logger.Errorw("failed to update custom theme", "sid", c.SID(), "error", result.Error)
		return fmt.Errorf("failed to update custom theme: %w", result.Error)
	}

	return nil
}

func (r *CustomThemeRepositoryImpl) Delete(ctx context.Context, themeID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.CustomThemeModel{}, themeID).Error; err != nil {
		r.logger.Errorw("failed to delete custom theme", "id", themeID, "error", err)
		return fmt.Errorf("failed to delete custom theme: %w", err)
	}

	return nil
}

func (r *CustomThemeRepositoryImpl) GetBySID(ctx context.Context, sid string) (*customtheme.CustomTheme, error) {
	var model models.CustomThemeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get custom theme by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get custom theme: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomThemeRepositoryImpl) ListByCreator(ctx context.Context, creatorID uint, page, pageSize int) ([]*customtheme.CustomTheme, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Model(&models.CustomThemeModel{}).
		Where("creator_id = ?", creatorID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count custom themes", "creator_id", creatorID, "error", err)
		return nil, 0, fmt.Errorf("failed to count custom themes: %w", err)
	}

	if page > 0 && pageSize > 0 {
		tx = tx.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	var modelList []models.CustomThemeModel
	if err := tx.Order("created_at DESC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list custom themes", "creator_id", creatorID, "error", err)
		return nil, 0, fmt.Errorf("failed to list custom themes: %w", err)
	}

	themes := make([]*customtheme.CustomTheme, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("failed to map custom theme model", "sid", modelList[i].SID, "error", err)
			return nil, 0, fmt.Errorf("failed to map custom theme: %w", err)
		}
		themes = append(themes, c)
	}

	return themes, total, nil
}
