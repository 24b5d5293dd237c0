package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vitrine/internal/domain/theme"
	"vitrine/internal/infrastructure/persistence/mappers"
	"vitrine/internal/infrastructure/persistence/models"
	"vitrine/internal/shared/db"
	"vitrine/internal/shared/logger"
)

type ThemeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ThemeMapper
	logger logger.Interface
}

func NewThemeRepository(database *gorm.DB, logger logger.Interface) theme.Repository {
	return &ThemeRepositoryImpl{
		db:     database,
		mapper: mappers.NewThemeMapper(),
		logger: logger,
	}
}

func (r *ThemeRepositoryImpl) Save(ctx context.Context, t *theme.Theme) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to save theme", "sid", t.SID(), "error", err)
		return fmt.Errorf("failed to save theme: %w", err)
	}

	t.SetID(model.ID)
	return nil
}

func (r *ThemeRepositoryImpl) Update(ctx context.Context, t *theme.Theme) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ThemeModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		r.logger.Errorw("failed to update theme", "sid", t.SID(), "error", result.Error)
		return fmt.Errorf("failed to update theme: %w", result.Error)
	}

	return nil
}

func (r *ThemeRepositoryImpl) GetBySID(ctx context.Context, sid string) (*theme.Theme, error) {
	var model models.ThemeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get theme by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ThemeRepositoryImpl) List(ctx context.Context, filter theme.Filter) ([]*theme.Theme, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.ThemeModel{})

	if filter.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}
	if filter.Category != nil {
		tx = tx.Where("category = ?", filter.Category.String())
	}
	if filter.PlanTier != nil {
		tx = tx.Where("plan_tier = ?", filter.PlanTier.String())
	}
	if filter.Search != "" {
		tx = tx.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count themes", "error", err)
		return nil, 0, fmt.Errorf("failed to count themes: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		tx = tx.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var modelList []models.ThemeModel
	if err := tx.Order("created_at DESC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list themes", "error", err)
		return nil, 0, fmt.Errorf("failed to list themes: %w", err)
	}

	themes := make([]*theme.Theme, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("failed to map theme model", "sid", modelList[i].SID, "error", err)
			return nil, 0, fmt.Errorf("failed to map theme: %w", err)
		}
		themes = append(themes, t)
	}

	return themes, total, nil
}
