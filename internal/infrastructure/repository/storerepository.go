package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vitrine/internal/domain/store"
	"vitrine/internal/infrastructure/persistence/mappers"
	"vitrine/internal/infrastructure/persistence/models"
	"vitrine/internal/shared/db"
	"vitrine/internal/shared/logger"
)

type StoreRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.StoreMapper
	logger logger.Interface
}

func NewStoreRepository(database *gorm.DB, logger logger.Interface) store.Repository {
	return &StoreRepositoryImpl{
		db:     database,
		mapper: mappers.NewStoreMapper(),
		logger: logger,
	}
}

func (r *StoreRepositoryImpl) Save(ctx context.Context, s *store.Store) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to save store", "sid", s.SID(), "error", err)
		return fmt.Errorf("failed to save store: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *StoreRepositoryImpl) GetBySID(ctx context.Context, sid string) (*store.Store, error) {
	var model models.StoreModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get store by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StoreRepositoryImpl) ListByOwner(ctx context.Context, ownerID uint) ([]*store.Store, error) {
	var modelList []models.StoreModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list stores", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	stores := make([]*store.Store, 0, len(modelList))
	for i := range modelList {
		s, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			r.logger.Errorw("failed to map store model", "sid", modelList[i].SID, "error", err)
			return nil, fmt.Errorf("failed to map store: %w", err)
		}
		stores = append(stores, s)
	}

	return stores, nil
}
