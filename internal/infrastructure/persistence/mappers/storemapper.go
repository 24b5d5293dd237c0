package mappers

import (
	"time"

	"vitrine/internal/domain/store"
	"vitrine/internal/infrastructure/persistence/models"
)

type StoreMapper interface {
	ToModel(s *store.Store) *models.StoreModel
	ToDomain(model *models.StoreModel) (*store.Store, error)
}

type StoreMapperImpl struct{}

func NewStoreMapper() StoreMapper {
	return &StoreMapperImpl{}
}

func (m *StoreMapperImpl) ToModel(s *store.Store) *models.StoreModel {
	return &models.StoreModel{
		ID:        s.ID(),
		SID:       s.SID(),
		Name:      s.Name(),
		OwnerID:   s.OwnerID(),
		CreatedAt: s.CreatedAt().UnixMilli(),
		UpdatedAt: s.UpdatedAt().UnixMilli(),
	}
}

func (m *StoreMapperImpl) ToDomain(model *models.StoreModel) (*store.Store, error) {
	return store.ReconstructStore(
		model.ID,
		model.SID,
		model.Name,
		model.OwnerID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
