package installation

import (
	"context"

	vo "vitrine/internal/domain/installation/value_objects"
)

type Repository interface {
	Save(ctx context.Context, inst *Installation) error
	Update(ctx context.Context, inst *Installation) error
	Delete(ctx context.Context, instID uint) error
	GetBySID(ctx context.Context, sid string) (*Installation, error)
	GetByStoreAndTheme(ctx context.Context, storeSID string, ref vo.ThemeRef) (*Installation, error)
	ListByStore(ctx context.Context, storeSID string, activeOnly bool) ([]*Installation, error)
	// DeactivateAllForStore clears the active flag on every installation of
	// the store, making room for a new active one.
	DeactivateAllForStore(ctx context.Context, storeSID string) error
}
