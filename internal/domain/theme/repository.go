package theme

import (
	"context"

	vo "vitrine/internal/domain/theme/value_objects"
)

type Repository interface {
	Save(ctx context.Context, theme *Theme) error
	Update(ctx context.Context, theme *Theme) error
	GetBySID(ctx context.Context, sid string) (*Theme, error)
	List(ctx context.Context, filter Filter) ([]*Theme, int64, error)
}

type Filter struct {
	Category   *vo.Category
	PlanTier   *vo.PlanTier
	ActiveOnly bool
	Search     string
	Page       int
	PageSize   int
}
