package customtheme

import "context"

type Repository interface {
	Save(ctx context.Context, theme *CustomTheme) error
	Update(ctx context.Context, theme *CustomTheme) error
	Delete(ctx context.Context, themeID uint) error
	GetBySID(ctx context.Context, sid string) (*CustomTheme, error)
	ListByCreator(ctx context.Context, creatorID uint, page, pageSize int) ([]*CustomTheme, int64, error)
}
