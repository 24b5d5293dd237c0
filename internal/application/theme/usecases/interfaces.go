package usecases

import "context"

type ListThemesExecutor interface {
	Execute(ctx context.Context, query ListThemesQuery) (*ListThemesResult, error)
}

type GetThemeExecutor interface {
	Execute(ctx context.Context, query GetThemeQuery) (*ThemeDetail, error)
}

type UploadThemeExecutor interface {
	Execute(ctx context.Context, cmd UploadThemeCommand) (*UploadThemeResult, error)
}

type RateThemeExecutor interface {
	Execute(ctx context.Context, cmd RateThemeCommand) (*RateThemeResult, error)
}

type DeactivateThemeExecutor interface {
	Execute(ctx context.Context, cmd DeactivateThemeCommand) error
}
