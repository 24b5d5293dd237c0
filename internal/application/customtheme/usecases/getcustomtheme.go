package usecases

import (
	"context"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type GetCustomThemeQuery struct {
	ThemeSID string
	ActorID  uint
	IsAdmin  bool
}

type GetCustomThemeResult struct {
	Theme CustomThemeDetail
}

// GetCustomThemeUseCase returns one custom theme with its page bodies read
// from disk. Missing files degrade to empty strings.
type GetCustomThemeUseCase struct {
	repo    customtheme.Repository
	storage CustomStorage
	logger  logger.Interface
}

func NewGetCustomThemeUseCase(
	repo customtheme.Repository,
	storage CustomStorage,
	logger logger.Interface,
) *GetCustomThemeUseCase {
	return &GetCustomThemeUseCase{repo: repo, storage: storage, logger: logger}
}

func (uc *GetCustomThemeUseCase) Execute(ctx context.Context, query GetCustomThemeQuery) (*GetCustomThemeResult, error) {
	entity, err := uc.loadOwned(ctx, query.ThemeSID, query.ActorID, query.IsAdmin)
	if err != nil {
		return nil, err
	}

	html, css, err := uc.storage.ReadPage(entity.ThemePath())
	if err != nil {
		uc.logger.Warnw("failed to read custom theme page", "theme_id", entity.SID(), "error", err)
	}

	return &GetCustomThemeResult{
		Theme: CustomThemeDetail{
			CustomThemeSummary: NewCustomThemeSummary(entity),
			HTML:               string(html),
			CSS:                string(css),
		},
	}, nil
}

func (uc *GetCustomThemeUseCase) loadOwned(ctx context.Context, sid string, actorID uint, isAdmin bool) (*customtheme.CustomTheme, error) {
	entity, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("custom theme not found")
	}
	if !entity.IsOwnedBy(actorID) && !isAdmin {
		return nil, errors.NewForbiddenError("custom theme does not belong to you")
	}
	return entity, nil
}
