package usecases

import (
	"context"

	"vitrine/internal/domain/theme"
	vo "vitrine/internal/domain/theme/value_objects"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type ListThemesQuery struct {
	Category string
	PlanTier string
	Search   string
	Page     int
	PageSize int
}

type ListThemesResult struct {
	Themes   []ThemeSummary
	Total    int64
	Page     int
	PageSize int
}

type ListThemesUseCase struct {
	themeRepo theme.Repository
	logger    logger.Interface
}

func NewListThemesUseCase(themeRepo theme.Repository, logger logger.Interface) *ListThemesUseCase {
	return &ListThemesUseCase{themeRepo: themeRepo, logger: logger}
}

func (uc *ListThemesUseCase) Execute(ctx context.Context, query ListThemesQuery) (*ListThemesResult, error) {
	filter := theme.Filter{
		ActiveOnly: true,
		Search:     query.Search,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}

	if query.Category != "" {
		category, err := vo.ParseCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}
	if query.PlanTier != "" {
		planTier, err := vo.ParsePlanTier(query.PlanTier)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.PlanTier = &planTier
	}

	themes, total, err := uc.themeRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list themes", "error", err)
		return nil, err
	}

	summaries := make([]ThemeSummary, 0, len(themes))
	for _, t := range themes {
		summaries = append(summaries, NewThemeSummary(t))
	}

	return &ListThemesResult{
		Themes:   summaries,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
