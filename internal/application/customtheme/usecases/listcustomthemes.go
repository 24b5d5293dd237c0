package usecases

import (
	"context"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/shared/logger"
)

type ListCustomThemesQuery struct {
	CreatorID uint
	Page      int
	PageSize  int
}

type ListCustomThemesResult struct {
	Themes []CustomThemeSummary
	Total  int64
}

type ListCustomThemesUseCase struct {
	repo   customtheme.Repository
	logger logger.Interface
}

func NewListCustomThemesUseCase(repo customtheme.Repository, logger logger.Interface) *ListCustomThemesUseCase {
	return &ListCustomThemesUseCase{repo: repo, logger: logger}
}

func (uc *ListCustomThemesUseCase) Execute(ctx context.Context, query ListCustomThemesQuery) (*ListCustomThemesResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	themes, total, err := uc.repo.ListByCreator(ctx, query.CreatorID, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list custom themes", "creator_id", query.CreatorID, "error", err)
		return nil, err
	}

	summaries := make([]CustomThemeSummary, 0, len(themes))
	for _, t := range themes {
		summaries = append(summaries, NewCustomThemeSummary(t))
	}

	return &ListCustomThemesResult{Themes: summaries, Total: total}, nil
}
