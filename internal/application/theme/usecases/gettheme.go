package usecases

import (
	"context"

	"vitrine/internal/domain/theme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
	"vitrine/internal/shared/services/markdown"
)

type GetThemeQuery struct {
	ThemeSID string
}

type GetThemeUseCase struct {
	themeRepo theme.Repository
	markdown  markdown.MarkdownService
	logger    logger.Interface
}

func NewGetThemeUseCase(
	themeRepo theme.Repository,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *GetThemeUseCase {
	return &GetThemeUseCase{
		themeRepo: themeRepo,
		markdown:  markdownService,
		logger:    logger,
	}
}

func (uc *GetThemeUseCase) Execute(ctx context.Context, query GetThemeQuery) (*ThemeDetail, error) {
	t, err := uc.themeRepo.GetBySID(ctx, query.ThemeSID)
	if err != nil {
		uc.logger.Errorw("failed to get theme", "theme_id", query.ThemeSID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("theme not found")
	}

	descriptionHTML, err := uc.markdown.ToHTMLSanitized(t.Description())
	if err != nil {
		uc.logger.Warnw("failed to render theme description", "theme_id", t.SID(), "error", err)
		descriptionHTML = ""
	}

	return &ThemeDetail{
		ThemeSummary:    NewThemeSummary(t),
		Description:     t.Description(),
		DescriptionHTML: descriptionHTML,
		IsActive:        t.IsActive(),
	}, nil
}
