package usecases

import (
	"context"

	"vitrine/internal/domain/theme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type RateThemeCommand struct {
	ThemeSID string
	Score    int
	UserID   uint
}

type RateThemeResult struct {
	AverageRating float64
	RatingCount   int64
}

type RateThemeUseCase struct {
	themeRepo theme.Repository
	logger    logger.Interface
}

func NewRateThemeUseCase(themeRepo theme.Repository, logger logger.Interface) *RateThemeUseCase {
	return &RateThemeUseCase{themeRepo: themeRepo, logger: logger}
}

func (uc *RateThemeUseCase) Execute(ctx context.Context, cmd RateThemeCommand) (*RateThemeResult, error) {
	t, err := uc.themeRepo.GetBySID(ctx, cmd.ThemeSID)
	if err != nil {
		uc.logger.Errorw("failed to get theme for rating", "theme_id", cmd.ThemeSID, "error", err)
		return nil, err
	}
	if t == nil || !t.IsActive() {
		return nil, errors.NewNotFoundError("theme not found")
	}

	if err := t.AddRating(cmd.Score); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.themeRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update theme rating", "theme_id", t.SID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("theme rated", "theme_id", t.SID(), "score", cmd.Score, "user_id", cmd.UserID)

	return &RateThemeResult{
		AverageRating: t.AverageRating(),
		RatingCount:   t.RatingCount(),
	}, nil
}
