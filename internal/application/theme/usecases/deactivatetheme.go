package usecases

import (
	"context"

	"vitrine/internal/domain/theme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type DeactivateThemeCommand struct {
	ThemeSID string
}

type DeactivateThemeUseCase struct {
	themeRepo theme.Repository
	logger    logger.Interface
}

func NewDeactivateThemeUseCase(themeRepo theme.Repository, logger logger.Interface) *DeactivateThemeUseCase {
	return &DeactivateThemeUseCase{themeRepo: themeRepo, logger: logger}
}

// Execute soft-deletes a catalog theme. Existing installations keep working;
// the theme just stops being listed and installable.
func (uc *DeactivateThemeUseCase) Execute(ctx context.Context, cmd DeactivateThemeCommand) error {
	t, err := uc.themeRepo.GetBySID(ctx, cmd.ThemeSID)
	if err != nil {
		uc.logger.Errorw("failed to get theme for deactivation", "theme_id", cmd.ThemeSID, "error", err)
		return err
	}
	if t == nil {
		return errors.NewNotFoundError("theme not found")
	}

	t.Deactivate()

	if err := uc.themeRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to deactivate theme", "theme_id", t.SID(), "error", err)
		return err
	}

	uc.logger.Infow("theme deactivated", "theme_id", t.SID())
	return nil
}
