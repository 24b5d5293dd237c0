package usecases

import (
	"context"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type DeleteCustomThemeCommand struct {
	ThemeSID string
	ActorID  uint
	IsAdmin  bool
}

// DeleteCustomThemeUseCase removes the directory tree first and the DB row
// last, so a failure leaves a dangling row rather than an orphan directory.
type DeleteCustomThemeUseCase struct {
	repo    customtheme.Repository
	storage CustomStorage
	logger  logger.Interface
}

func NewDeleteCustomThemeUseCase(
	repo customtheme.Repository,
	storage CustomStorage,
	logger logger.Interface,
) *DeleteCustomThemeUseCase {
	return &DeleteCustomThemeUseCase{repo: repo, storage: storage, logger: logger}
}

func (uc *DeleteCustomThemeUseCase) Execute(ctx context.Context, cmd DeleteCustomThemeCommand) error {
	entity, err := uc.repo.GetBySID(ctx, cmd.ThemeSID)
	if err != nil {
		return err
	}
	if entity == nil {
		return errors.NewNotFoundError("custom theme not found")
	}
	if !entity.IsOwnedBy(cmd.ActorID) && !cmd.IsAdmin {
		return errors.NewForbiddenError("custom theme does not belong to you")
	}

	if err := uc.storage.Remove(entity.ThemePath()); err != nil {
		uc.logger.Errorw("failed to remove custom theme files", "theme_id", entity.SID(), "error", err)
		return err
	}

	if err := uc.repo.Delete(ctx, entity.ID()); err != nil {
		uc.logger.Errorw("failed to delete custom theme row", "theme_id", entity.SID(), "error", err)
		return err
	}

	uc.logger.Infow("custom theme deleted", "theme_id", entity.SID())
	return nil
}
