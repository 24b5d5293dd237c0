package usecases

import (
	"context"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type UpdateCustomThemeCommand struct {
	ThemeSID string
	ActorID  uint
	IsAdmin  bool

	// All optional: empty means "leave unchanged".
	Name          string
	ZipPath       string
	ZipName       string
	ThumbnailPath string
	ThumbnailName string
}

type UpdateCustomThemeResult struct {
	Theme CustomThemeSummary
}

type UpdateCustomThemeUseCase struct {
	repo         customtheme.Repository
	storage      CustomStorage
	thumbnailMax int
	logger       logger.Interface
}

func NewUpdateCustomThemeUseCase(
	repo customtheme.Repository,
	storage CustomStorage,
	thumbnailMaxWidth int,
	logger logger.Interface,
) *UpdateCustomThemeUseCase {
	return &UpdateCustomThemeUseCase{
		repo:         repo,
		storage:      storage,
		thumbnailMax: thumbnailMaxWidth,
		logger:       logger,
	}
}

func (uc *UpdateCustomThemeUseCase) Execute(ctx context.Context, cmd UpdateCustomThemeCommand) (*UpdateCustomThemeResult, error) {
	entity, err := uc.repo.GetBySID(ctx, cmd.ThemeSID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("custom theme not found")
	}
	if !entity.IsOwnedBy(cmd.ActorID) && !cmd.IsAdmin {
		return nil, errors.NewForbiddenError("custom theme does not belong to you")
	}

	if cmd.Name != "" {
		if err := entity.Rename(cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.ZipPath != "" {
		if _, err := uc.storage.ReplaceArchive(ctx, entity.ThemePath(), cmd.ZipPath, cmd.ZipName); err != nil {
			uc.logger.Errorw("failed to replace custom theme archive", "theme_id", entity.SID(), "error", err)
			return nil, err
		}
	}

	if cmd.ThumbnailPath != "" {
		previous := ""
		if entity.Thumbnail() != nil {
			previous = entity.Thumbnail().FileName
		}
		thumb, err := uc.storage.SaveThumbnail(entity.ThemePath(), cmd.ThumbnailPath, cmd.ThumbnailName, uc.thumbnailMax, previous)
		if err != nil {
			uc.logger.Warnw("failed to replace custom theme thumbnail", "theme_id", entity.SID(), "error", err)
		} else {
			entity.SetThumbnail(&customtheme.FileMeta{
				FileName:     thumb.FileName,
				OriginalName: thumb.OriginalName,
				Size:         thumb.Size,
				ContentType:  thumb.ContentType,
			})
		}
	}

	if err := uc.repo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update custom theme", "theme_id", entity.SID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("custom theme updated", "theme_id", entity.SID())

	return &UpdateCustomThemeResult{Theme: NewCustomThemeSummary(entity)}, nil
}
