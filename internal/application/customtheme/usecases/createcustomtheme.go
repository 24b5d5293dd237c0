package usecases

import (
	"context"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

type CreateCustomThemeCommand struct {
	Name          string
	CreatorID     uint
	ZipPath       string
	ZipName       string
	ThumbnailPath string
	ThumbnailName string
}

type CreateCustomThemeResult struct {
	Theme CustomThemeSummary
}

type CreateCustomThemeUseCase struct {
	repo         customtheme.Repository
	storage      CustomStorage
	thumbnailMax int
	logger       logger.Interface
}

func NewCreateCustomThemeUseCase(
	repo customtheme.Repository,
	storage CustomStorage,
	thumbnailMaxWidth int,
	logger logger.Interface,
) *CreateCustomThemeUseCase {
	return &CreateCustomThemeUseCase{
		repo:         repo,
		storage:      storage,
		thumbnailMax: thumbnailMaxWidth,
		logger:       logger,
	}
}

func (uc *CreateCustomThemeUseCase) Execute(ctx context.Context, cmd CreateCustomThemeCommand) (*CreateCustomThemeResult, error) {
	uc.logger.Infow("executing create custom theme use case", "name", cmd.Name, "creator_id", cmd.CreatorID)

	if cmd.ZipPath == "" {
		return nil, errors.NewValidationError("theme archive is required")
	}

	dirName := uc.storage.NewDirName(cmd.Name)

	newTheme, err := customtheme.NewCustomTheme(cmd.Name, dirName, cmd.CreatorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.storage.Ingest(ctx, dirName, cmd.ZipPath, cmd.ZipName); err != nil {
		uc.logger.Errorw("failed to ingest custom theme archive", "dir", dirName, "error", err)
		return nil, err
	}

	dirs := uc.storage.Directories(dirName)
	newTheme.SetDirectories(customtheme.Directories{
		Theme:         dirs["theme"],
		Thumbnail:     dirs["thumbnail"],
		UnzippedTheme: dirs["unzippedTheme"],
	})

	if cmd.ThumbnailPath != "" {
		thumb, err := uc.storage.SaveThumbnail(dirName, cmd.ThumbnailPath, cmd.ThumbnailName, uc.thumbnailMax, "")
		if err != nil {
			uc.logger.Warnw("failed to store custom theme thumbnail", "dir", dirName, "error", err)
		} else {
			newTheme.SetThumbnail(&customtheme.FileMeta{
				FileName:     thumb.FileName,
				OriginalName: thumb.OriginalName,
				Size:         thumb.Size,
				ContentType:  thumb.ContentType,
			})
		}
	}

	if err := uc.repo.Save(ctx, newTheme); err != nil {
		uc.logger.Errorw("failed to save custom theme", "theme_id", newTheme.SID(), "error", err)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a custom theme with this path already exists")
		}
		return nil, err
	}

	uc.logger.Infow("custom theme created", "theme_id", newTheme.SID(), "dir", dirName)

	return &CreateCustomThemeResult{Theme: NewCustomThemeSummary(newTheme)}, nil
}
