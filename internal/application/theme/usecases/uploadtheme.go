package usecases

import (
	"context"

	"vitrine/internal/domain/theme"
	vo "vitrine/internal/domain/theme/value_objects"
	"vitrine/internal/infrastructure/themefs"
	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

// CatalogStorage is the slice of themefs.CatalogStore the catalog use cases
// need.
type CatalogStorage interface {
	IngestUpload(ctx context.Context, themeSID, zipSrcPath, originalName string) (*themefs.ArchiveMeta, error)
	SaveThumbnail(themeSID, srcPath, originalName string, maxWidth int) (*themefs.ThumbnailMeta, error)
	Directories(themeSID string) map[string]string
}

type UploadThemeCommand struct {
	Name          string
	Description   string
	Category      string
	PlanTier      string
	Price         float64
	Tags          []string
	UploaderID    uint
	ZipPath       string
	ZipName       string
	ThumbnailPath string
	ThumbnailName string
}

type UploadThemeResult struct {
	Theme ThemeDetail
}

type UploadThemeUseCase struct {
	themeRepo    theme.Repository
	storage      CatalogStorage
	thumbnailMax int
	logger       logger.Interface
}

func NewUploadThemeUseCase(
	themeRepo theme.Repository,
	storage CatalogStorage,
	thumbnailMaxWidth int,
	logger logger.Interface,
) *UploadThemeUseCase {
	return &UploadThemeUseCase{
		themeRepo:    themeRepo,
		storage:      storage,
		thumbnailMax: thumbnailMaxWidth,
		logger:       logger,
	}
}

func (uc *UploadThemeUseCase) Execute(ctx context.Context, cmd UploadThemeCommand) (*UploadThemeResult, error) {
	uc.logger.Infow("executing upload theme use case", "name", cmd.Name, "uploader_id", cmd.UploaderID)

	if cmd.ZipPath == "" {
		return nil, errors.NewValidationError("theme archive is required")
	}

	category, err := vo.ParseCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	planTier, err := vo.ParsePlanTier(cmd.PlanTier)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The SID doubles as the catalog directory name.
	newTheme, err := theme.NewTheme(cmd.Name, cmd.Description, category, planTier, cmd.Price, "", cmd.UploaderID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	archive, err := uc.storage.IngestUpload(ctx, newTheme.SID(), cmd.ZipPath, cmd.ZipName)
	if err != nil {
		uc.logger.Errorw("failed to ingest theme archive", "theme_id", newTheme.SID(), "error", err)
		return nil, err
	}

	dirs := uc.storage.Directories(newTheme.SID())
	newTheme.SetDirectories(theme.Directories{
		Theme:     dirs["theme"],
		Code:      dirs["code"],
		Zipped:    dirs["zipped"],
		Thumbnail: dirs["thumbnail"],
	})
	newTheme.SetZipFile(&theme.FileMeta{
		FileName:     archive.FileName,
		OriginalName: archive.OriginalName,
		Size:         archive.Size,
		ContentType:  archive.ContentType,
	})
	newTheme.SetTags(cmd.Tags)

	if cmd.ThumbnailPath != "" {
		thumb, err := uc.storage.SaveThumbnail(newTheme.SID(), cmd.ThumbnailPath, cmd.ThumbnailName, uc.thumbnailMax)
		if err != nil {
			uc.logger.Warnw("failed to store theme thumbnail", "theme_id", newTheme.SID(), "error", err)
		} else {
			newTheme.SetThumbnail(&theme.FileMeta{
				FileName:     thumb.FileName,
				OriginalName: thumb.OriginalName,
				Size:         thumb.Size,
				ContentType:  thumb.ContentType,
			})
		}
	}

	if err := uc.themeRepo.Save(ctx, newTheme); err != nil {
		uc.logger.Errorw("failed to save theme", "theme_id", newTheme.SID(), "error", err)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a theme with this path already exists")
		}
		return nil, err
	}

	uc.logger.Infow("theme uploaded", "theme_id", newTheme.SID(), "name", newTheme.Name())

	return &UploadThemeResult{
		Theme: ThemeDetail{
			ThemeSummary: NewThemeSummary(newTheme),
			Description:  newTheme.Description(),
			IsActive:     newTheme.IsActive(),
		},
	}, nil
}
