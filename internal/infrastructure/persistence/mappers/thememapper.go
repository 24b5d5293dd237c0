package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"vitrine/internal/domain/theme"
	vo "vitrine/internal/domain/theme/value_objects"
	"vitrine/internal/infrastructure/persistence/models"
)

// ThemeMapper handles the conversion between Theme domain entities and persistence models.
type ThemeMapper interface {
	ToModel(t *theme.Theme) *models.ThemeModel
	ToDomain(model *models.ThemeModel) (*theme.Theme, error)
}

type ThemeMapperImpl struct{}

func NewThemeMapper() ThemeMapper {
	return &ThemeMapperImpl{}
}

func (m *ThemeMapperImpl) ToModel(t *theme.Theme) *models.ThemeModel {
	model := &models.ThemeModel{
		ID:            t.ID(),
		SID:           t.SID(),
		Name:          t.Name(),
		Description:   t.Description(),
		Category:      t.Category().String(),
		PlanTier:      t.PlanTier().String(),
		Price:         t.Price(),
		ThemePath:     t.ThemePath(),
		Version:       t.Version(),
		IsActive:      t.IsActive(),
		InstallCount:  t.InstallCount(),
		DownloadCount: t.DownloadCount(),
		RatingSum:     t.RatingSum(),
		RatingCount:   t.RatingCount(),
		UploaderID:    t.UploaderID(),
		CreatedAt:     t.CreatedAt().UnixMilli(),
		UpdatedAt:     t.UpdatedAt().UnixMilli(),
	}

	dirsJSON, _ := json.Marshal(t.Directories())
	model.Directories = dirsJSON

	if t.ZipFile() != nil {
		zipJSON, _ := json.Marshal(t.ZipFile())
		model.ZipFile = zipJSON
	}
	if t.Thumbnail() != nil {
		thumbJSON, _ := json.Marshal(t.Thumbnail())
		model.Thumbnail = thumbJSON
	}
	if len(t.Tags()) > 0 {
		tagsJSON, _ := json.Marshal(t.Tags())
		model.Tags = tagsJSON
	}

	return model
}

func (m *ThemeMapperImpl) ToDomain(model *models.ThemeModel) (*theme.Theme, error) {
	category, err := vo.ParseCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}
	planTier, err := vo.ParsePlanTier(model.PlanTier)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan tier: %w", err)
	}

	var dirs theme.Directories
	if len(model.Directories) > 0 {
		if err := json.Unmarshal(model.Directories, &dirs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal directories: %w", err)
		}
	}

	var zipFile *theme.FileMeta
	if len(model.ZipFile) > 0 {
		zipFile = &theme.FileMeta{}
		if err := json.Unmarshal(model.ZipFile, zipFile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal zip file metadata: %w", err)
		}
	}

	var thumbnail *theme.FileMeta
	if len(model.Thumbnail) > 0 {
		thumbnail = &theme.FileMeta{}
		if err := json.Unmarshal(model.Thumbnail, thumbnail); err != nil {
			return nil, fmt.Errorf("failed to unmarshal thumbnail metadata: %w", err)
		}
	}

	var tags []string
	if len(model.Tags) > 0 {
		if err := json.Unmarshal(model.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}

	return theme.ReconstructTheme(
		model.ID,
		model.SID,
		model.Name,
		model.Description,
		category,
		planTier,
		model.Price,
		model.ThemePath,
		dirs,
		zipFile,
		thumbnail,
		model.Version,
		tags,
		model.IsActive,
		model.InstallCount,
		model.DownloadCount,
		model.RatingSum,
		model.RatingCount,
		model.UploaderID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
