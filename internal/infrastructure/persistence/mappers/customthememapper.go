package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/infrastructure/persistence/models"
)

// CustomThemeMapper handles the conversion between CustomTheme domain entities and persistence models.
type CustomThemeMapper interface {
	ToModel(c *customtheme.CustomTheme) *models.CustomThemeModel
	ToDomain(model *models.CustomThemeModel) (*customtheme.CustomTheme, error)
}

type CustomThemeMapperImpl struct{}

func NewCustomThemeMapper() CustomThemeMapper {
	return &CustomThemeMapperImpl{}
}

func (m *CustomThemeMapperImpl) ToModel(c *customtheme.CustomTheme) *models.CustomThemeModel {
	model := &models.CustomThemeModel{
		ID:        c.ID(),
		SID:       c.SID(),
		Name:      c.Name(),
		ThemePath: c.ThemePath(),
		CreatorID: c.CreatorID(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}

	dirsJSON, _ := json.Marshal(c.Directories())
	model.Directories = dirsJSON

	if c.Thumbnail() != nil {
		thumbJSON, _ := json.Marshal(c.Thumbnail())
		model.Thumbnail = thumbJSON
	}

	return model
}

func (m *CustomThemeMapperImpl) ToDomain(model *models.CustomThemeModel) (*customtheme.CustomTheme, error) {
	var dirs customtheme.Directories
	if len(model.Directories) > 0 {
		if err := json.Unmarshal(model.Directories, &dirs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal directories: %w", err)
		}
	}

	var thumbnail *customtheme.FileMeta
	if len(model.Thumbnail) > 0 {
		thumbnail = &customtheme.FileMeta{}
		if err := json.Unmarshal(model.Thumbnail, thumbnail); err != nil {
			return nil, fmt.Errorf("failed to unmarshal thumbnail metadata: %w", err)
		}
	}

	return customtheme.ReconstructCustomTheme(
		model.ID,
		model.SID,
		model.Name,
		model.ThemePath,
		dirs,
		thumbnail,
		model.CreatorID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
