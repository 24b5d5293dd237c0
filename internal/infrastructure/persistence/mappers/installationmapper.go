package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"vitrine/internal/domain/installation"
	vo "vitrine/internal/domain/installation/value_objects"
	"vitrine/internal/infrastructure/persistence/models"
)

// InstallationMapper handles the conversion between Installation domain entities and persistence models.
type InstallationMapper interface {
	ToModel(i *installation.Installation) *models.InstallationModel
	ToDomain(model *models.InstallationModel) (*installation.Installation, error)
	RecentToModel(r *installation.RecentInstallation) *models.RecentInstallationModel
	RecentToDomain(model *models.RecentInstallationModel) *installation.RecentInstallation
}

type InstallationMapperImpl struct{}

func NewInstallationMapper() InstallationMapper {
	return &InstallationMapperImpl{}
}

func (m *InstallationMapperImpl) ToModel(i *installation.Installation) *models.InstallationModel {
	model := &models.InstallationModel{
		ID:          i.ID(),
		SID:         i.SID(),
		StoreSID:    i.StoreSID(),
		ThemeRef:    i.ThemeRef().String(),
		InstallPath: i.InstallPath(),
		Status:      i.Status().String(),
		IsActive:    i.IsActive(),
		InstalledAt: i.InstalledAt().UnixMilli(),
		CreatedAt:   i.CreatedAt().UnixMilli(),
		UpdatedAt:   i.UpdatedAt().UnixMilli(),
	}

	if i.IsActive() {
		storeSID := i.StoreSID()
		model.ActiveStoreSID = &storeSID
	}

	if i.UninstalledAt() != nil {
		ts := i.UninstalledAt().UnixMilli()
		model.UninstalledAt = &ts
	}

	customizationsJSON, _ := json.Marshal(i.Customizations())
	model.Customizations = customizationsJSON

	return model
}

func (m *InstallationMapperImpl) ToDomain(model *models.InstallationModel) (*installation.Installation, error) {
	themeRef, err := vo.ParseThemeRef(model.ThemeRef)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme ref: %w", err)
	}
	status, err := vo.ParseStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse status: %w", err)
	}

	var uninstalledAt *time.Time
	if model.UninstalledAt != nil {
		ts := time.UnixMilli(*model.UninstalledAt)
		uninstalledAt = &ts
	}

	var customizations []installation.Customization
	if len(model.Customizations) > 0 {
		if err := json.Unmarshal(model.Customizations, &customizations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal customizations: %w", err)
		}
	}

	return installation.ReconstructInstallation(
		model.ID,
		model.SID,
		model.StoreSID,
		themeRef,
		model.InstallPath,
		status,
		model.IsActive,
		time.UnixMilli(model.InstalledAt),
		uninstalledAt,
		customizations,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *InstallationMapperImpl) RecentToModel(r *installation.RecentInstallation) *models.RecentInstallationModel {
	return &models.RecentInstallationModel{
		ID:          r.ID,
		UserID:      r.UserID,
		ThemeSID:    r.ThemeSID,
		StoreSID:    r.StoreSID,
		InstalledAt: r.InstalledAt.UnixMilli(),
	}
}

func (m *InstallationMapperImpl) RecentToDomain(model *models.RecentInstallationModel) *installation.RecentInstallation {
	return &installation.RecentInstallation{
		ID:          model.ID,
		UserID:      model.UserID,
		ThemeSID:    model.ThemeSID,
		StoreSID:    model.StoreSID,
		InstalledAt: time.UnixMilli(model.InstalledAt),
	}
}
