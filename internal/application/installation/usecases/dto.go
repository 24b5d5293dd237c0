package usecases

import (
	"strconv"
	"time"

	"vitrine/internal/domain/installation"
	"vitrine/internal/domain/theme"
	themeusecases "vitrine/internal/application/theme/usecases"
	"vitrine/internal/infrastructure/themefs"
)

// InstallationView is the API shape of one installation. Theme metadata is
// the public summary; internal paths stay internal.
type InstallationView struct {
	SID            string     `json:"id"`
	StoreSID       string     `json:"store_id"`
	ThemeRef       string     `json:"theme_ref"`
	Status         string     `json:"status"`
	IsActive       bool       `json:"is_active"`
	InstalledAt    time.Time  `json:"installed_at"`
	UninstalledAt  *time.Time `json:"uninstalled_at,omitempty"`
	Customizations int        `json:"customization_count"`

	Theme *themeusecases.ThemeSummary `json:"theme,omitempty"`
}

func NewInstallationView(inst *installation.Installation, t *theme.Theme) InstallationView {
	view := InstallationView{
		SID:            inst.SID(),
		StoreSID:       inst.StoreSID(),
		ThemeRef:       inst.ThemeRef().String(),
		Status:         inst.Status().String(),
		IsActive:       inst.IsActive(),
		InstalledAt:    inst.InstalledAt(),
		UninstalledAt:  inst.UninstalledAt(),
		Customizations: len(inst.Customizations()),
	}
	if t != nil {
		summary := themeusecases.NewThemeSummary(t)
		view.Theme = &summary
	}
	return view
}

// buildManifest derives the on-disk manifest from the canonical installation
// row.
func buildManifest(inst *installation.Installation, clientID uint, version string) *themefs.Manifest {
	records := make([]themefs.CustomizationRecord, 0, len(inst.Customizations()))
	for _, c := range inst.Customizations() {
		records = append(records, themefs.CustomizationRecord{
			Payload:   c.Payload,
			AppliedAt: c.AppliedAt,
		})
	}

	dirs := make(map[string]string, len(themefs.ScaffoldDirs))
	for _, name := range themefs.ScaffoldDirs {
		dirs[name] = name
	}

	return &themefs.Manifest{
		ThemeID:        inst.ThemeRef().SID(),
		ClientID:       strconv.FormatUint(uint64(clientID), 10),
		StoreID:        inst.StoreSID(),
		Version:        version,
		Status:         inst.Status().String(),
		InstalledAt:    inst.InstalledAt(),
		IsActive:       inst.IsActive(),
		Customizations: records,
		Directories:    dirs,
	}
}
