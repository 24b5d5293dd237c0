package usecases

import (
	"time"

	"vitrine/internal/domain/customtheme"
	"vitrine/internal/domain/installation"
)

// CustomThemeSummary is the list shape: metadata only, no page bodies.
type CustomThemeSummary struct {
	SID          string    `json:"id"`
	Name         string    `json:"name"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CustomThemeDetail adds the page bodies, read from disk at request time.
type CustomThemeDetail struct {
	CustomThemeSummary
	HTML string `json:"html"`
	CSS  string `json:"css"`
}

func NewCustomThemeSummary(t *customtheme.CustomTheme) CustomThemeSummary {
	return CustomThemeSummary{
		SID:          t.SID(),
		Name:         t.Name(),
		ThumbnailURL: ThumbnailURL(t),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

// ThumbnailURL derives the public thumbnail location, or "" when no
// thumbnail was uploaded.
func ThumbnailURL(t *customtheme.CustomTheme) string {
	if t.Thumbnail() == nil {
		return ""
	}
	return "/custom-theme/" + t.SID() + "/thumbnail"
}

type RecentInstallationView struct {
	ThemeSID    string    `json:"theme_id"`
	ThemeName   string    `json:"theme_name,omitempty"`
	StoreSID    string    `json:"store_id"`
	InstalledAt time.Time `json:"installed_at"`
}

func NewRecentInstallationView(entry *installation.RecentInstallation, themeName string) RecentInstallationView {
	return RecentInstallationView{
		ThemeSID:    entry.ThemeSID,
		ThemeName:   themeName,
		StoreSID:    entry.StoreSID,
		InstalledAt: entry.InstalledAt,
	}
}
