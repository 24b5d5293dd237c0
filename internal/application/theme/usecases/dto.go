package usecases

import (
	"time"

	"vitrine/internal/domain/theme"
)

// ThemeSummary is the public catalog view of a theme. Internal fields
// (archive metadata, disk paths, directory maps) never leave the service;
// the thumbnail is exposed as a URL instead.
type ThemeSummary struct {
	SID           string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	PlanTier      string    `json:"plan_tier"`
	Price         float64   `json:"price"`
	Version       string    `json:"version"`
	Tags          []string  `json:"tags"`
	InstallCount  int64     `json:"install_count"`
	DownloadCount int64     `json:"download_count"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int64     `json:"rating_count"`
	ThumbnailURL  string    `json:"thumbnail_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ThemeDetail extends the summary with the rendered description.
type ThemeDetail struct {
	ThemeSummary
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html"`
	IsActive        bool   `json:"is_active"`
}

func NewThemeSummary(t *theme.Theme) ThemeSummary {
	return ThemeSummary{
		SID:           t.SID(),
		Name:          t.Name(),
		Category:      t.Category().String(),
		PlanTier:      t.PlanTier().String(),
		Price:         t.Price(),
		Version:       t.Version(),
		Tags:          t.Tags(),
		InstallCount:  t.InstallCount(),
		DownloadCount: t.DownloadCount(),
		AverageRating: t.AverageRating(),
		RatingCount:   t.RatingCount(),
		ThumbnailURL:  ThumbnailURL(t),
		CreatedAt:     t.CreatedAt(),
	}
}

// ThumbnailURL derives the public thumbnail location for a theme, or ""
// when no thumbnail was uploaded.
func ThumbnailURL(t *theme.Theme) string {
	if t.Thumbnail() == nil {
		return ""
	}
	return "/client-theme/themes/" + t.SID() + "/thumbnail"
}
