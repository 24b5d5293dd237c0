package models

import "gorm.io/datatypes"

type ThemeModel struct {
	ID            uint    `gorm:"primaryKey"`
	SID           string  `gorm:"column:sid;uniqueIndex;size:32;not null"`
	Name          string  `gorm:"size:200;not null"`
	Description   string  `gorm:"type:text"`
	Category      string  `gorm:"size:50;not null;index"`
	PlanTier      string  `gorm:"size:20;not null;index"`
	Price         float64 `gorm:"not null;default:0"`
	ThemePath     string  `gorm:"uniqueIndex;size:255;not null"`
	Directories   datatypes.JSON
	ZipFile       datatypes.JSON
	Thumbnail     datatypes.JSON
	Version       string `gorm:"size:20;not null;default:'1.0.0'"`
	Tags          datatypes.JSON
	IsActive      bool  `gorm:"not null;default:true;index"`
	InstallCount  int64 `gorm:"not null;default:0"`
	DownloadCount int64 `gorm:"not null;default:0"`
	RatingSum     int64 `gorm:"not null;default:0"`
	RatingCount   int64 `gorm:"not null;default:0"`
	UploaderID    uint  `gorm:"not null;index"`
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ThemeModel) TableName() string {
	return "themes"
}
