package models

import "gorm.io/datatypes"

type InstallationModel struct {
	ID       uint   `gorm:"primaryKey"`
	SID      string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	StoreSID string `gorm:"column:store_sid;size:32;not null;index:idx_store_theme,unique,priority:1"`
	ThemeRef string `gorm:"size:64;not null;index:idx_store_theme,unique,priority:2"`
	// ActiveStoreSID mirrors StoreSID while the installation is active and is
	// NULL otherwise. The unique index rides on NULL-exempt unique semantics,
	// so at most one installation per store can hold the active flag.
	ActiveStoreSID *string `gorm:"column:active_store_sid;uniqueIndex;size:32"`
	InstallPath    string  `gorm:"size:512;not null"`
	Status         string  `gorm:"size:20;not null;index"`
	IsActive       bool    `gorm:"not null;default:false"`
	InstalledAt    int64   `gorm:"not null"`
	UninstalledAt  *int64
	Customizations datatypes.JSON
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (InstallationModel) TableName() string {
	return "theme_installations"
}

type RecentInstallationModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	ThemeSID    string `gorm:"column:theme_sid;size:32;not null"`
	StoreSID    string `gorm:"column:store_sid;size:32;not null"`
	InstalledAt int64  `gorm:"not null;index"`
}

func (RecentInstallationModel) TableName() string {
	return "recent_installations"
}
