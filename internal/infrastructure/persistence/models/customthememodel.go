package models

import "gorm.io/datatypes"

type CustomThemeModel struct {
	ID          uint   `gorm:"primaryKey"`
	SID         string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	Name        string `gorm:"size:200;not null"`
	ThemePath   string `gorm:"uniqueIndex;size:255;not null"`
	Directories datatypes.JSON
	Thumbnail   datatypes.JSON
	CreatorID   uint  `gorm:"not null;index"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (CustomThemeModel) TableName() string {
	return "custom_themes"
}
