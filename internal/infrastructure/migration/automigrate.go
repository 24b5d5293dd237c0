package migration

import (
	"vitrine/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ThemeModel{},
		&models.CustomThemeModel{},
		&models.InstallationModel{},
		&models.RecentInstallationModel{},
		&models.StoreModel{},
	}
}
