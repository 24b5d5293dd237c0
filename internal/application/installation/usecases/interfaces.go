package usecases

import (
	"context"

	"vitrine/internal/infrastructure/themefs"
)

type InstallThemeExecutor interface {
	Execute(ctx context.Context, cmd InstallThemeCommand) (*InstallThemeResult, error)
}

type UninstallThemeExecutor interface {
	Execute(ctx context.Context, cmd UninstallThemeCommand) error
}

type CustomizeThemeExecutor interface {
	Execute(ctx context.Context, cmd CustomizeThemeCommand) (*CustomizeThemeResult, error)
}

type ListInstallationsExecutor interface {
	Execute(ctx context.Context, query ListInstallationsQuery) (*ListInstallationsResult, error)
}

// Transactor runs a function inside one database transaction. Satisfied by
// db.TransactionManager.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ThemeCloner is the slice of themefs.Cloner the install flow needs.
type ThemeCloner interface {
	CloneToStore(ctx context.Context, themeSID, clientID, storeSID, version string) (string, error)
}

// InstallStorage is the slice of themefs.FileStore the installation flows
// need: manifest rebuilds and hard-uninstall cleanup.
type InstallStorage interface {
	InstallDirExists(installPath string) bool
	RemoveInstallDir(installPath string) error
	SyncManifest(installPath string, m *themefs.Manifest) error
}
