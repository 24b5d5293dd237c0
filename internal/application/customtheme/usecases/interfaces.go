package usecases

import (
	"context"

	"vitrine/internal/infrastructure/themefs"
)

// CustomStorage is the slice of themefs.CustomStore the custom theme use
// cases need.
type CustomStorage interface {
	NewDirName(displayName string) string
	Ingest(ctx context.Context, dirName, zipSrcPath, originalName string) (*themefs.ArchiveMeta, error)
	ReplaceArchive(ctx context.Context, dirName, zipSrcPath, originalName string) (*themefs.ArchiveMeta, error)
	SaveThumbnail(dirName, srcPath, originalName string, maxWidth int, previous string) (*themefs.ThumbnailMeta, error)
	ReadPage(dirName string) (html, css []byte, err error)
	Directories(dirName string) map[string]string
	InstallToStore(ctx context.Context, dirName, storeSID, installDirName string) (string, error)
	Remove(dirName string) error
}

// ManifestSyncer rebuilds the derived on-disk manifest for an installation.
type ManifestSyncer interface {
	SyncManifest(installPath string, m *themefs.Manifest) error
}

// Transactor runs a function inside a database transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateCustomThemeExecutor interface {
	Execute(ctx context.Context, cmd CreateCustomThemeCommand) (*CreateCustomThemeResult, error)
}

type GetCustomThemeExecutor interface {
	Execute(ctx context.Context, query GetCustomThemeQuery) (*GetCustomThemeResult, error)
}

type ListCustomThemesExecutor interface {
	Execute(ctx context.Context, query ListCustomThemesQuery) (*ListCustomThemesResult, error)
}

type UpdateCustomThemeExecutor interface {
	Execute(ctx context.Context, cmd UpdateCustomThemeCommand) (*UpdateCustomThemeResult, error)
}

type DeleteCustomThemeExecutor interface {
	Execute(ctx context.Context, cmd DeleteCustomThemeCommand) error
}

type InstallCustomThemeExecutor interface {
	Execute(ctx context.Context, cmd InstallCustomThemeCommand) (*InstallCustomThemeResult, error)
}

type UninstallCustomThemeExecutor interface {
	Execute(ctx context.Context, cmd UninstallCustomThemeCommand) error
}

type ListRecentInstallationsExecutor interface {
	Execute(ctx context.Context, query ListRecentInstallationsQuery) (*ListRecentInstallationsResult, error)
}
