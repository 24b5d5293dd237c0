package themefs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

const installReadme = `# Theme customization

This directory is your store's working copy of the theme.

- Edit files in place through the dashboard theme editor.
- ` + "`client-code/`" + ` holds an untouched copy of the original theme for
  reference and diffing; it is never served.
- ` + "`customizations/`" + `, ` + "`assets/`" + `, ` + "`styles/`" + ` and ` + "`scripts/`" + ` are yours to
  organize additional files in.
- ` + "`theme-config.json`" + ` is maintained by the platform. Do not edit it by
  hand; it is rebuilt from the installation record.
`

// Cloner materializes a catalog theme into a store's installation directory.
type Cloner struct {
	layout *Layout
	logger logger.Interface
}

func NewCloner(layout *Layout, logger logger.Interface) *Cloner {
	return &Cloner{layout: layout, logger: logger}
}

// CloneToStore copies the catalog theme's file tree into
// stores/{storeSID}/themes/{themeSID}/, creates the scaffold directories,
// keeps a pristine reference copy under client-code/, and writes the
// manifest and customization README. Returns the installation directory
// relative to the storage root, which is the form persisted in the
// installation record.
//
// Only the filesystem is touched; persisting the installation record is the
// caller's job.
func (c *Cloner) CloneToStore(ctx context.Context, themeSID, clientID, storeSID, version string) (string, error) {
	src := c.layout.CatalogThemeFiles(themeSID)
	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		return "", errors.NewNotFoundError("theme files not found", themeSID)
	}

	dest := c.layout.StoreThemeDir(storeSID, themeSID)

	if err := CopyTree(ctx, src, dest); err != nil {
		return "", errors.NewInternalError("failed to copy theme files", err.Error())
	}

	dirs := make(map[string]string, len(ScaffoldDirs))
	for _, name := range ScaffoldDirs {
		path := filepath.Join(dest, name)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return "", errors.NewInternalError("failed to create scaffold directory", err.Error())
		}
		dirs[name] = name
	}

	// Pristine reference copy of the original theme.
	if err := CopyTree(ctx, src, filepath.Join(dest, "client-code")); err != nil {
		return "", errors.NewInternalError("failed to copy reference theme files", err.Error())
	}

	manifest := &Manifest{
		ThemeID:        themeSID,
		ClientID:       clientID,
		StoreID:        storeSID,
		Version:        version,
		Status:         "installed",
		InstalledAt:    time.Now().UTC(),
		IsActive:       false,
		Customizations: []CustomizationRecord{},
		Directories:    dirs,
	}
	if err := WriteManifest(dest, manifest); err != nil {
		return "", errors.NewInternalError("failed to write installation manifest", err.Error())
	}

	if err := os.WriteFile(filepath.Join(dest, ReadmeName), []byte(installReadme), 0o644); err != nil {
		return "", errors.NewInternalError("failed to write installation README", err.Error())
	}

	c.logger.Infow("cloned theme to store",
		"theme_id", themeSID,
		"store_id", storeSID,
		"dest", dest)

	return c.layout.Rel(dest), nil
}
