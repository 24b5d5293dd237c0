// Package themefs owns the on-disk layout of theme storage: the catalog
// tree, per-merchant custom theme trees, and per-store installation trees.
// Every path handed out by this package is resolved beneath a single
// configured storage root, and every externally supplied sub-path goes
// through a canonicalized containment check before it is touched.
package themefs

import (
	"os"
	"path/filepath"
	"strings"

	"vitrine/internal/shared/errors"
)

const (
	catalogDirName = "themes"
	customDirName  = "custom-themes"
	storesDirName  = "stores"

	// Sub-directories of one catalog theme.
	ThemeFilesDir = "theme"
	CodeDir       = "code"
	ZippedDir     = "zipped"
	ThumbnailDir  = "thumbnail"

	// Sub-directory of a custom theme holding the extracted archive.
	UnzippedThemeDir = "unzippedTheme"

	// ManifestName is the per-installation manifest file.
	ManifestName = "theme-config.json"
	// ReadmeName is the static customization guide written into every
	// installation.
	ReadmeName = "README.md"

	// CustomInstallPrefix namespaces custom theme installation directories so
	// they cannot collide with catalog theme ids under the same store.
	CustomInstallPrefix = "custom-"
)

// ScaffoldDirs are created empty inside every cloned installation.
var ScaffoldDirs = []string{"customizations", "client-code", "assets", "styles", "scripts"}

// ProtectedFiles may never be deleted through the file endpoints.
var ProtectedFiles = map[string]bool{
	ManifestName: true,
	ReadmeName:   true,
}

// Layout resolves every theme path beneath one storage root. The root comes
// from configuration, which is what lets tests point the whole subsystem at a
// temporary directory.
type Layout struct {
	root string
}

func NewLayout(root string) (*Layout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.NewInternalError("failed to resolve storage root", err.Error())
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, errors.NewInternalError("failed to create storage root", err.Error())
	}
	return &Layout{root: abs}, nil
}

func (l *Layout) Root() string {
	return l.root
}

// Rel converts an absolute path under the root into the root-relative form
// stored in database rows. Paths outside the root come back unchanged.
func (l *Layout) Rel(abs string) string {
	rel, err := filepath.Rel(l.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return filepath.ToSlash(rel)
}

// Abs resolves a root-relative path back to an absolute one.
func (l *Layout) Abs(rel string) string {
	return filepath.Join(l.root, filepath.FromSlash(rel))
}

// CatalogThemeRoot is themes/{sid} with the theme/code/zipped/thumbnail
// sub-directories beneath it.
func (l *Layout) CatalogThemeRoot(themeSID string) string {
	return filepath.Join(l.root, catalogDirName, themeSID)
}

func (l *Layout) CatalogThemeFiles(themeSID string) string {
	return filepath.Join(l.CatalogThemeRoot(themeSID), ThemeFilesDir)
}

// CustomThemeRoot is custom-themes/{dir} with zipped/unzippedTheme/thumbnail
// beneath it. dir is the sanitized, collision-avoided directory name.
func (l *Layout) CustomThemeRoot(dir string) string {
	return filepath.Join(l.root, customDirName, dir)
}

func (l *Layout) CustomThemeFiles(dir string) string {
	return filepath.Join(l.CustomThemeRoot(dir), UnzippedThemeDir)
}

func (l *Layout) CustomRootDir() string {
	return filepath.Join(l.root, customDirName)
}

// StoreThemesRoot is stores/{storeSid}/themes, the parent of every
// installation directory for one store.
func (l *Layout) StoreThemesRoot(storeSID string) string {
	return filepath.Join(l.root, storesDirName, storeSID, catalogDirName)
}

// StoreThemeDir is the installation directory for one theme in one store.
// installDir is the theme sid, or "custom-{sid}" for custom themes.
func (l *Layout) StoreThemeDir(storeSID, installDir string) string {
	return filepath.Join(l.StoreThemesRoot(storeSID), installDir)
}

// SecureJoin resolves rel beneath dir and fails with a forbidden error when
// the result would escape it. Traversal segments are rejected before any
// resolution, and the containment check runs on canonicalized paths so
// neither symlinks nor sibling-directory prefix collisions can slip through.
func (l *Layout) SecureJoin(dir, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", errors.NewForbiddenError("path escapes theme directory")
	}

	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.NewForbiddenError("path escapes theme directory")
	}

	dirReal, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", errors.NewNotFoundError("theme directory not found", err.Error())
	}

	candidate := filepath.Join(dirReal, clean)

	// The target itself may not exist yet (writes create it); canonicalize
	// the deepest existing ancestor instead and check that.
	ancestor := candidate
	for {
		if _, err := os.Lstat(ancestor); err == nil {
			break
		}
		parent := filepath.Dir(ancestor)
		if parent == ancestor {
			break
		}
		ancestor = parent
	}

	ancestorReal, err := filepath.EvalSymlinks(ancestor)
	if err != nil {
		return "", errors.NewForbiddenError("path escapes theme directory")
	}

	if !isDescendant(dirReal, ancestorReal) {
		return "", errors.NewForbiddenError("path escapes theme directory")
	}

	return candidate, nil
}

// isDescendant reports whether p equals root or lives beneath it, using a
// path-segment comparison rather than a textual prefix check.
func isDescendant(root, p string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
