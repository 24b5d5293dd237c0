package themefs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

const (
	// PageFileName and StylesheetFileName are the files a custom theme is
	// read and previewed from.
	PageFileName       = "index.html"
	StylesheetFileName = "style.css"
)

// CustomStore manages the on-disk tree of one custom theme:
// custom-themes/{dir}/{zipped,unzippedTheme,thumbnail}.
type CustomStore struct {
	layout *Layout
	logger logger.Interface
}

func NewCustomStore(layout *Layout, logger logger.Interface) *CustomStore {
	return &CustomStore{layout: layout, logger: logger}
}

// NewDirName derives a filesystem directory name from a display name,
// avoiding collisions with existing custom theme directories.
func (s *CustomStore) NewDirName(displayName string) string {
	return UniqueDirName(s.layout.CustomRootDir(), SanitizeDirName(displayName))
}

// Ingest builds the tree for a new custom theme from an uploaded ZIP. Any
// failure removes the whole new tree before returning.
func (s *CustomStore) Ingest(ctx context.Context, dirName, zipSrcPath, originalName string) (*ArchiveMeta, error) {
	root := s.layout.CustomThemeRoot(dirName)

	for _, sub := range []string{ZippedDir, UnzippedThemeDir, ThumbnailDir} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			return nil, errors.NewInternalError("failed to create custom theme directory", err.Error())
		}
	}

	meta, err := s.extractArchive(ctx, root, zipSrcPath, originalName)
	if err != nil {
		if rmErr := os.RemoveAll(root); rmErr != nil {
			s.logger.Errorw("failed to clean up custom theme tree after ingest failure",
				"dir", dirName, "error", rmErr)
		}
		return nil, err
	}

	s.logger.Infow("ingested custom theme archive",
		"dir", dirName,
		"original_name", originalName,
		"size", meta.Size)
	return meta, nil
}

// ReplaceArchive swaps the theme's content for a new ZIP: the previous
// archive and extracted tree are wiped, then the new archive goes through the
// same extraction and normalization. The tree itself survives a failure so
// the theme row never points at nothing.
func (s *CustomStore) ReplaceArchive(ctx context.Context, dirName, zipSrcPath, originalName string) (*ArchiveMeta, error) {
	root := s.layout.CustomThemeRoot(dirName)
	if _, err := os.Stat(root); err != nil {
		return nil, errors.NewNotFoundError("custom theme files not found", dirName)
	}

	for _, sub := range []string{ZippedDir, UnzippedThemeDir} {
		dir := filepath.Join(root, sub)
		if err := os.RemoveAll(dir); err != nil {
			return nil, errors.NewInternalError("failed to clear previous theme content", err.Error())
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.NewInternalError("failed to recreate theme directory", err.Error())
		}
	}

	return s.extractArchive(ctx, root, zipSrcPath, originalName)
}

func (s *CustomStore) extractArchive(ctx context.Context, root, zipSrcPath, originalName string) (*ArchiveMeta, error) {
	if !IsZipFile(originalName) {
		return nil, errors.NewValidationError("theme archive must be a ZIP file")
	}

	storedName := uuid.NewString() + ".zip"
	zipDest := filepath.Join(root, ZippedDir, storedName)
	if err := copyRegularFile(zipSrcPath, zipDest); err != nil {
		return nil, errors.NewInternalError("failed to store theme archive", err.Error())
	}

	info, err := os.Stat(zipDest)
	if err != nil {
		return nil, errors.NewInternalError("failed to stat stored archive", err.Error())
	}

	unzipDir := filepath.Join(root, UnzippedThemeDir)
	if err := ExtractZip(ctx, s.layout, zipDest, unzipDir); err != nil {
		return nil, err
	}
	if err := PromoteSingleRoot(unzipDir); err != nil {
		return nil, err
	}

	return &ArchiveMeta{
		FileName:     storedName,
		OriginalName: originalName,
		Size:         info.Size(),
		ContentType:  "application/zip",
	}, nil
}

// SaveThumbnail stores a bounded preview image, removing the previous one
// first when given.
func (s *CustomStore) SaveThumbnail(dirName, srcPath, originalName string, maxWidth int, previous string) (*ThumbnailMeta, error) {
	destDir := filepath.Join(s.layout.CustomThemeRoot(dirName), ThumbnailDir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, errors.NewInternalError("failed to create thumbnail directory", err.Error())
	}

	if previous != "" {
		if err := os.Remove(filepath.Join(destDir, previous)); err != nil && !os.IsNotExist(err) {
			s.logger.Warnw("failed to remove previous thumbnail", "dir", dirName, "file", previous, "error", err)
		}
	}

	return SaveThumbnail(srcPath, originalName, destDir, maxWidth)
}

// ReadPage returns the theme's HTML and CSS bodies from disk. A missing file
// yields a nil slice, not an error; the caller decides the fallback.
func (s *CustomStore) ReadPage(dirName string) (html, css []byte, err error) {
	filesDir := s.layout.CustomThemeFiles(dirName)

	html, err = os.ReadFile(filepath.Join(filesDir, PageFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, nil, errors.NewInternalError("failed to read theme page", err.Error())
		}
		html = nil
	}

	css, err = os.ReadFile(filepath.Join(filesDir, StylesheetFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, nil, errors.NewInternalError("failed to read theme stylesheet", err.Error())
		}
		css = nil
	}

	return html, css, nil
}

// HasStylesheet reports whether style.css exists in the extracted tree.
func (s *CustomStore) HasStylesheet(dirName string) bool {
	_, err := os.Stat(filepath.Join(s.layout.CustomThemeFiles(dirName), StylesheetFileName))
	return err == nil
}

// ResolveFile resolves a preview file path inside the extracted tree with
// the containment check applied.
func (s *CustomStore) ResolveFile(dirName, rel string) (string, error) {
	return s.layout.SecureJoin(s.layout.CustomThemeFiles(dirName), rel)
}

// ThumbnailPath resolves a stored thumbnail name back to its absolute path.
func (s *CustomStore) ThumbnailPath(dirName, storedName string) string {
	return filepath.Join(s.layout.CustomThemeRoot(dirName), ThumbnailDir, storedName)
}

// Remove deletes the whole custom theme tree.
func (s *CustomStore) Remove(dirName string) error {
	if err := os.RemoveAll(s.layout.CustomThemeRoot(dirName)); err != nil {
		return errors.NewInternalError("failed to remove custom theme files", err.Error())
	}
	return nil
}

// Directories reports the root-relative sub-directory paths of one custom
// theme, as persisted on the theme record.
func (s *CustomStore) Directories(dirName string) map[string]string {
	root := s.layout.Rel(s.layout.CustomThemeRoot(dirName))
	return map[string]string{
		"theme":         root,
		"thumbnail":     root + "/" + ThumbnailDir,
		"unzippedTheme": root + "/" + UnzippedThemeDir,
	}
}

// InstallToStore copies the extracted tree into the store's installation
// directory. The copy only happens when the target is empty, which preserves
// in-place edits across re-installs. Every sibling custom theme directory
// under the store is deleted afterwards: a store runs at most one custom
// theme at a time. Returns the root-relative installation directory.
func (s *CustomStore) InstallToStore(ctx context.Context, dirName, storeSID, installDirName string) (string, error) {
	src := s.layout.CustomThemeFiles(dirName)
	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		return "", errors.NewNotFoundError("custom theme files not found", dirName)
	}

	dest := s.layout.StoreThemeDir(storeSID, installDirName)
	target := filepath.Join(dest, UnzippedThemeDir)

	empty, err := isMissingOrEmpty(target)
	if err != nil {
		return "", errors.NewInternalError("failed to inspect installation directory", err.Error())
	}
	if empty {
		if err := CopyTree(ctx, src, target); err != nil {
			return "", errors.NewInternalError("failed to copy custom theme files", err.Error())
		}
	}

	if err := s.removeSiblingCustomInstalls(storeSID, installDirName); err != nil {
		return "", err
	}

	s.logger.Infow("installed custom theme to store",
		"dir", dirName,
		"store_id", storeSID,
		"install_dir", installDirName,
		"copied", empty)

	return s.layout.Rel(dest), nil
}

func (s *CustomStore) removeSiblingCustomInstalls(storeSID, keep string) error {
	parent := s.layout.StoreThemesRoot(storeSID)
	entries, err := os.ReadDir(parent)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.NewInternalError("failed to read store themes directory", err.Error())
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == keep || !strings.HasPrefix(name, CustomInstallPrefix) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(parent, name)); err != nil {
			return errors.NewInternalError("failed to remove previous custom theme installation", err.Error())
		}
	}
	return nil
}

func isMissingOrEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return len(entries) == 0, nil
}
