package themefs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

// ArchiveMeta describes a stored theme archive.
type ArchiveMeta struct {
	FileName     string
	OriginalName string
	Size         int64
	ContentType  string
}

// CatalogStore manages the on-disk tree of one catalog theme:
// themes/{sid}/{theme,code,zipped,thumbnail}.
type CatalogStore struct {
	layout *Layout
	logger logger.Interface
}

func NewCatalogStore(layout *Layout, logger logger.Interface) *CatalogStore {
	return &CatalogStore{layout: layout, logger: logger}
}

// IngestUpload builds the catalog tree for a new theme from an uploaded ZIP:
// the archive is kept under zipped/ and its contents extracted into theme/,
// with single-root archives promoted one level. Any failure removes the whole
// new tree before returning.
func (s *CatalogStore) IngestUpload(ctx context.Context, themeSID, zipSrcPath, originalName string) (*ArchiveMeta, error) {
	root := s.layout.CatalogThemeRoot(themeSID)

	for _, sub := range []string{ThemeFilesDir, CodeDir, ZippedDir, ThumbnailDir} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			return nil, errors.NewInternalError("failed to create theme directory", err.Error())
		}
	}

	meta, err := s.ingest(ctx, root, zipSrcPath, originalName)
	if err != nil {
		if rmErr := os.RemoveAll(root); rmErr != nil {
			s.logger.Errorw("failed to clean up theme tree after ingest failure",
				"theme_id", themeSID, "error", rmErr)
		}
		return nil, err
	}

	s.logger.Infow("ingested catalog theme archive",
		"theme_id", themeSID,
		"original_name", originalName,
		"size", meta.Size)
	return meta, nil
}

func (s *CatalogStore) ingest(ctx context.Context, root, zipSrcPath, originalName string) (*ArchiveMeta, error) {
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

	filesDir := filepath.Join(root, ThemeFilesDir)
	if err := ExtractZip(ctx, s.layout, zipDest, filesDir); err != nil {
		return nil, err
	}
	if err := PromoteSingleRoot(filesDir); err != nil {
		return nil, err
	}

	return &ArchiveMeta{
		FileName:     storedName,
		OriginalName: originalName,
		Size:         info.Size(),
		ContentType:  "application/zip",
	}, nil
}

// SaveThumbnail stores a bounded preview image under thumbnail/.
func (s *CatalogStore) SaveThumbnail(themeSID, srcPath, originalName string, maxWidth int) (*ThumbnailMeta, error) {
	destDir := filepath.Join(s.layout.CatalogThemeRoot(themeSID), ThumbnailDir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, errors.NewInternalError("failed to create thumbnail directory", err.Error())
	}
	return SaveThumbnail(srcPath, originalName, destDir, maxWidth)
}

// Directories reports the root-relative sub-directory paths of one catalog
// theme, as persisted on the theme record.
func (s *CatalogStore) Directories(themeSID string) map[string]string {
	root := s.layout.Rel(s.layout.CatalogThemeRoot(themeSID))
	return map[string]string{
		"theme":     root + "/" + ThemeFilesDir,
		"code":      root + "/" + CodeDir,
		"zipped":    root + "/" + ZippedDir,
		"thumbnail": root + "/" + ThumbnailDir,
	}
}

// ZipPath resolves a stored archive name back to its absolute path.
func (s *CatalogStore) ZipPath(themeSID, storedName string) string {
	return filepath.Join(s.layout.CatalogThemeRoot(themeSID), ZippedDir, storedName)
}

// ThumbnailPath resolves a stored thumbnail name back to its absolute path.
func (s *CatalogStore) ThumbnailPath(themeSID, storedName string) string {
	return filepath.Join(s.layout.CatalogThemeRoot(themeSID), ThumbnailDir, storedName)
}

func copyRegularFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
