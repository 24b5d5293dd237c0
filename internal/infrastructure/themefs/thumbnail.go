package themefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ThumbnailMeta describes a stored thumbnail image.
type ThumbnailMeta struct {
	FileName     string `json:"file_name"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type"`
}

// SaveThumbnail decodes the uploaded image at srcPath, shrinks it to at most
// maxWidth pixels wide (aspect preserved, never upscaled), and stores the
// result under destDir with a collision-free name.
func SaveThumbnail(srcPath, originalName, destDir string, maxWidth int) (*ThumbnailMeta, error) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to decode thumbnail image: %w", err)
	}

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff":
	default:
		ext = ".png"
	}

	fileName := uuid.New().String() + ext
	destPath := filepath.Join(destDir, fileName)
	if err := imaging.Save(img, destPath); err != nil {
		return nil, fmt.Errorf("failed to save thumbnail: %w", err)
	}

	info, err := os.Stat(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat saved thumbnail: %w", err)
	}

	return &ThumbnailMeta{
		FileName:     fileName,
		OriginalName: originalName,
		Size:         info.Size(),
		ContentType:  contentTypeForExt(ext),
	}, nil
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	default:
		return "image/png"
	}
}
