package themefs

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractZip extracts the archive at zipPath into destDir. Entry names are
// containment-checked against destDir before anything is written, which
// covers both "../" entries and absolute entry names (zip-slip). The context
// is consulted between entries.
func ExtractZip(ctx context.Context, layout *Layout, zipPath, destDir string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer reader.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create extraction directory: %w", err)
	}

	for _, entry := range reader.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		target, err := layout.SecureJoin(destDir, entry.Name)
		if err != nil {
			return fmt.Errorf("archive entry %q escapes extraction directory", entry.Name)
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory for entry %q: %w", entry.Name, err)
			}
			continue
		}

		if err := extractEntry(entry, target); err != nil {
			return fmt.Errorf("failed to extract entry %q: %w", entry.Name, err)
		}
	}

	return nil
}

func extractEntry(entry *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	in, err := entry.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// PromoteSingleRoot flattens the common "everything inside one wrapper
// folder" archive layout: when dir contains exactly one entry and it is a
// directory, that directory's contents are moved up one level and the wrapper
// is removed. Afterwards index.html / style.css are expected directly under
// dir.
func PromoteSingleRoot(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read extraction directory: %w", err)
	}

	if len(entries) != 1 || !entries[0].IsDir() {
		return nil
	}

	wrapper := filepath.Join(dir, entries[0].Name())

	// Move the wrapper aside first so a child sharing the wrapper's name
	// cannot collide during promotion.
	staging := wrapper + ".promote"
	if err := os.Rename(wrapper, staging); err != nil {
		return fmt.Errorf("failed to stage wrapper directory: %w", err)
	}

	children, err := os.ReadDir(staging)
	if err != nil {
		return fmt.Errorf("failed to read wrapper directory: %w", err)
	}

	for _, child := range children {
		from := filepath.Join(staging, child.Name())
		to := filepath.Join(dir, child.Name())
		if err := os.Rename(from, to); err != nil {
			return fmt.Errorf("failed to promote %q: %w", child.Name(), err)
		}
	}

	if err := os.Remove(staging); err != nil {
		return fmt.Errorf("failed to remove wrapper directory: %w", err)
	}

	return nil
}

// IsZipFile reports whether name carries a .zip extension.
func IsZipFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".zip")
}
