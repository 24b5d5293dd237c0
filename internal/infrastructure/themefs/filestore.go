package themefs

import (
	"os"
	"path/filepath"

	"vitrine/internal/shared/errors"
	"vitrine/internal/shared/logger"
)

// FileStore is the sandboxed file access layer for installation directories.
// Every relative path goes through SecureJoin, so nothing outside the
// installation directory is ever touched.
type FileStore struct {
	layout *Layout
	logger logger.Interface
}

func NewFileStore(layout *Layout, logger logger.Interface) *FileStore {
	return &FileStore{layout: layout, logger: logger}
}

// Tree lists the whole installation directory recursively. installPath is
// root-relative, as stored on the installation record.
func (s *FileStore) Tree(installPath string) ([]*Node, error) {
	dir := s.layout.Abs(installPath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, errors.NewNotFoundError("installation directory not found")
	}

	nodes, err := BuildTree(dir)
	if err != nil {
		return nil, errors.NewInternalError("failed to read installation directory", err.Error())
	}
	return nodes, nil
}

func (s *FileStore) ReadFile(installPath, rel string) ([]byte, error) {
	target, err := s.resolve(installPath, rel)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("file not found", rel)
		}
		return nil, errors.NewInternalError("failed to read file", err.Error())
	}
	return data, nil
}

// WriteFile overwrites the file, creating parent directories as needed.
func (s *FileStore) WriteFile(installPath, rel string, data []byte) error {
	target, err := s.resolve(installPath, rel)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.NewInternalError("failed to create parent directories", err.Error())
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return errors.NewInternalError("failed to write file", err.Error())
	}
	return nil
}

// CreateFile is WriteFile that refuses to overwrite an existing target.
func (s *FileStore) CreateFile(installPath, rel string, data []byte) error {
	target, err := s.resolve(installPath, rel)
	if err != nil {
		return err
	}

	if _, err := os.Stat(target); err == nil {
		return errors.NewConflictError("file already exists", rel)
	} else if !os.IsNotExist(err) {
		return errors.NewInternalError("failed to inspect target", err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.NewInternalError("failed to create parent directories", err.Error())
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return errors.NewInternalError("failed to create file", err.Error())
	}
	return nil
}

// DeleteFile removes one file. The manifest and README are platform-managed
// and may never be deleted through this path.
func (s *FileStore) DeleteFile(installPath, rel string) error {
	if ProtectedFiles[filepath.Base(filepath.Clean(rel))] {
		return errors.NewForbiddenError("this file is managed by the platform and cannot be deleted")
	}

	target, err := s.resolve(installPath, rel)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFoundError("file not found", rel)
		}
		return errors.NewInternalError("failed to delete file", err.Error())
	}
	return nil
}

// InstallDirExists reports whether the installation directory is present on
// disk. Re-installs only re-clone when it is gone.
func (s *FileStore) InstallDirExists(installPath string) bool {
	info, err := os.Stat(s.layout.Abs(installPath))
	return err == nil && info.IsDir()
}

// RemoveInstallDir deletes the whole installation directory. Used by hard
// uninstall.
func (s *FileStore) RemoveInstallDir(installPath string) error {
	dir := s.layout.Abs(installPath)
	if !isDescendant(filepath.Join(s.layout.Root(), storesDirName), dir) {
		return errors.NewForbiddenError("path is outside store storage")
	}
	if err := os.RemoveAll(dir); err != nil {
		return errors.NewInternalError("failed to remove installation directory", err.Error())
	}
	return nil
}

// SyncManifest rewrites the derived theme-config.json from the installation
// record.
func (s *FileStore) SyncManifest(installPath string, m *Manifest) error {
	return WriteManifest(s.layout.Abs(installPath), m)
}

func (s *FileStore) resolve(installPath, rel string) (string, error) {
	return s.layout.SecureJoin(s.layout.Abs(installPath), rel)
}
