package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// saveUploadToTemp buffers a multipart file into the OS temp directory and
// returns the path plus a cleanup func for the caller to defer.
func saveUploadToTemp(c *gin.Context, file *multipart.FileHeader, pattern string) (string, func(), error) {
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(path)
		return "", nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := c.SaveUploadedFile(file, path); err != nil {
		os.Remove(path)
		return "", nil, fmt.Errorf("save uploaded file %s: %w", filepath.Base(file.Filename), err)
	}

	return path, func() { os.Remove(path) }, nil
}
