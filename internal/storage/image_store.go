// Package storage persists uploaded featured images on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnsupportedImageType is returned for uploads outside the extension allowlist.
var ErrUnsupportedImageType = errors.New("unsupported image type")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageStore writes uploaded images under a base directory and returns the
// public reference path served from /uploads.
type ImageStore struct {
	baseDir string
}

// NewImageStore creates the upload directory if needed and returns a store.
func NewImageStore(baseDir string) (*ImageStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", baseDir, err)
	}
	return &ImageStore{baseDir: baseDir}, nil
}

// Save writes the uploaded file to disk under a timestamp-derived name and
// returns its public path. The uuid fragment keeps two uploads landing on the
// same millisecond from colliding.
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedImageType
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return "/uploads/" + name, nil
}

// Dir returns the base directory images are written to.
func (s *ImageStore) Dir() string {
	return s.baseDir
}
