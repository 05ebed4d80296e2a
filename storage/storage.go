package storage

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"catalog-backend/config"
)

// MaxFileSize is the largest accepted upload.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

var (
	// ErrUnsupportedFormat means the file extension is not an accepted image type.
	ErrUnsupportedFormat = errors.New("unsupported image format, allowed: jpg, jpeg, png, gif")
	// ErrFileTooLarge means the upload exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file too large, maximum is 10MB")
)

// Asset is a stored image reference. MediaKey is empty when the backend
// issues no deletion handle.
type Asset struct {
	URL      string
	MediaKey string
}

// Storage stores and releases uploaded images. Which backend is active is
// decided once at startup; callers never branch on configuration.
type Storage interface {
	Store(ctx context.Context, file *multipart.FileHeader) (*Asset, error)
	Delete(ctx context.Context, key string) error
}

// New selects the media backend from process configuration: Cloudinary when
// all three credentials are present, local disk otherwise.
func New(cfg *config.AppConfig) (Storage, error) {
	if cfg.CloudinaryConfigured() {
		s, err := NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			return nil, err
		}
		log.Println("📷 Media backend: Cloudinary")
		return s, nil
	}

	s, err := NewLocal(cfg.UploadDir, LocalURLPrefix)
	if err != nil {
		return nil, err
	}
	log.Printf("📷 Media backend: local disk (%s)", cfg.UploadDir)
	return s, nil
}

// validateFile checks extension and size, returning the normalized extension
// (without the dot) on success.
func validateFile(file *multipart.FileHeader) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedFormat
	}
	if file.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}
	return ext, nil
}
