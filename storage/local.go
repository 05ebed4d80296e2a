package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalURLPrefix is where the upload directory is served from.
const LocalURLPrefix = "/static/uploads"

// LocalStorage writes images to a directory on disk. It issues no deletion
// keys; replaced files stay behind as orphans.
type LocalStorage struct {
	dir       string
	urlPrefix string
}

// NewLocal builds a disk-backed store, creating the upload directory if needed.
func NewLocal(dir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &LocalStorage{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

func (s *LocalStorage) Store(ctx context.Context, file *multipart.FileHeader) (*Asset, error) {
	ext, err := validateFile(file)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%d_%s.%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	return &Asset{URL: s.urlPrefix + "/" + name}, nil
}

// Delete is a no-op: local uploads carry no deletion key.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	return nil
}
