package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"catalog-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartFile builds a *multipart.FileHeader the way a handler would
// receive one.
func multipartFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	_, header, err := req.FormFile("image")
	require.NoError(t, err)
	return header
}

func TestValidateFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		wantExt  string
		wantErr  error
	}{
		{"jpg", "photo.jpg", "jpg", nil},
		{"uppercase extension", "PHOTO.JPEG", "jpeg", nil},
		{"png", "icon.png", "png", nil},
		{"gif", "anim.gif", "gif", nil},
		{"pdf rejected", "doc.pdf", "", ErrUnsupportedFormat},
		{"no extension", "noext", "", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fh := multipartFile(t, tt.filename, []byte("data"))
			ext, err := validateFile(fh)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestValidateFileTooLarge(t *testing.T) {
	t.Parallel()

	fh := multipartFile(t, "big.png", []byte("data"))
	fh.Size = MaxFileSize + 1

	_, err := validateFile(fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestNewSelectsLocalWithoutCloudCredentials(t *testing.T) {
	cfg := &config.AppConfig{
		CloudinaryCloudName: "demo",
		// key and secret missing: incomplete credentials mean local disk
		UploadDir: t.TempDir(),
	}

	s, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)
}

func TestNewSelectsCloudinaryWithFullCredentials(t *testing.T) {
	cfg := &config.AppConfig{
		CloudinaryCloudName: "demo",
		CloudinaryAPIKey:    "key",
		CloudinaryAPISecret: "secret",
	}

	s, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &CloudinaryStorage{}, s)
}

func TestLocalStoreAndDelete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := NewLocal(dir, LocalURLPrefix)
	require.NoError(t, err)

	fh := multipartFile(t, "photo.jpg", []byte("fake image bytes"))
	asset, err := s.Store(context.Background(), fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(asset.URL, LocalURLPrefix+"/"), "URL %q should live under the static prefix", asset.URL)
	assert.True(t, strings.HasSuffix(asset.URL, ".jpg"))
	assert.Empty(t, asset.MediaKey, "local backend issues no deletion key")

	// the file must exist on disk under the generated name
	name := strings.TrimPrefix(asset.URL, LocalURLPrefix+"/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)

	assert.NoError(t, s.Delete(context.Background(), "anything"))
}

func TestLocalStoreRejectsBadFormat(t *testing.T) {
	t.Parallel()

	s, err := NewLocal(t.TempDir(), LocalURLPrefix)
	require.NoError(t, err)

	fh := multipartFile(t, "malware.exe", []byte("nope"))
	_, err = s.Store(context.Background(), fh)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
