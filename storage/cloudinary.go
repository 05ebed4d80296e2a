package storage

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	uploadFolder = "catalog/products"

	// Incoming transformation: downscale to fit 1000x1000, aspect preserved,
	// never upscaled.
	incomingTransformation = "c_limit,w_1000,h_1000"
)

// CloudinaryStorage stores images on Cloudinary. The PublicID returned by an
// upload is the deletion key.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary builds a Cloudinary-backed store from account credentials.
func NewCloudinary(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) Store(ctx context.Context, file *multipart.FileHeader) (*Asset, error) {
	if _, err := validateFile(file); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	result, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:         uploadFolder,
		Transformation: incomingTransformation,
	})
	if err != nil {
		return nil, err
	}
	if result.Error.Message != "" {
		return nil, errors.New(result.Error.Message)
	}

	return &Asset{URL: result.SecureURL, MediaKey: result.PublicID}, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, key string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: key})
	if err != nil {
		return err
	}
	if result.Error.Message != "" {
		return errors.New(result.Error.Message)
	}
	return nil
}
