package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/digitalstore/digitalstore-api/utils"
)

// Storage prefixes for catalog images
const (
	ProductImagePrefix = "products"
	CategoryIconPrefix = "categories"
)

// ImageService handles image upload, retrieval, and deletion
type ImageService interface {
	// UploadImage validates and stores an image, returns its storage key
	UploadImage(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (string, error)

	// GetImageURL generates a URL for accessing a stored image
	GetImageURL(ctx context.Context, key string) (string, error)

	// DeleteImage removes an image from storage
	DeleteImage(ctx context.Context, key string) error
}

// S3ImageService implements ImageService using AWS S3 for storage
type S3ImageService struct {
	s3 S3Interface
}

func NewS3ImageService(s3 S3Interface) *S3ImageService {
	return &S3ImageService{s3: s3}
}

func (s *S3ImageService) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	key, err := s.s3.UploadFile(ctx, fileHeader, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return key, nil
}

func (s *S3ImageService) GetImageURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	url, err := s.s3.GetPresignedURL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to generate image URL: %w", err)
	}
	return url, nil
}

func (s *S3ImageService) DeleteImage(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := s.s3.DeleteFile(ctx, key); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// LocalImageService stores images on disk and serves them from /api/v1/uploads
type LocalImageService struct {
	dir string
}

func NewLocalImageService(dir string) *LocalImageService {
	return &LocalImageService{dir: dir}
}

// Dir is the directory images are written to
func (s *LocalImageService) Dir() string {
	return s.dir
}

// UploadImage ignores prefix; local files live in one flat directory
func (s *LocalImageService) UploadImage(_ context.Context, fileHeader *multipart.FileHeader, _ string) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}
	return utils.SaveUploadedFile(fileHeader, s.dir)
}

func (s *LocalImageService) GetImageURL(_ context.Context, key string) (string, error) {
	return utils.GetImageURL(key), nil
}

func (s *LocalImageService) DeleteImage(_ context.Context, key string) error {
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
