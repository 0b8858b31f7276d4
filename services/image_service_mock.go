package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"sync"

	"github.com/digitalstore/digitalstore-api/utils"
)

// MockImageService is an in-memory ImageService for handler tests
type MockImageService struct {
	keys map[string]struct{}
	mu   sync.RWMutex

	// UploadErr, when set, is returned by every UploadImage call after validation
	UploadErr error
}

func NewMockImageService() *MockImageService {
	return &MockImageService{keys: make(map[string]struct{})}
}

func (m *MockImageService) UploadImage(_ context.Context, fileHeader *multipart.FileHeader, prefix string) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}
	if m.UploadErr != nil {
		return "", m.UploadErr
	}

	key := path.Join(prefix, "mock_"+path.Base(fileHeader.Filename))

	m.mu.Lock()
	m.keys[key] = struct{}{}
	m.mu.Unlock()

	return key, nil
}

func (m *MockImageService) GetImageURL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	if !m.ImageExists(key) {
		return "", errors.New("image not found in mock storage: " + key)
	}
	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s?mock=true", key), nil
}

func (m *MockImageService) DeleteImage(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.keys, key)
	m.mu.Unlock()
	return nil
}

// ImageExists checks if an image exists in mock storage
func (m *MockImageService) ImageExists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.keys[key]
	return ok
}
