package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"webpconv/internal/port"
)

// MockFileService is a mock implementation of service.FileService.
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) CreateUpload(ctx context.Context, filename, contentType string) (*port.PresignedPost, error) {
	args := m.Called(ctx, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.PresignedPost), args.Error(1)
}

func (m *MockFileService) GetDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
