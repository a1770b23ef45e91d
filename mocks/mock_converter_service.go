package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"webpconv/internal/domain"
)

// MockConverterService is a mock implementation of service.ConverterService.
type MockConverterService struct {
	mock.Mock
}

func (m *MockConverterService) Convert(ctx context.Context, ref domain.ObjectRef) (*domain.ConversionResult, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionResult), args.Error(1)
}
