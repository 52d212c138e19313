//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MGTheTrain/description-generator/internal/domain/catalog"
	"github.com/MGTheTrain/description-generator/internal/domain/generation"
)

// MockJobService is a mock implementation of generation.JobService
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) Start(ctx context.Context, params generation.ProcessParams) (*generation.Job, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generation.Job), args.Error(1)
}

func (m *MockJobService) Stop(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobService) Status(ctx context.Context) (*generation.JobStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generation.JobStatus), args.Error(1)
}

func (m *MockJobService) List(ctx context.Context, limit int) ([]*generation.Job, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*generation.Job), args.Error(1)
}

func (m *MockJobService) Subscribe() (<-chan *generation.LogEvent, func()) {
	args := m.Called()
	return args.Get(0).(<-chan *generation.LogEvent), args.Get(1).(func())
}

// MockPreviewService is a mock implementation of catalog.PreviewService
type MockPreviewService struct {
	mock.Mock
}

func (m *MockPreviewService) Preview(ctx context.Context, sheetInput, worksheet string) (*catalog.SheetPreview, error) {
	args := m.Called(ctx, sheetInput, worksheet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SheetPreview), args.Error(1)
}
