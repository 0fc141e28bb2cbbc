package mocks

import (
	"context"
	"time"

	"patternlab/internal/catalog"
	"patternlab/internal/model"
	"patternlab/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPatternService struct {
	mock.Mock
}

func (m *MockPatternService) ListPatterns(category string, limit, offset int) (*service.PatternListResult, error) {
	args := m.Called(category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PatternListResult), args.Error(1)
}

func (m *MockPatternService) GetPattern(name string) (*catalog.Metadata, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Metadata), args.Error(1)
}

func (m *MockPatternService) Run(ctx context.Context, name string) (*service.RunResult, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RunResult), args.Error(1)
}

func (m *MockPatternService) ListRuns(ctx context.Context, limit, offset int) (*service.RunListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RunListResult), args.Error(1)
}

func (m *MockPatternService) GetRun(ctx context.Context, id string) (*model.Run, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Run), args.Error(1)
}

func (m *MockPatternService) ReadTrace(ctx context.Context, id string) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPatternService) TraceURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, id, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockPatternService) DeleteRun(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
