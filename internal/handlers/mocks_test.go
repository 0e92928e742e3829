package handlers

import (
	"context"

	"github.com/deirn/cf-b2cdn/internal/b2"
	"github.com/stretchr/testify/mock"
)

// MockBucketClient implements BucketClient for testing
type MockBucketClient struct {
	mock.Mock
}

func (m *MockBucketClient) ListFileNames(ctx context.Context, prefix string) ([]b2.RawEntry, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]b2.RawEntry), args.Error(1)
}

func (m *MockBucketClient) DownloadFile(ctx context.Context, name string) (*b2.FileReader, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*b2.FileReader), args.Error(1)
}
