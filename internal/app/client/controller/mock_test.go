package controller

import (
	"context"

	"github.com/stretchr/testify/mock"

	"uteqportal/internal/domain/record"
)

// MockRepository is a mock implementation of record.Repository for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, collection string) ([]record.Record, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Record), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, collection string, rec record.Record) (string, error) {
	args := m.Called(ctx, collection, rec)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, collection, id string, patch record.Fields) error {
	args := m.Called(ctx, collection, id, patch)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}
