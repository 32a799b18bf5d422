package multimedia

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Multimedia, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Multimedia), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, item Multimedia) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, item Multimedia) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func valid() Multimedia {
	return Multimedia{Title: "Video", Description: "Clase inaugural", URL: "https://uteq.edu.ec/v/1"}
}

func TestService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything).Return(nil, nil).Once()

	items, err := service.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items, "empty list must encode as []")
	mockRepo.AssertExpectations(t)
}

func TestService_List_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything).Return(nil, errors.New("database error"))

	_, err := service.List(context.Background())

	assert.ErrorContains(t, err, "database error")
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name       string
		input      Multimedia
		repoCalled bool
		wantFields []string
	}{
		{name: "valid", input: valid(), repoCalled: true},
		{
			name:       "empty title",
			input:      Multimedia{Title: " ", Description: "d", URL: "https://x"},
			wantFields: []string{"titulo"},
		},
		{
			name:       "bad url and no description",
			input:      Multimedia{Title: "t", URL: "uteq.edu.ec"},
			wantFields: []string{"descripcion", "url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, slog.Default())
			if tt.repoCalled {
				mockRepo.On("Create", mock.Anything, tt.input).Return(int64(5), nil)
			}

			id, err := service.Create(context.Background(), tt.input)

			if !tt.repoCalled {
				require.ErrorIs(t, err, ErrInvalidInput)
				var derr *DomainError
				require.ErrorAs(t, err, &derr)
				assert.Equal(t, tt.wantFields, derr.Fields)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), id)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Update(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())
	item := valid()
	item.ID = 3

	mockRepo.On("Update", mock.Anything, item).Return(ErrNotFound)

	err := service.Update(context.Background(), item)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, service.Update(context.Background(), valid()), ErrNotFound, "zero id")
	mockRepo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, int64(9)).Return(nil)

	assert.NoError(t, service.Delete(context.Background(), 9))
	assert.ErrorIs(t, service.Delete(context.Background(), -1), ErrNotFound)
	mockRepo.AssertExpectations(t)
}
