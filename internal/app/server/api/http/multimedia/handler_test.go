package multimedia

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"uteqportal/internal/app/server/api/http/middleware/auth"
	"uteqportal/internal/domain/multimedia"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]multimedia.Multimedia, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]multimedia.Multimedia), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, item multimedia.Multimedia) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, item multimedia.Multimedia) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestAPI(t *testing.T, svc *MockService, token string) http.Handler {
	t.Helper()
	mux := chi.NewMux()
	api := humachi.New(mux, huma.DefaultConfig("test", "1.0.0"))
	authMW := auth.New(token, slog.Default())
	NewHandler(svc, slog.Default(), nil, huma.Middlewares{authMW.Middleware()}).SetupRoutes(api)
	return mux
}

func do(h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	svc.On("List", mock.Anything).Return([]multimedia.Multimedia{
		{ID: 1, Title: "Video", Description: "Clase", URL: "https://v"},
	}, nil)
	h := newTestAPI(t, svc, "")

	rec := do(h, http.MethodGet, "/multimedia/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Multimedias []map[string]any `json:"multimedias"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Multimedias, 1)
	assert.Equal(t, float64(1), body.Multimedias[0]["ID"])
	assert.Equal(t, "Video", body.Multimedias[0]["titulo"])
	svc.AssertExpectations(t)
}

func TestHandler_Create(t *testing.T) {
	svc := new(MockService)
	want := multimedia.Multimedia{Title: "T", Description: "D", URL: "https://u"}
	svc.On("Create", mock.Anything, want).Return(int64(8), nil)
	h := newTestAPI(t, svc, "")

	rec := do(h, http.MethodPost, "/multimedia/", `{"titulo":"T","descripcion":"D","url":"https://u"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"ID":8`)
	svc.AssertExpectations(t)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: multimedia.ErrNotFound, status: http.StatusNotFound},
		{
			name:   "validation",
			err:    &multimedia.DomainError{Err: multimedia.ErrInvalidInput, Message: "titulo es obligatorio"},
			status: http.StatusUnprocessableEntity,
		},
		{name: "database", err: errors.New("connection reset"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Update", mock.Anything, mock.AnythingOfType("multimedia.Multimedia")).Return(tt.err)
			h := newTestAPI(t, svc, "")

			rec := do(h, http.MethodPut, "/multimedia/4", `{"titulo":"","descripcion":"","url":""}`)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandler_WriteRequiresToken(t *testing.T) {
	svc := new(MockService)
	svc.On("Delete", mock.Anything, int64(2)).Return(nil)
	svc.On("List", mock.Anything).Return([]multimedia.Multimedia{}, nil)
	h := newTestAPI(t, svc, "editor")

	assert.Equal(t, http.StatusUnauthorized, do(h, http.MethodDelete, "/multimedia/2", "").Code)
	assert.Equal(t, http.StatusForbidden,
		do(h, http.MethodDelete, "/multimedia/2", "", "Authorization", "Bearer wrong").Code)
	assert.Equal(t, http.StatusOK,
		do(h, http.MethodDelete, "/multimedia/2", "", "Authorization", "Bearer editor").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/multimedia/", "").Code, "reads stay public")

	svc.AssertNumberOfCalls(t, "Delete", 1)
}
