package preferences

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"uteqportal/internal/app/client/controller"
	"uteqportal/internal/app/client/repository/memory"
	"uteqportal/internal/domain/record"
)

type MockPreferences struct {
	mock.Mock
}

func (m *MockPreferences) PreferredFaculties() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockPreferences) ToggleFacultyPreference(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestRunList(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	first, err := store.Create(ctx, record.CollectionFaculties, record.Record{Fields: record.Fields{"nombre": "Ciencias"}})
	require.NoError(t, err)
	_, err = store.Create(ctx, record.CollectionFaculties, record.Record{Fields: record.Fields{"nombre": "Ingeniería"}})
	require.NoError(t, err)

	prefs := new(MockPreferences)
	prefs.On("PreferredFaculties").Return([]string{first})

	ctrl := controller.New(store, record.FacultyKind, slog.Default())
	defer ctrl.Close()
	var out bytes.Buffer

	require.NoError(t, runList(ctx, ctrl, prefs, &out))

	assert.Regexp(t, `\[x\]\s+`+first+`\s+Ciencias`, out.String())
	assert.Regexp(t, `\[ \]\s+\S+\s+Ingeniería`, out.String())
}

func TestRunList_Empty(t *testing.T) {
	ctrl := controller.New(memory.New(), record.FacultyKind, slog.Default())
	defer ctrl.Close()
	var out bytes.Buffer

	require.NoError(t, runList(context.Background(), ctrl, new(MockPreferences), &out))

	assert.Equal(t, "No hay facultades registradas\n", out.String())
}

func TestRunToggle(t *testing.T) {
	tests := []struct {
		name     string
		selected bool
		err      error
		want     string
	}{
		{name: "select", selected: true, want: "Facultad f1 marcada\n"},
		{name: "unselect", selected: false, want: "Facultad f1 desmarcada\n"},
		{name: "failure", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := new(MockPreferences)
			prefs.On("ToggleFacultyPreference", mock.Anything, "f1").Return(tt.selected, tt.err)
			var out bytes.Buffer

			err := runToggle(context.Background(), prefs, &out, "f1")

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Empty(t, out.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
