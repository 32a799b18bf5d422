package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uteqportal/internal/app/client/controller"
	"uteqportal/internal/domain/record"
)

func TestRenderCards(t *testing.T) {
	long := strings.Repeat("á", 60)
	items := []record.Record{
		{ID: "f1", Fields: record.Fields{"nombre": "Ciencias", "mision": "Formar"}},
		{ID: "f2", Fields: record.Fields{"nombre": "Ingeniería", "mision": long}},
	}
	var buf bytes.Buffer

	require.NoError(t, RenderCards(&buf, record.FacultyKind, items))

	out := buf.String()
	assert.Contains(t, out, "Nombre")
	assert.Contains(t, out, "Misión")
	assert.Contains(t, out, "Ciencias")
	assert.Contains(t, out, strings.Repeat("á", 50)+"...")
	assert.NotContains(t, out, strings.Repeat("á", 51))
	assert.Contains(t, out, "Total: 2")
}

func TestRenderCards_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderCards(&buf, record.FacultyKind, nil))

	assert.Equal(t, "No hay registros de Facultad\n", buf.String())
}

func TestRenderForm_MasksSecrets(t *testing.T) {
	var buf bytes.Buffer
	pending := record.Record{ID: "u1", Fields: record.Fields{
		"nombre": "Ana", "apellidos": "Pérez", "correo": "ana@uteq.edu.ec", "contrasena": "secreta",
	}}

	require.NoError(t, RenderForm(&buf, record.UserKind, pending))

	out := buf.String()
	assert.Contains(t, out, "Editar")
	assert.Contains(t, out, "ana@uteq.edu.ec")
	assert.Contains(t, out, secretMask)
	assert.NotContains(t, out, "secreta")
}

func TestRenderJSON_MasksSecrets(t *testing.T) {
	var buf bytes.Buffer
	items := []record.Record{{ID: "u1", Fields: record.Fields{"contrasena": "secreta"}}}

	require.NoError(t, RenderJSON(&buf, record.UserKind, items))

	assert.NotContains(t, buf.String(), "secreta")
	assert.Equal(t, "secreta", items[0].Fields["contrasena"], "input must not be modified")
}

func TestRenderStatus(t *testing.T) {
	tests := []struct {
		name  string
		state controller.State
		want  string
	}{
		{name: "idle", state: controller.State{Status: controller.StatusIdle}, want: ""},
		{name: "loading", state: controller.State{Status: controller.StatusLoading}, want: "Cargando...\n"},
		{name: "saving", state: controller.State{Status: controller.StatusSaving}, want: "Guardando...\n"},
		{
			name: "error",
			state: controller.State{
				Status: controller.StatusError,
				Err:    record.NewRepoError("list", "Facultades", record.CauseNotFound, errors.New("x")),
			},
			want: "Error: El registro ya no existe.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderStatus(&buf, record.FacultyKind, tt.state))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFailureMessages_Validation(t *testing.T) {
	err := record.FacultyKind.Validate(record.Fields{"nombre": "", "mision": "m", "vision": "v"})

	assert.Equal(t, []string{"Nombre: es obligatorio"}, FailureMessages(record.FacultyKind, err))
}

func TestFailureMessages_Other(t *testing.T) {
	assert.Nil(t, FailureMessages(record.FacultyKind, nil))
	assert.Equal(t, []string{"boom"}, FailureMessages(record.FacultyKind, errors.New("boom")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "ab...", Truncate("abc", 2))
	assert.Equal(t, "ñá...", Truncate("ñáé", 2))
}
