package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uteqportal/internal/domain/validator"
)

func TestKindByName(t *testing.T) {
	for _, k := range Kinds() {
		got, err := KindByName(k.Name)
		require.NoError(t, err)
		assert.Equal(t, k.Collection, got.Collection)
	}

	_, err := KindByName("noticias")
	assert.Error(t, err)
}

func TestKind_Label(t *testing.T) {
	assert.Equal(t, "Misión", FacultyKind.Label(FieldFacultyMission))
	assert.Equal(t, "otro", FacultyKind.Label("otro"))
}

func TestFacultyKind_EmptyName(t *testing.T) {
	err := FacultyKind.Validate(Fields{
		FieldFacultyName:    "",
		FieldFacultyMission: "m",
		FieldFacultyVision:  "v",
	})

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []validator.FieldError{{Field: FieldFacultyName, Rule: validator.RuleRequired}}, verr.Failures)
}

func TestUserKind_Validate(t *testing.T) {
	err := UserKind.Validate(Fields{
		FieldUserFirstName: "Ana2",
		FieldUserLastName:  "Pérez",
		FieldUserEmail:     "ana@gmail.com",
		FieldUserPassword:  "secreto",
	})

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has(FieldUserFirstName, validator.RulePersonName))
	assert.True(t, verr.Has(FieldUserEmail, validator.RuleInstitutionalEmail))
	assert.Len(t, verr.Failures, 2)
}

func TestUserKindForDomain(t *testing.T) {
	k := UserKindForDomain("@example.edu")
	fields := Fields{
		FieldUserFirstName: "Ana",
		FieldUserLastName:  "Pérez",
		FieldUserEmail:     "ana@example.edu",
		FieldUserPassword:  "secreto",
	}

	assert.NoError(t, k.Validate(fields))
	assert.Error(t, UserKind.Validate(fields), "base kind keeps the default domain")
}

func TestMessageKind_Prepends(t *testing.T) {
	assert.Equal(t, Prepend, MessageKind.Insert)
	assert.Equal(t, Append, FacultyKind.Insert)
}
