package record

import (
	"time"

	"uteqportal/internal/domain/validator"
)

const (
	CollectionFaculties = "Facultades"

	FieldFacultyName    = "nombre"
	FieldFacultyMission = "mision"
	FieldFacultyVision  = "vision"
	FieldFacultyStamp   = "timestamp"
)

var FacultyKind = Kind{
	Name:        KindNameFaculty,
	DisplayName: "Facultad",
	Collection:  CollectionFaculties,
	Fields: []FieldSpec{
		{Key: FieldFacultyName, Label: "Nombre"},
		{Key: FieldFacultyMission, Label: "Misión", Multiline: true},
		{Key: FieldFacultyVision, Label: "Visión", Multiline: true},
	},
	TitleField:   FieldFacultyName,
	SummaryField: FieldFacultyMission,
	Schema: validator.Schema{
		{Field: FieldFacultyName, Rule: validator.Required},
		{Field: FieldFacultyMission, Rule: validator.Required},
		{Field: FieldFacultyVision, Rule: validator.Required},
	},
	Insert:     Append,
	StampField: FieldFacultyStamp,
}

type Faculty struct {
	ID        string
	Name      string
	Mission   string
	Vision    string
	CreatedAt time.Time
}

func (f Faculty) Fields() Fields {
	fields := Fields{
		FieldFacultyName:    f.Name,
		FieldFacultyMission: f.Mission,
		FieldFacultyVision:  f.Vision,
	}
	if !f.CreatedAt.IsZero() {
		fields[FieldFacultyStamp] = FormatTime(f.CreatedAt)
	}
	return fields
}

func FacultyFromRecord(r Record) Faculty {
	return Faculty{
		ID:        r.ID,
		Name:      r.Get(FieldFacultyName),
		Mission:   r.Get(FieldFacultyMission),
		Vision:    r.Get(FieldFacultyVision),
		CreatedAt: ParseTime(r.Get(FieldFacultyStamp)),
	}
}
