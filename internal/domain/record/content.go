package record

import (
	"time"

	"uteqportal/internal/domain/validator"
)

const (
	CollectionContents   = "contenidos"
	CollectionMultimedia = "multimedia"

	FieldContentTitle       = "titulo"
	FieldContentDescription = "descripcion"
	FieldContentURL         = "url"
	FieldContentDate        = "fecha"
)

var contentSchema = validator.Schema{
	{Field: FieldContentTitle, Rule: validator.Required},
	{Field: FieldContentDescription, Rule: validator.Required},
	{Field: FieldContentURL, Rule: validator.URL},
}

var contentFields = []FieldSpec{
	{Key: FieldContentTitle, Label: "Título"},
	{Key: FieldContentDescription, Label: "Descripción", Multiline: true},
	{Key: FieldContentURL, Label: "URL"},
}

// ContentKind - коллекция contenidos в документной БД
var ContentKind = Kind{
	Name:         KindNameContent,
	DisplayName:  "Contenido",
	Collection:   CollectionContents,
	Fields:       contentFields,
	TitleField:   FieldContentTitle,
	SummaryField: FieldContentDescription,
	Schema:       contentSchema,
	Insert:       Append,
	StampField:   FieldContentDate,
}

// MultimediaKind - те же поля, но через REST API multimedia
var MultimediaKind = Kind{
	Name:         KindNameMultimedia,
	DisplayName:  "Multimedia",
	Collection:   CollectionMultimedia,
	Fields:       contentFields,
	TitleField:   FieldContentTitle,
	SummaryField: FieldContentDescription,
	Schema:       contentSchema,
	Insert:       Append,
}

type Content struct {
	ID          string
	Title       string
	Description string
	URL         string
	CreatedAt   time.Time
}

func (c Content) Fields() Fields {
	fields := Fields{
		FieldContentTitle:       c.Title,
		FieldContentDescription: c.Description,
		FieldContentURL:         c.URL,
	}
	if !c.CreatedAt.IsZero() {
		fields[FieldContentDate] = FormatTime(c.CreatedAt)
	}
	return fields
}

func ContentFromRecord(r Record) Content {
	return Content{
		ID:          r.ID,
		Title:       r.Get(FieldContentTitle),
		Description: r.Get(FieldContentDescription),
		URL:         r.Get(FieldContentURL),
		CreatedAt:   ParseTime(r.Get(FieldContentDate)),
	}
}
