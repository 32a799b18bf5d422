package rest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"uteqportal/internal/domain/record"
)

// ID принимает идентификатор как JSON-число или строку.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("ID должен быть числом или строкой: %w", err)
	}
	*id = ID(n.String())
	return nil
}

type item struct {
	ID          ID     `json:"ID,omitempty"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	URL         string `json:"url"`
}

type listResponse struct {
	Items []item `json:"multimedias"`
}

type createResponse struct {
	ID ID `json:"ID"`
}

func itemFromFields(f record.Fields) item {
	return item{
		Title:       f[record.FieldContentTitle],
		Description: f[record.FieldContentDescription],
		URL:         f[record.FieldContentURL],
	}
}

func (i item) toRecord() record.Record {
	return record.Record{
		ID: string(i.ID),
		Fields: record.Fields{
			record.FieldContentTitle:       i.Title,
			record.FieldContentDescription: i.Description,
			record.FieldContentURL:         i.URL,
		},
	}
}
