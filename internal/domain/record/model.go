package record

import (
	"maps"
	"time"
)

// Fields - непрозрачное отображение имени поля в значение.
// Имена полей совпадают с ключами в базе (на испанском).
type Fields map[string]string

// Clone возвращает независимую копию.
func (f Fields) Clone() Fields {
	if f == nil {
		return Fields{}
	}
	return maps.Clone(f)
}

// Record - запись коллекции с идентификатором, выданным хранилищем
type Record struct {
	ID     string `json:"id"`
	Fields Fields `json:"fields"`
}

// Clone возвращает глубокую копию записи: рабочая копия никогда не
// разделяет память с элементом списка.
func (r Record) Clone() Record {
	return Record{ID: r.ID, Fields: r.Fields.Clone()}
}

// Get возвращает значение поля или пустую строку.
func (r Record) Get(field string) string {
	return r.Fields[field]
}

// Equal сравнивает записи по id и содержимому полей.
func (r Record) Equal(other Record) bool {
	return r.ID == other.ID && maps.Equal(r.Fields, other.Fields)
}

// FormatTime приводит время к формату хранения (RFC 3339, UTC).
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTime разбирает время из поля; пустое или битое значение дает нулевое время.
func ParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
