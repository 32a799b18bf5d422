package record

import (
	"fmt"

	"uteqportal/internal/domain/validator"
)

// Insertion - куда вставлять новую запись после успешного Create
type Insertion int

const (
	// Append - в конец (списки управления)
	Append Insertion = iota
	// Prepend - в начало, новые сверху (чат)
	Prepend
)

// FieldSpec описывает поле формы редактирования.
type FieldSpec struct {
	Key       string
	Label     string
	Multiline bool
	Secret    bool
}

// Kind - декларативное описание типа записи: коллекция, поля, правила
// и политика вставки. Один Kind на экран управления.
type Kind struct {
	Name         string
	DisplayName  string
	Collection   string
	Fields       []FieldSpec
	TitleField   string
	SummaryField string
	Schema       validator.Schema
	Insert       Insertion
	// StampField - поле серверной метки времени, заполняется при создании,
	// если пустое.
	StampField string
	// Prepare преобразует проверенные поля перед отправкой в порт.
	Prepare func(Fields) (Fields, error)
}

const (
	KindNameFaculty    = "faculty"
	KindNameContent    = "content"
	KindNameMultimedia = "multimedia"
	KindNameUser       = "user"
	KindNameMessage    = "message"
)

// Kinds возвращает все известные типы записей.
func Kinds() []Kind {
	return []Kind{FacultyKind, ContentKind, MultimediaKind, UserKind, MessageKind}
}

// KindByName ищет тип записи по имени.
func KindByName(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.Name == name {
			return k, nil
		}
	}
	return Kind{}, fmt.Errorf("неизвестный тип записи: %s", name)
}

// Label возвращает подпись поля или сам ключ.
func (k Kind) Label(key string) string {
	for _, f := range k.Fields {
		if f.Key == key {
			return f.Label
		}
	}
	return key
}

// Validate прогоняет схему типа над полями.
func (k Kind) Validate(fields Fields) error {
	return k.Schema.Validate(fields)
}

func (k Kind) String() string {
	return k.Name
}
