package record

import (
	"time"

	"uteqportal/internal/domain/validator"
)

const (
	CollectionMessages = "mensajes"

	FieldMessageText   = "texto"
	FieldMessageSentAt = "enviado"
)

// MessageKind - сообщения чата, новые сверху
var MessageKind = Kind{
	Name:        KindNameMessage,
	DisplayName: "Mensaje",
	Collection:  CollectionMessages,
	Fields: []FieldSpec{
		{Key: FieldMessageText, Label: "Mensaje", Multiline: true},
	},
	TitleField: FieldMessageText,
	Schema: validator.Schema{
		{Field: FieldMessageText, Rule: validator.Required},
	},
	Insert: Prepend,
}

type Message struct {
	ID     string
	Text   string
	SentAt time.Time
}

func MessageFromRecord(r Record) Message {
	return Message{
		ID:     r.ID,
		Text:   r.Get(FieldMessageText),
		SentAt: ParseTime(r.Get(FieldMessageSentAt)),
	}
}
