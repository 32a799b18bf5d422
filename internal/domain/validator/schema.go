package validator

import (
	"fmt"
	"strings"
)

// FieldRule связывает поле записи с правилом проверки
type FieldRule struct {
	Field string
	Rule  Rule
}

// Schema - упорядоченный список правил для одного экрана
type Schema []FieldRule

// Fields возвращает поля схемы в порядке объявления, без повторов.
func (s Schema) Fields() []string {
	seen := make(map[string]struct{}, len(s))
	fields := make([]string, 0, len(s))
	for _, fr := range s {
		if _, ok := seen[fr.Field]; ok {
			continue
		}
		seen[fr.Field] = struct{}{}
		fields = append(fields, fr.Field)
	}
	return fields
}

// Validate прогоняет все правила и собирает все нарушения, не останавливаясь
// на первом. Возвращает nil, если нарушений нет.
func (s Schema) Validate(fields map[string]string) error {
	var failures []FieldError
	for _, fr := range s {
		if fr.Rule.Check == nil {
			continue
		}
		if !fr.Rule.Check(fields[fr.Field]) {
			failures = append(failures, FieldError{Field: fr.Field, Rule: fr.Rule.Name})
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return &ValidationError{Failures: failures}
}

// FieldError - одно нарушение правила
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s (%s)", e.Field, e.Rule)
}

// ValidationError - локальная ошибка, до сети не доходит
type ValidationError struct {
	Failures []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.String()
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Is позволяет сравнивать с ErrValidation через errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Fields возвращает имена полей с нарушениями, по одному разу.
func (e *ValidationError) Fields() []string {
	seen := make(map[string]struct{}, len(e.Failures))
	out := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		if _, ok := seen[f.Field]; ok {
			continue
		}
		seen[f.Field] = struct{}{}
		out = append(out, f.Field)
	}
	return out
}

// Has сообщает, нарушено ли правило rule для поля field.
func (e *ValidationError) Has(field, rule string) bool {
	for _, f := range e.Failures {
		if f.Field == field && f.Rule == rule {
			return true
		}
	}
	return false
}

var ruleMessages = map[string]string{
	RuleRequired:           "es obligatorio",
	RuleInstitutionalEmail: "debe ser un correo institucional válido",
	RulePersonName:         "solo puede contener letras y espacios",
	RuleWellFormedURL:      "debe ser una URL válida (http, https o ftp)",
	RulePublicEmail:        "debe ser de @gmail.com, @hotmail.com, @yahoo.com, @outlook.com o @outlook.es",
}

// Describe возвращает текст нарушения правила для пользователя.
func Describe(rule string) string {
	if msg, ok := ruleMessages[rule]; ok {
		return msg
	}
	return "no es válido"
}

// Message - одно сводное сообщение для пользователя.
func (e *ValidationError) Message() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Field + " " + Describe(f.Rule)
	}
	return "Revise los campos: " + strings.Join(parts, "; ")
}
