// Package view отображает состояние контроллера списка в терминале:
// карточки, форму редактирования и строку статуса.
package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"uteqportal/internal/app/client/controller"
	"uteqportal/internal/domain/record"
	"uteqportal/internal/domain/validator"
)

// SummaryLimit - длина описания на карточке, в рунах
const SummaryLimit = 50

const secretMask = "********"

// RenderCards печатает записи таблицей: номер, ID, заголовок, описание.
func RenderCards(w io.Writer, kind record.Kind, items []record.Record) error {
	if len(items) == 0 {
		_, err := fmt.Fprintf(w, "No hay registros de %s\n", kind.DisplayName)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tID\t%s\t%s\t\n", kind.Label(kind.TitleField), summaryHeader(kind))
	fmt.Fprintf(tw, "---\t---\t---\t---\t\n")
	for i, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n",
			i+1,
			it.ID,
			it.Get(kind.TitleField),
			Truncate(summary(kind, it), SummaryLimit),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d\n", len(items))
	return err
}

// RenderJSON печатает записи как JSON, секретные поля скрыты.
func RenderJSON(w io.Writer, kind record.Kind, items []record.Record) error {
	out := make([]record.Record, len(items))
	for i, it := range items {
		out[i] = masked(kind, it)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// RenderForm печатает рабочую копию в виде формы.
func RenderForm(w io.Writer, kind record.Kind, pending record.Record) error {
	title := "Nuevo registro"
	if pending.ID != "" {
		title = "Editar " + kind.DisplayName + " " + pending.ID
	}
	if _, err := fmt.Fprintf(w, "== %s ==\n", title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, f := range kind.Fields {
		value := pending.Get(f.Key)
		if f.Secret && value != "" {
			value = secretMask
		}
		fmt.Fprintf(tw, "%s:\t%s\n", f.Label, value)
	}
	return tw.Flush()
}

// RenderStatus печатает строку статуса; в состоянии Idle ничего не выводит.
func RenderStatus(w io.Writer, kind record.Kind, state controller.State) error {
	var line string
	switch state.Status {
	case controller.StatusLoading:
		line = "Cargando..."
	case controller.StatusSaving:
		line = "Guardando..."
	case controller.StatusError:
		line = "Error: " + FailureMessage(kind, state.Err)
	default:
		return nil
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// FailureMessages возвращает сообщения для пользователя: по одному на
// нарушенное правило или одно для ошибки хранилища.
func FailureMessages(kind record.Kind, err error) []string {
	if err == nil {
		return nil
	}

	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		out := make([]string, len(verr.Failures))
		for i, f := range verr.Failures {
			out[i] = kind.Label(f.Field) + ": " + validator.Describe(f.Rule)
		}
		return out
	}

	var rerr *record.RepoError
	if errors.As(err, &rerr) {
		return []string{causeMessage(rerr.Cause)}
	}

	return []string{err.Error()}
}

// FailureMessage склеивает FailureMessages в одну строку.
func FailureMessage(kind record.Kind, err error) string {
	return strings.Join(FailureMessages(kind, err), "; ")
}

func causeMessage(c record.Cause) string {
	switch c {
	case record.CauseNetworkFailure:
		return "No se pudo conectar con el servidor. Intente de nuevo."
	case record.CauseNotFound:
		return "El registro ya no existe."
	case record.CausePermissionDenied:
		return "No tiene permisos para realizar esta acción."
	default:
		return "El servidor devolvió una respuesta inesperada."
	}
}

// Truncate обрезает строку до limit рун, добавляя "...".
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

func summaryHeader(kind record.Kind) string {
	if kind.SummaryField == "" {
		return ""
	}
	return kind.Label(kind.SummaryField)
}

func summary(kind record.Kind, r record.Record) string {
	if kind.SummaryField == "" {
		return ""
	}
	return r.Get(kind.SummaryField)
}

func masked(kind record.Kind, r record.Record) record.Record {
	out := r.Clone()
	for _, f := range kind.Fields {
		if f.Secret && out.Fields[f.Key] != "" {
			out.Fields[f.Key] = secretMask
		}
	}
	return out
}
