package record

import (
	"context"
	"errors"
	"fmt"
	"io"

	"uteqportal/cmd/client/cmd/ui"
	"uteqportal/internal/app/client/controller"
	"uteqportal/internal/app/client/view"
	"uteqportal/internal/domain/record"
)

var ErrRecordNotFound = errors.New("registro no encontrado")

// failureError - ошибка с уже подготовленным для пользователя текстом
type failureError struct {
	msg string
	err error
}

func (e *failureError) Error() string { return e.msg }
func (e *failureError) Unwrap() error { return e.err }

// screen - экран управления одним типом записей поверх контроллера
type screen struct {
	ctrl      *controller.Controller
	kind      record.Kind
	prompt    *ui.Prompter
	out       io.Writer
	assumeYes bool
	set       map[string]string
}

// fail только оборачивает ошибку: текст печатает Execute один раз.
func (s *screen) fail(err error) error {
	if err == nil {
		return nil
	}
	return &failureError{msg: view.FailureMessage(s.kind, err), err: err}
}

func (s *screen) refresh(ctx context.Context) error {
	if err := s.ctrl.Refresh(ctx); err != nil {
		_ = view.RenderStatus(s.out, s.kind, s.ctrl.State())
		return &failureError{msg: view.FailureMessage(s.kind, err), err: err}
	}
	return nil
}

func (s *screen) list(ctx context.Context, asJSON bool) error {
	if err := s.refresh(ctx); err != nil {
		return err
	}
	if asJSON {
		return view.RenderJSON(s.out, s.kind, s.ctrl.Items())
	}
	return view.RenderCards(s.out, s.kind, s.ctrl.Items())
}

func (s *screen) create(ctx context.Context) error {
	draft := record.Fields{}
	for _, f := range s.kind.Fields {
		if v, ok := s.set[f.Key]; ok {
			draft[f.Key] = v
			continue
		}
		var (
			v   string
			err error
		)
		if f.Secret {
			v, err = s.prompt.NewSecret(f.Label)
		} else {
			v, err = s.prompt.Line(f.Label, "")
		}
		if err != nil {
			return err
		}
		draft[f.Key] = v
	}

	if err := s.kind.Validate(draft); err != nil {
		return s.fail(err)
	}

	ok, err := s.confirm(record.Record{Fields: draft}, "¿Guardar el registro?")
	if err != nil || !ok {
		return err
	}

	rec, err := s.ctrl.Create(ctx, draft)
	if err != nil {
		return s.fail(err)
	}
	fmt.Fprintf(s.out, "Registro creado: %s\n", rec.ID)
	return nil
}

func (s *screen) edit(ctx context.Context, id string) error {
	if err := s.refresh(ctx); err != nil {
		return err
	}
	if !s.ctrl.BeginEdit(id) {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	pending, _ := s.ctrl.Pending()

	for _, f := range s.kind.Fields {
		value, ok := s.set[f.Key]
		if !ok {
			var err error
			if f.Secret {
				value, err = s.prompt.Secret(f.Label + " (vacío = sin cambios)")
			} else {
				value, err = s.prompt.Line(f.Label, pending.Get(f.Key))
			}
			if err != nil {
				s.ctrl.CancelEdit()
				return err
			}
			if f.Secret && value == "" {
				continue
			}
		}
		if err := s.ctrl.SetField(f.Key, value); err != nil {
			s.ctrl.CancelEdit()
			return err
		}
	}

	pending, _ = s.ctrl.Pending()
	ok, err := s.confirm(pending, "¿Guardar los cambios?")
	if err != nil || !ok {
		s.ctrl.CancelEdit()
		return err
	}

	if err := s.ctrl.CommitEdit(ctx); err != nil {
		return s.fail(err)
	}
	fmt.Fprintln(s.out, "Cambios guardados")
	return nil
}

func (s *screen) remove(ctx context.Context, id string) error {
	if err := s.refresh(ctx); err != nil {
		return err
	}
	rec, found := s.ctrl.Find(id)
	if !found {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}

	ok, err := s.confirm(rec, "¿Eliminar el registro?")
	if err != nil || !ok {
		return err
	}

	if err := s.ctrl.Remove(ctx, id); err != nil {
		return s.fail(err)
	}
	fmt.Fprintln(s.out, "Registro eliminado")
	return nil
}

// confirm показывает форму и спрашивает подтверждение; --yes пропускает вопрос.
func (s *screen) confirm(rec record.Record, question string) (bool, error) {
	if err := view.RenderForm(s.out, s.kind, rec); err != nil {
		return false, err
	}
	if s.assumeYes {
		return true, nil
	}
	ok, err := s.prompt.Confirm(question)
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintln(s.out, "Operación cancelada")
	}
	return ok, nil
}
