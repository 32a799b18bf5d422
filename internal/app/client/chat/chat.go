// Package chat - окно сообщений поверх контроллера списка.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"uteqportal/internal/app/client/controller"
	"uteqportal/internal/domain/record"
)

var ErrEmptyMessage = errors.New("mensaje vacío")

type Box struct {
	ctrl *controller.Controller
	now  func() time.Time
}

func New(repo record.Repository, log *slog.Logger) *Box {
	return &Box{
		ctrl: controller.New(repo, record.MessageKind, log.With("screen", "chat")),
		now:  time.Now,
	}
}

// Send добавляет сообщение в начало списка. Пустой после trim текст не отправляется.
func (b *Box) Send(ctx context.Context, text string) (record.Message, error) {
	if strings.TrimSpace(text) == "" {
		return record.Message{}, ErrEmptyMessage
	}

	rec, err := b.ctrl.Create(ctx, record.Fields{
		record.FieldMessageText:   text,
		record.FieldMessageSentAt: record.FormatTime(b.now().UTC()),
	})
	if err != nil {
		return record.Message{}, err
	}
	return record.MessageFromRecord(rec), nil
}

// Messages возвращает сообщения, новые первыми.
func (b *Box) Messages() []record.Message {
	items := b.ctrl.Items()
	out := make([]record.Message, 0, len(items))
	for _, it := range items {
		out = append(out, record.MessageFromRecord(it))
	}
	return out
}

func (b *Box) State() controller.State {
	return b.ctrl.State()
}

func (b *Box) Close() {
	b.ctrl.Close()
}
