package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"uteqportal/internal/domain/record"
)

var (
	// ErrSuperseded - ответ устарел: после него был начат другой refresh
	// или подтверждена локальная мутация.
	ErrSuperseded = errors.New("response superseded by a newer request")
	// ErrClosed - контроллер закрыт, ответ отброшен
	ErrClosed = errors.New("controller closed")
	// ErrNoPendingEdit - нет открытой рабочей копии
	ErrNoPendingEdit = errors.New("no pending edit")
	// ErrReadOnlyField - id нельзя менять
	ErrReadOnlyField = errors.New("field is read-only")
)

// FieldID - имя, под которым id доступен в формах
const FieldID = "id"

// Controller хранит подтвержденный сервером список записей одной коллекции,
// рабочую копию редактируемой записи и статус. Мьютекс не удерживается
// во время вызова порта.
type Controller struct {
	repo record.Repository
	kind record.Kind
	log  *slog.Logger
	now  func() time.Time

	mu         sync.Mutex
	items      []record.Record
	pending    *record.Record
	editSeq    uint64
	status     Status
	lastErr    error
	generation uint64
	closed     bool
}

// New создает контроллер для типа записи kind.
func New(repo record.Repository, kind record.Kind, log *slog.Logger) *Controller {
	return &Controller{
		repo: repo,
		kind: kind,
		log:  log.With("component", "list_controller", "collection", kind.Collection),
		now:  time.Now,
	}
}

// Kind возвращает описание типа записей контроллера.
func (c *Controller) Kind() record.Kind {
	return c.kind
}

// Items возвращает копию списка; изменение результата не влияет на контроллер.
func (c *Controller) Items() []record.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneAll(c.items)
}

// Find возвращает копию записи по id.
func (c *Controller) Find(id string) (record.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return record.Record{}, false
	}
	return c.items[i].Clone(), true
}

// Pending возвращает копию рабочей копии, если редактирование открыто.
func (c *Controller) Pending() (record.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return record.Record{}, false
	}
	return c.pending.Clone(), true
}

// State возвращает текущий статус.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{Status: c.status, Err: c.lastErr}
}

// Refresh загружает коллекцию целиком. При ошибке список не очищается.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.generation++
	gen := c.generation
	c.setStatus(StatusLoading, nil)
	c.mu.Unlock()

	var records []record.Record
	err := c.invoke(ctx, "list", func() error {
		var err error
		records, err = c.repo.List(ctx, c.kind.Collection)
		return err
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.log.Debug("refresh response dropped after close", "generation", gen)
		return ErrClosed
	}
	if gen != c.generation {
		c.log.Debug("stale refresh response dropped", "generation", gen, "latest", c.generation)
		return ErrSuperseded
	}
	if err != nil {
		c.setStatus(StatusError, err)
		c.log.Error("failed to refresh list", "error", err)
		return err
	}

	c.items = c.dedupe(records)
	c.setStatus(StatusIdle, nil)
	c.log.Debug("list refreshed", "count", len(c.items))
	return nil
}

// BeginEdit открывает рабочую копию записи id. Возвращает false, если записи нет.
func (c *Controller) BeginEdit(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	cp := c.items[i].Clone()
	c.pending = &cp
	c.editSeq++
	return true
}

// SetField меняет одно поле рабочей копии.
func (c *Controller) SetField(field, value string) error {
	if field == FieldID {
		return ErrReadOnlyField
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return ErrNoPendingEdit
	}
	c.pending.Fields[field] = value
	return nil
}

// CancelEdit отбрасывает рабочую копию без обращения к порту.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}

// CommitEdit проверяет рабочую копию и сохраняет ее. При ошибке валидации
// возвращает *validator.ValidationError и порт не вызывается. При ошибке порта
// список и рабочая копия остаются как были.
func (c *Controller) CommitEdit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.pending == nil {
		c.mu.Unlock()
		return ErrNoPendingEdit
	}
	draft := c.pending.Clone()
	seq := c.editSeq
	c.mu.Unlock()

	if err := c.kind.Validate(draft.Fields); err != nil {
		c.log.Debug("validation failed", "id", draft.ID, "error", err)
		return err
	}

	fields, err := c.prepare(draft.Fields)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.setStatus(StatusSaving, nil)
	c.mu.Unlock()

	err = c.invoke(ctx, "update", func() error {
		return c.repo.Update(ctx, c.kind.Collection, draft.ID, fields.Clone())
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if err != nil {
		c.setStatus(StatusError, err)
		c.log.Error("failed to update record", "id", draft.ID, "error", err)
		return err
	}

	if i := c.indexOf(draft.ID); i >= 0 {
		c.items[i] = record.Record{ID: draft.ID, Fields: fields}
	}
	if c.pending != nil && c.editSeq == seq {
		c.pending = nil
	}
	c.generation++
	c.setStatus(StatusIdle, nil)
	c.log.Info("record updated", "id", draft.ID)
	return nil
}

// Create проверяет черновик, создает запись и вставляет ее в список
// согласно политике вставки типа.
func (c *Controller) Create(ctx context.Context, draft record.Fields) (record.Record, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return record.Record{}, ErrClosed
	}
	c.mu.Unlock()

	draft = draft.Clone()
	delete(draft, FieldID)

	if err := c.kind.Validate(draft); err != nil {
		c.log.Debug("validation failed", "error", err)
		return record.Record{}, err
	}

	fields, err := c.prepare(draft)
	if err != nil {
		return record.Record{}, err
	}
	// метка ставится до вызова порта, чтобы локальная запись совпадала с сохраненной
	if f := c.kind.StampField; f != "" && fields[f] == "" {
		fields[f] = record.FormatTime(c.now().UTC())
	}

	c.mu.Lock()
	c.setStatus(StatusSaving, nil)
	c.mu.Unlock()

	var id string
	err = c.invoke(ctx, "create", func() error {
		var err error
		id, err = c.repo.Create(ctx, c.kind.Collection, record.Record{Fields: fields.Clone()})
		return err
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return record.Record{}, ErrClosed
	}
	if err == nil && id == "" {
		err = record.NewRepoError("create", c.kind.Collection, record.CauseMalformedResponse,
			errors.New("empty id in response"))
	}
	if err == nil && c.indexOf(id) >= 0 {
		err = record.NewRepoError("create", c.kind.Collection, record.CauseMalformedResponse,
			fmt.Errorf("duplicate id %q in response", id))
	}
	if err != nil {
		c.setStatus(StatusError, err)
		c.log.Error("failed to create record", "error", err)
		return record.Record{}, err
	}

	created := record.Record{ID: id, Fields: fields}
	switch c.kind.Insert {
	case record.Prepend:
		c.items = slices.Insert(c.items, 0, created)
	default:
		c.items = append(c.items, created)
	}
	c.generation++
	c.setStatus(StatusIdle, nil)
	c.log.Info("record created", "id", id)
	return created.Clone(), nil
}

// Remove удаляет запись. Вызывается только после подтверждения пользователем.
func (c *Controller) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.setStatus(StatusSaving, nil)
	c.mu.Unlock()

	err := c.invoke(ctx, "delete", func() error {
		return c.repo.Delete(ctx, c.kind.Collection, id)
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if err != nil {
		c.setStatus(StatusError, err)
		c.log.Error("failed to delete record", "id", id, "error", err)
		return err
	}

	if i := c.indexOf(id); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}
	if c.pending != nil && c.pending.ID == id {
		c.pending = nil
	}
	c.generation++
	c.setStatus(StatusIdle, nil)
	c.log.Info("record deleted", "id", id)
	return nil
}

// Close завершает работу: ответы, пришедшие позже, отбрасываются.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.pending = nil
}

// invoke вызывает порт и приводит любой сбой, включая панику, к *record.RepoError.
func (c *Controller) invoke(ctx context.Context, op string, call func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("repository panicked", "op", op, "panic", r)
			err = record.NewRepoError(op, c.kind.Collection, record.CauseMalformedResponse,
				fmt.Errorf("panic: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return record.AsRepoError(op, c.kind.Collection, err)
	}
	if err := call(); err != nil {
		return record.AsRepoError(op, c.kind.Collection, err)
	}
	return nil
}

func (c *Controller) prepare(fields record.Fields) (record.Fields, error) {
	if c.kind.Prepare == nil {
		return fields.Clone(), nil
	}
	out, err := c.kind.Prepare(fields.Clone())
	if err != nil {
		return nil, fmt.Errorf("prepare %s: %w", c.kind.Name, err)
	}
	return out, nil
}

func (c *Controller) dedupe(records []record.Record) []record.Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]record.Record, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.ID]; ok {
			c.log.Warn("duplicate id in list response", "id", r.ID)
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r.Clone())
	}
	return out
}

func (c *Controller) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(r record.Record) bool { return r.ID == id })
}

func (c *Controller) setStatus(s Status, err error) {
	c.status = s
	c.lastErr = err
}

func cloneAll(records []record.Record) []record.Record {
	out := make([]record.Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
