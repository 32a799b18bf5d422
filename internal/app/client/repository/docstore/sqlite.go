// Package docstore реализует Repository Port поверх таблицы документов SQLite:
// каждая запись - JSON-документ в именованной коллекции.
package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"uteqportal/internal/domain/record"
)

// DefaultStamps - поля серверной метки времени по коллекциям (из Kind.StampField)
var DefaultStamps = stampsOf(record.Kinds())

func stampsOf(kinds []record.Kind) map[string]string {
	stamps := make(map[string]string)
	for _, k := range kinds {
		if k.StampField != "" {
			stamps[k.Collection] = k.StampField
		}
	}
	return stamps
}

type Storage struct {
	db     *sql.DB
	log    *slog.Logger
	stamps map[string]string
	now    func() time.Time
}

func New(path string, log *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	s := &Storage{
		db:     db,
		log:    log.With("component", "docstore"),
		stamps: DefaultStamps,
		now:    time.Now,
	}

	if err := s.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return s, nil
}

func (s *Storage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			fields TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			UNIQUE (collection, id)
		);

		CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, seq);
	`)
	return err
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) List(ctx context.Context, collection string) ([]record.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, fields FROM documents
		WHERE collection = ?
		ORDER BY seq`, collection)
	if err != nil {
		return nil, s.fail("list", collection, err)
	}
	defer rows.Close()

	var out []record.Record
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, s.fail("list", collection, err)
		}
		fields, err := decode(raw)
		if err != nil {
			return nil, record.NewRepoError("list", collection, record.CauseMalformedResponse,
				fmt.Errorf("документ %s: %w", id, err))
		}
		out = append(out, record.Record{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("list", collection, err)
	}

	return out, nil
}

func (s *Storage) Create(ctx context.Context, collection string, rec record.Record) (string, error) {
	fields := rec.Fields.Clone()
	now := s.now().UTC()
	if stamp, ok := s.stamps[collection]; ok && fields[stamp] == "" {
		fields[stamp] = record.FormatTime(now)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return "", record.NewRepoError("create", collection, record.CauseMalformedResponse, err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, fields, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`, collection, id, string(raw), now, now)
	if err != nil {
		return "", s.fail("create", collection, err)
	}

	s.log.Debug("document created", "collection", collection, "id", id)
	return id, nil
}

// Update сливает patch с существующим документом, как updateDoc.
func (s *Storage) Update(ctx context.Context, collection, id string, patch record.Fields) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.fail("update", collection, err)
	}
	defer tx.Rollback()

	var raw string
	err = tx.QueryRowContext(ctx,
		`SELECT fields FROM documents WHERE collection = ? AND id = ?`, collection, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return record.NewRepoError("update", collection, record.CauseNotFound, fmt.Errorf("документ %s", id))
	}
	if err != nil {
		return s.fail("update", collection, err)
	}

	fields, err := decode(raw)
	if err != nil {
		return record.NewRepoError("update", collection, record.CauseMalformedResponse, err)
	}
	for k, v := range patch {
		fields[k] = v
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return record.NewRepoError("update", collection, record.CauseMalformedResponse, err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE documents SET fields = ?, updated_at = ?
		WHERE collection = ? AND id = ?`, string(merged), s.now().UTC(), collection, id); err != nil {
		return s.fail("update", collection, err)
	}

	if err := tx.Commit(); err != nil {
		return s.fail("update", collection, err)
	}
	return nil
}

// Delete удаляет документ; отсутствие документа ошибкой не считается.
func (s *Storage) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return s.fail("delete", collection, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		s.log.Debug("delete of missing document", "collection", collection, "id", id)
	}
	return nil
}

func (s *Storage) fail(op, collection string, err error) error {
	s.log.Error("docstore operation failed", "op", op, "collection", collection, "error", err)
	return record.AsRepoError(op, collection, networkCause(err))
}

// networkCause: сбой самого хранилища для клиента равнозначен недоступности БД.
func networkCause(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", record.ErrNetworkFailure, err)
}

func decode(raw string) (record.Fields, error) {
	fields := record.Fields{}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("ошибка парсинга документа: %w", err)
	}
	return fields, nil
}
