package record

import (
	"context"
)

// Repository - порт к удаленному хранилищу коллекций (документная БД или REST).
// Повторов порт не делает, решение за вызывающим.
type Repository interface {
	List(ctx context.Context, collection string) ([]Record, error)
	Create(ctx context.Context, collection string, rec Record) (string, error)
	Update(ctx context.Context, collection, id string, patch Fields) error
	Delete(ctx context.Context, collection, id string) error
}
