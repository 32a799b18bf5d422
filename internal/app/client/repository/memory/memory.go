// Package memory - хранилище коллекций в памяти процесса.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"uteqportal/internal/domain/record"
)

// Storage - временное in-memory хранилище, порядок вставки сохраняется
type Storage struct {
	mu          sync.RWMutex
	collections map[string][]record.Record
}

func New() *Storage {
	return &Storage{
		collections: make(map[string][]record.Record),
	}
}

func (s *Storage) List(_ context.Context, collection string) ([]record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.collections[collection]
	out := make([]record.Record, len(recs))
	for i, r := range recs {
		out[i] = r.Clone()
	}
	return out, nil
}

func (s *Storage) Create(_ context.Context, collection string, rec record.Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.collections[collection] = append(s.collections[collection], record.Record{ID: id, Fields: rec.Fields.Clone()})
	return id, nil
}

func (s *Storage) Update(_ context.Context, collection, id string, patch record.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(collection, id)
	if i < 0 {
		return record.NewRepoError("update", collection, record.CauseNotFound, nil)
	}
	fields := s.collections[collection][i].Fields
	for k, v := range patch {
		fields[k] = v
	}
	return nil
}

func (s *Storage) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(collection, id)
	if i < 0 {
		return record.NewRepoError("delete", collection, record.CauseNotFound, nil)
	}
	s.collections[collection] = slices.Delete(s.collections[collection], i, i+1)
	return nil
}

func (s *Storage) indexOf(collection, id string) int {
	return slices.IndexFunc(s.collections[collection], func(r record.Record) bool { return r.ID == id })
}
