package multimedia

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"uteqportal/internal/domain/record"
	"uteqportal/internal/domain/validator"
)

type Servicer interface {
	List(ctx context.Context) ([]Multimedia, error)
	Create(ctx context.Context, m Multimedia) (int64, error)
	Update(ctx context.Context, m Multimedia) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "multimedia_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Multimedia, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list multimedia: %w", err)
	}
	if items == nil {
		items = []Multimedia{}
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, m Multimedia) (int64, error) {
	if err := validate(m); err != nil {
		s.log.Debug("validation failed", "error", err)
		return 0, err
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) Update(ctx context.Context, m Multimedia) error {
	if m.ID <= 0 {
		return ErrNotFound
	}
	if err := validate(m); err != nil {
		s.log.Debug("validation failed", "id", m.ID, "error", err)
		return err
	}
	return s.repo.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// validate применяет те же правила, что и клиентская форма мультимедиа.
func validate(m Multimedia) error {
	err := record.MultimediaKind.Validate(record.Fields{
		record.FieldContentTitle:       m.Title,
		record.FieldContentDescription: m.Description,
		record.FieldContentURL:         m.URL,
	})
	if err == nil {
		return nil
	}

	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return &DomainError{Err: ErrInvalidInput, Message: verr.Message(), Fields: verr.Fields()}
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
