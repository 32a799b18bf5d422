package feed

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"uteqportal/internal/domain/validator"
)

var (
	ErrUnknownSection = errors.New("unknown feed section")
	ErrInvalidItem    = errors.New("invalid feed item")
)

type Servicer interface {
	List(ctx context.Context, section string) ([]Item, error)
	Publish(ctx context.Context, it Item) (int64, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "feed_service"),
	}
}

func (s *Service) List(ctx context.Context, section string) ([]Item, error) {
	if !validSection(section) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	items, err := s.repo.ListBySection(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", section, err)
	}
	for i := range items {
		if items[i].Tags == nil {
			items[i].Tags = []Tag{}
		}
	}
	if items == nil {
		items = []Item{}
	}

	s.log.Debug("feed listed", "section", section, "count", len(items))
	return items, nil
}

// Publish добавляет элемент в ленту; нужны заголовок и корректная ссылка.
func (s *Service) Publish(ctx context.Context, it Item) (int64, error) {
	if !validSection(it.Section) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSection, it.Section)
	}
	if !validator.RequiredNonEmpty(it.Title) || !validator.IsWellFormedURL(it.URL) {
		return 0, ErrInvalidItem
	}
	if it.Cover != "" && !validator.IsWellFormedURL(it.Cover) {
		return 0, ErrInvalidItem
	}

	id, err := s.repo.Add(ctx, it)
	if err != nil {
		return 0, fmt.Errorf("publish %s: %w", it.Section, err)
	}
	s.log.Info("feed item published", "section", it.Section, "id", id)
	return id, nil
}

func validSection(section string) bool {
	return section == SectionNews || section == SectionMagazines
}
