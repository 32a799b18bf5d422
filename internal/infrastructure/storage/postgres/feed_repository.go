package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"uteqportal/internal/domain/feed"
)

type FeedRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewFeedRepository(pool *pgxpool.Pool, log *slog.Logger) *FeedRepository {
	return &FeedRepository{
		pool: pool,
		log:  log.With("component", "feed_repository"),
	}
}

// ListBySection возвращает элементы ленты, новые первыми.
func (r *FeedRepository) ListBySection(ctx context.Context, section string) ([]feed.Item, error) {
	const query = `
		SELECT id, section, titulo, portada, url, published, tags
		FROM feed_items
		WHERE section = $1
		ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, section)
	if err != nil {
		r.log.Error("failed to list feed", "section", section, "error", err)
		return nil, fmt.Errorf("list feed: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (feed.Item, error) {
		var (
			it   feed.Item
			tags []string
		)
		if err := row.Scan(&it.ID, &it.Section, &it.Title, &it.Cover, &it.URL, &it.Date, &tags); err != nil {
			return it, err
		}
		it.Tags = toTags(tags)
		return it, nil
	})
	if err != nil {
		r.log.Error("failed to scan feed", "section", section, "error", err)
		return nil, fmt.Errorf("scan feed: %w", err)
	}
	return items, nil
}

// Add публикует элемент ленты.
func (r *FeedRepository) Add(ctx context.Context, it feed.Item) (int64, error) {
	const query = `
		INSERT INTO feed_items (section, titulo, portada, url, published, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	tags := make([]string, len(it.Tags))
	for i, t := range it.Tags {
		tags[i] = t.Value
	}

	var id int64
	if err := r.pool.QueryRow(ctx, query, it.Section, it.Title, it.Cover, it.URL, it.Date, tags).Scan(&id); err != nil {
		r.log.Error("failed to add feed item", "section", it.Section, "error", err)
		return 0, fmt.Errorf("add feed item: %w", err)
	}
	return id, nil
}

func toTags(values []string) []feed.Tag {
	tags := make([]feed.Tag, len(values))
	for i, v := range values {
		tags[i] = feed.Tag{Value: v}
	}
	return tags
}
