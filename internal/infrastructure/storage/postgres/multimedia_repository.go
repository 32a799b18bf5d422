package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"uteqportal/internal/domain/multimedia"
)

type MultimediaRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewMultimediaRepository(pool *pgxpool.Pool, log *slog.Logger) *MultimediaRepository {
	return &MultimediaRepository{
		pool: pool,
		log:  log.With("component", "multimedia_repository"),
	}
}

func (r *MultimediaRepository) List(ctx context.Context) ([]multimedia.Multimedia, error) {
	const query = `
		SELECT id, titulo, descripcion, url, created_at
		FROM multimedia
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list multimedia", "error", err)
		return nil, fmt.Errorf("list multimedia: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (multimedia.Multimedia, error) {
		var m multimedia.Multimedia
		err := row.Scan(&m.ID, &m.Title, &m.Description, &m.URL, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		r.log.Error("failed to scan multimedia", "error", err)
		return nil, fmt.Errorf("scan multimedia: %w", err)
	}
	return items, nil
}

func (r *MultimediaRepository) Create(ctx context.Context, m multimedia.Multimedia) (int64, error) {
	const query = `
		INSERT INTO multimedia (titulo, descripcion, url)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	if err := r.pool.QueryRow(ctx, query, m.Title, m.Description, m.URL).Scan(&id); err != nil {
		r.log.Error("failed to create multimedia", "error", err)
		return 0, fmt.Errorf("create multimedia: %w", err)
	}
	return id, nil
}

func (r *MultimediaRepository) Update(ctx context.Context, m multimedia.Multimedia) error {
	const query = `
		UPDATE multimedia
		SET titulo = $2, descripcion = $3, url = $4, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, m.ID, m.Title, m.Description, m.URL)
	if err != nil {
		r.log.Error("failed to update multimedia", "id", m.ID, "error", err)
		return fmt.Errorf("update multimedia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return multimedia.ErrNotFound
	}
	return nil
}

func (r *MultimediaRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM multimedia WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete multimedia", "id", id, "error", err)
		return fmt.Errorf("delete multimedia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return multimedia.ErrNotFound
	}
	return nil
}
