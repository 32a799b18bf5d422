package feed

import (
	"context"

	"golang.org/x/sync/errgroup"

	"uteqportal/internal/domain/record"
)

// Home - данные главного экрана.
type Home struct {
	Contents  []record.Record
	Magazines []Item
	News      []Item
}

// LoadHome загружает контент, журналы и новости параллельно.
// Первая ошибка отменяет остальные запросы.
func LoadHome(ctx context.Context, reader *Reader, contents record.Repository) (Home, error) {
	var home Home
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := contents.List(gctx, record.CollectionContents)
		if err != nil {
			return record.AsRepoError("list", record.CollectionContents, err)
		}
		home.Contents = list
		return nil
	})
	g.Go(func() error {
		items, err := reader.Magazines(gctx)
		home.Magazines = items
		return err
	})
	g.Go(func() error {
		items, err := reader.News(gctx)
		home.News = items
		return err
	})

	if err := g.Wait(); err != nil {
		return Home{}, err
	}
	return home, nil
}

// Preview возвращает не более limit первых элементов.
func Preview[T any](items []T, limit int) []T {
	if len(items) <= limit {
		return items
	}
	return items[:limit]
}
