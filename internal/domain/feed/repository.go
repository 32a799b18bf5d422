package feed

import "context"

type Repository interface {
	ListBySection(ctx context.Context, section string) ([]Item, error)
	Add(ctx context.Context, it Item) (int64, error)
}
