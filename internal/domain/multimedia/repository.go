package multimedia

import "context"

type Repository interface {
	List(ctx context.Context) ([]Multimedia, error)
	Create(ctx context.Context, m Multimedia) (int64, error)
	Update(ctx context.Context, m Multimedia) error
	Delete(ctx context.Context, id int64) error
}
