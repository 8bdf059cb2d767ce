package checkout

import "context"

type Store interface {
	Create(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (Order, bool, error)
	Ping(ctx context.Context) error
}
