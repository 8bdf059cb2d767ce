package catalog

import "context"

// Store serves the read-only product catalog. List returns products in
// catalog (display) order; lookups report absence as ok=false, never an error.
type Store interface {
	List(ctx context.Context) ([]Product, error)
	BySlug(ctx context.Context, slug string) (Product, bool, error)
	ByID(ctx context.Context, id string) (Product, bool, error)
	Ping(ctx context.Context) error
}
