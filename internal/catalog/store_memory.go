package catalog

import "context"

// MemStore holds the catalog fixed in memory. The curated slice preserves
// display order; the maps only index it. The catalog never mutates after
// construction, so no locking is needed.
type MemStore struct {
	products []Product
	bySlug   map[string]int
	byID     map[string]int
}

func NewMemStore(products []Product) *MemStore {
	s := &MemStore{
		products: products,
		bySlug:   make(map[string]int, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		s.bySlug[p.Slug] = i
		s.byID[p.ID] = i
	}
	return s
}

func NewSeededStore() *MemStore {
	return NewMemStore(Seed())
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemStore) BySlug(ctx context.Context, slug string) (Product, bool, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Product{}, false, nil
	}
	return s.products[i], true, nil
}

func (s *MemStore) ByID(ctx context.Context, id string) (Product, bool, error) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false, nil
	}
	return s.products[i], true, nil
}
