package checkout

import (
	"context"
	"sync"
)

type MemStore struct {
	mu sync.RWMutex
	m  map[string]Order
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]Order)}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, o Order) error {
	s.mu.Lock()
	s.m[o.ID] = o
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Order, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.m[id]
	return o, ok, nil
}
