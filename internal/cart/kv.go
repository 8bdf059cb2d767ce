package cart

import (
	"context"
	"sync"
)

// KV is the persisted mirror for cart and wishlist blobs. Values are opaque
// and rewritten wholesale; a missing key is (nil, false, nil), not an error.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

type MemKV struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemKV() *MemKV {
	return &MemKV{m: make(map[string][]byte)}
}

func (s *MemKV) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *MemKV) Set(key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)

	s.mu.Lock()
	s.m[key] = v
	s.mu.Unlock()
	return nil
}

func (s *MemKV) Ping(ctx context.Context) error { return nil }

func (s *MemKV) Close() error { return nil }
