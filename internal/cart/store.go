package cart

import (
	"context"
	"encoding/json"
	"sync"

	"ImirStore/internal/catalog"
)

// Storage keys mirror the storefront's local-storage layout: one cart blob
// and one wishlist blob per session.
const (
	cartKeyPrefix     = "imir-cart:"
	wishlistKeyPrefix = "imir-wishlist:"
)

type state struct {
	items      []Item
	wishlist   []string
	drawerOpen bool
}

// Store owns cart and wishlist state for every session. All mutation goes
// through its methods; readers only ever see snapshots. Every mutation
// rewrites the session's persisted mirror.
type Store struct {
	mu       sync.Mutex
	kv       KV
	sessions map[string]*state
}

func NewStore(kv KV) *Store {
	return &Store{
		kv:       kv,
		sessions: make(map[string]*state),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}

// AddToCart merges into an existing line for the same product or appends a
// new one. Quantities below 1 count as 1. Stock is not checked here; the
// storefront disables the control for sold-out pieces.
func (s *Store) AddToCart(sid string, p catalog.Product, qty int) error {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sid)
	merged := false
	for i := range st.items {
		if st.items[i].Product.ID == p.ID {
			st.items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		st.items = append(st.items, Item{Product: p, Quantity: qty})
	}
	st.drawerOpen = true

	return persistState(s.kv, sid, st)
}

// RemoveFromCart drops the line for productID. Absent ids are a no-op.
func (s *Store) RemoveFromCart(sid, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sid)
	st.items = removeLine(st.items, productID)

	return persistState(s.kv, sid, st)
}

// UpdateQuantity replaces the line's quantity. Zero or negative removes the
// line; an absent product id is a no-op.
func (s *Store) UpdateQuantity(sid, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sid)
	if qty <= 0 {
		st.items = removeLine(st.items, productID)
	} else {
		for i := range st.items {
			if st.items[i].Product.ID == productID {
				st.items[i].Quantity = qty
				break
			}
		}
	}

	return persistState(s.kv, sid, st)
}

func (s *Store) ClearCart(sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sid)
	st.items = nil

	return persistState(s.kv, sid, st)
}

// ToggleWishlist adds the id when absent and removes it when present, so
// two calls in a row cancel out.
func (s *Store) ToggleWishlist(sid, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sid)

	kept := st.wishlist[:0]
	found := false
	for _, id := range st.wishlist {
		if id == productID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if found {
		st.wishlist = kept
	} else {
		st.wishlist = append(st.wishlist, productID)
	}

	return !found, persistState(s.kv, sid, st)
}

func (s *Store) IsInWishlist(sid, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.session(sid).wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// SetDrawerOpen records the transient drawer signal. It is UI state and is
// deliberately not persisted.
func (s *Store) SetDrawerOpen(sid string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sid).drawerOpen = open
}

// Cart returns the session's snapshot with freshly derived totals.
func (s *Store) Cart(sid string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sid)
	return snapshotOf(st.items, st.drawerOpen)
}

// Wishlist returns the wishlist ids in insertion order.
func (s *Store) Wishlist(sid string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sid)
	out := make([]string, len(st.wishlist))
	copy(out, st.wishlist)
	return out
}

// session returns the cached state for sid, loading the persisted mirror on
// first access. Callers must hold s.mu.
func (s *Store) session(sid string) *state {
	if st, ok := s.sessions[sid]; ok {
		return st
	}
	st := loadState(s.kv, sid)
	s.sessions[sid] = st
	return st
}

// loadState reads both blobs for sid. Missing, unreadable or unparseable
// data degrades to the empty collection; corruption is never fatal.
func loadState(kv KV, sid string) *state {
	st := &state{}

	if raw, ok, err := kv.Get(cartKeyPrefix + sid); err == nil && ok {
		var items []Item
		if json.Unmarshal(raw, &items) == nil {
			st.items = sanitizeItems(items)
		}
	}

	if raw, ok, err := kv.Get(wishlistKeyPrefix + sid); err == nil && ok {
		var ids []string
		if json.Unmarshal(raw, &ids) == nil {
			st.wishlist = dedupe(ids)
		}
	}

	return st
}

// persistState rewrites both blobs for sid wholesale.
func persistState(kv KV, sid string, st *state) error {
	items := st.items
	if items == nil {
		items = []Item{}
	}
	rawItems, err := json.Marshal(items)
	if err != nil {
		return err
	}

	wishlist := st.wishlist
	if wishlist == nil {
		wishlist = []string{}
	}
	rawWishlist, err := json.Marshal(wishlist)
	if err != nil {
		return err
	}

	if err := kv.Set(cartKeyPrefix+sid, rawItems); err != nil {
		return err
	}
	return kv.Set(wishlistKeyPrefix+sid, rawWishlist)
}

func removeLine(items []Item, productID string) []Item {
	kept := items[:0]
	for _, it := range items {
		if it.Product.ID == productID {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}

// sanitizeItems restores the line-item invariants on loaded data: one line
// per product id, every quantity at least 1.
func sanitizeItems(items []Item) []Item {
	var out []Item
	index := make(map[string]int)
	for _, it := range items {
		if it.Product.ID == "" || it.Quantity < 1 {
			continue
		}
		if i, ok := index[it.Product.ID]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		index[it.Product.ID] = len(out)
		out = append(out, it)
	}
	return out
}

func dedupe(ids []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
