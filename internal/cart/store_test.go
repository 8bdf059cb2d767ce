package cart

import (
	"reflect"
	"testing"

	"ImirStore/internal/catalog"
)

const sid = "s_test"

func product(id string, price int64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     "Piece " + id,
		Slug:     "piece-" + id,
		Price:    price,
		Category: catalog.CategoryRings,
		Material: catalog.MaterialSilver925,
		Images:   []string{"/images/products/piece-" + id + ".jpg"},
		InStock:  true,
	}
}

func mustAdd(t *testing.T, s *Store, p catalog.Product, qty int) {
	t.Helper()
	if err := s.AddToCart(sid, p, qty); err != nil {
		t.Fatalf("AddToCart(%s, %d): %v", p.ID, qty, err)
	}
}

func TestAddToCart_AggregatesQuantityPerProduct(t *testing.T) {
	s := NewStore(NewMemKV())
	p := product("a", 10)

	mustAdd(t, s, p, 2)
	mustAdd(t, s, p, 3)
	mustAdd(t, s, p, 1)

	snap := s.Cart(sid)
	if len(snap.Items) != 1 {
		t.Fatalf("got %d lines, want 1", len(snap.Items))
	}
	if snap.Items[0].Quantity != 6 || snap.Count != 6 {
		t.Fatalf("quantity=%d count=%d, want 6", snap.Items[0].Quantity, snap.Count)
	}
}

func TestAddToCart_AppendsInInsertionOrder(t *testing.T) {
	s := NewStore(NewMemKV())

	mustAdd(t, s, product("a", 10), 1)
	mustAdd(t, s, product("b", 20), 1)
	mustAdd(t, s, product("c", 30), 1)
	mustAdd(t, s, product("b", 20), 1)

	snap := s.Cart(sid)
	got := []string{}
	for _, it := range snap.Items {
		got = append(got, it.Product.ID)
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("line order %v, want [a b c]", got)
	}
}

func TestAddToCart_IgnoresStockFlag(t *testing.T) {
	s := NewStore(NewMemKV())
	soldOut := product("x", 72)
	soldOut.InStock = false

	mustAdd(t, s, soldOut, 4)

	if snap := s.Cart(sid); snap.Count != 4 {
		t.Fatalf("count=%d, want 4", snap.Count)
	}
}

func TestAddToCart_QuantityBelowOneDefaultsToOne(t *testing.T) {
	s := NewStore(NewMemKV())

	mustAdd(t, s, product("a", 10), 0)

	if snap := s.Cart(sid); snap.Count != 1 {
		t.Fatalf("count=%d, want 1", snap.Count)
	}
}

func TestUpdateQuantity_Replaces(t *testing.T) {
	s := NewStore(NewMemKV())
	mustAdd(t, s, product("a", 10), 2)

	if err := s.UpdateQuantity(sid, "a", 7); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}

	if snap := s.Cart(sid); snap.Count != 7 {
		t.Fatalf("count=%d, want 7 (set, not added)", snap.Count)
	}
}

func TestUpdateQuantity_ZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		s := NewStore(NewMemKV())
		mustAdd(t, s, product("a", 10), 2)

		if err := s.UpdateQuantity(sid, "a", qty); err != nil {
			t.Fatalf("UpdateQuantity(%d): %v", qty, err)
		}
		if snap := s.Cart(sid); len(snap.Items) != 0 {
			t.Fatalf("qty=%d: cart has %d lines, want 0", qty, len(snap.Items))
		}
	}
}

func TestUpdateQuantity_AbsentProductIsNoOp(t *testing.T) {
	s := NewStore(NewMemKV())
	mustAdd(t, s, product("a", 10), 2)

	if err := s.UpdateQuantity(sid, "ghost", 5); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}

	snap := s.Cart(sid)
	if len(snap.Items) != 1 || snap.Items[0].Quantity != 2 {
		t.Fatalf("cart changed by absent-id update: %+v", snap.Items)
	}
}

func TestRemoveFromCart_AbsentIsNoOp(t *testing.T) {
	s := NewStore(NewMemKV())
	mustAdd(t, s, product("a", 10), 2)
	before := s.Cart(sid)

	if err := s.RemoveFromCart(sid, "ghost"); err != nil {
		t.Fatalf("RemoveFromCart: %v", err)
	}

	after := s.Cart(sid)
	if !reflect.DeepEqual(before.Items, after.Items) {
		t.Fatalf("cart changed: before=%+v after=%+v", before.Items, after.Items)
	}
}

func TestClearCart(t *testing.T) {
	s := NewStore(NewMemKV())
	mustAdd(t, s, product("a", 10), 2)
	mustAdd(t, s, product("b", 20), 1)

	if err := s.ClearCart(sid); err != nil {
		t.Fatalf("ClearCart: %v", err)
	}

	snap := s.Cart(sid)
	if len(snap.Items) != 0 || snap.Count != 0 || snap.Subtotal != 0 {
		t.Fatalf("cart not empty after clear: %+v", snap)
	}
}

func TestToggleWishlist_TwiceRestoresOriginalSet(t *testing.T) {
	s := NewStore(NewMemKV())

	if _, err := s.ToggleWishlist(sid, "keep"); err != nil {
		t.Fatalf("ToggleWishlist: %v", err)
	}
	before := s.Wishlist(sid)

	added, err := s.ToggleWishlist(sid, "x")
	if err != nil || !added {
		t.Fatalf("first toggle: added=%v err=%v", added, err)
	}
	added, err = s.ToggleWishlist(sid, "x")
	if err != nil || added {
		t.Fatalf("second toggle: added=%v err=%v", added, err)
	}

	after := s.Wishlist(sid)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("wishlist not restored: before=%v after=%v", before, after)
	}
	if s.IsInWishlist(sid, "x") {
		t.Fatalf("x still reported in wishlist")
	}
	if !s.IsInWishlist(sid, "keep") {
		t.Fatalf("keep lost from wishlist")
	}
}

func TestSubtotal_SumOfPriceTimesQuantity(t *testing.T) {
	s := NewStore(NewMemKV())
	mustAdd(t, s, product("a", 89), 2)
	mustAdd(t, s, product("b", 195), 1)

	snap := s.Cart(sid)
	if snap.Subtotal != 373 {
		t.Fatalf("subtotal=%d, want 373", snap.Subtotal)
	}
	if snap.DeliveryCost != 0 {
		t.Fatalf("delivery=%d, want 0 above threshold", snap.DeliveryCost)
	}
	if snap.Total != snap.Subtotal+snap.DeliveryCost {
		t.Fatalf("total=%d, want subtotal+delivery=%d", snap.Total, snap.Subtotal+snap.DeliveryCost)
	}
}

func TestDeliveryCost_Boundary(t *testing.T) {
	cases := []struct {
		subtotal int64
		want     int64
	}{
		{0, 12},
		{149, 12},
		{150, 12}, // fee still applies at exactly 150
		{151, 0},
		{373, 0},
	}

	for _, c := range cases {
		if got := DeliveryCost(c.subtotal); got != c.want {
			t.Fatalf("DeliveryCost(%d)=%d, want %d", c.subtotal, got, c.want)
		}
	}
}

func TestDeliveryCost_BoundaryThroughCart(t *testing.T) {
	s := NewStore(NewMemKV())
	mustAdd(t, s, product("a", 150), 1)

	if snap := s.Cart(sid); snap.DeliveryCost != 12 || snap.Total != 162 {
		t.Fatalf("at 150: delivery=%d total=%d, want 12/162", snap.DeliveryCost, snap.Total)
	}

	s2 := NewStore(NewMemKV())
	mustAdd(t, s2, product("b", 151), 1)

	if snap := s2.Cart(sid); snap.DeliveryCost != 0 || snap.Total != 151 {
		t.Fatalf("at 151: delivery=%d total=%d, want 0/151", snap.DeliveryCost, snap.Total)
	}
}

func TestDrawerSignal_SetByAddNotPersisted(t *testing.T) {
	kv := NewMemKV()
	s := NewStore(kv)

	mustAdd(t, s, product("a", 10), 1)
	if !s.Cart(sid).DrawerOpen {
		t.Fatalf("drawer not open after add")
	}

	s.SetDrawerOpen(sid, false)
	if s.Cart(sid).DrawerOpen {
		t.Fatalf("drawer still open after acknowledge")
	}

	// A fresh store over the same mirror starts with the drawer closed.
	mustAdd(t, s, product("b", 10), 1)
	reloaded := NewStore(kv)
	if reloaded.Cart(sid).DrawerOpen {
		t.Fatalf("drawer flag leaked into persisted state")
	}
}

func TestPersistence_RoundTripReproducesState(t *testing.T) {
	kv := NewMemKV()
	s := NewStore(kv)

	mustAdd(t, s, product("a", 89), 2)
	mustAdd(t, s, product("b", 195), 1)
	mustAdd(t, s, product("a", 89), 1)
	if _, err := s.ToggleWishlist(sid, "b"); err != nil {
		t.Fatalf("ToggleWishlist: %v", err)
	}
	if _, err := s.ToggleWishlist(sid, "c"); err != nil {
		t.Fatalf("ToggleWishlist: %v", err)
	}

	reloaded := NewStore(kv)

	want := s.Cart(sid)
	got := reloaded.Cart(sid)
	if !reflect.DeepEqual(want.Items, got.Items) {
		t.Fatalf("items differ after reload:\nwant %+v\ngot  %+v", want.Items, got.Items)
	}
	if got.Subtotal != want.Subtotal || got.Count != want.Count {
		t.Fatalf("totals differ after reload: %+v vs %+v", got, want)
	}
	if !reflect.DeepEqual(s.Wishlist(sid), reloaded.Wishlist(sid)) {
		t.Fatalf("wishlist differs after reload: %v vs %v", s.Wishlist(sid), reloaded.Wishlist(sid))
	}
}

func TestLoad_CorruptDataFallsBackToEmpty(t *testing.T) {
	kv := NewMemKV()
	if err := kv.Set(cartKeyPrefix+sid, []byte("{definitely not json")); err != nil {
		t.Fatalf("seed corrupt cart: %v", err)
	}
	if err := kv.Set(wishlistKeyPrefix+sid, []byte("42")); err != nil {
		t.Fatalf("seed corrupt wishlist: %v", err)
	}

	s := NewStore(kv)
	if snap := s.Cart(sid); len(snap.Items) != 0 {
		t.Fatalf("corrupt cart not dropped: %+v", snap.Items)
	}
	if wl := s.Wishlist(sid); len(wl) != 0 {
		t.Fatalf("corrupt wishlist not dropped: %v", wl)
	}
}

func TestLoad_RestoresLineInvariants(t *testing.T) {
	kv := NewMemKV()
	raw := `[
		{"product":{"id":"a","price":10},"quantity":2},
		{"product":{"id":"a","price":10},"quantity":3},
		{"product":{"id":"b","price":5},"quantity":0},
		{"product":{"id":""},"quantity":1}
	]`
	if err := kv.Set(cartKeyPrefix+sid, []byte(raw)); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	s := NewStore(kv)
	snap := s.Cart(sid)
	if len(snap.Items) != 1 {
		t.Fatalf("got %d lines, want 1 merged line: %+v", len(snap.Items), snap.Items)
	}
	if snap.Items[0].Product.ID != "a" || snap.Items[0].Quantity != 5 {
		t.Fatalf("merged line wrong: %+v", snap.Items[0])
	}
}

func TestSessions_AreIndependent(t *testing.T) {
	s := NewStore(NewMemKV())

	if err := s.AddToCart("s_one", product("a", 10), 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	if snap := s.Cart("s_two"); len(snap.Items) != 0 {
		t.Fatalf("session leak: %+v", snap.Items)
	}
}
