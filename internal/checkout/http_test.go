package checkout_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ImirStore/internal/account"
	"ImirStore/internal/cart"
	"ImirStore/internal/catalog"
	"ImirStore/internal/checkout"
)

type fixture struct {
	ts    *httptest.Server
	jwt   *account.TokenMaker
	cart  *cart.Store
	token string
}

func newCheckoutTS(t *testing.T) fixture {
	t.Helper()

	jwt := account.NewTokenMaker("test-secret")
	cartStore := cart.NewStore(cart.NewMemKV())

	cartSrv := &cart.Server{
		Store:   cartStore,
		Catalog: catalog.NewSeededStore(),
		Log:     zap.NewNop(),
	}
	checkoutSrv := &checkout.Server{
		Cart:   cartStore,
		Orders: checkout.NewMemStore(),
		Log:    zap.NewNop(),
	}

	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(cart.RequireSession(jwt))
		pr.Mount("/cart", cartSrv.CartRoutes())
		pr.Mount("/checkout", checkoutSrv.CheckoutRoutes())
		pr.Mount("/orders", checkoutSrv.OrderRoutes())
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	tok, err := jwt.New("s_buyer", "", account.RoleGuest, time.Hour)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	return fixture{ts: ts, jwt: jwt, cart: cartStore, token: tok}
}

func (f fixture) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, f.ts.URL+path, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp.StatusCode
}

func checkoutBody() map[string]any {
	return map[string]any{
		"email": "buyer@example.com",
		"phone": "+1 555 0100",
		"address": map[string]any{
			"first_name": "A",
			"last_name":  "B",
			"street":     "1 Main St",
			"city":       "Springfield",
			"zip":        "12345",
		},
	}
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	f := newCheckoutTS(t)

	status := f.do(t, http.MethodPost, "/checkout", f.token, checkoutBody(), nil)
	if status != http.StatusBadRequest {
		t.Fatalf("empty cart checkout: status=%d, want 400", status)
	}
}

func TestCheckout_ConfirmsOrderAndClearsCart(t *testing.T) {
	f := newCheckoutTS(t)

	// Eternity Band twice plus Solitaire Pendant: subtotal 373, free delivery.
	f.do(t, http.MethodPost, "/cart/items", f.token, map[string]any{"product_id": "1", "quantity": 2}, nil)
	f.do(t, http.MethodPost, "/cart/items", f.token, map[string]any{"product_id": "3"}, nil)

	var o checkout.Order
	status := f.do(t, http.MethodPost, "/checkout", f.token, checkoutBody(), &o)
	if status != http.StatusCreated {
		t.Fatalf("checkout: status=%d, want 201", status)
	}
	if o.Subtotal != 373 || o.DeliveryCost != 0 || o.Total != 373 {
		t.Fatalf("order totals: subtotal=%d delivery=%d total=%d", o.Subtotal, o.DeliveryCost, o.Total)
	}
	if len(o.Items) != 2 || o.Status != "confirmed" || o.ID == "" {
		t.Fatalf("order shape: %+v", o)
	}

	if snap := f.cart.Cart("s_buyer"); len(snap.Items) != 0 {
		t.Fatalf("cart not cleared after checkout: %+v", snap.Items)
	}

	var got checkout.Order
	status = f.do(t, http.MethodGet, "/orders/"+o.ID, f.token, nil, &got)
	if status != http.StatusOK || got.ID != o.ID {
		t.Fatalf("get order: status=%d id=%s", status, got.ID)
	}
}

func TestCheckout_ExpressDeliveryFlatFee(t *testing.T) {
	f := newCheckoutTS(t)

	f.do(t, http.MethodPost, "/cart/items", f.token, map[string]any{"product_id": "6"}, nil) // 320

	body := checkoutBody()
	body["delivery"] = "express"

	var o checkout.Order
	status := f.do(t, http.MethodPost, "/checkout", f.token, body, &o)
	if status != http.StatusCreated {
		t.Fatalf("checkout: status=%d", status)
	}
	if o.DeliveryCost != 25 || o.Total != 345 {
		t.Fatalf("express: delivery=%d total=%d, want 25/345", o.DeliveryCost, o.Total)
	}
}

func TestCheckout_BadDeliveryMethod(t *testing.T) {
	f := newCheckoutTS(t)
	f.do(t, http.MethodPost, "/cart/items", f.token, map[string]any{"product_id": "1"}, nil)

	body := checkoutBody()
	body["delivery"] = "teleport"

	if status := f.do(t, http.MethodPost, "/checkout", f.token, body, nil); status != http.StatusBadRequest {
		t.Fatalf("bad delivery: status=%d, want 400", status)
	}
}

func TestOrders_OwnershipEnforced(t *testing.T) {
	f := newCheckoutTS(t)

	f.do(t, http.MethodPost, "/cart/items", f.token, map[string]any{"product_id": "1"}, nil)

	var o checkout.Order
	if status := f.do(t, http.MethodPost, "/checkout", f.token, checkoutBody(), &o); status != http.StatusCreated {
		t.Fatalf("checkout: status=%d", status)
	}

	other, err := f.jwt.New("s_stranger", "", account.RoleGuest, time.Hour)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	if status := f.do(t, http.MethodGet, "/orders/"+o.ID, other, nil, nil); status != http.StatusForbidden {
		t.Fatalf("foreign order read: status=%d, want 403", status)
	}
	if status := f.do(t, http.MethodGet, "/orders/o_missing", f.token, nil, nil); status != http.StatusNotFound {
		t.Fatalf("missing order: status=%d, want 404", status)
	}
}
