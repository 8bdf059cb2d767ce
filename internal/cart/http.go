package cart

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ImirStore/internal/catalog"
	"ImirStore/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Store   *Store
	Catalog catalog.Store
	Log     *zap.Logger
}

// CartRoutes expects to be mounted at /cart behind RequireSession.
func (s *Server) CartRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.getCart)
	r.Delete("/", s.clearCart)
	r.Post("/items", s.addItem)
	r.Patch("/items/{productID}", s.updateItem)
	r.Delete("/items/{productID}", s.removeItem)
	r.Put("/drawer", s.setDrawer)

	return r
}

// WishlistRoutes expects to be mounted at /wishlist behind RequireSession.
func (s *Server) WishlistRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.getWishlist)
	r.Post("/{productID}", s.toggleWishlist)

	return r
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, s.Store.Cart(sess.ID))
}

type addItemReq struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	var req addItemReq
	if !s.decode(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "product_id required", nil)
		return
	}

	p, found, err := s.Catalog.ByID(r.Context(), req.ProductID)
	if err != nil {
		s.serverError(w, r, "catalog lookup failed", err)
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "unknown product", map[string]any{"product_id": req.ProductID})
		return
	}

	if err := s.Store.AddToCart(sess.ID, p, req.Quantity); err != nil {
		s.serverError(w, r, "persist cart failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, s.Store.Cart(sess.ID))
}

type updateItemReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	var req updateItemReq
	if !s.decode(w, r, &req) {
		return
	}

	pid := chi.URLParam(r, "productID")
	if err := s.Store.UpdateQuantity(sess.ID, pid, req.Quantity); err != nil {
		s.serverError(w, r, "persist cart failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, s.Store.Cart(sess.ID))
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	pid := chi.URLParam(r, "productID")
	if err := s.Store.RemoveFromCart(sess.ID, pid); err != nil {
		s.serverError(w, r, "persist cart failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, s.Store.Cart(sess.ID))
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	if err := s.Store.ClearCart(sess.ID); err != nil {
		s.serverError(w, r, "persist cart failed", err)
		return
	}

	kit.WriteNoContent(w)
}

type drawerReq struct {
	Open bool `json:"open"`
}

func (s *Server) setDrawer(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	var req drawerReq
	if !s.decode(w, r, &req) {
		return
	}

	s.Store.SetDrawerOpen(sess.ID, req.Open)
	kit.WriteNoContent(w)
}

type wishlistResp struct {
	ProductIDs []string          `json:"product_ids"`
	Products   []catalog.Product `json:"products"`
}

// getWishlist resolves the saved ids against the catalog so the wishlist
// page can render without a second round trip. Ids whose product vanished
// from the catalog are still reported in product_ids.
func (s *Server) getWishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	ids := s.Store.Wishlist(sess.ID)
	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		p, found, err := s.Catalog.ByID(r.Context(), id)
		if err != nil {
			s.serverError(w, r, "catalog lookup failed", err)
			return
		}
		if found {
			products = append(products, p)
		}
	}

	kit.WriteJSON(w, http.StatusOK, wishlistResp{ProductIDs: ids, Products: products})
}

type toggleResp struct {
	ProductID  string `json:"product_id"`
	InWishlist bool   `json:"in_wishlist"`
}

func (s *Server) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	pid := chi.URLParam(r, "productID")
	added, err := s.Store.ToggleWishlist(sess.ID, pid)
	if err != nil {
		s.serverError(w, r, "persist wishlist failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, toggleResp{ProductID: pid, InWishlist: added})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return false
	}
	return true
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
