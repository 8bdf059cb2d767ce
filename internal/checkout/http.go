package checkout

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ImirStore/internal/cart"
	"ImirStore/pkg/kit"
)

const maxCheckoutBody = 1 << 20

type Server struct {
	Cart   *cart.Store
	Orders Store
	Log    *zap.Logger
}

// CheckoutRoutes expects to be mounted at /checkout behind
// cart.RequireSession.
func (s *Server) CheckoutRoutes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.create)
	return r
}

// OrderRoutes expects to be mounted at /orders behind cart.RequireSession.
func (s *Server) OrderRoutes() http.Handler {
	r := chi.NewRouter()
	r.Get("/{id}", s.get)
	return r
}

type checkoutReq struct {
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Address  Address  `json:"address"`
	Delivery Delivery `json:"delivery"`
}

// create confirms the session's cart as an order and clears the cart. An
// empty cart has nothing to check out and is rejected before any mutation.
func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	sess, ok := cart.SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	req, err := decodeCheckoutRequest(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Email == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email required", nil)
		return
	}
	switch req.Delivery {
	case "":
		req.Delivery = DeliveryStandard
	case DeliveryStandard, DeliveryExpress:
	default:
		kit.WriteError(w, r, http.StatusBadRequest, "bad delivery method", map[string]any{"delivery": req.Delivery})
		return
	}

	snap := s.Cart.Cart(sess.ID)
	if len(snap.Items) == 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "nothing to checkout", nil)
		return
	}

	delivery := deliveryCost(req.Delivery, snap.Subtotal)
	o := Order{
		ID:           "o_" + uuid.NewString(),
		SessionID:    sess.ID,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Delivery:     req.Delivery,
		Items:        snap.Items,
		Subtotal:     snap.Subtotal,
		DeliveryCost: delivery,
		Total:        snap.Subtotal + delivery,
		Status:       "confirmed",
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Orders.Create(r.Context(), o); err != nil {
		s.serverError(w, r, "create order failed", err)
		return
	}

	if err := s.Cart.ClearCart(sess.ID); err != nil {
		s.serverError(w, r, "clear cart failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, o)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	sess, ok := cart.SessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	id := chi.URLParam(r, "id")
	o, found, err := s.Orders.Get(r.Context(), id)
	if err != nil {
		s.serverError(w, r, "get order failed", err)
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	if o.SessionID != sess.ID {
		kit.WriteError(w, r, http.StatusForbidden, "forbidden", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, o)
}

func decodeCheckoutRequest(w http.ResponseWriter, r *http.Request) (checkoutReq, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCheckoutBody)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req checkoutReq
	if err := dec.Decode(&req); err != nil {
		return checkoutReq{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return checkoutReq{}, errors.New("extra data after json object")
	}

	return req, nil
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
