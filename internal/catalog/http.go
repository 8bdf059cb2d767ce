package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ImirStore/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/products", s.list)
	r.Get("/products/{slug}", s.get)
	r.Get("/categories", s.categories)
	r.Get("/featured", s.featured)
	r.Get("/search", s.search)

	return r
}

type listResp struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

// list serves the catalog view: optional category/material/in_stock filters
// plus a sort, defaulting to newest like the storefront grid.
func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	f, ok := filterFromQuery(r)
	if !ok {
		kit.WriteError(w, r, http.StatusBadRequest, "bad filter", map[string]any{
			"category": r.URL.Query().Get("category"),
			"material": r.URL.Query().Get("material"),
			"sort":     r.URL.Query().Get("sort"),
		})
		return
	}

	products, err := s.Store.List(r.Context())
	if err != nil {
		s.storeError(w, r, "list products failed", err)
		return
	}

	view := Query(products, f)
	kit.WriteJSON(w, http.StatusOK, listResp{Products: view, Count: len(view)})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	p, ok, err := s.Store.BySlug(r.Context(), slug)
	if err != nil {
		s.storeError(w, r, "get product failed", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"slug": slug})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, Categories())
}

func (s *Server) featured(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.List(r.Context())
	if err != nil {
		s.storeError(w, r, "list products failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, Featured(products))
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.List(r.Context())
	if err != nil {
		s.storeError(w, r, "list products failed", err)
		return
	}

	matches := Search(products, r.URL.Query().Get("q"))
	if matches == nil {
		matches = []Product{}
	}
	kit.WriteJSON(w, http.StatusOK, matches)
}

func filterFromQuery(r *http.Request) (Filter, bool) {
	q := r.URL.Query()

	f := Filter{
		Category:    Category(q.Get("category")),
		Material:    Material(q.Get("material")),
		InStockOnly: q.Get("in_stock") == "true",
		Sort:        Sort(q.Get("sort")),
	}
	if f.Sort == "" {
		f.Sort = SortNewest
	}

	if f.Category != "" && !f.Category.Valid() {
		return Filter{}, false
	}
	if f.Material != "" && !f.Material.Valid() {
		return Filter{}, false
	}
	switch f.Sort {
	case SortNewest, SortPriceAsc, SortPriceDesc:
	default:
		return Filter{}, false
	}

	return f, true
}

func (s *Server) storeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
