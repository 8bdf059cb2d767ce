package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ImirStore/internal/account"
	"ImirStore/internal/cart"
	"ImirStore/internal/catalog"
	"ImirStore/internal/checkout"
	"ImirStore/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

type Deps struct {
	Catalog catalog.Store
	Cart    *cart.Store
	Orders  checkout.Store
	Users   account.UserStore
	JWT     *account.TokenMaker
}

const (
	readyTimeout = 1 * time.Second

	loginLimitPerMin    = 5
	registerLimitPerMin = 3
	limitWindowSeconds  = 60
)

// NewHandler assembles the whole storefront: public catalog routes, session
// and account routes, and the session-gated cart, wishlist and checkout
// surface.
func NewHandler(d Deps, httpDeps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", readyz(d, httpDeps.Log))

	catalogSrv := &catalog.Server{Store: d.Catalog, Log: httpDeps.Log}
	r.Mount("/", catalogSrv.Routes())

	mountAccount(r, &account.Server{Log: httpDeps.Log, Store: d.Users, JWT: d.JWT})

	cartSrv := &cart.Server{Store: d.Cart, Catalog: d.Catalog, Log: httpDeps.Log}
	checkoutSrv := &checkout.Server{Cart: d.Cart, Orders: d.Orders, Log: httpDeps.Log}

	r.Group(func(pr chi.Router) {
		pr.Use(cart.RequireSession(d.JWT))

		pr.Mount("/cart", cartSrv.CartRoutes())
		pr.Mount("/wishlist", cartSrv.WishlistRoutes())
		pr.Mount("/checkout", checkoutSrv.CheckoutRoutes())
		pr.Mount("/orders", checkoutSrv.OrderRoutes())
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func mountAccount(r *chi.Mux, s *account.Server) {
	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, limitWindowSeconds)
	registerLimiter := kit.NewIPRateLimiter(registerLimitPerMin, limitWindowSeconds)

	r.Post("/session", s.SessionHandler())
	r.With(registerLimiter.Middleware).Post("/account/register", s.RegisterHandler())
	r.With(loginLimiter.Middleware).Post("/account/login", s.LoginHandler())
	r.Get("/account/whoami", s.WhoAmIHandler())
}

func readyz(d Deps, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		checks := []struct {
			name string
			ping func(context.Context) error
		}{
			{"catalog", d.Catalog.Ping},
			{"cart", d.Cart.Ping},
			{"orders", d.Orders.Ping},
			{"users", d.Users.Ping},
		}

		for _, c := range checks {
			if err := c.ping(ctx); err != nil {
				if log != nil {
					log.Warn("readyz failed", zap.String("store", c.name), zap.Error(err))
				}
				kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", map[string]any{"store": c.name})
				return
			}
		}

		w.WriteHeader(http.StatusOK)
	}
}
