package main

import (
	"database/sql"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ImirStore/internal/account"
	"ImirStore/internal/cart"
	"ImirStore/internal/catalog"
	"ImirStore/internal/checkout"
	"ImirStore/internal/storefront"
	"ImirStore/pkg/kit"
)

func main() {
	service := "storefront"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")
	jwtSecret := getenv("JWT_SECRET", "dev-secret-change-me")

	catalogStore, orderStore, userStore := buildStores(log)
	kv := buildKV(log)
	defer func() { _ = kv.Close() }()

	deps := storefront.Deps{
		Catalog: catalogStore,
		Cart:    cart.NewStore(kv),
		Orders:  orderStore,
		Users:   userStore,
		JWT:     account.NewTokenMaker(jwtSecret),
	}

	h := storefront.NewHandler(deps, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: os.Getenv("METRICS_ENABLED") == "true",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// buildStores wires Postgres-backed stores when DATABASE_URL is set and
// falls back to the seeded in-memory stores otherwise.
func buildStores(log *zap.Logger) (catalog.Store, checkout.Store, account.UserStore) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Info("using in-memory stores")
		return catalog.NewSeededStore(), checkout.NewMemStore(), account.NewMemStore()
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}

	log.Info("using postgres stores")
	return catalog.NewPostgresStore(db), checkout.NewPostgresStore(db), account.NewPostgresStore(db)
}

// buildKV opens the cart mirror: BadgerDB at CART_DB_PATH when set, plain
// memory otherwise.
func buildKV(log *zap.Logger) cart.KV {
	path := os.Getenv("CART_DB_PATH")
	if path == "" {
		log.Info("using in-memory cart mirror")
		return cart.NewMemKV()
	}

	kv, err := cart.OpenBadger(path)
	if err != nil {
		log.Fatal("open cart database", zap.Error(err), zap.String("path", path))
	}

	log.Info("using badger cart mirror", zap.String("path", path))
	return kv
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
