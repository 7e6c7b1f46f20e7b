package main

import (
	"database/sql"
	"os"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ProductStore/internal/products"
	"ProductStore/pkg/kit"
)

func main() {
	_ = godotenv.Load()

	service := "productapi"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")

	store, closeStore, err := buildStore(log)
	if err != nil {
		log.Fatal("init store failed", zap.Error(err))
	}
	defer closeStore()

	s := &products.Server{Store: store, Log: log}

	reg := prometheus.NewRegistry()
	h := products.NewHandler(s, products.HTTPDeps{
		Log:      log,
		Service:  service,
		Registry: reg,

		RedirectHTTPS: getenv("HTTPS_REDIRECT", "") == "true",

		RateLimit:         getenvInt("RATE_LIMIT", 0),
		RateWindowSeconds: getenvInt("RATE_WINDOW_SECONDS", 60),

		MetricsEnabled: getenv("METRICS_ENABLED", "") == "true",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// buildStore returns the in-memory seed catalog unless PRODUCTS_DSN
// points at a postgres instance.
func buildStore(log *zap.Logger) (products.Store, func(), error) {
	dsn := os.Getenv("PRODUCTS_DSN")
	if dsn == "" {
		return products.NewMemStore(), func() {}, nil
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, err
	}

	log.Info("using postgres store")
	return products.NewPostgresStore(db), func() { _ = db.Close() }, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
