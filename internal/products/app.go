package products

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ProductStore/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	RedirectHTTPS bool

	// RateLimit of 0 disables the limiter.
	RateLimit         int
	RateWindowSeconds int

	MetricsEnabled bool
	MetricsToken   string
}

// NewHandler assembles the middleware pipeline around the server's
// routes: request id, exception handling, request logging, optional
// HTTPS redirect, optional per-IP rate limit, metrics, then dispatch.
func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Mount("/", s.Routes())
	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer(deps.Log))
	r.Use(kit.Logging(deps.Log))

	if deps.RedirectHTTPS {
		r.Use(kit.HTTPSRedirect)
	}

	if deps.RateLimit > 0 {
		window := deps.RateWindowSeconds
		if window <= 0 {
			window = 60
		}
		limiter := kit.NewIPRateLimiter(deps.RateLimit, window)
		r.Use(limiter.Middleware)
	}
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
