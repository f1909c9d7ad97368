package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wikiparse/internal/config"
	"github.com/heartmarshall/wikiparse/internal/metrics"
	"github.com/heartmarshall/wikiparse/internal/transport/middleware"
	"github.com/heartmarshall/wikiparse/internal/transport/rest"
)

// routerDeps holds everything the HTTP surface needs.
type routerDeps struct {
	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Metrics
	words   *rest.WordsHandler
	health  *rest.HealthHandler
	limiter *middleware.RateLimiter // nil disables rate limiting
}

// newRouter builds the HTTP handler. Probes and /metrics bypass CORS and the
// rate limiter; the API routes get the full chain with Metrics innermost.
func newRouter(d routerDeps) http.Handler {
	api := http.NewServeMux()
	d.words.Register(api)

	var limit middleware.Middleware
	if d.limiter != nil {
		limit = d.limiter.Limit(d.cfg.RateLimit.PerMinute)
	}

	root := http.NewServeMux()
	root.Handle("/api/", middleware.Chain(
		middleware.CORS(d.cfg.CORS),
		limit,
		middleware.Metrics(d.metrics),
	)(api))
	root.HandleFunc("GET /live", d.health.Live)
	root.HandleFunc("GET /ready", d.health.Ready)
	root.HandleFunc("GET /health", d.health.Health)
	root.Handle("GET /metrics", d.metrics.Handler())

	return middleware.Chain(
		middleware.Recovery(d.log),
		middleware.RequestID(),
		middleware.Logger(d.log),
	)(root)
}
