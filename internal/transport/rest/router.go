package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/sitedefects-backend/internal/transport/middleware"
)

// NewRouter mounts the ops endpoints. The listener carries no domain routes.
func NewRouter(log *slog.Logger, health *HealthHandler) http.Handler {
	mux := http.NewServeMux()

	route := func(pattern, name string, h http.Handler) {
		mux.Handle(pattern, middleware.Metrics(name)(h))
	}
	route("GET /live", "live", http.HandlerFunc(health.Live))
	route("GET /ready", "ready", http.HandlerFunc(health.Ready))
	route("GET /health", "health", http.HandlerFunc(health.Health))
	route("GET /metrics", "metrics", promhttp.Handler())

	return middleware.Chain(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.Logger(log),
	)(mux)
}
