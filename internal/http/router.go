// Package httpapi assembles the public HTTP surface.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	platformmetrics "lookout/internal/platform/metrics"
	"lookout/internal/platform/middleware"
	"lookout/pkg/platform/httputil"
	"lookout/pkg/platform/middleware/metadata"
	"lookout/pkg/platform/middleware/requesttime"
)

// Registrar mounts a group of routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports whether a dependency is usable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps are the collaborators the router needs.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *platformmetrics.Metrics
	Gatherer prometheus.Gatherer
	Health   HealthChecker // optional
	Routes   []Registrar
}

// NewRouter wires middleware, operational endpoints and domain routes.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.Logger))
	r.Use(metadata.RequestID)
	r.Use(metadata.CallerID)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}

	r.Get("/healthz", healthHandler(d.Health))
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	for _, reg := range d.Routes {
		reg.Register(r)
	}
	return r
}

func healthHandler(dep HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dep != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := dep.Health(ctx); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
