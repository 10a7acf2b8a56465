package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/growbuddy/pkg/httpserver"
	"github.com/dmitrymomot/growbuddy/pkg/metrics"
	"github.com/dmitrymomot/growbuddy/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the top level router. API is required, the rest
// is optional.
type RouterOptions struct {
	API Mountable

	// Metrics instruments every request and serves GET /metrics.
	Metrics *metrics.Collector

	// ReadinessChecks back GET /health/ready.
	ReadinessChecks []func(context.Context) error

	Logger *slog.Logger
}

// Router creates the application router.
//
// Example:
//
//	collector := metrics.NewCollector()
//	g := garden.New(garden.WithRecorder(collector))
//
//	r := api.Router(api.RouterOptions{
//	    API:     api.NewService(g, log),
//	    Metrics: collector,
//	})
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Get("/health/live", httpserver.HealthCheckHandler(opts.Logger))
	r.Get("/health/ready", httpserver.HealthCheckHandler(opts.Logger, opts.ReadinessChecks...))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	if opts.API != nil {
		r.Mount("/", opts.API.Handle())
	}

	return r
}
