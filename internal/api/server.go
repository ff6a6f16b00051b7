// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the label checker service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"labelchecker/internal/api/handler/v1handler"
	"labelchecker/internal/config"
	"labelchecker/pkg/controller"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/metrics"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	timeoutBody   = `{"code":"TIMEOUT","message":"request timed out"}`
	riverUIPrefix = "/riverui"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// Handler tunes the v1 endpoints.
	Handler v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds every /v1 request except the event stream.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins restricts CORS. Empty allows any origin.
	AllowedOrigins []string
	// TrustedProxies lists the reverse proxies whose forwarding headers
	// resolve the client IP. Empty keys everything on the peer address.
	TrustedProxies []string

	// RiverUIUsername and RiverUIPassword guard the job dashboard. An empty
	// username disables it.
	RiverUIUsername string
	RiverUIPassword string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Handler: v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		TrustedProxies:    cfg.HTTP.TrustedProxies,

		RiverUIUsername: cfg.RiverUI.Username,
		RiverUIPassword: cfg.RiverUI.Password,
	}
}

type Deps struct {
	v1handler.Deps

	// Ping reports whether the database is reachable. Nil skips the check.
	Ping func(ctx context.Context) error
	// Meter instruments HTTP requests. Nil disables request metrics.
	Meter metric.MeterProvider
	// Jobs backs the River dashboard. Nil disables it.
	Jobs *river.Client[pgx.Tx]
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) and per route request metrics
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes under a request timeout, plus the websocket event stream
// - the River dashboard behind basic auth, when configured
// - pprof endpoints for profiling
// It also wraps the router with CORS and logging middlewares.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	proxies, err := controller.ParseTrustedProxies(opts.TrustedProxies)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(controller.RealIP(proxies))
	r.Use(controller.WithLogger)
	r.Use(controller.CORS(opts.AllowedOrigins))
	if deps.Meter != nil {
		httpMetrics, err := metrics.NewHTTPMetrics(deps.Meter.Meter(metrics.MeterName))
		if err != nil {
			return nil, fmt.Errorf("could not create http metrics: %w", err)
		}
		r.Use(httpMetrics.Middleware)
	}

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.Handler())

	r.Get("/healthz", healthz(deps.Ping))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Product Label Checker",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api; the event stream is long lived and stays out of the timeout
	h := v1handler.New(deps.Deps, opts.Handler)
	r.Get("/v1/events", h.Events)
	v1 := h.Routes()
	if opts.RequestTimeout > 0 {
		r.Mount("/v1", http.TimeoutHandler(v1, opts.RequestTimeout, timeoutBody))
	} else {
		r.Mount("/v1", v1)
	}

	// river dashboard
	if opts.RiverUIUsername != "" && deps.Jobs != nil {
		ui, err := newRiverUI(ctx, deps.Jobs, riverUIPrefix)
		if err != nil {
			return nil, err
		}
		guarded := middleware.BasicAuth("riverui", map[string]string{
			opts.RiverUIUsername: opts.RiverUIPassword,
		})(ui)
		r.Handle(riverUIPrefix, guarded)
		r.Handle(riverUIPrefix+"/*", guarded)
	}

	// pprof
	r.Handle(controller.PprofPath+"*", controller.PprofMux())

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           r,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func healthz(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				logger.Warn(r.Context(), "health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unavailable"}`))

				return
			}
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
