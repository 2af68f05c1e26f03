// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/telekom/routemap/internal/logger"
	"github.com/telekom/routemap/pkg/output"
	"github.com/telekom/routemap/pkg/pipeline"
)

var _ API = (*api)(nil)

type API interface {
	// Run starts the api server and blocks until it is shut down
	Run(ctx context.Context) error
	// Shutdown gracefully stops the api server
	Shutdown(ctx context.Context) error
}

type api struct {
	server *http.Server
	router chi.Router
	tls    TLSConfig
	traces *traceHandler
	// registry is the prometheus registry served on /metrics
	registry *prometheus.Registry
	version  string
}

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

// New creates a new api serving the routes traced by the pipeline
// and the artifacts of the store.
func New(cfg Config, p pipeline.Pipeline, store *output.Store, registry *prometheus.Registry, version string) API {
	r := chi.NewRouter()
	return &api{
		server: &http.Server{
			Addr:              cfg.ListeningAddress,
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		router:   r,
		tls:      cfg.Tls,
		traces:   newTraceHandler(p, store),
		registry: registry,
		version:  version,
	}
}

// Run serves the api until the context is done or the server fails
func (a *api) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if err := a.registerRoutes(ctx); err != nil {
		return err
	}

	cErr := make(chan error, 1)
	go func() {
		var err error
		log.InfoContext(ctx, "Serving api", "addr", a.server.Addr, "tls", a.tls.Enabled)
		if a.tls.Enabled {
			err = a.server.ListenAndServeTLS(a.tls.CertPath, a.tls.KeyPath)
		} else {
			err = a.server.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			log.InfoContext(ctx, "Api server closed")
			cErr <- nil
			return
		}
		log.ErrorContext(ctx, "Failed to serve api", "error", err)
		cErr <- fmt.Errorf("%w: %w", ErrServerStop, err)
	}()

	select {
	case <-ctx.Done():
		sCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := a.Shutdown(sCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-cErr:
		return err
	}
}

// Shutdown gracefully stops the api server
func (a *api) Shutdown(ctx context.Context) error {
	if err := a.server.Shutdown(ctx); err != nil {
		logger.FromContext(ctx).ErrorContext(ctx, "Failed to shutdown api server", "error", err)
		return fmt.Errorf("failed shutting down api server: %w", err)
	}
	return nil
}

// registerRoutes mounts all endpoints on the router
func (a *api) registerRoutes(ctx context.Context) error {
	doc, err := a.openapi()
	if err != nil {
		logger.FromContext(ctx).ErrorContext(ctx, "Failed to create openapi document", "error", err)
		return err
	}

	a.router.Use(middleware.Recoverer)
	a.router.Use(logger.Middleware(ctx))

	a.router.Get("/openapi", a.handleOpenapi(doc))
	a.router.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{Registry: a.registry}))
	a.router.Route("/v1", func(r chi.Router) {
		r.Post("/traces", a.traces.createTrace)
		r.Get("/routes", a.traces.listRoutes)
		r.Get("/routes/{name}", a.traces.getRoute)
		r.Get("/map", a.traces.getMap)
	})
	return nil
}
