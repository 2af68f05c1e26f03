// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/telekom/routemap/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var _ Provider = (*manager)(nil)

const serviceName = "routemap"

// Provider owns the prometheus registry served by the api and the
// span export of route traces.
//
//go:generate go tool moq -out metrics_moq.go . Provider
type Provider interface {
	// GetRegistry returns the registry the pipeline and build info
	// collectors are registered with
	GetRegistry() *prometheus.Registry
	// InitTracing installs the global tracer provider if telemetry is enabled
	InitTracing(ctx context.Context) error
	// Shutdown flushes the spans of finished traces
	Shutdown(ctx context.Context) error
}

type manager struct {
	config   Config
	version  string
	registry *prometheus.Registry
	tp       *sdktrace.TracerProvider
}

// New returns a [Provider] with the go runtime and process collectors registered.
// Tracing stays off until [Provider.InitTracing] is called.
func New(config Config, version string) Provider {
	registry := prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &manager{
		config:   config,
		version:  version,
		registry: registry,
	}
}

func (m *manager) GetRegistry() *prometheus.Registry {
	return m.registry
}

// InitTracing keeps the global no-op tracer provider if telemetry is disabled.
func (m *manager) InitTracing(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if !m.config.Enabled {
		log.DebugContext(ctx, "Telemetry disabled, spans are not exported")
		return nil
	}

	version := m.version
	if version == "" {
		version = "dev"
	}
	res, err := resource.New(ctx,
		resource.WithHost(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(version),
		),
	)
	if err != nil {
		log.ErrorContext(ctx, "Failed to describe routemap as telemetry resource", "error", err)
		return fmt.Errorf("failed to create telemetry resource: %w", err)
	}

	exporter, err := m.config.Exporter.Create(ctx, &m.config)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create span exporter", "exporter", m.config.Exporter, "error", err)
		return fmt.Errorf("failed to create %s span exporter: %w", m.config.Exporter, err)
	}

	const (
		batchTimeout = 5 * time.Second
		maxQueueSize = 1000
		maxBatchSize = 100
	)
	bsp := sdktrace.NewBatchSpanProcessor(exporter,
		sdktrace.WithBatchTimeout(batchTimeout),
		sdktrace.WithMaxQueueSize(maxQueueSize),
		sdktrace.WithMaxExportBatchSize(maxBatchSize),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(bsp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	m.tp = tp
	log.InfoContext(ctx, "Exporting trace spans", "exporter", m.config.Exporter, "url", m.config.Url)
	return nil
}

// Shutdown is a no-op if tracing was never initialized.
func (m *manager) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if m.tp != nil {
		err := m.tp.Shutdown(ctx)
		if err != nil {
			log.ErrorContext(ctx, "Failed to flush trace spans", "error", err)
			return fmt.Errorf("failed to flush trace spans: %w", err)
		}
		log.DebugContext(ctx, "Flushed trace spans")
	}
	return nil
}
