// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package pipeline discovers the route towards a target, enriches its hops
// with locations and hands the assembled route to the configured sinks.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/telekom/routemap/internal/geolocation"
	"github.com/telekom/routemap/internal/logger"
	"github.com/telekom/routemap/internal/traceroute"
	"github.com/telekom/routemap/pkg/output"
	"github.com/telekom/routemap/pkg/route"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Pipeline = (*pipeline)(nil)

// Pipeline traces routes.
//
//go:generate go tool moq -out pipeline_moq.go . Pipeline
type Pipeline interface {
	// Run discovers, resolves, assembles and writes the route towards the target.
	// If no hops could be discovered, an error wrapping [ErrNoRoute] is returned
	// and neither lookups nor writes are performed.
	Run(ctx context.Context, target string) (*Result, error)
	// GetMetricCollectors returns the prometheus collectors of the pipeline.
	GetMetricCollectors() []prometheus.Collector
}

// Result is the outcome of a single run.
type Result struct {
	// ID identifies the run in logs and traces.
	ID string `json:"id" yaml:"id"`
	// Route is the assembled route.
	Route route.Route `json:"route" yaml:"route"`
	// Artifacts are the paths of the written files.
	Artifacts []string `json:"artifacts" yaml:"artifacts"`
}

type pipeline struct {
	client    traceroute.Client
	resolver  geolocation.Resolver
	assembler *route.Assembler
	sinks     []output.Sink
	metrics   metrics
	tracer    trace.Tracer
}

// New returns a [Pipeline] using the given collaborators.
// The sinks are written in the given order.
func New(client traceroute.Client, resolver geolocation.Resolver, assembler *route.Assembler, sinks ...output.Sink) Pipeline {
	return &pipeline{
		client:    client,
		resolver:  resolver,
		assembler: assembler,
		sinks:     sinks,
		metrics:   newMetrics(),
		tracer:    otel.Tracer("pipeline"),
	}
}

func (p *pipeline) Run(ctx context.Context, target string) (*Result, error) {
	id := uuid.NewString()
	log := logger.FromContext(ctx).With("run", id, "target", target)
	ctx = logger.IntoContext(ctx, log)

	ctx, span := p.tracer.Start(ctx, "pipeline.Run", trace.WithAttributes(
		attribute.String("pipeline.run", id),
		attribute.String("pipeline.target", target),
	))
	defer span.End()
	start := time.Now()

	log.InfoContext(ctx, "Tracing route")
	addrs, err := p.client.Discover(ctx, target)
	if err != nil {
		span.SetStatus(codes.Error, "discovery failed")
		span.RecordError(err)
		if errors.Is(err, traceroute.ErrTraceFailed) {
			p.metrics.observeRun(statusNoRoute, time.Since(start))
			log.WarnContext(ctx, "Could not get network hops", "error", err)
			return nil, fmt.Errorf("%w: %w", ErrNoRoute, err)
		}
		p.metrics.observeRun(statusError, time.Since(start))
		log.ErrorContext(ctx, "Route discovery failed", "error", err)
		return nil, err
	}
	if len(addrs) == 0 {
		p.metrics.observeRun(statusNoRoute, time.Since(start))
		span.SetStatus(codes.Error, ErrNoRoute.Error())
		log.WarnContext(ctx, "Could not get network hops")
		return nil, ErrNoRoute
	}

	log.InfoContext(ctx, "Resolving hop locations", "hops", len(addrs))
	locations := p.resolver.ResolveAll(ctx, addrs)
	res := &Result{
		ID:        id,
		Route:     p.assembler.Assemble(addrs, locations),
		Artifacts: make([]string, 0, len(p.sinks)),
	}
	p.metrics.observeRoute(&res.Route)
	span.SetAttributes(
		attribute.Int("pipeline.hops", len(res.Route.Hops)),
		attribute.Int("pipeline.resolved", res.Route.Resolved()),
	)

	for _, sink := range p.sinks {
		name, err := sink.Write(ctx, &res.Route)
		if err != nil {
			p.metrics.observeRun(statusError, time.Since(start))
			span.SetStatus(codes.Error, ErrSink.Error())
			span.RecordError(err)
			log.ErrorContext(ctx, "Could not write route artifact", "error", err)
			return res, fmt.Errorf("%w: %w", ErrSink, err)
		}
		if name != "" {
			res.Artifacts = append(res.Artifacts, name)
		}
	}

	p.metrics.observeRun(statusSuccess, time.Since(start))
	log.InfoContext(ctx, "Route traced", "hops", len(res.Route.Hops), "resolved", res.Route.Resolved(), "artifacts", res.Artifacts)
	return res, nil
}

func (p *pipeline) GetMetricCollectors() []prometheus.Collector {
	return p.metrics.GetCollectors()
}
