// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package geolocation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/telekom/routemap/internal/logger"
	"github.com/telekom/routemap/pkg/route"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var (
	_ Resolver = (*resolver)(nil)

	errLookupFailed = errors.New("geolocation lookup failed")
)

// Resolver resolves addresses to locations.
//
//go:generate go tool moq -out resolver_moq.go . Resolver
type Resolver interface {
	// Resolve returns the location of the address.
	// It returns [route.UnknownLocation] if the address cannot be resolved.
	Resolve(ctx context.Context, addr route.Address) route.Location
	// ResolveAll returns the locations of all addresses in the same order.
	ResolveAll(ctx context.Context, addrs []route.Address) []route.Location
}

type resolver struct {
	baseURL     string
	concurrency int
	client      *http.Client
}

// NewResolver returns a [Resolver] querying the ip-api compatible service
// configured by the options.
func NewResolver(opts Options) Resolver {
	return &resolver{
		baseURL:     opts.URL,
		concurrency: opts.Concurrency,
		client:      &http.Client{Timeout: opts.Timeout},
	}
}

func (r *resolver) Resolve(ctx context.Context, addr route.Address) route.Location {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("geolocation.Resolver")
	ctx, span := tracer.Start(ctx, "Resolve", trace.WithAttributes(
		attribute.Stringer("geolocation.address", addr),
	))
	defer span.End()
	log := logger.FromContext(ctx).With("address", addr)

	loc, err := r.lookup(ctx, addr)
	if err != nil {
		log.WarnContext(ctx, "Could not get location, using unknown location", "error", err)
		span.SetStatus(codes.Error, "Geolocation lookup failed")
		span.RecordError(err)
		return route.UnknownLocation()
	}

	span.SetAttributes(
		attribute.String("geolocation.country", loc.Country),
		attribute.String("geolocation.city", loc.City),
	)
	log.DebugContext(ctx, "Resolved location", "country", loc.Country, "city", loc.City, "isp", loc.ISP)
	return loc
}

func (r *resolver) ResolveAll(ctx context.Context, addrs []route.Address) []route.Location {
	locations := make([]route.Location, len(addrs))
	if r.concurrency < 2 {
		for i, addr := range addrs {
			locations[i] = r.Resolve(ctx, addr)
		}
		return locations
	}

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, addr := range addrs {
		g.Go(func() error {
			locations[i] = r.Resolve(ctx, addr)
			return nil
		})
	}
	_ = g.Wait() // Resolve never fails
	return locations
}

// lookup performs one request against the service.
func (r *resolver) lookup(ctx context.Context, addr route.Address) (loc route.Location, err error) {
	base, err := url.Parse(r.baseURL)
	if err != nil {
		return loc, fmt.Errorf("%w: %w", errLookupFailed, err)
	}
	u := base.JoinPath(addr.String())
	q := u.Query()
	q.Set("fields", fields)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return loc, fmt.Errorf("%w: %w", errLookupFailed, err)
	}

	res, err := r.client.Do(req) //nolint:bodyclose // closed in defer
	if err != nil {
		return loc, fmt.Errorf("%w: %w", errLookupFailed, err)
	}
	defer func() {
		err = errors.Join(err, res.Body.Close())
	}()

	if res.StatusCode != http.StatusOK {
		return loc, fmt.Errorf("%w: unexpected status %d", errLookupFailed, res.StatusCode)
	}

	var body response
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return loc, fmt.Errorf("%w: failed to decode response: %w", errLookupFailed, err)
	}

	loc, ok := body.location()
	if !ok {
		return loc, fmt.Errorf("%w: status %q: %s", errLookupFailed, body.Status, body.Message)
	}
	return loc, nil
}
