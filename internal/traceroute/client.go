// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"context"
	"fmt"
	"runtime"

	"github.com/telekom/routemap/internal/logger"
	"github.com/telekom/routemap/pkg/route"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	_ Client = (*genericClient)(nil)
)

// Client is able to discover the hops towards a target.
//
//go:generate go tool moq -out client_moq.go . Client
type Client interface {
	// Discover runs the trace command for the target and returns the hop
	// addresses in the order they were observed, preceded by the public
	// address of this host.
	// If the trace command fails, no addresses and an error wrapping
	// [ErrTraceFailed] are returned.
	Discover(ctx context.Context, target string) ([]route.Address, error)
}

type genericClient struct {
	// command is the trace command selected for this platform.
	command CommandFamily
	// runner executes the trace command.
	runner Runner
	// public resolves the public address of this host.
	public PublicAddressLookup
	opts   Options
}

// NewClient returns a [Client] for the platform routemap runs on that
// executes the trace command with runner, usually [NewRunner].
func NewClient(opts Options, public PublicAddressOptions, runner Runner) Client {
	return newClient(opts, runner, NewPublicAddressLookup(public), runtime.GOOS)
}

func newClient(opts Options, runner Runner, public PublicAddressLookup, goos string) *genericClient {
	cmd := CommandFor(goos)
	if opts.Command != "" {
		cmd = CommandFamily{Name: opts.Command}
	}
	return &genericClient{
		command: cmd,
		runner:  runner,
		public:  public,
		opts:    opts,
	}
}

func (c *genericClient) Discover(ctx context.Context, target string) ([]route.Address, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("traceroute.Client")
	ctx, span := tracer.Start(ctx, "Discover", trace.WithAttributes(
		attribute.String("traceroute.target", target),
		attribute.String("traceroute.command", c.command.Name),
		attribute.Int("traceroute.options.banner_addresses", c.opts.BannerAddresses),
	))
	defer span.End()
	log := logger.FromContext(ctx).With("target", target)

	if target == "" {
		return nil, wrapError(ctx, ErrEmptyTarget, "invalid target")
	}

	out, err := c.trace(ctx, normalizeTarget(target))
	if err != nil {
		return nil, err
	}

	hops := extractAddresses(out, c.opts.BannerAddresses)
	log.DebugContext(ctx, "Parsed trace output", "hops", len(hops))

	public, err := c.public.Lookup(ctx)
	if err != nil {
		return nil, wrapError(ctx, err, "failed to determine public address")
	}

	addrs := make([]route.Address, 0, len(hops)+1)
	addrs = append(addrs, public)
	addrs = append(addrs, hops...)

	span.SetAttributes(attribute.Int("traceroute.hops", len(addrs)))
	logHops(ctx, addrs)
	return addrs, nil
}

// trace runs the trace command and returns its output.
func (c *genericClient) trace(ctx context.Context, target string) ([]byte, error) {
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	logger.FromContext(ctx).DebugContext(ctx, "Running trace command", "command", c.command.Name, "target", target)
	out, err := c.runner.Run(ctx, c.command.Name, c.command.args(target)...)
	if err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("%w: %w", err, ctx.Err())
		}
		return nil, wrapError(ctx, fmt.Errorf("%w: %w", ErrTraceFailed, err), "failed to run %s", c.command)
	}
	return out, nil
}
