// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/telekom/routemap/internal/logger"
	"github.com/telekom/routemap/pkg/route"
)

var _ PublicAddressLookup = (*publicAddressClient)(nil)

// maxPublicAddressLength limits how much of the response body is read.
const maxPublicAddressLength = 64

// PublicAddressLookup determines the public address of the local host.
//
//go:generate go tool moq -out publicaddress_moq.go . PublicAddressLookup
type PublicAddressLookup interface {
	// Lookup returns the public address as reported by an external service.
	Lookup(ctx context.Context) (route.Address, error)
}

type publicAddressClient struct {
	url    string
	client *http.Client
}

// NewPublicAddressLookup returns a [PublicAddressLookup] querying the given
// plain text endpoint.
func NewPublicAddressLookup(opts PublicAddressOptions) PublicAddressLookup {
	return &publicAddressClient{
		url:    opts.URL,
		client: &http.Client{Timeout: opts.Timeout},
	}
}

func (p *publicAddressClient) Lookup(ctx context.Context) (addr route.Address, err error) {
	log := logger.FromContext(ctx).With("url", p.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, http.NoBody)
	if err != nil {
		log.ErrorContext(ctx, "Could not create public address request", "error", err)
		return "", fmt.Errorf("%w: %w", ErrPublicAddress, err)
	}

	res, err := p.client.Do(req) //nolint:bodyclose // closed in defer
	if err != nil {
		log.ErrorContext(ctx, "Public address request failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrPublicAddress, err)
	}
	defer func() {
		err = errors.Join(err, res.Body.Close())
	}()

	if res.StatusCode != http.StatusOK {
		log.ErrorContext(ctx, "Public address request returned unexpected status", "status", res.StatusCode)
		return "", fmt.Errorf("%w: unexpected status %d", ErrPublicAddress, res.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, maxPublicAddressLength))
	if err != nil {
		log.ErrorContext(ctx, "Could not read public address response", "error", err)
		return "", fmt.Errorf("%w: %w", ErrPublicAddress, err)
	}

	addr = route.Address(strings.TrimSpace(string(b)))
	if addr == "" {
		log.ErrorContext(ctx, "Public address response was empty")
		return "", fmt.Errorf("%w: empty response", ErrPublicAddress)
	}

	log.DebugContext(ctx, "Determined public address", "address", addr)
	return addr, nil
}
