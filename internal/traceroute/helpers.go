// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"context"
	"fmt"

	"github.com/telekom/routemap/internal/logger"
	"github.com/telekom/routemap/pkg/route"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/idna"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizeTarget converts internationalized hostnames into their ASCII form
// understood by the trace commands. Addresses and plain ASCII names are returned unchanged,
// as is any target idna cannot convert.
func normalizeTarget(target string) string {
	ascii, err := idna.Lookup.ToASCII(target)
	if err != nil || ascii == "" {
		return target
	}
	return ascii
}

// logHops logs the discovered hops in order.
func logHops(ctx context.Context, hops []route.Address) {
	log := logger.FromContext(ctx)
	for i, hop := range hops {
		log.DebugContext(ctx, fmt.Sprintf("%-3d %s", i+1, hop))
	}
}

// wrapError wraps an error with a message and logs it.
// It also records the error in the current OpenTelemetry span.
func wrapError(ctx context.Context, err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	log := logger.FromContext(ctx)
	span := trace.SpanFromContext(ctx)
	caser := cases.Title(language.English)
	text := fmt.Sprintf(msg, args...)

	log.ErrorContext(ctx, caser.String(text), "error", err, "timeout", isTimeout(err))
	span.SetStatus(codes.Error, text)
	span.RecordError(err)
	return fmt.Errorf("%s: %w", text, err)
}
