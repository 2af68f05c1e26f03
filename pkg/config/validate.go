// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/telekom/routemap/internal/logger"
)

// Validate validates the startup config.
// The api configuration is only validated if withApi is set.
func (c *Config) Validate(ctx context.Context, withApi bool) (err error) {
	log := logger.FromContext(ctx)

	if vErr := c.Trace.Validate(); vErr != nil {
		log.ErrorContext(ctx, "The trace configuration is invalid", "error", vErr)
		err = errors.Join(err, ErrInvalidTrace, vErr)
	}

	if vErr := c.PublicAddress.Validate(); vErr != nil {
		log.ErrorContext(ctx, "The public address configuration is invalid", "error", vErr)
		err = errors.Join(err, ErrInvalidPublicAddress, vErr)
	}

	if vErr := c.Geolocation.Validate(); vErr != nil {
		log.ErrorContext(ctx, "The geolocation configuration is invalid", "error", vErr)
		err = errors.Join(err, ErrInvalidGeolocation, vErr)
	}

	if vErr := c.Output.Validate(); vErr != nil {
		log.ErrorContext(ctx, "The output configuration is invalid", "error", vErr)
		err = errors.Join(err, ErrInvalidOutput, vErr)
	}

	if c.HasTelemetry() {
		if vErr := c.Telemetry.Validate(ctx); vErr != nil {
			log.ErrorContext(ctx, "The telemetry configuration is invalid")
			err = errors.Join(err, vErr)
		}
	}

	if withApi {
		if vErr := c.Api.Validate(); vErr != nil {
			log.ErrorContext(ctx, "The api configuration is invalid", "error", vErr)
			err = errors.Join(err, vErr)
		}
	}

	if err != nil {
		return fmt.Errorf("validation of configuration failed: %w", err)
	}
	return nil
}
