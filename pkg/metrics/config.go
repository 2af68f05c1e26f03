// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/telekom/routemap/internal/logger"
)

// ErrCollectorURL is returned when spans should be exported without a collector to send them to
var ErrCollectorURL = errors.New("telemetry exporter needs a collector url")

// Config controls whether and where the spans of route traces are exported.
type Config struct {
	// Enabled turns on span export for trace runs and api requests
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Exporter selects the span exporter
	Exporter Exporter `yaml:"exporter" mapstructure:"exporter"`
	// Url is the collector endpoint, only used by the otlp exporters
	Url string `yaml:"url" mapstructure:"url"`
	// Token is sent as bearer token to the collector
	Token string `yaml:"token" mapstructure:"token"`
	// TLS secures the collector connection
	TLS TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// TLSConfig secures the connection to the collector.
type TLSConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// CertPath points to a CA bundle for collectors with private certificates.
	// The system roots are used if empty.
	CertPath string `yaml:"certPath" mapstructure:"certPath"`
}

// Validate checks the exporter and its collector endpoint.
func (c *Config) Validate(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if err := c.Exporter.Validate(); err != nil {
		log.ErrorContext(ctx, "Unknown telemetry exporter", "exporter", c.Exporter, "error", err)
		return err
	}

	if c.Exporter.IsExporting() && c.Url == "" {
		log.ErrorContext(ctx, "Telemetry exporter without collector url", "exporter", c.Exporter)
		return fmt.Errorf("%w: exporter %q", ErrCollectorURL, c.Exporter)
	}
	return nil
}
