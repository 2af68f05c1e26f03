// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/telekom/routemap/internal/geolocation"
	"github.com/telekom/routemap/internal/traceroute"
	"github.com/telekom/routemap/pkg/api"
	"github.com/telekom/routemap/pkg/metrics"
	"github.com/telekom/routemap/pkg/output"
)

type Config struct {
	// Trace is the configuration of the trace command
	Trace traceroute.Options `yaml:"trace" mapstructure:"trace"`
	// PublicAddress is the configuration of the public address lookup
	PublicAddress traceroute.PublicAddressOptions `yaml:"publicAddress" mapstructure:"publicAddress"`
	// Geolocation is the configuration of the location resolver
	Geolocation geolocation.Options `yaml:"geolocation" mapstructure:"geolocation"`
	// Output is the configuration of the route sinks
	Output output.Options `yaml:"output" mapstructure:"output"`
	// Api is the configuration for the api server
	Api api.Config `yaml:"api" mapstructure:"api"`
	// Telemetry is the configuration for the telemetry
	Telemetry metrics.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// NewConfig returns a config populated with the defaults
func NewConfig() *Config {
	return &Config{
		Trace: traceroute.Options{
			BannerAddresses: traceroute.DefaultBannerAddresses,
		},
		PublicAddress: traceroute.PublicAddressOptions{
			URL:     traceroute.DefaultPublicAddressURL,
			Timeout: traceroute.DefaultPublicAddressTimeout,
		},
		Geolocation: geolocation.Options{
			URL:         geolocation.DefaultURL,
			Timeout:     geolocation.DefaultTimeout,
			Concurrency: 1,
		},
		Output: output.Options{
			Dir:    ".",
			Format: output.FormatJSON,
			Map:    true,
		},
		Api: api.Config{
			ListeningAddress: api.DefaultAddress,
		},
	}
}

// HasTelemetry returns true if the config has telemetry enabled
func (c *Config) HasTelemetry() bool {
	return c.Telemetry.Enabled
}
