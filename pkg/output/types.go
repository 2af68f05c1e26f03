// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"context"
	"fmt"
	"slices"

	"github.com/telekom/routemap/pkg/route"
)

// Format is the serialization format of persisted routes.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// IsValid reports whether the format is supported.
func (f Format) IsValid() bool {
	return slices.Contains([]Format{FormatJSON, FormatYAML}, f)
}

func (f Format) String() string {
	return string(f)
}

const (
	// routeFilePrefix is the prefix of every persisted route file.
	routeFilePrefix = "route_data_"
	// routeFileTimeLayout formats the capture time in route file names.
	routeFileTimeLayout = "20060102_150405"
	// MapFileName is the name of the rendered map.
	MapFileName = "network_path.html"
)

// Options contains the configuration of the route sinks.
type Options struct {
	// Dir is the directory the artifacts are written to.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
	// Format is the serialization format of the route file.
	Format Format `json:"format" yaml:"format" mapstructure:"format"`
	// Map enables rendering of the map visualization.
	Map bool `json:"map" yaml:"map" mapstructure:"map"`
}

// Validate checks the options for invalid values.
func (o *Options) Validate() error {
	if o.Dir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	if !o.Format.IsValid() {
		return fmt.Errorf("invalid output format %q, must be one of %q or %q", o.Format, FormatJSON, FormatYAML)
	}
	return nil
}

// Sink consumes a finished route.
//
//go:generate go tool moq -out sink_moq.go . Sink
type Sink interface {
	// Write persists or renders the route and returns the path of the written artifact.
	// Sinks not producing a file return an empty path.
	Write(ctx context.Context, r *route.Route) (string, error)
}
