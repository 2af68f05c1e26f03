// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/telekom/routemap/internal/geolocation"
	"github.com/telekom/routemap/internal/traceroute"
	"github.com/telekom/routemap/pkg/config"
	"github.com/telekom/routemap/pkg/output"
	"github.com/telekom/routemap/pkg/pipeline"
	"github.com/telekom/routemap/pkg/route"
)

var (
	// newRunner creates the runner executing the trace command
	newRunner = traceroute.NewRunner
	// newFs creates the filesystem the artifacts are written to
	newFs = afero.NewOsFs
)

// addPipelineFlags registers the flags shared by all commands tracing routes
func addPipelineFlags(cmd *cobra.Command) {
	defaults := config.NewConfig()

	NewFlag("trace.command", "trace-command").String().Bind(cmd, defaults.Trace.Command,
		"trace: command to run instead of the platform default (traceroute or tracert)")
	NewFlag("trace.bannerAddresses", "banner-addresses").Int().Bind(cmd, defaults.Trace.BannerAddresses,
		"trace: number of leading addresses in the trace output that are not hops")
	NewFlag("trace.timeout", "trace-timeout").Duration().Bind(cmd, defaults.Trace.Timeout,
		"trace: maximum runtime of the trace command, 0 means no limit")
	NewFlag("publicAddress.url", "public-address-url").String().Bind(cmd, defaults.PublicAddress.URL,
		"public address: endpoint returning the public address as plain text")
	NewFlag("publicAddress.timeout", "public-address-timeout").Duration().Bind(cmd, defaults.PublicAddress.Timeout,
		"public address: timeout of the lookup")
	NewFlag("geolocation.url", "geolocation-url").String().Bind(cmd, defaults.Geolocation.URL,
		"geolocation: base url of the ip-api compatible service")
	NewFlag("geolocation.timeout", "geolocation-timeout").Duration().Bind(cmd, defaults.Geolocation.Timeout,
		"geolocation: timeout of a single lookup")
	NewFlag("geolocation.concurrency", "geolocation-concurrency").Int().Bind(cmd, defaults.Geolocation.Concurrency,
		"geolocation: number of parallel lookups")
	NewFlag("output.dir", "output-dir").String().Bind(cmd, defaults.Output.Dir,
		"output: directory the route file and the map are written to")
	NewFlag("output.format", "output-format").String().Bind(cmd, defaults.Output.Format.String(),
		"output: format of the route file, json or yaml")
	NewFlag("output.map", "map").Bool().Bind(cmd, defaults.Output.Map,
		"output: render the route as html map")
}

// loadConfig reads the config from viper and validates it
func loadConfig(ctx context.Context, withApi bool) (*config.Config, error) {
	cfg := config.NewConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(ctx, withApi); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newPipeline wires the pipeline for the config.
// The route is printed as table to w if w is not nil.
func newPipeline(cfg *config.Config, fsys afero.Fs, w io.Writer) pipeline.Pipeline {
	sinks := []output.Sink{output.NewFileWriter(fsys, cfg.Output)}
	if cfg.Output.Map {
		sinks = append(sinks, output.NewMapRenderer(fsys, cfg.Output))
	}
	if w != nil {
		sinks = append(sinks, output.NewTable(w))
	}

	return pipeline.New(
		traceroute.NewClient(cfg.Trace, cfg.PublicAddress, newRunner()),
		geolocation.NewResolver(cfg.Geolocation),
		route.NewAssembler(nil),
		sinks...,
	)
}
