// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/telekom/routemap/internal/logger"
	"github.com/telekom/routemap/internal/traceroute"
	"github.com/telekom/routemap/pkg/api"
	"github.com/telekom/routemap/pkg/metrics"
	"github.com/telekom/routemap/pkg/output"
)

// NewCmdServe creates a new serve command
func NewCmdServe(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route tracing api",
		Long: "Starts an http api tracing routes on request and serving the saved routes,\n" +
			"the latest map and prometheus metrics.",
		Args:    cobra.NoArgs,
		PreRunE: bindFlags,
		RunE:    runServe(version),
	}
	addPipelineFlags(cmd)
	NewFlag("api.address", "api-address").String().Bind(cmd, api.DefaultAddress, "api: the address the server is listening on")
	NewFlag("api.tls.enabled", "api-tls").Bool().Bind(cmd, false, "api: serve https")
	NewFlag("api.tls.certPath", "api-tls-cert").String().Bind(cmd, "", "api: path to the tls certificate")
	NewFlag("api.tls.keyPath", "api-tls-key").String().Bind(cmd, "", "api: path to the tls key")

	return cmd
}

// runServe serves the api until interrupted
func runServe(version string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := logger.NewContextWithLogger(cmd.Context())
		defer cancel()
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		log := logger.FromContext(ctx)

		cfg, err := loadConfig(ctx, true)
		if err != nil {
			return err
		}

		m := metrics.New(cfg.Telemetry, version)
		if err = m.InitTracing(ctx); err != nil {
			return err
		}
		defer func() {
			_ = m.Shutdown(context.WithoutCancel(ctx))
		}()

		fsys := newFs()
		p := newPipeline(cfg, fsys, nil)

		registry := m.GetRegistry()
		for _, c := range p.GetMetricCollectors() {
			if err = registry.Register(c); err != nil {
				return fmt.Errorf("failed to register pipeline metrics: %w", err)
			}
		}
		command := cfg.Trace.Command
		if command == "" {
			command = traceroute.CommandFor(runtime.GOOS).Name
		}
		if err = metrics.RegisterBuildInfo(registry, version, command); err != nil {
			return fmt.Errorf("failed to register build info: %w", err)
		}

		a := api.New(cfg.Api, p, output.NewStore(fsys, cfg.Output), registry, version)
		err = a.Run(ctx)
		if errors.Is(err, context.Canceled) {
			log.InfoContext(ctx, "Shut down routemap")
			return nil
		}
		return err
	}
}
