// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/telekom/routemap/internal/logger"
	"github.com/telekom/routemap/pkg/metrics"
	"github.com/telekom/routemap/pkg/pipeline"
)

const targetPrompt = "Enter the target domain or IP: "

// errNoTarget is returned when no target was entered
var errNoTarget = errors.New("no target given")

// NewCmdTrace creates a new trace command
func NewCmdTrace(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [target]",
		Short: "Trace the route towards a target",
		Long: "Traces the route towards the target, locates every hop and saves the route\n" +
			"and a map of the path. Without a target argument the target is read from stdin.",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: bindFlags,
		RunE:    runTrace(version),
	}
	addPipelineFlags(cmd)

	return cmd
}

// runTrace traces the route towards a single target
func runTrace(version string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := logger.NewContextWithLogger(cmd.Context())
		defer cancel()
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		out := cmd.OutOrStdout()

		cfg, err := loadConfig(ctx, false)
		if err != nil {
			return err
		}

		target, err := readTarget(args, cmd.InOrStdin(), out)
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

		p := newPipeline(cfg, newFs(), out)
		_, _ = fmt.Fprintf(out, "Tracing route to %s...\n", target)
		res, err := p.Run(ctx, target)
		if err != nil {
			if errors.Is(err, pipeline.ErrNoRoute) {
				_, _ = fmt.Fprintln(out, "Could not get network hops.")
			}
			return err
		}

		if origin, ok := res.Route.Origin(); ok {
			_, _ = fmt.Fprintf(out, "From %s\n", origin)
		}
		if dest, ok := res.Route.Destination(); ok {
			_, _ = fmt.Fprintf(out, "To   %s\n", dest)
		}
		_, _ = fmt.Fprintf(out, "Resolved %d of %d hops\n", res.Route.Resolved(), len(res.Route.Hops))
		for _, a := range res.Artifacts {
			_, _ = fmt.Fprintf(out, "Saved %s\n", a)
		}
		return nil
	}
}

// readTarget returns the target argument or prompts for it
func readTarget(args []string, in io.Reader, out io.Writer) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0]), nil
	}

	_, _ = fmt.Fprint(out, targetPrompt)
	s := bufio.NewScanner(in)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return "", fmt.Errorf("failed to read target: %w", err)
		}
		return "", errNoTarget
	}

	target := strings.TrimSpace(s.Text())
	if target == "" {
		return "", errNoTarget
	}
	return target, nil
}
