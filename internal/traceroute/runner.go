// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"context"

	"golang.org/x/sys/execabs"
)

var _ Runner = (*execRunner)(nil)

// Runner executes an external command.
//
//go:generate go tool moq -out runner_moq.go . Runner
type Runner interface {
	// Run executes the command and blocks until it exits.
	// It returns the combined stdout and stderr output and a non-nil error
	// if the command could not be started or exited with a non-zero status.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

// NewRunner returns a [Runner] executing commands on the local host.
func NewRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return execabs.CommandContext(ctx, name, args...).CombinedOutput()
}
