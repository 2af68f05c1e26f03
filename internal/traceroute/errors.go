// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"context"
	"errors"
)

var (
	// ErrEmptyTarget is returned when Discover is called without a target.
	ErrEmptyTarget = errors.New("target cannot be empty")
	// ErrTraceFailed is returned when the trace command could not be started
	// or exited with a non-zero status. No hops are reported in this case.
	ErrTraceFailed = errors.New("trace command failed")
	// ErrPublicAddress is returned when the public address of the host could not be determined.
	ErrPublicAddress = errors.New("public address lookup failed")
)

// isTimeout checks if the error was caused by the trace or lookup running
// out of time.
func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
