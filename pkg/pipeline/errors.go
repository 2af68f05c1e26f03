// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package pipeline

import "errors"

var (
	// ErrNoRoute is returned when no hops could be discovered for the target
	ErrNoRoute = errors.New("could not get network hops")
	// ErrSink is returned when a route artifact could not be written
	ErrSink = errors.New("could not write route artifact")
)
