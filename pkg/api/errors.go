// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress is returned when the listening address cannot be parsed
	ErrInvalidAddress = errors.New("invalid listening address")
	// ErrMissingTLSFiles is returned when tls is enabled without certificate or key
	ErrMissingTLSFiles = errors.New("tls enabled but certificate or key path missing")
	// ErrInvalidTarget is returned when a trace target is neither an ip address nor a hostname
	ErrInvalidTarget = errors.New("target must be an ip address or a hostname")
	// ErrServerStop is returned when the api server was stopped unexpectedly
	ErrServerStop = errors.New("api server stopped")
)

type ErrCreateOpenapiSchema struct {
	name string
	err  error
}

func (e ErrCreateOpenapiSchema) Error() string {
	return fmt.Sprintf("failed to get schema for %s: %v", e.name, e.err)
}

func (e ErrCreateOpenapiSchema) Unwrap() error {
	return e.err
}
