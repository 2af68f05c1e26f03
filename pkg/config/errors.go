// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var (
	// ErrInvalidTrace is returned when the trace configuration is invalid
	ErrInvalidTrace = errors.New("invalid trace configuration")
	// ErrInvalidPublicAddress is returned when the public address lookup configuration is invalid
	ErrInvalidPublicAddress = errors.New("invalid public address configuration")
	// ErrInvalidGeolocation is returned when the geolocation configuration is invalid
	ErrInvalidGeolocation = errors.New("invalid geolocation configuration")
	// ErrInvalidOutput is returned when the output configuration is invalid
	ErrInvalidOutput = errors.New("invalid output configuration")
)
