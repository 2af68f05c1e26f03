// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"net"
)

// DefaultAddress is the listening address of the api server.
const DefaultAddress = ":8080"

// Config is the configuration for the api server
type Config struct {
	ListeningAddress string    `yaml:"address" mapstructure:"address"`
	Tls              TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// TLSConfig is the configuration for tls
type TLSConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	CertPath string `yaml:"certPath" mapstructure:"certPath"`
	KeyPath  string `yaml:"keyPath" mapstructure:"keyPath"`
}

// Validate validates the api configuration
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.ListeningAddress); err != nil {
		return errors.Join(ErrInvalidAddress, err)
	}
	if c.Tls.Enabled && (c.Tls.CertPath == "" || c.Tls.KeyPath == "") {
		return ErrMissingTLSFiles
	}
	return nil
}
