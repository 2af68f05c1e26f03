// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultBannerAddresses is the number of addresses a trace command prints
	// before the first real hop.
	//
	// The assumption is that the tool first echoes the resolved target address
	// in its banner line and then reports the local gateway, neither of which
	// is treated as a hop of the route.
	DefaultBannerAddresses = 2
	// DefaultPublicAddressURL is the endpoint returning the caller's public address as plain text.
	DefaultPublicAddressURL = "https://api64.ipify.org"
	// DefaultPublicAddressTimeout is the timeout of the public address lookup.
	DefaultPublicAddressTimeout = 10 * time.Second
)

// Platform names as reported by [runtime.GOOS].
const (
	platformWindows = "windows"
)

// CommandFamily describes the route-tracing command of a platform family.
type CommandFamily struct {
	// Name is the executable to run.
	Name string
	// Args are passed before the target.
	Args []string
}

var (
	// FamilyUnix is the traceroute command of Linux, macOS and the BSDs.
	FamilyUnix = CommandFamily{Name: "traceroute"}
	// FamilyWindows is the tracert command of Windows.
	FamilyWindows = CommandFamily{Name: "tracert"}
)

// CommandFor returns the command family for the given platform.
func CommandFor(goos string) CommandFamily {
	if goos == platformWindows {
		return FamilyWindows
	}
	return FamilyUnix
}

// args returns the full argument list for tracing the target.
func (f CommandFamily) args(target string) []string {
	args := make([]string, 0, len(f.Args)+1)
	args = append(args, f.Args...)
	return append(args, target)
}

func (f CommandFamily) String() string {
	return f.Name
}

// Options contains the configuration of the hop discovery.
type Options struct {
	// Command overrides the platform trace command.
	Command string `json:"command" yaml:"command" mapstructure:"command"`
	// BannerAddresses is the number of leading addresses of the trace output
	// that are not hops.
	BannerAddresses int `json:"bannerAddresses" yaml:"bannerAddresses" mapstructure:"bannerAddresses"`
	// Timeout limits the runtime of the trace command. Zero means no limit.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Validate checks the options for invalid values.
func (o *Options) Validate() error {
	if o.BannerAddresses < 0 {
		return fmt.Errorf("invalid banner addresses: %d, must be 0 or greater", o.BannerAddresses)
	}
	if o.Timeout < 0 {
		return fmt.Errorf("invalid trace timeout: %v, must be 0 or greater", o.Timeout)
	}
	return nil
}

// PublicAddressOptions contains the configuration of the public address lookup.
type PublicAddressOptions struct {
	// URL is the endpoint returning the public address as plain text.
	URL string `json:"url" yaml:"url" mapstructure:"url"`
	// Timeout is the timeout of the lookup request.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Validate checks the options for invalid values.
func (o *PublicAddressOptions) Validate() error {
	if o.URL == "" {
		return errors.New("public address url cannot be empty")
	}
	if o.Timeout < 0 {
		return fmt.Errorf("invalid public address timeout: %v, must be 0 or greater", o.Timeout)
	}
	return nil
}
