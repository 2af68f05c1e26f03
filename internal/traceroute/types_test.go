// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		goos string
		want CommandFamily
	}{
		{goos: "windows", want: FamilyWindows},
		{goos: "linux", want: FamilyUnix},
		{goos: "darwin", want: FamilyUnix},
		{goos: "freebsd", want: FamilyUnix},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, CommandFor(tt.goos))
		})
	}
}

func TestCommandFamily_args(t *testing.T) {
	assert.Equal(t, []string{"example.com"}, FamilyUnix.args("example.com"))

	f := CommandFamily{Name: "traceroute", Args: []string{"-q", "1"}}
	assert.Equal(t, []string{"-q", "1", "example.com"}, f.args("example.com"))
	assert.Equal(t, []string{"-q", "1"}, f.Args, "args must not modify the family")
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "defaults", opts: Options{BannerAddresses: DefaultBannerAddresses}},
		{name: "no banner", opts: Options{BannerAddresses: 0}},
		{name: "with timeout", opts: Options{BannerAddresses: 2, Timeout: time.Minute}},
		{name: "negative banner", opts: Options{BannerAddresses: -1}, wantErr: true},
		{name: "negative timeout", opts: Options{Timeout: -time.Second}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Options.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPublicAddressOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    PublicAddressOptions
		wantErr bool
	}{
		{name: "defaults", opts: PublicAddressOptions{URL: DefaultPublicAddressURL, Timeout: DefaultPublicAddressTimeout}},
		{name: "no timeout", opts: PublicAddressOptions{URL: DefaultPublicAddressURL}},
		{name: "empty url", opts: PublicAddressOptions{}, wantErr: true},
		{name: "negative timeout", opts: PublicAddressOptions{URL: DefaultPublicAddressURL, Timeout: -1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("PublicAddressOptions.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
