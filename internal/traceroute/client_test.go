// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/routemap/pkg/route"
)

const testPublicAddress route.Address = "203.0.113.5"

func newTestClient(t *testing.T, opts Options, runner *RunnerMock, public *PublicAddressLookupMock) *genericClient {
	t.Helper()
	if public == nil {
		public = &PublicAddressLookupMock{
			LookupFunc: func(context.Context) (route.Address, error) {
				return testPublicAddress, nil
			},
		}
	}
	return newClient(opts, runner, public, "linux")
}

func outputRunner(out string, err error) *RunnerMock {
	return &RunnerMock{
		RunFunc: func(context.Context, string, ...string) ([]byte, error) {
			return []byte(out), err
		},
	}
}

func TestClient_Discover(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    []route.Address
		wantErr error
	}{
		{
			name:   "four addresses drop the banner",
			output: "traceroute to 192.0.2.10\n 1 192.168.1.1\n 2 198.51.100.7\n 3 192.0.2.10\n",
			want:   []route.Address{testPublicAddress, "198.51.100.7", "192.0.2.10"},
		},
		{
			name:   "linux output",
			output: linuxOutput,
			want:   []route.Address{testPublicAddress, "62.155.242.161", "217.5.87.50", "93.184.215.14", "93.184.215.14"},
		},
		{
			name:   "only banner addresses",
			output: "traceroute to 192.0.2.10 (192.0.2.10)\n 1 * * *\n",
			want:   []route.Address{testPublicAddress},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := outputRunner(tt.output, nil)
			c := newTestClient(t, Options{BannerAddresses: DefaultBannerAddresses}, runner, nil)

			got, err := c.Discover(t.Context(), "example.com")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			require.Len(t, runner.RunCalls(), 1)
			call := runner.RunCalls()[0]
			assert.Equal(t, "traceroute", call.Name)
			assert.Equal(t, []string{"example.com"}, call.Args)
		})
	}
}

func TestClient_Discover_publicAddressFirst(t *testing.T) {
	outputs := []string{"", "1.1.1.1", linuxOutput, windowsOutput}
	for _, out := range outputs {
		c := newTestClient(t, Options{BannerAddresses: DefaultBannerAddresses}, outputRunner(out, nil), nil)
		got, err := c.Discover(t.Context(), "example.com")
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, testPublicAddress, got[0])
	}
}

func TestClient_Discover_traceFailed(t *testing.T) {
	public := &PublicAddressLookupMock{
		LookupFunc: func(context.Context) (route.Address, error) {
			return testPublicAddress, nil
		},
	}
	runner := outputRunner("traceroute: unknown host nowhere.invalid", errors.New("exit status 1"))
	c := newTestClient(t, Options{BannerAddresses: DefaultBannerAddresses}, runner, public)

	got, err := c.Discover(t.Context(), "nowhere.invalid")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTraceFailed)
	assert.Empty(t, got)
	assert.Empty(t, public.LookupCalls(), "public address must not be looked up when the trace failed")
}

func TestClient_Discover_publicAddressFailed(t *testing.T) {
	public := &PublicAddressLookupMock{
		LookupFunc: func(context.Context) (route.Address, error) {
			return "", ErrPublicAddress
		},
	}
	c := newTestClient(t, Options{BannerAddresses: DefaultBannerAddresses}, outputRunner(linuxOutput, nil), public)

	got, err := c.Discover(t.Context(), "example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPublicAddress)
	assert.Nil(t, got)
}

func TestClient_Discover_emptyTarget(t *testing.T) {
	runner := outputRunner(linuxOutput, nil)
	c := newTestClient(t, Options{BannerAddresses: DefaultBannerAddresses}, runner, nil)

	_, err := c.Discover(t.Context(), "")
	assert.ErrorIs(t, err, ErrEmptyTarget)
	assert.Empty(t, runner.RunCalls())
}

func TestClient_Discover_timeout(t *testing.T) {
	runner := &RunnerMock{
		RunFunc: func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
			<-ctx.Done()
			return nil, errors.New("signal: killed")
		},
	}
	c := newTestClient(t, Options{BannerAddresses: DefaultBannerAddresses, Timeout: 10 * time.Millisecond}, runner, nil)

	_, err := c.Discover(t.Context(), "example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTraceFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewClient_commandSelection(t *testing.T) {
	tests := []struct {
		name string
		goos string
		opts Options
		want string
	}{
		{name: "linux default", goos: "linux", want: "traceroute"},
		{name: "windows default", goos: "windows", want: "tracert"},
		{name: "override", goos: "windows", opts: Options{Command: "/usr/sbin/traceroute"}, want: "/usr/sbin/traceroute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := outputRunner("", nil)
			c := newClient(tt.opts, runner, &PublicAddressLookupMock{
				LookupFunc: func(context.Context) (route.Address, error) { return testPublicAddress, nil },
			}, tt.goos)

			_, err := c.Discover(t.Context(), "bücher.de")
			require.NoError(t, err)
			require.Len(t, runner.RunCalls(), 1)
			assert.Equal(t, tt.want, runner.RunCalls()[0].Name)
			assert.Equal(t, []string{"xn--bcher-kva.de"}, runner.RunCalls()[0].Args)
		})
	}
}
