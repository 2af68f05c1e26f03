// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package geolocation

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/routemap/pkg/route"
)

const testURL = "http://ip-api.test/json"

func lookupURL(addr string) string {
	return fmt.Sprintf("%s/%s", testURL, addr)
}

func successBody(city string) map[string]any {
	return map[string]any{
		"status":  "success",
		"country": "Germany",
		"city":    city,
		"lat":     52.52,
		"lon":     13.405,
		"isp":     "Deutsche Telekom AG",
	}
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
		want      route.Location
	}{
		{
			name:      "success",
			responder: httpmock.NewJsonResponderOrPanic(http.StatusOK, successBody("Berlin")),
			want:      route.Location{Country: "Germany", City: "Berlin", Latitude: 52.52, Longitude: 13.405, ISP: "Deutsche Telekom AG"},
		},
		{
			name: "success at null island",
			responder: httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
				"status": "success", "country": "Nowhere", "city": "Sea", "lat": 0, "lon": 0, "isp": "Fish",
			}),
			want: route.Location{Country: "Nowhere", City: "Sea", ISP: "Fish"},
		},
		{
			name: "private range reported as fail",
			responder: httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
				"status": "fail", "message": "private range",
			}),
			want: route.UnknownLocation(),
		},
		{
			name: "missing coordinates",
			responder: httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
				"status": "success", "country": "Germany", "city": "Berlin", "isp": "Deutsche Telekom AG",
			}),
			want: route.UnknownLocation(),
		},
		{
			name:      "empty city",
			responder: httpmock.NewJsonResponderOrPanic(http.StatusOK, successBody("")),
			want:      route.UnknownLocation(),
		},
		{
			name:      "malformed body",
			responder: httpmock.NewStringResponder(http.StatusOK, "<html>not json</html>"),
			want:      route.UnknownLocation(),
		},
		{
			name:      "rate limited",
			responder: httpmock.NewStringResponder(http.StatusTooManyRequests, ""),
			want:      route.UnknownLocation(),
		},
		{
			name:      "network error",
			responder: httpmock.NewErrorResponder(errors.New("connection reset by peer")),
			want:      route.UnknownLocation(),
		},
	}

	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder(http.MethodGet, lookupURL("198.51.100.7"), tt.responder)

			r := NewResolver(Options{URL: testURL, Timeout: time.Second})
			got := r.Resolve(t.Context(), "198.51.100.7")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, httpmock.GetTotalCallCount(), "exactly one request per address")
		})
	}
}

func TestResolver_Resolve_baseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		query   map[string]string
	}{
		{
			name:    "plain",
			baseURL: testURL,
			query:   map[string]string{"fields": fields},
		},
		{
			name:    "trailing slash",
			baseURL: testURL + "/",
			query:   map[string]string{"fields": fields},
		},
		{
			name:    "existing query is kept",
			baseURL: testURL + "?lang=de",
			query:   map[string]string{"fields": fields, "lang": "de"},
		},
		{
			name:    "fields of the base url are replaced",
			baseURL: testURL + "?fields=status&lang=de",
			query:   map[string]string{"fields": fields, "lang": "de"},
		},
	}

	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponderWithQuery(http.MethodGet, lookupURL("198.51.100.7"), tt.query,
				httpmock.NewJsonResponderOrPanic(http.StatusOK, successBody("Berlin")))

			got := NewResolver(Options{URL: tt.baseURL}).Resolve(t.Context(), "198.51.100.7")

			assert.Equal(t, "Berlin", got.City)
			assert.Equal(t, 1, httpmock.GetTotalCallCount())
		})
	}
}

func TestResolver_Resolve_totality(t *testing.T) {
	bodies := []httpmock.Responder{
		httpmock.NewJsonResponderOrPanic(http.StatusOK, successBody("Berlin")),
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{"status": "success"}),
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{"status": "success", "country": "Germany"}),
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{"status": "fail", "country": "Germany", "city": "Berlin"}),
		httpmock.NewStringResponder(http.StatusOK, "{}"),
		httpmock.NewStringResponder(http.StatusInternalServerError, "oops"),
	}

	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	for i, responder := range bodies {
		t.Run(fmt.Sprintf("response %d", i), func(t *testing.T) {
			httpmock.RegisterResponder(http.MethodGet, lookupURL("192.0.2.1"), responder)
			got := NewResolver(Options{URL: testURL}).Resolve(t.Context(), "192.0.2.1")

			if got.IsUnknown() {
				return
			}
			assert.NotEmpty(t, got.Country)
			assert.NotEmpty(t, got.City)
			assert.NotEmpty(t, got.ISP)
		})
	}
}

func TestResolver_Resolve_unreachableIsIdempotent(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterNoResponder(httpmock.NewErrorResponder(errors.New("no route to host")))

	r := NewResolver(Options{URL: testURL})
	first := r.Resolve(t.Context(), "203.0.113.5")
	second := r.Resolve(t.Context(), "203.0.113.5")

	assert.Equal(t, route.UnknownLocation(), first)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, httpmock.GetTotalCallCount(), "nothing is cached")
}

func TestResolver_ResolveAll(t *testing.T) {
	addrs := []route.Address{"203.0.113.5", "198.51.100.7", "192.0.2.44", "10.0.0.1"}

	for _, concurrency := range []int{0, 1, 2, 8} {
		t.Run(fmt.Sprintf("concurrency %d", concurrency), func(t *testing.T) {
			httpmock.Activate()
			defer httpmock.DeactivateAndReset()

			for _, a := range addrs[:3] {
				httpmock.RegisterResponder(http.MethodGet, lookupURL(a.String()),
					httpmock.NewJsonResponderOrPanic(http.StatusOK, successBody("City of "+a.String())))
			}
			httpmock.RegisterResponder(http.MethodGet, lookupURL("10.0.0.1"),
				httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{"status": "fail", "message": "private range"}))

			r := NewResolver(Options{URL: testURL, Concurrency: concurrency})
			got := r.ResolveAll(t.Context(), addrs)

			require.Len(t, got, len(addrs))
			for i, a := range addrs[:3] {
				assert.Equal(t, "City of "+a.String(), got[i].City, "locations must keep the order of the addresses")
			}
			assert.True(t, got[3].IsUnknown())
			assert.Equal(t, len(addrs), httpmock.GetTotalCallCount())
		})
	}
}

func TestResolver_ResolveAll_empty(t *testing.T) {
	got := NewResolver(Options{URL: testURL}).ResolveAll(t.Context(), nil)
	assert.Empty(t, got)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "defaults", opts: Options{URL: DefaultURL, Timeout: DefaultTimeout, Concurrency: 1}},
		{name: "parallel", opts: Options{URL: DefaultURL, Concurrency: 4}},
		{name: "empty url", opts: Options{}, wantErr: true},
		{name: "relative url", opts: Options{URL: "ip-api.com/json"}, wantErr: true},
		{name: "negative timeout", opts: Options{URL: DefaultURL, Timeout: -1}, wantErr: true},
		{name: "negative concurrency", opts: Options{URL: DefaultURL, Concurrency: -1}, wantErr: true},
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
