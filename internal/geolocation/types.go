// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package geolocation

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/telekom/routemap/pkg/route"
)

const (
	// DefaultURL is the base URL of the ip-api JSON endpoint.
	DefaultURL = "http://ip-api.com/json"
	// DefaultTimeout is the timeout of a single lookup.
	DefaultTimeout = 10 * time.Second
	// statusSuccess is the status ip-api reports for a resolved address.
	statusSuccess = "success"
	// fields limits the response to the data a location needs.
	fields = "status,message,country,city,lat,lon,isp"
)

// Options contains the configuration of the location resolver.
type Options struct {
	// URL is the base URL of the service. The address is appended as path segment.
	URL string `json:"url" yaml:"url" mapstructure:"url"`
	// Timeout is the timeout of a single lookup. Zero means no limit.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
	// Concurrency is the number of lookups running in parallel.
	// Values below 2 resolve the hops one after another.
	Concurrency int `json:"concurrency" yaml:"concurrency" mapstructure:"concurrency"`
}

// Validate checks the options for invalid values.
func (o *Options) Validate() error {
	if _, err := url.ParseRequestURI(o.URL); err != nil {
		return fmt.Errorf("invalid geolocation url %q: %w", o.URL, err)
	}
	if o.Timeout < 0 {
		return fmt.Errorf("invalid geolocation timeout: %v, must be 0 or greater", o.Timeout)
	}
	if o.Concurrency < 0 {
		return errors.New("geolocation concurrency must be 0 or greater")
	}
	return nil
}

// response is the ip-api JSON document.
// Pointer fields distinguish missing fields from zero values.
type response struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Country *string  `json:"country"`
	City    *string  `json:"city"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	ISP     *string  `json:"isp"`
}

// location converts the response into a [route.Location].
// It reports false if the lookup was not successful or any field is missing or empty.
func (r *response) location() (route.Location, bool) {
	if r.Status != statusSuccess {
		return route.Location{}, false
	}
	if r.Country == nil || r.City == nil || r.Lat == nil || r.Lon == nil || r.ISP == nil {
		return route.Location{}, false
	}
	if *r.Country == "" || *r.City == "" || *r.ISP == "" {
		return route.Location{}, false
	}
	return route.Location{
		Country:   *r.Country,
		City:      *r.City,
		Latitude:  *r.Lat,
		Longitude: *r.Lon,
		ISP:       *r.ISP,
	}, true
}
