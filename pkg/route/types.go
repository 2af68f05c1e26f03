// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package route holds the route record produced by a trace and the
// assembler that builds it from discovered addresses and their locations.
package route

import (
	"fmt"
	"time"
)

// Unknown is the value every [Location] field holds when an address
// could not be resolved.
const Unknown = "Unknown"

// Address is a dotted-quad IPv4 address as extracted from the trace output.
// It is not validated beyond the extraction pattern, so private or
// malformed addresses may occur.
type Address string

func (a Address) String() string {
	return string(a)
}

// Location is the approximate geographic and operator information of an address.
// A Location is either fully resolved or equal to [UnknownLocation].
type Location struct {
	Country   string  `json:"country" yaml:"country"`
	City      string  `json:"city" yaml:"city"`
	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lon" yaml:"lon"`
	ISP       string  `json:"isp" yaml:"isp"`
}

// UnknownLocation returns the sentinel location used whenever an address
// cannot be resolved.
func UnknownLocation() Location {
	return Location{
		Country:   Unknown,
		City:      Unknown,
		Latitude:  0,
		Longitude: 0,
		ISP:       Unknown,
	}
}

// IsUnknown reports whether the location is the unknown sentinel.
func (l Location) IsUnknown() bool {
	return l == UnknownLocation()
}

// HasCoordinates reports whether the location can be placed on a map.
func (l Location) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

func (l Location) String() string {
	return fmt.Sprintf("%s, %s", l.City, l.Country)
}

// Hop is a single numbered point along a route.
type Hop struct {
	// Number is the 1-based position of the hop in the route.
	Number   int      `json:"hop_number" yaml:"hop_number"`
	Address  Address  `json:"ip" yaml:"ip"`
	Location Location `json:"location" yaml:"location"`
}

func (h Hop) String() string {
	return fmt.Sprintf("%-3d %-15s  %-40.40s  %s", h.Number, h.Address, h.Location.String(), h.Location.ISP)
}

// Route is the timestamped, ordered collection of hops of one trace.
// The first hop is the public address of the tracing host.
type Route struct {
	CapturedAt time.Time `json:"timestamp" yaml:"timestamp"`
	Hops       []Hop     `json:"hops" yaml:"hops"`
}

// Origin returns the first hop of the route.
func (r *Route) Origin() (Hop, bool) {
	if len(r.Hops) == 0 {
		return Hop{}, false
	}
	return r.Hops[0], true
}

// Destination returns the last hop of the route.
// By convention this is the target or the last responding hop.
func (r *Route) Destination() (Hop, bool) {
	if len(r.Hops) == 0 {
		return Hop{}, false
	}
	return r.Hops[len(r.Hops)-1], true
}

// Resolved returns the number of hops with a resolved location.
func (r *Route) Resolved() int {
	n := 0
	for _, h := range r.Hops {
		if !h.Location.IsUnknown() {
			n++
		}
	}
	return n
}
