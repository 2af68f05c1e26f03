// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package route

import "time"

// Clock returns the current time.
type Clock func() time.Time

// Assembler builds [Route] records from discovered addresses and their resolved locations.
type Assembler struct {
	now Clock
}

// NewAssembler returns an assembler using the given clock.
// A nil clock falls back to [time.Now].
func NewAssembler(clock Clock) *Assembler {
	if clock == nil {
		clock = time.Now
	}
	return &Assembler{now: clock}
}

// Assemble pairs addresses and locations by position, numbers the hops
// starting at 1 and stamps the route with the current time.
//
// The caller must pass slices of equal length where locations[i] is the
// resolution of addresses[i]. Extra elements of the longer slice are dropped.
func (a *Assembler) Assemble(addresses []Address, locations []Location) Route {
	n := min(len(addresses), len(locations))

	hops := make([]Hop, n)
	for i := range n {
		hops[i] = Hop{
			Number:   i + 1,
			Address:  addresses[i],
			Location: locations[i],
		}
	}

	return Route{
		CapturedAt: a.now(),
		Hops:       hops,
	}
}
