// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package traceroute

import (
	"regexp"

	"github.com/telekom/routemap/pkg/route"
)

// ipv4Pattern matches every dotted-quad substring, including those embedded
// in hostnames. Octet values are not range checked.
var ipv4Pattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// extractAddresses returns all dotted-quad addresses of the trace output in
// order of appearance, skipping the first banner addresses.
// Repeated addresses are kept.
func extractAddresses(output []byte, banner int) []route.Address {
	matches := ipv4Pattern.FindAll(output, -1)
	if len(matches) <= banner {
		return []route.Address{}
	}

	addrs := make([]route.Address, 0, len(matches)-banner)
	for _, m := range matches[banner:] {
		addrs = append(addrs, route.Address(m))
	}
	return addrs
}
