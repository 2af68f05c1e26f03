// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package traceroute discovers the hops between the local host and a target
// by running the platform's route-tracing command and scanning its output
// for IPv4 addresses.
//
// It exposes a [Client] whose Discover method returns the ordered list of
// hop addresses, anchored by the public address of the tracing host as the
// first element.
//
// Key features:
//   - Platform command selection once at construction time ([CommandFamily]):
//     tracert on Windows, traceroute everywhere else, overridable by [Options]
//   - A named banner rule: the first [DefaultBannerAddresses] matches of the
//     output are the tool's own echo of the target and the local gateway and
//     are not reported as hops
//   - Injectable process execution ([Runner]) and public address lookup
//     ([PublicAddressLookup]) for unit testing
//   - OpenTelemetry spans and structured logging for each discovery
//
// Typical usage:
//
//	client := traceroute.NewClient(
//		traceroute.Options{BannerAddresses: traceroute.DefaultBannerAddresses},
//		traceroute.PublicAddressOptions{URL: traceroute.DefaultPublicAddressURL},
//		traceroute.NewRunner(),
//	)
//	hops, err := client.Discover(ctx, "example.com")
//	// hops[0] is the public address of this host
package traceroute
