// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Package geolocation resolves hop addresses to approximate locations using
// an ip-api compatible HTTP service.
//
// Resolution never fails towards the caller: any error while querying the
// service yields [route.UnknownLocation], so consumers of the route record
// never have to special-case lookup failures.
package geolocation
