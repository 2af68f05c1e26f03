// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	buildInfoMetricName = "routemap_build_info"
	buildInfoHelp       = "Build and platform information of this routemap instance. Always 1."
)

// RegisterBuildInfo registers the routemap_build_info metric on the given registry.
// The gauge is set to 1 with the labels version, goos, goarch and trace_command.
// An empty version is reported as "dev".
func RegisterBuildInfo(registry prometheus.Registerer, version, traceCommand string) error {
	if version == "" {
		version = "dev"
	}
	info := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: buildInfoMetricName,
			Help: buildInfoHelp,
		},
		[]string{"version", "goos", "goarch", "trace_command"},
	)
	info.WithLabelValues(version, runtime.GOOS, runtime.GOARCH, traceCommand).Set(1)
	return registry.Register(info)
}
