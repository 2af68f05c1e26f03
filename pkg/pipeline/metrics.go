// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/telekom/routemap/pkg/route"
)

// Run status label values.
const (
	statusSuccess = "success"
	statusNoRoute = "no_route"
	statusError   = "error"
)

// Lookup result label values.
const (
	lookupResolved = "resolved"
	lookupUnknown  = "unknown"
)

// metrics defines the metric collectors of the pipeline
type metrics struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	hops     prometheus.Gauge
	lookups  *prometheus.CounterVec
}

// newMetrics initializes metric collectors of the pipeline
func newMetrics() metrics {
	return metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routemap_traces_total",
				Help: "Total number of route traces and their outcome.",
			},
			[]string{"status"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "routemap_trace_duration_seconds",
				Help:    "Histogram of the duration of route traces in seconds.",
				Buckets: []float64{1, 5, 10, 20, 30, 60, 120},
			},
		),
		hops: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "routemap_route_hops",
				Help: "Number of hops of the last assembled route.",
			},
		),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routemap_geolocation_lookups_total",
				Help: "Total number of hop location lookups and whether the location was resolved.",
			},
			[]string{"result"},
		),
	}
}

// GetCollectors returns all metric collectors
func (m *metrics) GetCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.runs,
		m.duration,
		m.hops,
		m.lookups,
	}
}

// observeRun records the outcome and duration of one run
func (m *metrics) observeRun(status string, d time.Duration) {
	m.runs.WithLabelValues(status).Inc()
	m.duration.Observe(d.Seconds())
}

// observeRoute records the hops of an assembled route and their lookup results
func (m *metrics) observeRoute(r *route.Route) {
	m.hops.Set(float64(len(r.Hops)))
	resolved := r.Resolved()
	m.lookups.WithLabelValues(lookupResolved).Add(float64(resolved))
	m.lookups.WithLabelValues(lookupUnknown).Add(float64(len(r.Hops) - resolved))
}
