// Copyright 2015-2017, 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var requestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "diffeo",
		Subsystem: "identifiers_client",
		Name:      "requests_total",
		Help:      "HTTP requests sent to the identifier service",
	},
	[]string{"code", "method"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "diffeo",
		Subsystem: "identifiers_client",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests to the identifier service",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration)
}

// instrument wraps a transport so that requests through it are
// counted and timed.
func instrument(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(requestsTotal,
		promhttp.InstrumentRoundTripperDuration(requestDuration, next))
}
