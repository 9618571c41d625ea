// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"net/http"

	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Wrapper = (*metricsWrapper)(nil)

type metricsWrapper struct {
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsWrapper returns a [Wrapper] that records request counts and
// latencies in [registry].
func NewMetricsWrapper(namespace string, registry prometheus.Registerer) (Wrapper, error) {
	m := &metricsWrapper{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_requests_in_flight",
			Help:      "number of requests being served",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests",
			Help:      "number of requests served",
		}, []string{"code", "method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "time spent serving requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		registry.Register(m.inFlight),
		registry.Register(m.requests),
		registry.Register(m.duration),
	)
	return m, errs.Err
}

func (m *metricsWrapper) WrapHandler(h http.Handler) http.Handler {
	return promhttp.InstrumentHandlerInFlight(m.inFlight,
		promhttp.InstrumentHandlerDuration(m.duration,
			promhttp.InstrumentHandlerCounter(m.requests, h),
		),
	)
}
