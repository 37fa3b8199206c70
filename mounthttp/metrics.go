// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package mounthttp

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are the prometheus collectors for an adapter.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// NewMetrics creates and registers an adapter's collectors.  Collectors that
// are already registered, e.g. by a previous adapter, are reused.
func NewMetrics(r prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled by the adapter.",
			},
			[]string{"code", "method"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"code", "method"},
		),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being handled.",
		}),
	}

	var err error
	if m.Requests, err = register(r, m.Requests); err != nil {
		return nil, err
	}

	if m.Duration, err = register(r, m.Duration); err != nil {
		return nil, err
	}

	if m.InFlight, err = register(r, m.InFlight); err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](r prometheus.Registerer, c C) (C, error) {
	err := r.Register(c)
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, err
}

// Then instruments next.
func (m *Metrics) Then(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerInFlight(
		m.InFlight,
		promhttp.InstrumentHandlerDuration(
			m.Duration,
			promhttp.InstrumentHandlerCounter(m.Requests, next),
		),
	)
}
