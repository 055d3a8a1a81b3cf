package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/huddle-ai/huddle-ai/pkg/metrics"
)

type Metrics struct {
	apiErrorCounter  *prometheus.CounterVec
	modelRequestTime *prometheus.HistogramVec
	modelErrorCount  *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	return &Metrics{
		apiErrorCounter:  metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		modelRequestTime: metrics.NewHistogramVec("model_request_time", []string{"model"}),
		modelErrorCount:  metrics.NewCounterVec("model_error", []string{"type"}),
	}
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ModelRequestTimer(model string) *prometheus.Timer {
	return prometheus.NewTimer(m.modelRequestTime.WithLabelValues(model))
}

func (m *Metrics) ModelErrorInc(kind string) {
	m.modelErrorCount.WithLabelValues(kind).Inc()
}
