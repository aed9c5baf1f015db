package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	aggregationRequests *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
	recordsAggregated   *prometheus.CounterVec
	searchRequests      *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		aggregationRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregation_requests_total",
				Help: "Total number of aggregation requests by type",
			},
			[]string{"aggregation_type"},
		),
		aggregationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aggregation_duration_milliseconds",
				Help:    "Aggregation computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"aggregation_type"},
		),
		recordsAggregated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "records_aggregated_total",
				Help: "Total number of transaction records folded into aggregations",
			},
			[]string{"aggregation_type"},
		),
		searchRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_requests_total",
				Help: "Total number of transaction search requests by endpoint",
			},
			[]string{"endpoint"},
		),
	}
}

func (m *PrometheusMetrics) RecordAggregation(aggregationType string, durationMs float64) {
	m.aggregationRequests.WithLabelValues(aggregationType).Inc()
	m.aggregationDuration.WithLabelValues(aggregationType).Observe(durationMs)
}

func (m *PrometheusMetrics) RecordRecordsAggregated(aggregationType string, count int) {
	m.recordsAggregated.WithLabelValues(aggregationType).Add(float64(count))
}

func (m *PrometheusMetrics) RecordSearch(endpoint string) {
	m.searchRequests.WithLabelValues(endpoint).Inc()
}
