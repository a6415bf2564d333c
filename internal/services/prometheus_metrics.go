package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	recordsCreatedTotal       *prometheus.CounterVec
	recordsUpdatedTotal       *prometheus.CounterVec
	recordsDeletedTotal       *prometheus.CounterVec
	dashboardRequestsTotal    *prometheus.CounterVec
	aggregationDuration       prometheus.Histogram
	projectionDuration        prometheus.Histogram
	userSearchRequests        *prometheus.CounterVec
	userSearchDuration        prometheus.Histogram
	sampleRecordsSeeded       *prometheus.CounterVec
	activeUsersTotal          prometheus.Gauge
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		recordsCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "financial_records_created_total",
				Help: "Total number of financial records created by resource type",
			},
			[]string{"resource"},
		),
		recordsUpdatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "financial_records_updated_total",
				Help: "Total number of financial records updated by resource type",
			},
			[]string{"resource"},
		),
		recordsDeletedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "financial_records_deleted_total",
				Help: "Total number of financial records deleted by resource type",
			},
			[]string{"resource"},
		),
		dashboardRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_requests_total",
				Help: "Total number of dashboard aggregation requests",
			},
			[]string{"view", "status"},
		),
		aggregationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_aggregation_duration_milliseconds",
				Help:    "Dashboard aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		projectionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "projection_duration_milliseconds",
				Help:    "Time-bucketed projection duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		userSearchRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "user_search_requests_total",
				Help: "Total number of user search requests",
			},
			[]string{"status"},
		),
		userSearchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "user_search_duration_seconds",
				Help:    "User search duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		sampleRecordsSeeded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sample_records_seeded_total",
				Help: "Total number of sample records generated by resource type",
			},
			[]string{"resource"},
		),
		activeUsersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_users_total",
				Help: "Current number of active users",
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	resource := tags["resource"]
	status := tags["status"]

	switch name {
	case "record.created":
		if resource != "" {
			m.recordsCreatedTotal.WithLabelValues(resource).Inc()
		}
	case "record.updated":
		if resource != "" {
			m.recordsUpdatedTotal.WithLabelValues(resource).Inc()
		}
	case "record.deleted":
		if resource != "" {
			m.recordsDeletedTotal.WithLabelValues(resource).Inc()
		}
	case "dashboard.request":
		if view := tags["view"]; view != "" && status != "" {
			m.dashboardRequestsTotal.WithLabelValues(view, status).Inc()
		}
	case "user_search_request":
		if status != "" {
			m.userSearchRequests.WithLabelValues(status).Inc()
		}
	case "sample_data.seeded":
		if resource != "" {
			m.sampleRecordsSeeded.WithLabelValues(resource).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard.aggregation":
		m.aggregationDuration.Observe(float64(duration.Milliseconds()))
	case "dashboard.projection":
		m.projectionDuration.Observe(float64(duration.Milliseconds()))
	case "user_search":
		m.userSearchDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "active_users":
		m.activeUsersTotal.Set(value)
	}
}
