package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the logbook service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Business Metrics
	FlightRecordsCreatedTotal prometheus.Counter
	CSVExportsTotal           prometheus.Counter
	ValidationRejectionsTotal prometheus.CounterVec
	StoreDecodeFailuresTotal  prometheus.CounterVec
	SessionsActive            prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dronelog_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dronelog_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dronelog_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		FlightRecordsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dronelog_flight_records_created_total",
				Help: "Total flight records accepted and persisted",
			},
		),
		CSVExportsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dronelog_csv_exports_total",
				Help: "Total CSV logbook exports served",
			},
		),
		ValidationRejectionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dronelog_validation_rejections_total",
				Help: "Flight record validation rejections by rule code",
			},
			[]string{"code"},
		),
		StoreDecodeFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dronelog_store_decode_failures_total",
				Help: "Record store documents treated as empty due to decode failure",
			},
			[]string{"namespace"},
		),
		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "dronelog_sessions_active",
				Help: "Current number of live sessions",
			},
		),
	}
}
