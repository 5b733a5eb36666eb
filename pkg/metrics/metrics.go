// Package metrics defines the Prometheus collectors used by the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all collectors of the service.
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	DBConnectionsOpen  *prometheus.GaugeVec
	DBConnectionsInUse *prometheus.GaugeVec
	DBConnectionsIdle  *prometheus.GaugeVec

	EventsPublishedTotal *prometheus.CounterVec
}

// New registers and returns the service collectors on the default registry.
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"service", "method", "path", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries.",
		}, []string{"service", "operation", "status"}),
		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Open database connections.",
		}, []string{"service"}),
		DBConnectionsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Database connections currently in use.",
		}, []string{"service"}),
		DBConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Idle database connections.",
		}, []string{"service"}),
		EventsPublishedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lifecycle_events_published_total",
			Help: "Total number of data-changed lifecycle events published.",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest records one handled HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery records one executed database query.
func (m *Metrics) ObserveDBQuery(operation, status string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBConnections records a snapshot of the connection pool state.
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	m.DBConnectionsOpen.WithLabelValues(m.serviceName).Set(float64(open))
	m.DBConnectionsInUse.WithLabelValues(m.serviceName).Set(float64(inUse))
	m.DBConnectionsIdle.WithLabelValues(m.serviceName).Set(float64(idle))
}

// IncEventPublished records one published lifecycle event.
func (m *Metrics) IncEventPublished() {
	m.EventsPublishedTotal.WithLabelValues(m.serviceName).Inc()
}
