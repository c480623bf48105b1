package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "callcenter"

// Metrics набор Prometheus метрик сервиса.
// Методы безопасно вызывать на nil (метрики выключены в конфиге).
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	BookingsCreated           *prometheus.CounterVec
	BookingsCancelled         *prometheus.CounterVec
	SlotUnavailable           *prometheus.CounterVec
	CapacityPartialFailures   *prometheus.CounterVec
	CapacityConsistencyErrors *prometheus.CounterVec
	PolicyClassifications     *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Database query latency",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBQueryErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_query_errors_total",
			Help:      "Total number of failed database calls",
		}, []string{"service", "operation"}),

		DBOpenConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_open_connections",
			Help:      "Number of established connections",
		}, []string{"service"}),

		DBInUse: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_in_use_connections",
			Help:      "Number of connections currently in use",
		}, []string{"service"}),

		DBIdle: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_idle_connections",
			Help:      "Number of idle connections",
		}, []string{"service"}),

		DBWaitCount: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_wait_count",
			Help:      "Total number of connections waited for",
		}, []string{"service"}),

		BookingsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Number of bookings created",
		}, []string{"service", "queue"}),

		BookingsCancelled: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_cancelled_total",
			Help:      "Number of bookings deleted",
		}, []string{"service", "queue"}),

		SlotUnavailable: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_unavailable_total",
			Help:      "Booking attempts rejected because the slot is full or absent",
		}, []string{"service", "queue"}),

		CapacityPartialFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capacity_partial_failures_total",
			Help:      "Slot counter and booking record mutations that could not be committed or rolled back together",
		}, []string{"service", "operation"}),

		CapacityConsistencyErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capacity_consistency_errors_total",
			Help:      "Cancellations whose slot counter could not be decremented",
		}, []string{"service", "queue"}),

		PolicyClassifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policy_classifications_total",
			Help:      "Policy lookups by resulting customer category",
		}, []string{"service", "category"}),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(seconds)
}

func (m *Metrics) ObserveDBQuery(operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(seconds)
	if err != nil {
		m.DBQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues(m.serviceName).Set(float64(open))
	m.DBInUse.WithLabelValues(m.serviceName).Set(float64(inUse))
	m.DBIdle.WithLabelValues(m.serviceName).Set(float64(idle))
	m.DBWaitCount.WithLabelValues(m.serviceName).Set(float64(waitCount))
}

func (m *Metrics) BookingCreated(queue string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(m.serviceName, queue).Inc()
}

func (m *Metrics) BookingCancelled(queue string) {
	if m == nil {
		return
	}
	m.BookingsCancelled.WithLabelValues(m.serviceName, queue).Inc()
}

func (m *Metrics) SlotUnavailableHit(queue string) {
	if m == nil {
		return
	}
	m.SlotUnavailable.WithLabelValues(m.serviceName, queue).Inc()
}

func (m *Metrics) PartialFailure(operation string) {
	if m == nil {
		return
	}
	m.CapacityPartialFailures.WithLabelValues(m.serviceName, operation).Inc()
}

func (m *Metrics) ConsistencyError(queue string) {
	if m == nil {
		return
	}
	m.CapacityConsistencyErrors.WithLabelValues(m.serviceName, queue).Inc()
}

func (m *Metrics) PolicyClassified(category string) {
	if m == nil {
		return
	}
	m.PolicyClassifications.WithLabelValues(m.serviceName, category).Inc()
}
