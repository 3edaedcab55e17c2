package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
// Все методы Record* безопасны для nil-получателя: при выключенных метриках
// в зависимости можно передавать nil
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	BookingsCreated      *prometheus.CounterVec
	MalformedRecords     *prometheus.CounterVec
	DegradedReads        *prometheus.CounterVec
	NotificationFailures *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),

		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Number of confirmed bookings written to the record store",
		}, []string{"service", "service_type"}),

		MalformedRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_records_malformed_total",
			Help: "Booking records resolved through a fallback or default",
		}, []string{"service", "reason"}),

		DegradedReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_degraded_reads_total",
			Help: "Availability queries answered without occupancy because the store read failed",
		}, []string{"service"}),

		NotificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_notification_failures_total",
			Help: "Failed deliveries of booking-created notifications",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.BookingsCreated,
		m.MalformedRecords,
		m.DegradedReads,
		m.NotificationFailures,
	)

	return m
}

// ServiceName возвращает имя сервиса, используемое в label "service"
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

// RecordBookingCreated учитывает успешно записанное бронирование
func (m *Metrics) RecordBookingCreated(serviceType string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(m.serviceName, serviceType).Inc()
}

// RecordMalformedRecord учитывает запись, разрешенную через fallback
func (m *Metrics) RecordMalformedRecord(reason string) {
	if m == nil {
		return
	}
	m.MalformedRecords.WithLabelValues(m.serviceName, reason).Inc()
}

// RecordDegradedRead учитывает ответ о доступности без данных о занятости
func (m *Metrics) RecordDegradedRead() {
	if m == nil {
		return
	}
	m.DegradedReads.WithLabelValues(m.serviceName).Inc()
}

// RecordNotificationFailure учитывает неудачную отправку уведомления
func (m *Metrics) RecordNotificationFailure() {
	if m == nil {
		return
	}
	m.NotificationFailures.WithLabelValues(m.serviceName).Inc()
}
