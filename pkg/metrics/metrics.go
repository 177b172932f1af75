// Package metrics prometheus-метрики сервиса.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты попытки capture подтверждения (label "result")
const (
	CaptureResultOK      = "ok"
	CaptureResultSkipped = "skipped"
	CaptureResultFailed  = "failed"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsCreatedTotal   prometheus.Counter
	paymentsCompletedTotal prometheus.Counter
	bookingsCanceledTotal  prometheus.Counter
	capturesTotal          *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		bookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created",
			ConstLabels: constLabels,
		}),

		paymentsCompletedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "payments_completed_total",
			Help:        "Total number of payments marked as completed",
			ConstLabels: constLabels,
		}),

		bookingsCanceledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_canceled_total",
			Help:        "Total number of bookings canceled",
			ConstLabels: constLabels,
		}),

		capturesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "confirmation_captures_total",
			Help:        "Confirmation capture attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// BookingCreated инкрементирует счётчик созданных бронирований
func (m *Metrics) BookingCreated() {
	m.bookingsCreatedTotal.Inc()
}

// PaymentCompleted инкрементирует счётчик завершённых оплат
func (m *Metrics) PaymentCompleted() {
	m.paymentsCompletedTotal.Inc()
}

// BookingCanceled инкрементирует счётчик отменённых бронирований
func (m *Metrics) BookingCanceled() {
	m.bookingsCanceledTotal.Inc()
}

// ConfirmationCapture фиксирует попытку capture подтверждения
func (m *Metrics) ConfirmationCapture(result string) {
	m.capturesTotal.WithLabelValues(result).Inc()
}
