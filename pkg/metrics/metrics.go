package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы Prometheus сервиса
type Metrics struct {
	// HTTP
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Запросы к backend API платформы
	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	// Экспорт отчетов
	exportsTotal *prometheus.CounterVec
}

// New создает и регистрирует коллекторы метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		upstreamRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "upstream_requests_total",
				Help:        "Total number of requests to the parking backend API",
				ConstLabels: constLabels,
			},
			[]string{"endpoint", "outcome"},
		),
		upstreamRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "upstream_request_duration_seconds",
				Help:        "Parking backend API request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		exportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "report_exports_total",
				Help:        "Total number of generated report artifacts",
				ConstLabels: constLabels,
			},
			[]string{"format", "outcome"},
		),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveUpstreamRequest фиксирует запрос к backend API
// outcome: "success" | "error"
func (m *Metrics) ObserveUpstreamRequest(endpoint string, err error, duration time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.upstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.upstreamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// ObserveExport фиксирует сгенерированный отчет
// format: "csv" | "xlsx" | "summary_csv"
func (m *Metrics) ObserveExport(format string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.exportsTotal.WithLabelValues(format, outcome).Inc()
}
