// Package metrics — Prometheus-метрики сервера: операции сервисного слоя,
// расхождения claims и HTTP-запросы.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fleet_identity"

// Metrics держит собственный реестр, чтобы тесты не делили глобальный.
type Metrics struct {
	registry *prometheus.Registry

	operations     *prometheus.CounterVec
	operationTime  *prometheus.HistogramVec
	claimsFailures *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Write operations by entity, operation and outcome",
		}, []string{"entity", "operation", "outcome"}),
		operationTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of write operations including checks and claims sync",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity", "operation"}),
		claimsFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_sync_failures_total",
			Help:      "Entity writes that succeeded while the following claims write failed",
		}, []string{"entity", "operation"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// ObserveOperation — исход и длительность операции сервисного слоя.
func (m *Metrics) ObserveOperation(entity, op, outcome string, start time.Time) {
	m.operations.WithLabelValues(entity, op, outcome).Inc()
	m.operationTime.WithLabelValues(entity, op).Observe(time.Since(start).Seconds())
}

// IncClaimsSyncFailure — сущность записана, claims нет.
func (m *Metrics) IncClaimsSyncFailure(entity, op string) {
	m.claimsFailures.WithLabelValues(entity, op).Inc()
}

// ObserveHTTP — route это шаблон chi (/api/v1/users/{id}), а не сырой путь.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler отдаёт метрики в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
