package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa as métricas Prometheus da API.
// Todos os métodos aceitam receiver nil para que clientes sem instrumentação continuem funcionando.
type Metrics struct {
	// HTTP
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	// Graph API
	UpstreamRequests *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec
	PagesFetched     *prometheus.CounterVec

	// Dashboard
	DashboardRefreshes *prometheus.CounterVec
	AccountFailures    *prometheus.CounterVec
	CacheLookups       *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics registra as métricas no registry informado
func NewMetrics(namespace string, reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Requisições HTTP atendidas por rota",
			},
			[]string{"route", "method", "status"},
		),
		HTTPLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latência das requisições HTTP por rota",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		UpstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "meta_requests_total",
				Help:      "Total de requisições feitas ao Graph API",
			},
			[]string{"endpoint", "status"},
		),
		UpstreamLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "meta_request_duration_seconds",
				Help:      "Latência das requisições ao Graph API",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		PagesFetched: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "meta_pages_fetched_total",
				Help:      "Páginas de resultados lidas do Graph API",
			},
			[]string{"endpoint"},
		),
		DashboardRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dashboard_refreshes_total",
				Help:      "Cálculos do dashboard por resultado",
			},
			[]string{"outcome"},
		),
		AccountFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dashboard_account_failures_total",
				Help:      "Contas que falharam durante o cálculo do dashboard",
			},
			[]string{"status"},
		),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dashboard_cache_lookups_total",
				Help:      "Consultas ao cache do dashboard",
			},
			[]string{"result"},
		),
		gatherer: reg,
	}
}

// Handler expõe as métricas registradas
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// RecordHTTPRequest usa o padrão da rota (ex: /api/meta/campaigns/:id/creatives) para limitar a cardinalidade
func (m *Metrics) RecordHTTPRequest(route, method string, status int, latency time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(route, method).Observe(latency.Seconds())
}

func (m *Metrics) RecordUpstreamRequest(endpoint string, status int, latency time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.UpstreamLatency.WithLabelValues(endpoint).Observe(latency.Seconds())
}

func (m *Metrics) RecordPage(endpoint string) {
	if m == nil {
		return
	}
	m.PagesFetched.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) RecordDashboardRefresh(outcome string) {
	if m == nil {
		return
	}
	m.DashboardRefreshes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordAccountFailure(status int) {
	if m == nil {
		return
	}
	m.AccountFailures.WithLabelValues(strconv.Itoa(status)).Inc()
}

func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
