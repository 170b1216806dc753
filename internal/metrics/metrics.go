// Package metrics exposes Prometheus collectors for ledger recomputes,
// writes and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds a private registry and every collector the server reports.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry          *prometheus.Registry
	handler           http.Handler
	recomputes        *prometheus.CounterVec
	recomputeDuration prometheus.Histogram
	gaps              *prometheus.CounterVec
	writes            *prometheus.CounterVec
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
}

// New initializes the registry and collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	recomputes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carnival_recomputes_total",
		Help: "Ledger recomputations by outcome.",
	}, []string{"outcome"})
	recomputeDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "carnival_recompute_duration_seconds",
		Help:    "Time spent loading and computing one ledger report.",
		Buckets: prometheus.DefBuckets,
	})
	gaps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carnival_referential_gaps_total",
		Help: "Records skipped or flagged during recomputation, by kind.",
	}, []string{"kind"})
	writes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carnival_writes_total",
		Help: "Ledger writes by operation and outcome.",
	}, []string{"operation", "outcome"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carnival_http_requests_total",
		Help: "HTTP requests by route and status.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "carnival_http_request_duration_seconds",
		Help:    "HTTP request duration per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	registry.MustRegister(recomputes, recomputeDuration, gaps, writes, requests, duration)
	return &Metrics{
		registry:          registry,
		handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		recomputes:        recomputes,
		recomputeDuration: recomputeDuration,
		gaps:              gaps,
		writes:            writes,
		requestsTotal:     requests,
		requestDuration:   duration,
	}
}

// Handler returns the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveRecompute records one recomputation.
func (m *Metrics) ObserveRecompute(elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.recomputes.WithLabelValues(outcome(err)).Inc()
	m.recomputeDuration.Observe(elapsed.Seconds())
}

// AddGaps counts referential gaps of one kind.
func (m *Metrics) AddGaps(kind string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.gaps.WithLabelValues(kind).Add(float64(n))
}

// ObserveWrite records one write operation.
func (m *Metrics) ObserveWrite(operation string, err error) {
	if m == nil {
		return
	}
	m.writes.WithLabelValues(operation, outcome(err)).Inc()
}

// Middleware records a request count and duration per chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// Registerer exposes the registry for additional collectors.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Flush lets streaming connect responses pass through the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
