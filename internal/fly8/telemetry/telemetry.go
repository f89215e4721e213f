// Package telemetry holds the prometheus collectors for the API. A nil
// *Metrics is valid and records nothing.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fly8"

// Auth operations and outcomes used as label values.
const (
	OpSignup = "signup"
	OpLogin  = "login"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	SourceOnboarding = "onboarding"
	SourceApply      = "apply"
)

type Metrics struct {
	registry *prometheus.Registry

	authAttempts    *prometheus.CounterVec
	onboardings     prometheus.Counter
	applications    *prometheus.CounterVec
	statusChanges   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New builds a private registry with the Go and process collectors plus the
// API's own metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Signup and login attempts by outcome.",
		}, []string{"op", "outcome"}),
		onboardings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "onboarding_completed_total",
			Help:      "Onboarding submissions that completed.",
		}),
		applications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applications_created_total",
			Help:      "Service applications created, by the path that created them.",
		}, []string{"source"}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "application_status_changes_total",
			Help:      "Application status changes made by counselors, by new status.",
		}, []string{"status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.authAttempts,
		m.onboardings,
		m.applications,
		m.statusChanges,
		m.requestDuration,
	)
	return m
}

func (m *Metrics) AuthAttempt(op, outcome string) {
	if m == nil {
		return
	}
	m.authAttempts.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) OnboardingCompleted() {
	if m == nil {
		return
	}
	m.onboardings.Inc()
}

func (m *Metrics) ApplicationsCreated(source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.applications.WithLabelValues(source).Add(float64(n))
}

func (m *Metrics) ApplicationStatusChanged(status string) {
	if m == nil {
		return
	}
	m.statusChanges.WithLabelValues(status).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware observes request latency. It must wrap the ServeMux directly
// so the matched pattern is visible on the request after serving.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(rw.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Unwrap() http.ResponseWriter { return w.ResponseWriter }
