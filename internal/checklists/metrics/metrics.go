// Package metrics exposes Prometheus collectors for the checklists service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the services and the router report to.
type Recorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
	RecordSessionIssued()
	RecordSessionsRevoked(n int)
	RecordChecklistCreated()
}

// Collector records into Prometheus metrics.
type Collector struct {
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	sessionsIssued    prometheus.Counter
	sessionsRevoked   prometheus.Counter
	checklistsCreated prometheus.Counter
}

// NewCollector creates the collectors and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checklists_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "checklists_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		sessionsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checklists_sessions_issued_total",
			Help: "Session tokens issued by registration and login.",
		}),
		sessionsRevoked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checklists_sessions_revoked_total",
			Help: "Sessions removed by logout or revocation.",
		}),
		checklistsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checklists_checklists_created_total",
			Help: "Checklists created.",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.sessionsIssued,
		c.sessionsRevoked,
		c.checklistsCreated,
	)

	return c
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordSessionIssued() { c.sessionsIssued.Inc() }

func (c *Collector) RecordSessionsRevoked(n int) {
	if n > 0 {
		c.sessionsRevoked.Add(float64(n))
	}
}

func (c *Collector) RecordChecklistCreated() { c.checklistsCreated.Inc() }

// Nop discards everything. It stands in when metrics are disabled.
type Nop struct{}

func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Nop) RecordSessionIssued()                                 {}
func (Nop) RecordSessionsRevoked(int)                            {}
func (Nop) RecordChecklistCreated()                              {}

// OrNop returns r, or Nop when r is nil.
func OrNop(r Recorder) Recorder {
	if r == nil {
		return Nop{}
	}
	return r
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
