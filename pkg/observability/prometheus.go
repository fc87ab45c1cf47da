package observability

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromHooks records every event as Prometheus metrics. It implements all hook
// interfaces. Metrics are registered on first use.
type PromHooks struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	fetches        *prometheus.CounterVec
	fetchDuration  *prometheus.HistogramVec
	notesFetched   prometheus.Gauge
	layouts        *prometheus.CounterVec
	layoutDuration prometheus.Histogram
	layoutColumns  prometheus.Histogram
	cacheEvents    *prometheus.CounterVec
	cacheBytes     prometheus.Counter
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewPromHooks creates Prometheus-backed hooks.
//
// reg defaults to prometheus.DefaultRegisterer and namespace to "notewall".
func NewPromHooks(reg prometheus.Registerer, namespace string) *PromHooks {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "notewall"
	}
	return &PromHooks{reg: reg, namespace: namespace}
}

// Register installs p for every hook category.
func (p *PromHooks) Register() {
	p.ensureRegistered()
	SetWallHooks(p)
	SetCacheHooks(p)
	SetServerHooks(p)
}

func (p *PromHooks) ensureRegistered() {
	p.once.Do(func() {
		p.fetches = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "source",
			Name:      "fetches_total",
			Help:      "Note fetches by source and result (ok, error).",
		}, []string{"source", "result"})
		p.fetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "source",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of note fetches in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2.5, 10), // 1ms .. ~3.8s
		}, []string{"source"})
		p.notesFetched = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "source",
			Name:      "notes_current",
			Help:      "Number of notes returned by the last successful fetch.",
		})

		p.layouts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "layout",
			Name:      "walls_total",
			Help:      "Computed walls by result (ok, error).",
		}, []string{"result"})
		p.layoutDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "layout",
			Name:      "duration_seconds",
			Help:      "Time to distribute and decorate a wall in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8), // 10µs .. ~160ms
		})
		p.layoutColumns = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "layout",
			Name:      "columns",
			Help:      "Column counts of computed walls.",
			Buckets:   prometheus.LinearBuckets(1, 1, 6),
		})

		p.cacheEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "events_total",
			Help:      "Cache lookups and writes by key type and event (hit, miss, set).",
		}, []string{"type", "event"})
		p.cacheBytes = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "written_bytes_total",
			Help:      "Bytes written to the cache.",
		})

		p.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"})
		p.requestLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"})

		p.reg.MustRegister(
			p.fetches, p.fetchDuration, p.notesFetched,
			p.layouts, p.layoutDuration, p.layoutColumns,
			p.cacheEvents, p.cacheBytes,
			p.requests, p.requestLatency,
		)
	})
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (p *PromHooks) OnFetchStart(context.Context, string) {}

func (p *PromHooks) OnFetchComplete(_ context.Context, source string, count int, d time.Duration, err error) {
	p.ensureRegistered()
	p.fetches.WithLabelValues(source, result(err)).Inc()
	p.fetchDuration.WithLabelValues(source).Observe(d.Seconds())
	if err == nil {
		p.notesFetched.Set(float64(count))
	}
}

func (p *PromHooks) OnLayoutStart(context.Context, int, int) {}

func (p *PromHooks) OnLayoutComplete(_ context.Context, _, columns int, d time.Duration, err error) {
	p.ensureRegistered()
	p.layouts.WithLabelValues(result(err)).Inc()
	if err != nil {
		return
	}
	p.layoutDuration.Observe(d.Seconds())
	p.layoutColumns.Observe(float64(columns))
}

func (p *PromHooks) OnCacheHit(_ context.Context, keyType string) {
	p.ensureRegistered()
	p.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (p *PromHooks) OnCacheMiss(_ context.Context, keyType string) {
	p.ensureRegistered()
	p.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (p *PromHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	p.ensureRegistered()
	p.cacheEvents.WithLabelValues(keyType, "set").Inc()
	p.cacheBytes.Add(float64(size))
}

func (p *PromHooks) OnRequest(context.Context, string, string) {}

func (p *PromHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	p.ensureRegistered()
	p.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.requestLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

var _ Hooks = (*PromHooks)(nil)
