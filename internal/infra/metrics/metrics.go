// Package metrics exposes the service's Prometheus instruments.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "campusradar"

// Recorder groups the collectors used across the service. A nil *Recorder is valid and records nothing,
// so components can be built without metrics in tests.
type Recorder struct {
	registry      *prometheus.Registry
	storeFetches  *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	resolverTimes *prometheus.HistogramVec
}

// New creates a Recorder on a fresh registry that also carries the Go and process collectors.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewWithRegistry(registry)
}

// NewWithRegistry creates a Recorder registering its collectors on registry.
func NewWithRegistry(registry *prometheus.Registry) *Recorder {
	r := &Recorder{
		registry: registry,
		storeFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_fetch_total",
			Help:      "Tiered store reads by entity, operation and outcome status.",
		}, []string{"entity", "op", "status"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_cache_lookups_total",
			Help:      "Location cache lookups by result (hit or miss).",
		}, []string{"result"}),
		resolverTimes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resolver_duration_seconds",
			Help:      "Proximity resolver operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}

	registry.MustRegister(r.storeFetches, r.cacheLookups, r.resolverTimes)

	return r
}

// Registry returns the registry backing the recorder, for the /metrics handler.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// StoreFetch counts one tiered read.
func (r *Recorder) StoreFetch(entity, op, status string) {
	if r == nil {
		return
	}
	r.storeFetches.WithLabelValues(entity, op, status).Inc()
}

// CacheLookup counts one location cache lookup.
func (r *Recorder) CacheLookup(hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

// ObserveResolver records the latency of a resolver operation started at start.
func (r *Recorder) ObserveResolver(op string, start time.Time) {
	if r == nil {
		return
	}
	r.resolverTimes.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
