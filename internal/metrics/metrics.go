// Package metrics holds the Prometheus instruments for named caches.  All
// collectors are registered with the default registry, so the server only
// has to expose promhttp.Handler on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Caches = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lrucache_caches",
			Help: "Number of named caches currently registered.",
		})

	Entries = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lrucache_entries",
			Help: "Resident entries per cache.",
		}, []string{"cache"})

	Hits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lrucache_hits_total",
			Help: "Cumulative number of lookups that found their key.",
		}, []string{"cache"})

	Misses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lrucache_misses_total",
			Help: "Cumulative number of lookups that did not find their key.",
		}, []string{"cache"})

	Evictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lrucache_evictions_total",
			Help: "Cumulative number of entries evicted by capacity pressure.",
		}, []string{"cache"})
)

func init() {
	prometheus.MustRegister(
		Caches,
		Entries,
		Hits,
		Misses,
		Evictions,
	)
}

// Forget drops the per-cache series of a deleted cache
func Forget(cache string) {
	Entries.DeleteLabelValues(cache)
	Hits.DeleteLabelValues(cache)
	Misses.DeleteLabelValues(cache)
	Evictions.DeleteLabelValues(cache)
}
