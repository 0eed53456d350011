// Package metrics exports transliteration cache signals as Prometheus metrics.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "wisp"

var _ ports.CacheMetrics = (*Collector)(nil)

// Collector implements ports.CacheMetrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions *prometheus.CounterVec
	entries   prometheus.Gauge
	bytes     prometheus.Gauge
}

// NewCollector creates a collector and registers its metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of transliteration cache hits",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total number of transliteration cache misses",
		}),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Total number of entries removed from the cache by reason",
		}, []string{"reason"}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Current number of cached transliterations",
		}),
		bytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "bytes",
			Help:      "Estimated memory held by cached transliterations",
		}),
	}

	c.registry.MustRegister(c.hits, c.misses, c.evictions, c.entries, c.bytes)

	// Both reasons are always exported, even before the first eviction.
	c.evictions.WithLabelValues(string(domain.EvictExpired))
	c.evictions.WithLabelValues(string(domain.EvictCapacity))

	return c
}

// Hit counts a cache hit.
func (c *Collector) Hit() { c.hits.Inc() }

// Miss counts a cache miss.
func (c *Collector) Miss() { c.misses.Inc() }

// Evict counts a removed entry.
func (c *Collector) Evict(reason domain.EvictReason) {
	c.evictions.WithLabelValues(string(reason)).Inc()
}

// Size records the current cache size.
func (c *Collector) Size(entries int, bytes int64) {
	c.entries.Set(float64(entries))
	c.bytes.Set(float64(bytes))
}

// Registry returns the registry holding the cache metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteText writes all metrics in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return zerr.Wrap(err, "failed to gather metrics")
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return zerr.Wrap(err, "failed to write metrics")
		}
	}
	return nil
}
