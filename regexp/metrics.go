package regexp

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "regexmatch"

// Collector exports Matcher stats to Prometheus. Register it with the
// caller's registry; nothing is registered globally.
type Collector struct {
	matcher *Matcher

	hits         *prometheus.Desc
	misses       *prometheus.Desc
	compilations *prometheus.Desc
	failures     *prometheus.Desc
	entries      *prometheus.Desc
}

// NewCollector returns a Collector for m. constLabels are attached to every
// metric, which lets several matchers share a registry.
func NewCollector(m *Matcher, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "cache", name), help, nil, constLabels)
	}

	return &Collector{
		matcher:      m,
		hits:         desc("hits_total", "Pattern lookups served from the cache."),
		misses:       desc("misses_total", "Pattern lookups not found in the cache."),
		compilations: desc("compilations_total", "Patterns handed to the engine for compilation."),
		failures:     desc("compile_failures_total", "Patterns that failed to compile."),
		entries:      desc("entries", "Compiled patterns currently cached."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.compilations
	ch <- c.failures
	ch <- c.entries
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.matcher.Stats()

	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(c.compilations, prometheus.CounterValue, float64(stats.Compilations))
	ch <- prometheus.MustNewConstMetric(c.failures, prometheus.CounterValue, float64(stats.Failures))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(stats.Entries))
}

var _ prometheus.Collector = &Collector{}
