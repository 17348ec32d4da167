// Package promexport bridges tally counters to Prometheus.
//
// Sources are read at scrape time, so exported values always reflect the
// current counts. The bridge never mutates a counter; callers sharing a
// counter between a writer goroutine and the scrape path must synchronize
// externally, because the core types carry no locks.
package promexport

import (
	"cmp"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/tally"
)

// Source is a named live ratio. Ratio is called on every scrape.
type Source struct {
	Name  string
	Ratio func() tally.ExactRatio
}

// Collector exposes a set of Sources as three metrics, one series per
// source:
//
//	<ns>_matches_total{source=...}       raw match count
//	<ns>_observations_total{source=...}  raw observation count
//	<ns>_ratio{source=...}               matches/observations, NaN when undefined
//
// The NaN gauge mirrors the core contract: an undefined ratio is a value,
// not an error, and Prometheus represents NaN natively.
type Collector struct {
	sources          []Source
	matchesDesc      *prometheus.Desc
	observationsDesc *prometheus.Desc
	ratioDesc        *prometheus.Desc
}

// NewCollector builds a Collector under the given metric namespace.
func NewCollector(namespace string, sources ...Source) *Collector {
	return &Collector{
		sources: sources,
		matchesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "matches_total"),
			"Raw match count of the source ratio",
			[]string{"source"}, nil,
		),
		observationsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "observations_total"),
			"Raw observation count of the source ratio",
			[]string{"source"}, nil,
		),
		ratioDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "ratio"),
			"Current matches/observations of the source ratio (NaN when undefined)",
			[]string{"source"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.matchesDesc
	ch <- c.observationsDesc
	ch <- c.ratioDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, s := range c.sources {
		r := s.Ratio()
		ch <- prometheus.MustNewConstMetric(
			c.matchesDesc, prometheus.CounterValue, float64(r.Matches()), s.Name,
		)
		ch <- prometheus.MustNewConstMetric(
			c.observationsDesc, prometheus.CounterValue, float64(r.Observations()), s.Name,
		)
		ch <- prometheus.MustNewConstMetric(
			c.ratioDesc, prometheus.GaugeValue, r.Float64(), s.Name,
		)
	}
}

// CounterCollector exposes a BayesianCounter's per-label observation counts
// and its running total:
//
//	<ns>_counter_label_observations_total{source=...,label=...}
//	<ns>_counter_observations_total{source=...}
//
// Label keys render with %v. The example dimension E is carried only by
// the counter's type and is never exported: per-example series would be
// unbounded-cardinality metrics. Like Collector, it reads at scrape time
// and leaves synchronization to the caller (see WithLock).
type CounterCollector[L cmp.Ordered, E cmp.Ordered] struct {
	name      string
	counter   *tally.BayesianCounter[L, E]
	lock      sync.Locker
	labelDesc *prometheus.Desc
	totalDesc *prometheus.Desc
}

// NewCounterCollector builds a CounterCollector for counter under the given
// namespace and source name.
func NewCounterCollector[L cmp.Ordered, E cmp.Ordered](
	namespace, name string, counter *tally.BayesianCounter[L, E],
) *CounterCollector[L, E] {
	return &CounterCollector[L, E]{
		name:    name,
		counter: counter,
		labelDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "counter", "label_observations_total"),
			"Observations recorded per label",
			[]string{"source", "label"}, nil,
		),
		totalDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "counter", "observations_total"),
			"Total observations recorded by the counter",
			[]string{"source"}, nil,
		),
	}
}

// WithLock makes Collect hold l while reading the counter. Use it when a
// writer goroutine shares the counter with the scrape path.
func (c *CounterCollector[L, E]) WithLock(l sync.Locker) *CounterCollector[L, E] {
	c.lock = l
	return c
}

// Describe implements prometheus.Collector.
func (c *CounterCollector[L, E]) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.labelDesc
	ch <- c.totalDesc
}

// Collect implements prometheus.Collector.
func (c *CounterCollector[L, E]) Collect(ch chan<- prometheus.Metric) {
	if c.lock != nil {
		c.lock.Lock()
		defer c.lock.Unlock()
	}
	for _, l := range c.counter.Labels() {
		ch <- prometheus.MustNewConstMetric(
			c.labelDesc, prometheus.CounterValue,
			float64(c.counter.LabelCount(l)), c.name, fmt.Sprintf("%v", l),
		)
	}
	ch <- prometheus.MustNewConstMetric(
		c.totalDesc, prometheus.CounterValue, float64(c.counter.Total()), c.name,
	)
}
