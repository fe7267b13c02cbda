// Package metrics exports layout engine activity as Prometheus metrics.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	rbox "github.com/grindlemire/go-rbox"
)

const namespace = "rbox"

// Collector implements rbox.Hooks by updating Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	layouts        *prometheus.CounterVec
	memoHits       *prometheus.CounterVec
	intrinsics     *prometheus.CounterVec
	flushes        *prometheus.CounterVec
	flushDuration  prometheus.Histogram
	lastFlushNodes prometheus.Gauge

	passLayouts int
}

var _ rbox.Hooks = (*Collector)(nil)

// NewCollector creates a collector with its own registry, so several
// owners in one process do not collide on the default registerer.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		layouts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "layout",
			Name:      "boxes_total",
			Help:      "Boxes laid out without a memo hit, by renderer kind",
		}, []string{"kind"}),
		memoHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "layout",
			Name:      "memo_hits_total",
			Help:      "Layout calls skipped because the box was clean under equal constraints",
		}, []string{"kind"}),
		intrinsics: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intrinsics",
			Name:      "queries_total",
			Help:      "Cached intrinsic queries by dimension and cache result",
		}, []string{"dimension", "result"}),
		flushes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "owner",
			Name:      "flushes_total",
			Help:      "Layout passes by outcome",
		}, []string{"status"}),
		flushDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "owner",
			Name:      "flush_duration_seconds",
			Help:      "Layout pass duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		lastFlushNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "owner",
			Name:      "last_flush_boxes",
			Help:      "Boxes laid out by the most recent layout pass",
		}),
	}
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) OnLayout(b *rbox.Box, _ rbox.Constraints, _ rbox.Size) {
	c.layouts.WithLabelValues(b.Kind()).Inc()
	c.passLayouts++
}

func (c *Collector) OnMemoHit(b *rbox.Box) {
	c.memoHits.WithLabelValues(b.Kind()).Inc()
}

func (c *Collector) OnIntrinsic(_ *rbox.Box, dim rbox.IntrinsicDimension, cached bool) {
	result := "miss"
	if cached {
		result = "hit"
	}
	c.intrinsics.WithLabelValues(dim.String(), result).Inc()
}

func (c *Collector) OnFlush(_ string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.flushes.WithLabelValues(status).Inc()
	c.flushDuration.Observe(d.Seconds())
	c.lastFlushNodes.Set(float64(c.passLayouts))
	c.passLayouts = 0
}

// WriteText writes every metric in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
