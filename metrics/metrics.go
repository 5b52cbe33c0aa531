// Package metrics exposes Prometheus collectors for the layout scheduler and
// the exploration tree. Every Observe method is safe on a nil *Collectors, so
// callers may wire metrics optionally.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lvminor"

// Collectors groups every lvminor metric.
type Collectors struct {
	Ticks    *prometheus.CounterVec
	Settles  prometheus.Counter
	Active   prometheus.Gauge
	Pushes   prometheus.Counter
	Reverts  *prometheus.CounterVec
	Branches prometheus.Counter
	Depth    prometheus.Gauge
	Live     prometheus.Gauge
}

// New creates the collectors and registers them with reg. A nil reg skips
// registration (useful in tests).
func New(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		Ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "layout_ticks_total",
				Help:      "Layout ticks by outcome.",
			},
			[]string{"result"},
		),
		Settles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layout_settles_total",
			Help:      "Graphs parked by the scheduler after settling.",
		}),
		Active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "layout_active_graphs",
			Help:      "Graphs stepped on the next tick.",
		}),
		Pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tree_pushes_total",
			Help:      "Successful publishes into the exploration tree.",
		}),
		Reverts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tree_reverts_total",
				Help:      "Revert requests by outcome.",
			},
			[]string{"result"},
		),
		Branches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tree_branches_total",
			Help:      "Delete/contract branch edits.",
		}),
		Depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_depth",
			Help:      "Deepest allocated layer.",
		}),
		Live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_live_slots",
			Help:      "Occupied slots across all layers.",
		}),
	}
	if reg == nil {
		return c, nil
	}
	for _, col := range []prometheus.Collector{
		c.Ticks, c.Settles, c.Active, c.Pushes, c.Reverts, c.Branches, c.Depth, c.Live,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// ObserveTick counts one layout tick.
func (c *Collectors) ObserveTick(settled bool) {
	if c == nil {
		return
	}
	if settled {
		c.Ticks.WithLabelValues("settled").Inc()
	} else {
		c.Ticks.WithLabelValues("moving").Inc()
	}
}

// ObserveSettle counts a graph parked by the scheduler.
func (c *Collectors) ObserveSettle() {
	if c == nil {
		return
	}
	c.Settles.Inc()
}

// SetActive records the scheduler's active graph count.
func (c *Collectors) SetActive(n int) {
	if c == nil {
		return
	}
	c.Active.Set(float64(n))
}

// ObservePush counts a publish and records the resulting tree shape.
func (c *Collectors) ObservePush(depth, live int) {
	if c == nil {
		return
	}
	c.Pushes.Inc()
	c.setShape(depth, live)
}

// ObserveRevert counts a revert request and records the resulting shape.
func (c *Collectors) ObserveRevert(applied bool, depth, live int) {
	if c == nil {
		return
	}
	if applied {
		c.Reverts.WithLabelValues("applied").Inc()
	} else {
		c.Reverts.WithLabelValues("noop").Inc()
	}
	c.setShape(depth, live)
}

// ObserveBranch counts one delete/contract branch edit.
func (c *Collectors) ObserveBranch() {
	if c == nil {
		return
	}
	c.Branches.Inc()
}

func (c *Collectors) setShape(depth, live int) {
	c.Depth.Set(float64(depth))
	c.Live.Set(float64(live))
}
