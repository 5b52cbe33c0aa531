// Package session wires a tree, a layout engine, its scheduler and the
// metrics together from one configuration.
package session

import (
	"context"
	"fmt"

	"github.com/mandelsoft/logging"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/explore"
	"github.com/katalvlaran/lvminor/internal/config"
	"github.com/katalvlaran/lvminor/layout"
	"github.com/katalvlaran/lvminor/metrics"
)

var REALM = logging.DefineRealm("lvminor/session", "explorer session wiring")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

// Session is one explorer: every graph published into Tree is stepped by
// Scheduler until it settles, and every live graph is tracked.
type Session struct {
	Config    *config.Config
	Tree      *explore.Tree
	Engine    *layout.Engine
	Scheduler *layout.Scheduler
	Metrics   *metrics.Collectors
}

// New builds a Session from cfg. Metrics are registered with reg; a nil reg
// keeps them unregistered.
func New(cfg *config.Config, reg prometheus.Registerer) (*Session, error) {
	m, err := metrics.New(reg)
	if err != nil {
		return nil, err
	}
	s := &Session{Config: cfg, Metrics: m}

	s.Engine, err = layout.NewEngine(append(cfg.EngineOptions(), layout.WithOnTick(m.ObserveTick))...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.Scheduler, err = layout.NewScheduler(s.Engine,
		layout.WithConcurrency(cfg.Layout.Concurrency),
		layout.WithOnSettle(func(*core.Graph) { m.ObserveSettle() }),
		layout.WithOnStep(func(_, active int) { m.SetActive(active) }),
	)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.Tree, err = explore.New(append(cfg.TreeOptions(), explore.WithOnChange(s.onChange))...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return s, nil
}

// onChange keeps metrics and the scheduler in step with the tree.
func (s *Session) onChange(ev explore.Event) {
	switch ev.Kind {
	case explore.EventPush:
		s.Metrics.ObservePush(ev.Depth, ev.Live)
	case explore.EventBranch:
		s.Metrics.ObserveBranch()
		s.Metrics.ObservePush(ev.Depth, ev.Live)
	case explore.EventRevert:
		s.Metrics.ObserveRevert(ev.Applied, ev.Depth, ev.Live)
	}

	live := s.Tree.Live()
	graphs := make([]*core.Graph, len(live))
	for i, a := range live {
		graphs[i] = a.Graph
	}
	s.Scheduler.Sync(graphs)
	s.Metrics.SetActive(s.Scheduler.Active())
	log.Trace("tree changed: depth {{depth}}, {{live}} live slots", "depth", ev.Depth, "live", ev.Live)
}

// Seed publishes g as the root.
func (s *Session) Seed(g *core.Graph) error {
	return s.Tree.Seed(g)
}

// Run steps live graphs every tick_interval until ctx is done.
func (s *Session) Run(ctx context.Context) error {
	return s.Scheduler.Run(ctx, layout.NewTicker(s.Config.Layout.TickInterval.Duration))
}

// Relax ticks g directly, bounded by max_ticks.
func (s *Session) Relax(ctx context.Context, g *core.Graph) (int, bool, error) {
	return s.Engine.Relax(ctx, g, s.Config.Layout.MaxTicks)
}
