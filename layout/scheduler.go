package layout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvminor/core"
)

// TickSource delivers the periodic ticks that drive a Scheduler.
type TickSource interface {
	// C returns the channel on which ticks are delivered.
	C() <-chan time.Time
	// Stop releases the source; no ticks are delivered afterwards.
	Stop()
}

// ticker adapts *time.Ticker to TickSource.
type ticker struct {
	t *time.Ticker
}

// NewTicker returns a TickSource firing every d. d must be > 0.
func NewTicker(d time.Duration) TickSource {
	return &ticker{t: time.NewTicker(d)}
}

func (t *ticker) C() <-chan time.Time { return t.t.C }
func (t *ticker) Stop()               { t.t.Stop() }

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithConcurrency bounds how many graphs are stepped in parallel per tick.
// n < 1 is recorded and surfaced as ErrOptionViolation by NewScheduler.
func WithConcurrency(n int) SchedulerOption {
	return func(s *Scheduler) {
		if n < 1 {
			s.err = fmt.Errorf("%w: Concurrency must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		s.concurrency = n
	}
}

// WithOnSettle registers a callback run when a tracked graph settles and is
// parked.
func WithOnSettle(fn func(g *core.Graph)) SchedulerOption {
	return func(s *Scheduler) {
		if fn != nil {
			s.onSettle = fn
		}
	}
}

// WithOnStep registers a callback run after each StepAll with the number of
// graphs stepped and the number still active.
func WithOnStep(fn func(stepped, active int)) SchedulerOption {
	return func(s *Scheduler) {
		if fn != nil {
			s.onStep = fn
		}
	}
}

// Scheduler steps every tracked, unsettled graph once per tick. A graph that
// settles is parked until Wake is called for it again. Distinct graphs share
// no state, so they may be stepped in parallel.
type Scheduler struct {
	engine      *Engine
	concurrency int
	onSettle    func(g *core.Graph)
	onStep      func(stepped, active int)

	mu     sync.Mutex
	active map[*core.Graph]struct{}
	parked map[*core.Graph]struct{}

	err error
}

// NewScheduler creates a Scheduler around engine (concurrency defaults to 1).
func NewScheduler(engine *Engine, opts ...SchedulerOption) (*Scheduler, error) {
	if engine == nil {
		return nil, fmt.Errorf("NewScheduler: engine is nil: %w", ErrOptionViolation)
	}
	s := &Scheduler{
		engine:      engine,
		concurrency: 1,
		onSettle:    func(*core.Graph) {},
		onStep:      func(int, int) {},
		active:      make(map[*core.Graph]struct{}),
		parked:      make(map[*core.Graph]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.err != nil {
		return nil, s.err
	}

	return s, nil
}

// Track starts stepping g on every tick. Tracking a parked graph wakes it.
// A nil graph is ignored.
func (s *Scheduler) Track(g *core.Graph) {
	if g == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.parked, g)
	s.active[g] = struct{}{}
}

// Wake re-arms a parked graph after an edit. Unknown graphs are ignored.
func (s *Scheduler) Wake(g *core.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.parked[g]; ok {
		delete(s.parked, g)
		s.active[g] = struct{}{}
		log.Trace("woke graph")
	}
}

// Untrack forgets g entirely.
func (s *Scheduler) Untrack(g *core.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.active, g)
	delete(s.parked, g)
}

// Sync makes graphs the exact tracked set: new graphs become active, known
// ones keep their state, and every other graph is forgotten.
func (s *Scheduler) Sync(graphs []*core.Graph) {
	keep := make(map[*core.Graph]struct{}, len(graphs))
	for _, g := range graphs {
		if g != nil {
			keep[g] = struct{}{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for g := range s.active {
		if _, ok := keep[g]; !ok {
			delete(s.active, g)
		}
	}
	for g := range s.parked {
		if _, ok := keep[g]; !ok {
			delete(s.parked, g)
		}
	}
	for g := range keep {
		if _, ok := s.parked[g]; !ok {
			s.active[g] = struct{}{}
		}
	}
}

// Active returns the number of graphs stepped on the next tick.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.active)
}

// Tracked returns the number of tracked graphs, active or parked.
func (s *Scheduler) Tracked() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.active) + len(s.parked)
}

// StepAll ticks every active graph once, at most Concurrency at a time, and
// parks the ones that settled. It returns the number of graphs stepped.
func (s *Scheduler) StepAll(ctx context.Context) (int, error) {
	s.mu.Lock()
	batch := make([]*core.Graph, 0, len(s.active))
	for g := range s.active {
		batch = append(batch, g)
	}
	s.mu.Unlock()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)
	for _, g := range batch {
		g := g
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if s.engine.Tick(g) {
				s.park(g)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	s.onStep(len(batch), s.Active())

	return len(batch), nil
}

// park moves g from active to parked if it is still active.
func (s *Scheduler) park(g *core.Graph) {
	s.mu.Lock()
	_, ok := s.active[g]
	if ok {
		delete(s.active, g)
		s.parked[g] = struct{}{}
	}
	s.mu.Unlock()

	if ok {
		log.Debug("graph settled with {{nodes}} nodes", "nodes", g.Len())
		s.onSettle(g)
	}
}

// Run steps active graphs on every tick from src until ctx is done. src is
// stopped on return. Run returns nil on cancellation.
func (s *Scheduler) Run(ctx context.Context, src TickSource) error {
	defer src.Stop()

	log.Debug("scheduler started with concurrency {{concurrency}}", "concurrency", s.concurrency)
	for {
		select {
		case <-ctx.Done():
			log.Debug("scheduler stopped")
			return nil
		case _, ok := <-src.C():
			if !ok {
				return nil
			}
			if _, err := s.StepAll(ctx); err != nil && ctx.Err() == nil {
				return err
			}
		}
	}
}
