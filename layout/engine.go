package layout

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvminor/core"
	"github.com/katalvlaran/lvminor/vector"
)

// Engine computes and integrates forces for one graph per call. An Engine
// holds only immutable configuration and may be shared between goroutines.
type Engine struct {
	opts Options
}

// NewEngine resolves opts over DefaultOptions.
// Returns ErrOptionViolation (wrapped) if any option was invalid.
func NewEngine(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{opts: o}, nil
}

// Options returns a copy of the resolved configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// Tick runs one force pass and one integration step on g and reports
// whether g is settled. The whole tick holds g's write lock, so it never
// interleaves with a structural edit.
//
// Stage 1: snapshot every position.
// Stage 2: compute F_i from the snapshot only.
// Stage 3: integrate v and p, store F_i as NetForce.
//
// Complexity: O(V²)
func (e *Engine) Tick(g *core.Graph) bool {
	settled := true
	g.Step(func(f *core.Frame) {
		n := f.Len()
		pos := make([]vector.Vec, n)
		for i := 0; i < n; i++ {
			pos[i] = f.Node(i).Position
		}

		dt := e.opts.Timestep
		for i := 0; i < n; i++ {
			force := e.force(f, pos, i)
			vel := f.Node(i).Velocity.Add(force.Scale(dt))
			f.SetKinematics(i, force, vel, pos[i].Add(vel.Scale(dt)))
			if !force.IsZero() {
				settled = false
			}
		}
	})
	e.opts.OnTick(settled)

	return settled
}

// force returns the net force on position i given the snapshot pos.
func (e *Engine) force(f *core.Frame, pos []vector.Vec, i int) vector.Vec {
	var repulsion, attraction vector.Vec
	for j := range pos {
		if j == i {
			continue
		}
		d := pos[j].Sub(pos[i])
		if d.IsZero() {
			continue
		}
		if e.opts.Repulsion != 0 {
			m := d.Mag()
			repulsion = repulsion.Add(d.Normalize().Scale(-e.opts.Repulsion / (m * m)))
		}
		if e.opts.Attraction != 0 && f.AreNeighbours(i, j) {
			attraction = attraction.Add(d.Scale(e.opts.Attraction))
		}
	}
	gravity := pos[i].Neg().Normalize().Scale(e.opts.Gravity)

	return repulsion.Add(attraction).Add(gravity)
}

// Relax ticks g until it settles, maxTicks ticks have run, or ctx is done.
// maxTicks ≤ 0 means no limit. It returns the number of ticks run and
// whether g settled.
func (e *Engine) Relax(ctx context.Context, g *core.Graph, maxTicks int) (int, bool, error) {
	if g == nil {
		return 0, false, fmt.Errorf("Relax: %w", ErrGraphNil)
	}
	ticks := 0
	for maxTicks <= 0 || ticks < maxTicks {
		if err := ctx.Err(); err != nil {
			return ticks, false, err
		}
		ticks++
		if e.Tick(g) {
			return ticks, true, nil
		}
	}

	return ticks, false, nil
}
