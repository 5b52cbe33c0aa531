package layout

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for layout configuration and execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("layout: invalid option supplied")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("layout: graph is nil")
)

// DefaultTimestep is the integration step used when none is configured.
const DefaultTimestep = 1.0 / 120.0

// Option configures an Engine via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by
// NewEngine.
type Option func(*Options)

// Options holds the force coefficients and integration step.
type Options struct {
	// Repulsion scales the inverse-square push between every pair of nodes.
	Repulsion float64

	// Attraction is the spring constant between neighbours.
	Attraction float64

	// Gravity is the constant-magnitude pull toward the origin.
	Gravity float64

	// Timestep is dt for the integrator; must be > 0.
	Timestep float64

	// OnTick is called after every Tick with the settled result.
	OnTick func(settled bool)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with every force disabled and
// Timestep = DefaultTimestep. Callers choose the coefficients.
func DefaultOptions() Options {
	return Options{
		Timestep: DefaultTimestep,
		OnTick:   func(bool) {},
	}
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// coefficient builds an Option for a finite force coefficient.
func coefficient(name string, v float64, set func(*Options)) Option {
	return func(o *Options) {
		if !finite(v) {
			o.err = fmt.Errorf("%w: %s must be finite (%v)", ErrOptionViolation, name, v)
			return
		}
		set(o)
	}
}

// WithRepulsion sets the repulsion coefficient. Zero disables repulsion.
func WithRepulsion(k float64) Option {
	return coefficient("Repulsion", k, func(o *Options) { o.Repulsion = k })
}

// WithAttraction sets the neighbour spring constant. Zero disables attraction.
func WithAttraction(k float64) Option {
	return coefficient("Attraction", k, func(o *Options) { o.Attraction = k })
}

// WithGravity sets the pull toward the origin. Zero disables gravity.
func WithGravity(k float64) Option {
	return coefficient("Gravity", k, func(o *Options) { o.Gravity = k })
}

// WithTimestep sets dt.
//
//	dt > 0 and finite: accepted
//	otherwise: ErrOptionViolation
func WithTimestep(dt float64) Option {
	return func(o *Options) {
		if !finite(dt) || dt <= 0 {
			o.err = fmt.Errorf("%w: Timestep must be finite and > 0 (%v)", ErrOptionViolation, dt)
			return
		}
		o.Timestep = dt
	}
}

// WithOnTick registers a callback run after each Tick.
func WithOnTick(fn func(settled bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTick = fn
		}
	}
}
