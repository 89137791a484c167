// Package pipeline: the Pass contract and the fixed-point orchestrator.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qopt/cancel"
	"github.com/katalvlaran/qopt/circuit"
	"github.com/katalvlaran/qopt/layout"
)

// Sentinel errors for orchestration.
var (
	// ErrNilCircuit is returned if a nil circuit pointer is passed.
	ErrNilCircuit = errors.New("pipeline: circuit is nil")

	// ErrNilCoupling is returned if Optimize is called without a coupling graph.
	ErrNilCoupling = errors.New("pipeline: coupling graph is nil")

	// ErrBadIterations is returned for a non-positive iteration cap.
	ErrBadIterations = errors.New("pipeline: iteration cap must be > 0")
)

// DefaultMaxIterations caps the fixed-point loop. Each productive
// iteration removes at least two operations, so the loop terminates
// long before this in practice.
const DefaultMaxIterations = 100

// Pass is a named, in-place circuit transformation. Implementations
// must leave the circuit valid on error.
type Pass interface {
	// Name identifies the pass in wrapped errors.
	Name() string

	// Run mutates c in place.
	Run(c *circuit.Circuit) error
}

// Cancellation adapts cancel.Run to the Pass interface.
type Cancellation struct {
	// Opts are forwarded to every sweep.
	Opts []cancel.Option
}

// Name implements Pass.
func (Cancellation) Name() string { return "cancel" }

// Run implements Pass by executing one cancellation sweep.
func (p Cancellation) Run(c *circuit.Circuit) error {
	_, err := cancel.Run(c, p.Opts...)

	return err
}

// Option configures the orchestrator.
type Option func(*Options)

// Options holds orchestration tunables.
type Options struct {
	// MaxIterations caps the fixed-point loop.
	MaxIterations int

	// Extra passes appended after cancellation inside each iteration
	// (stock passes supplied by the caller).
	Extra []Pass

	// Cancel options forwarded to every cancellation sweep.
	Cancel []cancel.Option

	// Layout options forwarded to layout.Compute by Optimize.
	Layout []layout.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns orchestration defaults.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// WithMaxIterations caps the fixed-point loop; n <= 0 is invalid.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrBadIterations

			return
		}
		o.MaxIterations = n
	}
}

// WithExtraPasses appends caller-supplied stock passes to each iteration.
func WithExtraPasses(passes ...Pass) Option {
	return func(o *Options) { o.Extra = append(o.Extra, passes...) }
}

// WithCancelOptions forwards options to the cancellation pass run by
// Optimize.
func WithCancelOptions(opts ...cancel.Option) Option {
	return func(o *Options) { o.Cancel = append(o.Cancel, opts...) }
}

// WithLayoutOptions forwards options to the layout stage of Optimize.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(o *Options) { o.Layout = append(o.Layout, opts...) }
}

// FixedPoint repeatedly runs passes over c until an iteration removes
// no operations, or maxIter iterations have run. It returns the number
// of iterations executed.
//
// Errors: ErrNilCircuit; pass failures wrapped with the pass name.
// Complexity: O(iterations · Σ pass cost).
func FixedPoint(c *circuit.Circuit, passes []Pass, maxIter int) (int, error) {
	if c == nil {
		return 0, ErrNilCircuit
	}
	if maxIter <= 0 {
		return 0, ErrBadIterations
	}

	var (
		iter   int
		before int
		err    error
	)
	for iter = 1; iter <= maxIter; iter++ {
		before = c.Len()
		for _, p := range passes {
			if err = p.Run(c); err != nil {
				return iter, fmt.Errorf("pipeline: pass %q: %w", p.Name(), err)
			}
		}
		if c.Len() == before {
			return iter, nil // fixed point reached
		}
	}

	return maxIter, nil
}

// Optimize runs the default pipeline: cancellation (plus any extra
// passes) to a gate-count fixed point, then the spectral layout stage.
// The circuit is mutated in place; the returned Layout maps its virtual
// qubits onto cg.
//
// Errors: ErrNilCircuit, ErrNilCoupling, option violations, wrapped
// pass errors, and layout errors unchanged.
func Optimize(c *circuit.Circuit, cg *layout.CouplingGraph, opts ...Option) (layout.Layout, error) {
	// Stage 1: Resolve options and validate.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if c == nil {
		return nil, ErrNilCircuit
	}
	if cg == nil {
		return nil, ErrNilCoupling
	}

	// Stage 2: Local optimization to a fixed point.
	passes := append([]Pass{Cancellation{Opts: o.Cancel}}, o.Extra...)
	if _, err := FixedPoint(c, passes, o.MaxIterations); err != nil {
		return nil, err
	}

	// Stage 3: Layout.
	return layout.Compute(c, cg, o.Layout...)
}
