// Package cancel: options and the sentinel error set.
package cancel

import "errors"

// DefaultTolerance is the element-wise matrix comparison tolerance used
// when no WithTolerance option is supplied.
const DefaultTolerance = 1e-8

// Sentinel errors for the cancellation pass.
var (
	// ErrCircuitNil is returned if a nil circuit pointer is passed.
	ErrCircuitNil = errors.New("cancel: circuit is nil")

	// ErrBadTolerance is returned when WithTolerance receives a value <= 0.
	ErrBadTolerance = errors.New("cancel: tolerance must be > 0")

	// ErrNoUnitary is the skip reason for operations without a matrix.
	ErrNoUnitary = errors.New("cancel: operation has no unitary")

	// ErrBadOperands is the skip reason for malformed operand/unitary shape.
	ErrBadOperands = errors.New("cancel: malformed operands or unitary shape")
)

// Option configures the pass via functional arguments.
// An invalid Option is recorded and surfaced when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the sweep.
type Options struct {
	// Tolerance is the element-wise ε for the up-to-phase inverse test.
	Tolerance float64

	// OnSkip is called once per skipped node with the gate name and the
	// skip reason (ErrNoUnitary or ErrBadOperands). Observability hook;
	// the pass itself never logs.
	OnSkip func(name string, reason error)

	// OnRemove is called once per cancelled pair with both gate names
	// and the extracted phase difference in radians.
	OnRemove func(name1, name2 string, phase float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: DefaultTolerance,
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		OnSkip:    func(string, error) {},
		OnRemove:  func(string, string, float64) {},
		err:       nil,
	}
}

// WithTolerance sets the inverse-test tolerance.
//
//	t > 0:  use t
//	t <= 0: invalid option → ErrBadTolerance from Run
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = ErrBadTolerance

			return
		}
		o.Tolerance = t
	}
}

// WithOnSkip registers a callback for skipped nodes.
func WithOnSkip(fn func(name string, reason error)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSkip = fn
		}
	}
}

// WithOnRemove registers a callback for cancelled pairs.
func WithOnRemove(fn func(name1, name2 string, phase float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRemove = fn
		}
	}
}
