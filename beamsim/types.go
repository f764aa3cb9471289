// Package beamsim provides tunable options and error definitions
// for the beam path-enumeration engine.
package beamsim

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for Simulate execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("beamsim: grid is nil")

	// ErrStartOutOfRange is returned when the start column lies outside the grid.
	ErrStartOutOfRange = errors.New("beamsim: start column out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("beamsim: invalid option supplied")
)

// Option configures Simulate behavior via functional arguments.
// If an Option is invalid (e.g. zero workers), it will be recorded
// internally and surfaced as ErrOptionViolation when Simulate is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize Simulate execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per generation.
	Ctx context.Context

	// OnGeneration is called after each generation is expanded.
	// Receives the zero-based generation index and the number of paths
	// alive in the next frontier.
	OnGeneration func(gen, live int)

	// OnRetire is called for every path that exits past the bottom edge.
	// first is true when the path's signature had not been seen before,
	// i.e. exactly when it contributed to Result.Distinct.
	OnRetire func(p Path, first bool)

	// Workers shards the expansion of each generation across this many
	// goroutines. 1 (the default) keeps the loop fully serial. Hooks are
	// always invoked from the calling goroutine, in frontier order,
	// regardless of worker count.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - Context.Background()
//   - serial execution (Workers == 1)
//   - no-op hooks (OnGeneration, OnRetire)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnGeneration: func(int, int) {},
		OnRetire:     func(Path, bool) {},
		Workers:      1,
		err:          nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnGeneration registers a callback to run after each generation.
func WithOnGeneration(fn func(gen, live int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGeneration = fn
		}
	}
}

// WithOnRetire registers a callback to run when a path exits the grid.
func WithOnRetire(fn func(p Path, first bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRetire = fn
		}
	}
}

// WithWorkers shards each generation's expansion across n goroutines.
//
//	n > 1:  parallel expansion with a serial merge per generation
//	n == 1: fully serial loop
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// Result holds the outcome of a simulation run:
//   - Distinct: distinct exit signatures observed at the bottom edge — the answer.
//   - Retired: paths that exited, including duplicates of earlier signatures.
//   - DeadEnds: paths dropped at a deflector on a grid edge with no viable branch.
//   - Generations: generation steps executed before the frontier emptied.
type Result struct {
	Distinct    int
	Retired     int
	DeadEnds    int
	Generations int
}
