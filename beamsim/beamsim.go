// Package beamsim enumerates every branching path of a beam falling through
// a chargrid.Grid, advancing one row per generation, splitting at deflector
// cells, and counting the distinct move signatures that exit the bottom edge.
package beamsim

import (
	"context"
	"fmt"

	"github.com/katalvlaran/beamgrid/chargrid"
)

// walker encapsulates mutable simulation state.
type walker struct {
	grid *chargrid.Grid
	opts Options
	ctx  context.Context
	cur  *Frontier
	seen *SignatureSet
	res  *Result
}

// Simulate runs the generation loop on g starting at (0, startCol),
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or the context's error on
// cancellation. On cancellation the partial Result is still returned.
//
// Deduplication happens only at the bottom boundary: two paths with equal
// signatures are never merged while still in flight, because they could
// still diverge before exiting.
func Simulate(g *chargrid.Grid, startCol int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if startCol < 0 || startCol >= g.Width {
		return nil, fmt.Errorf("%w: column %d, grid width %d", ErrStartOutOfRange, startCol, g.Width)
	}

	// Prepare walker
	w := &walker{
		grid: g,
		opts: o,
		ctx:  o.Ctx,
		cur:  NewFrontier(1),
		seen: NewSignatureSet(),
		res:  &Result{},
	}

	// Seed the frontier with the single entry path (empty signature)
	w.cur.Append(Path{Row: 0, Col: startCol})
	// Main loop
	return w.res, w.loop()
}

// loop replaces the current frontier with the next one until it empties,
// the context is canceled, or a worker fails.
func (w *walker) loop() error {
	for gen := 0; w.cur.Len() > 0; gen++ {
		// cancellation check (once per generation)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		var (
			next *Frontier
			err  error
		)
		if w.opts.Workers > 1 {
			next, err = w.expandSharded()
		} else {
			next = w.expandSerial()
		}
		if err != nil {
			return err
		}

		w.opts.OnGeneration(gen, next.Len())
		w.cur = next
		w.res.Generations++
	}
	return nil
}

// expandSerial consumes the current frontier in insertion order, retiring
// boundary paths and emitting successors into a fresh next frontier.
func (w *walker) expandSerial() *Frontier {
	next := NewFrontier(2 * w.cur.Len())
	for _, p := range w.cur.Paths() {
		if p.Row+1 >= w.grid.Height {
			w.retire(p)
			continue
		}
		if w.branch(p, next) {
			w.res.DeadEnds++
		}
	}
	return next
}

// retire folds an exited path into the signature set, counting it only if
// its signature is new, and fires the OnRetire hook.
func (w *walker) retire(p Path) {
	first := w.seen.Add(p.Sig)
	if first {
		w.res.Distinct++
	}
	w.res.Retired++
	w.opts.OnRetire(p, first)
}

// branch emits p's successors for the next generation and reports whether
// p dead-ended (a deflector on a grid edge with no viable side).
// Each successor carries a fresh copy-on-branch signature.
func (w *walker) branch(p Path, next *Frontier) (deadEnd bool) {
	row := p.Row + 1
	if w.grid.Cell(row, p.Col) != chargrid.Deflector {
		next.Append(Path{Row: row, Col: p.Col, Sig: p.Sig.Extend(MoveDown)})
		return false
	}
	split := false
	if p.Col > 0 {
		next.Append(Path{Row: row, Col: p.Col - 1, Sig: p.Sig.Extend(MoveLeft)})
		split = true
	}
	if p.Col < w.grid.Width-1 {
		next.Append(Path{Row: row, Col: p.Col + 1, Sig: p.Sig.Extend(MoveRight)})
		split = true
	}
	return !split
}
