// Package beamsim is a production-grade path-enumeration engine over a
// chargrid.Grid: a breadth-first, generation-by-generation simulation of a
// beam falling row by row, splitting at deflector cells, and counted by
// distinct exit signature at the bottom edge.
//
// What
//
//   - Advance a frontier of in-flight paths one row per generation.
//   - Per-cell branching rule:
//   - pass-through cell → one successor straight down, move 'D'
//   - deflector ('^')   → up to two diagonal successors, moves 'L'/'R'
//   - deflector on a grid edge with no viable side → path dropped
//   - Every path carries a Signature: its full ordered move history,
//     copied on branch so siblings never alias each other.
//   - Paths that advance past the last row retire into a SignatureSet;
//     the answer is the number of distinct signatures retired.
//   - Supports functional hooks at two stages:
//   - OnGeneration (after each generation is expanded)
//   - OnRetire     (when a path exits; reports first-sighting)
//   - Optional sharded expansion of each generation via WithWorkers.
//
// Why
//
//   - Raw path count grows exponentially with grid height; collapsing
//     duplicates by exact signature at the boundary keeps the answer exact
//     while the distinct-signature space stays bounded by the realized
//     left/right decision sequences.
//   - Deduplication happens only at the boundary, never mid-flight: two
//     paths with equal histories can still diverge before exiting.
//
// Determinism
//
//	The frontier preserves insertion order, successors are emitted in a
//	fixed order (left before right), and the sharded expander merges
//	shards serially in frontier order — so Result and hook sequences are
//	fully reproducible for any worker count.
//
// Complexity (H = grid height, F = peak frontier size)
//
//   - Time:   O(H×F) path steps; each step copies one signature of ≤ H moves.
//   - Memory: O(F×H) for the two live frontiers, plus the signature set.
//     Memory is proportional to the current frontier, not to the
//     cumulative history of all generations.
//
// Usage
//
//	g, _ := chargrid.ParseString(".S.\n.^.")
//	start, _ := g.StartColumn()
//	res, err := beamsim.Simulate(g, start,
//	    beamsim.WithContext(ctx),
//	    beamsim.WithWorkers(4),
//	    beamsim.WithOnGeneration(func(gen, live int) { /* ... */ }),
//	)
//	if err != nil {
//	    // handle ErrGridNil, ErrStartOutOfRange, ErrOptionViolation, or ctx error
//	}
//	fmt.Println(res.Distinct)
//
// Options
//
//   - DefaultOptions(): background Context, serial loop, no-op hooks.
//   - WithContext(ctx):      set a custom context for cancellation.
//   - WithWorkers(n):        shard each generation across n goroutines (n ≥ 1).
//   - WithOnGeneration(fn):  hook after each generation.
//   - WithOnRetire(fn):      hook when a path exits the grid.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrStartOutOfRange  if the start column lies outside the grid.
//   - ErrOptionViolation  if an invalid Option (e.g. Workers < 1) is supplied.
//   - The context's error if the run is canceled mid-flight.
package beamsim
