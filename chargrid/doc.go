// Package chargrid treats a block of text as an immutable rectangular grid
// of single-byte cells, queried by (row, col).
//
// What:
//
//   - Grid wraps a rectangular [][]byte matrix with Width/Height dimensions.
//   - Parse / ParseString build a Grid from a line-oriented text source.
//   - Cell and InBounds give O(1) positional queries.
//   - StartColumn locates the unique Start marker ('S') on the first row.
//
// Why:
//
//   - Puzzle and map ingestion: turn a text body into a queryable matrix.
//   - Simulation substrates: beamsim consumes a Grid as its read-only world.
//   - Validation at the edge: ragged or empty input is rejected before any
//     algorithm can read out of bounds.
//
// Complexity:
//
//   - Parse / New:   O(W×H) time and memory (input is deep-copied).
//   - Cell/InBounds: O(1).
//   - StartColumn:   O(W).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrRaggedRows: rows have differing lengths.
//   - ErrRead: the underlying text source failed mid-read.
//   - ErrNoStart: row 0 carries no Start marker.
//   - ErrDuplicateStart: row 0 carries more than one Start marker.
package chargrid
