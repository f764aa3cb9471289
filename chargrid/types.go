// Package chargrid defines core types, cell markers, and sentinel errors
// for the chargrid subpackage of github.com/katalvlaran/beamgrid.
package chargrid

import (
	"errors"
)

// Sentinel errors for chargrid operations.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("chargrid: input grid must have at least one row and one column")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("chargrid: all rows must have the same length")
	// ErrRead indicates the underlying text source failed mid-read.
	ErrRead = errors.New("chargrid: reading grid source failed")
	// ErrNoStart indicates row 0 carries no Start marker.
	ErrNoStart = errors.New("chargrid: no start marker on first row")
	// ErrDuplicateStart indicates row 0 carries more than one Start marker.
	ErrDuplicateStart = errors.New("chargrid: multiple start markers on first row")
)

// Well-known cell values. Any byte other than Deflector behaves as Empty
// for simulation purposes; the constants exist for readable call sites.
const (
	// Start marks the entry column on row 0.
	Start byte = 'S'
	// Deflector splits an incoming path into diagonal successors.
	Deflector byte = '^'
	// Empty is the conventional pass-through cell.
	Empty byte = '.'
)

// Grid is an immutable rectangular byte matrix. Width and Height define
// dimensions; cell contents are deep-copied at construction and never
// mutated afterwards, so a Grid may be shared freely across goroutines.
type Grid struct {
	Width, Height int
	rows          [][]byte
}
