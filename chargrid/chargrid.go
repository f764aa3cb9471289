// Package chargrid provides utilities to treat a body of text as an
// immutable rectangular grid of single-byte cells. It supports:
//
//   - Construction from raw rows, an io.Reader, or a string
//   - O(1) positional queries (Cell, InBounds)
//   - Locating the unique Start marker on the first row
//
// Rows are validated for rectangularity at construction; no later
// operation can read out of bounds.
package chargrid

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular slice of rows.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrRaggedRows if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func New(rows [][]byte) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrRaggedRows, i, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]byte, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]byte, w)
		copy(cells[y], rows[y])
	}

	return &Grid{Width: w, Height: h, rows: cells}, nil
}

// Parse reads a line-oriented grid from r. Each line becomes one row;
// trailing carriage returns are stripped and blank lines are skipped.
// Returns ErrRead (wrapped) on a source failure, plus any New error.
// Complexity: O(W×H) time and memory.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]byte
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := bytes.TrimRight(sc.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}
		row := make([]byte, len(line))
		copy(row, line)
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return New(rows)
}

// ParseString is a convenience wrapper around Parse for in-memory input.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Cell returns the byte stored at (row, col).
// The caller must ensure 0 ≤ row < Height and 0 ≤ col < Width;
// use InBounds when the position is not already known to be valid.
// Complexity: O(1).
func (g *Grid) Cell(row, col int) byte {
	return g.rows[row][col]
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// StartColumn returns the column of the unique Start marker on row 0.
// Returns ErrNoStart when the marker is absent and ErrDuplicateStart when
// it appears more than once. Callers wanting the permissive behavior of
// "assume column 0" handle ErrNoStart explicitly rather than receiving a
// silent default.
// Complexity: O(W).
func (g *Grid) StartColumn() (int, error) {
	found := -1
	for col := 0; col < g.Width; col++ {
		if g.rows[0][col] != Start {
			continue
		}
		if found >= 0 {
			return 0, fmt.Errorf("%w: columns %d and %d", ErrDuplicateStart, found, col)
		}
		found = col
	}
	if found < 0 {
		return 0, ErrNoStart
	}

	return found, nil
}

// Row returns a copy of row i, preserving Grid immutability.
// Complexity: O(W).
func (g *Grid) Row(i int) []byte {
	out := make([]byte, g.Width)
	copy(out, g.rows[i])
	return out
}

// String renders the grid as newline-joined rows, handy for tests and traces.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		b.Write(g.rows[y])
		if y+1 < g.Height {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
