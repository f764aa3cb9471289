package chargrid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/beamgrid/chargrid"
)

//----------------------------------------------------------------------------//
// New and Parse Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]byte
		err  error
	}{
		{"EmptyRows", [][]byte{}, chargrid.ErrEmptyGrid},
		{"EmptyCols", [][]byte{{}}, chargrid.ErrEmptyGrid},
		{"Ragged", [][]byte{[]byte("ab"), []byte("c")}, chargrid.ErrRaggedRows},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chargrid.New(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopies verifies that mutating the input rows after
// construction does not leak into the Grid.
func TestNew_DeepCopies(t *testing.T) {
	rows := [][]byte{[]byte("S."), []byte("^.")}
	g, err := chargrid.New(rows)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	rows[1][0] = '.'
	if got := g.Cell(1, 0); got != chargrid.Deflector {
		t.Errorf("Cell(1,0) = %q after caller mutation; want %q", got, chargrid.Deflector)
	}
}

// TestParse_SkipsBlankLinesAndCR checks line handling of the text loader.
func TestParse_SkipsBlankLinesAndCR(t *testing.T) {
	g, err := chargrid.ParseString(".S.\r\n\n.^.\r\n")
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	if g.Height != 2 || g.Width != 3 {
		t.Fatalf("dimensions = %d×%d; want 2×3", g.Height, g.Width)
	}
	if g.Cell(1, 1) != chargrid.Deflector {
		t.Errorf("Cell(1,1) = %q; want %q", g.Cell(1, 1), chargrid.Deflector)
	}
}

// TestParse_SourceFailure verifies that a failing reader surfaces ErrRead.
func TestParse_SourceFailure(t *testing.T) {
	_, err := chargrid.Parse(failingReader{})
	if !errors.Is(err, chargrid.ErrRead) {
		t.Errorf("Parse error = %v; want ErrRead", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

//----------------------------------------------------------------------------//
// Query Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := chargrid.ParseString("S..\n.^.")
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}

	valid := [][2]int{{0, 0}, {1, 2}, {1, 1}}
	for _, rc := range valid {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {2, 0}, {0, 3}, {1, -1}}
	for _, rc := range invalid {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

// TestRow_Copies verifies that Row hands out an independent copy.
func TestRow_Copies(t *testing.T) {
	g, err := chargrid.ParseString("S.")
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	row := g.Row(0)
	row[0] = '#'
	if g.Cell(0, 0) != chargrid.Start {
		t.Error("mutating Row(0) result leaked into the Grid")
	}
}

// TestString round-trips a grid back to its text form.
func TestString(t *testing.T) {
	const text = ".S.\n.^."
	g, err := chargrid.ParseString(text)
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	if got := g.String(); got != text {
		t.Errorf("String() = %q; want %q", got, text)
	}
}

//----------------------------------------------------------------------------//
// StartColumn Tests
//----------------------------------------------------------------------------//

// TestStartColumn covers present, absent, and duplicated markers.
func TestStartColumn(t *testing.T) {
	cases := []struct {
		name string
		text string
		col  int
		err  error
	}{
		{"AtZero", "S..\n...", 0, nil},
		{"Middle", ".S.\n...", 1, nil},
		{"AtEnd", "..S\n...", 2, nil},
		{"Missing", "...\n.S.", 0, chargrid.ErrNoStart},
		{"Duplicate", "S.S\n...", 0, chargrid.ErrDuplicateStart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := chargrid.Parse(strings.NewReader(tc.text))
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			col, err := g.StartColumn()
			if !errors.Is(err, tc.err) {
				t.Fatalf("StartColumn() error = %v; want %v", err, tc.err)
			}
			if tc.err == nil && col != tc.col {
				t.Errorf("StartColumn() = %d; want %d", col, tc.col)
			}
		})
	}
}
