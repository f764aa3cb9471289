package beamsim

// Move is one recorded step of a path's turn history.
type Move byte

const (
	// MoveDown records a straight advance through a pass-through cell.
	MoveDown Move = 'D'
	// MoveLeft records a deflection toward the smaller column.
	MoveLeft Move = 'L'
	// MoveRight records a deflection toward the larger column.
	MoveRight Move = 'R'
)

// Signature is the ordered move history of a path since the start.
// Equality is exact: order-sensitive, length-sensitive, byte-for-byte.
// Signatures grow by exactly one move per generation and are therefore
// bounded by the grid height.
type Signature []byte

// Extend returns a new Signature one move longer than s.
// The result never aliases s's backing array, so a parent signature may
// be extended once per branch without the branches observing each other.
// Complexity: O(len(s)) time and memory.
func (s Signature) Extend(m Move) Signature {
	next := make(Signature, len(s)+1)
	copy(next, s)
	next[len(s)] = byte(m)
	return next
}

// String renders the signature as a plain move string, e.g. "LRD".
func (s Signature) String() string {
	return string(s)
}

// Path is a single in-flight exploration state: a position plus the move
// history that led there. Paths are values; every generation produces
// brand-new successors and never mutates a Path in place.
type Path struct {
	Row, Col int
	Sig      Signature
}

// Frontier is an append-only, insertion-ordered container of the paths
// alive in one generation. A fresh Frontier is built every generation;
// no removal operation exists.
type Frontier struct {
	paths []Path
}

// NewFrontier returns an empty Frontier with room for capacity paths.
// Complexity: O(1) (allocation aside); Append is amortized O(1).
func NewFrontier(capacity int) *Frontier {
	return &Frontier{paths: make([]Path, 0, capacity)}
}

// Append adds p to the end of the frontier.
func (f *Frontier) Append(p Path) {
	f.paths = append(f.paths, p)
}

// Len reports the number of paths held.
func (f *Frontier) Len() int {
	return len(f.paths)
}

// Paths exposes the held paths in insertion order.
// The slice is shared, not copied; callers must not mutate it.
func (f *Frontier) Paths() []Path {
	return f.paths
}
