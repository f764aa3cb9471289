package beamsim

// SignatureSet is an exact-membership set of Signatures, keyed by full
// byte content and length. It grows monotonically: there is no delete.
//
// The reference contract is a chained hash set over byte strings; Go's
// built-in map with string keys provides the same expected O(1) amortized
// membership and insert with exact byte/length equality, including
// signatures that would embed a terminator byte.
type SignatureSet struct {
	members map[string]struct{}
}

// NewSignatureSet returns an empty set.
func NewSignatureSet() *SignatureSet {
	return &SignatureSet{members: make(map[string]struct{})}
}

// Add records sig and reports whether it was absent before the call.
// A true return happens exactly once per distinct signature across the
// set's lifetime; callers count distinct insertions by counting trues.
// Complexity: expected O(len(sig)) amortized.
func (s *SignatureSet) Add(sig Signature) bool {
	key := string(sig)
	if _, ok := s.members[key]; ok {
		return false
	}
	s.members[key] = struct{}{}
	return true
}

// Contains reports whether sig has been added.
// Complexity: expected O(len(sig)).
func (s *SignatureSet) Contains(sig Signature) bool {
	_, ok := s.members[string(sig)]
	return ok
}

// Len reports the number of distinct signatures held.
func (s *SignatureSet) Len() int {
	return len(s.members)
}
