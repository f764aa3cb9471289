package beamsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/beamgrid/beamsim"
)

// TestSignatureSet_AddOnce verifies that Add reports true exactly once per
// distinct signature, no matter how often it is re-added.
func TestSignatureSet_AddOnce(t *testing.T) {
	set := beamsim.NewSignatureSet()
	sig := beamsim.Signature("LR")

	assert.True(t, set.Add(sig), "first Add must report a new member")
	assert.False(t, set.Add(sig), "second Add must report a duplicate")
	assert.False(t, set.Add(beamsim.Signature("LR")), "equal bytes from another allocation are the same member")
	assert.Equal(t, 1, set.Len())
}

// TestSignatureSet_ExactEquality verifies order-, length-, and
// byte-sensitivity of membership, including embedded zero bytes.
func TestSignatureSet_ExactEquality(t *testing.T) {
	set := beamsim.NewSignatureSet()

	members := []beamsim.Signature{
		beamsim.Signature("LR"),
		beamsim.Signature("RL"),           // same moves, different order
		beamsim.Signature("LRD"),          // shares a prefix
		beamsim.Signature(""),             // the trivial exit
		beamsim.Signature([]byte{'L', 0}), // terminator byte is content, not padding
	}
	for _, m := range members {
		assert.True(t, set.Add(m), "signature %q must be new", m)
	}

	assert.Equal(t, len(members), set.Len())
	for _, m := range members {
		assert.True(t, set.Contains(m), "signature %q must be a member", m)
	}
	assert.False(t, set.Contains(beamsim.Signature("L")), "prefix of a member is not a member")
}

// TestSignatureSet_EmptyIsCountable verifies the empty signature behaves
// as a first-class member (a 1-row grid retires exactly this signature).
func TestSignatureSet_EmptyIsCountable(t *testing.T) {
	set := beamsim.NewSignatureSet()

	assert.False(t, set.Contains(nil))
	assert.True(t, set.Add(nil))
	assert.False(t, set.Add(beamsim.Signature("")))
	assert.Equal(t, 1, set.Len())
}
