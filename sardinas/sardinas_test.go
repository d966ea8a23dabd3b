package sardinas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/informatik-mannheim/gcatcirc/code"
	"github.com/informatik-mannheim/gcatcirc/sardinas"
)

// mustCode builds a code or fails the test.
func mustCode(t *testing.T, words ...string) *code.Code {
	t.Helper()
	c, err := code.FromWords(words)
	require.NoError(t, err)

	return c
}

// TestIsCode_UniquelyDecodable covers word sets with a single decomposition
// for every concatenation.
func TestIsCode_UniquelyDecodable(t *testing.T) {
	assert.True(t, sardinas.IsCode(mustCode(t, "BDC", "CA", "DB")))
	assert.True(t, sardinas.IsCode(mustCode(t, "AC", "ACA", "CAA")))
}

// TestIsCode_Ambiguous covers word sets admitting two decompositions of the
// same sequence.
func TestIsCode_Ambiguous(t *testing.T) {
	// ABDC = AB+DC = ABDC
	assert.False(t, sardinas.IsCode(mustCode(t, "ABDC", "AB", "DC")))
	// BDCC = BD+CC
	assert.False(t, sardinas.IsCode(mustCode(t, "BDCC", "BD", "CC")))
	// BDADCC = BD+AD+CC
	assert.False(t, sardinas.IsCode(mustCode(t, "BDADCC", "AD", "BD", "CC")))
	// BDADA+CC = BD+AD+ACC
	assert.False(t, sardinas.IsCode(mustCode(t, "BDADA", "AD", "BD", "ACC", "CC")))
}

// TestIsCode_SingleWord verifies that a one-word set is always a code.
func TestIsCode_SingleWord(t *testing.T) {
	assert.True(t, sardinas.IsCode(mustCode(t, "ABAB")))
}

// TestAmbiguousSequences_CollectsAllWitnesses verifies the reference
// enumeration: every branch is explored and witnesses may repeat when the
// same sequence is reached through different word pairs.
func TestAmbiguousSequences_CollectsAllWitnesses(t *testing.T) {
	c := mustCode(t, "BDADCC", "AD", "BD", "CC", "ADCC")

	isCode, seqs := sardinas.AmbiguousSequences(c)
	assert.False(t, isCode)
	assert.Equal(t, []string{"BDADCC", "BDADCC", "ADCC"}, seqs)
}

// TestAmbiguousSequences_CleanCode verifies the empty witness list for a
// valid code.
func TestAmbiguousSequences_CleanCode(t *testing.T) {
	isCode, seqs := sardinas.AmbiguousSequences(mustCode(t, "BDC", "CA", "DB"))
	assert.True(t, isCode)
	assert.Empty(t, seqs)
}

// TestAmbiguousSequences_WitnessesDecompose checks that each witnessed
// sequence can actually be decomposed into code words in at least one way
// starting from either end of the word list.
func TestAmbiguousSequences_WitnessesDecompose(t *testing.T) {
	c := mustCode(t, "ABDC", "AB", "DC")

	isCode, seqs := sardinas.AmbiguousSequences(c)
	require.False(t, isCode)
	require.NotEmpty(t, seqs)
	for _, s := range seqs {
		assert.True(t, decomposable(s, c.Words()), "sequence %q is not decomposable", s)
	}
}

// decomposable reports whether s splits into a concatenation of words.
func decomposable(s string, words []string) bool {
	if s == "" {
		return true
	}
	for _, w := range words {
		if len(w) <= len(s) && s[:len(w)] == w && decomposable(s[len(w):], words) {
			return true
		}
	}

	return false
}

// TestAgreementWithEnumeration cross-checks the decide and enumerate modes
// on a spread of codes.
func TestAgreementWithEnumeration(t *testing.T) {
	cases := [][]string{
		{"BDC", "CA", "DB"},
		{"ABDC", "AB", "DC"},
		{"AC", "ACA", "CAA"},
		{"BDADCC", "AD", "BD", "CC", "ADCC"},
		{"A"},
		{"0", "01", "011"},
	}
	for _, words := range cases {
		c := mustCode(t, words...)
		fast := sardinas.IsCode(c)
		full, seqs := sardinas.AmbiguousSequences(c)
		assert.Equal(t, fast, full, "modes disagree for %v", words)
		assert.Equal(t, fast, len(seqs) == 0, "verdict/witness mismatch for %v", words)
	}
}
